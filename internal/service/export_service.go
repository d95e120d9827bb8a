package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoStudents   = errors.New("暂无学生数据可导出")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 风险概览导出为 Excel (.xlsx)，一行一名学生
//   - 以 bytes.Buffer 返回，由 Handler 层设置下载响应头后写入 Response
//   - 留级风险行整行标红，方便打印后快速定位
type ExportService interface {
	// ExportOverview 导出全体学生风险概览
	ExportOverview(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	dashboard DashboardService
	logger    *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(dashboard DashboardService, logger *zap.Logger) ExportService {
	return &exportService{dashboard: dashboard, logger: logger}
}

var overviewHeaders = []string{"出席番号", "昵称", "累计缺席", "剩余可缺席(最少)", "已失学分", "留级风险"}

func (s *exportService) ExportOverview(ctx context.Context) (*bytes.Buffer, string, error) {
	rows, err := s.dashboard.GetOverview(ctx)
	if err != nil {
		return nil, "", err
	}
	if len(rows) == 0 {
		return nil, "", ErrExportNoStudents
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"

	// 表头样式：加粗 + 灰底
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
	})
	if err != nil {
		s.logger.Error("创建表头样式失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	// 风险行样式：红字
	riskStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "CC0000", Bold: true},
	})
	if err != nil {
		s.logger.Error("创建风险行样式失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	for col, header := range overviewHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, row := range rows {
		rowNum := i + 2
		riskText := "―"
		if row.IsAtRisk {
			riskText = "危険"
		}
		values := []interface{}{
			row.AttendanceNo,
			row.Nickname,
			row.TotalAbsences,
			row.MinRemainingAbsences,
			row.TotalFailedCredits,
			riskText,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
			f.SetCellValue(sheet, cell, v)
		}
		if row.IsAtRisk {
			start, _ := excelize.CoordinatesToCellName(1, rowNum)
			end, _ := excelize.CoordinatesToCellName(len(overviewHeaders), rowNum)
			f.SetCellStyle(sheet, start, end, riskStyle)
		}
	}

	// 列宽：昵称列放宽
	f.SetColWidth(sheet, "B", "B", 20)
	f.SetColWidth(sheet, "C", "F", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("写出 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("attendance_overview_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}
