package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/an-nn-t/attendance-tracker/internal/service"
	"github.com/an-nn-t/attendance-tracker/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportOverview 导出全体学生风险概览（Excel）
// GET /api/v1/export/overview
func (h *ExportHandler) ExportOverview(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportOverview(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExportNoStudents):
			response.NotFound(c, 16001, "暂无学生数据可导出")
		case errors.Is(err, service.ErrExportGenerateFail):
			response.InternalError(c)
		default:
			response.InternalError(c)
		}
		return
	}

	// 设置下载响应头
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
