package service

import (
	"context"
	"errors"
	"io"
	"strings"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/an-nn-t/attendance-tracker/internal/dto"
	"github.com/an-nn-t/attendance-tracker/internal/engine"
	"github.com/an-nn-t/attendance-tracker/internal/model"
)

// ── ICS 导入 ──────────────────────────────────────────────
//
// 职责：把教务日历（RFC 5545）里的休讲/补讲事件转为 ScheduleAdjustment。
//
// 映射规则：
//   - STATUS:CANCELLED 的事件 → CANCELED（休讲）
//   - SUMMARY 含补讲标记（補講 / 补讲 / makeup）的事件 → EXTRA（补讲）
//   - 其余事件与无法取得 DTSTART 的事件跳过，计入 skipped
// ─────────────────────────────────────────────────────────────

var ErrICSParseFailed = errors.New("ICS 格式解析失败")

// makeupMarkers SUMMARY 中识别补讲的关键字（忽略大小写）
var makeupMarkers = []string{"補講", "补讲", "makeup"}

func (s *subjectService) ImportAdjustments(ctx context.Context, subjectID string, r io.Reader) (*dto.ImportAdjustmentsResponse, error) {
	subject, err := s.repo.Subject.GetByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("查询科目失败", zap.String("id", subjectID), zap.Error(err))
		return nil, err
	}

	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, ErrICSParseFailed
	}

	var adjustments []model.ScheduleAdjustment
	resp := &dto.ImportAdjustmentsResponse{}

	for _, event := range cal.Events() {
		start, err := event.GetStartAt()
		if err != nil {
			resp.Skipped++
			continue
		}

		adjType, ok := classifyEvent(event)
		if !ok {
			resp.Skipped++
			continue
		}

		adjustments = append(adjustments, model.ScheduleAdjustment{
			SubjectID: subjectID,
			Type:      adjType,
			Date:      start,
		})
		if adjType == model.AdjustmentCanceled {
			resp.Canceled++
		} else {
			resp.Extra++
		}
	}

	// 导入后的休讲总数不能把总课时打成负数
	canceled, extra := subject.CountAdjustments()
	if !engine.ComputeLimit(subject.Credits, subject.IsHalfCourse, extra+resp.Extra, canceled+resp.Canceled).Valid() {
		return nil, ErrAdjustmentInvalid
	}

	if err := s.repo.Adjustment.BatchCreate(ctx, adjustments); err != nil {
		s.logger.Error("批量写入课程调整失败", zap.Error(err))
		return nil, err
	}

	resp.Imported = len(adjustments)
	return resp, nil
}

// classifyEvent 判定事件对应的调整类型
func classifyEvent(event *ics.VEvent) (string, bool) {
	if prop := event.GetProperty(ics.ComponentPropertyStatus); prop != nil {
		if strings.EqualFold(prop.Value, "CANCELLED") {
			return model.AdjustmentCanceled, true
		}
	}

	summary := ""
	if prop := event.GetProperty(ics.ComponentPropertySummary); prop != nil {
		summary = strings.ToLower(prop.Value)
	}
	for _, marker := range makeupMarkers {
		if strings.Contains(summary, strings.ToLower(marker)) {
			return model.AdjustmentExtra, true
		}
	}

	return "", false
}
