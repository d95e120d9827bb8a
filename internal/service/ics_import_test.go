package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/an-nn-t/attendance-tracker/internal/dto"
)

const sampleICS = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//campus//schedule//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:event-1\r\n" +
	"DTSTART:20260512T100000Z\r\n" +
	"SUMMARY:统计学\r\n" +
	"STATUS:CANCELLED\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:event-2\r\n" +
	"DTSTART:20260519T100000Z\r\n" +
	"SUMMARY:统计学 補講\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:event-3\r\n" +
	"DTSTART:20260526T100000Z\r\n" +
	"SUMMARY:统计学（通常）\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func importTestSubject() *dto.CreateSubjectRequest {
	return &dto.CreateSubjectRequest{
		Name:         "统计学",
		Credits:      2,
		TestWeight:   100,
		ReportWeight: 0,
		TotalTests:   2,
	}
}

func TestSubjectService_ImportAdjustments(t *testing.T) {
	svc, repo := setupTestSubjectService()
	ctx := context.Background()

	created, err := svc.Create(ctx, importTestSubject())
	if err != nil {
		t.Fatalf("创建科目失败: %v", err)
	}

	resp, err := svc.ImportAdjustments(ctx, created.ID, strings.NewReader(sampleICS))
	if err != nil {
		t.Fatalf("导入 ICS 失败: %v", err)
	}
	if resp.Imported != 2 || resp.Canceled != 1 || resp.Extra != 1 {
		t.Errorf("导入统计不符: %+v", resp)
	}
	if resp.Skipped != 1 {
		t.Errorf("普通授课事件应被跳过，实际 skipped=%d", resp.Skipped)
	}

	stored, err := repo.Adjustment.ListBySubject(ctx, created.ID)
	if err != nil {
		t.Fatalf("读取调整记录失败: %v", err)
	}
	if len(stored) != 2 {
		t.Errorf("应落库 2 条调整记录，实际 %d", len(stored))
	}
}

func TestSubjectService_ImportAdjustments_ParseFailed(t *testing.T) {
	svc, _ := setupTestSubjectService()
	ctx := context.Background()

	created, err := svc.Create(ctx, importTestSubject())
	if err != nil {
		t.Fatalf("创建科目失败: %v", err)
	}

	_, err = svc.ImportAdjustments(ctx, created.ID, strings.NewReader("not an ics file"))
	if !errors.Is(err, ErrICSParseFailed) {
		t.Errorf("非法 ICS 应返回 ErrICSParseFailed，实际 %v", err)
	}
}

func TestSubjectService_ImportAdjustments_SubjectNotFound(t *testing.T) {
	svc, _ := setupTestSubjectService()

	_, err := svc.ImportAdjustments(context.Background(), "no-such-subject", strings.NewReader(sampleICS))
	if !errors.Is(err, ErrSubjectNotFound) {
		t.Errorf("科目不存在应返回 ErrSubjectNotFound，实际 %v", err)
	}
}
