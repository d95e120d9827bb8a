package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/an-nn-t/attendance-tracker/internal/dto"
	"github.com/an-nn-t/attendance-tracker/internal/model"
)

func setupTestAttendanceService(t *testing.T) (AttendanceService, string) {
	t.Helper()
	repo := newTestRepo()
	subject := &model.Subject{
		Name:         "微积分",
		Credits:      2,
		TestWeight:   100,
		ReportWeight: 0,
		TotalTests:   2,
	}
	if err := repo.Subject.Create(context.Background(), subject); err != nil {
		t.Fatalf("预置科目失败: %v", err)
	}
	return NewAttendanceService(repo, zap.NewNop()), subject.SubjectID
}

func TestAttendanceService_Add(t *testing.T) {
	svc, subjectID := setupTestAttendanceService(t)
	ctx := context.Background()

	resp, err := svc.Act(ctx, "stu-1", &dto.AttendanceActionRequest{
		SubjectID: subjectID,
		Action:    "add",
		Date:      "2026-04-10",
	})
	if err != nil {
		t.Fatalf("登记缺席失败: %v", err)
	}
	if resp.AbsenceCount != 1 {
		t.Errorf("登记后缺席数应为 1，实际 %d", resp.AbsenceCount)
	}
	if resp.Removed != nil {
		t.Errorf("add 操作不应返回 removed 标记")
	}

	// 同日重复登记合法：一天可能缺席多个课时
	resp, err = svc.Act(ctx, "stu-1", &dto.AttendanceActionRequest{
		SubjectID: subjectID,
		Action:    "add",
		Date:      "2026-04-10",
	})
	if err != nil {
		t.Fatalf("重复登记缺席失败: %v", err)
	}
	if resp.AbsenceCount != 2 {
		t.Errorf("第二次登记后缺席数应为 2，实际 %d", resp.AbsenceCount)
	}
}

func TestAttendanceService_Add_DateDefaultsToToday(t *testing.T) {
	svc, subjectID := setupTestAttendanceService(t)

	resp, err := svc.Act(context.Background(), "stu-1", &dto.AttendanceActionRequest{
		SubjectID: subjectID,
		Action:    "add",
	})
	if err != nil {
		t.Fatalf("省略日期登记缺席失败: %v", err)
	}
	if resp.AbsenceCount != 1 {
		t.Errorf("登记后缺席数应为 1，实际 %d", resp.AbsenceCount)
	}
}

func TestAttendanceService_Remove(t *testing.T) {
	svc, subjectID := setupTestAttendanceService(t)
	ctx := context.Background()

	for _, date := range []string{"2026-04-10", "2026-04-17"} {
		if _, err := svc.Act(ctx, "stu-1", &dto.AttendanceActionRequest{
			SubjectID: subjectID, Action: "add", Date: date,
		}); err != nil {
			t.Fatalf("登记缺席失败: %v", err)
		}
	}

	resp, err := svc.Act(ctx, "stu-1", &dto.AttendanceActionRequest{
		SubjectID: subjectID,
		Action:    "remove",
	})
	if err != nil {
		t.Fatalf("撤销缺席失败: %v", err)
	}
	if resp.Removed == nil || !*resp.Removed {
		t.Errorf("有记录时撤销应返回 removed=true")
	}
	if resp.AbsenceCount != 1 {
		t.Errorf("撤销后缺席数应为 1，实际 %d", resp.AbsenceCount)
	}
}

func TestAttendanceService_Remove_NothingToRetract(t *testing.T) {
	svc, subjectID := setupTestAttendanceService(t)

	resp, err := svc.Act(context.Background(), "stu-1", &dto.AttendanceActionRequest{
		SubjectID: subjectID,
		Action:    "remove",
	})
	if err != nil {
		t.Fatalf("空撤销不应报错: %v", err)
	}
	if resp.Removed == nil || *resp.Removed {
		t.Errorf("无记录时撤销应返回 removed=false")
	}
	if resp.AbsenceCount != 0 {
		t.Errorf("缺席数应保持 0，实际 %d", resp.AbsenceCount)
	}
}

func TestAttendanceService_Remove_DoesNotAffectOthers(t *testing.T) {
	svc, subjectID := setupTestAttendanceService(t)
	ctx := context.Background()

	for _, userID := range []string{"stu-1", "stu-2"} {
		if _, err := svc.Act(ctx, userID, &dto.AttendanceActionRequest{
			SubjectID: subjectID, Action: "add", Date: "2026-04-10",
		}); err != nil {
			t.Fatalf("登记缺席失败: %v", err)
		}
	}

	if _, err := svc.Act(ctx, "stu-1", &dto.AttendanceActionRequest{
		SubjectID: subjectID, Action: "remove",
	}); err != nil {
		t.Fatalf("撤销缺席失败: %v", err)
	}

	records, err := svc.ListMine(ctx, "stu-2", subjectID)
	if err != nil {
		t.Fatalf("查询缺席记录失败: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("撤销不应影响其他学生的记录，stu-2 应剩 1 条，实际 %d", len(records))
	}
}

func TestAttendanceService_SubjectNotFound(t *testing.T) {
	svc, _ := setupTestAttendanceService(t)

	_, err := svc.Act(context.Background(), "stu-1", &dto.AttendanceActionRequest{
		SubjectID: "no-such-subject",
		Action:    "add",
	})
	if !errors.Is(err, ErrSubjectNotFound) {
		t.Errorf("科目不存在应返回 ErrSubjectNotFound，实际 %v", err)
	}
}

func TestAttendanceService_DateInvalid(t *testing.T) {
	svc, subjectID := setupTestAttendanceService(t)

	_, err := svc.Act(context.Background(), "stu-1", &dto.AttendanceActionRequest{
		SubjectID: subjectID,
		Action:    "add",
		Date:      "04/10/2026",
	})
	if !errors.Is(err, ErrDateInvalid) {
		t.Errorf("非法日期应返回 ErrDateInvalid，实际 %v", err)
	}
}
