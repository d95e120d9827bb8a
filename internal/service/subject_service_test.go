package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/an-nn-t/attendance-tracker/internal/dto"
	"github.com/an-nn-t/attendance-tracker/internal/model"
	"github.com/an-nn-t/attendance-tracker/internal/repository"
)

func setupTestSubjectService() (SubjectService, *repository.Repository) {
	repo := newTestRepo()
	return NewSubjectService(repo, zap.NewNop()), repo
}

func TestSubjectService_Create(t *testing.T) {
	svc, _ := setupTestSubjectService()
	ctx := context.Background()

	resp, err := svc.Create(ctx, &dto.CreateSubjectRequest{
		Name:         "线性代数",
		Credits:      2,
		Weekday:      1,
		Period:       3,
		TestWeight:   60,
		ReportWeight: 40,
		TotalTests:   3,
	})
	if err != nil {
		t.Fatalf("创建科目失败: %v", err)
	}
	if resp.TotalPeriods != 60 {
		t.Errorf("2 学分总课时应为 60，实际 %d", resp.TotalPeriods)
	}
	if resp.AbsenceLimit != 20 {
		t.Errorf("缺席上限应为 20，实际 %d", resp.AbsenceLimit)
	}
}

func TestSubjectService_Create_WeightSumInvalid(t *testing.T) {
	svc, _ := setupTestSubjectService()

	_, err := svc.Create(context.Background(), &dto.CreateSubjectRequest{
		Name:         "体育",
		Credits:      1,
		TestWeight:   60,
		ReportWeight: 30, // 60+30 ≠ 100
		TotalTests:   1,
	})
	if !errors.Is(err, ErrSubjectConfigInvalid) {
		t.Errorf("权重和不为 100 应返回 ErrSubjectConfigInvalid，实际 %v", err)
	}
}

func TestSubjectService_Create_HalfCourse(t *testing.T) {
	svc, _ := setupTestSubjectService()

	resp, err := svc.Create(context.Background(), &dto.CreateSubjectRequest{
		Name:         "情报处理",
		Credits:      2,
		IsHalfCourse: true,
		TestWeight:   100,
		ReportWeight: 0,
		TotalTests:   2,
	})
	if err != nil {
		t.Fatalf("创建半期科目失败: %v", err)
	}
	if resp.TotalPeriods != 30 {
		t.Errorf("半期科目总课时应减半为 30，实际 %d", resp.TotalPeriods)
	}
	if resp.AbsenceLimit != 10 {
		t.Errorf("半期科目缺席上限应为 10，实际 %d", resp.AbsenceLimit)
	}
}

func TestSubjectService_Update_WeightRevalidated(t *testing.T) {
	svc, _ := setupTestSubjectService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateSubjectRequest{
		Name:         "英语",
		Credits:      2,
		TestWeight:   70,
		ReportWeight: 30,
		TotalTests:   2,
	})
	if err != nil {
		t.Fatalf("创建科目失败: %v", err)
	}

	// 只改 test_weight，不改 report_weight：合成后 90+30 ≠ 100
	newWeight := 90.0
	_, err = svc.Update(ctx, created.ID, &dto.UpdateSubjectRequest{TestWeight: &newWeight})
	if !errors.Is(err, ErrSubjectConfigInvalid) {
		t.Errorf("部分更新后权重失衡应返回 ErrSubjectConfigInvalid，实际 %v", err)
	}
}

func TestSubjectService_Update_NotFound(t *testing.T) {
	svc, _ := setupTestSubjectService()

	name := "不存在"
	_, err := svc.Update(context.Background(), "no-such-id", &dto.UpdateSubjectRequest{Name: &name})
	if !errors.Is(err, ErrSubjectNotFound) {
		t.Errorf("更新不存在的科目应返回 ErrSubjectNotFound，实际 %v", err)
	}
}

func TestSubjectService_RequiredAbsenceLimitOverride(t *testing.T) {
	svc, _ := setupTestSubjectService()
	ctx := context.Background()

	override := 5
	resp, err := svc.Create(ctx, &dto.CreateSubjectRequest{
		Name:                 "实验",
		Credits:              2,
		TestWeight:           50,
		ReportWeight:         50,
		TotalTests:           1,
		RequiredAbsenceLimit: &override,
	})
	if err != nil {
		t.Fatalf("创建科目失败: %v", err)
	}
	if resp.AbsenceLimit != 5 {
		t.Errorf("手动上限应覆盖三分之一规则（5），实际 %d", resp.AbsenceLimit)
	}
	if resp.TotalPeriods != 60 {
		t.Errorf("覆盖上限不应影响总课时，实际 %d", resp.TotalPeriods)
	}
}

func TestSubjectService_AddAdjustment(t *testing.T) {
	svc, repo := setupTestSubjectService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateSubjectRequest{
		Name:         "解析学",
		Credits:      2,
		TestWeight:   100,
		ReportWeight: 0,
		TotalTests:   2,
	})
	if err != nil {
		t.Fatalf("创建科目失败: %v", err)
	}

	adj, err := svc.AddAdjustment(ctx, created.ID, &dto.CreateAdjustmentRequest{
		Type: model.AdjustmentCanceled,
		Date: "2026-05-12",
	})
	if err != nil {
		t.Fatalf("登记休讲失败: %v", err)
	}
	if adj.Type != model.AdjustmentCanceled || adj.Date != "2026-05-12" {
		t.Errorf("调整响应不符: %+v", adj)
	}

	stored, err := repo.Adjustment.ListBySubject(ctx, created.ID)
	if err != nil {
		t.Fatalf("读取调整记录失败: %v", err)
	}
	if len(stored) != 1 {
		t.Errorf("应落库 1 条调整记录，实际 %d", len(stored))
	}
}

func TestSubjectService_AddAdjustment_DateInvalid(t *testing.T) {
	svc, _ := setupTestSubjectService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, &dto.CreateSubjectRequest{
		Name: "几何", Credits: 1, TestWeight: 100, ReportWeight: 0, TotalTests: 1,
	})

	_, err := svc.AddAdjustment(ctx, created.ID, &dto.CreateAdjustmentRequest{
		Type: model.AdjustmentExtra,
		Date: "2026/05/12",
	})
	if !errors.Is(err, ErrDateInvalid) {
		t.Errorf("非法日期应返回 ErrDateInvalid，实际 %v", err)
	}
}

func TestSubjectService_AddAdjustment_NegativeTotalRejected(t *testing.T) {
	svc, repo := setupTestSubjectService()
	ctx := context.Background()

	// 1 学分 30 课时，预置 30 条休讲把总课时打到 0
	created, err := svc.Create(ctx, &dto.CreateSubjectRequest{
		Name: "演习", Credits: 1, TestWeight: 100, ReportWeight: 0, TotalTests: 1,
	})
	if err != nil {
		t.Fatalf("创建科目失败: %v", err)
	}
	subject, _ := repo.Subject.GetByID(ctx, created.ID)
	for i := 0; i < 30; i++ {
		subject.Adjustments = append(subject.Adjustments, model.ScheduleAdjustment{
			SubjectID: created.ID,
			Type:      model.AdjustmentCanceled,
		})
	}

	_, err = svc.AddAdjustment(ctx, created.ID, &dto.CreateAdjustmentRequest{
		Type: model.AdjustmentCanceled,
		Date: "2026-06-01",
	})
	if !errors.Is(err, ErrAdjustmentInvalid) {
		t.Errorf("休讲把总课时打成负数应返回 ErrAdjustmentInvalid，实际 %v", err)
	}
}

func TestSubjectService_RemoveAdjustment_WrongSubject(t *testing.T) {
	svc, _ := setupTestSubjectService()
	ctx := context.Background()

	a, _ := svc.Create(ctx, &dto.CreateSubjectRequest{
		Name: "科目A", Credits: 1, TestWeight: 100, ReportWeight: 0, TotalTests: 1,
	})
	b, _ := svc.Create(ctx, &dto.CreateSubjectRequest{
		Name: "科目B", Credits: 1, TestWeight: 100, ReportWeight: 0, TotalTests: 1,
	})

	adj, err := svc.AddAdjustment(ctx, a.ID, &dto.CreateAdjustmentRequest{
		Type: model.AdjustmentExtra,
		Date: "2026-04-01",
	})
	if err != nil {
		t.Fatalf("登记补讲失败: %v", err)
	}

	// 用另一个科目的 ID 删除应拒绝
	if err := svc.RemoveAdjustment(ctx, b.ID, adj.ID); !errors.Is(err, ErrAdjustmentNotFound) {
		t.Errorf("跨科目删除调整应返回 ErrAdjustmentNotFound，实际 %v", err)
	}
	if err := svc.RemoveAdjustment(ctx, a.ID, adj.ID); err != nil {
		t.Errorf("本科目删除调整应成功: %v", err)
	}
}

func TestSubjectService_Delete_NotFound(t *testing.T) {
	svc, _ := setupTestSubjectService()

	if err := svc.Delete(context.Background(), "no-such-id"); !errors.Is(err, ErrSubjectNotFound) {
		t.Errorf("删除不存在的科目应返回 ErrSubjectNotFound，实际 %v", err)
	}
}
