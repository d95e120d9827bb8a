package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/an-nn-t/attendance-tracker/config"
	"github.com/an-nn-t/attendance-tracker/internal/dto"
	"github.com/an-nn-t/attendance-tracker/internal/engine"
	"github.com/an-nn-t/attendance-tracker/internal/model"
	"github.com/an-nn-t/attendance-tracker/internal/repository"
)

// DashboardService 出席・成绩风险汇总业务接口
//
// 所有派生值（总课时、上限、所需分数）都不落库，
// 每次查询从当前记录重新计算，保证与最新科目配置一致。
type DashboardService interface {
	// GetDashboard 学生视角：本人所有科目的出席与成绩风险
	GetDashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error)
	// GetOverview 管理员视角：全体学生的风险概览
	GetOverview(ctx context.Context) ([]dto.StudentOverviewResponse, error)
}

type dashboardService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService 创建 DashboardService 实例
func NewDashboardService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{cfg: cfg, repo: repo, logger: logger}
}

// ────────────────────── GetDashboard ──────────────────────

func (s *dashboardService) GetDashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	subjects, err := s.repo.Subject.List(ctx)
	if err != nil {
		s.logger.Error("列出科目失败", zap.Error(err))
		return nil, err
	}

	facts, err := s.loadStudentFacts(ctx, userID)
	if err != nil {
		return nil, err
	}

	verdicts := make([]engine.Verdict, 0, len(subjects))
	cards := make([]dto.SubjectDashboard, 0, len(subjects))

	for i := range subjects {
		card, verdict := s.evaluateSubject(&subjects[i], facts)
		cards = append(cards, card)
		verdicts = append(verdicts, verdict)
	}

	risk := engine.Aggregate(verdicts)

	return &dto.DashboardResponse{
		User: dto.DashboardUser{
			Nickname:     user.Nickname,
			AttendanceNo: user.AttendanceNo,
		},
		TotalFailedCredits: risk.TotalFailedCredits,
		IsAtRisk:           risk.AtRisk,
		Subjects:           cards,
	}, nil
}

// ────────────────────── GetOverview ──────────────────────

func (s *dashboardService) GetOverview(ctx context.Context) ([]dto.StudentOverviewResponse, error) {
	students, err := s.repo.User.ListStudents(ctx)
	if err != nil {
		s.logger.Error("列出学生失败", zap.Error(err))
		return nil, err
	}

	subjects, err := s.repo.Subject.List(ctx)
	if err != nil {
		s.logger.Error("列出科目失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.StudentOverviewResponse, 0, len(students))

	for i := range students {
		student := &students[i]

		facts, err := s.loadStudentFacts(ctx, student.UserID)
		if err != nil {
			return nil, err
		}

		verdicts := make([]engine.Verdict, 0, len(subjects))
		var remainings []int
		totalAbsences := 0

		for j := range subjects {
			_, verdict := s.evaluateSubject(&subjects[j], facts)
			verdicts = append(verdicts, verdict)
			totalAbsences += verdict.AbsenceCount
			// 无缺席记录的科目不参与最小值：0 次缺席不代表最安全
			if verdict.AbsenceCount > 0 {
				remainings = append(remainings, verdict.RemainingAbsences)
			}
		}

		risk := engine.Aggregate(verdicts)

		minRemaining, ok := engine.MinRemaining(remainings)
		if !ok {
			minRemaining = s.cfg.Grading.SafeRemainingDefault
		}

		result = append(result, dto.StudentOverviewResponse{
			ID:                   student.UserID,
			AttendanceNo:         student.AttendanceNo,
			Nickname:             student.Nickname,
			MinRemainingAbsences: minRemaining,
			TotalAbsences:        totalAbsences,
			TotalFailedCredits:   risk.TotalFailedCredits,
			IsAtRisk:             risk.AtRisk,
		})
	}

	return result, nil
}

// ── 内部辅助方法 ──

// studentFacts 一名学生的全部记录，按科目分组
type studentFacts struct {
	absenceCounts map[string]int
	gradesBySubj  map[string][]model.GradeRecord
	reportScores  map[string]float64
}

// loadStudentFacts 一次性加载该学生的缺席、成绩、平常点
func (s *dashboardService) loadStudentFacts(ctx context.Context, userID string) (*studentFacts, error) {
	attendances, err := s.repo.Attendance.ListActiveByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询缺席记录失败", zap.Error(err))
		return nil, err
	}

	grades, err := s.repo.Grade.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询成绩失败", zap.Error(err))
		return nil, err
	}

	participations, err := s.repo.Participation.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询平常点失败", zap.Error(err))
		return nil, err
	}

	facts := &studentFacts{
		absenceCounts: make(map[string]int),
		gradesBySubj:  make(map[string][]model.GradeRecord),
		reportScores:  make(map[string]float64),
	}
	for _, a := range attendances {
		facts.absenceCounts[a.SubjectID]++
	}
	for _, g := range grades {
		facts.gradesBySubj[g.SubjectID] = append(facts.gradesBySubj[g.SubjectID], g)
	}
	for _, p := range participations {
		facts.reportScores[p.SubjectID] = p.ReportScore
	}

	return facts, nil
}

// evaluateSubject 单科目的完整判定：出席上限 + 成绩逆算
func (s *dashboardService) evaluateSubject(subject *model.Subject, facts *studentFacts) (dto.SubjectDashboard, engine.Verdict) {
	// 1. 出席判定
	canceled, extra := subject.CountAdjustments()
	absence := engine.ComputeLimit(subject.Credits, subject.IsHalfCourse, extra, canceled)
	if !absence.Valid() {
		// 创建/调整时已做校验，这里只可能是历史遗留配置
		s.logger.Warn("科目配置导致负课时，按上限 0 处理",
			zap.String("subject_id", subject.SubjectID),
			zap.Int("total_periods", absence.TotalPeriods),
		)
	}

	limit := absence.Limit
	if subject.RequiredAbsenceLimit != nil {
		limit = *subject.RequiredAbsenceLimit
	}

	absenceCount := facts.absenceCounts[subject.SubjectID]
	remaining := engine.RemainingAbsences(limit, absenceCount)
	attendanceOut := engine.AttendanceOut(remaining)

	// 2. 成绩判定
	records := facts.gradesBySubj[subject.SubjectID]
	sort.Slice(records, func(i, j int) bool { return records[i].TestNumber < records[j].TestNumber })

	// 超出计划次数的回次仅供参考，不参与推算
	scores := make([]float64, 0, len(records))
	for _, record := range records {
		if record.TestNumber <= subject.TotalTests {
			scores = append(scores, record.Score)
		}
	}

	var reportScore *float64
	expectedReport := s.cfg.Grading.DefaultReportScore
	if v, ok := facts.reportScores[subject.SubjectID]; ok {
		expectedReport = v
		reportScore = &v
	}

	required, possible := engine.RequiredScore(
		subject.TestWeight, subject.ReportWeight, subject.TotalTests, scores, expectedReport,
	)
	gradeOut := !possible

	var requiredPtr *float64
	var displayPtr *int
	if possible {
		requiredPtr = &required
		display := engine.DisplayScore(required)
		displayPtr = &display
	}

	card := dto.SubjectDashboard{
		ID:                   subject.SubjectID,
		Name:                 subject.Name,
		Credits:              subject.Credits,
		TotalPeriods:         absence.TotalPeriods,
		AbsenceCount:         absenceCount,
		Limit:                limit,
		RemainingAbsences:    remaining,
		IsAttendanceOut:      attendanceOut,
		Scores:               scores,
		TotalTests:           subject.TotalTests,
		ReportScore:          reportScore,
		RequiredScore:        requiredPtr,
		RequiredScoreDisplay: displayPtr,
		IsGradeOut:           gradeOut,
	}

	verdict := engine.Verdict{
		Credits:           subject.Credits,
		AbsenceCount:      absenceCount,
		RemainingAbsences: remaining,
		AttendanceOut:     attendanceOut,
		GradeOut:          gradeOut,
	}

	return card, verdict
}
