package service

import (
	"context"
	"errors"
	"io"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/an-nn-t/attendance-tracker/internal/dto"
	"github.com/an-nn-t/attendance-tracker/internal/engine"
	"github.com/an-nn-t/attendance-tracker/internal/model"
	"github.com/an-nn-t/attendance-tracker/internal/repository"
)

// ── 科目模块业务错误 ──

var (
	ErrSubjectNotFound      = errors.New("科目不存在")
	ErrSubjectConfigInvalid = errors.New("科目配置无效")
	ErrAdjustmentNotFound   = errors.New("调整记录不存在")
	ErrAdjustmentInvalid    = errors.New("调整无效：休讲数不能超过总课时")
	ErrDateInvalid          = errors.New("日期格式无效")
)

// SubjectService 科目业务接口
type SubjectService interface {
	Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SubjectResponse, error)
	List(ctx context.Context) ([]dto.SubjectResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateSubjectRequest) (*dto.SubjectResponse, error)
	Delete(ctx context.Context, id string) error
	AddAdjustment(ctx context.Context, subjectID string, req *dto.CreateAdjustmentRequest) (*dto.AdjustmentResponse, error)
	RemoveAdjustment(ctx context.Context, subjectID, adjustmentID string) error
	// ImportAdjustments 从 iCalendar 数据流批量导入休讲/补讲
	ImportAdjustments(ctx context.Context, subjectID string, r io.Reader) (*dto.ImportAdjustmentsResponse, error)
}

type subjectService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSubjectService 创建 SubjectService 实例
func NewSubjectService(repo *repository.Repository, logger *zap.Logger) SubjectService {
	return &subjectService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *subjectService) Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error) {
	if err := validateSubjectConfig(req.Credits, req.TestWeight, req.ReportWeight, req.TotalTests); err != nil {
		return nil, err
	}

	subject := &model.Subject{
		Name:                 req.Name,
		Credits:              req.Credits,
		Weekday:              req.Weekday,
		Period:               req.Period,
		IsHalfCourse:         req.IsHalfCourse,
		TestWeight:           req.TestWeight,
		ReportWeight:         req.ReportWeight,
		TotalTests:           req.TotalTests,
		RequiredAbsenceLimit: req.RequiredAbsenceLimit,
	}

	if err := s.repo.Subject.Create(ctx, subject); err != nil {
		s.logger.Error("创建科目失败", zap.Error(err))
		return nil, err
	}

	return s.toSubjectResponse(subject), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *subjectService) GetByID(ctx context.Context, id string) (*dto.SubjectResponse, error) {
	subject, err := s.repo.Subject.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("查询科目失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toSubjectResponse(subject), nil
}

// ────────────────────── List ──────────────────────

func (s *subjectService) List(ctx context.Context) ([]dto.SubjectResponse, error) {
	subjects, err := s.repo.Subject.List(ctx)
	if err != nil {
		s.logger.Error("列出科目失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.SubjectResponse, 0, len(subjects))
	for i := range subjects {
		result = append(result, *s.toSubjectResponse(&subjects[i]))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *subjectService) Update(ctx context.Context, id string, req *dto.UpdateSubjectRequest) (*dto.SubjectResponse, error) {
	subject, err := s.repo.Subject.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("查询科目失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		subject.Name = *req.Name
	}
	if req.Credits != nil {
		subject.Credits = *req.Credits
	}
	if req.Weekday != nil {
		subject.Weekday = *req.Weekday
	}
	if req.Period != nil {
		subject.Period = *req.Period
	}
	if req.IsHalfCourse != nil {
		subject.IsHalfCourse = *req.IsHalfCourse
	}
	if req.TestWeight != nil {
		subject.TestWeight = *req.TestWeight
	}
	if req.ReportWeight != nil {
		subject.ReportWeight = *req.ReportWeight
	}
	if req.TotalTests != nil {
		subject.TotalTests = *req.TotalTests
	}
	if req.RequiredAbsenceLimit != nil {
		subject.RequiredAbsenceLimit = req.RequiredAbsenceLimit
	}

	if err := validateSubjectConfig(subject.Credits, subject.TestWeight, subject.ReportWeight, subject.TotalTests); err != nil {
		return nil, err
	}

	// 更新后的配置不能让现有休讲数导致负课时
	canceled, extra := subject.CountAdjustments()
	if !engine.ComputeLimit(subject.Credits, subject.IsHalfCourse, extra, canceled).Valid() {
		return nil, ErrSubjectConfigInvalid
	}

	if err := s.repo.Subject.Update(ctx, subject); err != nil {
		s.logger.Error("更新科目失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toSubjectResponse(subject), nil
}

// ────────────────────── Delete ──────────────────────

func (s *subjectService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Subject.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubjectNotFound
		}
		s.logger.Error("查询科目失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Subject.Delete(ctx, id); err != nil {
		s.logger.Error("删除科目失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── AddAdjustment ──────────────────────

func (s *subjectService) AddAdjustment(ctx context.Context, subjectID string, req *dto.CreateAdjustmentRequest) (*dto.AdjustmentResponse, error) {
	subject, err := s.repo.Subject.GetByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("查询科目失败", zap.String("id", subjectID), zap.Error(err))
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrDateInvalid
	}

	// 新增休讲不能把总课时打成负数（配置错误快速失败）
	canceled, extra := subject.CountAdjustments()
	if req.Type == model.AdjustmentCanceled {
		canceled++
	} else {
		extra++
	}
	if !engine.ComputeLimit(subject.Credits, subject.IsHalfCourse, extra, canceled).Valid() {
		return nil, ErrAdjustmentInvalid
	}

	adjustment := &model.ScheduleAdjustment{
		SubjectID: subjectID,
		Type:      req.Type,
		Date:      date,
	}

	if err := s.repo.Adjustment.Create(ctx, adjustment); err != nil {
		s.logger.Error("登记课程调整失败", zap.Error(err))
		return nil, err
	}

	return &dto.AdjustmentResponse{
		ID:   adjustment.AdjustmentID,
		Type: adjustment.Type,
		Date: adjustment.Date.Format("2006-01-02"),
	}, nil
}

// ────────────────────── RemoveAdjustment ──────────────────────

func (s *subjectService) RemoveAdjustment(ctx context.Context, subjectID, adjustmentID string) error {
	adjustment, err := s.repo.Adjustment.GetByID(ctx, adjustmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAdjustmentNotFound
		}
		s.logger.Error("查询调整记录失败", zap.String("id", adjustmentID), zap.Error(err))
		return err
	}
	if adjustment.SubjectID != subjectID {
		return ErrAdjustmentNotFound
	}

	if err := s.repo.Adjustment.Delete(ctx, adjustmentID); err != nil {
		s.logger.Error("删除调整记录失败", zap.String("id", adjustmentID), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

func validateSubjectConfig(credits int, testWeight, reportWeight float64, totalTests int) error {
	if credits <= 0 || totalTests <= 0 {
		return ErrSubjectConfigInvalid
	}
	if !engine.ValidateWeights(testWeight, reportWeight) {
		return ErrSubjectConfigInvalid
	}
	return nil
}

func (s *subjectService) toSubjectResponse(subject *model.Subject) *dto.SubjectResponse {
	canceled, extra := subject.CountAdjustments()
	result := engine.ComputeLimit(subject.Credits, subject.IsHalfCourse, extra, canceled)

	limit := result.Limit
	if subject.RequiredAbsenceLimit != nil {
		limit = *subject.RequiredAbsenceLimit
	}

	return &dto.SubjectResponse{
		ID:                   subject.SubjectID,
		Name:                 subject.Name,
		Credits:              subject.Credits,
		Weekday:              subject.Weekday,
		Period:               subject.Period,
		IsHalfCourse:         subject.IsHalfCourse,
		TestWeight:           subject.TestWeight,
		ReportWeight:         subject.ReportWeight,
		TotalTests:           subject.TotalTests,
		RequiredAbsenceLimit: subject.RequiredAbsenceLimit,
		TotalPeriods:         result.TotalPeriods,
		AbsenceLimit:         limit,
		CanceledCount:        canceled,
		ExtraCount:           extra,
	}
}
