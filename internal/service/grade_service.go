package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/an-nn-t/attendance-tracker/internal/dto"
	"github.com/an-nn-t/attendance-tracker/internal/model"
	"github.com/an-nn-t/attendance-tracker/internal/repository"
)

// ── 成绩模块业务错误 ──

var (
	ErrGradeFieldsMissing = errors.New("成绩录入缺少必要字段")
	ErrScoreOutOfRange    = errors.New("分数必须在 0-100 之间")
)

// GradeService 成绩业务接口
type GradeService interface {
	// Upsert 录入或订正测验成绩 / 平常点（按键覆盖，last-write-wins）
	Upsert(ctx context.Context, userID string, req *dto.UpsertGradeRequest) error
	ListMine(ctx context.Context, userID, subjectID string) ([]dto.GradeRecordResponse, error)
	GetMyParticipation(ctx context.Context, userID, subjectID string) (*dto.ParticipationResponse, error)
}

type gradeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewGradeService 创建 GradeService 实例
func NewGradeService(repo *repository.Repository, logger *zap.Logger) GradeService {
	return &gradeService{repo: repo, logger: logger}
}

// ────────────────────── Upsert ──────────────────────

func (s *gradeService) Upsert(ctx context.Context, userID string, req *dto.UpsertGradeRequest) error {
	// 科目存在性检查
	if _, err := s.repo.Subject.GetByID(ctx, req.SubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubjectNotFound
		}
		s.logger.Error("查询科目失败", zap.String("id", req.SubjectID), zap.Error(err))
		return err
	}

	switch req.Type {
	case "test":
		if req.TestNumber == nil || req.Score == nil {
			return ErrGradeFieldsMissing
		}
		if *req.Score < 0 || *req.Score > 100 {
			return ErrScoreOutOfRange
		}
		// 超出计划测验次数的回次允许录入（仅供参考，不参与推算）
		record := &model.GradeRecord{
			UserID:     userID,
			SubjectID:  req.SubjectID,
			TestNumber: *req.TestNumber,
			Score:      *req.Score,
		}
		if err := s.repo.Grade.Upsert(ctx, record); err != nil {
			s.logger.Error("写入测验成绩失败", zap.Error(err))
			return err
		}

	case "report":
		if req.ReportScore == nil {
			return ErrGradeFieldsMissing
		}
		if *req.ReportScore < 0 || *req.ReportScore > 100 {
			return ErrScoreOutOfRange
		}
		score := &model.ParticipationScore{
			UserID:      userID,
			SubjectID:   req.SubjectID,
			ReportScore: *req.ReportScore,
		}
		if err := s.repo.Participation.Upsert(ctx, score); err != nil {
			s.logger.Error("写入平常点失败", zap.Error(err))
			return err
		}

	default:
		return ErrGradeFieldsMissing
	}

	return nil
}

// ────────────────────── ListMine ──────────────────────

func (s *gradeService) ListMine(ctx context.Context, userID, subjectID string) ([]dto.GradeRecordResponse, error) {
	var (
		records []model.GradeRecord
		err     error
	)
	if subjectID != "" {
		records, err = s.repo.Grade.ListByUserSubject(ctx, userID, subjectID)
	} else {
		records, err = s.repo.Grade.ListByUser(ctx, userID)
	}
	if err != nil {
		s.logger.Error("查询成绩失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.GradeRecordResponse, 0, len(records))
	for _, record := range records {
		result = append(result, dto.GradeRecordResponse{
			SubjectID:  record.SubjectID,
			TestNumber: record.TestNumber,
			Score:      record.Score,
		})
	}

	return result, nil
}

// ────────────────────── GetMyParticipation ──────────────────────

func (s *gradeService) GetMyParticipation(ctx context.Context, userID, subjectID string) (*dto.ParticipationResponse, error) {
	score, err := s.repo.Participation.GetByUserSubject(ctx, userID, subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 未录入平常点是合法状态，调用方据此使用预设值
			return nil, nil
		}
		s.logger.Error("查询平常点失败", zap.Error(err))
		return nil, err
	}

	return &dto.ParticipationResponse{
		SubjectID:   score.SubjectID,
		ReportScore: score.ReportScore,
	}, nil
}
