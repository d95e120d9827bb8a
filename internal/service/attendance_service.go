package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/an-nn-t/attendance-tracker/internal/dto"
	"github.com/an-nn-t/attendance-tracker/internal/model"
	"github.com/an-nn-t/attendance-tracker/internal/repository"
)

// ── 缺席模块业务错误 ──

var ErrAttendanceActionInvalid = errors.New("不支持的缺席操作")

// AttendanceService 缺席记录业务接口
type AttendanceService interface {
	// Act 处理缺席登记（add）或撤销最近一条（remove）
	Act(ctx context.Context, userID string, req *dto.AttendanceActionRequest) (*dto.AttendanceActionResponse, error)
	ListMine(ctx context.Context, userID, subjectID string) ([]dto.AttendanceRecordResponse, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService 创建 AttendanceService 实例
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger}
}

// ────────────────────── Act ──────────────────────

func (s *attendanceService) Act(ctx context.Context, userID string, req *dto.AttendanceActionRequest) (*dto.AttendanceActionResponse, error) {
	// 科目存在性检查
	if _, err := s.repo.Subject.GetByID(ctx, req.SubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("查询科目失败", zap.String("id", req.SubjectID), zap.Error(err))
		return nil, err
	}

	var removed *bool

	switch req.Action {
	case "add":
		date := time.Now()
		if req.Date != "" {
			parsed, err := time.Parse("2006-01-02", req.Date)
			if err != nil {
				return nil, ErrDateInvalid
			}
			date = parsed
		}

		record := &model.AttendanceRecord{
			UserID:    userID,
			SubjectID: req.SubjectID,
			Date:      date,
		}
		if err := s.repo.Attendance.Create(ctx, record); err != nil {
			s.logger.Error("登记缺席失败", zap.Error(err))
			return nil, err
		}

	case "remove":
		ok, err := s.repo.Attendance.RetractLatest(ctx, userID, req.SubjectID)
		if err != nil {
			s.logger.Error("撤销缺席失败", zap.Error(err))
			return nil, err
		}
		removed = &ok

	default:
		return nil, ErrAttendanceActionInvalid
	}

	count, err := s.repo.Attendance.CountActive(ctx, userID, req.SubjectID)
	if err != nil {
		s.logger.Error("统计缺席数失败", zap.Error(err))
		return nil, err
	}

	return &dto.AttendanceActionResponse{
		Removed:      removed,
		AbsenceCount: int(count),
	}, nil
}

// ────────────────────── ListMine ──────────────────────

func (s *attendanceService) ListMine(ctx context.Context, userID, subjectID string) ([]dto.AttendanceRecordResponse, error) {
	var (
		records []model.AttendanceRecord
		err     error
	)
	if subjectID != "" {
		records, err = s.repo.Attendance.ListActiveByUserSubject(ctx, userID, subjectID)
	} else {
		records, err = s.repo.Attendance.ListActiveByUser(ctx, userID)
	}
	if err != nil {
		s.logger.Error("查询缺席记录失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AttendanceRecordResponse, 0, len(records))
	for _, record := range records {
		result = append(result, dto.AttendanceRecordResponse{
			ID:        record.AttendanceID,
			SubjectID: record.SubjectID,
			Date:      record.Date.Format("2006-01-02"),
			CreatedAt: record.CreatedAt.Format(time.RFC3339),
		})
	}

	return result, nil
}
