package service

import (
	"go.uber.org/zap"

	"github.com/an-nn-t/attendance-tracker/config"
	"github.com/an-nn-t/attendance-tracker/internal/repository"
	"github.com/an-nn-t/attendance-tracker/pkg/jwt"
	"github.com/an-nn-t/attendance-tracker/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth       AuthService
	Subject    SubjectService
	Attendance AttendanceService
	Grade      GradeService
	Dashboard  DashboardService
	Export     ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	dashboard := NewDashboardService(cfg, repo, logger)
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Subject:    NewSubjectService(repo, logger),
		Attendance: NewAttendanceService(repo, logger),
		Grade:      NewGradeService(repo, logger),
		Dashboard:  dashboard,
		Export:     NewExportService(dashboard, logger),
	}
}
