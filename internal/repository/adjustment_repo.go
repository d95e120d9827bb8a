package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/an-nn-t/attendance-tracker/internal/model"
)

// AdjustmentRepository 课程调整数据访问接口
type AdjustmentRepository interface {
	Create(ctx context.Context, adjustment *model.ScheduleAdjustment) error
	BatchCreate(ctx context.Context, adjustments []model.ScheduleAdjustment) error
	GetByID(ctx context.Context, id string) (*model.ScheduleAdjustment, error)
	ListBySubject(ctx context.Context, subjectID string) ([]model.ScheduleAdjustment, error)
	Delete(ctx context.Context, id string) error
}

type adjustmentRepo struct {
	db *gorm.DB
}

// NewAdjustmentRepo 创建 AdjustmentRepository 实例
func NewAdjustmentRepo(db *gorm.DB) AdjustmentRepository {
	return &adjustmentRepo{db: db}
}

func (r *adjustmentRepo) Create(ctx context.Context, adjustment *model.ScheduleAdjustment) error {
	return r.db.WithContext(ctx).Create(adjustment).Error
}

func (r *adjustmentRepo) BatchCreate(ctx context.Context, adjustments []model.ScheduleAdjustment) error {
	if len(adjustments) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&adjustments).Error
}

func (r *adjustmentRepo) GetByID(ctx context.Context, id string) (*model.ScheduleAdjustment, error) {
	var adjustment model.ScheduleAdjustment
	err := r.db.WithContext(ctx).
		Where("adjustment_id = ?", id).
		First(&adjustment).Error
	if err != nil {
		return nil, err
	}
	return &adjustment, nil
}

func (r *adjustmentRepo) ListBySubject(ctx context.Context, subjectID string) ([]model.ScheduleAdjustment, error) {
	var adjustments []model.ScheduleAdjustment
	err := r.db.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Order("date ASC").
		Find(&adjustments).Error
	return adjustments, err
}

func (r *adjustmentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("adjustment_id = ?", id).
		Delete(&model.ScheduleAdjustment{}).Error
}
