package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/an-nn-t/attendance-tracker/internal/model"
	apperrors "github.com/an-nn-t/attendance-tracker/pkg/errors"
)

// SubjectRepository 科目数据访问接口
type SubjectRepository interface {
	Create(ctx context.Context, subject *model.Subject) error
	GetByID(ctx context.Context, id string) (*model.Subject, error)
	List(ctx context.Context) ([]model.Subject, error)
	Update(ctx context.Context, subject *model.Subject) error
	Delete(ctx context.Context, id string) error
}

type subjectRepo struct {
	db *gorm.DB
}

// NewSubjectRepo 创建 SubjectRepository 实例
func NewSubjectRepo(db *gorm.DB) SubjectRepository {
	return &subjectRepo{db: db}
}

func (r *subjectRepo) Create(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *subjectRepo) GetByID(ctx context.Context, id string) (*model.Subject, error) {
	var subject model.Subject
	err := r.db.WithContext(ctx).
		Preload("Adjustments").
		Where("subject_id = ?", id).
		First(&subject).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

// List 返回所有科目（含调整记录），按曜日・時限排序
func (r *subjectRepo) List(ctx context.Context) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.db.WithContext(ctx).
		Preload("Adjustments").
		Order("weekday ASC, period ASC").
		Find(&subjects).Error
	return subjects, err
}

// Update 乐观锁更新：version 不匹配说明被并发修改
func (r *subjectRepo) Update(ctx context.Context, subject *model.Subject) error {
	currentVersion := subject.Version
	subject.Version++

	result := r.db.WithContext(ctx).
		Model(&model.Subject{}).
		Where("subject_id = ? AND version = ?", subject.SubjectID, currentVersion).
		Updates(map[string]interface{}{
			"name":                   subject.Name,
			"credits":                subject.Credits,
			"weekday":                subject.Weekday,
			"period":                 subject.Period,
			"is_half_course":         subject.IsHalfCourse,
			"test_weight":            subject.TestWeight,
			"report_weight":          subject.ReportWeight,
			"total_tests":            subject.TotalTests,
			"required_absence_limit": subject.RequiredAbsenceLimit,
			"version":                subject.Version,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrConcurrentUpdate
	}
	return nil
}

func (r *subjectRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("subject_id = ?", id).
		Delete(&model.Subject{}).Error
}
