package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/an-nn-t/attendance-tracker/internal/model"
)

// GradeRepository 测验成绩数据访问接口
type GradeRepository interface {
	// Upsert 按 (user_id, subject_id, test_number) 写入或覆盖。
	// 成绩订正是合法覆盖，last-write-wins。
	Upsert(ctx context.Context, record *model.GradeRecord) error
	ListByUser(ctx context.Context, userID string) ([]model.GradeRecord, error)
	ListByUserSubject(ctx context.Context, userID, subjectID string) ([]model.GradeRecord, error)
}

type gradeRepo struct {
	db *gorm.DB
}

// NewGradeRepo 创建 GradeRepository 实例
func NewGradeRepo(db *gorm.DB) GradeRepository {
	return &gradeRepo{db: db}
}

func (r *gradeRepo) Upsert(ctx context.Context, record *model.GradeRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"}, {Name: "subject_id"}, {Name: "test_number"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"score":      record.Score,
				"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
			}),
		}).
		Create(record).Error
}

func (r *gradeRepo) ListByUser(ctx context.Context, userID string) ([]model.GradeRecord, error) {
	var records []model.GradeRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("subject_id ASC, test_number ASC").
		Find(&records).Error
	return records, err
}

func (r *gradeRepo) ListByUserSubject(ctx context.Context, userID, subjectID string) ([]model.GradeRecord, error) {
	var records []model.GradeRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND subject_id = ?", userID, subjectID).
		Order("test_number ASC").
		Find(&records).Error
	return records, err
}
