package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/an-nn-t/attendance-tracker/internal/model"
)

// ParticipationRepository 平常点数据访问接口
type ParticipationRepository interface {
	// Upsert 按 (user_id, subject_id) 写入或覆盖
	Upsert(ctx context.Context, score *model.ParticipationScore) error
	GetByUserSubject(ctx context.Context, userID, subjectID string) (*model.ParticipationScore, error)
	ListByUser(ctx context.Context, userID string) ([]model.ParticipationScore, error)
}

type participationRepo struct {
	db *gorm.DB
}

// NewParticipationRepo 创建 ParticipationRepository 实例
func NewParticipationRepo(db *gorm.DB) ParticipationRepository {
	return &participationRepo{db: db}
}

func (r *participationRepo) Upsert(ctx context.Context, score *model.ParticipationScore) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"}, {Name: "subject_id"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"report_score": score.ReportScore,
				"updated_at":   gorm.Expr("CURRENT_TIMESTAMP"),
			}),
		}).
		Create(score).Error
}

func (r *participationRepo) GetByUserSubject(ctx context.Context, userID, subjectID string) (*model.ParticipationScore, error) {
	var score model.ParticipationScore
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND subject_id = ?", userID, subjectID).
		First(&score).Error
	if err != nil {
		return nil, err
	}
	return &score, nil
}

func (r *participationRepo) ListByUser(ctx context.Context, userID string) ([]model.ParticipationScore, error) {
	var scores []model.ParticipationScore
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&scores).Error
	return scores, err
}
