package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/an-nn-t/attendance-tracker/internal/model"
)

// AttendanceRepository 缺席记录数据访问接口
//
// 撤销是软删除（is_deleted=true），物理删除不存在，审计痕迹完整保留。
type AttendanceRepository interface {
	Create(ctx context.Context, record *model.AttendanceRecord) error
	// RetractLatest 软删除该学生该科目最新的一条有效记录。
	// 返回是否确实撤销了一条（无有效记录时为 false，不报错）。
	RetractLatest(ctx context.Context, userID, subjectID string) (bool, error)
	CountActive(ctx context.Context, userID, subjectID string) (int64, error)
	ListActiveByUser(ctx context.Context, userID string) ([]model.AttendanceRecord, error)
	ListActiveByUserSubject(ctx context.Context, userID, subjectID string) ([]model.AttendanceRecord, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo 创建 AttendanceRepository 实例
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Create(ctx context.Context, record *model.AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// RetractLatest 单条 SQL 内完成「定位最新有效记录 + 标记删除」，
// 缩小并发撤销的竞态窗口（残余的双撤销风险按设计接受）。
func (r *attendanceRepo) RetractLatest(ctx context.Context, userID, subjectID string) (bool, error) {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE attendance_records
		SET is_deleted = TRUE, updated_at = CURRENT_TIMESTAMP
		WHERE attendance_id = (
			SELECT attendance_id FROM attendance_records
			WHERE user_id = ? AND subject_id = ? AND NOT is_deleted
			ORDER BY created_at DESC
			LIMIT 1
		)`, userID, subjectID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *attendanceRepo) CountActive(ctx context.Context, userID, subjectID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.AttendanceRecord{}).
		Where("user_id = ? AND subject_id = ? AND is_deleted = ?", userID, subjectID, false).
		Count(&count).Error
	return count, err
}

func (r *attendanceRepo) ListActiveByUser(ctx context.Context, userID string) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at ASC").
		Find(&records).Error
	return records, err
}

func (r *attendanceRepo) ListActiveByUserSubject(ctx context.Context, userID, subjectID string) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND subject_id = ? AND is_deleted = ?", userID, subjectID, false).
		Order("created_at ASC").
		Find(&records).Error
	return records, err
}
