package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/an-nn-t/attendance-tracker/internal/model"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByAttendanceNo(ctx context.Context, attendanceNo int) (*model.User, error)
	ListStudents(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
}

// userRepo UserRepository 的 GORM 实现
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByAttendanceNo(ctx context.Context, attendanceNo int) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("attendance_no = ?", attendanceNo).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListStudents 按出席番号升序返回所有学生（不含管理员）
func (r *userRepo) ListStudents(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("role = ?", model.RoleStudent).
		Order("attendance_no ASC").
		Find(&users).Error
	return users, err
}

func (r *userRepo) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}
