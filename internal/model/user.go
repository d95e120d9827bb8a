package model

// 角色常量
const (
	RoleAdmin   = "ADMIN"
	RoleStudent = "STUDENT"
)

// User 用户表 — 对应 users
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	AttendanceNo int    `gorm:"not null"                                       json:"attendance_no"`
	Nickname     string `gorm:"type:varchar(50);not null"                      json:"nickname"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'STUDENT'"    json:"role"`
	SoftDeleteModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }
