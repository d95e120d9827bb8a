package model

import "time"

// AttendanceRecord 缺席记录表 — 对应 attendance_records
//
// 撤销采用软删除（IsDeleted=true）而非物理删除，保留审计痕迹；
// 「撤销最近一条」按 CreatedAt 倒序定位有效记录。
type AttendanceRecord struct {
	AttendanceID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_id"`
	UserID       string    `gorm:"type:uuid;not null"                             json:"user_id"`
	SubjectID    string    `gorm:"type:uuid;not null"                             json:"subject_id"`
	Date         time.Time `gorm:"type:date;not null"                             json:"date"`
	IsDeleted    bool      `gorm:"not null;default:false"                         json:"is_deleted"`
	BaseModel

	// 关联
	Subject *Subject `gorm:"foreignKey:SubjectID;references:SubjectID" json:"subject,omitempty"`
}

// TableName 指定表名
func (AttendanceRecord) TableName() string { return "attendance_records" }
