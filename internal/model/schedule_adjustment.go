package model

import "time"

// 调整类型常量
const (
	AdjustmentCanceled = "CANCELED" // 休讲：总课时 -1
	AdjustmentExtra    = "EXTRA"    // 补讲：总课时 +1
)

// ScheduleAdjustment 课程调整表 — 对应 schedule_adjustments
type ScheduleAdjustment struct {
	AdjustmentID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"adjustment_id"`
	SubjectID    string    `gorm:"type:uuid;not null"                             json:"subject_id"`
	Type         string    `gorm:"type:varchar(10);not null"                      json:"type"`
	Date         time.Time `gorm:"type:date;not null"                             json:"date"`
	BaseModel
}

// TableName 指定表名
func (ScheduleAdjustment) TableName() string { return "schedule_adjustments" }
