package model

// GradeRecord 测验成绩表 — 对应 grade_records
// (user_id, subject_id, test_number) 唯一，写入采用 upsert
type GradeRecord struct {
	GradeID    string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"       json:"grade_id"`
	UserID     string  `gorm:"type:uuid;not null;uniqueIndex:uniq_grade"            json:"user_id"`
	SubjectID  string  `gorm:"type:uuid;not null;uniqueIndex:uniq_grade"            json:"subject_id"`
	TestNumber int     `gorm:"not null;uniqueIndex:uniq_grade"                      json:"test_number"`
	Score      float64 `gorm:"not null"                                             json:"score"`
	BaseModel
}

// TableName 指定表名
func (GradeRecord) TableName() string { return "grade_records" }
