package model

// ParticipationScore 平常点表 — 对应 participation_scores
// (user_id, subject_id) 唯一，写入采用 upsert
type ParticipationScore struct {
	ReportID    string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"    json:"report_id"`
	UserID      string  `gorm:"type:uuid;not null;uniqueIndex:uniq_participation" json:"user_id"`
	SubjectID   string  `gorm:"type:uuid;not null;uniqueIndex:uniq_participation" json:"subject_id"`
	ReportScore float64 `gorm:"not null"                                          json:"report_score"`
	BaseModel
}

// TableName 指定表名
func (ParticipationScore) TableName() string { return "participation_scores" }
