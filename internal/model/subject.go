package model

// Subject 科目表 — 对应 subjects
//
// TestWeight + ReportWeight 应为 100，由 Service 层在创建/更新时校验。
// RequiredAbsenceLimit 非空时覆盖按三分之一规则推导的缺席上限。
type Subject struct {
	SubjectID            string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"subject_id"`
	Name                 string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Credits              int     `gorm:"not null"                                       json:"credits"`
	Weekday              int     `gorm:"not null;default:0"                             json:"weekday"` // 0=周日 … 6=周六
	Period               int     `gorm:"not null;default:1"                             json:"period"`  // 第几限
	IsHalfCourse         bool    `gorm:"not null;default:false"                         json:"is_half_course"`
	TestWeight           float64 `gorm:"not null"                                       json:"test_weight"`
	ReportWeight         float64 `gorm:"not null"                                       json:"report_weight"`
	TotalTests           int     `gorm:"not null"                                       json:"total_tests"`
	RequiredAbsenceLimit *int    `json:"required_absence_limit,omitempty"`
	VersionedModel

	// 关联
	Adjustments []ScheduleAdjustment `gorm:"foreignKey:SubjectID;references:SubjectID" json:"adjustments,omitempty"`
}

// TableName 指定表名
func (Subject) TableName() string { return "subjects" }

// CountAdjustments 统计休讲与补讲条数
func (s *Subject) CountAdjustments() (canceled, extra int) {
	for _, adj := range s.Adjustments {
		switch adj.Type {
		case AdjustmentCanceled:
			canceled++
		case AdjustmentExtra:
			extra++
		}
	}
	return canceled, extra
}
