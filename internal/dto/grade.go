package dto

// ── 成绩模块 DTO ──

// UpsertGradeRequest 成绩录入请求
// type=test 时 test_number/score 必填；type=report 时 report_score 必填
type UpsertGradeRequest struct {
	SubjectID   string   `json:"subject_id"   binding:"required,uuid"`
	Type        string   `json:"type"         binding:"required,oneof=test report"`
	TestNumber  *int     `json:"test_number"  binding:"omitempty,min=1"`
	Score       *float64 `json:"score"        binding:"omitempty,min=0,max=100"`
	ReportScore *float64 `json:"report_score" binding:"omitempty,min=0,max=100"`
}

// GradeRecordResponse 单条测验成绩
type GradeRecordResponse struct {
	SubjectID  string  `json:"subject_id"`
	TestNumber int     `json:"test_number"`
	Score      float64 `json:"score"`
}

// ParticipationResponse 平常点
type ParticipationResponse struct {
	SubjectID   string  `json:"subject_id"`
	ReportScore float64 `json:"report_score"`
}
