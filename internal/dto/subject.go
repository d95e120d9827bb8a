package dto

// ── 科目模块 DTO ──

// CreateSubjectRequest 创建科目请求
type CreateSubjectRequest struct {
	Name                 string  `json:"name"          binding:"required,min=1,max=100"`
	Credits              int     `json:"credits"       binding:"required,min=1"`
	Weekday              int     `json:"weekday"       binding:"min=0,max=6"`
	Period               int     `json:"period"        binding:"min=1,max=8"`
	IsHalfCourse         bool    `json:"is_half_course"`
	TestWeight           float64 `json:"test_weight"   binding:"min=0,max=100"`
	ReportWeight         float64 `json:"report_weight" binding:"min=0,max=100"`
	TotalTests           int     `json:"total_tests"   binding:"required,min=1"`
	RequiredAbsenceLimit *int    `json:"required_absence_limit" binding:"omitempty,min=0"`
}

// UpdateSubjectRequest 更新科目请求（部分更新）
type UpdateSubjectRequest struct {
	Name                 *string  `json:"name"          binding:"omitempty,min=1,max=100"`
	Credits              *int     `json:"credits"       binding:"omitempty,min=1"`
	Weekday              *int     `json:"weekday"       binding:"omitempty,min=0,max=6"`
	Period               *int     `json:"period"        binding:"omitempty,min=1,max=8"`
	IsHalfCourse         *bool    `json:"is_half_course"`
	TestWeight           *float64 `json:"test_weight"   binding:"omitempty,min=0,max=100"`
	ReportWeight         *float64 `json:"report_weight" binding:"omitempty,min=0,max=100"`
	TotalTests           *int     `json:"total_tests"   binding:"omitempty,min=1"`
	RequiredAbsenceLimit *int     `json:"required_absence_limit" binding:"omitempty,min=0"`
}

// SubjectResponse 科目信息响应
type SubjectResponse struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Credits              int     `json:"credits"`
	Weekday              int     `json:"weekday"`
	Period               int     `json:"period"`
	IsHalfCourse         bool    `json:"is_half_course"`
	TestWeight           float64 `json:"test_weight"`
	ReportWeight         float64 `json:"report_weight"`
	TotalTests           int     `json:"total_tests"`
	RequiredAbsenceLimit *int    `json:"required_absence_limit,omitempty"`
	TotalPeriods         int     `json:"total_periods"`
	AbsenceLimit         int     `json:"absence_limit"`
	CanceledCount        int     `json:"canceled_count"`
	ExtraCount           int     `json:"extra_count"`
}

// ── 课程调整 DTO ──

// CreateAdjustmentRequest 登记休讲/补讲请求
type CreateAdjustmentRequest struct {
	Type string `json:"type" binding:"required,oneof=CANCELED EXTRA"`
	Date string `json:"date" binding:"required"` // "2026-05-12"
}

// AdjustmentResponse 课程调整响应
type AdjustmentResponse struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Date string `json:"date"`
}

// ImportAdjustmentsResponse ICS 导入结果
type ImportAdjustmentsResponse struct {
	Imported int `json:"imported"`
	Canceled int `json:"canceled"`
	Extra    int `json:"extra"`
	Skipped  int `json:"skipped"`
}
