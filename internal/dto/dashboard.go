package dto

// ── 仪表盘 DTO ──

// DashboardResponse 学生仪表盘：全科目的出席与成绩风险
type DashboardResponse struct {
	User               DashboardUser      `json:"user"`
	TotalFailedCredits int                `json:"total_failed_credits"`
	IsAtRisk           bool               `json:"is_at_risk"` // 失去学分 ≥ 8 ⇒ 留级危险
	Subjects           []SubjectDashboard `json:"subjects"`
}

// DashboardUser 仪表盘用户摘要
type DashboardUser struct {
	Nickname     string `json:"nickname"`
	AttendanceNo int    `json:"attendance_no"`
}

// SubjectDashboard 单科目的计算结果
type SubjectDashboard struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Credits           int       `json:"credits"`
	TotalPeriods      int       `json:"total_periods"`
	AbsenceCount      int       `json:"absence_count"`
	Limit             int       `json:"limit"`
	RemainingAbsences int       `json:"remaining_absences"`
	IsAttendanceOut   bool      `json:"is_attendance_out"`
	Scores            []float64 `json:"scores"`
	TotalTests        int       `json:"total_tests"`
	ReportScore       *float64  `json:"report_score,omitempty"` // 未录入时为空（计算用了预设值）
	// RequiredScore 剩余每次测验所需分数（未截断）；落单确定时为空
	RequiredScore *float64 `json:"required_score"`
	// RequiredScoreDisplay 展示用向上取整值；落单确定时为空
	RequiredScoreDisplay *int `json:"required_score_display"`
	IsGradeOut           bool `json:"is_grade_out"`
}

// ── 学生概览（管理员） DTO ──

// StudentOverviewResponse 学生概览一行
type StudentOverviewResponse struct {
	ID           string `json:"id"`
	AttendanceNo int    `json:"attendance_no"`
	Nickname     string `json:"nickname"`
	// MinRemainingAbsences 各科目剩余可缺席次数的最小值；
	// 无任何缺席记录时为配置的兜底值
	MinRemainingAbsences int  `json:"min_remaining_absences"`
	TotalAbsences        int  `json:"total_absences"`
	TotalFailedCredits   int  `json:"total_failed_credits"`
	IsAtRisk             bool `json:"is_at_risk"`
}
