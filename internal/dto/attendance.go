package dto

// ── 缺席记录 DTO ──

// AttendanceActionRequest 缺席登记/撤销请求
// action=add 追加一条缺席；action=remove 撤销最近一条有效缺席
type AttendanceActionRequest struct {
	SubjectID string `json:"subject_id" binding:"required,uuid"`
	Action    string `json:"action"     binding:"required,oneof=add remove"`
	Date      string `json:"date"       binding:"omitempty"` // 省略时使用当天
}

// AttendanceActionResponse 缺席操作结果
type AttendanceActionResponse struct {
	// Removed 仅 action=remove 时有意义：false 表示没有可撤销的记录
	Removed      *bool `json:"removed,omitempty"`
	AbsenceCount int   `json:"absence_count"` // 操作后的有效缺席数
}

// AttendanceRecordResponse 单条缺席记录
type AttendanceRecordResponse struct {
	ID        string `json:"id"`
	SubjectID string `json:"subject_id"`
	Date      string `json:"date"`
	CreatedAt string `json:"created_at"`
}
