// Package engine 实现出席与成绩风险的纯计算核心。
//
// 三个组件均为无状态的纯函数，每次查询都从当前存储事实重新计算，
// 保证结果永远与最新的科目配置一致：
//
//   - 缺席上限计算（三分之一规则）
//   - 及格线逆算（剩余测验所需分数）
//   - 跨科目风险汇总（留级阈值判定）
package engine

// 领域常量
const (
	// PeriodsPerCredit 1 学分 = 30 コマ（全学期）
	PeriodsPerCredit = 30
	// AbsenceDivisor 「最多缺席总课时的三分之一」规则的除数
	AbsenceDivisor = 3
)

// AbsenceResult 缺席上限计算结果
type AbsenceResult struct {
	TotalPeriods int // 调整后的总课时（可能为负，表示配置错误）
	Limit        int // 允许缺席的最大次数（整除向下取整）
}

// Valid 总课时为负说明休讲数超过了基础课时，属于配置错误。
// 计算本身不截断，由调用方决定如何上报。
func (r AbsenceResult) Valid() bool {
	return r.TotalPeriods >= 0
}

// ComputeLimit 根据科目配置推导总课时与缺席上限。
//
// 基础课时 = credits * 30（半期科目减半），
// 再加补讲、减休讲。上限 = 总课时 / 3（向下取整）——
// 缺席以整次计，不足一课时不可宽恕，故不做四舍五入。
func ComputeLimit(credits int, isHalfCourse bool, extraCount, canceledCount int) AbsenceResult {
	basePeriods := credits * PeriodsPerCredit
	if isHalfCourse {
		basePeriods /= 2
	}

	totalPeriods := basePeriods + extraCount - canceledCount

	limit := 0
	if totalPeriods > 0 {
		limit = totalPeriods / AbsenceDivisor
	}

	return AbsenceResult{
		TotalPeriods: totalPeriods,
		Limit:        limit,
	}
}

// RemainingAbsences 还可以缺席的次数（可为负）
func RemainingAbsences(limit, absenceCount int) int {
	return limit - absenceCount
}

// AttendanceOut 缺席次数已超上限 ⇒ 出席不足确定失去学分
func AttendanceOut(remaining int) bool {
	return remaining < 0
}
