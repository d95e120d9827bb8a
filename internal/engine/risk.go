package engine

// CatastrophicCredits 累计失去学分達到此数即有留级危险
const CatastrophicCredits = 8

// Verdict 单科目的判定结果（出席 + 成绩）
type Verdict struct {
	Credits           int
	AbsenceCount      int
	RemainingAbsences int
	AttendanceOut     bool
	GradeOut          bool
}

// Failed 该科目学分已确定无法取得
func (v Verdict) Failed() bool {
	return v.AttendanceOut || v.GradeOut
}

// Risk 跨科目汇总结果
type Risk struct {
	TotalFailedCredits int
	AtRisk             bool
}

// Aggregate 汇总所有科目的判定：累加已失学分，判定留级风险
func Aggregate(verdicts []Verdict) Risk {
	total := 0
	for _, v := range verdicts {
		if v.Failed() {
			total += v.Credits
		}
	}
	return Risk{
		TotalFailedCredits: total,
		AtRisk:             total >= CatastrophicCredits,
	}
}

// MinRemaining 取「剩余可缺席次数」的最小值。
// 集合为空（所有科目均无缺席记录）时 ok 为 false，
// 兜底值由调用方注入，不在这里用哨兵值顶替。
func MinRemaining(remaining []int) (min int, ok bool) {
	if len(remaining) == 0 {
		return 0, false
	}
	min = remaining[0]
	for _, r := range remaining[1:] {
		if r < min {
			min = r
		}
	}
	return min, true
}

// ValidateWeights 测验与平常点占比之和应为 100
func ValidateWeights(testWeight, reportWeight float64) bool {
	return testWeight >= 0 && reportWeight >= 0 && testWeight+reportWeight == 100
}
