package engine

import "math"

// PassingScore 及格线（百分制综合评价）
const PassingScore = 60.0

// RequiredScore 逆算「剩余每次测验需要拿多少分」才能达到及格线。
//
// 每次测验占比 = testWeight / 100 / totalTests，按计划测验总数均分，
// 与实际已考次数无关。返回值不截断到 [0,100]：超过 100 表示
// 理论上已不可能满分追回，是否按落单处理由调用方决定。
//
// 返回 (0, true)        : 已稳拿及格，无需再得分
// 返回 (x, true)        : 剩余每次测验需要 x 分（未截断）
// 返回 (0, false)       : 没有剩余测验且未达线 ⇒ 落单确定
func RequiredScore(testWeight, reportWeight float64, totalTests int, scores []float64, expectedReportScore float64) (float64, bool) {
	perTestShare := testWeight / 100 / float64(totalTests)

	reportPoints := expectedReportScore * (reportWeight / 100)

	testPoints := 0.0
	for _, score := range scores {
		testPoints += score * perTestShare
	}

	currentTotal := reportPoints + testPoints
	remainingNeeded := PassingScore - currentTotal

	// 已经超过及格线
	if remainingNeeded <= 0 {
		return 0, true
	}

	remainingTests := totalTests - len(scores)

	// 没有剩余测验却仍未达线 ⇒ 落单确定
	if remainingTests <= 0 {
		return 0, false
	}

	return remainingNeeded / (perTestShare * float64(remainingTests)), true
}

// DisplayScore 展示用的整数目标分：向上取整保证「拿到该分一定够」。
// 取整只发生在展示层，引擎内部全程浮点。
func DisplayScore(required float64) int {
	return int(math.Ceil(required))
}
