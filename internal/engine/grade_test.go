package engine

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRequiredScore_NoTestsTakenYet(t *testing.T) {
	// 平常点 30% × 100 点 = 30 点，还差 30 点
	// 每次测验满分贡献 35 点 → 需要 30 / (0.35*2) ≈ 42.857
	got, ok := RequiredScore(70, 30, 2, nil, 100)
	if !ok {
		t.Fatal("不应判定落单")
	}
	want := 30.0 / (0.35 * 2)
	if !almostEqual(got, want) {
		t.Errorf("期望 %.6f，实际 %.6f", want, got)
	}
}

func TestRequiredScore_GradeOutDespiteOnePointShort(t *testing.T) {
	// 80*0.3 + (50+50)*0.35 = 24 + 35 = 59 点，仅差 1 分但已无剩余测验
	_, ok := RequiredScore(70, 30, 2, []float64{50, 50}, 80)
	if ok {
		t.Error("没有剩余测验且未达线时应判定落单")
	}
}

func TestRequiredScore_AlreadyPassed(t *testing.T) {
	// 100*0.3 + 90*0.35 = 61.5 ≥ 60，已稳过
	got, ok := RequiredScore(70, 30, 2, []float64{90}, 100)
	if !ok {
		t.Fatal("不应判定落单")
	}
	if got != 0 {
		t.Errorf("已达线时应返回 0，实际 %.6f", got)
	}
}

func TestRequiredScore_AllTestsTakenAndPassed(t *testing.T) {
	// 全部测验已考完且达线：返回 0 而非落单
	got, ok := RequiredScore(70, 30, 2, []float64{90, 90}, 80)
	if !ok || got != 0 {
		t.Errorf("期望 (0,true)，实际 (%.4f,%v)", got, ok)
	}
}

func TestRequiredScore_Above100NotClamped(t *testing.T) {
	// 平常点 0、首测 0 分：剩余 1 次测验需要的分数远超 100，原样返回
	got, ok := RequiredScore(70, 30, 2, []float64{0}, 0)
	if !ok {
		t.Fatal("仍有剩余测验时不应判定落单")
	}
	if got <= 100 {
		t.Errorf("期望未截断的 >100 结果，实际 %.4f", got)
	}
	want := 60.0 / (0.35 * 1)
	if !almostEqual(got, want) {
		t.Errorf("期望 %.6f，实际 %.6f", want, got)
	}
}

func TestRequiredScore_Monotonicity(t *testing.T) {
	// 提高任一已得分数，所需分数不应上升
	base, ok := RequiredScore(70, 30, 3, []float64{40, 50}, 60)
	if !ok {
		t.Fatal("前提不成立: 不应落单")
	}
	for i, bumped := range [][]float64{{60, 50}, {40, 70}, {100, 100}} {
		got, ok := RequiredScore(70, 30, 3, bumped, 60)
		if !ok {
			t.Fatalf("case %d: 不应落单", i)
		}
		if got > base+1e-9 {
			t.Errorf("case %d: 提分后所需分数反而上升 %.4f → %.4f", i, base, got)
		}
	}
}

func TestRequiredScore_WeightSplitAcrossPlannedTests(t *testing.T) {
	// 占比按计划总次数均分，与已考次数无关：
	// totalTests=4 时每次贡献 70/100/4 = 0.175
	got, ok := RequiredScore(70, 30, 4, []float64{80}, 90)
	if !ok {
		t.Fatal("不应判定落单")
	}
	current := 90*0.3 + 80*0.175
	want := (60 - current) / (0.175 * 3)
	if !almostEqual(got, want) {
		t.Errorf("期望 %.6f，实际 %.6f", want, got)
	}
}

func TestDisplayScore_CeilForSafety(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{42.857142857, 43},
		{43.0, 43},
		{0.0, 0},
		{100.0001, 101},
	}
	for _, tt := range tests {
		if got := DisplayScore(tt.in); got != tt.want {
			t.Errorf("DisplayScore(%v): 期望 %d，实际 %d", tt.in, tt.want, got)
		}
	}
}
