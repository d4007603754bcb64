package analysis

import (
	"strings"
	"testing"

	"github.com/zinojeng/inbody/internal/metric"
)

func storeOf(pairs map[string]any) *metric.Store {
	return metric.NewStoreFromMap(pairs)
}

func joined(lines []string) string {
	return strings.Join(lines, "\n")
}

func TestClassifyBMIBands(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{17.9, "體重過輕"},
		{18.5, "標準"},
		{23.4, "標準"},
		{24.0, "標準"},
		{24.1, "過重"},
		{27.0, "過重"},
		{28.0, "輕度肥胖"},
		{30.0, "輕度肥胖"},
		{33.0, "中度肥胖"},
		{35.0, "中度肥胖"},
		{35.1, "重度肥胖"},
	}
	for _, c := range cases {
		if got := ClassifyBMI(c.bmi); got != c.want {
			t.Errorf("ClassifyBMI(%.1f) = %q, want %q", c.bmi, got, c.want)
		}
	}
}

func TestClassifyPBFGenderBands(t *testing.T) {
	if got := ClassifyPBF(28.5, "M"); got != "偏高" {
		t.Errorf("male 28.5%% = %q, want 偏高", got)
	}
	if got := ClassifyPBF(28.5, "F"); got != "理想" {
		t.Errorf("female 28.5%% = %q, want 理想", got)
	}
	if got := ClassifyPBF(28.5, ""); got != "偏高" {
		t.Errorf("unknown gender should use male bands, got %q", got)
	}
	if got := ClassifyPBF(19.0, "男"); got != "理想" {
		t.Errorf("male 19.0%% = %q, want 理想", got)
	}
}

func TestWeightStatusNarrative(t *testing.T) {
	store := storeOf(map[string]any{
		"Weight_kg": 71.8,
		"Height_cm": 175.0,
		"PBF_pct":   28.5,
		"Gender":    "M",
	})
	engine := NewEngine(DefaultThresholds())
	text := joined(engine.WeightStatus(store))

	if !strings.Contains(text, "體重 71.8 kg，身高 175.0 cm。") {
		t.Errorf("missing weight/height line:\n%s", text)
	}
	if !strings.Contains(text, "體脂率 28.5%（偏高）。") {
		t.Errorf("missing body fat grading:\n%s", text)
	}
	// BMI derived from weight/height: 71.8 / 1.75² = 23.4
	if !strings.Contains(text, "BMI 23.4，屬於標準。") {
		t.Errorf("missing derived BMI line:\n%s", text)
	}
}

func TestWeightStatusPrefersTargetWeightOverControl(t *testing.T) {
	store := storeOf(map[string]any{
		"Weight_kg":        80.0,
		"TargetWeight_kg":  75.0,
		"WeightControl_kg": -5.0,
	})
	engine := NewEngine(DefaultThresholds())
	text := joined(engine.WeightStatus(store))
	if !strings.Contains(text, "建議目標體重 75.0 kg，與目前差異 5.0 kg（需減少）。") {
		t.Errorf("target weight line missing:\n%s", text)
	}
	if strings.Contains(text, "建議體重調整") {
		t.Errorf("control line should be suppressed when target weight resolves:\n%s", text)
	}
}

func TestMetabolicRiskOmitsLevelWhenAbsent(t *testing.T) {
	store := storeOf(map[string]any{
		"VFA_cm2": 59.6,
	})
	engine := NewEngine(DefaultThresholds())
	text := joined(engine.MetabolicRisk(store))
	if !strings.Contains(text, "內臟脂肪面積 59.6 cm²") {
		t.Fatalf("VFA line missing:\n%s", text)
	}
	if strings.Contains(text, "等級") {
		t.Errorf("level clause must be omitted when no level resolved:\n%s", text)
	}
}

func TestMetabolicRiskIncludesLevelWhenPresent(t *testing.T) {
	store := storeOf(map[string]any{
		"VFA_cm2":   59.6,
		"VFL_level": 5,
	})
	engine := NewEngine(DefaultThresholds())
	text := joined(engine.MetabolicRisk(store))
	if !strings.Contains(text, "內臟脂肪面積 59.6 cm² 與等級 5") {
		t.Errorf("expected VFA with level clause:\n%s", text)
	}
}

func TestClinicalSummaryCShapeProfile(t *testing.T) {
	store := storeOf(map[string]any{
		"Weight_kg": 71.8,
		"SMM_kg":    30.0,
		"BFM_kg":    20.5,
		"PBF_pct":   28.5,
	})
	engine := NewEngine(DefaultThresholds())
	text := joined(engine.ClinicalSummary(store))
	if !strings.Contains(text, "C 型輪廓") {
		t.Errorf("weight-SMM gap of 41.8 kg should flag the C-shape profile:\n%s", text)
	}
	if !strings.Contains(text, "體重-骨骼肌差 41.8 kg") {
		t.Errorf("muscle gap clause missing:\n%s", text)
	}
}

func TestClinicalSummaryFallback(t *testing.T) {
	engine := NewEngine(DefaultThresholds())
	lines := engine.ClinicalSummary(storeOf(map[string]any{}))
	if len(lines) != 1 || lines[0] != "目前資料不足以形成臨床摘要。" {
		t.Errorf("expected single insufficient-data line, got %v", lines)
	}
}

func TestVisceralFatGrading(t *testing.T) {
	engine := NewEngine(DefaultThresholds())
	cases := []struct {
		vfa  float64
		want string
	}{
		{45.0, "維持在健康區間"},
		{59.6, "突破 50 cm² 健康警戒"},
		{85.0, "高於亞洲族群建議上限 70 cm²"},
		{105.0, "超過 100 cm² 高風險門檻"},
		{130.0, "臨床極高風險"},
	}
	for _, c := range cases {
		store := storeOf(map[string]any{"VFA_cm2": c.vfa})
		text := joined(engine.ClinicalSummary(store))
		if !strings.Contains(text, c.want) {
			t.Errorf("VFA %.1f: expected %q in:\n%s", c.vfa, c.want, text)
		}
	}
}

func TestFluidBalanceSpreadFlag(t *testing.T) {
	engine := NewEngine(DefaultThresholds())
	store := storeOf(map[string]any{
		"ECW_TBW":          0.372,
		"RightArm_ECW_TBW": 0.365,
		"LeftArm_ECW_TBW":  0.383,
		"Trunk_ECW_TBW":    0.370,
	})
	text := joined(engine.FluidBalance(store))
	if !strings.Contains(text, "全身 ECW/TBW 0.372") {
		t.Errorf("overall ratio line missing:\n%s", text)
	}
	if !strings.Contains(text, "差異超過 0.015") {
		t.Errorf("0.018 spread across segments should be flagged:\n%s", text)
	}
}

func TestFluidBalanceInsufficientData(t *testing.T) {
	engine := NewEngine(DefaultThresholds())
	lines := engine.FluidBalance(storeOf(map[string]any{}))
	if len(lines) != 1 || lines[0] != "水分分布資訊不足或在標準範圍內。" {
		t.Errorf("expected fallback line, got %v", lines)
	}
}

func TestSegmentalImbalance(t *testing.T) {
	engine := NewEngine(DefaultThresholds())
	store := storeOf(map[string]any{
		"RightArm_Lean_kg": 3.30,
		"LeftArm_Lean_kg":  2.90,
	})
	text := joined(engine.Segmental(store))
	// gap is 0.40/3.10 = 12.9%, above the 10% threshold
	if !strings.Contains(text, "右上肢 肌肉量較另一側高出約 12.9%") {
		t.Errorf("imbalance line missing:\n%s", text)
	}
}

func TestSegmentalAllMissingProducesNothing(t *testing.T) {
	engine := NewEngine(DefaultThresholds())
	store := storeOf(map[string]any{
		"RightArm_Lean_kg": nil,
		"Trunk_Lean_kg":    nil,
	})
	lines := engine.Segmental(store)
	if len(lines) != 0 {
		t.Errorf("nil-only segments should produce no lines, got %v", lines)
	}
}

func TestNutritionStrategyProteinRange(t *testing.T) {
	engine := NewEngine(DefaultThresholds())
	store := storeOf(map[string]any{"Weight_kg": 71.8})
	text := joined(engine.NutritionStrategy(store))
	if !strings.Contains(text, "蛋白質鎖定 115-144 g/日") {
		t.Errorf("protein range should anchor on 71.8 kg:\n%s", text)
	}
}

func TestMonitoringTargetsIncludeVFAGoal(t *testing.T) {
	engine := NewEngine(DefaultThresholds())
	store := storeOf(map[string]any{
		"VFA_cm2": 59.6,
		"PBF_pct": 28.5,
		"SMM_kg":  30.1,
	})
	text := joined(engine.MonitoringTargets(store))
	if !strings.Contains(text, "VFA 59.6 → <50 cm²") {
		t.Errorf("VFA target missing:\n%s", text)
	}
	if !strings.Contains(text, "SMM 維持 ≥ 30.1 kg") {
		t.Errorf("SMM floor missing:\n%s", text)
	}
	if !strings.Contains(text, "每 12 週重測") {
		t.Errorf("retest cadence missing:\n%s", text)
	}
}

func TestClosingSummaryFallback(t *testing.T) {
	engine := NewEngine(DefaultThresholds())
	lines := engine.ClosingSummary(storeOf(map[string]any{}))
	if len(lines) != 1 || lines[0] != "維持目前的飲食與訓練節奏，定期複測以掌握趨勢。" {
		t.Errorf("expected maintenance fallback, got %v", lines)
	}
}

func TestThresholdOverridesApply(t *testing.T) {
	t.Run("custom VFA high bound", func(t *testing.T) {
		custom := DefaultThresholds()
		custom.VFAHigh = 90
		engine := NewEngine(custom)
		store := storeOf(map[string]any{"VFA_cm2": 95.0})
		text := joined(engine.BodyComposition(store))
		if !strings.Contains(text, "偏高，需特別注意腹部脂肪") {
			t.Errorf("95 cm² should exceed the lowered 90 cm² bound:\n%s", text)
		}
	})
	t.Run("zero values fall back to defaults", func(t *testing.T) {
		engine := NewEngine(Thresholds{})
		if engine.T.EdemaRatio != 0.390 {
			t.Errorf("EdemaRatio = %v, want default 0.390", engine.T.EdemaRatio)
		}
		if engine.T.SMIFemale != 5.7 {
			t.Errorf("SMIFemale = %v, want default 5.7", engine.T.SMIFemale)
		}
	})
}
