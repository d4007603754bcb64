package analysis

import (
	"fmt"
	"strings"

	"github.com/zinojeng/inbody/internal/metric"
)

// ClassifyBMI maps a BMI value onto the Taiwanese adult bands. Each band is
// closed on its upper edge: exactly 18.5 and exactly 24.0 both classify as
// 標準, and 35.0 still counts as 中度肥胖.
func ClassifyBMI(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "體重過輕"
	case bmi <= 24:
		return "標準"
	case bmi <= 27:
		return "過重"
	case bmi <= 30:
		return "輕度肥胖"
	case bmi <= 35:
		return "中度肥胖"
	default:
		return "重度肥胖"
	}
}

// ClassifyPBF grades percent body fat with gender-split bands; anything not
// recognizably female uses the male bands.
func ClassifyPBF(pbf float64, gender string) string {
	if isFemale(gender) {
		switch {
		case pbf < 18:
			return "偏低"
		case pbf <= 28:
			return "理想"
		case pbf <= 33:
			return "稍高"
		default:
			return "偏高"
		}
	}
	switch {
	case pbf < 10:
		return "偏低"
	case pbf <= 20:
		return "理想"
	case pbf <= 25:
		return "稍高"
	default:
		return "偏高"
	}
}

func isFemale(gender string) bool {
	g := strings.ToLower(strings.TrimSpace(gender))
	return strings.HasPrefix(g, "f") || strings.HasPrefix(g, "女")
}

func isMale(gender string) bool {
	g := strings.ToLower(strings.TrimSpace(gender))
	return strings.HasPrefix(g, "m") || strings.HasPrefix(g, "男")
}

// vflLabels maps visceral fat levels to their qualitative descriptors.
var vflLabels = map[int]string{
	0: "最低", 1: "極低", 2: "偏低", 3: "低", 4: "稍高", 5: "中等",
	6: "偏高", 7: "高", 8: "很高", 9: "極高", 10: "危險",
}

func vflLabel(vfl float64) string {
	if label, ok := vflLabels[int(vfl)]; ok {
		return label
	}
	return "中等"
}

// ComputeBMI derives BMI from weight and height when the export carries no
// direct BMI column.
func ComputeBMI(store *metric.Store) (float64, bool) {
	height, ok := number(store, "height_cm")
	if !ok || height <= 0 {
		return 0, false
	}
	weight, ok := number(store, "weight_kg")
	if !ok {
		return 0, false
	}
	m := height / 100
	return weight / (m * m), true
}

// bmiOrComputed prefers the measured BMI and falls back to the derived one.
func bmiOrComputed(store *metric.Store) (float64, bool) {
	if bmi, ok := number(store, "bmi"); ok {
		return bmi, true
	}
	return ComputeBMI(store)
}

// number resolves a canonical field id through the catalog variant list.
func number(store *metric.Store, id string) (float64, bool) {
	return store.Number(metric.Variants(id)...)
}

func text(store *metric.Store, id string) (string, bool) {
	return store.Text(metric.Variants(id)...)
}

// FormatNumber renders an optional value with a unit, "—" when absent.
func FormatNumber(v *float64, unit string, digits int) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%.*f%s", digits, *v, unit)
}

// pairDiff is one left/right muscle pair's gap as percent of the average.
type pairDiff struct {
	Label string
	Pct   float64
}

// musclePairDiffs computes upper/lower limb left-right gaps where both sides
// resolved.
func musclePairDiffs(store *metric.Store) []pairDiff {
	pairs := []struct {
		label string
		a, b  string
	}{
		{"上肢", "lean_ra", "lean_la"},
		{"下肢", "lean_rl", "lean_ll"},
	}
	var diffs []pairDiff
	for _, p := range pairs {
		a, okA := number(store, p.a)
		b, okB := number(store, p.b)
		if !okA || !okB {
			continue
		}
		avg := (a + b) / 2
		if avg == 0 {
			continue
		}
		diffs = append(diffs, pairDiff{Label: p.label, Pct: abs(a-b) / avg * 100})
	}
	return diffs
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func ptr(f float64) *float64 { return &f }

func optional(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}
