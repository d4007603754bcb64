package analysis

import (
	"fmt"

	"github.com/zinojeng/inbody/internal/metric"
)

// Segmental compares the five body segments: left/right lean imbalances,
// per-segment lean/fat masses and lean development versus the standard.
func (e *Engine) Segmental(store *metric.Store) []string {
	diffLine := func(a, b *float64, labelA, labelB string) string {
		if a == nil || b == nil {
			return ""
		}
		avg := (*a + *b) / 2
		if avg == 0 {
			return ""
		}
		gap := abs(*a-*b) / avg
		if gap*100 < e.T.MuscleImbalancePct {
			return ""
		}
		stronger := labelA
		if *b > *a {
			stronger = labelB
		}
		return fmt.Sprintf("%s 肌肉量較另一側高出約 %.1f%% ，建議安排矯正訓練。", stronger, gap*100)
	}

	leanRA := optional(number(store, "lean_ra"))
	leanLA := optional(number(store, "lean_la"))
	leanRL := optional(number(store, "lean_rl"))
	leanLL := optional(number(store, "lean_ll"))
	leanTrunk := optional(number(store, "lean_trunk"))
	fatRA := optional(number(store, "bfm_ra"))
	fatLA := optional(number(store, "bfm_la"))
	fatRL := optional(number(store, "bfm_rl"))
	fatLL := optional(number(store, "bfm_ll"))
	fatTrunk := optional(number(store, "bfm_trunk"))

	var lines []string
	for _, msg := range []string{
		diffLine(leanRA, leanLA, "右上肢", "左上肢"),
		diffLine(leanRL, leanLL, "右下肢", "左下肢"),
	} {
		if msg != "" {
			lines = append(lines, msg)
		}
	}

	segments := []struct {
		label     string
		lean, fat *float64
	}{
		{"右上肢", leanRA, fatRA},
		{"左上肢", leanLA, fatLA},
		{"軀幹", leanTrunk, fatTrunk},
		{"右下肢", leanRL, fatRL},
		{"左下肢", leanLL, fatLL},
	}
	for _, s := range segments {
		if s.lean == nil && s.fat == nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s：肌肉 %s / 脂肪 %s。",
			s.label, FormatNumber(s.lean, " kg", 1), FormatNumber(s.fat, " kg", 1)))
	}

	devFields := []struct {
		label string
		id    string
	}{
		{"右上肢", "lean_ra_pct"},
		{"左上肢", "lean_la_pct"},
		{"右下肢", "lean_rl_pct"},
		{"左下肢", "lean_ll_pct"},
		{"軀幹", "lean_trunk_pct"},
	}
	for _, f := range devFields {
		v, ok := number(store, f.id)
		if !ok {
			continue
		}
		switch {
		case v < e.T.LeanDevLow:
			lines = append(lines, fmt.Sprintf("%s 肌肉發展僅 %.0f%%（低於建議），可加強該部位訓練。", f.label, v))
		case v > e.T.LeanDevHigh:
			lines = append(lines, fmt.Sprintf("%s 肌肉發展 %.0f%%（相對突出），注意左右協調。", f.label, v))
		}
	}

	if len(lines) == 0 {
		for _, v := range []*float64{leanRA, leanLA, leanRL, leanLL, leanTrunk} {
			if v != nil {
				return []string{"四肢與軀幹肌肉量分佈均衡，維持現有訓練即可。"}
			}
		}
	}
	return lines
}

// FatDistribution grades each segment's fat mass against its device standard
// percentage.
func (e *Engine) FatDistribution(store *metric.Store) []string {
	fields := []struct {
		label string
		id    string
	}{
		{"右上肢", "bfm_ra_pct"},
		{"左上肢", "bfm_la_pct"},
		{"軀幹", "bfm_trunk_pct"},
		{"右下肢", "bfm_rl_pct"},
		{"左下肢", "bfm_ll_pct"},
	}
	var lines []string
	for _, f := range fields {
		v, ok := number(store, f.id)
		if !ok {
			continue
		}
		switch {
		case v >= e.T.SegmentFatHigh:
			lines = append(lines, fmt.Sprintf("%s 脂肪百分比 %.0f%%（顯著高於標準）。", f.label, v))
		case v <= e.T.SegmentFatLow:
			lines = append(lines, fmt.Sprintf("%s 脂肪百分比 %.0f%%（低於標準，留意營養狀況）。", f.label, v))
		default:
			lines = append(lines, fmt.Sprintf("%s 脂肪百分比 %.0f%%（接近標準）。", f.label, v))
		}
	}
	if len(lines) == 0 {
		lines = append(lines, "缺少脂肪百分比資料，無法評估分佈情況。")
	}
	return lines
}
