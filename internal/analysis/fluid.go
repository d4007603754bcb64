package analysis

import (
	"fmt"

	"github.com/zinojeng/inbody/internal/metric"
)

// segmentECWIDs lists the five segmental ECW/TBW catalog ids in report order.
var segmentECWIDs = []struct {
	label string
	id    string
}{
	{"右上肢", "ecw_tbw_ra"},
	{"左上肢", "ecw_tbw_la"},
	{"軀幹", "ecw_tbw_tr"},
	{"右下肢", "ecw_tbw_rl"},
	{"左下肢", "ecw_tbw_ll"},
}

// FluidBalance reviews whole-body and segmental ECW/TBW ratios and flags an
// uneven spread across segments.
func (e *Engine) FluidBalance(store *metric.Store) []string {
	var lines []string
	if overall, ok := number(store, "ecw_tbw"); ok {
		status := "需要持續觀察"
		switch {
		case overall >= e.T.EdemaRatio:
			status = "偏高，可能有水腫"
		case overall <= e.T.EdemaRatio-0.010:
			status = "位於建議區間"
		}
		lines = append(lines, fmt.Sprintf("全身 ECW/TBW %.3f（%s）。", overall, status))
	}
	var seen []float64
	for _, s := range segmentECWIDs {
		v, ok := number(store, s.id)
		if !ok {
			continue
		}
		switch {
		case v >= e.T.EdemaRatio:
			lines = append(lines, fmt.Sprintf("%s ECW/TBW %.3f（局部水份偏高）。", s.label, v))
		case v <= e.T.LowHydrationRatio:
			lines = append(lines, fmt.Sprintf("%s ECW/TBW %.3f（偏低，注意水分補充）。", s.label, v))
		default:
			lines = append(lines, fmt.Sprintf("%s ECW/TBW %.3f（維持在正常範圍）。", s.label, v))
		}
		seen = append(seen, v)
	}
	if len(seen) >= 2 {
		lo, hi := seen[0], seen[0]
		for _, v := range seen[1:] {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		if hi-lo >= e.T.SegmentECWSpread {
			lines = append(lines, fmt.Sprintf("四肢水分分布差異超過 %.3f，建議檢視姿勢或日常活動是否不平衡。", e.T.SegmentECWSpread))
		}
	}
	if len(lines) == 0 {
		lines = append(lines, "水分分布資訊不足或在標準範圍內。")
	}
	return lines
}
