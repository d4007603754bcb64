package analysis

import (
	"fmt"

	"github.com/zinojeng/inbody/internal/metric"
)

// phaseAngleIDs lists the segmental 50kHz phase angle catalog ids.
var phaseAngleIDs = []struct {
	label string
	id    string
}{
	{"右上肢", "phase_ra"},
	{"左上肢", "phase_la"},
	{"軀幹", "phase_tr"},
	{"右下肢", "phase_rl"},
	{"左下肢", "phase_ll"},
}

// ResearchMetrics covers the advanced bioimpedance markers: BCM, TBW/FFM,
// FFMI/FMI and segmental phase angles.
func (e *Engine) ResearchMetrics(store *metric.Store) []string {
	var lines []string
	if bcm, ok := number(store, "bcm"); ok {
		lines = append(lines, fmt.Sprintf("身體細胞量 BCM %.1f kg，反映細胞活性與肌肉量。", bcm))
	}
	if tbwFFM, ok := number(store, "tbw_ffm"); ok {
		lines = append(lines, fmt.Sprintf("TBW/FFM %.1f%%，評估組織水分佔比。", tbwFFM))
	}
	ffmi, okFFMI := number(store, "ffmi")
	fmi, okFMI := number(store, "fmi")
	if okFFMI && okFMI {
		ratioClause := ""
		if fmi != 0 {
			ratioClause = fmt.Sprintf("（比例 %.2f）", ffmi/fmi)
		}
		lines = append(lines, fmt.Sprintf("FFMI/FMI 比 %.1f / %.1f%s，可做體態追蹤基準。", ffmi, fmi, ratioClause))
	}
	var phases []float64
	for _, p := range phaseAngleIDs {
		v, ok := number(store, p.id)
		if !ok {
			continue
		}
		status := "中等"
		switch {
		case v >= 7:
			status = "良好"
		case v < e.T.PhaseLow:
			status = "偏低"
		}
		lines = append(lines, fmt.Sprintf("%s 相位角 %.1f°（%s）。", p.label, v, status))
		phases = append(phases, v)
	}
	if len(phases) > 0 {
		lo, hi := phases[0], phases[0]
		for _, v := range phases[1:] {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		if hi-lo >= e.T.PhaseSpread {
			lines = append(lines, "相位角左右差異超過 1 度，檢視訓練負荷是否不均。")
		}
	}
	if len(lines) == 0 {
		lines = append(lines, "目前缺少進階研究指標資料。")
	}
	return lines
}
