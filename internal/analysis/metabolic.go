package analysis

import (
	"fmt"
	"strings"

	"github.com/zinojeng/inbody/internal/metric"
)

// MetabolicRisk summarizes the normal-weight-obesity pattern, visceral fat
// drivers and central adiposity markers.
func (e *Engine) MetabolicRisk(store *metric.Store) []string {
	var lines []string
	bmi, okBMI := bmiOrComputed(store)
	pbf, okPBF := number(store, "pbf")
	if okBMI && okPBF {
		lines = append(lines, fmt.Sprintf("雖然 BMI %.1f 位於健康範圍，但體脂率 %.1f%% 已逼近年齡上限，顯示正常體重肥胖的代謝弱點。", bmi, pbf))
	}
	if vfa, ok := number(store, "vfa"); ok {
		// The level clause only appears when the export carried a level;
		// a missing VFL never renders as a placeholder.
		if vfl, ok := number(store, "vfl"); ok {
			lines = append(lines, fmt.Sprintf("內臟脂肪面積 %.1f cm² 與等級 %d 為發炎與胰島素阻抗的主要引擎，需結合飲食與高強度訓練降低。", vfa, int(vfl)))
		} else {
			lines = append(lines, fmt.Sprintf("內臟脂肪面積 %.1f cm² 為發炎與胰島素阻抗的主要引擎，需結合飲食與高強度訓練降低。", vfa))
		}
	}
	whr, okWHR := number(store, "whr")
	deg, okDeg := number(store, "obesity_degree")
	if okWHR || okDeg {
		var parts []string
		if okWHR {
			if whr >= e.T.WHRHigh {
				parts = append(parts, fmt.Sprintf("腰臀比 %.2f 偏高", whr))
			} else {
				parts = append(parts, fmt.Sprintf("腰臀比 %.2f", whr))
			}
		}
		if okDeg {
			parts = append(parts, fmt.Sprintf("肥胖度指數 %.0f%%", deg))
		}
		lines = append(lines, strings.Join(parts, "、")+" 指向中心性脂肪堆積與心代謝負荷。")
	}
	if ecwTBW, ok := number(store, "ecw_tbw"); ok {
		lines = append(lines, fmt.Sprintf("ECW/TBW %.3f 維持在 0.36-0.38 區間，顯示目前仍無明顯水腫，是扭轉風險的最佳時機。", ecwTBW))
	}
	if score, ok := number(store, "inbody_score"); ok {
		lines = append(lines, fmt.Sprintf("InBody 分數 %.0f 仍低於 80，建議 12 週內複測以確認風險是否下降。", score))
	}
	if len(lines) == 0 {
		lines = append(lines, "缺乏足夠的代謝風險資料。")
	}
	return lines
}
