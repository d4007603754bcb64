package analysis

import (
	"fmt"

	"github.com/zinojeng/inbody/internal/metric"
)

// BodyComposition reports the muscle/fat/water masses with their headline
// status remarks.
func (e *Engine) BodyComposition(store *metric.Store) []string {
	var lines []string
	gender, _ := text(store, "gender")

	if smm, ok := number(store, "smm"); ok {
		lines = append(lines, fmt.Sprintf("骨骼肌量 %.1f kg。", smm))
	}
	if smi, ok := number(store, "smi"); ok {
		threshold := e.T.SMIMale
		if isFemale(gender) {
			threshold = e.T.SMIFemale
		}
		status := "在健康範圍內"
		if (isMale(gender) || isFemale(gender)) && smi < threshold {
			status = "低於肌少症門檻"
		}
		lines = append(lines, fmt.Sprintf("SMI %.2f（%s）。", smi, status))
	} else if smwt, ok := number(store, "smwt"); ok {
		lines = append(lines, fmt.Sprintf("肌肉占體重比例 %.2f。", smwt))
	}
	if bfm, ok := number(store, "bfm"); ok {
		lines = append(lines, fmt.Sprintf("體脂肪量 %.1f kg。", bfm))
	}
	if vfa, ok := number(store, "vfa"); ok {
		remark := "位於建議範圍內"
		if vfa >= e.T.VFAHigh {
			remark = "偏高，需特別注意腹部脂肪"
		}
		lines = append(lines, fmt.Sprintf("內臟脂肪面積 %.0f cm²（%s）。", vfa, remark))
	}
	if ecwTBW, ok := number(store, "ecw_tbw"); ok {
		status := "水分平衡正常"
		if ecwTBW >= e.T.EdemaRatio {
			status = "疑似水腫"
		}
		lines = append(lines, fmt.Sprintf("ECW/TBW %.3f（%s）。", ecwTBW, status))
	}
	if tbw, ok := number(store, "tbw"); ok {
		lines = append(lines, fmt.Sprintf("總體水量 %.1f L。", tbw))
	}
	if bmr, ok := number(store, "bmr"); ok {
		lines = append(lines, fmt.Sprintf("基礎代謝率 %.0f kcal。", bmr))
	}
	if whr, ok := number(store, "whr"); ok {
		status := "腰臀比健康"
		switch {
		case whr >= e.T.WHRHigh:
			status = "腹部肥胖風險"
		case whr >= e.T.WHRWatch:
			status = "維持腰臀比"
		}
		lines = append(lines, fmt.Sprintf("腰臀比 %.2f（%s）。", whr, status))
	}
	if deg, ok := number(store, "obesity_degree"); ok {
		lines = append(lines, fmt.Sprintf("肥胖度指數 %.0f%%（100%% 為標準體重基準）。", deg))
	}
	if ffmi, ok := number(store, "ffmi"); ok {
		lines = append(lines, fmt.Sprintf("FFMI %.1f，反映無脂體重相對表現。", ffmi))
	}
	if fmi, ok := number(store, "fmi"); ok {
		lines = append(lines, fmt.Sprintf("FMI %.1f，可作為長期體脂追蹤指標。", fmi))
	}
	if score, ok := number(store, "inbody_score"); ok {
		lines = append(lines, fmt.Sprintf("InBody 分數 %.0f。", score))
	}
	if vfl, ok := number(store, "vfl"); ok {
		remark := "內臟脂肪尚可，但建議持續監測"
		switch {
		case vfl >= e.T.VFLHigh:
			remark = "需特別注意內臟脂肪堆積"
		case vfl <= e.T.VFLSafe:
			remark = "維持目前生活型態"
		}
		lines = append(lines, fmt.Sprintf("內臟脂肪等級 %.0f（%s）。", vfl, remark))
	}
	return lines
}
