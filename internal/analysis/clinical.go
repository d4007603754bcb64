package analysis

import (
	"fmt"
	"strings"

	"github.com/zinojeng/inbody/internal/metric"
)

// ClinicalSummary builds the lead section of the narrative report: body
// recomposition profile, visceral fat grading, fluid and cell-health markers,
// limb balance and the headline KPIs. The fallback line keeps the section
// non-empty when nothing resolves.
func (e *Engine) ClinicalSummary(store *metric.Store) []string {
	gender, _ := text(store, "gender")
	bmi, okBMI := bmiOrComputed(store)
	pbf, okPBF := number(store, "pbf")
	vfa, okVFA := number(store, "vfa")
	vfl, okVFL := number(store, "vfl")
	smm, okSMM := number(store, "smm")
	bfm, okBFM := number(store, "bfm")
	weight, okWeight := number(store, "weight_kg")
	ecwTBW, okECW := number(store, "ecw_tbw")
	trunkPhase, okPhase := number(store, "phase_tr")
	fatControl, okFC := number(store, "bfm_control")
	bmr, okBMR := number(store, "bmr")
	smi, okSMI := number(store, "smi")
	score, okScore := number(store, "inbody_score")
	tbw, okTBW := number(store, "tbw")
	icw, okICW := number(store, "icw")
	ecw, okECWVol := number(store, "ecw")
	tbwFFM, okTBWFFM := number(store, "tbw_ffm")
	bcm, okBCM := number(store, "bcm")

	var lines []string

	if okSMM && okBFM {
		muscleText := fmt.Sprintf("骨骼肌量 %.1f kg", smm)
		fatText := fmt.Sprintf("體脂肪量 %.1f kg", bfm)
		var muscleGap *float64
		cShape := okPBF && pbf >= 25
		if okWeight && weight > 0 {
			muscleText += fmt.Sprintf("（佔體重 %.1f%%）", smm/weight*100)
			fatText += fmt.Sprintf("（約 %.1f%% 體脂）", bfm/weight*100)
			muscleGap = ptr(weight - smm)
			cShape = *muscleGap > 20 || cShape
		}
		details := muscleText + "、" + fatText
		if muscleGap != nil {
			details += fmt.Sprintf("，體重-骨骼肌差 %.1f kg", *muscleGap)
		}
		if cShape {
			details += "，呈現 InBody C 型輪廓（肌肉量柱狀圖相對脂肪柱較短），代表軀幹與四肢肌肉量支撐不足；需以阻力訓練與熱量管理同步提升肌脂比。"
		} else {
			details += "，為設定訓練與飲食目標的核心 KPI。"
		}
		lines = append(lines, details)
	}

	if okBMI && okPBF {
		risk := "建議持續穩定監測月度變化"
		if bmi < 25 && pbf >= 20 {
			risk = "需警覺內臟脂肪牽引的代謝風險"
		}
		lines = append(lines, fmt.Sprintf("BMI %.1f（%s）與體脂率 %.1f%%（%s），%s。",
			bmi, ClassifyBMI(bmi), pbf, ClassifyPBF(pbf, gender), risk))
	}

	if okVFA || okVFL {
		var components, status []string
		if okVFA {
			components = append(components, fmt.Sprintf("內臟脂肪面積 %.1f cm²", vfa))
			switch {
			case vfa >= e.T.VFACritical:
				status = append(status, "臨床極高風險，建議醫療團隊密切監測")
			case vfa >= e.T.VFAHigh:
				status = append(status, fmt.Sprintf("超過 %.0f cm² 高風險門檻", e.T.VFAHigh))
			case vfa >= e.T.VFAElevated:
				status = append(status, fmt.Sprintf("高於亞洲族群建議上限 %.0f cm²", e.T.VFAElevated))
			case vfa >= e.T.VFAWatch:
				status = append(status, fmt.Sprintf("突破 %.0f cm² 健康警戒，需要加速腰腹調整", e.T.VFAWatch))
			default:
				status = append(status, "維持在健康區間，持續觀察")
			}
		}
		if okVFL {
			components = append(components, fmt.Sprintf("等級 %.0f", vfl))
			switch {
			case vfl >= e.T.VFLHigh:
				status = append(status, fmt.Sprintf("等級 ≥%.0f，內臟脂肪堆積加劇", e.T.VFLHigh))
			case vfl >= e.T.VFLSafe:
				status = append(status, fmt.Sprintf("等級位於監測上緣（VFL %.0f，%s），須留意復胖風險", vfl, vflLabel(vfl)))
			default:
				status = append(status, "等級仍在低風險範圍")
			}
		}
		action := "維持現有生活型態並定期複測"
		if (okVFA && vfa >= e.T.VFAWatch) || (okVFL && vfl >= e.T.VFLSafe) {
			action = "需把腰腹訓練與飲食控糖視為第一優先"
		}
		base := strings.Join(components, " / ")
		if len(status) > 0 {
			lines = append(lines, base+"，"+strings.Join(status, "；")+"，"+action+"。")
		} else {
			lines = append(lines, base+"，"+action+"。")
		}
	}

	if okECW || okPhase {
		var segments []string
		if okECW {
			switch {
			case ecwTBW >= e.T.EdemaRatio:
				segments = append(segments, fmt.Sprintf("ECW/TBW %.3f 高於 %.2f，暗示外液滯留或睡眠恢復不足", ecwTBW, e.T.EdemaRatio))
			case ecwTBW <= e.T.LowHydrationRatio:
				segments = append(segments, fmt.Sprintf("ECW/TBW %.3f 偏低，注意水分與電解質補充", ecwTBW))
			default:
				segments = append(segments, fmt.Sprintf("ECW/TBW %.3f 落在 0.36-0.39，水分平衡穩定", ecwTBW))
			}
		}
		if okPhase {
			switch {
			case trunkPhase < e.T.PhaseLow:
				segments = append(segments, fmt.Sprintf("軀幹相位角 %.1f° 偏低，推測細胞膜電阻下降；須加強蛋白質與睡眠修復", trunkPhase))
			case trunkPhase >= e.T.PhaseHigh:
				segments = append(segments, fmt.Sprintf("軀幹相位角 %.1f° 高於 %.1f°，代表細胞活性與恢復效率佳", trunkPhase, e.T.PhaseHigh))
			default:
				segments = append(segments, fmt.Sprintf("軀幹相位角 %.1f° 居於中段（約 %.1f-%.1f° 被視為穩定範圍），維持規律訓練與恢復節奏", trunkPhase, e.T.PhaseLow, e.T.PhaseHigh))
			}
		}
		if len(segments) > 0 {
			lines = append(lines, strings.Join(segments, "；")+"。")
		}
	}

	if snapshot := limbBalanceSnapshot(store); snapshot != "" {
		lines = append(lines, snapshot)
	}

	if okFC {
		direction := "增脂"
		if fatControl < 0 {
			direction = "減脂"
		}
		smmText := "維持既有骨骼肌量"
		if okSMM {
			smmText = fmt.Sprintf("維持 %.1f kg 骨骼肌量", smm)
		}
		lines = append(lines, fmt.Sprintf("首要身體重組目標：在 %s 的前提下%s%.1f kg，並壓低內臟脂肪。", smmText, direction, abs(fatControl)))
	}

	if okBMR {
		lines = append(lines, fmt.Sprintf("基礎代謝率 %.0f kcal（同齡男性常見範圍 1500-1700 kcal），建議以阻力訓練搭配蛋白質補充維持代謝動力。", bmr))
	}

	if okSMI {
		threshold := e.T.SMIFemale
		if isMale(gender) {
			threshold = e.T.SMIMale
		}
		status := "低於肌少症門檻"
		if smi >= threshold {
			status = "高於肌少症門檻"
		}
		lines = append(lines, fmt.Sprintf("SMI %.1f（%s），持續維持下肢力量並定期評估步態。", smi, status))
	}

	if okScore {
		lines = append(lines, fmt.Sprintf("InBody 分數 %.0f，距離 80 分健康門檻仍有差距，建議 8-12 週後複測追蹤。", score))
	}

	if okTBW || (okICW && okECWVol) {
		var parts []string
		if okTBW {
			parts = append(parts, fmt.Sprintf("TBW %.1f L", tbw))
		}
		if okICW && okECWVol {
			parts = append(parts, fmt.Sprintf("ICW/ECW %.1f/%.1f L", icw, ecw))
		}
		if okTBWFFM {
			parts = append(parts, fmt.Sprintf("TBW/FFM %.1f%%", tbwFFM))
		}
		if len(parts) > 0 {
			lines = append(lines, "體液指標："+strings.Join(parts, "，")+"，維持水分與電解質平衡可支撐訓練恢復。")
		}
	}

	if okBCM {
		lines = append(lines, fmt.Sprintf("BCM %.1f kg 反映細胞活性與肌肉品質，是觀察訓練成效的重要補充 KPI。", bcm))
	}

	if len(lines) == 0 {
		return []string{"目前資料不足以形成臨床摘要。"}
	}
	return lines
}

// limbBalanceSnapshot formats the arm and leg left/right lean readings with
// their balance note, empty when neither pair resolved.
func limbBalanceSnapshot(store *metric.Store) string {
	var snapshots []string
	pairs := []struct {
		label string
		a, b  string
	}{
		{"上肢肌肉", "lean_ra", "lean_la"},
		{"下肢肌肉", "lean_rl", "lean_ll"},
	}
	for _, p := range pairs {
		a, okA := number(store, p.a)
		b, okB := number(store, p.b)
		if !okA || !okB {
			continue
		}
		note := "資料不足"
		if avg := (a + b) / 2; avg > 0 {
			diffPct := abs(a-b) / avg * 100
			if diffPct >= 5 {
				note = fmt.Sprintf("差 %.1f%%", diffPct)
			} else {
				note = "左右差 <5%"
			}
		}
		snapshots = append(snapshots, fmt.Sprintf("%s %.2f/%.2f kg（%s）", p.label, a, b, note))
	}
	if len(snapshots) == 0 {
		return ""
	}
	return "四肢肌肉平衡: " + strings.Join(snapshots, "；") + "，依此調整單側與矯正訓練。"
}
