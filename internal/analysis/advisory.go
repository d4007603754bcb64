package analysis

import (
	"fmt"
	"strings"

	"github.com/zinojeng/inbody/internal/metric"
)

// NutritionStrategy personalizes the dietary prescription, anchoring protein
// targets on measured body weight when available.
func (e *Engine) NutritionStrategy(store *metric.Store) []string {
	lines := []string{
		"設定每日 500-750 kcal 熱量赤字，並搭配每週體重與腰圍紀錄管控進度。",
	}
	if weight, ok := number(store, "weight_kg"); ok {
		lines = append(lines,
			fmt.Sprintf("蛋白質鎖定 %.0f-%.0f g/日（1.6-2.0 g/kg），支撐減脂過程的肌肉保存。", weight*1.6, weight*2.0),
			"將蛋白質均分 3-4 餐，每餐 25-30 g，協助最大化肌肉蛋白質合成。")
	}
	lines = append(lines,
		"飲食組成以高纖低糖、足量蔬菜與 ω-3 脂肪酸為核心，緩解內臟脂肪引起的慢性發炎。",
		"保持 30-35 mL/kg 的飲水量並留意鈉攝取，支撐 0.36-0.38 的 ECW/TBW 水準。")
	return lines
}

// TrainingStrategy builds the exercise prescription, inserting unilateral
// work when a left/right lean gap crosses the imbalance threshold.
func (e *Engine) TrainingStrategy(store *metric.Store) []string {
	lines := []string{
		"每週安排 3-4 次阻力訓練，採用全身多關節動作並逐步超負荷，搭配 2 次 20-30 分鐘 HIIT 或中高強度有氧以降低 VFA。",
		"訓練結束後加入 10-15 分鐘核心穩定與髖/肩等矯正動作，預防不對稱造成代償。",
	}
	var focus []string
	for _, d := range musclePairDiffs(store) {
		if d.Pct >= e.T.MuscleImbalancePct {
			focus = append(focus, d.Label)
		}
	}
	if len(focus) > 0 {
		lines = append(lines, "針對 "+strings.Join(focus, "、")+" 啟動單側訓練與神經肌肉控制，避免代償與過度使用傷害。")
	}
	lines = append(lines, "確保每週至少 2 次 7-8 小時的高品質睡眠視窗並安排減壓活動，以維持相位角與荷爾蒙平衡。")
	return lines
}

// MonitoringTargets lists the primary and secondary KPI targets plus the
// retest cadence.
func (e *Engine) MonitoringTargets(store *metric.Store) []string {
	var lines []string
	var major []string
	if vfa, ok := number(store, "vfa"); ok {
		major = append(major, fmt.Sprintf("VFA %.1f → <%.0f cm²", vfa, e.T.VFAWatch))
	}
	if pbf, ok := number(store, "pbf"); ok {
		major = append(major, fmt.Sprintf("PBF %.1f%% → 18-20%%", pbf))
	}
	if smm, ok := number(store, "smm"); ok {
		major = append(major, fmt.Sprintf("SMM 維持 ≥ %.1f kg", smm))
	}
	if len(major) > 0 {
		lines = append(lines, "主要指標："+strings.Join(major, "；"))
	}
	var secondary []string
	for _, p := range phaseAngleIDs {
		if _, ok := number(store, p.id); ok {
			secondary = append(secondary, "相位角 ↑0.3-0.5°，尤其是左右上肢")
			break
		}
	}
	if _, ok := number(store, "ecw_tbw"); ok {
		secondary = append(secondary, "ECW/TBW 維持 0.360-0.380")
	}
	for _, d := range musclePairDiffs(store) {
		if d.Pct >= e.T.MuscleImbalancePct {
			secondary = append(secondary, fmt.Sprintf("%s 肌肉差距 <5%%", d.Label))
		}
	}
	if len(secondary) > 0 {
		lines = append(lines, "次要指標："+strings.Join(secondary, "；"))
	}
	lines = append(lines, "量測節奏：每 12 週重測 InBody 佐以腰圍與血壓紀錄，評估策略成效。")
	return lines
}

// AppendixNotes explains how to read the C-shape profile, visceral fat bands
// and phase angle, then restates this test's own readings.
func (e *Engine) AppendixNotes(store *metric.Store) []string {
	notes := []string{
		"**C 型輪廓**：InBody 透過五大柱狀圖比較肌肉與脂肪；當肌肉柱顯著低於脂肪柱時即稱 C 型，代表肌肉支撐不足且脂肪偏高，必須同步強化阻力訓練與熱量管理。",
		fmt.Sprintf("**內臟脂肪分級**：<%.0f cm² 為安全、%.0f-%.0f cm² 為警戒、%.0f-%.0f cm² 為高風險、≥%.0f cm² 屬極高風險；若 VFL ≥%.0f 則需醫療團隊密切追蹤。",
			e.T.VFAWatch, e.T.VFAWatch, e.T.VFAElevated, e.T.VFAElevated, e.T.VFAHigh, e.T.VFAHigh, e.T.VFLHigh),
		fmt.Sprintf("**相位角判讀**：%.1f° 以下視為偏低、%.1f-%.1f° 為穩定範圍、%.1f° 以上代表細胞活性佳；相位角受睡眠、營養與訓練恢復影響。",
			e.T.PhaseLow, e.T.PhaseLow, e.T.PhaseHigh, e.T.PhaseHigh),
	}
	vfa := optional(number(store, "vfa"))
	vfl := optional(number(store, "vfl"))
	if vfa != nil || vfl != nil {
		notes = append(notes, fmt.Sprintf("**本次內臟脂肪**：面積 %s、等級 %s，建議透過核心訓練與控糖飲食持續下降。",
			FormatNumber(vfa, " cm²", 1), FormatNumber(vfl, "", 1)))
	}
	if phase := optional(number(store, "phase_tr")); phase != nil {
		notes = append(notes, fmt.Sprintf("**本次相位角**：軀幹 %s，可作為細胞恢復與營養補充成效的追蹤指標。",
			FormatNumber(phase, "°", 1)))
	}
	smm, okSMM := number(store, "smm")
	bfm, okBFM := number(store, "bfm")
	if okSMM && okBFM {
		clause := ""
		if weight, ok := number(store, "weight_kg"); ok && weight-smm > 20 {
			clause = "，顯示肌肉柱略短於脂肪柱"
		}
		notes = append(notes, fmt.Sprintf("**肌脂對照**：骨骼肌量 %.1f kg / 體脂肪量 %.1f kg%s，為評估 C 型改善幅度的重要指標。", smm, bfm, clause))
	}
	return notes
}

// ClosingSummary distills everything into the final next-step bullets.
func (e *Engine) ClosingSummary(store *metric.Store) []string {
	var summary []string
	weightControl := optional(number(store, "weight_control"))
	bfmControl := optional(number(store, "bfm_control"))
	ffmControl := optional(number(store, "ffm_control"))
	pbf := optional(number(store, "pbf"))
	bmi := optional(bmiOrComputed(store))
	ecwTBW := optional(number(store, "ecw_tbw"))
	vfa := optional(number(store, "vfa"))
	score := optional(number(store, "inbody_score"))
	vfl := optional(number(store, "vfl"))
	whr := optional(number(store, "whr"))

	if bmi != nil {
		summary = append(summary, fmt.Sprintf("持續追蹤 BMI %.1f，透過均衡飲食及運動維持在標準範圍。", *bmi))
	}
	if pbf != nil && *pbf > 25 {
		summary = append(summary, "提高阻力訓練與有氧運動頻率，以降低體脂率。")
	} else if pbf != nil && *pbf < 10 {
		summary = append(summary, "適度提高總熱量與蛋白質，避免體脂率過低影響免疫與荷爾蒙。")
	}
	if ffmControl != nil && *ffmControl > 0 {
		summary = append(summary, "安排每週 2-3 次全身性重量訓練，並補足每公斤體重 1.6-2.0g 蛋白質。")
	}
	if bfmControl != nil && *bfmControl < -0.5 {
		summary = append(summary, "掌握熱量赤字時維持高纖飲食，搭配 120~150 分鐘中強度有氧以促進減脂。")
	}
	if ffmControl != nil && *ffmControl < -0.5 {
		summary = append(summary, "若需要刻意降低無脂體重，務必在專業指導下循序進行避免代謝下滑。")
	}
	if weightControl != nil && abs(*weightControl) >= 0.5 {
		summary = append(summary, "搭配飲食日誌及每週量測，追蹤體重控制進度。")
	}

	var segmentECW []float64
	highSegment := false
	for _, s := range segmentECWIDs {
		if v, ok := number(store, s.id); ok {
			segmentECW = append(segmentECW, v)
			if v >= e.T.EdemaRatio {
				highSegment = true
			}
		}
	}
	if ecwTBW != nil && *ecwTBW >= e.T.EdemaRatio {
		summary = append(summary, "注意鈉攝取與睡眠品質，必要時諮詢專業醫師評估水腫。")
	} else if len(segmentECW) > 0 && allWithin(segmentECW, e.T.LowHydrationRatio, e.T.EdemaRatio) {
		summary = append(summary, "四肢與軀幹 ECW/TBW 均在建議範圍，維持當前水分管理。")
	}
	if highSegment {
		summary = append(summary, "某些部位 ECW/TBW 偏高，留意該側的負荷與循環狀況。")
	}

	if vfa != nil && *vfa >= e.T.VFAHigh {
		summary = append(summary, "加入核心訓練與高強度間歇，以降低內臟脂肪風險。")
	}
	if score != nil && *score < 80 {
		summary = append(summary, "整體 InBody 分數仍有改善空間，建議三個月後回測以檢視進步幅度。")
	}
	if vfl != nil && *vfl >= e.T.VFLHigh {
		summary = append(summary, "內臟脂肪等級偏高，建議從高纖低糖飲食與規律有氧著手。")
	} else if vfl != nil && *vfl <= e.T.VFLSafe {
		summary = append(summary, "內臟脂肪等級維持在安全範圍，持續目前飲食節奏。")
	}
	if whr != nil && *whr >= e.T.WHRHigh {
		summary = append(summary, "腰臀比偏高，改善腹部脂肪堆積有助降低代謝症候群風險。")
	}

	var phases []float64
	for _, p := range phaseAngleIDs {
		if v, ok := number(store, p.id); ok {
			phases = append(phases, v)
		}
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
		if lo < e.T.PhaseLow {
			summary = append(summary, "相位角偏低，補足蛋白質並確保睡眠可提升細胞活性。")
		} else if lo >= 7.0 {
			summary = append(summary, "相位角表現良好，代表細胞活性與恢復狀態穩定。")
		}
		if hi-lo >= e.T.PhaseSpread {
			summary = append(summary, fmt.Sprintf("相位角左右最大差異約 %.1f°，調整姿勢與訓練負荷以維持平衡。", hi-lo))
		}
	}

	fatSegments := []struct {
		label string
		id    string
	}{
		{"右上肢", "bfm_ra_pct"},
		{"左上肢", "bfm_la_pct"},
		{"軀幹", "bfm_trunk_pct"},
		{"右下肢", "bfm_rl_pct"},
		{"左下肢", "bfm_ll_pct"},
	}
	var highFat, lowFat []string
	for _, f := range fatSegments {
		v, ok := number(store, f.id)
		if !ok {
			continue
		}
		if v >= e.T.SegmentFatHigh {
			highFat = append(highFat, f.label)
		} else if v <= e.T.SegmentFatLow {
			lowFat = append(lowFat, f.label)
		}
	}
	if len(highFat) > 0 {
		summary = append(summary, "脂肪分佈以 "+strings.Join(highFat, "、")+" 為主，建議加入局部肌力搭配有氧訓練。")
	}
	if len(lowFat) > 0 {
		summary = append(summary, strings.Join(lowFat, "、")+" 脂肪百分比偏低，確保攝取足夠能量避免過度消耗。")
	}

	diffs := musclePairDiffs(store)
	var imbalances []string
	for _, d := range diffs {
		if d.Pct >= e.T.MuscleImbalancePct {
			imbalances = append(imbalances, fmt.Sprintf("%s左右肌肉差距約 %.1f%%", d.Label, d.Pct))
		}
	}
	if len(imbalances) > 0 {
		summary = append(summary, strings.Join(imbalances, "、")+"，建議安排矯正訓練與單側負重。")
	} else if len(diffs) > 0 {
		summary = append(summary, fmt.Sprintf("四肢肌肉量左右差距都在 %.0f%% 內，維持目前訓練即可。", e.T.MuscleImbalancePct))
	}

	if len(summary) == 0 {
		summary = append(summary, "維持目前的飲食與訓練節奏，定期複測以掌握趨勢。")
	}
	return summary
}

func allWithin(values []float64, lo, hi float64) bool {
	for _, v := range values {
		if v < lo || v > hi {
			return false
		}
	}
	return true
}
