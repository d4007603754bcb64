package analysis

import (
	"fmt"

	"github.com/zinojeng/inbody/internal/metric"
)

// WeightStatus covers BMI classification, current weight/height, body fat
// grading and the device's weight/fat/muscle control recommendations.
func (e *Engine) WeightStatus(store *metric.Store) []string {
	var lines []string
	gender, _ := text(store, "gender")

	if bmi, ok := bmiOrComputed(store); ok {
		lines = append(lines, fmt.Sprintf("BMI %.1f，屬於%s。", bmi, ClassifyBMI(bmi)))
	}
	weight, okWeight := number(store, "weight_kg")
	height, okHeight := number(store, "height_cm")
	if okWeight && okHeight {
		lines = append(lines, fmt.Sprintf("體重 %.1f kg，身高 %.1f cm。", weight, height))
	}
	if pbf, ok := number(store, "pbf"); ok {
		lines = append(lines, fmt.Sprintf("體脂率 %.1f%%（%s）。", pbf, ClassifyPBF(pbf, gender)))
	}

	weightControl, okWC := number(store, "weight_control")
	if target, ok := number(store, "target_weight"); ok && okWeight {
		delta := weight - target
		direction := "減少"
		if delta < 0 {
			direction = "增加"
		}
		lines = append(lines, fmt.Sprintf("建議目標體重 %.1f kg，與目前差異 %.1f kg（需%s）。", target, abs(delta), direction))
	} else if okWC {
		if abs(weightControl) < 0.2 {
			lines = append(lines, "體重控制目標已接近理想值，維持目前策略即可。")
		} else {
			action := "增加"
			if weightControl < 0 {
				action = "降低"
			}
			lines = append(lines, fmt.Sprintf("建議體重調整 %.1f kg（朝向%s）。", weightControl, action))
		}
	}
	if fatControl, ok := number(store, "bfm_control"); ok {
		action := "增加脂肪"
		if fatControl < 0 {
			action = "減脂"
		}
		lines = append(lines, fmt.Sprintf("脂肪控制指標：%s %.1f kg。", action, abs(fatControl)))
	}
	if muscleControl, ok := number(store, "ffm_control"); ok {
		switch {
		case muscleControl > 0:
			lines = append(lines, fmt.Sprintf("肌肉量建議增加 %.1f kg，安排阻力訓練與蛋白質補充。", muscleControl))
		case muscleControl < 0:
			lines = append(lines, fmt.Sprintf("肌肉量建議調降 %.1f kg，以保持整體平衡。", abs(muscleControl)))
		default:
			lines = append(lines, "肌肉量維持即可，重視恢復與蛋白質攝取。")
		}
	}
	return lines
}

// ControlAdvice converts the device control targets into actionable
// calorie/training guidance.
func (e *Engine) ControlAdvice(store *metric.Store) []string {
	weightControl, okWC := number(store, "weight_control")
	if !okWC {
		current, okCur := number(store, "weight_kg")
		target, okTarget := number(store, "target_weight")
		if okCur && okTarget {
			weightControl, okWC = target-current, true
		}
	}
	var lines []string
	if okWC {
		if abs(weightControl) < 0.3 {
			lines = append(lines, "體重已接近儀器建議，持續紀錄飲食與作息維持穩定。")
		} else {
			direction := "熱量盈餘"
			if weightControl < 0 {
				direction = "熱量赤字"
			}
			// 7700 kcal per kg over an eight-week adjustment window.
			daily := abs(weightControl) * 7700 / 56
			lines = append(lines, fmt.Sprintf("建立每週檢核的%s計畫，平均每日熱量調整約 %.0f kcal 以逐步達成。", direction, daily))
		}
	}
	if bfmControl, ok := number(store, "bfm_control"); ok {
		switch {
		case bfmControl < -0.3:
			lines = append(lines, "強化阻力與有氧混合訓練，每週至少 150 分鐘中高強度以加速減脂。")
		case bfmControl > 0.3:
			lines = append(lines, "需增加脂肪量時，優先提高優質碳水與總熱量，避免過度運動消耗。")
		default:
			lines = append(lines, "體脂肪與建議值差距不大，維持現有訓練配置即可。")
		}
	}
	if ffmControl, ok := number(store, "ffm_control"); ok {
		switch {
		case ffmControl > 0.3:
			lines = append(lines, "每餐攝取 20-30g 蛋白質並搭配逐步超負荷訓練，以支撐肌肉量提升。")
		case ffmControl < -0.3:
			lines = append(lines, "若需降低無脂體重，建議與專業教練評估期程，以避免過度流失肌肉。")
		default:
			lines = append(lines, "肌肉量調整幅度不大，維持訓練強度並注意恢復即可。")
		}
	}
	return lines
}
