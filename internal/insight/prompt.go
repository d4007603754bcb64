package insight

import (
	"fmt"
	"strings"

	"github.com/zinojeng/inbody/internal/analysis"
	"github.com/zinojeng/inbody/internal/metric"
)

const systemPrompt = "你是專業的運動醫學與營養顧問。"

// BuildMetricProfile renders the key readings as the labeled block the
// prompt embeds. Missing values drop their line; left/right pairs render
// together and survive if either side resolved.
func BuildMetricProfile(store *metric.Store) string {
	num := func(id string) *float64 {
		if v, ok := store.Number(metric.Variants(id)...); ok {
			return &v
		}
		return nil
	}
	txt := func(id string) string {
		if v, ok := store.Text(metric.Variants(id)...); ok {
			return v
		}
		return "—"
	}
	fmtNum := func(v *float64) string {
		if v == nil {
			return "—"
		}
		return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.3f", *v), "0"), ".")
	}

	bmi := num("bmi")
	if bmi == nil {
		if v, ok := analysis.ComputeBMI(store); ok {
			bmi = &v
		}
	}

	var lines []string
	add := func(label string, v *float64) {
		if v != nil {
			lines = append(lines, label+": "+fmtNum(v))
		}
	}
	addPair := func(label string, a, b *float64) {
		if a == nil && b == nil {
			return
		}
		lines = append(lines, fmt.Sprintf("%s: %s / %s", label, fmtNum(a), fmtNum(b)))
	}

	lines = append(lines, "姓名: "+txt("name"))
	lines = append(lines, "年齡: "+txt("age"))
	lines = append(lines, "性別: "+txt("gender"))
	add("身高(cm)", num("height_cm"))
	add("體重(kg)", num("weight_kg"))
	add("BMI", bmi)
	add("體脂率(%)", num("pbf"))
	add("內臟脂肪面積(cm^2)", num("vfa"))
	add("內臟脂肪等級", num("vfl"))
	add("骨骼肌量(kg)", num("smm"))
	add("體脂肪量(kg)", num("bfm"))
	add("ECW/TBW", num("ecw_tbw"))
	add("軀幹相位角(°)", num("phase_tr"))
	addPair("左右上肢肌肉量(kg)", num("lean_ra"), num("lean_la"))
	addPair("左右下肢肌肉量(kg)", num("lean_rl"), num("lean_ll"))
	return strings.Join(lines, "\n")
}

// BuildPrompt assembles the full user prompt: personalized metrics, the
// selected reference passages and the report requirements.
func BuildPrompt(profile string, passages []string) string {
	var b strings.Builder
	b.WriteString("你是一名運動醫學與臨床營養專家。請依照以下資訊，產出一份完整的 Markdown 報告。\n\n")
	b.WriteString("[客製化指標]\n")
	b.WriteString(profile)
	b.WriteString("\n\n[參考文獻節錄]\n")
	b.WriteString(strings.Join(passages, "\n\n"))
	b.WriteString("\n\n報告需求：\n")
	b.WriteString("- 使用繁體中文撰寫，語氣專業但易懂。\n")
	b.WriteString("- 以 Markdown 格式輸出，並包含下列章節：\n")
	b.WriteString("  1. 一級標題：報告標題（可自訂）與產出日期（使用今天日期）。\n")
	b.WriteString("  2. 基本資料：使用表格展示姓名、性別、年齡、身高、體重、測試日期、BMI、體脂率等關鍵指標。\n")
	b.WriteString("  3. 臨床焦點摘要：2-3 條條列，聚焦個體目前最重要的生理風險或優勢。\n")
	b.WriteString("  4. 代謝風險與病理機制：需解釋 InBody「C 型」輪廓的涵義，以及內臟脂肪對代謝、發炎與胰島素敏感性的影響。\n")
	b.WriteString("  5. 飲食策略與補充建議：至少 3 條具體建議，需引用個人數值並說明該建議如何改善風險。\n")
	b.WriteString("  6. 訓練與恢復處方：至少 3 條建議，需結合左右肢肌肉差異、相位角等資料，避免制式建議。\n")
	b.WriteString("  7. 監測指標與追蹤計畫：列出主要/次要 KPI 與建議追蹤週期，需附上數值目標（例如 VFA 目標、PBF 目標）。\n")
	b.WriteString("  8. 結語：至少 3 句話，點出下一步行動與複測節奏。\n")
	b.WriteString("- 若資料不足請明確註記「資料不足」。\n")
	b.WriteString("- 引用參考內容時以內文方式呈現（例如「[參考 22]」）。\n")
	b.WriteString("- 避免制式、泛用句型，每個段落須結合個人化數據，明確說明建議與體脂、肌肉、水分或相位角的關聯。")
	return b.String()
}
