package ingest

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zinojeng/inbody/internal/metric"
)

// Outputs lists the three sibling artifacts one ingestion run produces.
type Outputs struct {
	CSV      string
	JSON     string
	Markdown string
}

// ProcessFile is the ingestion-side entry point: decode, extract, write.
// Structural errors abort before any output file exists.
func ProcessFile(inputPath, outputDir string, encodings []string) (Outputs, error) {
	headers, row, err := ReadRawTable(inputPath, encodings)
	if err != nil {
		return Outputs{}, err
	}
	summary := ExtractSummary(headers, row)
	return WriteOutputs(summary, outputDir)
}

// WriteOutputs persists the normalized summary as a delimited table, a
// structured object and a markdown summary report. Each document is built
// fully in memory and written whole, so a failed run never leaves a partial
// file behind.
func WriteOutputs(summary []metric.Entry, outputDir string) (Outputs, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Outputs{}, err
	}
	out := Outputs{
		CSV:      filepath.Join(outputDir, "inbody_summary.csv"),
		JSON:     filepath.Join(outputDir, "inbody_summary.json"),
		Markdown: filepath.Join(outputDir, "inbody_report.md"),
	}
	if err := os.WriteFile(out.CSV, buildSummaryCSV(summary), 0o644); err != nil {
		return Outputs{}, err
	}
	jsonBody, err := buildSummaryJSON(summary)
	if err != nil {
		return Outputs{}, err
	}
	if err := os.WriteFile(out.JSON, jsonBody, 0o644); err != nil {
		return Outputs{}, err
	}
	if err := os.WriteFile(out.Markdown, []byte(BuildSummaryMarkdown(summary)), 0o644); err != nil {
		return Outputs{}, err
	}
	return out, nil
}

// buildSummaryCSV renders the 項目/數值 table, BOM-prefixed so spreadsheet
// applications pick up the UTF-8 Chinese labels.
func buildSummaryCSV(summary []metric.Entry) []byte {
	var b strings.Builder
	b.WriteString(utf8BOM)
	w := csv.NewWriter(&b)
	_ = w.Write([]string{"項目", "數值"})
	for _, e := range summary {
		cell := ""
		if e.Value != nil {
			cell = fmt.Sprint(e.Value)
		}
		_ = w.Write([]string{e.Key, cell})
	}
	w.Flush()
	return []byte(b.String())
}

// buildSummaryJSON preserves catalog order instead of the alphabetical order
// map marshalling would impose.
func buildSummaryJSON(summary []metric.Entry) ([]byte, error) {
	var b strings.Builder
	b.WriteString("{\n")
	for i, e := range summary {
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		b.WriteString("  ")
		b.Write(key)
		b.WriteString(": ")
		b.Write(val)
		if i < len(summary)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return []byte(b.String()), nil
}

// BuildSummaryMarkdown renders the plain tabular summary report produced at
// ingestion time (the narrative report is a separate, later stage).
func BuildSummaryMarkdown(summary []metric.Entry) string {
	get := make(map[string]any, len(summary))
	for _, e := range summary {
		get[e.Key] = e.Value
	}
	cell := func(key, unit string, digits int) string {
		v := get[key]
		if v == nil {
			return "—"
		}
		if digits >= 0 {
			if n, ok := metric.ToNumber(v); ok {
				return fmt.Sprintf("%.*f%s", digits, n, unit)
			}
		}
		text := strings.TrimSpace(fmt.Sprint(v))
		if text == "" {
			return "—"
		}
		return text + unit
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# InBody 正式報告\n\n")
	fmt.Fprintf(&b, "## 基本資料\n")
	fmt.Fprintf(&b, "| 項目 | 數值 |\n| --- | --- |\n")
	fmt.Fprintf(&b, "| 姓名 | %s |\n", cell("Name", "", -1))
	fmt.Fprintf(&b, "| ID | %s |\n", cell("ID", "", -1))
	fmt.Fprintf(&b, "| 性別 | %s |\n", cell("Gender", "", -1))
	fmt.Fprintf(&b, "| 年齡 | %s |\n", cell("Age", "", -1))
	fmt.Fprintf(&b, "| 身高 | %s |\n", cell("Height_cm", " cm", -1))
	fmt.Fprintf(&b, "| 測試時間 | %s |\n\n", cell("TestDateTime", "", -1))

	fmt.Fprintf(&b, "## 身體組成分析\n")
	fmt.Fprintf(&b, "| 項目 | 數值 |\n| --- | --- |\n")
	fmt.Fprintf(&b, "| 體重 | %s |\n", cell("Weight_kg", " kg", 1))
	fmt.Fprintf(&b, "| 骨骼肌量 (SMM) | %s |\n", cell("SMM_kg", " kg", 1))
	fmt.Fprintf(&b, "| 體脂肪量 (BFM) | %s |\n", cell("BFM_kg", " kg", 1))
	fmt.Fprintf(&b, "| 體脂率 (PBF) | %s |\n", cell("PBF_pct", " %", 1))
	fmt.Fprintf(&b, "| 體水分 (TBW) | %s |\n", cell("TBW_kg", " kg", 1))
	fmt.Fprintf(&b, "| 細胞內水分 (ICW) | %s |\n", cell("ICW_kg", " kg", 1))
	fmt.Fprintf(&b, "| 細胞外水分 (ECW) | %s |\n", cell("ECW_kg", " kg", 1))
	fmt.Fprintf(&b, "| 蛋白質 | %s |\n", cell("Protein_kg", " kg", 1))
	fmt.Fprintf(&b, "| 礦物質 | %s |\n", cell("Minerals_kg", " kg", 1))
	fmt.Fprintf(&b, "| BMI | %s |\n", cell("BMI", "", 1))
	fmt.Fprintf(&b, "| BMR | %s |\n", cell("BMR_kcal", " kcal", 0))
	fmt.Fprintf(&b, "| 內臟脂肪面積 (VFA) | %s |\n", cell("VFA_cm2", " cm²", 1))
	fmt.Fprintf(&b, "| ECW/TBW | %s |\n", cell("ECW_TBW", "", 3))
	fmt.Fprintf(&b, "| 腰臀比 (WHR) | %s |\n", cell("WHR", "", 3))
	fmt.Fprintf(&b, "| SMI | %s |\n", cell("SMI", "", 2))
	fmt.Fprintf(&b, "| InBody 分數 | %s |\n\n", cell("Score", "", 0))

	fmt.Fprintf(&b, "## 體重控制建議\n")
	fmt.Fprintf(&b, "| 項目 | 數值 |\n| --- | --- |\n")
	fmt.Fprintf(&b, "| 目標體重 | %s |\n", cell("TargetWeight_kg", " kg", 1))
	fmt.Fprintf(&b, "| 建議減脂 | %s |\n", cell("FatControl_kg", " kg", 1))
	fmt.Fprintf(&b, "| 建議增肌 | %s |\n\n", cell("MuscleControl_kg", " kg", 1))

	fmt.Fprintf(&b, "## 部位肌肉/脂肪分析\n")
	fmt.Fprintf(&b, "| 部位 | Lean (kg) | Fat (kg) |\n| --- | --- | --- |\n")
	fmt.Fprintf(&b, "| 右手 | %s | %s |\n", cell("RightArm_Lean_kg", "", 1), cell("RightArm_Fat_kg", "", 1))
	fmt.Fprintf(&b, "| 左手 | %s | %s |\n", cell("LeftArm_Lean_kg", "", 1), cell("LeftArm_Fat_kg", "", 1))
	fmt.Fprintf(&b, "| 軀幹 | %s | %s |\n", cell("Trunk_Lean_kg", "", 1), cell("Trunk_Fat_kg", "", 1))
	fmt.Fprintf(&b, "| 右腿 | %s | %s |\n", cell("RightLeg_Lean_kg", "", 1), cell("RightLeg_Fat_kg", "", 1))
	fmt.Fprintf(&b, "| 左腿 | %s | %s |\n\n", cell("LeftLeg_Lean_kg", "", 1), cell("LeftLeg_Fat_kg", "", 1))

	fmt.Fprintf(&b, "## 其他指標與備註\n")
	fmt.Fprintf(&b, "- 缺漏值以 `—` 顯示，代表原始匯出檔未提供該欄位。\n")
	fmt.Fprintf(&b, "- 後續個人化分析請以 inbody-report 讀取本目錄的 summary 檔產出。\n")
	return b.String()
}
