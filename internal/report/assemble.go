package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/zinojeng/inbody/internal/analysis"
	"github.com/zinojeng/inbody/internal/metric"
)

// Assembler renders the final recommendation document.
type Assembler struct {
	engine *analysis.Engine
	policy CitationPolicy
	now    func() time.Time
}

// Option adjusts an Assembler.
type Option func(*Assembler)

// WithCitationPolicy overrides the default strip policy.
func WithCitationPolicy(p CitationPolicy) Option {
	return func(a *Assembler) {
		if p != "" {
			a.policy = p
		}
	}
}

// WithClock pins the report timestamp, used by tests.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) { a.now = now }
}

// NewAssembler builds an assembler around a narrative engine.
func NewAssembler(engine *analysis.Engine, opts ...Option) *Assembler {
	a := &Assembler{engine: engine, policy: CitationStrip, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

type section struct {
	title string
	body  func(*metric.Store) []string
}

func (a *Assembler) sections() []section {
	e := a.engine
	return []section{
		{"臨床執行摘要", e.ClinicalSummary},
		{"代謝風險解析", e.MetabolicRisk},
		{"體重與體脂分析", e.WeightStatus},
		{"身體組成重點", e.BodyComposition},
		{"體重控制建議", e.ControlAdvice},
		{"部位肌肉與脂肪", e.Segmental},
		{"水分平衡分析", e.FluidBalance},
		{"脂肪分佈評估", e.FatDistribution},
		{"研究指標補充", e.ResearchMetrics},
		{"營養策略", e.NutritionStrategy},
		{"訓練與修復策略", e.TrainingStrategy},
		{"階段性監測指標", e.MonitoringTargets},
		{"附註說明", e.AppendixNotes},
	}
}

// Build renders the full document. A non-empty insight text replaces the
// rule-based body wholesale; the two modes are never merged. The result
// always ends with exactly one newline.
func (a *Assembler) Build(store *metric.Store, insight string) string {
	if text := strings.TrimSpace(insight); text != "" {
		return CleanCitations(text, a.policy) + "\n"
	}

	var lines []string
	lines = append(lines, "# InBody 最終建議報告", "")
	lines = append(lines, "報告產出時間："+a.now().Format("2006-01-02 15:04"), "")
	lines = append(lines, "## 基本資料")
	for _, item := range a.profileLines(store) {
		lines = append(lines, "- "+item)
	}
	lines = append(lines, "")

	for _, s := range a.sections() {
		lines = append(lines, "## "+s.title)
		content := s.body(store)
		if len(content) == 0 {
			lines = append(lines, "- 資料不足，無法評估。")
		}
		for _, item := range content {
			lines = append(lines, "- "+item)
		}
		lines = append(lines, "")
	}

	lines = append(lines, "## 總結與下一步")
	for _, point := range a.engine.ClosingSummary(store) {
		lines = append(lines, "- "+point)
	}

	doc := CleanCitations(strings.Join(lines, "\n"), a.policy)
	return strings.TrimSpace(doc) + "\n"
}

func (a *Assembler) profileLines(store *metric.Store) []string {
	get := func(id string) string {
		if v, ok := store.Text(metric.Variants(id)...); ok {
			return v
		}
		return "—"
	}
	num := func(id, unit string) string {
		if v, ok := store.Number(metric.Variants(id)...); ok {
			return fmt.Sprintf("%.1f%s", v, unit)
		}
		return "—"
	}
	testTime, _ := store.Value(metric.Variants("test_time")...)
	return []string{
		"姓名：" + get("name"),
		"性別：" + get("gender"),
		"年齡：" + get("age"),
		"身高：" + num("height_cm", " cm"),
		"體重：" + num("weight_kg", " kg"),
		"測試時間：" + FormatTestTimestamp(testTime),
	}
}
