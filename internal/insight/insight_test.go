package insight

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/zinojeng/inbody/internal/metric"
)

func TestCompletionPayloadResolve(t *testing.T) {
	t.Run("direct text wins", func(t *testing.T) {
		p := completionPayload{text: " 報告內容 ", parts: []contentPart{{kind: "text", text: "ignored"}}}
		got, err := p.resolve()
		if err != nil || got != "報告內容" {
			t.Fatalf("got %q, %v", got, err)
		}
	})
	t.Run("typed parts concatenate", func(t *testing.T) {
		p := completionPayload{parts: []contentPart{
			{kind: "text", text: "第一段"},
			{kind: "tool_use", text: "skipped"},
			{kind: "output_text", text: "第二段"},
		}}
		got, err := p.resolve()
		if err != nil || got != "第一段第二段" {
			t.Fatalf("got %q, %v", got, err)
		}
	})
	t.Run("no content is distinguishable", func(t *testing.T) {
		p := completionPayload{parts: []contentPart{{kind: "tool_use", text: ""}}}
		_, err := p.resolve()
		if !errors.Is(err, ErrNoContent) {
			t.Fatalf("want ErrNoContent, got %v", err)
		}
	})
}

type fakeGenerator struct {
	failing map[string]error
	replies map[string]string
	calls   []string
}

func (f *fakeGenerator) Generate(_ context.Context, req Request) (string, error) {
	f.calls = append(f.calls, req.Model)
	if err, ok := f.failing[req.Model]; ok {
		return "", err
	}
	if text, ok := f.replies[req.Model]; ok {
		return text, nil
	}
	return "", ErrNoContent
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestClientFallsBackToSecondModel(t *testing.T) {
	gen := &fakeGenerator{
		failing: map[string]error{"primary-model": fmt.Errorf("model not found")},
		replies: map[string]string{"fallback-model": "# 個人化報告\n內容"},
	}
	client := NewClient(gen, []string{"primary-model", "fallback-model"}, nil, quietLogger())
	store := metric.NewStoreFromMap(map[string]any{"Weight_kg": 71.8})

	text, err := client.Narrative(context.Background(), store, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "個人化報告") {
		t.Errorf("unexpected narrative: %q", text)
	}
	if len(gen.calls) != 2 || gen.calls[0] != "primary-model" || gen.calls[1] != "fallback-model" {
		t.Errorf("chain order wrong: %v", gen.calls)
	}
}

func TestClientExhaustionReportsLastError(t *testing.T) {
	boom := fmt.Errorf("quota exceeded")
	gen := &fakeGenerator{failing: map[string]error{"a": fmt.Errorf("bad model"), "b": boom}}
	client := NewClient(gen, []string{"a", "b"}, nil, quietLogger())

	_, err := client.Narrative(context.Background(), metric.NewStoreFromMap(nil), nil)
	if err == nil || !errors.Is(err, boom) {
		t.Fatalf("want last error wrapped, got %v", err)
	}
}

func TestClientDeduplicatesChain(t *testing.T) {
	gen := &fakeGenerator{replies: map[string]string{"m": "text"}}
	client := NewClient(gen, []string{"m", "m", ""}, nil, quietLogger())
	if _, err := client.Narrative(context.Background(), metric.NewStoreFromMap(nil), nil); err != nil {
		t.Fatal(err)
	}
	if len(gen.calls) != 1 {
		t.Errorf("duplicate models should collapse, calls: %v", gen.calls)
	}
}

func TestBuildMetricProfile(t *testing.T) {
	store := metric.NewStoreFromMap(map[string]any{
		"Name":             "王小明",
		"Gender":           "M",
		"Weight_kg":        71.8,
		"Height_cm":        175.0,
		"PBF_pct":          28.5,
		"RightArm_Lean_kg": 3.3,
	})
	profile := BuildMetricProfile(store)

	if !strings.Contains(profile, "姓名: 王小明") {
		t.Errorf("name line missing:\n%s", profile)
	}
	if !strings.Contains(profile, "體重(kg): 71.8") {
		t.Errorf("weight line missing:\n%s", profile)
	}
	// BMI derived from weight/height when the export has no BMI column
	if !strings.Contains(profile, "BMI: 23.4") {
		t.Errorf("derived BMI missing:\n%s", profile)
	}
	if !strings.Contains(profile, "左右上肢肌肉量(kg): 3.3 / —") {
		t.Errorf("half-resolved pair should render with placeholder:\n%s", profile)
	}
	if strings.Contains(profile, "內臟脂肪面積") {
		t.Errorf("missing metric must drop its line:\n%s", profile)
	}
	if strings.Contains(profile, "左右下肢肌肉量") {
		t.Errorf("fully missing pair must drop its line:\n%s", profile)
	}
}

func TestBuildPromptEmbedsProfileAndPassages(t *testing.T) {
	prompt := BuildPrompt("體重(kg): 71.8", []string{"## 內臟脂肪\n說明", "## 相位角\n說明"})
	if !strings.Contains(prompt, "[客製化指標]\n體重(kg): 71.8") {
		t.Errorf("profile block missing:\n%s", prompt)
	}
	if !strings.Contains(prompt, "[參考文獻節錄]\n## 內臟脂肪") {
		t.Errorf("reference block missing:\n%s", prompt)
	}
	if !strings.Contains(prompt, "繁體中文") {
		t.Errorf("language requirement missing")
	}
}

func TestLoadReferenceSections(t *testing.T) {
	dir := t.TempDir()
	content := "前言段落\n\n## 內臟脂肪\nVFA 說明\n\n## 相位角\n說明文字\n"
	if err := os.WriteFile(filepath.Join(dir, "guide.md"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "skip.pdf"), []byte("binary"), 0o644); err != nil {
		t.Fatal(err)
	}

	sections := LoadReferenceSections(dir)
	if len(sections) != 3 {
		t.Fatalf("want 3 sections, got %d: %v", len(sections), sections)
	}
	if !strings.HasPrefix(sections[1], "## 內臟脂肪") {
		t.Errorf("section split wrong: %q", sections[1])
	}
}

func TestLoadReferenceSectionsMissingPath(t *testing.T) {
	if got := LoadReferenceSections(filepath.Join(t.TempDir(), "absent")); got != nil {
		t.Errorf("missing corpus should be empty, got %v", got)
	}
}

func TestSelectPassagesScoring(t *testing.T) {
	store := metric.NewStoreFromMap(map[string]any{"VFA_cm2": 59.6})
	sections := []string{
		"## 睡眠\n與主題無關",
		"## 內臟脂肪與代謝\n內臟脂肪說明",
		"## 訓練\n也無關",
	}
	got := SelectPassages(store, sections, 3)
	if len(got) != 1 || !strings.Contains(got[0], "內臟脂肪") {
		t.Errorf("expected single scored passage, got %v", got)
	}
}

func TestSelectPassagesFallsBackToHead(t *testing.T) {
	store := metric.NewStoreFromMap(map[string]any{})
	sections := []string{"一", "二", "三", "四"}
	got := SelectPassages(store, sections, 3)
	if len(got) != 3 || got[0] != "一" {
		t.Errorf("keywordless store should take corpus head, got %v", got)
	}
}

type fakeMessager struct {
	resp *anthropic.Message
	err  error
	got  anthropic.MessageNewParams
}

func (f *fakeMessager) New(_ context.Context, params anthropic.MessageNewParams, _ ...option.RequestOption) (*anthropic.Message, error) {
	f.got = params
	return f.resp, f.err
}

func TestAnthropicGeneratorResolvesParts(t *testing.T) {
	fake := &fakeMessager{resp: &anthropic.Message{
		Content: []anthropic.ContentBlockUnion{
			{Type: "text", Text: "# 報告\n內容"},
		},
	}}
	gen := NewAnthropicGenerator(fake)
	temp := 0.3
	text, err := gen.Generate(context.Background(), Request{
		Profile:     "體重(kg): 71.8",
		Model:       "claude-sonnet-4-20250514",
		Temperature: &temp,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(text, "# 報告") {
		t.Errorf("unexpected text: %q", text)
	}
	if string(fake.got.Model) != "claude-sonnet-4-20250514" {
		t.Errorf("model not forwarded: %v", fake.got.Model)
	}
	if !fake.got.Temperature.Valid() || fake.got.Temperature.Value != 0.3 {
		t.Errorf("temperature not forwarded: %+v", fake.got.Temperature)
	}
}

func TestAnthropicGeneratorEmptyContent(t *testing.T) {
	fake := &fakeMessager{resp: &anthropic.Message{}}
	gen := NewAnthropicGenerator(fake)
	_, err := gen.Generate(context.Background(), Request{Model: "claude-sonnet-4-20250514"})
	if !errors.Is(err, ErrNoContent) {
		t.Fatalf("want ErrNoContent, got %v", err)
	}
}

func TestTemperatureSuppressedForUnsupportedFamily(t *testing.T) {
	fake := &fakeMessager{resp: &anthropic.Message{
		Content: []anthropic.ContentBlockUnion{{Type: "text", Text: "ok"}},
	}}
	gen := NewAnthropicGenerator(fake)
	temp := 0.3
	if _, err := gen.Generate(context.Background(), Request{Model: "gpt-5-proxy", Temperature: &temp}); err != nil {
		t.Fatal(err)
	}
	if fake.got.Temperature.Valid() {
		t.Errorf("temperature must be suppressed for this model family")
	}
}
