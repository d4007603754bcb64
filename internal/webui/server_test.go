package webui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/zinojeng/inbody/internal/analysis"
	"github.com/zinojeng/inbody/internal/ingest"
	"github.com/zinojeng/inbody/internal/metric"
	"github.com/zinojeng/inbody/internal/report"
)

type fakeNarrator struct {
	text string
	err  error
}

func (f *fakeNarrator) Narrative(context.Context, *metric.Store, []string) (string, error) {
	return f.text, f.err
}

type fakePDF struct{ out []byte }

func (f *fakePDF) Render(context.Context, string) ([]byte, error) {
	if f.out == nil {
		return nil, fmt.Errorf("renderer unavailable")
	}
	return f.out, nil
}

func newTestHandler(t *testing.T, opts ...Option) http.Handler {
	t.Helper()
	engine := analysis.NewEngine(analysis.DefaultThresholds())
	assembler := report.NewAssembler(engine, report.WithClock(func() time.Time {
		return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	}))
	quiet := log.New(io.Discard, "", 0)
	opts = append([]Option{WithLogger(quiet), WithPDFRenderer(&fakePDF{out: []byte("%PDF-1.4 fake")})}, opts...)
	return NewServer(assembler, ingest.DefaultEncodings, opts...)
}

func uploadRequest(t *testing.T, filename, content string, llm bool) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("export", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.WriteString(fw, content); err != nil {
		t.Fatal(err)
	}
	if llm {
		if err := mw.WriteField("llm", "1"); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/generate", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

const sampleSummaryCSV = "項目,數值\nWeight_kg,71.8\nHeight_cm,175.0\nPBF_pct,28.5\nGender,M\nVFA_cm2,59.6\n"

func decodeGenerate(t *testing.T, rr *httptest.ResponseRecorder) generateResponse {
	t.Helper()
	var resp generateResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad JSON response: %v\n%s", err, rr.Body.String())
	}
	return resp
}

func TestIndexPage(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "InBody 報告產生器") {
		t.Errorf("page title missing")
	}
}

func TestGenerateRuleBased(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(rr, uploadRequest(t, "export.csv", sampleSummaryCSV, false))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rr.Code, rr.Body.String())
	}
	resp := decodeGenerate(t, rr)
	if resp.LLMUsed {
		t.Error("rule-based run must not mark LLM usage")
	}
	if !strings.Contains(resp.ReportMarkdown, "# InBody 最終建議報告") {
		t.Errorf("report missing:\n%s", resp.ReportMarkdown)
	}
	if !strings.Contains(resp.ReportMarkdown, "體重 71.8 kg，身高 175.0 cm。") {
		t.Errorf("weight narrative missing:\n%s", resp.ReportMarkdown)
	}
	var weight any
	for _, item := range resp.Summary {
		if item.Key == "Weight_kg" {
			weight = item.Value
		}
	}
	if weight != "71.8" {
		t.Errorf("normalized summary weight = %v", weight)
	}
}

func TestGenerateUnsupportedExtension(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(rr, uploadRequest(t, "export.xlsx", "junk", false))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "unsupported file extension") {
		t.Errorf("error body: %s", rr.Body.String())
	}
}

func TestGenerateLLMDegradesToRules(t *testing.T) {
	handler := newTestHandler(t, WithNarrator(&fakeNarrator{err: fmt.Errorf("all models failed")}, nil))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, uploadRequest(t, "export.csv", sampleSummaryCSV, true))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rr.Code, rr.Body.String())
	}
	resp := decodeGenerate(t, rr)
	if resp.LLMUsed {
		t.Error("degraded run must not mark LLM usage")
	}
	if resp.Notice == "" {
		t.Error("degradation must carry a notice")
	}
	if !strings.Contains(resp.ReportMarkdown, "## 臨床執行摘要") {
		t.Errorf("rule-based report expected:\n%s", resp.ReportMarkdown)
	}
}

func TestGenerateLLMReplacesBody(t *testing.T) {
	handler := newTestHandler(t, WithNarrator(&fakeNarrator{text: "# 個人化報告\n\n內容段落。"}, nil))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, uploadRequest(t, "export.csv", sampleSummaryCSV, true))
	resp := decodeGenerate(t, rr)
	if !resp.LLMUsed {
		t.Error("LLM usage flag missing")
	}
	if strings.Contains(resp.ReportMarkdown, "## 臨床執行摘要") {
		t.Errorf("rule sections must not leak into LLM mode:\n%s", resp.ReportMarkdown)
	}
	if !strings.HasPrefix(resp.ReportMarkdown, "# 個人化報告") {
		t.Errorf("narrative not used:\n%s", resp.ReportMarkdown)
	}
}

func TestReportHTML(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/report-html", strings.NewReader("# 標題\n\n| 項目 | 數值 |\n| --- | --- |\n| 體重 | 71.8 kg |\n"))
	newTestHandler(t).ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rr.Code, rr.Body.String())
	}
	body := rr.Body.String()
	if !strings.Contains(body, "<table>") || !strings.Contains(body, "<td>71.8 kg</td>") {
		t.Errorf("GFM table not rendered:\n%s", body)
	}
}

func TestReportPDF(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/report-pdf", strings.NewReader("# 標題"))
	newTestHandler(t).ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestReportPDFRendererFailure(t *testing.T) {
	handler := newTestHandler(t, WithPDFRenderer(&fakePDF{}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/report-pdf", strings.NewReader("# 標題")))
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status %d, want 502", rr.Code)
	}
}

func TestMethodGuards(t *testing.T) {
	handler := newTestHandler(t)
	for _, path := range []string{"/generate", "/report-html", "/report-pdf"} {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s GET status %d, want 405", path, rr.Code)
		}
	}
}
