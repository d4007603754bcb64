// Package webui serves the browser front end: upload an analyzer export,
// get the normalized summary and the narrative report back, optionally
// rendered to HTML or PDF.
package webui

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/zinojeng/inbody/internal/ingest"
	"github.com/zinojeng/inbody/internal/metric"
	"github.com/zinojeng/inbody/internal/report"
)

const maxUploadBytes = 10 << 20

// Narrator is the slice of the insight client the server uses; nil disables
// the personalized mode entirely.
type Narrator interface {
	Narrative(ctx context.Context, store *metric.Store, sections []string) (string, error)
}

type Server struct {
	assembler *report.Assembler
	encodings []string
	narrator  Narrator
	sections  []string
	pdf       ReportPDFRenderer
	logger    *log.Logger
}

// Option adjusts a Server.
type Option func(*Server)

// WithNarrator enables LLM-personalized reports.
func WithNarrator(n Narrator, referenceSections []string) Option {
	return func(s *Server) {
		s.narrator = n
		s.sections = referenceSections
	}
}

// WithPDFRenderer overrides the default Chromium renderer, used by tests.
func WithPDFRenderer(r ReportPDFRenderer) Option {
	return func(s *Server) { s.pdf = r }
}

// WithLogger overrides the default logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// NewServer builds the HTTP handler.
func NewServer(assembler *report.Assembler, encodings []string, opts ...Option) http.Handler {
	s := &Server{
		assembler: assembler,
		encodings: encodings,
		pdf:       NewChromiumPDFRenderer(),
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/generate", s.handleGenerate)
	mux.HandleFunc("/report-html", s.handleReportHTML)
	mux.HandleFunc("/report-pdf", s.handleReportPDF)
	mux.HandleFunc("/", s.handleRoot)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/index.html" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = io.WriteString(w, indexHTML)
}

// summaryItem is one normalized field in the /generate response.
type summaryItem struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

type generateResponse struct {
	Summary        []summaryItem `json:"summary"`
	ReportMarkdown string        `json:"report_markdown"`
	LLMUsed        bool          `json:"llm_used"`
	Notice         string        `json:"notice,omitempty"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("export")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing export file")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".csv" && ext != ".json" {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unsupported file extension %q, use .csv or .json", ext))
		return
	}

	summary, err := s.extractUpload(file, ext)
	if err != nil {
		s.logger.Printf("webui: extract %s: %v", header.Filename, err)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	store := metric.NewStore(summary)

	resp := generateResponse{Summary: make([]summaryItem, 0, len(summary))}
	for _, e := range summary {
		resp.Summary = append(resp.Summary, summaryItem{Key: e.Key, Value: e.Value})
	}

	var narrative string
	if wantLLM(r.FormValue("llm")) {
		if s.narrator == nil {
			resp.Notice = "個人化模式未啟用，已改用規則式報告。"
		} else if text, err := s.narrator.Narrative(r.Context(), store, s.sections); err != nil {
			s.logger.Printf("webui: insight degraded: %v", err)
			resp.Notice = "個人化分析暫時無法使用，已改用規則式報告。"
		} else {
			narrative = text
			resp.LLMUsed = true
		}
	}
	resp.ReportMarkdown = s.assembler.Build(store, narrative)
	writeJSON(w, http.StatusOK, resp)
}

// extractUpload persists the upload to a scratch file so the ingest decoders
// can retry encodings over the raw bytes, then resolves the canonical
// summary from whichever table shape arrived.
func (s *Server) extractUpload(file io.Reader, ext string) ([]metric.Entry, error) {
	tmp, err := os.CreateTemp("", "inbody-upload-*"+ext)
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, io.LimitReader(file, maxUploadBytes)); err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	pairs, err := ingest.LoadMetricPairs(tmp.Name(), s.encodings)
	if err != nil {
		return nil, err
	}
	headers := make([]string, len(pairs))
	row := make([]string, len(pairs))
	for i, p := range pairs {
		headers[i] = p.Key
		if p.Value != nil {
			row[i] = fmt.Sprint(p.Value)
		}
	}
	return ingest.ExtractSummary(headers, row), nil
}

func wantLLM(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func (s *Server) handleReportHTML(w http.ResponseWriter, r *http.Request) {
	markdown, ok := readMarkdownBody(w, r)
	if !ok {
		return
	}
	page, err := RenderHTMLPage(markdown)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, page)
}

func (s *Server) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	markdown, ok := readMarkdownBody(w, r)
	if !ok {
		return
	}
	pdf, err := s.pdf.Render(r.Context(), markdown)
	if err != nil {
		s.logger.Printf("webui: pdf render: %v", err)
		writeError(w, http.StatusBadGateway, "PDF rendering failed")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="inbody_report.pdf"`)
	_, _ = w.Write(pdf)
}

func readMarkdownBody(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return "", false
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read body")
		return "", false
	}
	markdown := strings.TrimSpace(string(body))
	if markdown == "" {
		writeError(w, http.StatusBadRequest, "empty report body")
		return "", false
	}
	return markdown, true
}
