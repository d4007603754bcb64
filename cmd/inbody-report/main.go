// inbody-report turns a normalized summary (inbody_summary.json/.csv) into
// the final recommendation report, optionally personalized through an LLM
// with rule-based degradation on failure.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/zinojeng/inbody/internal/analysis"
	"github.com/zinojeng/inbody/internal/config"
	"github.com/zinojeng/inbody/internal/ingest"
	"github.com/zinojeng/inbody/internal/insight"
	"github.com/zinojeng/inbody/internal/report"
)

func main() {
	var (
		inputPath  = flag.String("input", "", "Path to inbody_summary.json or inbody_summary.csv (default: search ./data)")
		outputPath = flag.String("output", "", "Path for the final Markdown report (default: inbody_final_report.md beside the input)")
		configPath = flag.String("config", "", "Optional inbody.yaml configuration file")
		refPath    = flag.String("reference", "reference", "Reference corpus (markdown/text) for the personalized prompt")
		noLLM      = flag.Bool("no-llm", false, "Disable LLM personalization, use the rule-based report")
		model      = flag.String("model", "", "Primary model id (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *model != "" {
		cfg.Model = *model
	}

	input := *inputPath
	if input == "" {
		input = defaultInputPath()
	}
	if input == "" {
		log.Fatal("no input found: pass -input or place inbody_summary.json/.csv under ./data")
	}

	store, err := ingest.LoadStore(input, cfg.Encodings)
	if err != nil {
		log.Fatalf("load summary %s: %v", input, err)
	}

	narrative := ""
	if !*noLLM {
		gen, err := insight.NewAnthropicGeneratorFromEnv()
		if err != nil {
			log.Printf("insight disabled: %v", err)
		} else {
			sections := insight.LoadReferenceSections(*refPath)
			client := insight.NewClient(gen, cfg.ModelChain(), cfg.Temperature, log.Default())
			text, err := client.Narrative(context.Background(), store, sections)
			if err != nil {
				log.Printf("personalized analysis unavailable, falling back to rule-based report: %v", err)
			} else {
				narrative = text
			}
		}
	}

	engine := analysis.NewEngine(cfg.Thresholds)
	assembler := report.NewAssembler(engine, report.WithCitationPolicy(cfg.CitationPolicy))
	doc := assembler.Build(store, narrative)

	destination := *outputPath
	if destination == "" {
		destination = filepath.Join(filepath.Dir(input), "inbody_final_report.md")
	}
	if err := os.WriteFile(destination, []byte(doc), 0o644); err != nil {
		log.Fatalf("write report: %v", err)
	}
	fmt.Printf("Final report written to %s\n", destination)
}

// defaultInputPath mirrors the conventional artifact locations of
// inbody-extract.
func defaultInputPath() string {
	dirs := []string{".", "data", filepath.Join("data", "inbody_clean")}
	names := []string{"inbody_summary.json", "inbody_summary.csv"}
	for _, dir := range dirs {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}
