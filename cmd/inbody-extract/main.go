// inbody-extract normalizes a raw analyzer CSV export into the canonical
// summary artifacts (CSV, JSON and a tabular Markdown report).
package main

import (
	"flag"
	"log"
	"strings"

	"github.com/zinojeng/inbody/internal/config"
	"github.com/zinojeng/inbody/internal/ingest"
)

func main() {
	var (
		inputPath  = flag.String("input", "", "Path to the raw analyzer CSV export")
		outputDir  = flag.String("output-dir", "data/inbody_clean", "Directory for the summary artifacts")
		configPath = flag.String("config", "", "Optional inbody.yaml configuration file")
		encodings  = flag.String("encodings", "", "Comma-separated encoding detection order (overrides config)")
	)
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("missing required -input")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	order := cfg.Encodings
	if strings.TrimSpace(*encodings) != "" {
		order = nil
		for _, enc := range strings.Split(*encodings, ",") {
			if e := strings.TrimSpace(enc); e != "" {
				order = append(order, e)
			}
		}
	}

	out, err := ingest.ProcessFile(*inputPath, *outputDir, order)
	if err != nil {
		log.Fatalf("process %s: %v", *inputPath, err)
	}
	log.Printf("summary written: %s", out.CSV)
	log.Printf("summary written: %s", out.JSON)
	log.Printf("report written: %s", out.Markdown)
}
