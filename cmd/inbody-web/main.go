// inbody-web serves the browser front end: upload an export, preview the
// report, download it as HTML or PDF.
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/zinojeng/inbody/internal/analysis"
	"github.com/zinojeng/inbody/internal/config"
	"github.com/zinojeng/inbody/internal/insight"
	"github.com/zinojeng/inbody/internal/report"
	"github.com/zinojeng/inbody/internal/webui"
)

func main() {
	var (
		addr       = flag.String("addr", ":8077", "Listen address")
		configPath = flag.String("config", "", "Optional inbody.yaml configuration file")
		refPath    = flag.String("reference", "reference", "Reference corpus for the personalized prompt")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	engine := analysis.NewEngine(cfg.Thresholds)
	assembler := report.NewAssembler(engine, report.WithCitationPolicy(cfg.CitationPolicy))

	opts := []webui.Option{}
	if gen, err := insight.NewAnthropicGeneratorFromEnv(); err != nil {
		log.Printf("personalized mode disabled: %v", err)
	} else {
		client := insight.NewClient(gen, cfg.ModelChain(), cfg.Temperature, log.Default())
		opts = append(opts, webui.WithNarrator(client, insight.LoadReferenceSections(*refPath)))
	}

	handler := webui.NewServer(assembler, cfg.Encodings, opts...)
	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatal(err)
	}
}
