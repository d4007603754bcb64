// render-report converts a Markdown report into a standalone HTML page or a
// PDF (through headless Chromium).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/zinojeng/inbody/internal/webui"
)

func main() {
	var (
		inputPath  = flag.String("input", "", "Path to the Markdown report")
		outputPath = flag.String("output", "", "Output path (defaults to stdout for HTML)")
		format     = flag.String("format", "html", "Output format: html or pdf")
	)
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("missing required -input")
	}
	markdown, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	switch strings.ToLower(*format) {
	case "html":
		page, err := webui.RenderHTMLPage(string(markdown))
		if err != nil {
			log.Fatalf("render html: %v", err)
		}
		if err := writeOut(*outputPath, []byte(page)); err != nil {
			log.Fatalf("write output: %v", err)
		}
	case "pdf":
		if *outputPath == "" {
			log.Fatal("-output is required for pdf format")
		}
		renderer := webui.NewChromiumPDFRenderer()
		pdf, err := renderer.Render(context.Background(), string(markdown))
		if err != nil {
			log.Fatalf("render pdf: %v", err)
		}
		if err := os.WriteFile(*outputPath, pdf, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
	default:
		log.Fatalf("unknown format %q (use html or pdf)", *format)
	}
}

func writeOut(path string, data []byte) error {
	if path == "" {
		_, err := fmt.Print(string(data))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
