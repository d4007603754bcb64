// Package config loads the optional inbody.yaml settings file and the
// environment defaults. The result is passed explicitly into constructors;
// nothing reads configuration ambiently.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zinojeng/inbody/internal/analysis"
	"github.com/zinojeng/inbody/internal/ingest"
	"github.com/zinojeng/inbody/internal/report"
)

const (
	// DefaultModel is used when neither the file nor INBODY_MODEL names one.
	DefaultModel = "claude-sonnet-4-20250514"
	// DefaultFallbackModel backs the chain when the primary fails.
	DefaultFallbackModel = "claude-3-5-haiku-20241022"
)

// Config is the full runtime configuration.
type Config struct {
	Model          string                `yaml:"model"`
	FallbackModels []string              `yaml:"fallback_models"`
	Temperature    *float64              `yaml:"temperature"`
	Encodings      []string              `yaml:"encodings"`
	CitationPolicy report.CitationPolicy `yaml:"citation_policy"`
	ReferencePath  string                `yaml:"reference_path"`
	Thresholds     analysis.Thresholds   `yaml:"thresholds"`
}

// Load reads the file when path is non-empty (a missing explicit file is an
// error), then fills the gaps from the environment and the defaults.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration with no file involved.
func Default() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Model == "" {
		c.Model = strings.TrimSpace(os.Getenv("INBODY_MODEL"))
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if len(c.FallbackModels) == 0 {
		if env := strings.TrimSpace(os.Getenv("INBODY_FALLBACK_MODEL")); env != "" {
			c.FallbackModels = []string{env}
		} else {
			c.FallbackModels = []string{DefaultFallbackModel}
		}
	}
	if len(c.Encodings) == 0 {
		c.Encodings = append([]string(nil), ingest.DefaultEncodings...)
	}
	if c.CitationPolicy == "" {
		c.CitationPolicy = report.CitationStrip
	}
}

func (c *Config) validate() error {
	switch c.CitationPolicy {
	case report.CitationStrip, report.CitationKeep:
	default:
		return fmt.Errorf("config: unknown citation_policy %q", c.CitationPolicy)
	}
	for _, enc := range c.Encodings {
		switch strings.ToLower(enc) {
		case "utf-8-sig", "utf-8", "utf8", "big5", "cp950":
		default:
			return fmt.Errorf("config: unsupported encoding %q", enc)
		}
	}
	return nil
}

// ModelChain is the ordered candidate list for the insight fallback chain.
func (c Config) ModelChain() []string {
	return append([]string{c.Model}, c.FallbackModels...)
}
