package insight

import (
	"context"
	"fmt"
	"log"

	"github.com/zinojeng/inbody/internal/metric"
)

// Client runs the model fallback chain: candidates are tried in order, the
// first success wins, and exhaustion reports the last failure so the caller
// can degrade to the rule-based report.
type Client struct {
	gen         Generator
	models      []string
	temperature *float64
	logger      *log.Logger
}

// NewClient builds a fallback client. Duplicate model ids are collapsed,
// keeping first occurrence order.
func NewClient(gen Generator, models []string, temperature *float64, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default()
	}
	seen := make(map[string]bool, len(models))
	var chain []string
	for _, m := range models {
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		chain = append(chain, m)
	}
	return &Client{gen: gen, models: chain, temperature: temperature, logger: logger}
}

// Narrative generates the personalized report text for a store. The prompt
// inputs are built once and reused across the chain.
func (c *Client) Narrative(ctx context.Context, store *metric.Store, sections []string) (string, error) {
	if len(c.models) == 0 {
		return "", fmt.Errorf("insight: no candidate models configured")
	}
	req := Request{
		Profile:     BuildMetricProfile(store),
		Passages:    SelectPassages(store, sections, 3),
		Temperature: c.temperature,
	}
	var lastErr error
	for i, model := range c.models {
		req.Model = model
		text, err := c.gen.Generate(ctx, req)
		if err != nil {
			c.logger.Printf("insight: model %q failed: %v", model, err)
			lastErr = err
			continue
		}
		if i > 0 {
			c.logger.Printf("insight: primary model %q failed, used %q", c.models[0], model)
		}
		return text, nil
	}
	return "", fmt.Errorf("insight: all models failed: %w", lastErr)
}
