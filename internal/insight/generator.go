// Package insight produces an LLM-personalized narrative for one metric
// store. The adapter is optional: any failure here degrades the run to the
// rule-based report, it never aborts it.
package insight

import (
	"context"
	"errors"
	"os"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// ErrNoContent reports a completion that arrived without usable text in
// either payload shape. Callers distinguish it from transport failures.
var ErrNoContent = errors.New("insight: completion contained no content")

// Request carries everything one generation needs. Temperature is optional;
// nil leaves the model default in place.
type Request struct {
	Profile     string
	Passages    []string
	Model       string
	Temperature *float64
}

// Generator produces a Markdown narrative from a request.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// completionPayload is the tagged union of the two response shapes a
// completion backend may produce: a direct text field, or a list of typed
// content parts. It is resolved to plain text exactly once, here at the
// boundary.
type completionPayload struct {
	text  string
	parts []contentPart
}

type contentPart struct {
	kind string
	text string
}

func (p completionPayload) resolve() (string, error) {
	if t := strings.TrimSpace(p.text); t != "" {
		return t, nil
	}
	var sb strings.Builder
	for _, part := range p.parts {
		if part.kind == "text" || part.kind == "output_text" {
			sb.WriteString(part.text)
		}
	}
	if t := strings.TrimSpace(sb.String()); t != "" {
		return t, nil
	}
	return "", ErrNoContent
}

// AnthropicMessager is the slice of the Anthropic SDK the generator uses.
type AnthropicMessager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// AnthropicGenerator drives the Anthropic Messages API.
type AnthropicGenerator struct {
	messages  AnthropicMessager
	maxTokens int64
}

// NewAnthropicGeneratorFromEnv wires a generator from ANTHROPIC_API_KEY.
func NewAnthropicGeneratorFromEnv() (*AnthropicGenerator, error) {
	apiKey := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	if apiKey == "" {
		return nil, errors.New("ANTHROPIC_API_KEY not configured")
	}
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicGenerator{messages: &c.Messages, maxTokens: 4096}, nil
}

// NewAnthropicGenerator wires a generator around an explicit messager,
// used by tests.
func NewAnthropicGenerator(m AnthropicMessager) *AnthropicGenerator {
	return &AnthropicGenerator{messages: m, maxTokens: 4096}
}

func (g *AnthropicGenerator) Generate(ctx context.Context, req Request) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: g.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(BuildPrompt(req.Profile, req.Passages))),
		},
	}
	if req.Temperature != nil && supportsTemperature(req.Model) {
		params.Temperature = anthropic.Float(*req.Temperature)
	}
	resp, err := g.messages.New(ctx, params)
	if err != nil {
		return "", err
	}
	payload := completionPayload{}
	for _, b := range resp.Content {
		payload.parts = append(payload.parts, contentPart{kind: string(b.Type), text: b.Text})
	}
	return payload.resolve()
}

// supportsTemperature filters out model families whose endpoints reject a
// sampling temperature.
func supportsTemperature(model string) bool {
	return !strings.HasPrefix(strings.ToLower(model), "gpt-5")
}
