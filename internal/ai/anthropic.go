package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/anans9/ai-commit/internal/config"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicModel = "claude-3-5-haiku-latest"

// AnthropicProvider implements the Provider interface for Anthropic Claude
type AnthropicProvider struct {
	client      *anthropic.Client
	model       string
	maxTokens   int
	temperature float64
}

var _ Provider = (*AnthropicProvider)(nil)

// NewAnthropicProvider creates a new Anthropic provider
func NewAnthropicProvider(cfg *config.Config, creds *config.Credentials) (*AnthropicProvider, error) {
	if creds.AnthropicKey == "" {
		return nil, fmt.Errorf("Anthropic API key is required (set ANTHROPIC_API_KEY)")
	}

	opts := []option.RequestOption{option.WithAPIKey(creds.AnthropicKey)}
	if creds.AnthropicBaseURL != "" {
		opts = append(opts, option.WithBaseURL(creds.AnthropicBaseURL))
	}
	ac := anthropic.NewClient(opts...)

	model := cfg.AI.Model
	if model == "" {
		model = defaultAnthropicModel
	}

	return &AnthropicProvider{
		client:      &ac,
		model:       model,
		maxTokens:   cfg.AI.MaxTokens,
		temperature: cfg.AI.Temperature,
	}, nil
}

func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

func (p *AnthropicProvider) Generate(ctx context.Context, prompt string) (string, error) {
	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(p.model),
		MaxTokens:   int64(p.maxTokens),
		Temperature: anthropic.Float(p.temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("Anthropic API error: %w", err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	return text.String(), nil
}
