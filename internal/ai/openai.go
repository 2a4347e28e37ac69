package ai

import (
	"context"
	"fmt"

	"github.com/anans9/ai-commit/internal/config"
	"github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIProvider implements the Provider interface for OpenAI
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
}

var _ Provider = (*OpenAIProvider)(nil)

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(cfg *config.Config, creds *config.Credentials) (*OpenAIProvider, error) {
	if creds.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required (set OPENAI_API_KEY)")
	}

	clientConfig := openai.DefaultConfig(creds.OpenAIKey)
	if creds.OpenAIBaseURL != "" {
		clientConfig.BaseURL = creds.OpenAIBaseURL
	}

	model := cfg.AI.Model
	if model == "" {
		model = defaultOpenAIModel
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       model,
		maxTokens:   cfg.AI.MaxTokens,
		temperature: cfg.AI.Temperature,
	}, nil
}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: float32(p.temperature),
		MaxTokens:   p.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}
