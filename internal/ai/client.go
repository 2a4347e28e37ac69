package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anans9/ai-commit/internal/config"
	"github.com/anans9/ai-commit/internal/runner"
)

// ErrEmptyResponse is returned when a provider produced only whitespace
var ErrEmptyResponse = errors.New("empty response")

// Provider defines the interface for AI providers
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// Client generates commit messages with the configured provider
type Client struct {
	log      *slog.Logger
	provider Provider
}

// NewClient creates a new AI client with the specified configuration
func NewClient(log *slog.Logger, cfg *config.Config, creds *config.Credentials, r runner.Runner) (*Client, error) {
	var provider Provider

	switch cfg.AI.Provider {
	case config.ProviderCLI:
		provider = NewCLIProvider(r, cfg.AI.Command, cfg.AI.Args...)
	case config.ProviderOpenAI:
		p, err := NewOpenAIProvider(cfg, creds)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI provider: %w", err)
		}
		provider = p
	case config.ProviderAnthropic:
		p, err := NewAnthropicProvider(cfg, creds)
		if err != nil {
			return nil, fmt.Errorf("failed to create Anthropic provider: %w", err)
		}
		provider = p
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", cfg.AI.Provider)
	}

	return New(log, provider), nil
}

// New wraps an existing provider
func New(log *slog.Logger, provider Provider) *Client {
	return &Client{log: log, provider: provider}
}

// GenerateCommitMessage sends the prompt to the provider and returns the
// trimmed reply. The reply is not otherwise inspected.
func (c *Client) GenerateCommitMessage(ctx context.Context, prompt string) (string, error) {
	c.log.Info("generating commit message", slog.String("provider", c.provider.Name()), slog.Int("prompt_bytes", len(prompt)))

	message, err := c.provider.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("%s returned an %w", c.provider.Name(), ErrEmptyResponse)
	}

	return message, nil
}

// GetProviderName returns the name of the current provider
func (c *Client) GetProviderName() string {
	return c.provider.Name()
}
