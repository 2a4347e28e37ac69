package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anans9/ai-commit/internal/runner"
)

// CLIProvider runs a local model command with the prompt as its final
// argument, e.g. `claude -p <prompt>`
type CLIProvider struct {
	runner  runner.Runner
	command string
	args    []string
}

var _ Provider = (*CLIProvider)(nil)

// NewCLIProvider creates a provider for command, placing args before the prompt
func NewCLIProvider(r runner.Runner, command string, args ...string) *CLIProvider {
	return &CLIProvider{
		runner:  r,
		command: command,
		args:    args,
	}
}

func (p *CLIProvider) Name() string {
	return p.command
}

func (p *CLIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	args := make([]string, 0, len(p.args)+1)
	args = append(args, p.args...)
	args = append(args, prompt)

	result, err := p.runner.Run(ctx, p.command, args...)
	if err != nil {
		return "", fmt.Errorf("Failed to run %s CLI: %w", p.command, err)
	}

	if result.ExitCode != 0 {
		if msg := strings.TrimSpace(result.Stderr); msg != "" {
			return "", errors.New(msg)
		}
		return "", fmt.Errorf("%s CLI failed", p.command)
	}

	return result.Stdout, nil
}
