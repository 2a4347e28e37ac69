package git

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anans9/ai-commit/internal/runner"
)

// ErrNoStagedChanges is returned when the index matches HEAD
var ErrNoStagedChanges = errors.New("No staged changes found. Please stage files first.")

// Client runs the git binary for repository queries
type Client struct {
	log    *slog.Logger
	runner runner.Runner
	binary string
}

// NewClient creates a new Git client. An empty binary means "git".
func NewClient(log *slog.Logger, r runner.Runner, binary string) *Client {
	if binary == "" {
		binary = "git"
	}
	return &Client{
		log:    log,
		runner: r,
		binary: binary,
	}
}

// StagedDiff returns the unified diff of the index against HEAD, trimmed of
// surrounding whitespace
func (c *Client) StagedDiff(ctx context.Context) (string, error) {
	cmdline := c.binary + " diff --cached"

	result, err := c.runner.Run(ctx, c.binary, "diff", "--cached")
	if err != nil {
		return "", fmt.Errorf("Failed to run %s: %w", cmdline, err)
	}

	if result.ExitCode != 0 {
		if msg := strings.TrimSpace(result.Stderr); msg != "" {
			return "", errors.New(msg)
		}
		return "", errors.New(cmdline + " failed")
	}

	diff := strings.TrimSpace(result.Stdout)
	if diff == "" {
		return "", ErrNoStagedChanges
	}

	c.log.Info("read staged diff", slog.Int("bytes", len(diff)))
	return diff, nil
}
