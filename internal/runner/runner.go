package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
)

// DefaultMaxOutput is the per-stream capture ceiling
const DefaultMaxOutput = 10 * 1024 * 1024

// Result is the outcome of a process that was started and ran to completion
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner runs an external program synchronously. It returns an error only
// when the program could not be run to completion; a non-zero exit is
// reported through Result.ExitCode.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (*Result, error)
}

// LimitError is returned when a stream exceeds the capture ceiling
type LimitError struct {
	Limit int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("output exceeded %d bytes", e.Limit)
}

// Exec runs programs on the local machine
type Exec struct {
	log       *slog.Logger
	maxOutput int
}

var _ Runner = (*Exec)(nil)

// New creates a local runner capturing at most maxOutput bytes per stream
func New(log *slog.Logger, maxOutput int) *Exec {
	if maxOutput <= 0 {
		maxOutput = DefaultMaxOutput
	}
	return &Exec{log: log, maxOutput: maxOutput}
}

func (e *Exec) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	e.log.Info("running command", slog.String("name", name), slog.Int("args", len(args)))

	stdout := &cappedBuffer{max: e.maxOutput}
	stderr := &cappedBuffer{max: e.maxOutput}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, err
		}
		result.ExitCode = exitErr.ExitCode()
	}

	if stdout.overflow || stderr.overflow {
		return nil, &LimitError{Limit: e.maxOutput}
	}

	e.log.Info("command finished", slog.String("name", name), slog.Int("exit_code", result.ExitCode))
	return result, nil
}

// cappedBuffer keeps the first max bytes written and drains the rest so the
// child never blocks on a full pipe
type cappedBuffer struct {
	buf      bytes.Buffer
	max      int
	overflow bool
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	if room := b.max - b.buf.Len(); room < len(p) {
		b.overflow = true
		if room > 0 {
			b.buf.Write(p[:room])
		}
		return len(p), nil
	}
	return b.buf.Write(p)
}

func (b *cappedBuffer) String() string {
	return b.buf.String()
}
