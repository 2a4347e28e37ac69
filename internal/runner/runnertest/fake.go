// Package runnertest provides a scripted runner.Runner for tests.
package runnertest

import (
	"context"

	"github.com/anans9/ai-commit/internal/runner"
)

// Call records one invocation
type Call struct {
	Name string
	Args []string
}

// Response is what the fake answers for a program name
type Response struct {
	Result *runner.Result
	Err    error
}

// Fake answers each program by name and records every call
type Fake struct {
	Responses map[string]Response
	Calls     []Call
}

var _ runner.Runner = (*Fake)(nil)

// New creates a fake with no scripted programs
func New() *Fake {
	return &Fake{Responses: map[string]Response{}}
}

// Stdout scripts a successful run printing stdout
func (f *Fake) Stdout(name, stdout string) *Fake {
	f.Responses[name] = Response{Result: &runner.Result{Stdout: stdout}}
	return f
}

// Exit scripts a run ending with the given status and stderr
func (f *Fake) Exit(name string, code int, stderr string) *Fake {
	f.Responses[name] = Response{Result: &runner.Result{ExitCode: code, Stderr: stderr}}
	return f
}

// Fail scripts a run that cannot be started
func (f *Fake) Fail(name string, err error) *Fake {
	f.Responses[name] = Response{Err: err}
	return f
}

// Called reports the calls made to the named program
func (f *Fake) Called(name string) []Call {
	var calls []Call
	for _, c := range f.Calls {
		if c.Name == name {
			calls = append(calls, c)
		}
	}
	return calls
}

func (f *Fake) Run(ctx context.Context, name string, args ...string) (*runner.Result, error) {
	f.Calls = append(f.Calls, Call{Name: name, Args: append([]string(nil), args...)})
	resp, ok := f.Responses[name]
	if !ok {
		return nil, &notScripted{name}
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	return resp.Result, nil
}

type notScripted struct {
	name string
}

func (e *notScripted) Error() string {
	return "exec: \"" + e.name + "\": executable file not found in $PATH"
}
