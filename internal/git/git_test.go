package git_test

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"
	"testing"

	"github.com/anans9/ai-commit/internal/git"
	"github.com/anans9/ai-commit/internal/runner"
	"github.com/anans9/ai-commit/internal/runner/runnertest"
	"github.com/matryer/is"
)

const sampleDiff = `diff --git a/x b/x
index e69de29..4b825dc 100644
--- a/x
+++ b/x
@@ -0,0 +1 @@
+hello`

func newClient(r runner.Runner) *git.Client {
	return git.NewClient(slog.New(slog.DiscardHandler), r, "")
}

func TestStagedDiff(t *testing.T) {
	is := is.New(t)
	fake := runnertest.New().Stdout("git", "\n"+sampleDiff+"\n\n")

	diff, err := newClient(fake).StagedDiff(context.Background())
	is.NoErr(err)
	is.Equal(diff, sampleDiff)

	calls := fake.Called("git")
	is.Equal(len(calls), 1)
	is.Equal(calls[0].Args, []string{"diff", "--cached"})
}

func TestStagedDiffEmpty(t *testing.T) {
	for _, stdout := range []string{"", "   ", "\n\t\n"} {
		is := is.New(t)
		fake := runnertest.New().Stdout("git", stdout)

		_, err := newClient(fake).StagedDiff(context.Background())
		is.True(errors.Is(err, git.ErrNoStagedChanges))
		is.True(strings.Contains(err.Error(), "staged changes"))
	}
}

func TestStagedDiffNonZeroExit(t *testing.T) {
	is := is.New(t)
	fake := runnertest.New().Exit("git", 128, "fatal: not a git repository\n")

	_, err := newClient(fake).StagedDiff(context.Background())
	is.True(err != nil)
	is.Equal(err.Error(), "fatal: not a git repository")
}

func TestStagedDiffNonZeroExitWithoutStderr(t *testing.T) {
	is := is.New(t)
	fake := runnertest.New().Exit("git", 1, "  \n")

	_, err := newClient(fake).StagedDiff(context.Background())
	is.True(err != nil)
	is.Equal(err.Error(), "git diff --cached failed")
}

func TestStagedDiffSpawnFailure(t *testing.T) {
	is := is.New(t)
	fake := runnertest.New().Fail("git", exec.ErrNotFound)

	_, err := newClient(fake).StagedDiff(context.Background())
	is.True(errors.Is(err, exec.ErrNotFound))
	is.Equal(err.Error(), "Failed to run git diff --cached: executable file not found in $PATH")
}

func TestStagedDiffCustomBinary(t *testing.T) {
	is := is.New(t)
	fake := runnertest.New().Exit("/opt/git/bin/git", 2, "")

	_, err := git.NewClient(slog.New(slog.DiscardHandler), fake, "/opt/git/bin/git").StagedDiff(context.Background())
	is.True(err != nil)
	is.Equal(err.Error(), "/opt/git/bin/git diff --cached failed")
	is.Equal(len(fake.Called("/opt/git/bin/git")), 1)
}

func TestStagedDiffOutputLimit(t *testing.T) {
	is := is.New(t)
	fake := runnertest.New().Fail("git", &runner.LimitError{Limit: 1024})

	_, err := newClient(fake).StagedDiff(context.Background())
	is.True(err != nil)
	is.Equal(err.Error(), "Failed to run git diff --cached: output exceeded 1024 bytes")
}
