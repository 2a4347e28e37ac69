package cmd

import (
	"context"
	"fmt"

	"github.com/anans9/ai-commit/internal/ai"
	"github.com/anans9/ai-commit/internal/git"
	"github.com/anans9/ai-commit/internal/options"
	"github.com/anans9/ai-commit/internal/prompt"
)

// commit runs parse, diff, prompt and generate in order. The first error
// ends the run.
func (a *App) commit(ctx context.Context, args []string) error {
	opts, err := options.Parse(args)
	if err != nil {
		return err
	}

	if opts.Help {
		a.ui.Print(usage)
		return nil
	}

	if a.Config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Config.Timeout)
		defer cancel()
	}

	aiClient, err := ai.NewClient(a.Log, a.Config, a.Credentials, a.Runner)
	if err != nil {
		return err
	}

	gitClient := git.NewClient(a.Log, a.Runner, a.Config.Git.Binary)
	diff, err := gitClient.StagedDiff(ctx)
	if err != nil {
		return err
	}

	p := prompt.Commit(diff, opts)

	a.ui.StartSpinner(fmt.Sprintf("Generating commit message using %s...", aiClient.GetProviderName()))
	message, err := aiClient.GenerateCommitMessage(ctx, p)
	a.ui.StopSpinner()
	if err != nil {
		return err
	}

	a.ui.Print(message)
	return nil
}
