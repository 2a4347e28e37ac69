package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/anans9/ai-commit/internal/config"
	"github.com/anans9/ai-commit/internal/options"
	"github.com/anans9/ai-commit/internal/runner"
	"github.com/anans9/ai-commit/internal/ui"
	"github.com/matthewmueller/logs"
	"github.com/spf13/cobra"
)

const usage = `ai-commit-smart

Usage:
  ai-commit [--type <type>] [--lang <zh|en>]

Options:
  --type   Commit type, one of: feat, fix, chore, docs, style, refactor, perf, test, build, ci, revert
  --lang   Output language: zh or en (default: en)
  -h, --help  Show help

Examples:
  ai-commit
  ai-commit --type feat
  ai-commit --type fix --lang zh`

// App holds everything one invocation needs
type App struct {
	Log         *slog.Logger
	Config      *config.Config
	Credentials *config.Credentials
	Runner      runner.Runner
	Stdout      io.Writer
	Stderr      io.Writer

	ui *ui.UI
}

// newRootCmd builds the ai-commit command. Flag parsing is left to
// options.Parse so the accepted grammar stays exactly
// [--type <type>] [--lang <zh|en>] [-h|--help].
func newRootCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ai-commit",
		Short: "Generate a conventional commit message for the staged changes",
		Long: `ai-commit reads the staged diff (git diff --cached), asks a language model
for exactly one conventional commit message and prints it to stdout.

The model is the claude CLI by default. Other commands and hosted providers
can be selected in ~/.ai-commit.yaml or with AI_COMMIT_* environment variables.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && args[0] == argsTerminator {
				args = args[1:]
			}
			return app.commit(cmd.Context(), args)
		},
	}
}

// argsTerminator is placed before the user's arguments so cobra always
// resolves to the root command and never to its hidden __complete command.
const argsTerminator = "--"

// Run executes the command line and returns the process exit status
func (a *App) Run(ctx context.Context, args []string) int {
	a.ui = ui.NewUI(a.Stdout, a.Stderr, a.Config.UI.Color, a.Config.UI.Spinner)

	root := newRootCmd(a)
	root.SetArgs(append([]string{argsTerminator}, args...))
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		a.ui.Error(err)
		return 1
	}
	return 0
}

// Execute runs ai-commit against the real environment and returns the exit status
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return execute(ctx, os.Args[1:], os.Stdout, os.Stderr, newApp)
}

// execute loads the App and runs args with it. Help is still printed when
// loading fails, since it needs neither configuration nor credentials.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer, load func() (*App, error)) int {
	app, err := load()
	if err != nil {
		u := ui.NewUI(stdout, stderr, true, false)
		if opts, perr := options.Parse(args); perr == nil && opts.Help {
			u.Print(usage)
			return 0
		}
		u.Error(err)
		return 1
	}

	app.Stdout = stdout
	app.Stderr = stderr
	return app.Run(ctx, args)
}

// newApp reads configuration and ENV variables
func newApp() (*App, error) {
	v, err := config.NewViper(os.Getenv("AI_COMMIT_CONFIG"))
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	creds, err := config.LoadCredentials()
	if err != nil {
		return nil, err
	}

	log := newLogger(cfg.Verbose)
	if used := v.ConfigFileUsed(); used != "" {
		log.Info("using config file", slog.String("path", used))
	}

	return &App{
		Log:         log,
		Config:      cfg,
		Credentials: creds,
		Runner:      runner.New(log, cfg.MaxOutputBytes),
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	}, nil
}

func newLogger(verbose bool) *slog.Logger {
	if verbose {
		return logs.Default()
	}
	return slog.New(slog.DiscardHandler)
}
