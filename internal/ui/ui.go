package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ErrorPrefix tags every error printed by the command
const ErrorPrefix = "ai-commit error: "

// UI provides methods for user interface operations. Results go to stdout,
// everything else to stderr.
type UI struct {
	stdout       io.Writer
	stderr       io.Writer
	colorEnabled bool
	spinnerOn    bool
	spinner      *spinner.Spinner
	errorColor   *color.Color
}

// NewUI creates a new UI instance. Color and the spinner only take effect
// when stderr is a terminal.
func NewUI(stdout, stderr io.Writer, colorEnabled, spinnerEnabled bool) *UI {
	tty := isTerminal(stderr)

	errorColor := color.New(color.FgRed, color.Bold)
	if colorEnabled && tty {
		errorColor.EnableColor()
	} else {
		errorColor.DisableColor()
	}

	return &UI{
		stdout:       stdout,
		stderr:       stderr,
		colorEnabled: colorEnabled && tty,
		spinnerOn:    spinnerEnabled && tty,
		errorColor:   errorColor,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Print writes msg and a newline to stdout
func (u *UI) Print(msg string) {
	fmt.Fprintln(u.stdout, msg)
}

// Error prints err to stderr behind the error prefix
func (u *UI) Error(err error) {
	u.StopSpinner()
	u.errorColor.Fprint(u.stderr, ErrorPrefix)
	fmt.Fprintln(u.stderr, err.Error())
}

// StartSpinner starts a loading spinner with the given message
func (u *UI) StartSpinner(msg string) {
	if !u.spinnerOn {
		return
	}
	if u.spinner != nil {
		u.spinner.Stop()
	}

	u.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(u.stderr))
	u.spinner.Suffix = " " + msg
	if u.colorEnabled {
		_ = u.spinner.Color("cyan")
	}
	u.spinner.Start()
}

// StopSpinner stops the current spinner
func (u *UI) StopSpinner() {
	if u.spinner != nil {
		u.spinner.Stop()
		u.spinner = nil
	}
}
