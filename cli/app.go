package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/func/prompt/prompt"
	"github.com/func/prompt/terminal"
	"github.com/func/prompt/ui"
)

// Terminal is a ui.Terminal that must be closed after use.
type Terminal interface {
	ui.Terminal
	Close() error
}

// App runs prompts from the command line.
type App struct {
	Logger *Logger

	// Output receives the answers.
	Output io.Writer

	// OpenTerminal opens the terminal prompts are drawn on.
	OpenTerminal func() (Terminal, error)
}

// NewApp returns an App prompting on the controlling terminal. Prompts are
// drawn on stderr so the answers on stdout can be piped.
func NewApp(level LogLevel) *App {
	return &App{
		Logger:       NewLogger(level),
		Output:       os.Stdout,
		OpenTerminal: openTerminal,
	}
}

func openTerminal() (Terminal, error) {
	t := terminal.New(os.Stdin, os.Stderr)
	if err := t.EnterRawMode(); err != nil {
		return nil, err
	}
	return t, nil
}

// UseConfig loads the render configuration in path and makes it the global
// configuration. An empty path keeps the current configuration.
func (a *App) UseConfig(path string) error {
	if path == "" {
		return nil
	}
	a.Logger.Verbosef("Loading config from %s\n", path)
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	ui.SetConfiguration(cfg)
	return nil
}

// run opens the terminal and runs fn on it. It returns the exit code for the
// error returned by fn.
func (a *App) run(fn func(t ui.Terminal) error) int {
	t, err := a.OpenTerminal()
	if err != nil {
		a.Logger.Errorf("Could not open terminal: %v\n", err)
		return 1
	}
	a.Logger.Traceln("Terminal opened")

	switch err := a.runOn(t, fn); {
	case err == nil:
		return 0
	case errors.Is(err, prompt.ErrInterrupted):
		a.Logger.Verboseln("Interrupted")
		return 130
	case errors.Is(err, prompt.ErrCanceled):
		a.Logger.Verboseln("Canceled")
		return 1
	default:
		a.Logger.Errorln(err)
		return 1
	}
}

// runOn runs fn on t and closes t afterwards, also if fn panics. A close
// error is returned if fn succeeded and logged otherwise.
func (a *App) runOn(t Terminal, fn func(t ui.Terminal) error) (err error) {
	defer func() {
		cerr := t.Close()
		switch {
		case cerr == nil:
		case err == nil:
			err = fmt.Errorf("restore terminal: %w", cerr)
		default:
			a.Logger.Errorf("Could not restore terminal: %v\n", cerr)
		}
	}()
	return fn(t)
}

// writeAnswers writes one answer per line, each line prefixed with prefix.
func (a *App) writeAnswers(prefix string, answers []string) error {
	pw := &PrefixWriter{Output: a.Output, Prefix: []byte(prefix)}
	for _, s := range answers {
		if _, err := fmt.Fprintln(pw, s); err != nil {
			return fmt.Errorf("write answer: %w", err)
		}
	}
	return nil
}
