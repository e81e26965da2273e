// Package prompt implements interactive prompts on top of the ui Backend.
//
// A prompt renders a frame, blocks for a key, updates its state and renders
// again until it is answered or canceled. The final frame replaces the
// working prompt with the answer or a canceled indicator.
package prompt

import (
	"errors"
	"fmt"

	"github.com/func/prompt/ui"
)

var (
	// ErrCanceled is returned when the user cancels a prompt with Esc.
	ErrCanceled = errors.New("prompt canceled")

	// ErrInterrupted is returned when the user presses Ctrl-C.
	ErrInterrupted = errors.New("prompt interrupted")
)

// DefaultPageSize is the number of options shown at a time.
const DefaultPageSize = 7

// action is the outcome of handling a key.
type action int

const (
	actionNone action = iota
	actionSubmit
	actionCancel
	actionInterrupt
)

func commonAction(k ui.Key) action {
	switch {
	case k.Code == ui.KeyEnter:
		return actionSubmit
	case k.Code == ui.KeyEsc:
		return actionCancel
	case k.IsCtrl('c'):
		return actionInterrupt
	}
	return actionNone
}

func configOrGlobal(c *ui.RenderConfig) ui.RenderConfig {
	if c != nil {
		return *c
	}
	return ui.Configuration()
}

// frame renders a single frame between FrameSetup and FrameFinish.
func frame(b *ui.Backend, render func() error) error {
	if err := b.FrameSetup(); err != nil {
		return err
	}
	if err := render(); err != nil {
		return err
	}
	return b.FrameFinish()
}

// finishCanceled renders the final canceled frame and returns the error matching a.
func finishCanceled(b *ui.Backend, message string, a action) error {
	err := frame(b, func() error { return b.RenderCanceledPrompt(message) })
	if err != nil {
		return err
	}
	if a == actionInterrupt {
		return ErrInterrupted
	}
	return ErrCanceled
}

func finishAnswered(b *ui.Backend, message, answer string) error {
	return frame(b, func() error { return b.RenderPromptWithAnswer(message, answer) })
}

func newBackend(t ui.Terminal, c *ui.RenderConfig) (*ui.Backend, error) {
	b, err := ui.NewBackend(t, configOrGlobal(c))
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}
	return b, nil
}

// errorMessage converts a validation error to the message shown to the user.
// Errors without text show the configured default message.
func errorMessage(err error) *ui.ErrorMessage {
	msg := ui.DefaultErrorMessage()
	if text := err.Error(); text != "" {
		msg = ui.CustomErrorMessage(text)
	}
	return &msg
}
