package prompt

import (
	"github.com/func/prompt/input"
	"github.com/func/prompt/ui"
)

// Text asks the user for a line of text.
type Text struct {
	Message string

	// Default is returned when the user submits an empty input.
	Default string

	Placeholder string
	HelpMessage string

	// Validator is called with the answer on submit. A non-nil error is
	// shown to the user and the prompt continues.
	Validator func(answer string) error

	// Config overrides the global render configuration.
	Config *ui.RenderConfig
}

// Prompt runs the prompt on t until the user submits or cancels it.
func (p *Text) Prompt(t ui.Terminal) (string, error) {
	b, err := newBackend(t, p.Config)
	if err != nil {
		return "", err
	}
	defer func() { _ = b.Close() }()

	in := input.New("").WithPlaceholder(p.Placeholder)
	var errMsg *ui.ErrorMessage

	render := func() error {
		if errMsg != nil {
			if err := b.RenderErrorMessage(*errMsg); err != nil {
				return err
			}
		}
		if err := b.RenderTextPrompt(p.Message, p.Default, in); err != nil {
			return err
		}
		if p.HelpMessage != "" {
			return b.RenderHelpMessage(p.HelpMessage)
		}
		return nil
	}

	for {
		if err := frame(b, render); err != nil {
			return "", err
		}

		k, err := b.ReadKey()
		if err != nil {
			return "", err
		}

		switch a := commonAction(k); a {
		case actionCancel, actionInterrupt:
			return "", finishCanceled(b, p.Message, a)
		case actionSubmit:
			answer := in.Content()
			if answer == "" {
				answer = p.Default
			}
			if p.Validator != nil {
				if verr := p.Validator(answer); verr != nil {
					errMsg = errorMessage(verr)
					continue
				}
			}
			if err := finishAnswered(b, p.Message, answer); err != nil {
				return "", err
			}
			return answer, nil
		default:
			in.HandleKey(k)
		}
	}
}
