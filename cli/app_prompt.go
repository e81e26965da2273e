package cli

import (
	"github.com/func/prompt/list"
	"github.com/func/prompt/prompt"
	"github.com/func/prompt/ui"
)

// MultiSelectOpts are the options for a multi select prompt.
type MultiSelectOpts struct {
	Message     string
	Options     []string
	Default     []int
	PageSize    int
	HelpText    string
	IndexPrefix string

	// Min is the minimum number of options that must be checked.
	Min int

	// OutputPrefix is written ahead of every answer line.
	OutputPrefix string
}

// MultiSelect asks the user to check options and writes the checked options
// to the output, one per line.
func (a *App) MultiSelect(opts MultiSelectOpts) int {
	p := &prompt.MultiSelect[string]{
		Message:     opts.Message,
		Options:     opts.Options,
		Default:     opts.Default,
		HelpMessage: opts.HelpText,
		PageSize:    opts.PageSize,
	}
	if opts.IndexPrefix != "" {
		mode, err := ui.ParseIndexPrefix(opts.IndexPrefix)
		if err != nil {
			a.Logger.Errorln(err)
			return 1
		}
		cfg := ui.Configuration()
		cfg.OptionIndexPrefix = mode
		p.Config = &cfg
	}
	if opts.Min > 0 {
		p.Validator = prompt.MinSelected[string](opts.Min)
	}

	a.Logger.Tracef("Prompting with %d options\n", len(opts.Options))

	var checked []list.Option[string]
	code := a.run(func(t ui.Terminal) error {
		var err error
		checked, err = p.Prompt(t)
		return err
	})
	if code != 0 {
		return code
	}

	answers := make([]string, len(checked))
	for i, o := range checked {
		answers[i] = o.Value
	}
	if err := a.writeAnswers(opts.OutputPrefix, answers); err != nil {
		a.Logger.Errorln(err)
		return 1
	}
	a.Logger.Infof("Checked %d of %d options\n", len(answers), len(opts.Options))
	return 0
}

// TextOpts are the options for a text prompt.
type TextOpts struct {
	Message     string
	Default     string
	Placeholder string
	HelpText    string
	Required    bool

	// OutputPrefix is written ahead of the answer.
	OutputPrefix string
}

// Text asks the user for a line of text and writes it to the output.
func (a *App) Text(opts TextOpts) int {
	p := &prompt.Text{
		Message:     opts.Message,
		Default:     opts.Default,
		Placeholder: opts.Placeholder,
		HelpMessage: opts.HelpText,
	}
	if opts.Required {
		p.Validator = prompt.Required
	}

	var answer string
	code := a.run(func(t ui.Terminal) error {
		var err error
		answer, err = p.Prompt(t)
		return err
	})
	if code != 0 {
		return code
	}

	if err := a.writeAnswers(opts.OutputPrefix, []string{answer}); err != nil {
		a.Logger.Errorln(err)
		return 1
	}
	a.Logger.Infoln("Answered", opts.Message)
	return 0
}
