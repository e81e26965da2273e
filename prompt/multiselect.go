package prompt

import (
	"strings"

	"github.com/func/prompt/input"
	"github.com/func/prompt/list"
	"github.com/func/prompt/ui"
)

// MultiSelect asks the user to check any number of options.
//
// Up and Down move the cursor, Space toggles the option under it, Right
// checks and Left unchecks all visible options. Typing filters the options.
type MultiSelect[T any] struct {
	Message string
	Options []T

	// Default holds the indices of the options checked initially.
	Default []int

	HelpMessage string

	// PageSize is the number of options shown at a time. Defaults to
	// DefaultPageSize.
	PageSize int

	// Validator is called with the checked options on submit. A non-nil
	// error is shown to the user and the prompt continues.
	Validator func(checked []list.Option[T]) error

	// Config overrides the global render configuration.
	Config *ui.RenderConfig
}

type multiSelectState[T any] struct {
	p        *MultiSelect[T]
	options  []list.Option[T]
	filtered []list.Option[T]
	input    *input.Input
	cursor   int
	checked  map[int]bool
	errMsg   *ui.ErrorMessage
}

func (p *MultiSelect[T]) newState() *multiSelectState[T] {
	s := &multiSelectState[T]{
		p:       p,
		options: list.Options(p.Options),
		input:   input.New(""),
		checked: make(map[int]bool, len(p.Default)),
	}
	for _, i := range p.Default {
		if i >= 0 && i < len(p.Options) {
			s.checked[i] = true
		}
	}
	s.filtered = s.options
	return s
}

func (p *MultiSelect[T]) pageSize() int {
	if p.PageSize > 0 {
		return p.PageSize
	}
	return DefaultPageSize
}

// Prompt runs the prompt on t until the user submits or cancels it. The
// checked options are returned in list order.
func (p *MultiSelect[T]) Prompt(t ui.Terminal) ([]list.Option[T], error) {
	b, err := newBackend(t, p.Config)
	if err != nil {
		return nil, err
	}
	defer func() { _ = b.Close() }()

	s := p.newState()
	for {
		if err := frame(b, func() error { return s.render(b) }); err != nil {
			return nil, err
		}

		k, err := b.ReadKey()
		if err != nil {
			return nil, err
		}

		switch a := s.handleKey(k); a {
		case actionCancel, actionInterrupt:
			return nil, finishCanceled(b, p.Message, a)
		case actionSubmit:
			selected := s.selected()
			if p.Validator != nil {
				if verr := p.Validator(selected); verr != nil {
					s.errMsg = errorMessage(verr)
					continue
				}
			}
			if err := finishAnswered(b, p.Message, answerText(selected)); err != nil {
				return nil, err
			}
			return selected, nil
		}
	}
}

func (s *multiSelectState[T]) render(b *ui.Backend) error {
	if s.errMsg != nil {
		if err := b.RenderErrorMessage(*s.errMsg); err != nil {
			return err
		}
	}
	if err := b.RenderMultiSelectPrompt(s.p.Message, s.input); err != nil {
		return err
	}
	page := list.Paginate(s.filtered, s.cursor, s.p.pageSize())
	if err := ui.RenderOptions(b, page, s.checked); err != nil {
		return err
	}
	if s.p.HelpMessage != "" {
		if err := b.RenderHelpMessage(s.p.HelpMessage); err != nil {
			return err
		}
	}
	return nil
}

func (s *multiSelectState[T]) handleKey(k ui.Key) action {
	if a := commonAction(k); a != actionNone {
		return a
	}
	n := len(s.filtered)
	switch {
	case k.Code == ui.KeyUp:
		if n > 0 {
			s.cursor = (s.cursor - 1 + n) % n
		}
	case k.Code == ui.KeyDown:
		if n > 0 {
			s.cursor = (s.cursor + 1) % n
		}
	case k.Code == ui.KeyPageUp:
		s.cursor = max(s.cursor-s.p.pageSize(), 0)
	case k.Code == ui.KeyPageDown:
		s.cursor = max(min(s.cursor+s.p.pageSize(), n-1), 0)
	case k.IsChar(' '):
		if n > 0 {
			idx := s.filtered[s.cursor].Index
			s.checked[idx] = !s.checked[idx]
		}
	case k.Code == ui.KeyRight && s.input.Cursor() == s.input.Length():
		for _, o := range s.filtered {
			s.checked[o.Index] = true
		}
	case k.Code == ui.KeyLeft && s.input.Cursor() == 0:
		for _, o := range s.filtered {
			delete(s.checked, o.Index)
		}
	default:
		if s.input.HandleKey(k) {
			s.filtered = list.Filter(s.options, s.input.Content())
			s.cursor = 0
		}
	}
	return actionNone
}

func (s *multiSelectState[T]) selected() []list.Option[T] {
	var out []list.Option[T]
	for _, o := range s.options {
		if s.checked[o.Index] {
			out = append(out, o)
		}
	}
	return out
}

func answerText[T any](selected []list.Option[T]) string {
	parts := make([]string, len(selected))
	for i, o := range selected {
		parts[i] = o.String()
	}
	return strings.Join(parts, ", ")
}
