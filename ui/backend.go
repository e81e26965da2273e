package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/func/prompt/list"
	"github.com/mitchellh/go-wordwrap"
)

// FallbackSize is assumed when the terminal size cannot be determined. An
// oversized width only makes wrap tracking less accurate; content is still
// rendered in full.
var FallbackSize = Size{Width: 1000, Height: 1000}

const noCursor = -1

// A Backend renders prompts frame by frame.
//
// Every frame starts with FrameSetup, which erases the previous frame, and
// ends with FrameFinish, which places the terminal cursor at the input cursor
// of the rendered prompt. In between, Render* methods write the frame.
//
// A Backend is not safe for concurrent use.
type Backend struct {
	term   Terminal
	size   Size
	config RenderConfig

	// currentPosition is where the terminal cursor is, endPosition is where
	// the frame ends. They differ only when the cursor was moved to the
	// input cursor.
	currentPosition Position
	endPosition     Position

	// cursorOffset is the rune offset of the input cursor in the frame
	// text, or noCursor.
	cursorOffset   int
	cursorPosition *Position

	showCursor bool
}

// NewBackend creates a backend drawing to term with the given configuration
// and hides the terminal cursor. The caller must Close the backend to restore
// the cursor.
func NewBackend(term Terminal, config RenderConfig) (*Backend, error) {
	size, err := term.Size()
	if err != nil || size.Width < 1 {
		size = FallbackSize
	}
	b := &Backend{
		term:         term,
		size:         size,
		config:       config,
		cursorOffset: noCursor,
	}
	if err := term.CursorHide(); err != nil {
		return nil, fmt.Errorf("hide cursor: %w", err)
	}
	return b, nil
}

// Config returns the configuration the backend renders with.
func (b *Backend) Config() RenderConfig {
	return b.config
}

// EndPosition returns the position following the last frame's content.
func (b *Backend) EndPosition() Position {
	return b.endPosition
}

// ReadKey blocks until the next key press.
func (b *Backend) ReadKey() (Key, error) {
	return b.term.ReadKey()
}

// FrameSetup starts a new frame by erasing the previous one.
func (b *Backend) FrameSetup() error {
	if err := b.term.CursorHide(); err != nil {
		return err
	}
	if err := b.term.Flush(); err != nil {
		return err
	}
	return b.resetPrompt()
}

// FrameFinish completes the frame: the terminal cursor is moved to the input
// cursor, if one was rendered, and shown or hidden accordingly.
func (b *Backend) FrameFinish() error {
	b.updatePositionInfo()

	if pos := b.cursorPosition; pos != nil {
		if err := b.term.CursorUp(b.currentPosition.Row - pos.Row); err != nil {
			return err
		}
		if err := b.term.CursorMoveToColumn(pos.Col); err != nil {
			return err
		}
		b.currentPosition = *pos
	}

	if err := b.updateCursorStatus(); err != nil {
		return err
	}
	return b.term.Flush()
}

// Close moves the terminal cursor below the last frame and shows it. Every
// step is attempted even if an earlier one fails; the first error is
// returned.
func (b *Backend) Close() error {
	err := b.moveCursorToEndPosition()
	if showErr := b.term.CursorShow(); err == nil {
		err = showErr
	}
	if flushErr := b.term.Flush(); err == nil {
		err = flushErr
	}
	return err
}

func (b *Backend) updatePositionInfo() {
	text := b.term.InMemoryContent()
	end, cursor, ok := TrackPosition(text, b.size.Width, b.cursorOffset)
	if ok {
		b.cursorPosition = &cursor
	}
	b.currentPosition = end
	b.endPosition = end
}

func (b *Backend) moveCursorToEndPosition() error {
	if b.currentPosition.Row == b.endPosition.Row {
		return nil
	}
	if err := b.term.CursorDown(b.endPosition.Row - b.currentPosition.Row); err != nil {
		return err
	}
	if err := b.term.CursorMoveToColumn(b.endPosition.Col); err != nil {
		return err
	}
	b.currentPosition = b.endPosition
	return nil
}

func (b *Backend) resetPrompt() error {
	if err := b.moveCursorToEndPosition(); err != nil {
		return err
	}
	if err := b.term.CursorMoveToColumn(0); err != nil {
		return err
	}
	for i := 0; i < b.endPosition.Row; i++ {
		if err := b.term.CursorUp(1); err != nil {
			return err
		}
		if err := b.term.ClearCurrentLine(); err != nil {
			return err
		}
	}

	b.term.ClearInMemoryContent()

	b.currentPosition = Position{}
	b.endPosition = Position{}
	b.cursorOffset = noCursor
	b.cursorPosition = nil

	// Renders that show an input turn the cursor back on.
	b.showCursor = false
	return b.term.CursorHide()
}

func (b *Backend) updateCursorStatus() error {
	if b.showCursor {
		return b.term.CursorShow()
	}
	return b.term.CursorHide()
}

// markCursor records the input cursor at offset runes past the frame text
// written so far.
func (b *Backend) markCursor(offset int) {
	b.cursorOffset = utf8.RuneCountInString(b.term.InMemoryContent()) + offset
}

func (b *Backend) newLine() error {
	return b.term.Write("\r\n")
}

func (b *Backend) printPromptWithPrefix(prefix Styled, prompt string) error {
	if err := b.term.WriteStyled(prefix); err != nil {
		return err
	}
	if err := b.term.Write(" "); err != nil {
		return err
	}
	return b.term.WriteStyled(NewStyled(prompt).WithStyles(b.config.Prompt))
}

func (b *Backend) printPrompt(prompt string) error {
	return b.printPromptWithPrefix(b.config.PromptPrefix, prompt)
}

func (b *Backend) printDefaultValue(value string) error {
	return b.term.WriteStyled(NewStyled("(" + value + ")").WithStyles(b.config.DefaultValue))
}

func (b *Backend) printInput(in InputView) error {
	if err := b.term.Write(" "); err != nil {
		return err
	}

	b.markCursor(utf8.RuneCountInString(in.PreCursor()))
	b.showCursor = true

	if in.Length() == 0 {
		if p := in.Placeholder(); p != "" {
			if err := b.term.WriteStyled(NewStyled(p).WithStyles(b.config.Placeholder)); err != nil {
				return err
			}
		}
	} else {
		if err := b.term.WriteStyled(NewStyled(in.Content()).WithStyles(b.config.TextInput)); err != nil {
			return err
		}
	}

	// With the cursor at the end of the input there is no glyph to place it
	// on. The space gives it one instead of the line break that follows.
	if in.Cursor() == in.Length() {
		return b.term.Write(" ")
	}
	return nil
}

func (b *Backend) printPromptWithInput(prompt, defaultValue string, in InputView) error {
	if err := b.printPrompt(prompt); err != nil {
		return err
	}
	if defaultValue != "" {
		if err := b.term.Write(" "); err != nil {
			return err
		}
		if err := b.printDefaultValue(defaultValue); err != nil {
			return err
		}
	}
	if err := b.printInput(in); err != nil {
		return err
	}
	return b.newLine()
}

// RenderTextPrompt renders the prompt line of a text prompt: the prompt, the
// default value in parentheses if not empty, and the input.
func (b *Backend) RenderTextPrompt(prompt, defaultValue string, in InputView) error {
	return b.printPromptWithInput(prompt, defaultValue, in)
}

// RenderMultiSelectPrompt renders the prompt line of a multi select prompt
// with the filter input.
func (b *Backend) RenderMultiSelectPrompt(prompt string, in InputView) error {
	return b.printPromptWithInput(prompt, "", in)
}

// RenderCanceledPrompt renders the prompt followed by the canceled indicator.
func (b *Backend) RenderCanceledPrompt(prompt string) error {
	if err := b.printPrompt(prompt); err != nil {
		return err
	}
	if err := b.term.Write(" "); err != nil {
		return err
	}
	if err := b.term.WriteStyled(b.config.CanceledPromptIndicator); err != nil {
		return err
	}
	return b.newLine()
}

// RenderPromptWithAnswer renders the answered prompt.
func (b *Backend) RenderPromptWithAnswer(prompt, answer string) error {
	if err := b.printPromptWithPrefix(b.config.AnsweredPromptPrefix, prompt); err != nil {
		return err
	}
	if err := b.term.Write(" "); err != nil {
		return err
	}
	if err := b.term.WriteStyled(NewStyled(answer).WithStyles(b.config.Answer)); err != nil {
		return err
	}
	return b.newLine()
}

// RenderErrorMessage renders a validation error on its own line.
func (b *Backend) RenderErrorMessage(msg ErrorMessage) error {
	c := b.config.ErrorMessage
	if err := b.term.WriteStyled(c.Prefix); err != nil {
		return err
	}
	if err := b.term.WriteStyled(NewStyled(" ").WithStyles(c.Separator)); err != nil {
		return err
	}
	if err := b.term.WriteStyled(NewStyled(msg.Text(c)).WithStyles(c.Message)); err != nil {
		return err
	}
	return b.newLine()
}

// RenderHelpMessage renders help text after a blank line. Text wider than
// the terminal is broken at word boundaries.
func (b *Backend) RenderHelpMessage(help string) error {
	if err := b.newLine(); err != nil {
		return err
	}
	if StringWidth(help) > b.size.Width {
		help = wordwrap.WrapString(help, uint(b.size.Width))
	}
	help = strings.ReplaceAll(help, "\n", "\r\n")
	if err := b.term.WriteStyled(NewStyled(help).WithStyles(b.config.HelpMessage)); err != nil {
		return err
	}
	return b.newLine()
}

// RenderOptions renders a page of options, one per line. Each row shows a
// cursor or scroll indicator, the index prefix if configured, a checkbox and
// the option value. checked holds the source indices of checked options.
func RenderOptions[T any](b *Backend, page list.Page[list.Option[T]], checked map[int]bool) error {
	for i, option := range page.Content {
		if err := b.printOptionPrefix(i, page.Cursor, page.First, page.Last, len(page.Content)); err != nil {
			return err
		}
		if err := b.term.Write(" "); err != nil {
			return err
		}

		if prefix, ok := b.optionIndexPrefix(option.Index, page.Total); ok {
			if err := b.term.WriteStyled(NewStyled(prefix).WithStyles(b.config.Option)); err != nil {
				return err
			}
			if err := b.term.Write(" "); err != nil {
				return err
			}
		}

		isCursor := page.IsCursor(i)

		checkbox := b.config.UnselectedCheckbox
		if checked[option.Index] {
			checkbox = b.config.SelectedCheckbox
		}
		if isCursor && len(b.config.SelectedOption) > 0 {
			checkbox = checkbox.WithStyles(b.config.SelectedOption)
		}
		if err := b.term.WriteStyled(checkbox); err != nil {
			return err
		}
		if err := b.term.Write(" "); err != nil {
			return err
		}

		style := b.config.Option
		if isCursor && len(b.config.SelectedOption) > 0 {
			style = b.config.SelectedOption
		}
		if err := b.term.WriteStyled(NewStyled(option.String()).WithStyles(style)); err != nil {
			return err
		}

		if err := b.newLine(); err != nil {
			return err
		}
	}
	return nil
}

func (b *Backend) printOptionPrefix(row, cursor int, first, last bool, rows int) error {
	var prefix Styled
	switch {
	case row == cursor:
		prefix = b.config.HighlightedOptionPrefix
	case row == 0 && !first:
		prefix = b.config.ScrollUpPrefix
	case row == rows-1 && !last:
		prefix = b.config.ScrollDownPrefix
	default:
		prefix = NewStyled(" ")
	}
	return b.term.WriteStyled(prefix)
}

// optionIndexPrefix returns the ordinal prefix of the option at source index
// index in a list of total options.
func (b *Backend) optionIndexPrefix(index, total int) (string, bool) {
	n := index + 1
	width := digits(total + 1)
	switch b.config.OptionIndexPrefix {
	case IndexPrefixSimple:
		return fmt.Sprintf("%d)", n), true
	case IndexPrefixSpacePadded:
		return fmt.Sprintf("%*d)", width, n), true
	case IndexPrefixZeroPadded:
		return fmt.Sprintf("%0*d)", width, n), true
	}
	return "", false
}

// digits returns the number of decimal digits in n, at least 1.
func digits(n int) int {
	d := 0
	for n > 0 {
		n /= 10
		d++
	}
	if d == 0 {
		return 1
	}
	return d
}
