// Package input provides an editable line of user input.
package input

import (
	"unicode"

	"github.com/func/prompt/ui"
)

// Input is a single line of text with a cursor. Offsets are in runes.
type Input struct {
	content     []rune
	cursor      int
	placeholder string
}

// New returns an input containing content with the cursor at the end.
func New(content string) *Input {
	r := []rune(content)
	return &Input{content: r, cursor: len(r)}
}

// WithPlaceholder sets the text shown while the input is empty.
func (in *Input) WithPlaceholder(p string) *Input {
	in.placeholder = p
	return in
}

// Content returns the current text.
func (in *Input) Content() string { return string(in.content) }

// PreCursor returns the text before the cursor.
func (in *Input) PreCursor() string { return string(in.content[:in.cursor]) }

// Cursor returns the cursor offset.
func (in *Input) Cursor() int { return in.cursor }

// Length returns the number of runes in the input.
func (in *Input) Length() int { return len(in.content) }

// Placeholder returns the placeholder text.
func (in *Input) Placeholder() string { return in.placeholder }

// IsEmpty reports whether the input has no content.
func (in *Input) IsEmpty() bool { return len(in.content) == 0 }

// Insert inserts r at the cursor and advances the cursor.
func (in *Input) Insert(r rune) {
	in.content = append(in.content, 0)
	copy(in.content[in.cursor+1:], in.content[in.cursor:])
	in.content[in.cursor] = r
	in.cursor++
}

// Backspace deletes the rune before the cursor.
func (in *Input) Backspace() bool {
	if in.cursor == 0 {
		return false
	}
	in.content = append(in.content[:in.cursor-1], in.content[in.cursor:]...)
	in.cursor--
	return true
}

// Delete deletes the rune under the cursor.
func (in *Input) Delete() bool {
	if in.cursor == len(in.content) {
		return false
	}
	in.content = append(in.content[:in.cursor], in.content[in.cursor+1:]...)
	return true
}

// DeleteToStart deletes everything before the cursor.
func (in *Input) DeleteToStart() bool {
	if in.cursor == 0 {
		return false
	}
	in.content = append(in.content[:0], in.content[in.cursor:]...)
	in.cursor = 0
	return true
}

// Clear removes all content.
func (in *Input) Clear() bool {
	if len(in.content) == 0 {
		return false
	}
	in.content = in.content[:0]
	in.cursor = 0
	return true
}

// MoveLeft moves the cursor one rune to the left.
func (in *Input) MoveLeft() {
	if in.cursor > 0 {
		in.cursor--
	}
}

// MoveRight moves the cursor one rune to the right.
func (in *Input) MoveRight() {
	if in.cursor < len(in.content) {
		in.cursor++
	}
}

// Home moves the cursor to the start of the input.
func (in *Input) Home() { in.cursor = 0 }

// End moves the cursor to the end of the input.
func (in *Input) End() { in.cursor = len(in.content) }

// HandleKey applies an editing key. It returns true if the content changed.
// Keys that do not edit the input are ignored.
func (in *Input) HandleKey(k ui.Key) bool {
	switch k.Code {
	case ui.KeyBackspace:
		return in.Backspace()
	case ui.KeyDelete:
		return in.Delete()
	case ui.KeyLeft:
		in.MoveLeft()
	case ui.KeyRight:
		in.MoveRight()
	case ui.KeyHome:
		in.Home()
	case ui.KeyEnd:
		in.End()
	case ui.KeyChar:
		switch {
		case k.IsCtrl('a'):
			in.Home()
		case k.IsCtrl('e'):
			in.End()
		case k.IsCtrl('u'):
			return in.DeleteToStart()
		case k.Mod == ui.ModNone && unicode.IsPrint(k.Rune):
			in.Insert(k.Rune)
			return true
		}
	}
	return false
}
