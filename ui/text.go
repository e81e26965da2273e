package ui

import (
	"github.com/mattn/go-runewidth"
)

// Position is an offset in terminal cells from the top-left corner of the
// rendered block, not of the screen.
type Position struct {
	Row int
	Col int
}

// RuneWidth returns the number of cells r occupies in a terminal: 0 for
// control characters and combining marks, 2 for wide East Asian glyphs and 1
// otherwise.
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 0 {
		return 0
	}
	return w
}

// StringWidth returns the number of visible cells the given string occupies.
//
// ANSI escape codes are not included in the computation.
func StringWidth(str string) int {
	w := 0
	esc := false
	for _, r := range str {
		if isEsc(r) {
			esc = true
			continue
		}
		if esc {
			if isEscDone(r) {
				esc = false
			}
			continue
		}
		w += RuneWidth(r)
	}
	return w
}

// TrackPosition replays the terminal's own line wrapping over text, which
// must not contain escape codes, and returns the position following the last
// glyph.
//
// A glyph that does not fit in the remaining columns of a row moves to the
// start of the next row, the way the terminal wraps it. A row may be filled
// up to exactly width columns; the terminal only wraps once the next glyph
// is written.
//
// If cursorOffset is the rune index of a glyph in text, the position right
// before that glyph is returned as cursor and ok is true. An offset past the
// end of text is never resolved.
func TrackPosition(text string, width int, cursorOffset int) (end Position, cursor Position, ok bool) {
	if width < 1 {
		width = 1
	}
	idx := 0
	for _, r := range text {
		w := RuneWidth(r)
		switch {
		case r == '\n':
			end.Row++
			end.Col = 0
		case w == 0:
			// Zero-width glyphs never wrap, even past a full row.
		case width-end.Col >= w:
			end.Col += w
		default:
			end.Row++
			end.Col = w
		}
		if idx == cursorOffset {
			cursor = Position{Row: end.Row, Col: end.Col - w}
			ok = true
		}
		idx++
	}
	return end, cursor, ok
}

func isEsc(r rune) bool {
	return r == '\x1b'
}

func isEscDone(r rune) bool {
	if r >= 'A' && r <= 'Z' {
		return true
	}
	if r >= 'a' && r <= 'z' {
		return true
	}
	return false
}
