// Package terminal implements an ANSI terminal driver for prompts.
//
// Output is buffered until Flush, so that a frame reaches the terminal in a
// single write. Everything written is mirrored as plain text in memory,
// which the renderer uses to track where its output ends on screen.
package terminal

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/func/prompt/ui"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	clearLine  = "\x1b[2K"
	showCursor = "\x1b[?25h"
	hideCursor = "\x1b[?25l"
)

// ErrNotTerminal is returned when an operation needs a terminal but the
// input or output is not one.
var ErrNotTerminal = errors.New("not a terminal")

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// Terminal is a terminal driver reading keys from an input and writing to
// an output.
//
// Terminal is not safe for concurrent use.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer

	inFd, outFd int
	state       *term.State

	profile termenv.Profile

	buf bytes.Buffer    // Pending output
	mem strings.Builder // Plain text written since the last clear
}

// New creates a terminal reading keys from in and writing to out. Styles are
// only written if out supports colors.
func New(in io.Reader, out io.Writer) *Terminal {
	t := &Terminal{
		in:      bufio.NewReader(in),
		out:     out,
		inFd:    -1,
		outFd:   -1,
		profile: termenv.NewOutput(out).EnvColorProfile(),
	}
	if f, ok := in.(fder); ok {
		t.inFd = int(f.Fd())
	}
	if f, ok := out.(fder); ok {
		t.outFd = int(f.Fd())
	}
	return t
}

// SetProfile overrides the detected color profile.
func (t *Terminal) SetProfile(p termenv.Profile) {
	t.profile = p
}

// EnterRawMode puts the input terminal into raw mode. The previous mode is
// restored by Close.
func (t *Terminal) EnterRawMode() error {
	if t.inFd < 0 || !term.IsTerminal(t.inFd) {
		return ErrNotTerminal
	}
	state, err := term.MakeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.state = state
	return nil
}

// Close flushes pending output and restores the terminal mode if it was
// changed by EnterRawMode.
func (t *Terminal) Close() error {
	err := t.Flush()
	if t.state != nil {
		if rerr := term.Restore(t.inFd, t.state); rerr != nil && err == nil {
			err = fmt.Errorf("restore terminal: %w", rerr)
		}
		t.state = nil
	}
	return err
}

// Size returns the size of the output terminal.
func (t *Terminal) Size() (ui.Size, error) {
	if t.outFd < 0 {
		return ui.Size{}, ErrNotTerminal
	}
	w, h, err := term.GetSize(t.outFd)
	if err != nil {
		return ui.Size{}, fmt.Errorf("get terminal size: %w", err)
	}
	return ui.Size{Width: w, Height: h}, nil
}

// CursorHide hides the cursor.
func (t *Terminal) CursorHide() error {
	t.buf.WriteString(hideCursor)
	return nil
}

// CursorShow shows the cursor.
func (t *Terminal) CursorShow() error {
	t.buf.WriteString(showCursor)
	return nil
}

// CursorUp moves the cursor up n rows. Non-positive n is a no-op.
func (t *Terminal) CursorUp(n int) error {
	if n > 0 {
		moveCursor(&t.buf, -n)
	}
	return nil
}

// CursorDown moves the cursor down n rows. Non-positive n is a no-op.
func (t *Terminal) CursorDown(n int) error {
	if n > 0 {
		moveCursor(&t.buf, n)
	}
	return nil
}

// CursorMoveToColumn moves the cursor to the 0-based column col of the
// current row.
func (t *Terminal) CursorMoveToColumn(col int) error {
	if col < 0 {
		col = 0
	}
	fmt.Fprintf(&t.buf, "\x1b[%dG", col+1)
	return nil
}

// ClearCurrentLine erases the row the cursor is on.
func (t *Terminal) ClearCurrentLine() error {
	t.buf.WriteString(clearLine)
	return nil
}

// Write writes plain text.
func (t *Terminal) Write(text string) error {
	t.buf.WriteString(text)
	t.mem.WriteString(text)
	return nil
}

// WriteStyled writes a styled span. The styles are dropped if the output
// does not support them.
func (t *Terminal) WriteStyled(s ui.Styled) error {
	if t.profile == termenv.Ascii {
		t.buf.WriteString(s.Text)
	} else {
		t.buf.WriteString(s.String())
	}
	t.mem.WriteString(s.Text)
	return nil
}

// Flush writes pending output to the terminal.
func (t *Terminal) Flush() error {
	if t.buf.Len() == 0 {
		return nil
	}
	_, err := io.Copy(t.out, &t.buf)
	t.buf.Reset()
	if err != nil {
		return fmt.Errorf("write to terminal: %w", err)
	}
	return nil
}

// InMemoryContent returns the plain text written since the last call to
// ClearInMemoryContent.
func (t *Terminal) InMemoryContent() string {
	return t.mem.String()
}

// ClearInMemoryContent clears the in-memory mirror.
func (t *Terminal) ClearInMemoryContent() {
	t.mem.Reset()
}

// moveCursor writes the escape code for moving the cursor d rows down, or up
// if d is negative.
func moveCursor(w io.Writer, d int) {
	switch {
	case d == 0:
	case d == -1:
		fmt.Fprint(w, "\x1b[A") // Up 1
	case d < 0:
		fmt.Fprintf(w, "\x1b[%dA", -d) // Up n
	case d == 1:
		fmt.Fprint(w, "\x1b[B") // Down 1
	default:
		fmt.Fprintf(w, "\x1b[%dB", d) // Down n
	}
}
