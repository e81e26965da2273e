package terminal_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/func/prompt/list"
	"github.com/func/prompt/terminal"
	"github.com/func/prompt/ui"
	"github.com/google/go-cmp/cmp"
	"github.com/muesli/termenv"
)

func checkBytes(t *testing.T, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf(`Output does not match.
Got %d bytes:
%s
Want %d bytes:
%s`, len(got), hex.Dump([]byte(got)), len(want), hex.Dump([]byte(want)))
	}
}

func TestTerminal_output(t *testing.T) {
	tests := []struct {
		name string
		run  func(term *terminal.Terminal)
		want string
	}{
		{
			name: "Cursor",
			run: func(term *terminal.Terminal) {
				_ = term.CursorHide()
				_ = term.CursorShow()
			},
			want: "\x1b[?25l\x1b[?25h",
		},
		{
			name: "Up",
			run: func(term *terminal.Terminal) {
				_ = term.CursorUp(1)
				_ = term.CursorUp(3)
				_ = term.CursorUp(0)
				_ = term.CursorUp(-2)
			},
			want: "\x1b[A\x1b[3A",
		},
		{
			name: "Down",
			run: func(term *terminal.Terminal) {
				_ = term.CursorDown(1)
				_ = term.CursorDown(2)
				_ = term.CursorDown(0)
			},
			want: "\x1b[B\x1b[2B",
		},
		{
			name: "Column",
			run: func(term *terminal.Terminal) {
				_ = term.CursorMoveToColumn(0)
				_ = term.CursorMoveToColumn(9)
			},
			want: "\x1b[1G\x1b[10G",
		},
		{
			name: "Clear",
			run: func(term *terminal.Terminal) {
				_ = term.ClearCurrentLine()
			},
			want: "\x1b[2K",
		},
		{
			name: "Styled",
			run: func(term *terminal.Terminal) {
				_ = term.Write("a ")
				_ = term.WriteStyled(ui.NewStyled("b").WithStyle(ui.Red))
			},
			want: "a \x1b[31mb\x1b[39m",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			term := terminal.New(strings.NewReader(""), &out)
			term.SetProfile(termenv.ANSI)
			tc.run(term)
			if out.Len() != 0 {
				t.Errorf("Output written before flush: %q", out.String())
			}
			if err := term.Flush(); err != nil {
				t.Fatal(err)
			}
			checkBytes(t, out.String(), tc.want)
		})
	}
}

func TestTerminal_asciiDropsStyles(t *testing.T) {
	var out bytes.Buffer
	// A bytes.Buffer is not a terminal, so no colors are detected.
	term := terminal.New(strings.NewReader(""), &out)
	_ = term.WriteStyled(ui.NewStyled("plain").WithStyle(ui.Bold))
	if err := term.Flush(); err != nil {
		t.Fatal(err)
	}
	checkBytes(t, out.String(), "plain")
}

func TestTerminal_inMemoryContent(t *testing.T) {
	var out bytes.Buffer
	term := terminal.New(strings.NewReader(""), &out)
	term.SetProfile(termenv.TrueColor)

	_ = term.CursorHide()
	_ = term.Write("? ")
	_ = term.WriteStyled(ui.NewStyled("Name").WithStyle(ui.Bold))
	_ = term.CursorUp(2)

	if got := term.InMemoryContent(); got != "? Name" {
		t.Errorf("InMemoryContent() = %q, want %q", got, "? Name")
	}
	term.ClearInMemoryContent()
	if got := term.InMemoryContent(); got != "" {
		t.Errorf("InMemoryContent() = %q after clear", got)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestTerminal_flushError(t *testing.T) {
	term := terminal.New(strings.NewReader(""), failWriter{})
	_ = term.Write("x")
	if err := term.Flush(); !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("Flush() err = %v, want %v", err, io.ErrClosedPipe)
	}
}

func TestTerminal_notTerminal(t *testing.T) {
	term := terminal.New(strings.NewReader(""), &bytes.Buffer{})
	if _, err := term.Size(); !errors.Is(err, terminal.ErrNotTerminal) {
		t.Errorf("Size() err = %v, want %v", err, terminal.ErrNotTerminal)
	}
	if err := term.EnterRawMode(); !errors.Is(err, terminal.ErrNotTerminal) {
		t.Errorf("EnterRawMode() err = %v, want %v", err, terminal.ErrNotTerminal)
	}
	if err := term.Close(); err != nil {
		t.Errorf("Close() err = %v", err)
	}
}

func TestTerminal_ReadKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []ui.Key
	}{
		{
			name:  "Chars",
			input: "ab ✅",
			want:  []ui.Key{ui.Char('a'), ui.Char('b'), ui.Char(' '), ui.Char('✅')},
		},
		{
			name:  "Control",
			input: "\r\n\t\x7f\x08\x03\x01",
			want: []ui.Key{
				{Code: ui.KeyEnter},
				{Code: ui.KeyEnter},
				{Code: ui.KeyTab},
				{Code: ui.KeyBackspace},
				{Code: ui.KeyBackspace},
				ui.Ctrl('c'),
				ui.Ctrl('a'),
			},
		},
		{
			name:  "Arrows",
			input: "\x1b[A\x1b[B\x1b[C\x1b[D\x1bOA",
			want: []ui.Key{
				{Code: ui.KeyUp},
				{Code: ui.KeyDown},
				{Code: ui.KeyRight},
				{Code: ui.KeyLeft},
				{Code: ui.KeyUp},
			},
		},
		{
			name:  "Navigation",
			input: "\x1b[H\x1b[F\x1b[1~\x1b[4~\x1b[3~\x1b[5~\x1b[6~",
			want: []ui.Key{
				{Code: ui.KeyHome},
				{Code: ui.KeyEnd},
				{Code: ui.KeyHome},
				{Code: ui.KeyEnd},
				{Code: ui.KeyDelete},
				{Code: ui.KeyPageUp},
				{Code: ui.KeyPageDown},
			},
		},
		{
			name:  "Unknown",
			input: "\x1b[1;5Px",
			want:  []ui.Key{{Code: ui.KeyUnknown}, ui.Char('x')},
		},
		{
			name:  "Alt",
			input: "\x1bx",
			want:  []ui.Key{{Code: ui.KeyChar, Rune: 'x', Mod: ui.ModAlt}},
		},
		{
			name:  "Esc",
			input: "\x1b",
			want:  []ui.Key{{Code: ui.KeyEsc}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			term := terminal.New(strings.NewReader(tc.input), io.Discard)
			var got []ui.Key
			for {
				k, err := term.ReadKey()
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					t.Fatal(err)
				}
				got = append(got, k)
			}
			if diff := cmp.Diff(got, tc.want); diff != "" {
				t.Errorf("Diff (-got +want)\n%s", diff)
			}
		})
	}
}

// The backend driving a real terminal produces the expected escape codes for
// two consecutive frames.
func TestTerminal_backendFrames(t *testing.T) {
	var out bytes.Buffer
	term := terminal.New(strings.NewReader(""), &out)

	b, err := ui.NewBackend(term, ui.EmptyRenderConfig())
	if err != nil {
		t.Fatal(err)
	}

	render := func(cursor int) {
		t.Helper()
		if err := b.FrameSetup(); err != nil {
			t.Fatal(err)
		}
		page := list.Paginate(list.Options([]string{"a", "b"}), cursor, 7)
		if err := ui.RenderOptions(b, page, nil); err != nil {
			t.Fatal(err)
		}
		if err := b.FrameFinish(); err != nil {
			t.Fatal(err)
		}
	}

	render(0)
	first := out.String()
	checkBytes(t, first, "\x1b[?25l"+ // NewBackend
		"\x1b[?25l"+ // FrameSetup
		"\x1b[1G\x1b[?25l"+ // Nothing to clear
		"> [ ] a\r\n  [ ] b\r\n"+
		"\x1b[?25l")

	out.Reset()
	render(1)
	checkBytes(t, out.String(), "\x1b[?25l"+
		"\x1b[1G\x1b[A\x1b[2K\x1b[A\x1b[2K\x1b[?25l"+
		"  [ ] a\r\n> [ ] b\r\n"+
		"\x1b[?25l")

	out.Reset()
	if err := b.Close(); err != nil {
		t.Fatal(err)
	}
	checkBytes(t, out.String(), "\x1b[?25h")
}
