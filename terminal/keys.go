package terminal

import (
	"fmt"

	"github.com/func/prompt/ui"
)

const esc = 0x1b

// ReadKey blocks until a key is pressed and decodes it. Escape sequences for
// the arrow and navigation keys are decoded; unrecognized sequences are
// returned as ui.KeyUnknown.
func (t *Terminal) ReadKey() (ui.Key, error) {
	r, _, err := t.in.ReadRune()
	if err != nil {
		return ui.Key{}, fmt.Errorf("read key: %w", err)
	}
	switch r {
	case '\r', '\n':
		return ui.Key{Code: ui.KeyEnter}, nil
	case '\t':
		return ui.Key{Code: ui.KeyTab}, nil
	case 0x7f, 0x08:
		return ui.Key{Code: ui.KeyBackspace}, nil
	case esc:
		return t.readEscape()
	}
	if r >= 1 && r <= 26 {
		return ui.Ctrl('a' + r - 1), nil
	}
	return ui.Char(r), nil
}

// readEscape decodes the rest of a sequence started by ESC. An ESC with
// nothing buffered behind it is the Esc key itself.
func (t *Terminal) readEscape() (ui.Key, error) {
	if t.in.Buffered() == 0 {
		return ui.Key{Code: ui.KeyEsc}, nil
	}
	r, _, err := t.in.ReadRune()
	if err != nil {
		return ui.Key{}, fmt.Errorf("read key: %w", err)
	}
	switch r {
	case '[', 'O':
		return t.readCSI()
	case esc:
		return ui.Key{Code: ui.KeyEsc}, nil
	}
	return ui.Key{Code: ui.KeyChar, Rune: r, Mod: ui.ModAlt}, nil
}

// readCSI decodes a control sequence after "ESC [" or "ESC O": parameter
// bytes followed by a final byte in the range @ to ~.
func (t *Terminal) readCSI() (ui.Key, error) {
	var params []byte
	for {
		b, err := t.in.ReadByte()
		if err != nil {
			return ui.Key{}, fmt.Errorf("read key: %w", err)
		}
		if b >= 0x40 && b <= 0x7e {
			return csiKey(params, b), nil
		}
		params = append(params, b)
	}
}

func csiKey(params []byte, final byte) ui.Key {
	switch final {
	case 'A':
		return ui.Key{Code: ui.KeyUp}
	case 'B':
		return ui.Key{Code: ui.KeyDown}
	case 'C':
		return ui.Key{Code: ui.KeyRight}
	case 'D':
		return ui.Key{Code: ui.KeyLeft}
	case 'H':
		return ui.Key{Code: ui.KeyHome}
	case 'F':
		return ui.Key{Code: ui.KeyEnd}
	case '~':
		switch string(params) {
		case "1", "7":
			return ui.Key{Code: ui.KeyHome}
		case "3":
			return ui.Key{Code: ui.KeyDelete}
		case "4", "8":
			return ui.Key{Code: ui.KeyEnd}
		case "5":
			return ui.Key{Code: ui.KeyPageUp}
		case "6":
			return ui.Key{Code: ui.KeyPageDown}
		}
	}
	return ui.Key{Code: ui.KeyUnknown}
}
