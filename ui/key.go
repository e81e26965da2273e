package ui

// KeyCode identifies a key.
type KeyCode int

// Key codes. KeyChar carries its character in Key.Rune.
const (
	KeyUnknown KeyCode = iota
	KeyChar
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyDelete
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// Modifier is a key modifier.
type Modifier uint8

// ModNone is a key pressed without modifiers.
const ModNone Modifier = 0

// Modifiers:
const (
	ModCtrl Modifier = 1 << iota
	ModAlt
)

// A Key is a single decoded key press.
type Key struct {
	Code KeyCode
	Rune rune
	Mod  Modifier
}

// Char returns the key event for typing r.
func Char(r rune) Key {
	return Key{Code: KeyChar, Rune: r}
}

// Ctrl returns the key event for pressing Ctrl together with r.
func Ctrl(r rune) Key {
	return Key{Code: KeyChar, Rune: r, Mod: ModCtrl}
}

// IsChar reports whether k types the plain character r.
func (k Key) IsChar(r rune) bool {
	return k.Code == KeyChar && k.Mod == ModNone && k.Rune == r
}

// IsCtrl reports whether k is Ctrl together with r.
func (k Key) IsCtrl(r rune) bool {
	return k.Code == KeyChar && k.Mod == ModCtrl && k.Rune == r
}
