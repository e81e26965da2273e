package ui

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// A Style is an ANSI style attribute to set when formatting text.
type Style uint8

// Modifiers:
const (
	Bold          Style = 1
	Dim           Style = 2 // Faint
	Italic        Style = 3
	Underline     Style = 4
	Invert        Style = 7 // Reverse
	Hidden        Style = 8 // Conceal
	Strikethrough Style = 9 // Crossed-out
)

// Foreground colors:
const (
	Black Style = 30 + iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Bright foreground colors:
const (
	HiBlack Style = 90 + iota
	HiRed
	HiGreen
	HiYellow
	HiBlue
	HiMagenta
	HiCyan
	HiWhite
)

// Background colors:
const (
	BGBlack Style = 40 + iota
	BGRed
	BGGreen
	BGYellow
	BGBlue
	BGMagenta
	BGCyan
	BGWhite
)

// Bright background colors:
const (
	BGHiBlack Style = 100 + iota
	BGHiRed
	BGHiGreen
	BGHiYellow
	BGHiBlue
	BGHiMagenta
	BGHiCyan
	BGHiWhite
)

var styleNames = map[Style]string{
	Bold:          "bold",
	Dim:           "dim",
	Italic:        "italic",
	Underline:     "underline",
	Invert:        "invert",
	Hidden:        "hidden",
	Strikethrough: "strikethrough",
}

func init() {
	colors := []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}
	for i, c := range colors {
		styleNames[Black+Style(i)] = c
		styleNames[HiBlack+Style(i)] = "hi_" + c
		styleNames[BGBlack+Style(i)] = "bg_" + c
		styleNames[BGHiBlack+Style(i)] = "bg_hi_" + c
	}
}

// String returns the configuration name of the style, such as "hi_cyan".
func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return "Style(" + strconv.Itoa(int(s)) + ")"
}

// ParseStyle returns the style with the given name. Names are matched case
// insensitively, dashes and underscores are interchangeable.
func ParseStyle(name string) (Style, error) {
	want := strings.ReplaceAll(strings.ToLower(name), "-", "_")
	for s, n := range styleNames {
		if n == want {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown style %q", name)
}

// MarshalJSON encodes the style by name.
func (s Style) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a style from its name.
func (s *Style) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return fmt.Errorf("style must be a string: %w", err)
	}
	v, err := ParseStyle(name)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ForegroundColor returns true if the style describes a foreground color.
func (s Style) ForegroundColor() bool {
	if s >= Black && s <= White {
		return true
	}
	if s >= HiBlack && s <= HiWhite {
		return true
	}
	return false
}

// BackgroundColor returns true if the style describes a background color.
func (s Style) BackgroundColor() bool {
	if s >= BGBlack && s <= BGWhite {
		return true
	}
	if s >= BGHiBlack && s <= BGHiWhite {
		return true
	}
	return false
}

// ResetCode returns the code to reset the given style.
//
// Because Bold and Dim have the same reset code (22), any previous bold/dim
// text is also reset.
func (s Style) ResetCode() int {
	switch s {
	case Bold, Dim:
		return 22
	case Italic:
		return 23
	case Underline:
		return 24
	case Invert:
		return 27
	case Hidden:
		return 28
	case Strikethrough:
		return 29
	}
	if s.ForegroundColor() {
		return 39
	}
	if s.BackgroundColor() {
		return 49
	}
	return 0
}

// Styles is a style descriptor: the set of styles applied to a span of text.
// A nil or empty Styles leaves the text unstyled.
type Styles []Style

// Open returns the ANSI escape sequence that enables the given style.
func (ss Styles) Open() string {
	return sgr(ss, func(s Style) int { return int(s) })
}

// Close returns the ANSI escape sequence to reset any styles set by Open().
func (ss Styles) Close() string {
	return sgr(ss, Style.ResetCode)
}

func sgr(ss Styles, code func(Style) int) string {
	if len(ss) == 0 {
		return ""
	}
	var out strings.Builder
	out.WriteString("\x1b[")
	for i, s := range ss {
		out.WriteString(strconv.Itoa(code(s)))
		if i < len(ss)-1 {
			out.WriteRune(';')
		}
	}
	out.WriteRune('m')
	return out.String()
}

// Format returns the ANSI escape sequence to enable the styles, followed by
// the given text and an ANSI escape sequence to reset the styles. Only
// attributes that were modified are reset.
//
// If no styles are set or s is empty, the original text is returned.
func (ss Styles) Format(s string) string {
	if len(ss) == 0 || s == "" {
		return s
	}
	return ss.Open() + s + ss.Close()
}

func (ss Styles) clone() Styles {
	if ss == nil {
		return nil
	}
	out := make(Styles, len(ss))
	copy(out, ss)
	return out
}

// Format wraps the given string with ANSI styles. If the input string is
// empty, an empty string is returned.
func Format(str string, styles ...Style) string {
	return Styles(styles).Format(str)
}
