package ui

// Styled is a span of text paired with the style to render it with. It is
// the unit the Backend writes to the terminal.
type Styled struct {
	Text  string `json:"text"`
	Style Styles `json:"style,omitempty"`
}

// NewStyled returns an unstyled span.
func NewStyled(text string) Styled {
	return Styled{Text: text}
}

// WithStyle returns a copy of the span with the given styles.
func (s Styled) WithStyle(styles ...Style) Styled {
	return s.WithStyles(Styles(styles))
}

// WithStyles returns a copy of the span with its style replaced by ss.
func (s Styled) WithStyles(ss Styles) Styled {
	s.Style = ss
	return s
}

// String returns the text wrapped in the ANSI escape codes of its style.
func (s Styled) String() string {
	return s.Style.Format(s.Text)
}
