package ui

// Size is the size of the terminal in cells.
type Size struct {
	Width  int
	Height int
}

// A Terminal is the driver the Backend draws through.
//
// Writes are mirrored into an in-memory buffer holding the plain text (no
// escape codes) written since the last ClearInMemoryContent. The Backend
// replays that text to track where the output ends on screen.
type Terminal interface {
	// ReadKey blocks until a key event is available.
	ReadKey() (Key, error)

	Size() (Size, error)

	CursorHide() error
	CursorShow() error
	CursorUp(n int) error
	CursorDown(n int) error
	CursorMoveToColumn(col int) error

	Write(text string) error
	WriteStyled(s Styled) error
	ClearCurrentLine() error
	Flush() error

	InMemoryContent() string
	ClearInMemoryContent()
}

// InputView is the read-only view of a line of user input the Backend
// renders.
type InputView interface {
	Content() string
	// PreCursor returns the content before the cursor.
	PreCursor() string
	// Cursor returns the cursor position as a rune offset into the content.
	Cursor() int
	// Length returns the content length in runes.
	Length() int
	Placeholder() string
}

// ErrorMessage is a validation error to render. The zero value renders the
// configured default message.
type ErrorMessage struct {
	custom  bool
	message string
}

// DefaultErrorMessage returns an ErrorMessage rendering the configured
// default message.
func DefaultErrorMessage() ErrorMessage {
	return ErrorMessage{}
}

// CustomErrorMessage returns an ErrorMessage rendering msg.
func CustomErrorMessage(msg string) ErrorMessage {
	return ErrorMessage{custom: true, message: msg}
}

// Text returns the message to render given the error message configuration.
func (e ErrorMessage) Text(c ErrorMessageConfig) string {
	if e.custom {
		return e.message
	}
	return c.DefaultMessage
}
