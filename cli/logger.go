package cli

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Logger writes levelled diagnostics prefixed with the time elapsed since it
// was created. Prompts draw on stderr too, so nothing is logged while a
// prompt is active.
type Logger struct {
	Level LogLevel
	start time.Time

	mu  sync.Mutex
	out io.Writer
}

// LogLevel is the verbosity of a log line. A line is written if its level is
// at most the Logger's level.
type LogLevel int

// NewLogger returns a Logger writing to stderr.
func NewLogger(level LogLevel) *Logger {
	return NewLoggerTo(os.Stderr, level)
}

// NewLoggerTo returns a Logger writing to w.
func NewLoggerTo(w io.Writer, level LogLevel) *Logger {
	return &Logger{
		Level: level,
		start: time.Now(),
		out:   w,
	}
}

// Log levels.
const (
	Error LogLevel = iota
	Info
	Verbose
	Trace
)

func (l *Logger) enabled(level LogLevel) bool {
	return l != nil && l.out != nil && level <= l.Level
}

func (l *Logger) printDeltaTime() {
	d := time.Since(l.start)
	sec := int(d.Seconds())
	ms := int(d.Milliseconds()) % 1000
	fmt.Fprintf(l.out, "%d.%03d ", sec, ms)
}

func (l *Logger) Log(level LogLevel, a ...any) {
	if !l.enabled(level) {
		return
	}
	l.mu.Lock()
	l.printDeltaTime()
	fmt.Fprint(l.out, a...)
	l.mu.Unlock()
}

func (l *Logger) Logln(level LogLevel, a ...any) {
	if !l.enabled(level) {
		return
	}
	l.mu.Lock()
	l.printDeltaTime()
	fmt.Fprintln(l.out, a...)
	l.mu.Unlock()
}

func (l *Logger) Logf(level LogLevel, format string, args ...any) {
	if !l.enabled(level) {
		return
	}
	l.mu.Lock()
	l.printDeltaTime()
	fmt.Fprintf(l.out, format, args...)
	l.mu.Unlock()
}

func (l *Logger) Errorln(a ...any)                    { l.Logln(Error, a...) }
func (l *Logger) Errorf(format string, args ...any)   { l.Logf(Error, format, args...) }
func (l *Logger) Infoln(a ...any)                     { l.Logln(Info, a...) }
func (l *Logger) Infof(format string, args ...any)    { l.Logf(Info, format, args...) }
func (l *Logger) Verboseln(a ...any)                  { l.Logln(Verbose, a...) }
func (l *Logger) Verbosef(format string, args ...any) { l.Logf(Verbose, format, args...) }
func (l *Logger) Traceln(a ...any)                    { l.Logln(Trace, a...) }
func (l *Logger) Tracef(format string, args ...any)   { l.Logf(Trace, format, args...) }
