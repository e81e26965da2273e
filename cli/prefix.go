package cli

import (
	"bytes"
	"io"
)

// PrefixWriter writes every line to Output with Prefix in front of it.
//
// A line may be split over several calls to Write; the prefix is only
// written at the start of a line. Nothing is written for an empty write, so
// the output never ends with a dangling prefix.
type PrefixWriter struct {
	Output io.Writer
	Prefix []byte

	midLine bool
	buf     bytes.Buffer
}

// Write writes p, prefixing every line separated by \n.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	n := len(p)
	pw.buf.Reset()
	for len(p) > 0 {
		if !pw.midLine {
			pw.buf.Write(pw.Prefix)
			pw.midLine = true
		}
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			pw.buf.Write(p)
			break
		}
		pw.buf.Write(p[:i+1])
		p = p[i+1:]
		pw.midLine = false
	}
	if _, err := pw.buf.WriteTo(pw.Output); err != nil {
		return 0, err
	}
	return n, nil
}
