package io

import (
	"io"
)

// NewlineWriter wraps an io.Writer so that the output always ends on its
// own line. Close appends a newline unless the last byte written was one.
type NewlineWriter struct {
	w      io.Writer
	last   byte
	closed bool
}

// NewNewlineWriter wraps w.
func NewNewlineWriter(w io.Writer) *NewlineWriter {
	return &NewlineWriter{w: w}
}

// Write passes data to the wrapped writer, remembering the last byte written.
func (nw *NewlineWriter) Write(data []byte) (n int, err error) {
	if nw.closed {
		err = ErrClosed
		return
	}

	n, err = nw.w.Write(data)
	if n > 0 {
		nw.last = data[n-1]
	}

	return
}

// Close writes the trailing newline if needed and flushes the wrapped
// writer if it has a Flush method. The wrapped writer is not closed.
// Calling Close more than once is a no-op.
func (nw *NewlineWriter) Close() (err error) {
	if nw.closed {
		return
	}
	nw.closed = true

	if nw.last != '\n' {
		_, err = nw.w.Write([]byte{'\n'})
		if err != nil {
			return
		}
		nw.last = '\n'
	}

	if flusher, ok := nw.w.(interface{ Flush() error }); ok {
		err = flusher.Flush()
	}

	return
}
