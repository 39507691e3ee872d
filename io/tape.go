package io

import (
	"io"
)

// Tape provides the byte-level input and output channels of a machine.
// It wraps an io.Reader for input and an io.Writer for output.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	read    int
	written int
}

// ReadByte reads exactly one byte from the input.
// End of input is reported as io.EOF.
func (tc *Tape) ReadByte() (value byte, err error) {
	if tc.Input == nil {
		err = ErrNoInput
		return
	}

	var one [1]byte
	_, err = io.ReadFull(tc.Input, one[:])
	if err != nil {
		return
	}

	tc.read++
	value = one[0]
	return
}

// Write writes all of data to the output.
// A short write without an error is reported as io.ErrShortWrite.
func (tc *Tape) Write(data []byte) (err error) {
	if tc.Output == nil {
		err = ErrNoOutput
		return
	}

	n, err := tc.Output.Write(data)
	tc.written += n
	if err == nil && n != len(data) {
		err = io.ErrShortWrite
	}

	return
}

// Read returns the count of bytes read from the input.
func (tc *Tape) Read() int {
	return tc.read
}

// Written returns the count of bytes written to the output.
func (tc *Tape) Written() int {
	return tc.written
}
