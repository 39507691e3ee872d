// Package io provides the byte channels for the brainfuck machine: Tape,
// which adapts an io.Reader and io.Writer to single-byte reads and
// all-or-nothing writes, and NewlineWriter, which makes sure output
// ends on its own line.
package io
