// Package machine implements the brainfuck virtual machine.
//
// A Machine owns a tape of cells, a data cursor (dp) and an instruction
// cursor (ip), and executes a loaded program one instruction at a time.
// Cell width is chosen by the type parameter: the Int cells cover the
// builtin 8 to 64 bit integers, U128 and I128 cover 128 bits. Arithmetic
// always wraps, and output emits the cell big-endian.
//
// Execution ends when ip runs past the last instruction. Running the data
// cursor off the tape and channel failures are terminal errors that carry
// the failing ip.
package machine
