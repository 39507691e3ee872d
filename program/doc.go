// Package program implements the loader for brainfuck source text.
//
// Source text is filtered down to the eight opcode symbols, brackets are
// checked for balance and every bracket is resolved to the instruction
// following its partner, so that execution never scans for brackets.
// Anything outside the opcode alphabet is a comment.
package program
