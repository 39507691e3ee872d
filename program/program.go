package program

import (
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// SourceLocation is a zero-based line and column in the source text.
type SourceLocation struct {
	Line   int
	Column int
}

// String renders the location one-based.
func (loc SourceLocation) String() string {
	return f("line %d column %d", loc.Line+1, loc.Column+1)
}

// Program is a loaded, bracket-resolved instruction stream.
// It is never modified after Build returns it.
type Program struct {
	name         string
	instructions []Instruction
	locations    []SourceLocation
}

// token is a filtered opcode symbol and where it came from.
type token struct {
	op  Op
	loc SourceLocation
}

// scan drops every non-opcode rune, keeping the location of each opcode.
func scan(source string) (tokens []token) {
	var loc SourceLocation
	for _, r := range source {
		if r == '\n' {
			loc.Line++
			loc.Column = 0
			continue
		}
		if op := Op(r); r < 0x80 && op.Valid() {
			tokens = append(tokens, token{op: op, loc: loc})
		}
		loc.Column++
	}

	return
}

// Build loads a program from source text.
//
// name is only used to label errors. Unbalanced brackets fail with an
// *ErrParse wrapping ErrUnopenedBracket, at the first close bracket with
// nothing to close, or ErrUnclosedBracket, at the earliest open bracket
// left unmatched.
func Build(name string, source string) (prog *Program, err error) {
	tokens := scan(source)

	partner := make([]int, len(tokens))
	var stack []int
	for n, tok := range tokens {
		switch tok.op {
		case OP_JZ:
			stack = append(stack, n)
		case OP_JNZ:
			if len(stack) == 0 {
				err = &ErrParse{Name: name, Location: tok.loc, Err: ErrUnopenedBracket}
				return
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			partner[open] = n
			partner[n] = open
		}
	}

	if len(stack) != 0 {
		err = &ErrParse{Name: name, Location: tokens[stack[0]].loc, Err: ErrUnclosedBracket}
		return
	}

	prog = &Program{
		name:         name,
		instructions: make([]Instruction, len(tokens)),
		locations:    make([]SourceLocation, len(tokens)),
	}
	for n, tok := range tokens {
		in := Instruction{Op: tok.op}
		if in.IsJump() {
			in.Dest = partner[n] + 1
		}
		prog.instructions[n] = in
		prog.locations[n] = tok.loc
	}

	return
}

// Parse loads a program from a reader.
func Parse(name string, r io.Reader) (prog *Program, err error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return
	}

	return Build(name, string(text))
}

// FromFile loads a program from a file, named by its base name.
func FromFile(path string) (prog *Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return Parse(filepath.Base(path), inf)
}

// Name returns the display name of the program source.
func (prog *Program) Name() string {
	return prog.name
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.instructions)
}

// At returns the instruction at index ip.
func (prog *Program) At(ip int) Instruction {
	return prog.instructions[ip]
}

// Location returns the source location of the instruction at index ip.
func (prog *Program) Location(ip int) (loc SourceLocation, ok bool) {
	if ip < 0 || ip >= len(prog.locations) {
		return
	}

	return prog.locations[ip], true
}

// Instructions returns an iterator over the instruction stream.
func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(ip int, in Instruction) bool) {
		for ip, in := range prog.instructions {
			if !yield(ip, in) {
				return
			}
		}
	}
}

// String returns the program as opcode symbols.
func (prog *Program) String() string {
	var sb strings.Builder
	for _, in := range prog.instructions {
		sb.WriteByte(byte(in.Op))
	}
	return sb.String()
}
