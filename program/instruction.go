package program

import (
	"fmt"
)

// Op is a brainfuck opcode, stored as its source symbol.
type Op byte

const (
	OP_RIGHT  = Op('>') // Advance the data cursor.
	OP_LEFT   = Op('<') // Retreat the data cursor.
	OP_INC    = Op('+') // Wrap-increment the cell at the cursor.
	OP_DEC    = Op('-') // Wrap-decrement the cell at the cursor.
	OP_OUTPUT = Op('.') // Emit the cell bytes.
	OP_INPUT  = Op(',') // Read one byte into the cell.
	OP_JZ     = Op('[') // Jump past the matching ] if the cell is zero.
	OP_JNZ    = Op(']') // Jump back past the matching [.
)

// ALPHABET is the set of symbols that are opcodes. Everything else is a comment.
const ALPHABET = "><+-.,[]"

var opNames = map[Op]string{
	OP_RIGHT:  "MoveRight",
	OP_LEFT:   "MoveLeft",
	OP_INC:    "Increment",
	OP_DEC:    "Decrement",
	OP_OUTPUT: "Output",
	OP_INPUT:  "Input",
	OP_JZ:     "JumpIfZero",
	OP_JNZ:    "JumpIfNonZero",
}

// Valid returns true if the op is one of the eight opcodes.
func (op Op) Valid() bool {
	_, ok := opNames[op]
	return ok
}

// String returns the source symbol of the op.
func (op Op) String() string {
	return string(rune(op))
}

// Name returns the descriptive name of the op.
func (op Op) Name() string {
	name, ok := opNames[op]
	if !ok {
		return fmt.Sprintf("Op(%#02x)", byte(op))
	}
	return name
}

// Instruction is a single decoded opcode.
type Instruction struct {
	Op   Op
	Dest int // Next instruction index when a jump is taken.
}

// IsJump returns true for the two bracket instructions.
func (in Instruction) IsJump() bool {
	return in.Op == OP_JZ || in.Op == OP_JNZ
}

// String returns the instruction in a form suitable for tracing.
func (in Instruction) String() string {
	if in.IsJump() {
		return fmt.Sprintf("%v{dest: %d}", in.Op.Name(), in.Dest)
	}
	return in.Op.Name()
}
