// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"io"

	bfio "github.com/ezrec/bft/io"
	"github.com/ezrec/bft/program"
)

// DEFAULT_TAPE_SIZE is the conventional brainfuck tape length.
const DEFAULT_TAPE_SIZE = 30000

// TapeKind selects whether the tape may grow past its initial length.
type TapeKind int

//go:generate go tool stringer -linecomment -type=TapeKind
const (
	FIXED_SIZE = TapeKind(0) // fixed
	GROWABLE   = TapeKind(1) // growable
)

// Machine executes a program against a tape of cells.
type Machine[C Cell[C]] struct {
	program *program.Program
	tape    []C
	canGrow bool

	dp int // Data cursor.
	ip int // Instruction cursor.
}

// New creates a machine with a tape of size cells.
// The program must outlive the machine; it is only read.
func New[C Cell[C]](size int, kind TapeKind, prog *program.Program) *Machine[C] {
	if size < 1 {
		panic(f("tape size %d must be at least 1", size))
	}

	return &Machine[C]{
		program: prog,
		tape:    make([]C, size),
		canGrow: kind == GROWABLE,
	}
}

// Program returns the program the machine executes.
func (m *Machine[C]) Program() *program.Program {
	return m.program
}

// Ip returns the index of the next instruction.
func (m *Machine[C]) Ip() int {
	return m.ip
}

// Dp returns the index of the current tape cell.
func (m *Machine[C]) Dp() int {
	return m.dp
}

// Len returns the current tape length.
func (m *Machine[C]) Len() int {
	return len(m.tape)
}

// Cell returns the tape cell at index n.
func (m *Machine[C]) Cell(n int) C {
	return m.tape[n]
}

// Done returns true once the instruction cursor has run past the program.
func (m *Machine[C]) Done() bool {
	return m.ip >= m.program.Len()
}

// Run executes the program until it runs past its last instruction or fails.
// Output already written before a failure is left in place.
func (m *Machine[C]) Run(in io.Reader, out io.Writer) (err error) {
	tape := &bfio.Tape{Input: in, Output: out}

	for done := false; !done; {
		done, err = m.Step(tape)
		if err != nil {
			return
		}
	}

	return
}

// Step executes a single instruction.
// done is true when there is no instruction left to execute.
func (m *Machine[C]) Step(tape *bfio.Tape) (done bool, err error) {
	if m.Done() {
		done = true
		return
	}

	next, err := m.execute(m.program.At(m.ip), tape)
	if err != nil {
		return
	}

	m.ip = next
	done = m.Done()
	return
}

// execute performs one instruction and returns the next instruction index.
func (m *Machine[C]) execute(in program.Instruction, tape *bfio.Tape) (next int, err error) {
	next = m.ip + 1

	switch in.Op {
	case program.OP_RIGHT:
		err = m.moveRight()
	case program.OP_LEFT:
		err = m.moveLeft()
	case program.OP_INC:
		m.tape[m.dp] = m.tape[m.dp].Inc()
	case program.OP_DEC:
		m.tape[m.dp] = m.tape[m.dp].Dec()
	case program.OP_OUTPUT:
		err = m.output(tape)
	case program.OP_INPUT:
		err = m.input(tape)
	case program.OP_JZ:
		if m.tape[m.dp].IsZero() {
			next = in.Dest
		}
	case program.OP_JNZ:
		// Dest is past the matching [, so the loop test is folded in here.
		if !m.tape[m.dp].IsZero() {
			next = in.Dest
		}
	default:
		panic(f("ip %d: invalid opcode %v", m.ip, in.Op))
	}

	return
}

// moveRight advances the data cursor, growing the tape if permitted.
// On failure the cursor is unchanged.
func (m *Machine[C]) moveRight() (err error) {
	if m.dp+1 < len(m.tape) {
		m.dp++
		return
	}

	if !m.canGrow {
		err = &ErrTapeRunOff{Ip: m.ip}
		return
	}

	m.tape = append(m.tape, make([]C, len(m.tape))...)
	m.dp++
	return
}

// moveLeft retreats the data cursor. On failure the cursor is unchanged.
func (m *Machine[C]) moveLeft() (err error) {
	if m.dp == 0 {
		err = &ErrTapeRunOff{Ip: m.ip}
		return
	}

	m.dp--
	return
}

func (m *Machine[C]) output(tape *bfio.Tape) (err error) {
	var buf [16]byte
	err = tape.Write(m.tape[m.dp].AppendBytes(buf[:0]))
	if err != nil {
		err = &ErrIoFailure{Ip: m.ip, Err: err}
	}
	return
}

func (m *Machine[C]) input(tape *bfio.Tape) (err error) {
	value, err := tape.ReadByte()
	if err != nil {
		err = &ErrIoFailure{Ip: m.ip, Err: err}
		return
	}

	m.tape[m.dp] = m.tape[m.dp].FromByte(value)
	return
}
