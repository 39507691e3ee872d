// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"io"
	"log"

	bfio "github.com/ezrec/bft/io"
	"github.com/ezrec/bft/machine"
	"github.com/ezrec/bft/program"
)

// runner is the width-independent view of a machine.Machine.
type runner interface {
	Step(tape *bfio.Tape) (done bool, err error)
	Ip() int
	Dp() int
	Len() int
}

// Config selects the machine an emulator builds.
type Config struct {
	Cells   int              // Initial tape length, at least 1.
	Tape    machine.TapeKind // Fixed or growable tape.
	Cell    CellKind         // Cell width and signedness.
	Limit   int              // Maximum instructions to execute, 0 for no limit.
	Verbose bool             // If set, logs every executed instruction.
}

// DefaultConfig returns the conventional 30000 cell, 8-bit, fixed tape.
func DefaultConfig() Config {
	return Config{
		Cells: machine.DEFAULT_TAPE_SIZE,
		Tape:  machine.FIXED_SIZE,
		Cell:  CELL_U8,
	}
}

// Emulator state. Program + machine + tape channels.
type Emulator struct {
	Config
	Program *program.Program // Reference to the running program.
	Tape    bfio.Tape        // Input and output channels.

	vm    runner
	ticks int
}

// newMachine instantiates the machine for one cell type.
func newMachine[C machine.Cell[C]](cfg Config, prog *program.Program) runner {
	return machine.New[C](cfg.Cells, cfg.Tape, prog)
}

// NewEmulator creates a new emulator for a loaded program.
func NewEmulator(cfg Config, prog *program.Program) (emu *Emulator, err error) {
	if cfg.Cells < 1 {
		err = ErrTapeSize
		return
	}

	emu = &Emulator{
		Config:  cfg,
		Program: prog,
	}

	switch cfg.Cell {
	case CELL_U8:
		emu.vm = newMachine[machine.U8](cfg, prog)
	case CELL_I8:
		emu.vm = newMachine[machine.I8](cfg, prog)
	case CELL_U16:
		emu.vm = newMachine[machine.U16](cfg, prog)
	case CELL_I16:
		emu.vm = newMachine[machine.I16](cfg, prog)
	case CELL_U32:
		emu.vm = newMachine[machine.U32](cfg, prog)
	case CELL_I32:
		emu.vm = newMachine[machine.I32](cfg, prog)
	case CELL_U64:
		emu.vm = newMachine[machine.U64](cfg, prog)
	case CELL_I64:
		emu.vm = newMachine[machine.I64](cfg, prog)
	case CELL_U128:
		emu.vm = newMachine[machine.U128](cfg, prog)
	case CELL_I128:
		emu.vm = newMachine[machine.I128](cfg, prog)
	default:
		emu = nil
		err = ErrCellKind(cfg.Cell.String())
		return
	}

	if cfg.Verbose {
		sign := "unsigned"
		if cfg.Cell.Signed() {
			sign = "signed"
		}
		log.Printf("emulator: %v, %d instructions, %d %d-bit %v cells, %v tape",
			prog.Name(), prog.Len(), cfg.Cells, cfg.Cell.Bits(), sign, cfg.Tape)
	}

	return
}

// Ticks returns the count of instructions executed.
func (emu *Emulator) Ticks() int {
	return emu.ticks
}

// Ip returns the current instruction pointer.
func (emu *Emulator) Ip() int {
	return emu.vm.Ip()
}

// Dp returns the current data pointer.
func (emu *Emulator) Dp() int {
	return emu.vm.Dp()
}

// TapeLen returns the current tape length.
func (emu *Emulator) TapeLen() int {
	return emu.vm.Len()
}

// Location returns the source location of the current instruction.
func (emu *Emulator) Location() (loc program.SourceLocation, ok bool) {
	return emu.Program.Location(emu.vm.Ip())
}

// Tick performs a single instruction of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	loc, _ := emu.Location()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Name: emu.Program.Name(), Location: loc, Err: err}
		}
	}()

	if emu.vm.Ip() >= emu.Program.Len() {
		done = true
		return
	}

	if emu.Limit > 0 && emu.ticks >= emu.Limit {
		err = ErrStepLimit
		return
	}

	if emu.Verbose {
		ip := emu.vm.Ip()
		log.Printf("emulator: %05d: %v dp=%d", ip, emu.Program.At(ip), emu.vm.Dp())
	}

	done, err = emu.vm.Step(&emu.Tape)
	if err != nil {
		return
	}

	emu.ticks++
	return
}

// Run attaches the tape channels and ticks until the program completes.
func (emu *Emulator) Run(in io.Reader, out io.Writer) (err error) {
	emu.Tape.Input = in
	emu.Tape.Output = out

	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	if emu.Verbose {
		log.Printf("emulator: %d ticks, %d bytes in, %d bytes out",
			emu.ticks, emu.Tape.Read(), emu.Tape.Written())
	}

	return
}
