package emulator

import (
	"errors"

	"github.com/ezrec/bft/program"
	"github.com/ezrec/bft/translate"
)

var f = translate.From

var (
	// Emulator errors
	ErrStepLimit = errors.New(f("step limit reached"))
	ErrTapeSize  = errors.New(f("tape size must be at least 1"))
)

// ErrCellKind is an unknown cell kind name.
type ErrCellKind string

func (err ErrCellKind) Error() string {
	return f("'%v' is not a cell kind", string(err))
}

// ErrRuntime indicates the source location of a runtime error.
type ErrRuntime struct {
	Name     string
	Location program.SourceLocation
	Err      error
}

func (err *ErrRuntime) Error() string {
	return f("%v: %v: %v", err.Name, err.Location, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
