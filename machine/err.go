package machine

import (
	"errors"

	"github.com/ezrec/bft/translate"
)

var f = translate.From

var (
	// Runtime errors
	ErrRunOff = errors.New(f("tape run off"))
	ErrIo     = errors.New(f("i/o failure"))
)

// ErrTapeRunOff reports the data cursor leaving the tape.
type ErrTapeRunOff struct {
	Ip int // Instruction that moved the cursor.
}

func (err *ErrTapeRunOff) Error() string {
	return f("ip %d: %v", err.Ip, ErrRunOff)
}

func (err *ErrTapeRunOff) Is(target error) bool {
	return target == ErrRunOff
}

// ErrIoFailure reports a failed read or write on the tape channels.
type ErrIoFailure struct {
	Ip  int   // Instruction performing the I/O.
	Err error // Underlying cause; io.EOF at end of input.
}

func (err *ErrIoFailure) Error() string {
	return f("ip %d: %v: %v", err.Ip, ErrIo, err.Err)
}

func (err *ErrIoFailure) Is(target error) bool {
	return target == ErrIo
}

func (err *ErrIoFailure) Unwrap() error {
	return err.Err
}
