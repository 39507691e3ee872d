package program

import (
	"errors"

	"github.com/ezrec/bft/translate"
)

var f = translate.From

var (
	// Bracket balance errors
	ErrUnopenedBracket = errors.New(f("dangling close bracket"))
	ErrUnclosedBracket = errors.New(f("dangling open bracket"))
)

// ErrParse locates a loader failure in the named source.
type ErrParse struct {
	Name     string         // Display name of the source.
	Location SourceLocation // Location of the offending bracket.
	Err      error          // ErrUnopenedBracket or ErrUnclosedBracket.
}

func (err *ErrParse) Error() string {
	return f("Error in input file %v, %v found at %v", err.Name, err.Err, err.Location)
}

func (err *ErrParse) Unwrap() error {
	return err.Err
}
