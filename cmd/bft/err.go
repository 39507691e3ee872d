package main

import (
	"errors"

	"github.com/ezrec/bft/translate"
)

var f = translate.From

var (
	ErrUsage = errors.New(f("expected exactly one program file"))
)

// ErrFile locates an error in a named file.
type ErrFile struct {
	Path string
	Err  error
}

func (err *ErrFile) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrFile) Unwrap() error {
	return err.Err
}
