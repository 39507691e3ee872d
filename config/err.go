package config

import (
	"errors"

	"github.com/ezrec/bft/translate"
)

var f = translate.From

var (
	// Setting errors
	ErrNotInteger = errors.New(f("not an integer"))
	ErrRange      = errors.New(f("must be at least 1"))
	ErrLimit      = errors.New(f("limit must not be negative"))
)

// ErrExpression is a numeric setting that failed to evaluate.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err ErrExpression) Error() string {
	return f("'%v' %v", err.Expr, err.Err)
}

func (err ErrExpression) Unwrap() error {
	return err.Err
}

// ErrNewline is an unknown newline mode.
type ErrNewline string

func (err ErrNewline) Error() string {
	return f("'%v' is not a newline mode (always, auto, never)", string(err))
}

// ErrUnknownKey is a settings file key with no matching setting.
type ErrUnknownKey string

func (err ErrUnknownKey) Error() string {
	return f("unknown setting '%v'", string(err))
}
