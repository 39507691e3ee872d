package io

import (
	"errors"

	"github.com/ezrec/bft/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrNoInput  = errors.New(f("no input channel"))
	ErrNoOutput = errors.New(f("no output channel"))
	ErrClosed   = errors.New(f("writer closed"))
)
