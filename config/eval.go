package config

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/bft/machine"
)

// Predeclared names usable in numeric expressions.
var predeclared = starlark.StringDict{
	"DEFAULT_TAPE_SIZE": starlark.MakeInt(machine.DEFAULT_TAPE_SIZE),
	"KB":                starlark.MakeInt(1 << 10),
	"MB":                starlark.MakeInt(1 << 20),
}

// Eval evaluates a positive integer expression, such as "64 * KB".
func Eval(expr string) (value int, err error) {
	thread := starlark.Thread{Name: "eval"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, predeclared)
	if err != nil {
		err = ErrExpression{Expr: expr, Err: err}
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrExpression{Expr: expr, Err: ErrNotInteger}
		return
	}

	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 1 || st_int64 > int64(maxInt) {
		err = ErrExpression{Expr: expr, Err: ErrRange}
		return
	}

	value = int(st_int64)
	return
}

const maxInt = int(^uint(0) >> 1)
