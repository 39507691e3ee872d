package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/bft/machine"
)

func writeSettings(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "bft.toml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	assert := assert.New(t)

	s := Defaults()
	assert.NoError(s.Validate())
	assert.Equal(machine.FIXED_SIZE, s.TapeKind())

	size, err := s.TapeSize()
	assert.NoError(err)
	assert.Equal(machine.DEFAULT_TAPE_SIZE, size)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := writeSettings(t, `
cells = "4 * KB"
extensible = true
cell = "u16"
newline = "auto"
limit = 1000000
`)

	s, err := Load(path)
	assert.NoError(err)
	assert.Equal(Expr("4 * KB"), s.Cells)
	assert.True(s.Extensible)
	assert.Equal(machine.GROWABLE, s.TapeKind())
	assert.Equal("u16", s.Cell)
	assert.Equal(NEWLINE_AUTO, s.Newline)
	assert.Equal(1000000, s.Limit)
	assert.False(s.Verbose)

	size, err := s.TapeSize()
	assert.NoError(err)
	assert.Equal(4096, size)
}

func TestLoad_IntegerCells(t *testing.T) {
	assert := assert.New(t)

	s, err := Load(writeSettings(t, "cells = 512\n"))
	assert.NoError(err)
	assert.Equal(Expr("512"), s.Cells)

	// Unset keys keep their defaults.
	assert.Equal("u8", s.Cell)
	assert.Equal(NEWLINE_ALWAYS, s.Newline)
}

func TestLoad_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(writeSettings(t, "colour = \"blue\"\n"))
	assert.Equal(ErrUnknownKey("colour"), err)

	_, err = Load(writeSettings(t, "newline = \"sometimes\"\n"))
	assert.Equal(ErrNewline("sometimes"), err)

	_, err = Load(writeSettings(t, "limit = -1\n"))
	assert.Equal(ErrLimit, err)

	_, err = Load(writeSettings(t, "cells = true\n"))
	assert.Error(err)

	_, err = Load(writeSettings(t, "cells = [\n"))
	assert.Error(err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestEval(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		expr  string
		value int
	}){
		{"1", 1},
		{"30000", 30000},
		{"DEFAULT_TAPE_SIZE", machine.DEFAULT_TAPE_SIZE},
		{"64 * KB", 65536},
		{"2 * MB + 1", 2*1024*1024 + 1},
		{"1 << 12", 4096},
		{"100 // 3", 33},
	}

	for _, entry := range table {
		value, err := Eval(entry.expr)
		assert.NoError(err, entry.expr)
		assert.Equal(entry.value, value, entry.expr)
	}
}

func TestEval_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		expr string
		err  error
	}){
		{"0", ErrRange},
		{"-5", ErrRange},
		{"1 << 80", ErrRange},
		{"1.5", ErrNotInteger},
		{"'many'", ErrNotInteger},
		{"100 / 3", ErrNotInteger},
	}

	for _, entry := range table {
		_, err := Eval(entry.expr)
		assert.ErrorIs(err, entry.err, entry.expr)
	}

	_, err := Eval("UNDEFINED + 1")
	var experr ErrExpression
	if assert.ErrorAs(err, &experr) {
		assert.Equal("UNDEFINED + 1", experr.Expr)
	}

	_, err = Eval("(")
	assert.Error(err)
}
