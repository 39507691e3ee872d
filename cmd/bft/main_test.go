package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/bft/config"
	"github.com/ezrec/bft/emulator"
	"github.com/ezrec/bft/machine"
	"github.com/ezrec/bft/program"
)

func writeFile(t *testing.T, name string, text string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	path := writeFile(t, "shout.bf", "Subtract twice the first from the second ,>,<[->--<]>.")

	output := &bytes.Buffer{}
	err := run([]string{path}, strings.NewReader("\x01x"), output)
	assert.NoError(err)
	assert.Equal("v\n", output.String())
}

func TestRun_Newline(t *testing.T) {
	assert := assert.New(t)

	path := writeFile(t, "a.bf", ",.")

	table := [](struct {
		mode     string
		expected string
	}){
		{"always", "A\n"},
		{"never", "A"},
		{"auto", "A"},
	}

	for _, entry := range table {
		output := &bytes.Buffer{}
		err := run([]string{"-newline", entry.mode, path}, strings.NewReader("A"), output)
		assert.NoError(err, entry.mode)
		assert.Equal(entry.expected, output.String(), entry.mode)
	}

	err := run([]string{"-newline", "maybe", path}, strings.NewReader("A"), &bytes.Buffer{})
	assert.Equal(config.ErrNewline("maybe"), err)
}

func TestRun_Errors(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	err := run([]string{}, nil, output)
	assert.Equal(ErrUsage, err)

	err = run([]string{writeFile(t, "bad.bf", "+[")}, nil, output)
	assert.ErrorIs(err, program.ErrUnclosedBracket)

	err = run([]string{"-cells", "0", writeFile(t, "ok.bf", "+")}, nil, output)
	assert.ErrorIs(err, config.ErrRange)

	err = run([]string{"-cell", "u7", writeFile(t, "ok.bf", "+")}, nil, output)
	assert.Equal(emulator.ErrCellKind("u7"), err)

	err = run([]string{filepath.Join(t.TempDir(), "missing.bf")}, nil, output)
	assert.ErrorIs(err, os.ErrNotExist)

	assert.Equal(0, output.Len())
}

func TestRun_RuntimeError(t *testing.T) {
	assert := assert.New(t)

	path := writeFile(t, "runoff.bf", "+.>>")

	output := &bytes.Buffer{}
	err := run([]string{"-cells", "2", path}, nil, output)
	assert.ErrorIs(err, machine.ErrRunOff)

	var rterr *emulator.ErrRuntime
	assert.True(errors.As(err, &rterr))

	// Partial output is kept, and still ends on its own line.
	assert.Equal("\x01\n", output.String())

	output.Reset()
	err = run([]string{"-cells", "1", "-extensible", path}, nil, output)
	assert.NoError(err)
	assert.Equal("\x01\n", output.String())
}

func TestRun_Settings(t *testing.T) {
	assert := assert.New(t)

	settings := writeFile(t, "bft.toml", `
cells = "KB"
cell = "u16"
newline = "never"
`)
	path := writeFile(t, "wide.bf", "-.")

	output := &bytes.Buffer{}
	err := run([]string{"-config", settings, path}, nil, output)
	assert.NoError(err)
	assert.Equal([]byte{0xFF, 0xFF}, output.Bytes())

	// Flags override the settings file.
	output.Reset()
	err = run([]string{"-config", settings, "-cell", "u8", path}, nil, output)
	assert.NoError(err)
	assert.Equal([]byte{0xFF}, output.Bytes())

	err = run([]string{"-config", writeFile(t, "bad.toml", "cells = [")}, nil, output)
	assert.Equal(ErrUsage, err)

	err = run([]string{"-config", writeFile(t, "bad.toml", "cells = ["), path}, nil, output)
	var ferr *ErrFile
	assert.True(errors.As(err, &ferr))
}

func TestRun_Limit(t *testing.T) {
	assert := assert.New(t)

	path := writeFile(t, "forever.bf", "+[]")

	err := run([]string{"-limit", "50", "-newline", "never", path}, nil, &bytes.Buffer{})
	assert.ErrorIs(err, emulator.ErrStepLimit)
}

func TestEmulatorConfig(t *testing.T) {
	assert := assert.New(t)

	settings := config.Defaults()
	settings.Cells = "2 * KB"
	settings.Cell = "I128"
	settings.Extensible = true

	cfg, err := emulatorConfig(settings)
	assert.NoError(err)
	assert.Equal(2048, cfg.Cells)
	assert.Equal(emulator.CELL_I128, cfg.Cell)
	assert.Equal(machine.GROWABLE, cfg.Tape)
}

func TestRun_Help(t *testing.T) {
	assert := assert.New(t)

	err := run([]string{"-h"}, nil, &bytes.Buffer{})
	assert.ErrorIs(err, flag.ErrHelp)
	assert.Equal(0, exitCode(err))
}

func TestExitCode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, exitCode(nil))
	assert.Equal(0, exitCode(flag.ErrHelp))
	assert.Equal(0, exitCode(fmt.Errorf("bft: %w", flag.ErrHelp)))
	assert.Equal(1, exitCode(ErrUsage))
	assert.Equal(1, exitCode(&ErrFile{Path: "bft.toml", Err: os.ErrNotExist}))
}
