// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ezrec/bft/config"
	"github.com/ezrec/bft/emulator"
	bfio "github.com/ezrec/bft/io"
	"github.com/ezrec/bft/program"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix(os.Args[0] + ": ")

	err := run(os.Args[1:], os.Stdin, os.Stdout)
	code := exitCode(err)
	if code != 0 {
		log.Print(err)
	}
	os.Exit(code)
}

// exitCode maps the result of run to the process exit status.
func exitCode(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 1
}

// run interprets one program file with the given standard streams.
func run(args []string, stdin io.Reader, stdout io.Writer) (err error) {
	var settingsPath string
	var cells string
	var cell string
	var newline string
	var extensible bool
	var limit int
	var verbose bool

	flags := flag.NewFlagSet("bft", flag.ContinueOnError)
	flags.StringVar(&settingsPath, "config", "", ".toml settings file")
	flags.BoolVar(&extensible, "extensible", false, "Allow the tape to grow")
	flags.StringVar(&cells, "cells", "", "Tape length, as an expression (default DEFAULT_TAPE_SIZE)")
	flags.StringVar(&cell, "cell", "", "Cell kind: u8, i8, u16, i16, u32, i32, u64, i64, u128, i128 (default u8)")
	flags.StringVar(&newline, "newline", "", "Trailing newline: always, auto, never (default always)")
	flags.IntVar(&limit, "limit", 0, "Stop after this many instructions, 0 for no limit")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")

	err = flags.Parse(args)
	if err != nil {
		return
	}

	if flags.NArg() != 1 {
		flags.Usage()
		err = ErrUsage
		return
	}

	settings := config.Defaults()
	if len(settingsPath) != 0 {
		settings, err = config.Load(settingsPath)
		if err != nil {
			err = &ErrFile{Path: settingsPath, Err: err}
			return
		}
	}

	// Flags given on the command line override the settings file.
	flags.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "extensible":
			settings.Extensible = extensible
		case "cells":
			settings.Cells = config.Expr(cells)
		case "cell":
			settings.Cell = cell
		case "newline":
			settings.Newline = newline
		case "limit":
			settings.Limit = limit
		case "v":
			settings.Verbose = verbose
		}
	})

	err = settings.Validate()
	if err != nil {
		return
	}

	cfg, err := emulatorConfig(settings)
	if err != nil {
		return
	}

	path := flags.Arg(0)
	prog, err := program.FromFile(path)
	if err != nil {
		return
	}

	emu, err := emulator.NewEmulator(cfg, prog)
	if err != nil {
		return
	}

	if wantNewline(settings.Newline, stdout) {
		nw := bfio.NewNewlineWriter(stdout)
		defer func() {
			cerr := nw.Close()
			if err == nil {
				err = cerr
			}
		}()
		stdout = nw
	}

	err = emu.Run(stdin, stdout)
	return
}

// emulatorConfig converts user settings to an emulator configuration.
func emulatorConfig(settings config.Settings) (cfg emulator.Config, err error) {
	cfg = emulator.DefaultConfig()

	cfg.Cells, err = settings.TapeSize()
	if err != nil {
		return
	}

	cfg.Cell, err = emulator.ParseCellKind(settings.Cell)
	if err != nil {
		return
	}

	cfg.Tape = settings.TapeKind()
	cfg.Limit = settings.Limit
	cfg.Verbose = settings.Verbose

	return
}

// wantNewline decides if output must be forced to end on its own line.
func wantNewline(mode string, stdout io.Writer) bool {
	switch mode {
	case config.NEWLINE_ALWAYS:
		return true
	case config.NEWLINE_AUTO:
		file, ok := stdout.(interface{ Fd() uintptr })
		if !ok {
			return false
		}
		return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
	}

	return false
}
