// Package config loads interpreter settings from TOML files and evaluates
// numeric settings written as starlark expressions.
package config

import (
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/bft/machine"
)

// Newline modes for the trailing newline on output.
const (
	NEWLINE_ALWAYS = "always" // Always end output on its own line.
	NEWLINE_AUTO   = "auto"   // Only when the output is a terminal.
	NEWLINE_NEVER  = "never"  // Leave output untouched.
)

// Expr is a numeric setting, written either as a TOML integer or as a
// string holding an expression for Eval.
type Expr string

// UnmarshalTOML accepts integers and strings.
func (e *Expr) UnmarshalTOML(data any) (err error) {
	switch v := data.(type) {
	case string:
		*e = Expr(v)
	case int64:
		*e = Expr(strconv.FormatInt(v, 10))
	default:
		err = ErrNotInteger
	}
	return
}

// Settings are the user-selectable interpreter options.
type Settings struct {
	Cells      Expr   `toml:"cells"`      // Tape length expression.
	Extensible bool   `toml:"extensible"` // Growable tape.
	Cell       string `toml:"cell"`       // Cell kind name.
	Newline    string `toml:"newline"`    // Newline mode.
	Limit      int    `toml:"limit"`      // Step limit, 0 for none.
	Verbose    bool   `toml:"verbose"`    // Trace execution.
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Cells:   Expr(strconv.Itoa(machine.DEFAULT_TAPE_SIZE)),
		Cell:    "u8",
		Newline: NEWLINE_ALWAYS,
	}
}

// Load reads settings from a TOML file over the defaults.
func Load(path string) (settings Settings, err error) {
	settings = Defaults()

	md, err := toml.DecodeFile(path, &settings)
	if err != nil {
		return
	}

	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		err = ErrUnknownKey(undecoded[0].String())
		return
	}

	err = settings.Validate()
	return
}

// Validate checks the enumerated settings.
func (s Settings) Validate() (err error) {
	switch s.Newline {
	case NEWLINE_ALWAYS, NEWLINE_AUTO, NEWLINE_NEVER:
	default:
		err = ErrNewline(s.Newline)
		return
	}

	if s.Limit < 0 {
		err = ErrLimit
		return
	}

	return
}

// TapeKind returns the tape growth policy.
func (s Settings) TapeKind() machine.TapeKind {
	if s.Extensible {
		return machine.GROWABLE
	}
	return machine.FIXED_SIZE
}

// TapeSize evaluates the cells expression.
func (s Settings) TapeSize() (int, error) {
	return Eval(string(s.Cells))
}
