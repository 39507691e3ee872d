package emulator

import (
	"strings"
)

// CellKind selects the width and signedness of the tape cells.
type CellKind int

//go:generate go tool stringer -linecomment -type=CellKind
const (
	CELL_U8   = CellKind(0) // u8
	CELL_I8   = CellKind(1) // i8
	CELL_U16  = CellKind(2) // u16
	CELL_I16  = CellKind(3) // i16
	CELL_U32  = CellKind(4) // u32
	CELL_I32  = CellKind(5) // i32
	CELL_U64  = CellKind(6) // u64
	CELL_I64  = CellKind(7) // i64
	CELL_U128 = CellKind(8) // u128
	CELL_I128 = CellKind(9) // i128
)

// Bits returns the width of the cell in bits.
func (ck CellKind) Bits() int {
	return 8 << (int(ck) / 2)
}

// Signed returns true for the two's complement cell kinds.
func (ck CellKind) Signed() bool {
	return ck%2 == 1
}

// ParseCellKind looks up a cell kind by name, such as "u8" or "i128".
func ParseCellKind(name string) (ck CellKind, err error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for ck = CELL_U8; ck <= CELL_I128; ck++ {
		if ck.String() == name {
			return
		}
	}

	err = ErrCellKind(name)
	return
}
