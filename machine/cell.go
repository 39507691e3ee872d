package machine

import (
	"encoding/binary"
	"unsafe"

	"lukechampine.com/uint128"
)

// Cell is the value held in a single tape slot.
// All arithmetic wraps at the width of the cell.
type Cell[C any] interface {
	// Inc returns the cell incremented by one.
	Inc() C
	// Dec returns the cell decremented by one.
	Dec() C
	// IsZero returns true if the cell holds zero.
	IsZero() bool
	// FromByte returns a cell holding an input byte, zero extended.
	FromByte(value byte) C
	// AppendBytes appends the big-endian representation of the cell.
	AppendBytes(out []byte) []byte
}

// integer is the set of builtin fixed-width integers.
type integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// Int is a cell backed by a builtin fixed-width integer.
type Int[T integer] struct {
	Value T
}

type (
	U8  = Int[uint8]
	I8  = Int[int8]
	U16 = Int[uint16]
	I16 = Int[int16]
	U32 = Int[uint32]
	I32 = Int[int32]
	U64 = Int[uint64]
	I64 = Int[int64]
)

func (c Int[T]) Inc() Int[T] {
	return Int[T]{Value: c.Value + 1}
}

func (c Int[T]) Dec() Int[T] {
	return Int[T]{Value: c.Value - 1}
}

func (c Int[T]) IsZero() bool {
	return c.Value == 0
}

func (c Int[T]) FromByte(value byte) Int[T] {
	return Int[T]{Value: T(value)}
}

func (c Int[T]) AppendBytes(out []byte) []byte {
	value := uint64(c.Value)
	for n := int(unsafe.Sizeof(c.Value)) - 1; n >= 0; n-- {
		out = append(out, byte(value>>(8*n)))
	}
	return out
}

// U128 is an unsigned 128-bit cell.
type U128 struct {
	Value uint128.Uint128
}

func (c U128) Inc() U128 {
	return U128{Value: c.Value.AddWrap64(1)}
}

func (c U128) Dec() U128 {
	return U128{Value: c.Value.SubWrap64(1)}
}

func (c U128) IsZero() bool {
	return c.Value.IsZero()
}

func (c U128) FromByte(value byte) U128 {
	return U128{Value: uint128.From64(uint64(value))}
}

func (c U128) AppendBytes(out []byte) []byte {
	out = binary.BigEndian.AppendUint64(out, c.Value.Hi)
	return binary.BigEndian.AppendUint64(out, c.Value.Lo)
}

// I128 is a signed 128-bit cell, held as its two's complement bit pattern.
type I128 struct {
	Value uint128.Uint128
}

func (c I128) Inc() I128 {
	return I128{Value: c.Value.AddWrap64(1)}
}

func (c I128) Dec() I128 {
	return I128{Value: c.Value.SubWrap64(1)}
}

func (c I128) IsZero() bool {
	return c.Value.IsZero()
}

func (c I128) FromByte(value byte) I128 {
	return I128{Value: uint128.From64(uint64(value))}
}

func (c I128) AppendBytes(out []byte) []byte {
	return U128(c).AppendBytes(out)
}
