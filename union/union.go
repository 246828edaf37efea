package main

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Raw is a 4-byte union of an int32 (A) and a byte (B) laid out
// little-endian: B shares storage with the low byte of A.
type Raw [4]byte

func (u *Raw) A() int32     { return int32(binary.LittleEndian.Uint32(u[:])) }
func (u *Raw) SetA(v int32) { binary.LittleEndian.PutUint32(u[:], uint32(v)) }
func (u *Raw) B() byte      { return u[0] }
func (u *Raw) SetB(c byte)  { u[0] = c }

// Pair holds the same two fields without sharing storage.
type Pair struct {
	A int32
	B byte
}

var ErrInactiveField = errors.New("inactive field")

// Field names the live arm of a Variant.
type Field uint8

const (
	NoField Field = iota
	IntField
	CharField
)

func (f Field) String() string {
	switch f {
	case IntField:
		return "int"
	case CharField:
		return "char"
	default:
		return "none"
	}
}

// Variant holds an int32 or a byte and knows which. Reading the field that
// was not last written fails with ErrInactiveField.
type Variant struct {
	field Field
	raw   Raw
}

func (v *Variant) Field() Field { return v.field }

func (v *Variant) SetInt(a int32) {
	v.raw = Raw{}
	v.raw.SetA(a)
	v.field = IntField
}

func (v *Variant) SetChar(c byte) {
	v.raw = Raw{}
	v.raw.SetB(c)
	v.field = CharField
}

func (v *Variant) Int() (int32, error) {
	if v.field != IntField {
		return 0, fmt.Errorf("read int while %s is live: %w", v.field, ErrInactiveField)
	}
	return v.raw.A(), nil
}

func (v *Variant) Char() (byte, error) {
	if v.field != CharField {
		return 0, fmt.Errorf("read char while %s is live: %w", v.field, ErrInactiveField)
	}
	return v.raw.B(), nil
}

func (v Variant) String() string {
	switch v.field {
	case IntField:
		return fmt.Sprintf("Variant{int %d}", v.raw.A())
	case CharField:
		return fmt.Sprintf("Variant{char %q}", v.raw.B())
	default:
		return "Variant{}"
	}
}
