// Package varargs models a variadic call as an ordered sequence of tagged
// values. The caller packs descriptors with Int, Char, Float and Array; the
// callee walks them with a Cursor whose typed reads fail with an error instead
// of reinterpreting the wrong bytes the way C's va_arg does.
package varargs

import "fmt"

// Kind is the semantic type tag carried by every descriptor.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindChar
	KindFloat
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindChar:
		return "char"
	case KindFloat:
		return "float"
	case KindArray:
		return "array"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Arg is one descriptor of a variadic call. The zero value has KindInvalid
// and is rejected by every read.
type Arg struct {
	kind Kind
	i    int
	f    float64
	a    []int
}

// Int packs an integer descriptor.
func Int(v int) Arg { return Arg{kind: KindInt, i: v} }

// Char packs a character descriptor. C promotes char to int through "...";
// here it keeps its own tag.
func Char(r rune) Arg { return Arg{kind: KindChar, i: int(r)} }

// Float packs a floating-point descriptor.
func Float(v float64) Arg { return Arg{kind: KindFloat, f: v} }

// Array packs the pointer half of a pointer+length pair. The slice is not
// copied; the caller owns it for the duration of the call.
func Array(vs []int) Arg { return Arg{kind: KindArray, a: vs} }

// Ints packs each value as an integer descriptor.
func Ints(vs ...int) []Arg {
	out := make([]Arg, len(vs))
	for i, v := range vs {
		out[i] = Int(v)
	}
	return out
}

func (a Arg) Kind() Kind { return a.kind }

// String renders the descriptor for diagnostics, e.g. int(42) or char('a').
func (a Arg) String() string {
	switch a.kind {
	case KindInt:
		return fmt.Sprintf("int(%d)", a.i)
	case KindChar:
		return fmt.Sprintf("char(%q)", rune(a.i))
	case KindFloat:
		return fmt.Sprintf("float(%g)", a.f)
	case KindArray:
		return fmt.Sprintf("array%v", a.a)
	default:
		return a.kind.String()
	}
}
