package main

import (
	"fmt"
	"io"
	"os"
	"unsafe"
)

// Overlapping versus side-by-side storage. Go has no union type, so the
// overlap is spelled out as a 4-byte buffer read through two views, and the
// safe alternative is a variant that remembers which field is live.
//
// Run:
//
//	go run ./union
func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	section(w, "union — one storage, two views")
	var u Raw
	u.SetA(3)
	fmt.Fprintf(w, "1st a=%d b=%q\n", u.A(), u.B())
	u.SetB('c')
	fmt.Fprintf(w, "2nd a=%d b=%q   (writing b overwrote the low byte of a)\n", u.A(), u.B())
	fmt.Fprintf(w, "bytes % x, size %d\n", u[:], unsafe.Sizeof(u))

	section(w, "struct — separate storage")
	var s Pair
	s.A = 3
	fmt.Fprintf(w, "1st a=%d b=%q\n", s.A, s.B)
	s.B = 'c'
	fmt.Fprintf(w, "2nd a=%d b=%q   (a is untouched)\n", s.A, s.B)
	fmt.Fprintf(w, "size %d (int32 + byte, padded to 4-byte alignment)\n", unsafe.Sizeof(s))

	section(w, "Variant — tagged union")
	var v Variant
	fmt.Fprintf(w, "zero value: %v\n", v)
	v.SetInt(3)
	report(w, &v)
	v.SetChar('c')
	report(w, &v)
	return nil
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}

func report(w io.Writer, v *Variant) {
	fmt.Fprintf(w, "%v\n", v)
	if a, err := v.Int(); err != nil {
		fmt.Fprintf(w, "  Int():  %v\n", err)
	} else {
		fmt.Fprintf(w, "  Int():  %d\n", a)
	}
	if b, err := v.Char(); err != nil {
		fmt.Fprintf(w, "  Char(): %v\n", err)
	} else {
		fmt.Fprintf(w, "  Char(): %q\n", b)
	}
}
