package main

import (
	"fmt"
	"io"
	"os"
	"unsafe"

	"github.com/marcodamonte/cconcepts/formats/cfmt"
	"github.com/marcodamonte/cconcepts/memory/flexarray"
)

// A header followed by a variable number of elements, first as the C layout
// would look in Go, then as an owned, bounds-checked container.
//
// Run:
//
//	go run ./memory
func main() {
	if err := run(os.Stdout, 6); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// header mirrors struct { int length; int array[]; }.
type header struct {
	length int32
	array  [0]int32
}

func run(w io.Writer, n int) error {
	section(w, "Sizes")
	cfmt.Fprintf(w, "The size of an int32 is %zu\n", unsafe.Sizeof(int32(0)))
	cfmt.Fprintf(w, "The size of header, an int32 and a zero-length array, is %zu\n", unsafe.Sizeof(header{}))
	cfmt.Fprintf(w, "The size of a slice header is %zu\n", unsafe.Sizeof([]int(nil)))

	section(w, "FlexArray — fill with i*i")
	a, err := flexarray.New(n)
	if err != nil {
		return err
	}
	for i := 0; i < a.Len(); i++ {
		if err := a.Set(i, i*i); err != nil {
			return err
		}
		v, _ := a.At(i)
		cfmt.Fprintf(w, "%d ", v)
	}
	io.WriteString(w, "\n")

	section(w, "FlexArray — reading past the end")
	if _, err := a.At(a.Len()); err != nil {
		fmt.Fprintf(w, "At(%d): %v\n", a.Len(), err)
	}
	return nil
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}
