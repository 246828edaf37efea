package main

import (
	"fmt"
	"io"

	"github.com/marcodamonte/cconcepts/funcptr/calc"
)

// demoSelect returns a func from a function, the Go spelling of
// int (*selectOperation(char op))(int, int).
func demoSelect(w io.Writer) {
	calls := []struct {
		a, b int
		op   rune
	}{
		{10, 5, '+'},
		{10, 5, '/'},
		{10, 5, '%'},
		{10, 0, '/'},
	}
	for _, c := range calls {
		fn, err := calc.Select(c.op)
		if err != nil {
			fmt.Fprintf(w, "  %d %c %d: %v\n", c.a, c.op, c.b, err)
			continue
		}
		v, err := fn(c.a, c.b)
		if err != nil {
			fmt.Fprintf(w, "  %d %c %d: %v\n", c.a, c.op, c.b, err)
			continue
		}
		fmt.Fprintf(w, "  %d %c %d = %d\n", c.a, c.op, c.b, v)
	}
}
