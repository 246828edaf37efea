package main

import (
	"fmt"
	"io"

	"github.com/marcodamonte/cconcepts/funcptr/calc"
)

// demoBasic points one variable at two functions in turn. No & is needed:
// a function name is already a value of its func type.
func demoBasic(w io.Writer) {
	var f calc.Op = calc.Add
	r, _ := f(3, 2)
	fmt.Fprintf(w, "  Result for (3,2) when the function value is calc.Add: %d\n", r)

	f = calc.Subtract
	r, _ = f(3, 2)
	fmt.Fprintf(w, "  Result for (3,2) when the function value is calc.Subtract: %d\n", r)

	// Calling a nil func panics, like calling through a NULL pointer, so
	// check before use.
	var g calc.Op
	fmt.Fprintf(w, "  the zero value of a func type is nil: %v\n", g == nil)
}
