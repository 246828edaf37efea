package main

import (
	"fmt"
	"io"
	"os"
)

// Compile-time selection on the argument type: one generic function with a
// type switch stands in for a family of per-type functions picked by a macro.
//
// Run:
//
//	go run ./generic
func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	section(w, "Print[T int | float64 | string]")
	a, b, c := 10, 3.14, "Hello, World!"
	Print(w, a, "Variable a")
	Print(w, b, "Variable b")
	Print(w, c, "Variable c")

	section(w, "Untyped constants take their default type")
	Print(w, 7, "constant 7")
	Print(w, 7.0, "constant 7.0")
	return nil
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}
