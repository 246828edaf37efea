package main

import (
	"fmt"
	"io"
	"os"
)

// What a closure sees when the variable changes after the closure is made.
// Go closures always capture variables; capturing a value means copying it
// into a fresh variable first.
//
// Run:
//
//	go run ./closure
func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	section(w, "Capture by value — [x]")
	fmt.Fprintf(w, "x inside closure: %d\n", byValue()())

	section(w, "Capture by reference — [&x]")
	fmt.Fprintf(w, "x inside closure: %d\n", byReference()())

	section(w, "Loop variables are per iteration (Go 1.22+)")
	var fs []func() int
	for i := range 3 {
		fs = append(fs, func() int { return i })
	}
	for _, f := range fs {
		fmt.Fprintf(w, "%d ", f())
	}
	io.WriteString(w, "\n")

	section(w, "State kept between calls")
	next := counter()
	next()
	next()
	fmt.Fprintf(w, "third call: %d\n", next())
	return nil
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}

// byValue copies x before capturing it, so the later assignment is not seen.
func byValue() func() int {
	x := 10
	captured := x
	f := func() int { return captured }
	x = 20
	return f
}

// byReference captures x itself.
func byReference() func() int {
	x := 10
	f := func() int { return x }
	x = 20
	return f
}

func counter() func() int {
	n := 0
	return func() int {
		n++
		return n
	}
}
