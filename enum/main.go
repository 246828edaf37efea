package main

import (
	"fmt"
	"io"
	"os"

	"github.com/marcodamonte/cconcepts/formats/cfmt"
)

// Enumerations: iota constants, a String method, and what happens to values
// that name no constant.
//
// Run:
//
//	go run ./enum
func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	section(w, "enum Day — iota constants")
	demoToday(w, Wednesday)

	section(w, "switch over every day")
	for d := Sunday; d <= Saturday; d++ {
		cfmt.Fprintf(w, "  %i %-9s weekend=%s\n", int(d), d.String(), fmt.Sprint(d.Weekend()))
	}

	section(w, "Values outside the enumeration")
	for _, d := range []Day{-1, 7, 42} {
		fmt.Fprintf(w, "  Day(%d): ", int(d))
		demoToday(w, d)
	}

	section(w, "ParseDay")
	for _, name := range []string{"friday", "Sunday", "Funday"} {
		d, err := ParseDay(name)
		if err != nil {
			fmt.Fprintf(w, "  %q → %v\n", name, err)
			continue
		}
		fmt.Fprintf(w, "  %q → %s (%d)\n", name, d, int(d))
	}
	return nil
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}

func demoToday(w io.Writer, today Day) {
	if !today.Valid() {
		io.WriteString(w, "Invalid day.\n")
		return
	}
	cfmt.Fprintf(w, "Today is %s.\nThe stored value to enum is %i\n", today.String(), int(today))
}
