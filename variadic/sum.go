package main

import (
	"fmt"
	"io"

	"github.com/marcodamonte/cconcepts/variadic/varargs"
)

// demoSum reproduces sum(3, 2, 3, 4) and sum(4, 5, 10, 15, 20), then breaks
// the count: in C that reads past the packed values, here it is an error.
func demoSum(w io.Writer) {
	calls := []struct {
		label string
		n     int
		vals  []int
	}{
		{"2, 3, 4", 3, []int{2, 3, 4}},
		{"5, 10, 15, 20", 4, []int{5, 10, 15, 20}},
	}
	for _, c := range calls {
		total, err := varargs.Sum(c.n, varargs.Ints(c.vals...)...)
		if err != nil {
			fmt.Fprintf(w, "  Sum of %s: %v\n", c.label, err)
			continue
		}
		fmt.Fprintf(w, "  Sum of %s: %d\n", c.label, total)
	}

	// ── Count disagrees with the packed values ───────────────────────────────
	fmt.Fprintln(w, "\n  count larger than the values supplied:")
	_, err := varargs.Sum(4, varargs.Ints(2, 3, 4)...)
	fmt.Fprintf(w, "  sum(4, 2, 3, 4) → %v\n", err)

	fmt.Fprintln(w, "\n  count smaller than the values supplied:")
	_, err = varargs.Sum(2, varargs.Ints(2, 3, 4)...)
	fmt.Fprintf(w, "  sum(2, 2, 3, 4) → %v\n", err)

	// ── The Go idiom ─────────────────────────────────────────────────────────
	// With ...int the slice carries its own length and element type, so
	// neither mistake above can be written.
	fmt.Fprintf(w, "\n  SumInts(2, 3, 4) = %d  (count and type fixed by the compiler)\n",
		varargs.SumInts(2, 3, 4))
}
