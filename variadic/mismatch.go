package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/marcodamonte/cconcepts/variadic/varargs"
)

// sumAsFloats is the broken callee: the caller packs ints, this side asks
// for doubles. The cursor refuses the first read instead of handing back
// reinterpreted bits.
func sumAsFloats(w io.Writer, n int, args ...varargs.Arg) (float64, error) {
	c := varargs.NewCursor(args...)
	total := 0.0
	for i := 0; i < n; i++ {
		v, err := c.Float()
		if err != nil {
			return 0, fmt.Errorf("variable number %d: %w", i, err)
		}
		fmt.Fprintf(w, "  Hello variable number %d: %f\n", i, v)
		total += v
	}
	return total, c.Done()
}

func demoMismatch(w io.Writer) {
	for _, vals := range [][]int{{2, 3, 4}, {5, 10, 15, 20}} {
		_, err := sumAsFloats(w, len(vals), varargs.Ints(vals...)...)
		fmt.Fprintf(w, "  sum%v as doubles → %v\n", vals, err)
		fmt.Fprintf(w, "    errors.Is(err, ErrTypeMismatch): %v\n", errors.Is(err, varargs.ErrTypeMismatch))
	}

	// Packed as doubles, the same callee is fine.
	total, err := sumAsFloats(w, 2, varargs.Float(1.5), varargs.Float(2.25))
	fmt.Fprintf(w, "  sum(1.5, 2.25) as doubles → %g, err=%v\n", total, err)
}
