package main

import (
	"fmt"
	"io"
	"math"

	"github.com/marcodamonte/cconcepts/formats/cfmt"
)

// demoFloats prints one double under every floating-point conversion.
//
//	%f %F  fixed point, 6 decimals; %F only differs for inf/nan (uppercase)
//	%e %E  scientific, 6 decimals
//	%g %G  the shorter of %e and %f at 6 significant digits
func demoFloats(w io.Writer) {
	num := 12345.6789
	for _, verb := range []string{"%f", "%F", "%e", "%E", "%g", "%G"} {
		fmt.Fprintf(w, "  Using %s: %s\n", verb, cfmt.Sprintf(verb, num))
	}

	// Go's own %g picks the shortest representation that round-trips, not
	// six significant digits.
	fmt.Fprintf(w, "\n  Go fmt %%g: %g\n", num)

	// ── Where %f and %F differ ───────────────────────────────────────────────
	fmt.Fprintln(w, "\n  non-finite values:")
	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		fmt.Fprintf(w, "  %s\n", cfmt.Sprintf("%%f → %-5f %%F → %-5F %%g → %-5g %%G → %G", v, v, v, v))
	}
}
