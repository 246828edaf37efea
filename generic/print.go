package main

import (
	"io"

	"github.com/marcodamonte/cconcepts/formats/cfmt"
)

// Printable lists the argument types Print accepts.
type Printable interface {
	int | float64 | string
}

// Print writes x with its label and C type name. Any other argument type is
// a compile error.
func Print[T Printable](w io.Writer, x T, label string) {
	switch v := any(x).(type) {
	case int:
		cfmt.Fprintf(w, "%s: int: %d\n", label, v)
	case float64:
		cfmt.Fprintf(w, "%s: double: %f\n", label, v)
	case string:
		cfmt.Fprintf(w, "%s: string: %s\n", label, v)
	}
}
