package main

import (
	"fmt"
	"io"

	"github.com/marcodamonte/cconcepts/variadic/varargs"
)

// demoBoundary packs a call, encodes it, and unpacks the decoded copy. A raw
// va_list is just bytes; the encoded descriptors keep their kinds, so the
// receiving side can still check them.
func demoBoundary(w io.Writer, d *varargs.Dispatcher) error {
	args := []varargs.Arg{varargs.Float(2.71), varargs.Int(100), varargs.Char('z')}

	data, err := varargs.Encode(args)
	if err != nil {
		return err
	}
	decoded, err := varargs.Decode(data)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  encoded %d descriptors, decoded %d: %v\n", len(args), len(decoded), decoded)

	out, err := d.Render("fdc", decoded...)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  decoded \"fdc\" → %s", out)

	_, err = d.Render("dfc", decoded...)
	fmt.Fprintf(w, "  decoded \"dfc\" → %v\n", err)
	return nil
}
