package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/marcodamonte/cconcepts/variadic/varargs"
)

// demoPrintAll walks format strings whose tags are d (int), c (char),
// f (double) and A (array followed by its length).
func demoPrintAll(w io.Writer, d *varargs.Dispatcher) error {
	arr := []int{1, 2, 3, 4}

	calls := []struct {
		label  string
		format string
		args   []varargs.Arg
	}{
		{
			`"dcAdf", 42, 'a', arr, 4, 7, 3.14`, "dcAdf",
			[]varargs.Arg{varargs.Int(42), varargs.Char('a'), varargs.Array(arr), varargs.Int(len(arr)), varargs.Int(7), varargs.Float(3.14)},
		},
		{
			`"fdc", 2.71, 100, 'z'`, "fdc",
			[]varargs.Arg{varargs.Float(2.71), varargs.Int(100), varargs.Char('z')},
		},
	}
	for _, c := range calls {
		sig, err := varargs.Compile(c.format, d.Policy)
		if err != nil {
			return err
		}
		out, err := d.Render(c.format, c.args...)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  print_all_args(%s)  consumes %d descriptors\n", c.label, sig.Len())
		fmt.Fprintf(w, "    %s", out)
	}

	// ── Unknown tags ─────────────────────────────────────────────────────────
	fmt.Fprintf(w, "\n  unknown tags (policy %s):\n", d.Policy)
	out, err := d.Render("d?c", varargs.Int(1), varargs.Char('x'))
	switch {
	case errors.Is(err, varargs.ErrUnknownTag):
		fmt.Fprintf(w, "  print_all_args(\"d?c\", 1, 'x') → %v\n", err)
	case err != nil:
		return err
	default:
		fmt.Fprintf(w, "  print_all_args(\"d?c\", 1, 'x') → %s", out)
	}

	// ── The call as first written ────────────────────────────────────────────
	// Six slots, five values: the second d lands on 3.14. In C that prints
	// garbage for both the d and the f; here the call is refused up front.
	fmt.Fprintln(w, "\n  \"dcAdf\" with only five descriptors:")
	_, err = d.Render("dcAdf",
		varargs.Int(42), varargs.Char('a'), varargs.Array(arr), varargs.Int(len(arr)), varargs.Float(3.14))
	var me *varargs.MismatchError
	if errors.As(err, &me) {
		fmt.Fprintf(w, "  refused at descriptor %d: the format wants %s, the caller packed %s\n",
			me.Pos, me.Want, me.Got)
	}
	return nil
}
