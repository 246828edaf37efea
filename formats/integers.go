package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/marcodamonte/cconcepts/formats/cfmt"
	"github.com/marcodamonte/cconcepts/prompt"
)

// demoScanTable scans the three spellings of 42 under both verbs. %i reads
// the base from the prefix; %d is always decimal and stops at the first
// non-digit.
func demoScanTable(w io.Writer) {
	for _, in := range []string{"42", "052", "0x2A"} {
		i, _, _ := cfmt.ScanInt(in, 'i')
		d, rest, _ := cfmt.ScanInt(in, 'd')
		fmt.Fprintf(w, "  %-5s %%i → %-3d %%d → %d", in, i, d)
		if rest != "" {
			fmt.Fprintf(w, "  (%q left unread)", rest)
		}
		fmt.Fprintln(w)
	}
}

// demoScanInteractive asks for a number twice, once per verb, and prints the
// value back with both printf conversions (which agree: %i and %d only
// differ when scanning).
func demoScanInteractive(w io.Writer, p *prompt.Prompter) error {
	steps := []struct {
		verb byte
		hint string
	}{
		{'i', "either one will result in 42 in decimal"},
		{'d', "entering 052 or 0x2A will not work correctly, only 42 will"},
	}
	for _, s := range steps {
		fmt.Fprintf(w, "Testing for %%%c:\n", s.verb)
		num, err := p.Int(fmt.Sprintf("Enter  42, 052, or 0x2A (%s): ", s.hint), s.verb)
		switch {
		case errors.Is(err, cfmt.ErrNoMatch), errors.Is(err, cfmt.ErrRange):
			fmt.Fprintf(w, "\nscanf could not read a number: %v\n", err)
			continue
		case err != nil:
			return err
		}
		fmt.Fprintf(w, "The number (in decimal) using %%i is: %s\n", cfmt.Sprintf("%i", num))
		fmt.Fprintf(w, "The number (in decimal) using %%d is: %s\n", cfmt.Sprintf("%d", num))
	}
	return nil
}
