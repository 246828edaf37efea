package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/marcodamonte/cconcepts/funcptr/calc"
	"github.com/marcodamonte/cconcepts/prompt"
)

// demoMenu reads two integers and a menu index, then calls through
// calc.Menu[index]. An index outside the table and a zero divisor are
// reported; neither performs any arithmetic.
func demoMenu(w io.Writer, p *prompt.Prompter) error {
	vals, err := p.Ints("Enter two integers: ", 2)
	if err != nil {
		return err
	}
	a, b := vals[0], vals[1]

	fmt.Fprintln(w, "Choose an operation:")
	for i, op := range calc.Menu {
		fmt.Fprintf(w, "%d: %s\n", i, op.Label)
	}
	choice, err := p.Int("Choice: ", 'd')
	if err != nil {
		return err
	}

	op, err := calc.Choose(choice)
	if err != nil {
		fmt.Fprintln(w, "Invalid choice!")
		return nil
	}
	line, err := op.Describe(a, b)
	switch {
	case errors.Is(err, calc.ErrDivideByZero):
		fmt.Fprintln(w, "Error: Division by zero!")
		return nil
	case err != nil:
		return err
	}
	fmt.Fprintln(w, line)
	return nil
}
