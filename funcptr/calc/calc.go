// Package calc holds the integer operations the function-pointer lesson
// dispatches through: a plain func value, an indexed menu of them, and a
// selector from operator symbol to func.
package calc

import (
	"errors"
	"fmt"

	"github.com/tliron/commonlog"
)

var (
	ErrDivideByZero    = errors.New("division by zero")
	ErrInvalidChoice   = errors.New("invalid choice")
	ErrUnknownOperator = errors.New("unknown operator")
)

var log = commonlog.GetLogger("cconcepts.calc")

// Op is a binary integer operation. It is the Go spelling of
// int (*)(int, int), with an error result for inputs it cannot handle.
type Op func(a, b int) (int, error)

func Add(a, b int) (int, error)      { return a + b, nil }
func Subtract(a, b int) (int, error) { return a - b, nil }
func Multiply(a, b int) (int, error) { return a * b, nil }

// Divide truncates toward zero, as C integer division does.
func Divide(a, b int) (int, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}

// Operation names an Op for display.
type Operation struct {
	Name   string // "Addition"
	Label  string // menu entry, "Add"
	Symbol rune
	Fn     Op
}

// Describe applies the operation and renders it, e.g. "Addition: 3 + 2 = 5".
func (o Operation) Describe(a, b int) (string, error) {
	v, err := o.Fn(a, b)
	if err != nil {
		log.Warningf("%s %d %c %d: %v", o.Name, a, o.Symbol, b, err)
		return "", fmt.Errorf("%s: %w", o.Name, err)
	}
	return fmt.Sprintf("%s: %d %c %d = %d", o.Name, a, o.Symbol, b, v), nil
}

// Menu is the ordered dispatch table; a menu choice indexes into it.
var Menu = []Operation{
	{Name: "Addition", Label: "Add", Symbol: '+', Fn: Add},
	{Name: "Subtraction", Label: "Subtract", Symbol: '-', Fn: Subtract},
	{Name: "Multiplication", Label: "Multiply", Symbol: '*', Fn: Multiply},
	{Name: "Division", Label: "Divide", Symbol: '/', Fn: Divide},
}

// Choose returns Menu[i], or ErrInvalidChoice if i is out of range.
func Choose(i int) (Operation, error) {
	if i < 0 || i >= len(Menu) {
		return Operation{}, fmt.Errorf("choice %d: %w", i, ErrInvalidChoice)
	}
	return Menu[i], nil
}

var bySymbol = map[rune]Op{
	'+': Add,
	'-': Subtract,
	'*': Multiply,
	'/': Divide,
}

// Select maps an operator symbol to its Op. Where the C version returns a
// NULL function pointer, Select returns ErrUnknownOperator.
func Select(symbol rune) (Op, error) {
	op, ok := bySymbol[symbol]
	if !ok {
		return nil, fmt.Errorf("operator %q: %w", symbol, ErrUnknownOperator)
	}
	return op, nil
}
