// Package flexarray is a length-prefixed block of ints: the header records the
// length and every access is checked against it.
package flexarray

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange     = errors.New("index out of range")
	ErrNegativeLength = errors.New("negative length")
)

// FlexArray owns its elements. The zero value is an empty array.
type FlexArray struct {
	data []int
}

// New allocates n zeroed elements.
func New(n int) (*FlexArray, error) {
	if n < 0 {
		return nil, fmt.Errorf("new(%d): %w", n, ErrNegativeLength)
	}
	return &FlexArray{data: make([]int, n)}, nil
}

func (a *FlexArray) Len() int { return len(a.data) }

func (a *FlexArray) At(i int) (int, error) {
	if err := a.check(i); err != nil {
		return 0, err
	}
	return a.data[i], nil
}

func (a *FlexArray) Set(i, v int) error {
	if err := a.check(i); err != nil {
		return err
	}
	a.data[i] = v
	return nil
}

// Values returns a copy of the elements.
func (a *FlexArray) Values() []int {
	return append([]int(nil), a.data...)
}

func (a *FlexArray) check(i int) error {
	if i < 0 || i >= len(a.data) {
		return fmt.Errorf("index %d, length %d: %w", i, len(a.data), ErrOutOfRange)
	}
	return nil
}
