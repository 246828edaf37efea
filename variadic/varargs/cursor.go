package varargs

import "fmt"

// Cursor walks a descriptor sequence front to back. It never rewinds, and a
// failed read leaves it on the offending descriptor.
//
// A Cursor is owned by the call that created it; it is not safe for
// concurrent use.
type Cursor struct {
	args []Arg
	pos  int
}

// NewCursor returns a cursor positioned before the first descriptor.
func NewCursor(args ...Arg) *Cursor {
	return &Cursor{args: args}
}

// Pos returns the number of descriptors consumed so far.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the number of descriptors not yet consumed.
func (c *Cursor) Remaining() int { return len(c.args) - c.pos }

// Peek returns the kind of the next descriptor, or KindInvalid at the end.
func (c *Cursor) Peek() Kind {
	if c.pos >= len(c.args) {
		return KindInvalid
	}
	return c.args[c.pos].kind
}

func (c *Cursor) at(pos int, want Kind) (Arg, error) {
	if pos >= len(c.args) {
		return Arg{}, fmt.Errorf("argument %d (%s): %w", pos, want, ErrMissingArg)
	}
	a := c.args[pos]
	if a.kind != want {
		return Arg{}, &MismatchError{Pos: pos, Want: want, Got: a.kind}
	}
	return a, nil
}

func (c *Cursor) next(want Kind) (Arg, error) {
	a, err := c.at(c.pos, want)
	if err != nil {
		return Arg{}, err
	}
	c.pos++
	return a, nil
}

// Int consumes an integer descriptor.
func (c *Cursor) Int() (int, error) {
	a, err := c.next(KindInt)
	return a.i, err
}

// Char consumes a character descriptor.
func (c *Cursor) Char() (rune, error) {
	a, err := c.next(KindChar)
	return rune(a.i), err
}

// Float consumes a floating-point descriptor. An integer descriptor is not
// converted: asking for a float where an int was packed is the classic
// mistyped va_arg and is reported as a mismatch.
func (c *Cursor) Float() (float64, error) {
	a, err := c.next(KindFloat)
	return a.f, err
}

// Array consumes an array descriptor followed by its integer length and
// returns the first length elements. The pair is consumed all or nothing.
func (c *Cursor) Array() ([]int, error) {
	a, err := c.at(c.pos, KindArray)
	if err != nil {
		return nil, err
	}
	n, err := c.at(c.pos+1, KindInt)
	if err != nil {
		return nil, err
	}
	if n.i < 0 || n.i > len(a.a) {
		return nil, &LengthError{Pos: c.pos + 1, Length: n.i, Cap: len(a.a)}
	}
	c.pos += 2
	return a.a[:n.i], nil
}

// Done reports ErrExtraArgs if any descriptor was left unconsumed.
func (c *Cursor) Done() error {
	if n := c.Remaining(); n > 0 {
		return fmt.Errorf("%d left after argument %d: %w", n, c.pos, ErrExtraArgs)
	}
	return nil
}
