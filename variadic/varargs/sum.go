package varargs

import "fmt"

// Sum adds n integer descriptors. The count is checked against what the
// caller actually packed: too few, too many, or a non-integer descriptor is
// an error rather than a read of whatever happens to follow on the stack.
func Sum(n int, args ...Arg) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("sum %d: %w", n, ErrBadCount)
	}
	c := NewCursor(args...)
	total := 0
	for i := 0; i < n; i++ {
		v, err := c.Int()
		if err != nil {
			return 0, fmt.Errorf("sum %d: %w", n, err)
		}
		total += v
	}
	if err := c.Done(); err != nil {
		return 0, fmt.Errorf("sum %d: %w", n, err)
	}
	return total, nil
}

// SumInts is the same operation with the count and the type fixed by the
// compiler. A float argument does not compile.
func SumInts(vals ...int) int {
	total := 0
	for _, v := range vals {
		total += v
	}
	return total
}
