package cfmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrNoMatch = errors.New("no integer to scan")
	ErrRange   = errors.New("integer out of int range")
	ErrVerb    = errors.New("unsupported scan verb")
)

// ScanInt reads one integer from the front of input the way scanf does for
// the given verb and returns the unread remainder.
//
//	%d  decimal only: "052" is 52, "0x2A" stops after the 0
//	%i  base from the prefix: "0x2A" is hex, "052" is octal, "42" decimal
//
// Leading white space is skipped. If no digit can be read the input is
// returned unchanged with ErrNoMatch. Values outside a 32-bit int give
// ErrRange.
func ScanInt(input string, verb byte) (int, string, error) {
	if verb != 'd' && verb != 'i' {
		return 0, input, fmt.Errorf("%%%c: %w", verb, ErrVerb)
	}
	s := strings.TrimLeft(input, " \t\n\r\v\f")

	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	base := 10
	if verb == 'i' && i < len(s) && s[i] == '0' {
		if i+2 < len(s) && (s[i+1] == 'x' || s[i+1] == 'X') && isDigit(s[i+2], 16) {
			base = 16
			i += 2
		} else {
			base = 8
		}
	}

	start := i
	for i < len(s) && isDigit(s[i], base) {
		i++
	}
	if i == start {
		return 0, input, fmt.Errorf("%%%c %q: %w", verb, input, ErrNoMatch)
	}

	u, err := strconv.ParseUint(s[start:i], base, 64)
	if err != nil || u > math.MaxInt32+1 {
		return 0, s[i:], fmt.Errorf("%%%c %q: %w", verb, s[:i], ErrRange)
	}
	n := int64(u)
	if neg {
		n = -n
	}
	if n > math.MaxInt32 {
		return 0, s[i:], fmt.Errorf("%%%c %q: %w", verb, s[:i], ErrRange)
	}
	return int(n), s[i:], nil
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return int(c-'0') < base
	case c >= 'a' && c <= 'f':
		return base == 16
	case c >= 'A' && c <= 'F':
		return base == 16
	}
	return false
}
