// Package cfmt renders C printf conversion specifiers with Go's fmt and scans
// integers the way scanf's %d and %i do.
//
// Conversions are rewritten onto their fmt equivalents: length modifiers
// (hh, h, l, ll, L, z, j, t) are stripped after truncating the operand to the
// width they name, %i becomes %d, %g gets C's default precision of 6, and
// infinities and NaNs are spelled the C way.
package cfmt

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const (
	flagChars      = "-+ #0"
	lengthChars    = "hlLqjzt"
	conversionVerb = "diouxXcspfFeEgGaA%"
)

// Conversion is one parsed %-specifier.
type Conversion struct {
	Flags     string
	Width     string // digits, "*" or empty
	Precision string // ".digits", ".*", "." or empty
	Length    string
	Verb      byte
}

// parseConversion parses the text following a '%'. It returns the remaining
// format and false if no conversion verb terminates the specifier.
func parseConversion(format string) (Conversion, string, bool) {
	var c Conversion
	i := 0
	for i < len(format) && strings.IndexByte(flagChars, format[i]) >= 0 {
		i++
	}
	c.Flags = format[:i]

	start := i
	if i < len(format) && format[i] == '*' {
		i++
	} else {
		for i < len(format) && isDigit(format[i], 10) {
			i++
		}
	}
	c.Width = format[start:i]

	if i < len(format) && format[i] == '.' {
		start = i
		i++
		if i < len(format) && format[i] == '*' {
			i++
		} else {
			for i < len(format) && isDigit(format[i], 10) {
				i++
			}
		}
		c.Precision = format[start:i]
	}

	start = i
	for i < len(format) && strings.IndexByte(lengthChars, format[i]) >= 0 {
		i++
	}
	c.Length = format[start:i]

	if i >= len(format) || strings.IndexByte(conversionVerb, format[i]) < 0 {
		return c, format[i:], false
	}
	c.Verb = format[i]
	return c, format[i+1:], true
}

// Sprintf formats args according to a C printf format string. Surplus
// operands are ignored, as in C; a missing operand renders as %!d(MISSING).
func Sprintf(format string, args ...any) string {
	var b strings.Builder
	arg := 0
	next := func() (any, bool) {
		if arg >= len(args) {
			return nil, false
		}
		arg++
		return args[arg-1], true
	}

	for format != "" {
		i := strings.IndexByte(format, '%')
		if i == -1 {
			b.WriteString(format)
			break
		}
		b.WriteString(format[:i])

		c, rest, ok := parseConversion(format[i+1:])
		format = rest
		if !ok {
			b.WriteString("%!(NOVERB)")
			continue
		}
		if c.Verb == '%' {
			b.WriteByte('%')
			continue
		}

		if c.Width == "*" {
			v, _ := next()
			w, _ := toInt(v)
			if w < 0 {
				c.Flags += "-"
				w = -w
			}
			c.Width = strconv.FormatInt(w, 10)
		}
		if c.Precision == ".*" {
			v, _ := next()
			if p, _ := toInt(v); p >= 0 {
				c.Precision = "." + strconv.FormatInt(p, 10)
			} else {
				c.Precision = ""
			}
		}

		v, ok := next()
		if !ok {
			fmt.Fprintf(&b, "%%!%c(MISSING)", c.Verb)
			continue
		}
		b.WriteString(c.render(v))
	}
	return b.String()
}

// Fprintf writes the Sprintf rendering to w.
func Fprintf(w io.Writer, format string, args ...any) (int, error) {
	return io.WriteString(w, Sprintf(format, args...))
}

func (c Conversion) goFormat(verb byte) string {
	return "%" + c.Flags + c.Width + c.Precision + string(verb)
}

// bits returns the operand width named by the length modifier.
func (c Conversion) bits() uint {
	switch c.Length {
	case "hh":
		return 8
	case "h":
		return 16
	case "l", "ll", "q", "j", "z", "t":
		return 64
	default:
		return 32
	}
}

func (c Conversion) render(v any) string {
	switch c.Verb {
	case 'd', 'i':
		n, ok := toInt(v)
		if !ok {
			return fmt.Sprintf(c.goFormat('d'), v)
		}
		return fmt.Sprintf(c.goFormat('d'), truncSigned(n, c.bits()))
	case 'u', 'o', 'x', 'X':
		n, ok := toInt(v)
		verb := c.Verb
		if verb == 'u' {
			verb = 'd'
		}
		if !ok {
			return fmt.Sprintf(c.goFormat(verb), v)
		}
		return fmt.Sprintf(c.goFormat(verb), truncUnsigned(n, c.bits()))
	case 'c':
		n, ok := toInt(v)
		if !ok {
			return fmt.Sprintf(c.goFormat('c'), v)
		}
		return fmt.Sprintf(c.goFormat('c'), rune(n))
	case 's':
		return fmt.Sprintf(c.goFormat('s'), v)
	case 'p':
		return fmt.Sprintf("%"+c.Flags+c.Width+"p", v)
	default:
		return c.renderFloat(v)
	}
}

func (c Conversion) renderFloat(v any) string {
	verb := c.Verb
	switch verb {
	case 'a':
		verb = 'x'
	case 'A':
		verb = 'X'
	}
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	default:
		return fmt.Sprintf(c.goFormat(verb), v)
	}

	if math.IsInf(f, 0) || math.IsNaN(f) {
		return c.renderNonFinite(f)
	}
	if (verb == 'g' || verb == 'G') && c.Precision == "" {
		c.Precision = ".6"
	}
	return fmt.Sprintf(c.goFormat(verb), f)
}

// renderNonFinite spells inf and nan as C does; uppercase verbs give INF/NAN.
func (c Conversion) renderNonFinite(f float64) string {
	var s string
	switch {
	case math.IsNaN(f):
		s = "nan"
	case f < 0:
		s = "-inf"
	default:
		s = "inf"
	}
	if f > 0 || math.IsNaN(f) {
		switch {
		case strings.Contains(c.Flags, "+"):
			s = "+" + s
		case strings.Contains(c.Flags, " "):
			s = " " + s
		}
	}
	if c.Verb >= 'A' && c.Verb <= 'Z' {
		s = strings.ToUpper(s)
	}
	pad := "%"
	if strings.Contains(c.Flags, "-") {
		pad += "-"
	}
	return fmt.Sprintf(pad+c.Width+"s", s)
}

func toInt(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), true
	case uintptr:
		return int64(x), true
	default:
		return 0, false
	}
}

func truncSigned(n int64, bits uint) int64 {
	switch bits {
	case 8:
		return int64(int8(n))
	case 16:
		return int64(int16(n))
	case 32:
		return int64(int32(n))
	default:
		return n
	}
}

func truncUnsigned(n int64, bits uint) uint64 {
	switch bits {
	case 8:
		return uint64(uint8(n))
	case 16:
		return uint64(uint16(n))
	case 32:
		return uint64(uint32(n))
	default:
		return uint64(n)
	}
}
