package varargs

import (
	"fmt"
	"io"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/marcodamonte/cconcepts/formats/cfmt"
)

// Policy decides what a format tag outside {d, c, f, A} does.
type Policy int

const (
	// Lenient skips unknown tags: no descriptor consumed, nothing rendered.
	Lenient Policy = iota
	// Strict rejects unknown tags with an *UnknownTagError.
	Strict
)

func (p Policy) String() string {
	if p == Strict {
		return "strict"
	}
	return "lenient"
}

// Signature is a compiled format string: the descriptor kinds a call with
// that format must supply, in order.
type Signature struct {
	format string
	kinds  []Kind
}

// Compile translates format into the kinds it consumes. Every A tag stands
// for two descriptors, the array and its length.
func Compile(format string, policy Policy) (Signature, error) {
	sig := Signature{format: format}
	for i := 0; i < len(format); i++ {
		switch tag := format[i]; tag {
		case 'd':
			sig.kinds = append(sig.kinds, KindInt)
		case 'c':
			sig.kinds = append(sig.kinds, KindChar)
		case 'f':
			sig.kinds = append(sig.kinds, KindFloat)
		case 'A':
			sig.kinds = append(sig.kinds, KindArray, KindInt)
		default:
			if policy == Strict {
				return Signature{}, &UnknownTagError{Tag: tag, Offset: i}
			}
		}
	}
	return sig, nil
}

// Len is the number of descriptors a call with this signature consumes.
func (s Signature) Len() int { return len(s.kinds) }

// Kinds returns a copy of the expected descriptor kinds.
func (s Signature) Kinds() []Kind {
	out := make([]Kind, len(s.kinds))
	copy(out, s.kinds)
	return out
}

// Check compares args against the signature without rendering anything.
func (s Signature) Check(args []Arg) error {
	for i, want := range s.kinds {
		if i >= len(args) {
			return fmt.Errorf("argument %d (%s): %w", i, want, ErrMissingArg)
		}
		if got := args[i].kind; got != want {
			return &MismatchError{Pos: i, Want: want, Got: got}
		}
	}
	if n := len(args) - len(s.kinds); n > 0 {
		return fmt.Errorf("%d left after argument %d: %w", n, len(s.kinds), ErrExtraArgs)
	}
	return nil
}

// Dispatcher renders a descriptor sequence driven by a format string.
type Dispatcher struct {
	Policy Policy

	// Logger receives a debug line per consumed descriptor. If nil,
	// commonlog.GetLogger("cconcepts.varargs") is used.
	Logger commonlog.Logger
}

var defaultDispatcher Dispatcher

func (d *Dispatcher) logger() commonlog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return commonlog.GetLogger("cconcepts.varargs")
}

// Render walks format left to right, consuming the descriptors each tag
// implies, and returns every item followed by a space plus a trailing
// newline. On error nothing is returned: the call either renders completely
// or not at all.
func (d *Dispatcher) Render(format string, args ...Arg) (string, error) {
	log := d.logger()
	c := NewCursor(args...)
	var b strings.Builder

	fail := func(err error) (string, error) {
		log.Warningf("dispatch %q stopped after %d descriptors: %v", format, c.Pos(), err)
		return "", fmt.Errorf("dispatch %q: %w", format, err)
	}

	for i := 0; i < len(format); i++ {
		switch tag := format[i]; tag {
		case 'd':
			v, err := c.Int()
			if err != nil {
				return fail(err)
			}
			b.WriteString(cfmt.Sprintf("%d ", v))
		case 'c':
			v, err := c.Char()
			if err != nil {
				return fail(err)
			}
			b.WriteString(cfmt.Sprintf("%c ", v))
		case 'f':
			v, err := c.Float()
			if err != nil {
				return fail(err)
			}
			b.WriteString(cfmt.Sprintf("%f ", v))
		case 'A':
			vs, err := c.Array()
			if err != nil {
				return fail(err)
			}
			for _, v := range vs {
				b.WriteString(cfmt.Sprintf("%d ", v))
			}
		default:
			if d.Policy == Strict {
				return fail(&UnknownTagError{Tag: tag, Offset: i})
			}
			log.Debugf("dispatch %q: skipping unknown tag %q at offset %d", format, tag, i)
			continue
		}
		log.Debugf("dispatch %q: tag %q consumed up to descriptor %d", format, format[i], c.Pos())
	}

	if err := c.Done(); err != nil {
		return fail(err)
	}
	b.WriteByte('\n')
	return b.String(), nil
}

// Fprint writes the rendering of format and args to w.
func (d *Dispatcher) Fprint(w io.Writer, format string, args ...Arg) error {
	s, err := d.Render(format, args...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// PrintAll renders with the default, lenient dispatcher.
func PrintAll(w io.Writer, format string, args ...Arg) error {
	return defaultDispatcher.Fprint(w, format, args...)
}
