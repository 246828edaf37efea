// Package prompt reads whitespace-separated values from an input stream the
// way the interactive C lessons use scanf: print a prompt, read one token,
// validate, and ask again while the value is out of bounds.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/tliron/commonlog"

	"github.com/marcodamonte/cconcepts/formats/cfmt"
)

// ErrNoInput is returned when the input ends before a value is accepted.
var ErrNoInput = errors.New("no more input")

// Prompter reads tokens from in and writes prompts and complaints to out.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer

	// pending is text left over by a partial integer scan; it is read before
	// the next token, like characters scanf leaves in the stream.
	pending string

	// Logger receives a debug line per rejected value. If nil,
	// commonlog.GetLogger("cconcepts.prompt") is used.
	Logger commonlog.Logger
}

// New returns a Prompter over in and out.
func New(in io.Reader, out io.Writer) *Prompter {
	s := bufio.NewScanner(in)
	s.Split(bufio.ScanWords)
	return &Prompter{in: s, out: out}
}

func (p *Prompter) logger() commonlog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return commonlog.GetLogger("cconcepts.prompt")
}

func (p *Prompter) token() (string, error) {
	if p.pending != "" {
		tok := p.pending
		p.pending = ""
		return tok, nil
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrNoInput
	}
	return p.in.Text(), nil
}

// Double prints text and reads a number until one in [min, max] arrives.
// Out-of-range values print "Must be at least"/"Must be at most" and the
// prompt repeats; anything that is not a number (NaN included) prints
// "Invalid number" and the prompt repeats.
func (p *Prompter) Double(text string, min, max float64) (float64, error) {
	log := p.logger()
	for {
		io.WriteString(p.out, text)
		tok, err := p.token()
		if err != nil {
			return 0, fmt.Errorf("prompt %q: %w", text, err)
		}

		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(v) {
			io.WriteString(p.out, "Invalid number\n")
			log.Debugf("prompt %q: rejected %q: not a number", text, tok)
			continue
		}
		if v < min {
			cfmt.Fprintf(p.out, "Must be at least %lf\n", min)
		}
		if v > max {
			cfmt.Fprintf(p.out, "Must be at most %lf\n", max)
		}
		if v >= min && v <= max {
			return v, nil
		}
		log.Debugf("prompt %q: rejected %v outside [%v, %v]", text, v, min, max)
	}
}

// Int prints text and scans one integer with the given scanf verb ('d' or
// 'i'). It does not retry: like scanf, a token that does not start with a
// number is left unread and reported as cfmt.ErrNoMatch. Characters after the
// number stay pending for the next read.
func (p *Prompter) Int(text string, verb byte) (int, error) {
	io.WriteString(p.out, text)
	return p.scanInt(verb)
}

// Ints prints text once and scans n decimal integers.
func (p *Prompter) Ints(text string, n int) ([]int, error) {
	io.WriteString(p.out, text)
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		v, err := p.scanInt('d')
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (p *Prompter) scanInt(verb byte) (int, error) {
	tok, err := p.token()
	if err != nil {
		return 0, err
	}
	v, rest, err := cfmt.ScanInt(tok, verb)
	p.pending = rest
	if err != nil {
		p.logger().Debugf("scan %%%c: %v", verb, err)
		return 0, err
	}
	return v, nil
}
