package varargs

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below match them through errors.Is.
var (
	ErrTypeMismatch = errors.New("argument type mismatch")
	ErrMissingArg   = errors.New("missing argument")
	ErrExtraArgs    = errors.New("unconsumed arguments")
	ErrUnknownTag   = errors.New("unknown format tag")
	ErrBadLength    = errors.New("array length out of range")
	ErrBadCount     = errors.New("negative argument count")
	ErrBadKind      = errors.New("invalid argument kind")
)

// MismatchError reports a read whose requested kind disagrees with the kind
// the caller packed at that position.
type MismatchError struct {
	Pos  int // zero-based descriptor index
	Want Kind
	Got  Kind
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("argument %d: want %s, got %s", e.Pos, e.Want, e.Got)
}

func (e *MismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// UnknownTagError is returned under Strict for a tag outside {d, c, f, A}.
type UnknownTagError struct {
	Tag    byte
	Offset int // byte offset in the format string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("format offset %d: unknown tag %q", e.Offset, e.Tag)
}

func (e *UnknownTagError) Is(target error) bool { return target == ErrUnknownTag }

// LengthError reports an A-tag length outside [0, len(array)].
type LengthError struct {
	Pos    int // index of the length descriptor
	Length int
	Cap    int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("argument %d: length %d not in [0, %d]", e.Pos, e.Length, e.Cap)
}

func (e *LengthError) Is(target error) bool { return target == ErrBadLength }
