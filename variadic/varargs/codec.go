package varargs

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// wireArg is the encoded form of one descriptor. The kind travels with the
// value, so a decoded list is checked exactly like the list that was encoded.
type wireArg struct {
	Kind  Kind    `cbor:"1,keyasint"`
	Int   int     `cbor:"2,keyasint,omitempty"`
	Float float64 `cbor:"3,keyasint,omitempty"`
	Array []int   `cbor:"4,keyasint,omitempty"`
}

var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("varargs: failed to create CBOR enc mode: %v", err))
	}
	encMode = em
}

// Encode serializes a packed argument list to canonical CBOR.
func Encode(args []Arg) ([]byte, error) {
	wire := make([]wireArg, len(args))
	for i, a := range args {
		switch a.kind {
		case KindInt, KindChar:
			wire[i] = wireArg{Kind: a.kind, Int: a.i}
		case KindFloat:
			wire[i] = wireArg{Kind: a.kind, Float: a.f}
		case KindArray:
			wire[i] = wireArg{Kind: a.kind, Array: a.a}
		default:
			return nil, fmt.Errorf("varargs: encode argument %d: %w", i, ErrBadKind)
		}
	}
	return encMode.Marshal(wire)
}

// Decode rebuilds an argument list produced by Encode.
func Decode(data []byte) ([]Arg, error) {
	var wire []wireArg
	if err := cbor.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("varargs: unmarshal arguments: %w", err)
	}
	args := make([]Arg, len(wire))
	for i, w := range wire {
		switch w.Kind {
		case KindInt:
			args[i] = Int(w.Int)
		case KindChar:
			args[i] = Char(rune(w.Int))
		case KindFloat:
			args[i] = Float(w.Float)
		case KindArray:
			args[i] = Array(w.Array)
		default:
			return nil, fmt.Errorf("varargs: decode argument %d (%s): %w", i, w.Kind, ErrBadKind)
		}
	}
	return args, nil
}
