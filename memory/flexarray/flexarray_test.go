package flexarray_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/marcodamonte/cconcepts/memory/flexarray"
)

func TestSquares(t *testing.T) {
	t.Parallel()

	a, err := flexarray.New(6)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < a.Len(); i++ {
		if err := a.Set(i, i*i); err != nil {
			t.Fatalf("Set(%d): %v", i, err)
		}
	}
	if diff := cmp.Diff([]int{0, 1, 4, 9, 16, 25}, a.Values()); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}
	if v, err := a.At(5); err != nil || v != 25 {
		t.Errorf("At(5) = %d, %v; want 25, nil", v, err)
	}
}

func TestBounds(t *testing.T) {
	t.Parallel()

	a, err := flexarray.New(3)
	if err != nil {
		t.Fatal(err)
	}
	for _, i := range []int{-1, 3, 100} {
		if _, err := a.At(i); !errors.Is(err, flexarray.ErrOutOfRange) {
			t.Errorf("At(%d) error = %v; want ErrOutOfRange", i, err)
		}
		if err := a.Set(i, 1); !errors.Is(err, flexarray.ErrOutOfRange) {
			t.Errorf("Set(%d) error = %v; want ErrOutOfRange", i, err)
		}
	}

	var zero flexarray.FlexArray
	if _, err := zero.At(0); !errors.Is(err, flexarray.ErrOutOfRange) {
		t.Errorf("zero At(0) error = %v; want ErrOutOfRange", err)
	}
}

func TestNewRejectsNegativeLength(t *testing.T) {
	t.Parallel()

	if _, err := flexarray.New(-1); !errors.Is(err, flexarray.ErrNegativeLength) {
		t.Errorf("New(-1) error = %v; want ErrNegativeLength", err)
	}
}

func TestValuesIsACopy(t *testing.T) {
	t.Parallel()

	a, _ := flexarray.New(2)
	vs := a.Values()
	vs[0] = 7
	if v, _ := a.At(0); v != 0 {
		t.Errorf("At(0) = %d after mutating Values(); want 0", v)
	}
}
