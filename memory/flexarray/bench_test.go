package flexarray_test

import (
	"testing"

	"github.com/marcodamonte/cconcepts/memory/flexarray"
)

// BenchmarkNew measures one header plus one element block per call.
func BenchmarkNew(b *testing.B) {
	var sink *flexarray.FlexArray
	for i := 0; i < b.N; i++ {
		sink, _ = flexarray.New(64)
	}
	_ = sink
}

// BenchmarkAt is a checked read; it should not allocate.
func BenchmarkAt(b *testing.B) {
	a, _ := flexarray.New(64)
	var sink int
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink, _ = a.At(i & 63)
	}
	_ = sink
}

func TestAtDoesNotAllocate(t *testing.T) {
	a, _ := flexarray.New(8)
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = a.At(3)
	})
	if allocs != 0 {
		t.Errorf("At allocates %v times per call", allocs)
	}
}
