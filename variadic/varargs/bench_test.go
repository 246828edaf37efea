package varargs_test

import (
	"testing"

	"github.com/marcodamonte/cconcepts/variadic/varargs"
)

// BenchmarkSum walks four int descriptors through a cursor.
func BenchmarkSum(b *testing.B) {
	args := varargs.Ints(5, 10, 15, 20)
	var sink int
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink, _ = varargs.Sum(4, args...)
	}
	_ = sink
}

// BenchmarkRender dispatches the six-descriptor "dcAf" call.
func BenchmarkRender(b *testing.B) {
	args := []varargs.Arg{
		varargs.Int(42), varargs.Char('a'),
		varargs.Array([]int{1, 2, 3, 4}), varargs.Int(4),
		varargs.Int(7), varargs.Float(3.14),
	}
	var d varargs.Dispatcher
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := d.Render("dcAdf", args...); err != nil {
			b.Fatal(err)
		}
	}
}
