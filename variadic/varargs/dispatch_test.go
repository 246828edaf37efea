package varargs_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/marcodamonte/cconcepts/variadic/varargs"
)

type fixtureArg struct {
	Int   *int     `yaml:"int"`
	Char  string   `yaml:"char"`
	Float *float64 `yaml:"float"`
	Array []int    `yaml:"array"`
}

func (f fixtureArg) arg(t *testing.T) varargs.Arg {
	t.Helper()
	switch {
	case f.Int != nil:
		return varargs.Int(*f.Int)
	case f.Char != "":
		return varargs.Char([]rune(f.Char)[0])
	case f.Float != nil:
		return varargs.Float(*f.Float)
	case f.Array != nil:
		return varargs.Array(f.Array)
	}
	t.Fatalf("fixture argument %+v has no value", f)
	return varargs.Arg{}
}

type dispatchCase struct {
	Name   string       `yaml:"name"`
	Format string       `yaml:"format"`
	Policy string       `yaml:"policy"`
	Args   []fixtureArg `yaml:"args"`
	Want   string       `yaml:"want"`
	Err    string       `yaml:"err"`
}

func loadDispatchCases(t *testing.T) []dispatchCase {
	t.Helper()
	data, err := os.ReadFile("testdata/dispatch.yaml")
	if err != nil {
		t.Fatalf("read fixtures: %v", err)
	}
	var cases []dispatchCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parse fixtures: %v", err)
	}
	if len(cases) == 0 {
		t.Fatal("no dispatch fixtures")
	}
	return cases
}

// ── Fixture table ────────────────────────────────────────────────────────────

func TestDispatchFixtures(t *testing.T) {
	t.Parallel()

	for _, tc := range loadDispatchCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			args := make([]varargs.Arg, len(tc.Args))
			for i, a := range tc.Args {
				args[i] = a.arg(t)
			}
			d := varargs.Dispatcher{}
			if tc.Policy == "strict" {
				d.Policy = varargs.Strict
			}

			got, err := d.Render(tc.Format, args...)
			if tc.Err != "" {
				if err == nil {
					t.Fatalf("Render(%q) = %q; want error containing %q", tc.Format, got, tc.Err)
				}
				if !strings.Contains(err.Error(), tc.Err) {
					t.Errorf("error = %q; want it to contain %q", err, tc.Err)
				}
				if got != "" {
					t.Errorf("failed Render returned partial output %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Render(%q): %v", tc.Format, err)
			}
			if diff := cmp.Diff(tc.Want, got); diff != "" {
				t.Errorf("Render(%q) mismatch (-want +got):\n%s", tc.Format, diff)
			}
		})
	}
}

// ── Descriptor accounting ────────────────────────────────────────────────────

// TestSignatureLen checks that a format consumes one descriptor per known
// tag plus one extra per A, and nothing for unknown tags.
func TestSignatureLen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   int
	}{
		{"", 0},
		{"d", 1},
		{"dcAdf", 6},
		{"AA", 4},
		{"fdc", 3},
		{"x?z", 0},
		{"d-c-f", 3},
	}
	for _, tt := range tests {
		sig, err := varargs.Compile(tt.format, varargs.Lenient)
		if err != nil {
			t.Fatalf("Compile(%q): %v", tt.format, err)
		}
		if got := sig.Len(); got != tt.want {
			t.Errorf("Compile(%q).Len() = %d; want %d", tt.format, got, tt.want)
		}
	}
}

func TestSignatureKinds(t *testing.T) {
	t.Parallel()

	sig, err := varargs.Compile("dcAdf", varargs.Lenient)
	if err != nil {
		t.Fatal(err)
	}
	want := []varargs.Kind{
		varargs.KindInt, varargs.KindChar, varargs.KindArray,
		varargs.KindInt, varargs.KindInt, varargs.KindFloat,
	}
	if diff := cmp.Diff(want, sig.Kinds()); diff != "" {
		t.Errorf("Kinds() mismatch (-want +got):\n%s", diff)
	}
}

// TestSignatureCheckAgreesWithRender verifies the static check and the
// rendering pass accept and reject the same argument lists.
func TestSignatureCheckAgreesWithRender(t *testing.T) {
	t.Parallel()

	arr := []int{1, 2, 3, 4}
	calls := [][]varargs.Arg{
		{varargs.Int(42), varargs.Char('a'), varargs.Array(arr), varargs.Int(4), varargs.Int(7), varargs.Float(3.14)},
		{varargs.Int(42), varargs.Char('a'), varargs.Array(arr), varargs.Int(4), varargs.Float(3.14)},
		{varargs.Int(42)},
	}
	sig, err := varargs.Compile("dcAdf", varargs.Lenient)
	if err != nil {
		t.Fatal(err)
	}
	var d varargs.Dispatcher
	for i, args := range calls {
		checkErr := sig.Check(args)
		_, renderErr := d.Render("dcAdf", args...)
		if (checkErr == nil) != (renderErr == nil) {
			t.Errorf("call %d: Check error %v, Render error %v", i, checkErr, renderErr)
		}
	}
}

// ── Error kinds ──────────────────────────────────────────────────────────────

func TestDispatchMismatchIsTyped(t *testing.T) {
	t.Parallel()

	var d varargs.Dispatcher
	_, err := d.Render("dcAdf",
		varargs.Int(42), varargs.Char('a'), varargs.Array([]int{1, 2, 3, 4}), varargs.Int(4), varargs.Float(3.14))

	if !errors.Is(err, varargs.ErrTypeMismatch) {
		t.Fatalf("err = %v; want ErrTypeMismatch", err)
	}
	var me *varargs.MismatchError
	if !errors.As(err, &me) {
		t.Fatalf("errors.As(*MismatchError) failed for %v", err)
	}
	want := varargs.MismatchError{Pos: 4, Want: varargs.KindInt, Got: varargs.KindFloat}
	if *me != want {
		t.Errorf("MismatchError = %+v; want %+v", *me, want)
	}
}

func TestStrictUnknownTag(t *testing.T) {
	t.Parallel()

	d := varargs.Dispatcher{Policy: varargs.Strict}
	_, err := d.Render("dq", varargs.Int(1))
	var ute *varargs.UnknownTagError
	if !errors.As(err, &ute) {
		t.Fatalf("err = %v; want *UnknownTagError", err)
	}
	if ute.Tag != 'q' || ute.Offset != 1 {
		t.Errorf("UnknownTagError = %+v; want tag 'q' at offset 1", *ute)
	}
	if !errors.Is(err, varargs.ErrUnknownTag) {
		t.Error("errors.Is(err, ErrUnknownTag) = false")
	}

	if _, err := varargs.Compile("dq", varargs.Strict); !errors.Is(err, varargs.ErrUnknownTag) {
		t.Errorf("Compile strict error = %v; want ErrUnknownTag", err)
	}
}

// ── Writer ───────────────────────────────────────────────────────────────────

func TestPrintAllWritesNothingOnError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := varargs.PrintAll(&buf, "dd", varargs.Int(1)); !errors.Is(err, varargs.ErrMissingArg) {
		t.Fatalf("err = %v; want ErrMissingArg", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %q on error; want nothing", buf.String())
	}

	if err := varargs.PrintAll(&buf, "fdc", varargs.Float(2.71), varargs.Int(100), varargs.Char('z')); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "2.710000 100 z \n"; got != want {
		t.Errorf("PrintAll wrote %q; want %q", got, want)
	}
}
