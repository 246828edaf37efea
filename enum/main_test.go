package main

import (
	"errors"
	"strings"
	"testing"
)

func TestDayString(t *testing.T) {
	t.Parallel()

	tests := map[Day]string{
		Sunday:    "Sunday",
		Wednesday: "Wednesday",
		Saturday:  "Saturday",
		7:         "Day(7)",
		-1:        "Day(-1)",
	}
	for d, want := range tests {
		if got := d.String(); got != want {
			t.Errorf("Day(%d).String() = %q; want %q", int(d), got, want)
		}
	}
}

func TestParseDay(t *testing.T) {
	t.Parallel()

	for i, name := range dayNames {
		d, err := ParseDay(strings.ToUpper(name))
		if err != nil || d != Day(i) {
			t.Errorf("ParseDay(%q) = %v, %v; want %v", name, d, err, Day(i))
		}
	}
	if _, err := ParseDay("Funday"); !errors.Is(err, ErrUnknownDay) {
		t.Errorf("ParseDay(Funday) error = %v; want ErrUnknownDay", err)
	}
}

func TestRun(t *testing.T) {
	var out strings.Builder
	if err := run(&out); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Today is Wednesday.\nThe stored value to enum is 3\n",
		"  0 Sunday    weekend=true\n",
		"  3 Wednesday weekend=false\n",
		"  Day(7): Invalid day.\n",
		"  \"Funday\" → \"Funday\": unknown day\n",
		"  \"friday\" → Friday (5)\n",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output lacks %q\n--- output ---\n%s", want, out.String())
		}
	}
}
