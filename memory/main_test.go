package main

import (
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	var out strings.Builder
	if err := run(&out, 6); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"The size of an int32 is 4\n",
		"0 1 4 9 16 25 \n",
		"At(6): index 6, length 6: index out of range\n",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output lacks %q\n--- output ---\n%s", want, out.String())
		}
	}
}

func TestRunRejectsNegativeLength(t *testing.T) {
	var out strings.Builder
	if err := run(&out, -1); err == nil {
		t.Error("run(-1) succeeded")
	}
}
