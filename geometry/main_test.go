package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/marcodamonte/cconcepts/config"
	"github.com/marcodamonte/cconcepts/internal/transcript"
	"github.com/marcodamonte/cconcepts/prompt"
)

func TestTranscripts(t *testing.T) {
	sessions, err := transcript.Glob("testdata/*.txtar")
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range sessions {
		t.Run(s.Name, func(t *testing.T) {
			var out strings.Builder
			if err := run(strings.NewReader(s.Stdin), &out, config.Default()); err != nil {
				t.Fatalf("run: %v", err)
			}
			if diff := cmp.Diff(s.Stdout, out.String()); diff != "" {
				t.Errorf("%s\nstdout mismatch (-want +got):\n%s", s.Comment, diff)
			}
		})
	}
}

// TestConfiguredBounds narrows the x range and changes the unit.
func TestConfiguredBounds(t *testing.T) {
	cfg := config.Default()
	cfg.Geometry.X = config.Range{Min: 0, Max: 10}
	cfg.Geometry.Unit = "km"

	var out strings.Builder
	err := run(strings.NewReader("-3 6 8 0 0"), &out, cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{
		"Enter the x value: Must be at least 0.000000\n",
		"The distance is 10.000000 km\n",
		"Tip amount: 0.000000\n",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output lacks %q\n--- output ---\n%s", want, out.String())
		}
	}
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	var out strings.Builder
	err := run(strings.NewReader("3 4 5000"), &out, config.Default())
	if !errors.Is(err, prompt.ErrNoInput) {
		t.Errorf("run = %v; want ErrNoInput", err)
	}
}
