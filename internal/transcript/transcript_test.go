package transcript_test

import (
	"testing"

	"github.com/marcodamonte/cconcepts/internal/transcript"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	s, err := transcript.Load("testdata/echo.txtar")
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "echo" || s.Comment != "A session that echoes one line." {
		t.Errorf("Name=%q Comment=%q", s.Name, s.Comment)
	}
	if s.Stdin != "hello\n" || s.Stdout != "you said: hello\n" {
		t.Errorf("Stdin=%q Stdout=%q", s.Stdin, s.Stdout)
	}
}

func TestLoadNeedsBothFiles(t *testing.T) {
	t.Parallel()

	if _, err := transcript.Load("testdata/broken.txt"); err == nil {
		t.Error("Load accepted a transcript without stdout")
	}
}

func TestGlobNoMatch(t *testing.T) {
	t.Parallel()

	if _, err := transcript.Glob("testdata/*.none"); err == nil {
		t.Error("Glob with no matches returned nil error")
	}
}
