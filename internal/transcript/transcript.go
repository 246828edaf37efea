// Package transcript loads recorded terminal sessions for the interactive
// demos. Each session is a txtar archive with a "stdin" and a "stdout" file;
// the archive comment describes the session.
package transcript

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/tools/txtar"
)

// Session is one recorded run.
type Session struct {
	Name    string // file name without extension
	Comment string
	Stdin   string
	Stdout  string
}

// Load parses the archive at path. Both files must be present.
func Load(path string) (Session, error) {
	arch, err := txtar.ParseFile(path)
	if err != nil {
		return Session{}, fmt.Errorf("transcript %s: %w", path, err)
	}
	s := Session{
		Name:    strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Comment: strings.TrimSpace(string(arch.Comment)),
	}
	var haveIn, haveOut bool
	for _, f := range arch.Files {
		switch f.Name {
		case "stdin":
			s.Stdin, haveIn = string(f.Data), true
		case "stdout":
			s.Stdout, haveOut = string(f.Data), true
		default:
			return Session{}, fmt.Errorf("transcript %s: unexpected file %q", path, f.Name)
		}
	}
	if !haveIn || !haveOut {
		return Session{}, fmt.Errorf("transcript %s: need both stdin and stdout", path)
	}
	return s, nil
}

// Glob loads every archive matching pattern, in file name order.
func Glob(pattern string) ([]Session, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no transcripts match %s", pattern)
	}
	sessions := make([]Session, 0, len(paths))
	for _, p := range paths {
		s, err := Load(p)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}
