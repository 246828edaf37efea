// Package config handles the cconcepts.toml file shared by the demos.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/tliron/commonlog"
)

// FileName is the configuration file looked up by FindAndLoad.
const FileName = "cconcepts.toml"

var ErrInvalidRange = errors.New("invalid range")

// Config is the parsed cconcepts.toml. Keys missing from the file keep the
// values from Default.
type Config struct {
	Log      Log      `toml:"log"`
	Geometry Geometry `toml:"geometry"`
	Tip      Tip      `toml:"tip"`
	Variadic Variadic `toml:"variadic"`

	// Path is the file the configuration was read from; empty for defaults.
	Path string `toml:"-"`
}

// Log configures commonlog.
type Log struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"` // empty logs to stderr
}

// Range is a closed interval [Min, Max].
type Range struct {
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`
}

// Contains reports whether v is inside the range.
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

func (r Range) validate(name string) error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || r.Min > r.Max {
		return fmt.Errorf("%s [%v, %v]: %w", name, r.Min, r.Max, ErrInvalidRange)
	}
	return nil
}

// Geometry bounds the coordinates of the distance calculator.
type Geometry struct {
	X    Range  `toml:"x"`
	Y    Range  `toml:"y"`
	Unit string `toml:"unit"`
}

// Tip bounds the inputs of the tip calculator.
type Tip struct {
	Price   Range `toml:"price"`
	Percent Range `toml:"percent"`
}

// Variadic selects the dispatcher policy for unknown format tags.
type Variadic struct {
	Strict bool `toml:"strict"`
}

// Default returns the bounds the geometry and tip calculators start from.
func Default() *Config {
	return &Config{
		Geometry: Geometry{
			X:    Range{Min: -100, Max: 100},
			Y:    Range{Min: -100, Max: 100},
			Unit: "meters",
		},
		Tip: Tip{
			Price:   Range{Min: 0, Max: 1000},
			Percent: Range{Min: 0, Max: 100},
		},
	}
}

// Validate checks every range.
func (c *Config) Validate() error {
	return errors.Join(
		c.Geometry.X.validate("geometry.x"),
		c.Geometry.Y.validate("geometry.y"),
		c.Tip.Price.validate("tip.price"),
		c.Tip.Percent.validate("tip.percent"),
	)
}

// Load parses the file at path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c := Default()
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.Path = path
	return c, nil
}

// FindAndLoad walks up from startDir looking for cconcepts.toml. If none is
// found it returns Default.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

// Resolve loads path when it is set and searches from the working directory
// otherwise. It is what the -config flag of every demo feeds.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	return FindAndLoad(".")
}

// ConfigureLogging applies the [log] section, raised by extra verbosity
// levels from the command line. A commonlog backend must be imported by the
// caller for anything to be written.
func (c *Config) ConfigureLogging(extra int) {
	var path *string
	if c.Log.File != "" {
		path = &c.Log.File
	}
	commonlog.Configure(c.Log.Verbosity+extra, path)
}
