package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	_ "github.com/tliron/commonlog/simple"

	"github.com/marcodamonte/cconcepts/config"
	"github.com/marcodamonte/cconcepts/formats/cfmt"
	"github.com/marcodamonte/cconcepts/prompt"
)

// Two small calculators built on the same bounded prompt: the value is asked
// for again until it falls inside the configured range.
//
// Run:
//
//	go run ./geometry
//	go run ./geometry -config cconcepts.toml
func main() {
	configPath := flag.String("config", "", "path to "+config.FileName+" (default: search upward)")
	verbose := flag.Int("v", 0, "extra log verbosity")
	flag.Parse()

	cfg, err := config.Resolve(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.ConfigureLogging(*verbose)

	if err := run(os.Stdin, os.Stdout, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in io.Reader, w io.Writer, cfg *config.Config) error {
	p := prompt.New(in, w)

	section(w, "Distance from the origin — get_double with bounds")
	if err := demoDistance(w, p, cfg.Geometry); err != nil {
		return err
	}

	section(w, "Tip calculator — get_double with bounds")
	return demoTip(w, p, cfg.Tip)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}

func demoDistance(w io.Writer, p *prompt.Prompter, g config.Geometry) error {
	x, err := p.Double("Enter the x value: ", g.X.Min, g.X.Max)
	if err != nil {
		return err
	}
	y, err := p.Double("Enter the y value: ", g.Y.Min, g.Y.Max)
	if err != nil {
		return err
	}
	cfmt.Fprintf(w, "The distance is %lf %s\n", math.Hypot(x, y), g.Unit)
	return nil
}

func demoTip(w io.Writer, p *prompt.Prompter, t config.Tip) error {
	price, err := p.Double("Enter the price meal: ", t.Price.Min, t.Price.Max)
	if err != nil {
		return err
	}
	percent, err := p.Double("Enter the tip percentage: ", t.Percent.Min, t.Percent.Max)
	if err != nil {
		return err
	}
	tip := price * percent / 100
	cfmt.Fprintf(w, "Tip amount: %lf\n", tip)
	cfmt.Fprintf(w, "Total amount: %lf\n", price+tip)
	return nil
}
