package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	_ "github.com/tliron/commonlog/simple"

	"github.com/marcodamonte/cconcepts/config"
	"github.com/marcodamonte/cconcepts/variadic/varargs"
)

// Each demo covers one side of the variadic-call contract: the caller packs
// descriptors, the callee unpacks them by count or by format string.
//
// Run:
//
//	go run ./variadic
//	go run ./variadic -v 2   # log every consumed descriptor
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

	if err := run(os.Stdout, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer, cfg *config.Config) error {
	d := &varargs.Dispatcher{}
	if cfg.Variadic.Strict {
		d.Policy = varargs.Strict
	}

	section(w, "Count-driven sum — sum(int count, ...)")
	demoSum(w)

	section(w, "Format-driven dispatch — print_all_args(\"dcAdf\", ...)")
	if err := demoPrintAll(w, d); err != nil {
		return err
	}

	section(w, "Mistyped unpack — va_arg(args, double) on packed ints")
	demoMismatch(w)

	section(w, "Tags across a byte boundary — CBOR-encoded call")
	return demoBoundary(w, d)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}
