package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	_ "github.com/tliron/commonlog/simple"

	"github.com/marcodamonte/cconcepts/config"
	"github.com/marcodamonte/cconcepts/prompt"
)

// Each demo covers one family of C conversion specifiers, rendered through
// the cfmt package.
//
// Run:
//
//	go run ./formats
//	printf '0x2A\n052\n' | go run ./formats
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

	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in io.Reader, w io.Writer) error {
	section(w, "printf — %f %F %e %E %g %G on 12345.6789")
	demoFloats(w)

	section(w, "scanf — %i vs %d on 42, 052 and 0x2A")
	demoScanTable(w)

	section(w, "scanf — your turn")
	return demoScanInteractive(w, prompt.New(in, w))
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}
