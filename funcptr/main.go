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

// Each demo covers one use of function pointers, which in Go are plain func
// values: reassigning one, returning one from a selector, and indexing a
// table of them.
//
// Run:
//
//	go run ./funcptr
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
	section(w, "Function value — int (*f)(int, int)")
	demoBasic(w)

	section(w, "Operator selector — selectOperation(char)")
	demoSelect(w)

	section(w, "Dispatch table — void (*operations[4])(int, int)")
	return demoMenu(w, prompt.New(in, w))
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}
