package main

import (
	"fmt"
	"io"
	"os"

	"github.com/marcodamonte/cconcepts/formats/cfmt"
	"github.com/marcodamonte/cconcepts/header/geom2d"
)

// Declarations shared across a boundary: geom2d plays the header and its
// implementation file, this package plays the file that includes it.
//
// Run:
//
//	go run ./header
func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	section(w, "Types and functions from geom2d")
	var p geom2d.Point
	geom2d.Initialize(&p, 10, 20)
	fmt.Fprintln(w, p)

	rect := geom2d.Rectangle{TopLeft: geom2d.Point{X: 0, Y: 0}, BottomRight: geom2d.Point{X: 10, Y: 20}}
	cfmt.Fprintf(w, "Area of the rectangle: %d\n", rect.Area())

	section(w, "Package state — extern int globalCounter")
	geom2d.GlobalCounter++
	cfmt.Fprintf(w, "Global counter: %d\n", geom2d.GlobalCounter)
	cfmt.Fprintf(w, "MaxBufferSize: %d\n", geom2d.MaxBufferSize)

	section(w, "Interfaces — Shape")
	for _, s := range []geom2d.Shape{geom2d.NewCircle(p, 5), rect} {
		s.Draw(w)
	}
	return nil
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}
