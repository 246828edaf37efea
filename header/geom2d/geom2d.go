// Package geom2d holds the shapes used by the header lesson. Exported names
// are its interface; everything else stays inside the package.
package geom2d

import (
	"fmt"
	"io"
	"math"
)

// MaxBufferSize is an exported constant.
const MaxBufferSize = 1024

// GlobalCounter is package state visible to importers.
var GlobalCounter int

type Point struct {
	X, Y int
}

// Initialize sets both coordinates of p.
func Initialize(p *Point, x, y int) {
	p.X = x
	p.Y = y
}

func (p Point) String() string {
	return fmt.Sprintf("Point(x: %d, y: %d)", p.X, p.Y)
}

// Rectangle is axis-aligned, with Y growing downward.
type Rectangle struct {
	TopLeft, BottomRight Point
}

// Area is width times height; an inverted rectangle gives a negative area.
func (r Rectangle) Area() int {
	width := r.BottomRight.X - r.TopLeft.X
	height := r.BottomRight.Y - r.TopLeft.Y
	return width * height
}

// Shape is anything that can draw itself.
type Shape interface {
	Draw(w io.Writer)
}

type Circle struct {
	Center Point
	Radius int
}

func NewCircle(c Point, r int) *Circle {
	return &Circle{Center: c, Radius: r}
}

func (c *Circle) Draw(w io.Writer) {
	fmt.Fprintf(w, "Circle at %v with radius %d (area %.2f)\n", c.Center, c.Radius, math.Pi*float64(c.Radius*c.Radius))
}

func (r Rectangle) Draw(w io.Writer) {
	fmt.Fprintf(w, "Rectangle from %v to %v (area %d)\n", r.TopLeft, r.BottomRight, r.Area())
}
