package entity

import "fmt"

// Point is a position in global desktop coordinates.
type Point struct {
	X, Y int
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is a width/height pair in pixels.
type Size struct {
	W, H int
}

// Rect describes a monitor's area in the global desktop coordinate space.
type Rect struct {
	X, Y          int
	Width, Height int
}

// MonitorGeometry is the usable area of one physical display.
type MonitorGeometry = Rect

// Contains reports whether a rectangle of size s placed at p fits entirely inside r.
func (r Rect) Contains(p Point, s Size) bool {
	return p.X >= r.X && p.Y >= r.Y &&
		p.X+s.W <= r.X+r.Width &&
		p.Y+s.H <= r.Y+r.Height
}

// Origin returns the top-left corner of r.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}
