package lineclip

import "math"

// Point represents a 2D point or vector in canvas coordinates
// (origin top-left, Y grows down).
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Segment is a candidate line fixed at construction.
// Its endpoints cannot be changed; clipping works on copies.
type Segment struct {
	p1, p2 Point
}

// NewSegment creates a segment from p1 to p2.
func NewSegment(p1, p2 Point) Segment {
	return Segment{p1: p1, p2: p2}
}

// Seg creates a segment from raw coordinates.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{p1: Pt(x1, y1), p2: Pt(x2, y2)}
}

// P1 returns the first endpoint.
func (s Segment) P1() Point { return s.p1 }

// P2 returns the second endpoint.
func (s Segment) P2() Point { return s.p2 }

// Points returns both endpoints.
func (s Segment) Points() (Point, Point) { return s.p1, s.p2 }

// IsDegenerate reports whether both endpoints coincide.
func (s Segment) IsDegenerate() bool {
	return s.p1 == s.p2
}
