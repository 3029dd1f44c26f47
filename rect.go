package lineclip

import "strings"

// Outcode is the Cohen-Sutherland position code of a point relative to a
// rectangle. Each bit names a half-plane outside one edge.
type Outcode uint8

// Outcode bits. LEFT/RIGHT and TOP/BOTTOM are mutually exclusive pairs.
const (
	Inside Outcode = 0
	Left   Outcode = 1 << 0
	Right  Outcode = 1 << 1
	Bottom Outcode = 1 << 2
	Top    Outcode = 1 << 3
)

// Has reports whether all bits of flag are set in c.
func (c Outcode) Has(flag Outcode) bool {
	return c&flag == flag && flag != 0
}

// String returns "INSIDE" or the set bits joined by '|' in clip priority order.
func (c Outcode) String() string {
	if c == Inside {
		return "INSIDE"
	}
	var parts []string
	for _, f := range [...]struct {
		bit  Outcode
		name string
	}{
		{Top, "TOP"},
		{Bottom, "BOTTOM"},
		{Right, "RIGHT"},
		{Left, "LEFT"},
	} {
		if c&f.bit != 0 {
			parts = append(parts, f.name)
		}
	}
	if c&^(Top|Bottom|Right|Left) != 0 {
		parts = append(parts, "INVALID")
	}
	return strings.Join(parts, "|")
}

// Rect represents an axis-aligned rectangle with float64 coordinates.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRect creates a Rect from position and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the right edge x-coordinate.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the bottom edge y-coordinate.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Extents returns the left, top, right and bottom edges.
func (r Rect) Extents() (left, top, right, bottom float64) {
	return r.X, r.Y, r.Right(), r.Bottom()
}

// Contains returns true if the point is inside the rectangle or on its boundary.
func (r Rect) Contains(p Point) bool {
	left, top, right, bottom := r.Extents()
	return p.X >= left && p.X <= right && p.Y >= top && p.Y <= bottom
}

// Classify computes the outcode of p. Points on the boundary are inside.
func (r Rect) Classify(p Point) Outcode {
	left, top, right, bottom := r.Extents()
	code := Inside

	if p.X < left {
		code |= Left
	} else if p.X > right {
		code |= Right
	}

	// Y grows down, so "above" is the smaller coordinate.
	if p.Y < top {
		code |= Top
	} else if p.Y > bottom {
		code |= Bottom
	}

	return code
}
