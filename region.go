package lineclip

import "math"

// DefaultMinScale is the smallest scale factor a Region accepts unless
// overridden with WithMinScale.
const DefaultMinScale = 0.05

// RegionOption configures a Region during creation.
type RegionOption func(*Region)

// WithMinScale sets the lower bound for the accumulated scale factor.
// The floor must lie in (0, 1] so the initial scale of 1 satisfies it;
// other values are ignored.
func WithMinScale(min float64) RegionOption {
	return func(r *Region) {
		if min > 0 && min <= 1 {
			r.minScale = min
		}
	}
}

// Region is the clip window: a rectangle that can be moved and uniformly
// scaled around its origin. Width and height are never negative.
//
// A Region is not safe for concurrent use. Within a frame it is written only
// while input is folded in and read afterwards.
type Region struct {
	origin   Point
	w, h     float64
	baseW    float64
	baseH    float64
	scale    float64
	minScale float64
}

// NewRegion creates a Region at (x, y) with the given size and scale 1.
// A negative width or height is normalized by moving the origin.
func NewRegion(x, y, w, h float64, opts ...RegionOption) *Region {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	r := &Region{
		origin:   Pt(x, y),
		w:        w,
		h:        h,
		baseW:    w,
		baseH:    h,
		scale:    1,
		minScale: DefaultMinScale,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Origin returns the top-left corner.
func (r *Region) Origin() Point { return r.origin }

// Size returns the current width and height.
func (r *Region) Size() (w, h float64) { return r.w, r.h }

// OriginalSize returns the unscaled width and height given at construction.
func (r *Region) OriginalSize() (w, h float64) { return r.baseW, r.baseH }

// Scale returns the accumulated scale factor.
func (r *Region) Scale() float64 { return r.scale }

// MinScale returns the scale floor.
func (r *Region) MinScale() float64 { return r.minScale }

// Bounds returns the current rectangle.
func (r *Region) Bounds() Rect {
	return Rect{X: r.origin.X, Y: r.origin.Y, W: r.w, H: r.h}
}

// Classify returns the outcode of p against the current bounds.
func (r *Region) Classify(p Point) Outcode {
	return r.Bounds().Classify(p)
}

// Contains reports whether p lies within the current bounds, edges included.
func (r *Region) Contains(p Point) bool {
	return r.Bounds().Contains(p)
}

// Translate moves the origin to p. The move is absolute.
func (r *Region) Translate(p Point) {
	r.origin = p
}

// Rescale multiplies the accumulated scale by factor and resizes the region
// to originalSize*scale. The scale never drops below MinScale; a NaN or
// non-positive product lands on the floor. It returns the new scale.
func (r *Region) Rescale(factor float64) float64 {
	s := r.scale * factor
	if math.IsNaN(s) || s < r.minScale {
		s = r.minScale
	}
	r.scale = s
	r.w = r.baseW * s
	r.h = r.baseH * s
	return s
}
