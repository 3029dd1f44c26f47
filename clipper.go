package lineclip

// maxClipIterations bounds the refine loop. Each pass moves one endpoint onto
// an edge, so four passes settle any finite segment; the extra passes absorb
// rounding that lands an intersection a ulp outside the edge.
const maxClipIterations = 8

// Clip clips s against the current bounds of r using the Cohen-Sutherland
// algorithm. It reports whether any part of the segment is visible and, if
// so, the visible sub-segment. Neither r nor s is modified.
func Clip(s Segment, r *Region) (visible bool, a, b Point) {
	return ClipRect(s, r.Bounds())
}

// ClipRect clips s against an explicit rectangle.
//
// A zero-length segment is decided by the outcode of its single point and
// never reaches the intersection math. A segment with a NaN or infinite
// coordinate cannot be classified and is rejected unchanged.
func ClipRect(s Segment, clip Rect) (visible bool, a, b Point) {
	p0, p1 := s.Points()

	if !p0.IsFinite() || !p1.IsFinite() {
		Logger().Warn("clip: non-finite segment",
			"p1", p0, "p2", p1, "bounds", clip)
		return false, p0, p1
	}

	if s.IsDegenerate() {
		if clip.Classify(p0) == Inside {
			return true, p0, p1
		}
		return false, p0, p1
	}

	code0 := clip.Classify(p0)
	code1 := clip.Classify(p1)

	for i := 0; i < maxClipIterations; i++ {
		if (code0 | code1) == Inside {
			// Both inside - trivially accept
			return true, p0, p1
		}
		if (code0 & code1) != 0 {
			// Both outside the same edge - trivially reject
			return false, p0, p1
		}

		codeOut := code0
		if codeOut == Inside {
			codeOut = code1
		}

		p := intersectEdge(p0, p1, codeOut, clip)
		if !p.IsFinite() {
			// Coordinates near the float64 limit overflow the slope.
			Logger().Warn("clip: intersection overflow",
				"p1", s.P1(), "p2", s.P2(), "bounds", clip)
			return false, s.P1(), s.P2()
		}

		if codeOut == code0 {
			p0 = p
			code0 = clip.Classify(p0)
		} else {
			p1 = p
			code1 = clip.Classify(p1)
		}
	}

	Logger().Warn("clip did not converge",
		"p1", s.P1(), "p2", s.P2(), "bounds", clip)
	return false, s.P1(), s.P2()
}

// intersectEdge returns the intersection of the line through p0, p1 with the
// single edge selected from code by priority TOP, BOTTOM, RIGHT, LEFT.
//
// The caller guarantees the divisor is non-zero: an edge is chosen only when
// the endpoints lie on opposite sides of it.
func intersectEdge(p0, p1 Point, code Outcode, clip Rect) Point {
	var p Point

	switch {
	case code&Top != 0:
		p.Y = clip.Y
		p.X = p0.X + (p1.X-p0.X)*(p.Y-p0.Y)/(p1.Y-p0.Y)
	case code&Bottom != 0:
		p.Y = clip.Bottom()
		p.X = p0.X + (p1.X-p0.X)*(p.Y-p0.Y)/(p1.Y-p0.Y)
	case code&Right != 0:
		p.X = clip.Right()
		p.Y = p0.Y + (p1.Y-p0.Y)*(p.X-p0.X)/(p1.X-p0.X)
	case code&Left != 0:
		p.X = clip.X
		p.Y = p0.Y + (p1.Y-p0.Y)*(p.X-p0.X)/(p1.X-p0.X)
	}

	return p
}
