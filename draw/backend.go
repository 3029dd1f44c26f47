package draw

import (
	"image"
	"io"
)

// Backend is the interface that all presentation backends must implement.
// Backends receive the frame's commands and translate them to their output
// format (raster pixels, SVG elements, window surfaces).
//
// # Implementation Contract
//
// Each registered backend must:
//  1. Register in init() using draw.Register()
//  2. Accept Begin before any drawing call and End after the last one
//  3. Be reusable: a later Begin starts a new frame
type Backend interface {
	// Begin initializes the backend for a canvas of the given dimensions.
	Begin(width, height int) error

	// End finalizes the frame. Output methods are valid afterwards.
	End() error

	// Clear fills the whole canvas.
	Clear(c Color)

	// StrokeRect outlines r with a line of the given width.
	StrokeRect(r Rect, c Color, width float64)

	// Line draws a segment from a to b.
	Line(a, b Point, c Color, width float64)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered frame to w.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered frame to path.
	// This should only be called after End().
	SaveToFile(path string) error
}

// ImageBackend extends Backend with access to the rasterized frame.
type ImageBackend interface {
	Backend

	// Image returns the rendered frame, or nil before the first End().
	Image() image.Image
}
