// Package raster provides a pixel backend for draw lists.
// It renders through gg.Context, so output matches what the window front
// end shows.
//
// # Output Formats
//
// SaveToFile picks the encoder from the file extension:
//
//   - .png (default for WriteTo)
//   - .jpg, .jpeg
//   - .bmp (golang.org/x/image/bmp)
//   - .tif, .tiff (golang.org/x/image/tiff)
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/lineclip/draw/raster"
//
//	backend := raster.NewBackend()
//	if err := list.Playback(backend); err != nil {
//	    return err
//	}
//	backend.SaveToFile("frame.png")
package raster

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/lineclip/draw"
)

func init() {
	draw.Register("raster", func() draw.Backend {
		return NewBackend()
	}, ".bmp", ".jpeg", ".jpg", ".png", ".tif", ".tiff")
}

// jpegQuality is used for .jpg/.jpeg output.
const jpegQuality = 95

// ErrNotRendered is returned by output methods called before a frame ended.
var ErrNotRendered = errors.New("raster: no frame rendered")

// Backend renders draw lists to pixels using gg.Context.
// It implements draw.Backend, draw.WriterBackend, draw.FileBackend and
// draw.ImageBackend.
type Backend struct {
	ctx      *gg.Context
	external bool
	done     bool
}

// Ensure Backend implements all required interfaces.
var (
	_ draw.Backend       = (*Backend)(nil)
	_ draw.WriterBackend = (*Backend)(nil)
	_ draw.FileBackend   = (*Backend)(nil)
	_ draw.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a backend that owns its canvas.
// The canvas is allocated by Begin and resized on later frames.
func NewBackend() *Backend {
	return &Backend{}
}

// ForContext creates a backend that draws into dc, for example the context
// of a window canvas. Begin does not resize dc.
func ForContext(dc *gg.Context) *Backend {
	return &Backend{ctx: dc, external: true}
}

// Context returns the underlying gg context, or nil before the first Begin.
func (b *Backend) Context() *gg.Context {
	return b.ctx
}

// Begin prepares a canvas of the given size.
func (b *Backend) Begin(width, height int) error {
	b.done = false
	if b.external {
		if b.ctx == nil {
			return errors.New("raster: nil context")
		}
		return nil
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid canvas size %dx%d", width, height)
	}
	if b.ctx == nil {
		b.ctx = gg.NewContext(width, height)
		return nil
	}
	return b.ctx.Resize(width, height)
}

// End finalizes the frame.
func (b *Backend) End() error {
	b.done = true
	return nil
}

// Close releases the owned canvas. Contexts passed to ForContext are left
// to their owner.
func (b *Backend) Close() error {
	if b.external || b.ctx == nil {
		return nil
	}
	err := b.ctx.Close()
	b.ctx = nil
	b.done = false
	return err
}

// Clear fills the whole canvas with c.
func (b *Backend) Clear(c draw.Color) {
	b.ctx.ClearWithColor(gg.RGBA2(c.R, c.G, c.B, c.A))
}

// StrokeRect outlines r.
func (b *Backend) StrokeRect(r draw.Rect, c draw.Color, width float64) {
	b.ctx.SetRGBA(c.R, c.G, c.B, c.A)
	b.ctx.SetLineWidth(width)
	b.ctx.DrawRectangle(r.X, r.Y, r.W, r.H)
	b.stroke()
}

// Line draws a segment.
func (b *Backend) Line(p, q draw.Point, c draw.Color, width float64) {
	b.ctx.SetRGBA(c.R, c.G, c.B, c.A)
	b.ctx.SetLineWidth(width)
	b.ctx.DrawLine(p.X, p.Y, q.X, q.Y)
	b.stroke()
}

func (b *Backend) stroke() {
	if err := b.ctx.Stroke(); err != nil {
		b.ctx.ClearPath()
	}
}

// Image returns the rendered frame, or nil if no frame has ended.
func (b *Backend) Image() image.Image {
	if !b.done || b.ctx == nil {
		return nil
	}
	return b.ctx.Image()
}

// WriteTo writes the frame as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.done || b.ctx == nil {
		return 0, ErrNotRendered
	}
	cw := &countingWriter{w: w}
	err := b.ctx.EncodePNG(cw)
	return cw.n, err
}

// SaveToFile writes the frame to path, choosing the format by extension.
func (b *Backend) SaveToFile(path string) (err error) {
	if !b.done || b.ctx == nil {
		return ErrNotRendered
	}

	encode, err := encoderFor(filepath.Ext(path))
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("raster: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := encode(b.ctx, w); err != nil {
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return w.Flush()
}

type encodeFunc func(*gg.Context, io.Writer) error

func encoderFor(ext string) (encodeFunc, error) {
	switch strings.ToLower(ext) {
	case ".png", "":
		return func(dc *gg.Context, w io.Writer) error { return dc.EncodePNG(w) }, nil
	case ".jpg", ".jpeg":
		return func(dc *gg.Context, w io.Writer) error { return dc.EncodeJPEG(w, jpegQuality) }, nil
	case ".bmp":
		return func(dc *gg.Context, w io.Writer) error { return bmp.Encode(w, dc.Image()) }, nil
	case ".tif", ".tiff":
		return func(dc *gg.Context, w io.Writer) error {
			return tiff.Encode(w, dc.Image(), &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("raster: unsupported image format %q", ext)
	}
}

// countingWriter tracks bytes written for WriteTo.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
