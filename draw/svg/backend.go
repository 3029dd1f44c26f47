// Package svg provides a vector backend that writes draw lists as SVG 1.1.
package svg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gogpu/lineclip/draw"
)

func init() {
	draw.Register("svg", func() draw.Backend {
		return NewBackend()
	}, ".svg")
}

// ErrNotRendered is returned by output methods called before a frame ended.
var ErrNotRendered = errors.New("svg: no frame rendered")

// Backend accumulates SVG elements for one frame.
// It implements draw.Backend, draw.WriterBackend and draw.FileBackend.
type Backend struct {
	buf           bytes.Buffer
	width, height int
	done          bool
}

var (
	_ draw.WriterBackend = (*Backend)(nil)
	_ draw.FileBackend   = (*Backend)(nil)
)

// NewBackend creates an SVG backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin starts a new document.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid canvas size %dx%d", width, height)
	}
	b.buf.Reset()
	b.width, b.height = width, height
	b.done = false
	fmt.Fprintf(&b.buf,
		`<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	return nil
}

// End closes the document.
func (b *Backend) End() error {
	b.buf.WriteString("</svg>\n")
	b.done = true
	return nil
}

// Clear paints the whole canvas.
func (b *Backend) Clear(c draw.Color) {
	fmt.Fprintf(&b.buf, `<rect x="0" y="0" width="%d" height="%d" fill="%s"%s/>`+"\n",
		b.width, b.height, rgb(c), opacity("fill-opacity", c))
}

// StrokeRect outlines r.
func (b *Backend) StrokeRect(r draw.Rect, c draw.Color, width float64) {
	fmt.Fprintf(&b.buf, `<rect x="%s" y="%s" width="%s" height="%s" fill="none" stroke="%s" stroke-width="%s"%s/>`+"\n",
		num(r.X), num(r.Y), num(r.W), num(r.H), rgb(c), num(width), opacity("stroke-opacity", c))
}

// Line draws a segment.
func (b *Backend) Line(p, q draw.Point, c draw.Color, width float64) {
	fmt.Fprintf(&b.buf, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"%s/>`+"\n",
		num(p.X), num(p.Y), num(q.X), num(q.Y), rgb(c), num(width), opacity("stroke-opacity", c))
}

// Bytes returns the finished document, or nil before End.
func (b *Backend) Bytes() []byte {
	if !b.done {
		return nil
	}
	return b.buf.Bytes()
}

// WriteTo writes the document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.done {
		return 0, ErrNotRendered
	}
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// SaveToFile writes the document to path.
func (b *Backend) SaveToFile(path string) error {
	if !b.done {
		return ErrNotRendered
	}
	if err := os.WriteFile(path, b.buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	return nil
}

func rgb(c draw.Color) string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func opacity(attr string, c draw.Color) string {
	if c.A >= 1 {
		return ""
	}
	return fmt.Sprintf(` %s="%s"`, attr, num(c.A))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
