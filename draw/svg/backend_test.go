package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/lineclip/draw"
)

func TestBackendRegistration(t *testing.T) {
	b, err := draw.BackendForExtension(".svg")
	if err != nil {
		t.Fatalf("BackendForExtension(.svg) = %v", err)
	}
	if _, ok := b.(*Backend); !ok {
		t.Fatalf("backend is %T, want *svg.Backend", b)
	}
}

func TestBackendDocument(t *testing.T) {
	l := draw.NewList(800, 600)
	l.Clear(draw.Black)
	l.StrokeRect(draw.Rect{X: 200, Y: 150, W: 400, H: 300}, draw.White, 2)
	l.Line(draw.Point{X: 400, Y: 150}, draw.Point{X: 400, Y: 450}, draw.Red, 1, true)
	l.Line(draw.Point{X: 50, Y: 300}, draw.Point{X: 195, Y: 300}, draw.Color{G: 1, A: 0.5}, 1, false)

	b := NewBackend()
	if err := l.Playback(b); err != nil {
		t.Fatalf("Playback() = %v", err)
	}
	doc := string(b.Bytes())

	for _, want := range []string{
		`width="800" height="600"`,
		`<rect x="0" y="0" width="800" height="600" fill="#000000"/>`,
		`<rect x="200" y="150" width="400" height="300" fill="none" stroke="#ffffff" stroke-width="2"/>`,
		`<line x1="400" y1="150" x2="400" y2="450" stroke="#ff0000" stroke-width="1"/>`,
		`stroke-opacity="0.5"`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %s\n%s", want, doc)
		}
	}

	// Well-formed XML.
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		if _, err := dec.Token(); err != nil {
			if !errors.Is(err, io.EOF) {
				t.Fatalf("invalid XML: %v", err)
			}
			break
		}
	}
}

func TestBackendBeginResets(t *testing.T) {
	b := NewBackend()
	l := draw.NewList(10, 10)
	l.Clear(draw.White)
	_ = l.Playback(b)
	_ = l.Playback(b)

	if n := strings.Count(string(b.Bytes()), "<svg"); n != 1 {
		t.Errorf("document has %d <svg> elements after two frames, want 1", n)
	}
}

func TestBackendNotRendered(t *testing.T) {
	b := NewBackend()
	if b.Bytes() != nil {
		t.Error("Bytes() before End should be nil")
	}
	if _, err := b.WriteTo(&bytes.Buffer{}); !errors.Is(err, ErrNotRendered) {
		t.Errorf("WriteTo() = %v", err)
	}
	if err := b.Begin(0, 1); err == nil {
		t.Error("Begin(0, 1) should fail")
	}
}

func TestBackendSaveToFile(t *testing.T) {
	b := NewBackend()
	l := draw.NewList(10, 10)
	l.Clear(draw.White)
	if err := l.Playback(b); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.svg")
	if err := b.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile() = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, b.Bytes()) {
		t.Error("file content differs from Bytes()")
	}
}
