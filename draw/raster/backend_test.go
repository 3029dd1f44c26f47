package raster

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/lineclip/draw"
)

func testList() *draw.List {
	l := draw.NewList(100, 80)
	l.Clear(draw.Black)
	l.StrokeRect(draw.Rect{X: 20, Y: 20, W: 60, H: 40}, draw.White, 2)
	l.Line(draw.Point{X: 30, Y: 40}, draw.Point{X: 70, Y: 40}, draw.Red, 3, true)
	return l
}

func TestBackendRegistration(t *testing.T) {
	if !draw.IsRegistered("raster") {
		t.Fatal("raster backend not registered")
	}
	b, err := draw.BackendForExtension(".png")
	if err != nil {
		t.Fatalf("BackendForExtension(.png) = %v", err)
	}
	if _, ok := b.(*Backend); !ok {
		t.Fatalf("backend is %T, want *raster.Backend", b)
	}
}

func TestBackendRendersList(t *testing.T) {
	b := NewBackend()
	if err := testList().Playback(b); err != nil {
		t.Fatalf("Playback() = %v", err)
	}

	img := b.Image()
	if img == nil {
		t.Fatal("Image() returned nil")
	}
	if got := img.Bounds(); got.Dx() != 100 || got.Dy() != 80 {
		t.Fatalf("bounds = %v, want 100x80", got)
	}

	if r, g, bb, _ := img.At(5, 5).RGBA(); r != 0 || g != 0 || bb != 0 {
		t.Errorf("background pixel = %d,%d,%d, want black", r>>8, g>>8, bb>>8)
	}
	if r, g, bb, _ := img.At(50, 20).RGBA(); r == 0 && g == 0 && bb == 0 {
		t.Error("pixel on the outline is still background")
	}
	if r, g, _, _ := img.At(50, 40).RGBA(); r>>8 < 128 || g>>8 > 64 {
		t.Errorf("pixel on the red line = r%d g%d", r>>8, g>>8)
	}
}

func TestBackendReuseResizes(t *testing.T) {
	b := NewBackend()
	if err := testList().Playback(b); err != nil {
		t.Fatal(err)
	}

	l := draw.NewList(40, 30)
	l.Clear(draw.White)
	if err := l.Playback(b); err != nil {
		t.Fatal(err)
	}
	if got := b.Image().Bounds(); got.Dx() != 40 || got.Dy() != 30 {
		t.Errorf("bounds after second frame = %v", got)
	}
}

func TestBackendInvalidSize(t *testing.T) {
	if err := NewBackend().Begin(0, 10); err == nil {
		t.Error("Begin(0, 10) should fail")
	}
}

func TestBackendNotRendered(t *testing.T) {
	b := NewBackend()
	if b.Image() != nil {
		t.Error("Image() before End should be nil")
	}
	if _, err := b.WriteTo(&bytes.Buffer{}); !errors.Is(err, ErrNotRendered) {
		t.Errorf("WriteTo() = %v, want ErrNotRendered", err)
	}
	if err := b.SaveToFile(filepath.Join(t.TempDir(), "x.png")); !errors.Is(err, ErrNotRendered) {
		t.Errorf("SaveToFile() = %v, want ErrNotRendered", err)
	}
}

func TestBackendWriteToPNG(t *testing.T) {
	b := NewBackend()
	if err := testList().Playback(b); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() = %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if img.Bounds().Dx() != 100 {
		t.Errorf("decoded width = %d", img.Bounds().Dx())
	}
}

func TestBackendSaveToFileFormats(t *testing.T) {
	b := NewBackend()
	if err := testList().Playback(b); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	for _, name := range []string{"f.png", "f.jpg", "f.jpeg", "f.bmp", "f.tif", "f.TIFF"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := b.SaveToFile(path); err != nil {
				t.Fatalf("SaveToFile(%s) = %v", name, err)
			}
			fi, err := os.Stat(path)
			if err != nil || fi.Size() == 0 {
				t.Errorf("%s not written: %v", name, err)
			}
		})
	}

	if err := b.SaveToFile(filepath.Join(dir, "f.gif")); err == nil {
		t.Error("SaveToFile(.gif) should fail")
	}
}

func TestForContextDoesNotResize(t *testing.T) {
	owner := NewBackend()
	if err := owner.Begin(50, 50); err != nil {
		t.Fatal(err)
	}

	b := ForContext(owner.Context())
	if err := testList().Playback(b); err != nil {
		t.Fatalf("Playback() = %v", err)
	}
	var img image.Image = b.Image()
	if got := img.Bounds(); got.Dx() != 50 {
		t.Errorf("external context resized to %v", got)
	}
	if err := b.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if owner.Context() == nil {
		t.Error("Close on ForContext backend must not release the owner's context")
	}
}
