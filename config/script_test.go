package config

import (
	"errors"
	"testing"

	"github.com/gogpu/lineclip"
)

func TestParseEvent(t *testing.T) {
	tests := []struct {
		in   string
		want lineclip.Event
	}{
		{"press 300 200", lineclip.PointerPressed{Button: lineclip.ButtonPrimary, Pos: lineclip.Pt(300, 200)}},
		{"press 1.5 -2 right", lineclip.PointerPressed{Button: lineclip.ButtonSecondary, Pos: lineclip.Pt(1.5, -2)}},
		{"release", lineclip.PointerReleased{Button: lineclip.ButtonPrimary}},
		{"release middle", lineclip.PointerReleased{Button: lineclip.ButtonMiddle}},
		{"move 10 20", lineclip.PointerMoved{Pos: lineclip.Pt(10, 20)}},
		{"key zoom-in", lineclip.KeyPressed{Key: lineclip.KeyZoomIn}},
		{"KEY Escape", lineclip.KeyPressed{Key: lineclip.KeyExit}},
		{"key -", lineclip.KeyPressed{Key: lineclip.KeyZoomOut}},
		{"  close  ", lineclip.CloseRequested{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEvent(tt.in)
			if err != nil {
				t.Fatalf("ParseEvent(%q) = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseEvent(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseEventInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"jump",
		"press 1",
		"press x 1",
		"press 1 2 thumb",
		"move 1 2 3",
		"key",
		"key space",
		"release left right",
	} {
		if _, err := ParseEvent(in); !errors.Is(err, ErrInvalid) {
			t.Errorf("ParseEvent(%q) = %v, want ErrInvalid", in, err)
		}
	}
}

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(`
frames:
  - [press 300 200]
  - [move 350 260]
  - [release, key zoom-in]
  - []
  - [key exit]
`))
	if err != nil {
		t.Fatalf("ParseScript() = %v", err)
	}
	if len(s.Frames) != 5 {
		t.Fatalf("got %d frames, want 5", len(s.Frames))
	}
	if len(s.Frames[2]) != 2 || len(s.Frames[3]) != 0 {
		t.Errorf("frame sizes = %d, %d", len(s.Frames[2]), len(s.Frames[3]))
	}

	// Replaying the script through a scene drags and scales the region.
	cfg := Default()
	scene, err := cfg.Scene()
	if err != nil {
		t.Fatal(err)
	}
	src := s.Source()
	for src.Remaining() > 0 {
		scene.Frame(src.Drain())
	}
	if got := scene.Region().Origin(); got != lineclip.Pt(250, 210) {
		t.Errorf("origin = %v, want (250, 210)", got)
	}
	if scene.Region().Scale() != 1.1 {
		t.Errorf("scale = %g", scene.Region().Scale())
	}
	if !scene.Closed() {
		t.Error("key exit should close the scene")
	}
}

func TestParseScriptErrorPosition(t *testing.T) {
	_, err := ParseScript([]byte("frames:\n  - [close]\n  - [move 1]\n"))
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got[:13] != "frames[1][0]:" {
		t.Errorf("error = %q, want frames[1][0] prefix", got)
	}
}

func TestParseScriptUnknownField(t *testing.T) {
	if _, err := ParseScript([]byte("frame: []\n")); err == nil {
		t.Error("unknown top-level key should fail")
	}
}
