package lineclip

import (
	"context"
	"log/slog"

	"github.com/gogpu/lineclip/draw"
)

// Default canvas size, matching the demo window.
const (
	DefaultCanvasWidth  = 800
	DefaultCanvasHeight = 600
)

// Style holds the fixed colors and widths used when emitting a frame.
type Style struct {
	Inside       draw.Color // trimmed, visible segments
	Outside      draw.Color // rejected segments, drawn untrimmed
	Outline      draw.Color // clip region outline
	Background   draw.Color
	LineWidth    float64
	OutlineWidth float64
}

// DefaultStyle returns red inside, green outside and a white 2px outline on
// black.
func DefaultStyle() Style {
	return Style{
		Inside:       draw.Red,
		Outside:      draw.Green,
		Outline:      draw.White,
		Background:   draw.Black,
		LineWidth:    1,
		OutlineWidth: 2,
	}
}

// SceneOption configures a Scene during creation.
type SceneOption func(*sceneOptions)

type sceneOptions struct {
	style      Style
	width      int
	height     int
	controller []ControllerOption
}

func defaultSceneOptions() sceneOptions {
	return sceneOptions{
		style:  DefaultStyle(),
		width:  DefaultCanvasWidth,
		height: DefaultCanvasHeight,
	}
}

// WithStyle sets the colors and widths of emitted commands.
func WithStyle(s Style) SceneOption {
	return func(o *sceneOptions) {
		o.style = s
	}
}

// WithCanvasSize sets the canvas size recorded in each frame's draw list.
// Non-positive values keep the defaults.
func WithCanvasSize(width, height int) SceneOption {
	return func(o *sceneOptions) {
		if width > 0 {
			o.width = width
		}
		if height > 0 {
			o.height = height
		}
	}
}

// WithControllerOptions forwards options to the scene's Controller.
func WithControllerOptions(opts ...ControllerOption) SceneOption {
	return func(o *sceneOptions) {
		o.controller = append(o.controller, opts...)
	}
}

// Scene owns the segments and the clip region with its controller, and turns
// each frame's input into draw instructions.
type Scene struct {
	segments []Segment
	region   *Region
	ctrl     *Controller
	style    Style
	width    int
	height   int
	closed   bool
	frames   uint64
}

// NewScene creates a scene over region. The segments slice is copied.
func NewScene(region *Region, segments []Segment, opts ...SceneOption) *Scene {
	o := defaultSceneOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Scene{
		segments: append([]Segment(nil), segments...),
		region:   region,
		ctrl:     NewController(region, o.controller...),
		style:    o.style,
		width:    o.width,
		height:   o.height,
	}
}

// Region returns the clip region.
func (s *Scene) Region() *Region { return s.region }

// Controller returns the region's controller.
func (s *Scene) Controller() *Controller { return s.ctrl }

// Style returns the emit style.
func (s *Scene) Style() Style { return s.style }

// CanvasSize returns the canvas size recorded in draw lists.
func (s *Scene) CanvasSize() (width, height int) { return s.width, s.height }

// SetCanvasSize updates the canvas size, for example after a window resize.
func (s *Scene) SetCanvasSize(width, height int) {
	if width > 0 && height > 0 {
		s.width, s.height = width, height
	}
}

// Segments returns a copy of the stored segments.
func (s *Scene) Segments() []Segment {
	return append([]Segment(nil), s.segments...)
}

// Closed reports whether an exit key or close request has been seen.
func (s *Scene) Closed() bool { return s.closed }

// Frames returns the number of frames produced so far.
func (s *Scene) Frames() uint64 { return s.frames }

// Frame folds the frame's events into the region, re-clips every segment
// against the settled region and returns the frame's draw instructions.
//
// The list holds a background clear, the region outline and then one line
// per segment in storage order.
func (s *Scene) Frame(events []Event) *draw.List {
	list := draw.NewList(s.width, s.height)
	s.FrameInto(list, events)
	return list
}

// FrameInto is like Frame but records into list after resetting it.
func (s *Scene) FrameInto(list *draw.List, events []Event) {
	debug := Logger().Enabled(context.Background(), slog.LevelDebug)
	for _, e := range events {
		if debug {
			Logger().Debug("input", "frame", s.frames, "event", DescribeEvent(e))
		}
		switch ev := e.(type) {
		case CloseRequested:
			s.closed = true
		case KeyPressed:
			if ev.Key == KeyExit {
				s.closed = true
			}
		}
	}
	s.ctrl.Apply(events)

	list.Reset()
	list.SetSize(s.width, s.height)
	list.Clear(s.style.Background)

	bounds := s.region.Bounds()
	list.StrokeRect(draw.Rect{X: bounds.X, Y: bounds.Y, W: bounds.W, H: bounds.H},
		s.style.Outline, s.style.OutlineWidth)

	for _, seg := range s.segments {
		visible, a, b := ClipRect(seg, bounds)
		if visible {
			list.Line(drawPt(a), drawPt(b), s.style.Inside, s.style.LineWidth, true)
			continue
		}
		list.Line(drawPt(seg.P1()), drawPt(seg.P2()), s.style.Outside, s.style.LineWidth, false)
	}

	s.frames++
}

func drawPt(p Point) draw.Point {
	return draw.Point{X: p.X, Y: p.Y}
}
