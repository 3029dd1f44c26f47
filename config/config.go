// Package config loads scene descriptions and replay scripts from YAML.
//
// A scene file describes the window, the initial clip region, zoom steps,
// colors and the segments to clip:
//
//	window:
//	  width: 800
//	  height: 600
//	  title: Cohen-Sutherland Line Clipping
//	  fps: 60
//	region: {x: 200, y: 150, width: 400, height: 300, min_scale: 0.05}
//	zoom: {in: 1.1, out: 0.9}
//	style:
//	  inside: "#ff0000"
//	  outside: "#00ff00"
//	  outline: "#ffffff"
//	  background: "#000000"
//	  line_width: 1
//	  outline_width: 2
//	segments:
//	  - [100, 100, 700, 500]
//	  - [400, 50, 400, 550]
//
// Omitted fields keep the values of Default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/lineclip"
	"github.com/gogpu/lineclip/draw"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config is a complete scene description.
type Config struct {
	Window   Window       `yaml:"window"`
	Region   Region       `yaml:"region"`
	Zoom     Zoom         `yaml:"zoom"`
	Style    Style        `yaml:"style"`
	Segments [][4]float64 `yaml:"segments"`
}

// Window describes the presentation surface.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

// Region is the initial clip rectangle.
type Region struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	MinScale float64 `yaml:"min_scale"`
}

// Zoom holds the factors applied per zoom key press.
type Zoom struct {
	In  float64 `yaml:"in"`
	Out float64 `yaml:"out"`
}

// Style holds hex colors and stroke widths.
type Style struct {
	Inside       string  `yaml:"inside"`
	Outside      string  `yaml:"outside"`
	Outline      string  `yaml:"outline"`
	Background   string  `yaml:"background"`
	LineWidth    float64 `yaml:"line_width"`
	OutlineWidth float64 `yaml:"outline_width"`
}

// Default returns the classic demo scene: an 800x600 canvas, the region at
// (200, 150) sized 400x300 and five test lines.
func Default() *Config {
	return &Config{
		Window: Window{
			Width:  lineclip.DefaultCanvasWidth,
			Height: lineclip.DefaultCanvasHeight,
			Title:  "Cohen-Sutherland Line Clipping",
			FPS:    60,
		},
		Region: Region{
			X: 200, Y: 150, Width: 400, Height: 300,
			MinScale: lineclip.DefaultMinScale,
		},
		Zoom: Zoom{In: lineclip.DefaultZoomIn, Out: lineclip.DefaultZoomOut},
		Style: Style{
			Inside:       "#ff0000",
			Outside:      "#00ff00",
			Outline:      "#ffffff",
			Background:   "#000000",
			LineWidth:    1,
			OutlineWidth: 2,
		},
		Segments: [][4]float64{
			{100, 100, 700, 500},
			{100, 500, 700, 100},
			{400, 50, 400, 550},
			{50, 300, 750, 300},
			{150, 150, 650, 450},
		},
	}
}

// Load reads and validates a scene file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks value ranges and color syntax.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		add("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS < 0 {
		add("window.fps %d must not be negative", c.Window.FPS)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"region.x", c.Region.X},
		{"region.y", c.Region.Y},
		{"region.width", c.Region.Width},
		{"region.height", c.Region.Height},
	} {
		if !finite(f.v) {
			add("%s must be finite", f.name)
		}
	}
	if c.Region.Width < 0 || c.Region.Height < 0 {
		add("region size %gx%g must not be negative", c.Region.Width, c.Region.Height)
	}
	if !(c.Region.MinScale > 0 && c.Region.MinScale <= 1) {
		add("region.min_scale %g must be in (0, 1]", c.Region.MinScale)
	}
	if !(c.Zoom.In > 0) || !(c.Zoom.Out > 0) {
		add("zoom factors in=%g out=%g must be positive", c.Zoom.In, c.Zoom.Out)
	}
	if _, err := c.Style.parse(); err != nil {
		add("%v", err)
	}
	for i, s := range c.Segments {
		for _, v := range s {
			if !finite(v) {
				add("segments[%d] has a non-finite coordinate", i)
				break
			}
		}
	}

	return errors.Join(errs...)
}

// Scene builds the scene described by c.
func (c *Config) Scene() (*lineclip.Scene, error) {
	style, err := c.Style.parse()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	region := lineclip.NewRegion(c.Region.X, c.Region.Y, c.Region.Width, c.Region.Height,
		lineclip.WithMinScale(c.Region.MinScale))

	segments := make([]lineclip.Segment, len(c.Segments))
	for i, s := range c.Segments {
		segments[i] = lineclip.Seg(s[0], s[1], s[2], s[3])
	}

	return lineclip.NewScene(region, segments,
		lineclip.WithStyle(style),
		lineclip.WithCanvasSize(c.Window.Width, c.Window.Height),
		lineclip.WithControllerOptions(lineclip.WithZoomFactors(c.Zoom.In, c.Zoom.Out)),
	), nil
}

func (s Style) parse() (lineclip.Style, error) {
	out := lineclip.Style{LineWidth: s.LineWidth, OutlineWidth: s.OutlineWidth}
	for _, f := range []struct {
		name string
		hex  string
		dst  *draw.Color
	}{
		{"style.inside", s.Inside, &out.Inside},
		{"style.outside", s.Outside, &out.Outside},
		{"style.outline", s.Outline, &out.Outline},
		{"style.background", s.Background, &out.Background},
	} {
		c, err := draw.ParseHex(f.hex)
		if err != nil {
			return out, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = c
	}
	if !(s.LineWidth > 0) || !(s.OutlineWidth > 0) {
		return out, fmt.Errorf("style widths line=%g outline=%g must be positive", s.LineWidth, s.OutlineWidth)
	}
	return out, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
