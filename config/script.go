package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/lineclip"
)

// Script is a recorded input session: one batch of events per frame.
//
//	frames:
//	  - [press 300 200]
//	  - [move 340 250]
//	  - [release, key zoom-in]
//	  - []
//	  - [key exit]
//
// Event syntax:
//
//	press X Y [primary|secondary|middle]
//	release [primary|secondary|middle]
//	move X Y
//	key zoom-in|zoom-out|exit|other
//	close
type Script struct {
	Frames [][]lineclip.Event
}

type yamlScript struct {
	Frames [][]string `yaml:"frames"`
}

// LoadScript reads a replay script from path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes a YAML replay script.
func ParseScript(data []byte) (*Script, error) {
	var ys yamlScript
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ys); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse script: %w", err)
	}

	s := &Script{Frames: make([][]lineclip.Event, len(ys.Frames))}
	for i, frame := range ys.Frames {
		events := make([]lineclip.Event, 0, len(frame))
		for j, text := range frame {
			e, err := ParseEvent(text)
			if err != nil {
				return nil, fmt.Errorf("frames[%d][%d]: %w", i, j, err)
			}
			events = append(events, e)
		}
		s.Frames[i] = events
	}
	return s, nil
}

// Source returns a frame source replaying the script.
func (s *Script) Source() *lineclip.ScriptSource {
	return lineclip.NewScriptSource(s.Frames)
}

// ParseEvent parses one event in script syntax.
func ParseEvent(text string) (lineclip.Event, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty event", ErrInvalid)
	}

	switch verb, args := strings.ToLower(fields[0]), fields[1:]; verb {
	case "press":
		if len(args) != 2 && len(args) != 3 {
			return nil, fmt.Errorf("%w: usage: press X Y [button]", ErrInvalid)
		}
		p, err := parsePoint(args[0], args[1])
		if err != nil {
			return nil, err
		}
		b := lineclip.ButtonPrimary
		if len(args) == 3 {
			if b, err = parseButton(args[2]); err != nil {
				return nil, err
			}
		}
		return lineclip.PointerPressed{Button: b, Pos: p}, nil

	case "release":
		if len(args) > 1 {
			return nil, fmt.Errorf("%w: usage: release [button]", ErrInvalid)
		}
		b := lineclip.ButtonPrimary
		if len(args) == 1 {
			var err error
			if b, err = parseButton(args[0]); err != nil {
				return nil, err
			}
		}
		return lineclip.PointerReleased{Button: b}, nil

	case "move":
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: usage: move X Y", ErrInvalid)
		}
		p, err := parsePoint(args[0], args[1])
		if err != nil {
			return nil, err
		}
		return lineclip.PointerMoved{Pos: p}, nil

	case "key":
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: usage: key NAME", ErrInvalid)
		}
		k, err := parseKey(args[0])
		if err != nil {
			return nil, err
		}
		return lineclip.KeyPressed{Key: k}, nil

	case "close":
		return lineclip.CloseRequested{}, nil

	default:
		return nil, fmt.Errorf("%w: unknown event %q", ErrInvalid, verb)
	}
}

func parsePoint(xs, ys string) (lineclip.Point, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return lineclip.Point{}, fmt.Errorf("%w: bad x %q", ErrInvalid, xs)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return lineclip.Point{}, fmt.Errorf("%w: bad y %q", ErrInvalid, ys)
	}
	return lineclip.Pt(x, y), nil
}

func parseButton(s string) (lineclip.Button, error) {
	switch strings.ToLower(s) {
	case "primary", "left":
		return lineclip.ButtonPrimary, nil
	case "secondary", "right":
		return lineclip.ButtonSecondary, nil
	case "middle":
		return lineclip.ButtonMiddle, nil
	}
	return 0, fmt.Errorf("%w: unknown button %q", ErrInvalid, s)
}

func parseKey(s string) (lineclip.Key, error) {
	switch strings.ToLower(s) {
	case "zoom-in", "+", "=":
		return lineclip.KeyZoomIn, nil
	case "zoom-out", "-":
		return lineclip.KeyZoomOut, nil
	case "exit", "escape":
		return lineclip.KeyExit, nil
	case "other":
		return lineclip.KeyOther, nil
	}
	return 0, fmt.Errorf("%w: unknown key %q", ErrInvalid, s)
}
