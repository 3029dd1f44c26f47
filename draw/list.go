package draw

import "fmt"

// List is an ordered sequence of draw commands for one frame.
// The zero value is an empty list with no canvas size.
type List struct {
	width, height int
	commands      []Command
}

// NewList creates an empty list for a canvas of the given size.
func NewList(width, height int) *List {
	return &List{width: width, height: height}
}

// Width returns the canvas width.
func (l *List) Width() int { return l.width }

// Height returns the canvas height.
func (l *List) Height() int { return l.height }

// SetSize changes the canvas size recorded for playback.
func (l *List) SetSize(width, height int) {
	l.width, l.height = width, height
}

// Commands returns the recorded commands.
func (l *List) Commands() []Command { return l.commands }

// Len returns the number of recorded commands.
func (l *List) Len() int { return len(l.commands) }

// Reset removes all commands, keeping the allocated capacity.
func (l *List) Reset() {
	clear(l.commands)
	l.commands = l.commands[:0]
}

// Clear records a canvas clear.
func (l *List) Clear(c Color) {
	l.commands = append(l.commands, ClearCommand{Color: c})
}

// StrokeRect records a rectangle outline.
func (l *List) StrokeRect(r Rect, c Color, width float64) {
	l.commands = append(l.commands, StrokeRectCommand{Rect: r, Color: c, Width: width})
}

// Line records a segment.
func (l *List) Line(a, b Point, c Color, width float64, visible bool) {
	l.commands = append(l.commands, LineCommand{A: a, B: b, Color: c, Width: width, Visible: visible})
}

// Lines returns the line commands in order.
func (l *List) Lines() []LineCommand {
	var out []LineCommand
	for _, cmd := range l.commands {
		if lc, ok := cmd.(LineCommand); ok {
			out = append(out, lc)
		}
	}
	return out
}

// Playback replays the list to the given backend.
func (l *List) Playback(backend Backend) error {
	if err := backend.Begin(l.width, l.height); err != nil {
		return err
	}

	for i, cmd := range l.commands {
		switch c := cmd.(type) {
		case ClearCommand:
			backend.Clear(c.Color)
		case StrokeRectCommand:
			backend.StrokeRect(c.Rect, c.Color, c.Width)
		case LineCommand:
			backend.Line(c.A, c.B, c.Color, c.Width)
		default:
			return fmt.Errorf("draw: command %d: unsupported type %T", i, cmd)
		}
	}

	return backend.End()
}
