package draw

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdClear      CommandType = iota // Fill the whole canvas
	CmdStrokeRect                    // Outline an axis-aligned rectangle
	CmdLine                          // Draw a line segment
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdClear:      "Clear",
	CmdStrokeRect: "StrokeRect",
	CmdLine:       "Line",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// Point is a position on the canvas.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

// ClearCommand fills the canvas with a color.
type ClearCommand struct {
	Color Color
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// StrokeRectCommand outlines a rectangle.
type StrokeRectCommand struct {
	Rect  Rect
	Color Color
	Width float64
}

// Type implements Command.
func (StrokeRectCommand) Type() CommandType { return CmdStrokeRect }

// LineCommand draws a segment from A to B.
// Visible records whether the segment survived clipping; when false, A and B
// are the untrimmed endpoints.
type LineCommand struct {
	A, B    Point
	Color   Color
	Width   float64
	Visible bool
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }
