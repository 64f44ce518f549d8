package bubble

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// Path commands
	CmdMoveTo  CommandType = iota // Start a contour
	CmdLineTo                     // Straight segment
	CmdArcTo                      // Tangent arc
	CmdQuadTo                     // Quadratic Bezier
	CmdClose                      // Close the contour

	// Paint commands
	CmdFillStroke // Fill then stroke the path
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdMoveTo:     "MoveTo",
	CmdLineTo:     "LineTo",
	CmdArcTo:      "ArcTo",
	CmdQuadTo:     "QuadTo",
	CmdClose:      "Close",
	CmdFillStroke: "FillStroke",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
// Commands are recorded by a Recorder and replayed onto a Surface.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// MoveToCommand starts a new contour at Point.
type MoveToCommand struct {
	Point Point
}

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

// LineToCommand draws a straight line to Point.
type LineToCommand struct {
	Point Point
}

// Type implements Command.
func (LineToCommand) Type() CommandType { return CmdLineTo }

// ArcToCommand draws a circular arc tangent to the lines
// current→Tangent1 and Tangent1→Tangent2. See ResolveArcTo.
type ArcToCommand struct {
	Tangent1 Point
	Tangent2 Point
	Radius   float64
}

// Type implements Command.
func (ArcToCommand) Type() CommandType { return CmdArcTo }

// QuadToCommand draws a quadratic Bezier curve.
type QuadToCommand struct {
	Control Point
	Point   Point
}

// Type implements Command.
func (QuadToCommand) Type() CommandType { return CmdQuadTo }

// CloseCommand closes the current contour back to its first point.
type CloseCommand struct{}

// Type implements Command.
func (CloseCommand) Type() CommandType { return CmdClose }

// FillStrokeCommand fills then strokes the recorded path.
type FillStrokeCommand struct {
	Paint Paint
}

// Type implements Command.
func (FillStrokeCommand) Type() CommandType { return CmdFillStroke }
