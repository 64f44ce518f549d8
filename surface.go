package bubble

// Surface is a 2D drawing target that accepts path construction commands
// followed by a paint instruction.
//
// Coordinates are in the surface's user space with Y pointing down.
// Path methods never fail; FillStroke reports errors of the underlying
// target and clears the current path.
type Surface interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)

	// ArcTo appends a circular arc of the given radius tangent to the line
	// from the current point to (x1, y1) and to the line from (x1, y1) to
	// (x2, y2), preceded by a straight segment to the first tangent point.
	ArcTo(x1, y1, x2, y2, radius float64)

	QuadraticTo(cx, cy, x, y float64)
	ClosePath()

	// FillStroke fills the current path, then strokes it.
	FillStroke(p Paint) error
}

// Recorder is a Surface that captures commands instead of drawing them.
// The zero value is ready to use.
type Recorder struct {
	commands []Command
}

// Ensure Recorder implements Surface.
var _ Surface = (*Recorder)(nil)

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{commands: make([]Command, 0, 16)}
}

// MoveTo implements Surface.
func (r *Recorder) MoveTo(x, y float64) {
	r.commands = append(r.commands, MoveToCommand{Point: Pt(x, y)})
}

// LineTo implements Surface.
func (r *Recorder) LineTo(x, y float64) {
	r.commands = append(r.commands, LineToCommand{Point: Pt(x, y)})
}

// ArcTo implements Surface.
func (r *Recorder) ArcTo(x1, y1, x2, y2, radius float64) {
	r.commands = append(r.commands, ArcToCommand{
		Tangent1: Pt(x1, y1),
		Tangent2: Pt(x2, y2),
		Radius:   radius,
	})
}

// QuadraticTo implements Surface.
func (r *Recorder) QuadraticTo(cx, cy, x, y float64) {
	r.commands = append(r.commands, QuadToCommand{Control: Pt(cx, cy), Point: Pt(x, y)})
}

// ClosePath implements Surface.
func (r *Recorder) ClosePath() {
	r.commands = append(r.commands, CloseCommand{})
}

// FillStroke implements Surface.
func (r *Recorder) FillStroke(p Paint) error {
	r.commands = append(r.commands, FillStrokeCommand{Paint: p})
	return nil
}

// Commands returns the recorded commands.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Playback replays commands onto s in order.
// It stops at the first FillStroke error.
func Playback(commands []Command, s Surface) error {
	for _, cmd := range commands {
		switch c := cmd.(type) {
		case MoveToCommand:
			s.MoveTo(c.Point.X, c.Point.Y)
		case LineToCommand:
			s.LineTo(c.Point.X, c.Point.Y)
		case ArcToCommand:
			s.ArcTo(c.Tangent1.X, c.Tangent1.Y, c.Tangent2.X, c.Tangent2.Y, c.Radius)
		case QuadToCommand:
			s.QuadraticTo(c.Control.X, c.Control.Y, c.Point.X, c.Point.Y)
		case CloseCommand:
			s.ClosePath()
		case FillStrokeCommand:
			if err := s.FillStroke(c.Paint); err != nil {
				return err
			}
		}
	}
	return nil
}
