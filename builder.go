package bubble

import "gonum.org/v1/gonum/floats/scalar"

// Geometry is the coordinate frame derived from a bounding rectangle and a
// style. All values follow directly from the inputs; nothing is clamped.
type Geometry struct {
	// Left, Top and Bottom are the bounds inset by half the stroke width.
	Left, Top, Bottom float64

	// Right is the right edge of the rounded body, pulled in by the
	// pointer width.
	Right float64

	// FarRight is the inset right edge of the bounds, where the apex sits.
	FarRight float64

	// EffectiveRadius is the corner radius less half the stroke width.
	// It may be negative.
	EffectiveRadius float64

	// TriangleExtent is the pointer size in absolute units.
	TriangleExtent Size

	// Apex is the pointer tip; TriangleTop and TriangleBottom are the
	// anchors where the pointer leaves and rejoins the body.
	Apex           Point
	TriangleTop    Point
	TriangleBottom Point

	// Control1 and Control2 are the quadratic control points of the upper
	// and lower pointer edges.
	Control1 Point
	Control2 Point
}

// Measure computes the geometry of a bubble drawn into rect with style s.
func Measure(rect Rect, s *Style) Geometry {
	half := s.strokeWidth / 2
	ext := Size{
		Width:  rect.Width * s.triangleSize.Width,
		Height: rect.Height * s.triangleSize.Height,
	}

	box := rect.Inset(half)
	g := Geometry{
		Left:            box.MinX(),
		Right:           box.MaxX() - ext.Width,
		FarRight:        box.MaxX(),
		Top:             box.MinY(),
		Bottom:          box.MaxY(),
		EffectiveRadius: s.cornerRadius - half,
		TriangleExtent:  ext,
	}

	g.Apex = Pt(g.FarRight, rect.MinY()+rect.Height*s.triangleY)
	g.TriangleTop = Pt(g.Right, g.Apex.Y-ext.Height/2)
	g.TriangleBottom = Pt(g.Right, g.Apex.Y+ext.Height/2)

	g.Control1 = Pt(g.TriangleTop.X+ext.Width*0.3, g.TriangleTop.Y+ext.Height*0.4)
	// The lower edge's x offset scales with the pointer height, not its
	// width. Existing bubbles depend on this shape.
	g.Control2 = Pt(g.TriangleTop.X+ext.Height*0.5, g.Apex.Y+ext.Height*0.10)
	return g
}

// Draw emits the bubble outline for rect onto dst as one closed contour
// and paints it with a single fill-then-stroke instruction.
//
// The segment order is fixed: left edge, top-left corner, top edge,
// top-right corner, right edge down to the pointer, the two pointer
// curves, bottom-right corner, bottom edge and bottom-left corner.
// Degenerate rectangles and styles produce degenerate but well-formed
// paths. The only error returned is the one from dst.FillStroke.
func Draw(dst Surface, rect Rect, s *Style) error {
	g := Measure(rect, s)
	r := g.EffectiveRadius

	dst.MoveTo(g.Left, g.Bottom-r)
	dst.LineTo(g.Left, g.Top+r)
	dst.ArcTo(g.Left, g.Top, g.Right, g.Top, r)
	dst.LineTo(g.Right-r, g.Top)
	dst.ArcTo(g.Right, g.Top, g.Right, g.Top+r, r)

	dst.LineTo(g.TriangleTop.X, g.TriangleTop.Y)
	dst.QuadraticTo(g.Control1.X, g.Control1.Y, g.Apex.X, g.Apex.Y)
	dst.QuadraticTo(g.Control2.X, g.Control2.Y, g.TriangleBottom.X, g.TriangleBottom.Y)

	dst.ArcTo(g.Right, g.Bottom, g.Right-r, g.Bottom, r)
	dst.LineTo(g.Left+r, g.Bottom)
	dst.ArcTo(g.Left, g.Bottom, g.Left, g.Bottom-r, r)
	dst.ClosePath()

	return dst.FillStroke(paintOf(s))
}

func paintOf(s *Style) Paint {
	return Paint{
		Fill:   s.fillColor,
		Stroke: s.borderColor,
		Width:  s.strokeWidth,
		Join:   LineJoinRound,
	}
}

// Outline is a recorded bubble: the ordered path commands, the paint
// instruction and the geometry they were derived from.
type Outline struct {
	commands []Command
	geometry Geometry
	paint    Paint
}

// Build records the bubble outline for rect and style s.
// Build keeps no state between calls and never fails.
func Build(rect Rect, s *Style) *Outline {
	rec := NewRecorder()
	_ = Draw(rec, rect, s) // Recorder.FillStroke never fails
	return &Outline{
		commands: rec.Commands(),
		geometry: Measure(rect, s),
		paint:    paintOf(s),
	}
}

// Commands returns the recorded commands, ending with the paint command.
func (o *Outline) Commands() []Command { return o.commands }

// Geometry returns the frame the outline was built from.
func (o *Outline) Geometry() Geometry { return o.geometry }

// Paint returns the fill-then-stroke instruction.
func (o *Outline) Paint() Paint { return o.paint }

// Playback replays the outline onto s.
func (o *Outline) Playback(s Surface) error {
	return Playback(o.commands, s)
}

// Start returns the first point of the contour.
func (o *Outline) Start() Point {
	start, _ := o.trace()
	return start
}

// End returns the current point reached by the last segment before the
// contour is closed, with arcs resolved as a surface would draw them.
func (o *Outline) End() Point {
	_, end := o.trace()
	return end
}

// Closed reports whether the contour is closed by a Close command.
func (o *Outline) Closed() bool {
	for _, c := range o.commands {
		if c.Type() == CmdClose {
			return true
		}
	}
	return false
}

func (o *Outline) trace() (start, end Point) {
	var cur Point
	for _, cmd := range o.commands {
		switch c := cmd.(type) {
		case MoveToCommand:
			start, cur = c.Point, c.Point
		case LineToCommand:
			cur = c.Point
		case ArcToCommand:
			if arc, ok := ResolveArcTo(cur, c.Tangent1, c.Tangent2, c.Radius); ok {
				cur = arc.End
			} else {
				cur = c.Tangent1
			}
		case QuadToCommand:
			cur = c.Point
		case CloseCommand:
			return start, cur
		}
	}
	return start, cur
}

// EqualWithin reports whether o and other emit the same commands and paint,
// comparing coordinates with absolute tolerance tol.
func (o *Outline) EqualWithin(other *Outline, tol float64) bool {
	if o.paint != other.paint || len(o.commands) != len(other.commands) {
		return false
	}
	eq := func(a, b Point) bool {
		return scalar.EqualWithinAbs(a.X, b.X, tol) && scalar.EqualWithinAbs(a.Y, b.Y, tol)
	}
	for i, cmd := range o.commands {
		switch a := cmd.(type) {
		case MoveToCommand:
			b, ok := other.commands[i].(MoveToCommand)
			if !ok || !eq(a.Point, b.Point) {
				return false
			}
		case LineToCommand:
			b, ok := other.commands[i].(LineToCommand)
			if !ok || !eq(a.Point, b.Point) {
				return false
			}
		case ArcToCommand:
			b, ok := other.commands[i].(ArcToCommand)
			if !ok || !eq(a.Tangent1, b.Tangent1) || !eq(a.Tangent2, b.Tangent2) ||
				!scalar.EqualWithinAbs(a.Radius, b.Radius, tol) {
				return false
			}
		case QuadToCommand:
			b, ok := other.commands[i].(QuadToCommand)
			if !ok || !eq(a.Control, b.Control) || !eq(a.Point, b.Point) {
				return false
			}
		default:
			if cmd != other.commands[i] {
				return false
			}
		}
	}
	return true
}
