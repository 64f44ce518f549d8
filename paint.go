package bubble

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// String returns the SVG name of the join.
func (j LineJoin) String() string {
	switch j {
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

// Paint is a combined fill-then-stroke instruction for the current path.
type Paint struct {
	// Fill is the interior color.
	Fill RGBA

	// Stroke is the outline color.
	Stroke RGBA

	// Width is the stroke width. Zero still fills the path.
	Width float64

	// Join is the shape of line joins.
	Join LineJoin
}
