package bubble

import "math"

// collinearEpsilon bounds |sin| of the corner angle below which the
// tangent lines are treated as parallel.
const collinearEpsilon = 1e-12

// TangentArc is the circular arc described by an ArcTo command, resolved
// against the point the path was at before the command.
//
// Angles are in radians measured with Y pointing down, so increasing
// angles run clockwise on screen. EndAngle-StartAngle lies in (-π, π].
type TangentArc struct {
	// Start is the tangent point on the line current→P1.
	Start Point
	// End is the tangent point on the line P1→P2 and the new current point.
	End Point
	// Center of the circle.
	Center Point
	// Radius is the absolute radius.
	Radius float64

	StartAngle float64
	EndAngle   float64
}

// Sweep returns the signed angular extent of the arc.
func (a TangentArc) Sweep() float64 {
	return a.EndAngle - a.StartAngle
}

// ResolveArcTo resolves ArcTo(p1, p2, radius) issued at current point p0.
//
// The arc is tangent to the line p0→p1 and to the line p1→p2. The path
// first runs straight to the arc's Start. When radius is zero, when two
// of the points coincide, or when they are collinear, there is no arc:
// ok is false and the command degenerates to a line to p1.
//
// A negative radius is not rejected. The tangent points then lie beyond
// the corner and the center on its outer side, which draws the arc
// inverted.
func ResolveArcTo(p0, p1, p2 Point, radius float64) (arc TangentArc, ok bool) {
	if radius == 0 {
		Logger().Debug("bubble: arc-to degenerates to line", "reason", "zero radius")
		return TangentArc{}, false
	}
	u1 := p0.Sub(p1).Normalize()
	u2 := p2.Sub(p1).Normalize()
	if u1 == (Point{}) || u2 == (Point{}) {
		Logger().Debug("bubble: arc-to degenerates to line", "reason", "coincident points")
		return TangentArc{}, false
	}
	sinTheta := math.Abs(u1.Cross(u2))
	if sinTheta < collinearEpsilon {
		Logger().Debug("bubble: arc-to degenerates to line", "reason", "collinear points")
		return TangentArc{}, false
	}

	theta := math.Acos(math.Max(-1, math.Min(1, u1.Dot(u2))))
	half := theta / 2
	d := radius / math.Tan(half)
	bisector := u1.Add(u2).Normalize()

	arc.Start = p1.Add(u1.Mul(d))
	arc.End = p1.Add(u2.Mul(d))
	arc.Center = p1.Add(bisector.Mul(radius / math.Sin(half)))
	arc.Radius = math.Abs(radius)
	arc.StartAngle = math.Atan2(arc.Start.Y-arc.Center.Y, arc.Start.X-arc.Center.X)
	end := math.Atan2(arc.End.Y-arc.Center.Y, arc.End.X-arc.Center.X)
	arc.EndAngle = arc.StartAngle + normalizeSweep(end-arc.StartAngle)
	return arc, true
}

// normalizeSweep maps an angle difference into (-π, π].
func normalizeSweep(d float64) float64 {
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
