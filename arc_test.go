package bubble

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestResolveArcToCorner(t *testing.T) {
	// Left edge going up, turning right along the top edge.
	arc, ok := ResolveArcTo(Pt(0, 10), Pt(0, 0), Pt(10, 0), 5)
	if !ok {
		t.Fatal("ResolveArcTo() ok = false, want true")
	}
	if !near(arc.Start, Pt(0, 5)) || !near(arc.End, Pt(5, 0)) {
		t.Errorf("tangent points = %v, %v; want (0,5), (5,0)", arc.Start, arc.End)
	}
	if !near(arc.Center, Pt(5, 5)) {
		t.Errorf("Center = %v, want (5,5)", arc.Center)
	}
	if arc.Radius != 5 {
		t.Errorf("Radius = %v, want 5", arc.Radius)
	}
	if !scalar.EqualWithinAbs(arc.Sweep(), math.Pi/2, tol) {
		t.Errorf("Sweep() = %v, want π/2", arc.Sweep())
	}
	if !scalar.EqualWithinAbs(arc.StartAngle, math.Pi, tol) {
		t.Errorf("StartAngle = %v, want π", arc.StartAngle)
	}
}

func TestResolveArcToCounterClockwise(t *testing.T) {
	// Top edge going left, turning down the left edge.
	arc, ok := ResolveArcTo(Pt(10, 0), Pt(0, 0), Pt(0, 10), 4)
	if !ok {
		t.Fatal("ResolveArcTo() ok = false")
	}
	if !near(arc.End, Pt(0, 4)) {
		t.Errorf("End = %v, want (0,4)", arc.End)
	}
	if !scalar.EqualWithinAbs(arc.Sweep(), -math.Pi/2, tol) {
		t.Errorf("Sweep() = %v, want -π/2", arc.Sweep())
	}
}

func TestResolveArcToObtuse(t *testing.T) {
	// 120° corner: tangent distance is r/tan(60°).
	p2 := Pt(10*math.Cos(math.Pi/3), -10*math.Sin(math.Pi/3))
	arc, ok := ResolveArcTo(Pt(-10, 0), Pt(0, 0), p2, 3)
	if !ok {
		t.Fatal("ResolveArcTo() ok = false")
	}
	wantD := 3 / math.Tan(math.Pi/3)
	if d := arc.Start.Distance(Pt(0, 0)); !scalar.EqualWithinAbs(d, wantD, tol) {
		t.Errorf("tangent distance = %v, want %v", d, wantD)
	}
	if d := arc.Center.Distance(arc.End); !scalar.EqualWithinAbs(d, 3, tol) {
		t.Errorf("|Center-End| = %v, want 3", d)
	}
}

func TestResolveArcToNegativeRadius(t *testing.T) {
	arc, ok := ResolveArcTo(Pt(0, 10), Pt(0, 0), Pt(10, 0), -5)
	if !ok {
		t.Fatal("ResolveArcTo() ok = false")
	}
	if !near(arc.Start, Pt(0, -5)) || !near(arc.End, Pt(-5, 0)) {
		t.Errorf("tangent points = %v, %v; want (0,-5), (-5,0)", arc.Start, arc.End)
	}
	if !near(arc.Center, Pt(-5, -5)) {
		t.Errorf("Center = %v, want (-5,-5)", arc.Center)
	}
	if arc.Radius != 5 {
		t.Errorf("Radius = %v, want 5", arc.Radius)
	}
}

func TestResolveArcToDegenerate(t *testing.T) {
	tests := []struct {
		name       string
		p0, p1, p2 Point
		r          float64
	}{
		{"zero radius", Pt(0, 10), Pt(0, 0), Pt(10, 0), 0},
		{"current at corner", Pt(0, 0), Pt(0, 0), Pt(10, 0), 5},
		{"second tangent at corner", Pt(0, 10), Pt(0, 0), Pt(0, 0), 5},
		{"collinear", Pt(0, 10), Pt(0, 0), Pt(0, -10), 5},
		{"reversal", Pt(0, 10), Pt(0, 0), Pt(0, 5), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ResolveArcTo(tt.p0, tt.p1, tt.p2, tt.r); ok {
				t.Error("ResolveArcTo() ok = true, want false")
			}
		})
	}
}

func TestNormalizeSweep(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
	}
	for _, tt := range tests {
		if got := normalizeSweep(tt.in); !scalar.EqualWithinAbs(got, tt.want, tol) {
			t.Errorf("normalizeSweep(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
