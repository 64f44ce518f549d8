// Package raster provides a PNG backend for bubble outlines.
// It draws onto a git.sr.ht/~sbinet/gg context.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/bubble/backend/raster"
//
//	b, _ := bubble.NewBackend("png")
//	_ = bubble.Render(b, 320, 120, style)
//	_, _ = b.WriteTo(f)
//
// ArcTo is resolved with bubble.ResolveArcTo and drawn with gg's
// quadratic arc approximation. gg has no miter join, so miter joins fall
// back to bevel.
package raster

import (
	"fmt"
	"image"
	"io"

	"git.sr.ht/~sbinet/gg"

	"github.com/gogpu/bubble"
)

func init() {
	bubble.RegisterBackend("png", func() bubble.Backend {
		return NewBackend()
	})
}

// Backend renders bubble outlines to an RGBA image.
type Backend struct {
	ctx *gg.Context

	// start and cur mirror the path state so ArcTo can be resolved.
	start bubble.Point
	cur   bubble.Point
}

// Ensure Backend implements bubble.Backend.
var _ bubble.Backend = (*Backend)(nil)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin allocates a transparent width×height image.
func (b *Backend) Begin(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	b.ctx = gg.NewContext(width, height)
	b.start, b.cur = bubble.Point{}, bubble.Point{}
	return nil
}

// End finalizes the image. It is a no-op beyond checking Begin was called.
func (b *Backend) End() error {
	if b.ctx == nil {
		return bubble.ErrNotBegun
	}
	return nil
}

// MoveTo implements bubble.Surface.
func (b *Backend) MoveTo(x, y float64) {
	if b.ctx == nil {
		return
	}
	b.ctx.MoveTo(x, y)
	b.start = bubble.Pt(x, y)
	b.cur = b.start
}

// LineTo implements bubble.Surface.
func (b *Backend) LineTo(x, y float64) {
	if b.ctx == nil {
		return
	}
	b.ctx.LineTo(x, y)
	b.cur = bubble.Pt(x, y)
}

// ArcTo implements bubble.Surface.
func (b *Backend) ArcTo(x1, y1, x2, y2, radius float64) {
	if b.ctx == nil {
		return
	}
	arc, ok := bubble.ResolveArcTo(b.cur, bubble.Pt(x1, y1), bubble.Pt(x2, y2), radius)
	if !ok {
		b.LineTo(x1, y1)
		return
	}
	// DrawArc connects from the current point with a straight line.
	b.ctx.DrawArc(arc.Center.X, arc.Center.Y, arc.Radius, arc.StartAngle, arc.EndAngle)
	b.cur = arc.End
}

// QuadraticTo implements bubble.Surface.
func (b *Backend) QuadraticTo(cx, cy, x, y float64) {
	if b.ctx == nil {
		return
	}
	b.ctx.QuadraticTo(cx, cy, x, y)
	b.cur = bubble.Pt(x, y)
}

// ClosePath implements bubble.Surface.
func (b *Backend) ClosePath() {
	if b.ctx == nil {
		return
	}
	b.ctx.ClosePath()
	b.cur = b.start
}

// FillStroke implements bubble.Surface.
func (b *Backend) FillStroke(p bubble.Paint) error {
	if b.ctx == nil {
		return bubble.ErrNotBegun
	}
	b.ctx.SetColor(p.Fill.Color())
	b.ctx.FillPreserve()
	if p.Width > 0 {
		b.ctx.SetColor(p.Stroke.Color())
		b.ctx.SetLineWidth(p.Width)
		b.ctx.SetLineJoin(convertLineJoin(p.Join))
		b.ctx.Stroke()
	}
	b.ctx.ClearPath()
	return nil
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() image.Image {
	if b.ctx == nil {
		return nil
	}
	return b.ctx.Image()
}

// WriteTo encodes the image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.ctx == nil {
		return 0, bubble.ErrNotBegun
	}
	cw := &countingWriter{w: w}
	err := b.ctx.EncodePNG(cw)
	return cw.n, err
}

func convertLineJoin(join bubble.LineJoin) gg.LineJoin {
	if join == bubble.LineJoinRound {
		return gg.LineJoinRound
	}
	return gg.LineJoinBevel
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
