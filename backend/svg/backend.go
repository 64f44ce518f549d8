// Package svg provides an SVG backend for bubble outlines using
// github.com/ajstarks/svgo.
//
// Each FillStroke call emits one <path> element whose "d" attribute holds
// the accumulated path. ArcTo commands become a line to the first tangent
// point followed by an elliptical arc ("A") segment.
//
//	import _ "github.com/gogpu/bubble/backend/svg"
//
//	b, _ := bubble.NewBackend("svg")
package svg

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/gogpu/bubble"
)

func init() {
	bubble.RegisterBackend("svg", func() bubble.Backend {
		return NewBackend()
	})
}

// Backend writes bubble outlines as an SVG document.
type Backend struct {
	buf    bytes.Buffer
	canvas *svgo.SVG
	d      strings.Builder
	ended  bool

	start bubble.Point
	cur   bubble.Point
}

// Ensure Backend implements bubble.Backend.
var _ bubble.Backend = (*Backend)(nil)

// NewBackend creates a new SVG backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin starts a width×height document.
func (b *Backend) Begin(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("svg: invalid size %dx%d", width, height)
	}
	b.buf.Reset()
	b.d.Reset()
	b.ended = false
	b.canvas = svgo.New(&b.buf)
	b.canvas.Start(width, height)
	return nil
}

// End closes the document.
func (b *Backend) End() error {
	if b.canvas == nil {
		return bubble.ErrNotBegun
	}
	if !b.ended {
		b.canvas.End()
		b.ended = true
	}
	return nil
}

// MoveTo implements bubble.Surface.
func (b *Backend) MoveTo(x, y float64) {
	b.op('M', x, y)
	b.start = bubble.Pt(x, y)
	b.cur = b.start
}

// LineTo implements bubble.Surface.
func (b *Backend) LineTo(x, y float64) {
	b.op('L', x, y)
	b.cur = bubble.Pt(x, y)
}

// ArcTo implements bubble.Surface.
func (b *Backend) ArcTo(x1, y1, x2, y2, radius float64) {
	arc, ok := bubble.ResolveArcTo(b.cur, bubble.Pt(x1, y1), bubble.Pt(x2, y2), radius)
	if !ok {
		b.LineTo(x1, y1)
		return
	}
	b.LineTo(arc.Start.X, arc.Start.Y)
	sweep := 0.0
	if arc.Sweep() > 0 {
		sweep = 1
	}
	b.op('A', arc.Radius, arc.Radius, 0, 0, sweep, arc.End.X, arc.End.Y)
	b.cur = arc.End
}

// QuadraticTo implements bubble.Surface.
func (b *Backend) QuadraticTo(cx, cy, x, y float64) {
	b.op('Q', cx, cy, x, y)
	b.cur = bubble.Pt(x, y)
}

// ClosePath implements bubble.Surface.
func (b *Backend) ClosePath() {
	b.op('Z')
	b.cur = b.start
}

// FillStroke implements bubble.Surface.
func (b *Backend) FillStroke(p bubble.Paint) error {
	if b.canvas == nil || b.ended {
		return bubble.ErrNotBegun
	}
	b.canvas.Path(b.d.String(), style(p))
	b.d.Reset()
	return nil
}

// WriteTo writes the document produced so far.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.canvas == nil {
		return 0, bubble.ErrNotBegun
	}
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// Bytes returns the document produced so far.
func (b *Backend) Bytes() []byte {
	return b.buf.Bytes()
}

func (b *Backend) op(verb byte, args ...float64) {
	if b.d.Len() > 0 {
		b.d.WriteByte(' ')
	}
	b.d.WriteByte(verb)
	for _, v := range args {
		b.d.WriteByte(' ')
		b.d.WriteString(num(v))
	}
}

func style(p bubble.Paint) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "fill:%s", rgb(p.Fill))
	if p.Fill.A < 1 {
		fmt.Fprintf(&sb, ";fill-opacity:%s", num(p.Fill.A))
	}
	if p.Width > 0 {
		fmt.Fprintf(&sb, ";stroke:%s;stroke-width:%s;stroke-linejoin:%s",
			rgb(p.Stroke), num(p.Width), p.Join)
		if p.Stroke.A < 1 {
			fmt.Fprintf(&sb, ";stroke-opacity:%s", num(p.Stroke.A))
		}
	}
	return sb.String()
}

// rgb formats the opaque part of c as #rrggbb.
func rgb(c bubble.RGBA) string {
	c.A = 1
	return c.HexString()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
