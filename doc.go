// Package bubble builds speech bubble outlines: a rounded rectangle with a
// curved pointer triangle protruding from its right edge.
//
// # Overview
//
// The outline is computed from a bounding Rect and a Style and emitted as
// an ordered list of path commands onto a Surface, followed by a single
// fill-then-stroke Paint instruction. Computation is stateless and never
// fails; the only validation happens when a Style field is written.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/bubble"
//	    _ "github.com/gogpu/bubble/backend/svg"
//	)
//
//	style := bubble.NewStyle(bubble.WithCornerRadius(12))
//	b, _ := bubble.NewBackend("svg")
//	_ = bubble.Render(b, 320, 160, style)
//	_, _ = b.WriteTo(os.Stdout)
//
// # Recording
//
// Build records the commands into an Outline that can be inspected,
// compared with EqualWithin and replayed onto any Surface with Playback.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// The path is laid out on the bounds inset by half the stroke width, so
// the stroke stays inside the bounds.
package bubble
