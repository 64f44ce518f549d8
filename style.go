package bubble

// Default style values.
const (
	DefaultStrokeWidth       = 2.0
	DefaultCornerRadius      = 10.0
	DefaultTriangleYPosition = 0.6
)

// DefaultTriangleSize returns the pointer size, as a fraction of the
// bounds, used by NewStyle.
func DefaultTriangleSize() Size {
	return Size{Width: 0.1, Height: 0.2}
}

// Style holds the configurable look of a bubble.
//
// Every accepted write calls the invalidator installed with
// WithInvalidator or SetInvalidator, so a host can schedule a redraw.
// Style does no locking: concurrent writers must be serialized by the
// caller, while concurrent Build calls against an unchanging Style are safe.
type Style struct {
	strokeWidth  float64
	cornerRadius float64
	borderColor  RGBA
	fillColor    RGBA
	triangleSize Size
	triangleY    float64

	invalidate func()
}

// StyleOption configures a Style during creation.
//
// Example:
//
//	s := bubble.NewStyle(
//	    bubble.WithStrokeWidth(3),
//	    bubble.WithColors(bubble.Black, bubble.White),
//	)
type StyleOption func(*Style)

// WithStrokeWidth sets the border width.
func WithStrokeWidth(w float64) StyleOption {
	return func(s *Style) { s.strokeWidth = w }
}

// WithCornerRadius sets the body corner radius.
func WithCornerRadius(r float64) StyleOption {
	return func(s *Style) { s.cornerRadius = r }
}

// WithColors sets the border and fill colors.
func WithColors(border, fill RGBA) StyleOption {
	return func(s *Style) {
		s.borderColor = border
		s.fillColor = fill
	}
}

// WithTriangle sets the pointer size and vertical position. The values go
// through the same validation as SetTriangleSize and SetTriangleYPosition.
func WithTriangle(size Size, y float64) StyleOption {
	return func(s *Style) {
		s.SetTriangleSize(size)
		s.SetTriangleYPosition(y)
	}
}

// WithInvalidator installs the callback run after every accepted write.
func WithInvalidator(fn func()) StyleOption {
	return func(s *Style) { s.invalidate = fn }
}

// NewStyle creates a Style with the default look: a 2px black border,
// 10px corners, light gray fill and a pointer at 60% of the height.
// Options are applied in order; the invalidator is not called for them.
func NewStyle(opts ...StyleOption) *Style {
	s := &Style{
		strokeWidth:  DefaultStrokeWidth,
		cornerRadius: DefaultCornerRadius,
		borderColor:  Black,
		fillColor:    LightGray,
		triangleSize: DefaultTriangleSize(),
		triangleY:    DefaultTriangleYPosition,
	}
	var fn func()
	for _, opt := range opts {
		opt(s)
		if s.invalidate != nil {
			fn, s.invalidate = s.invalidate, nil
		}
	}
	s.invalidate = fn
	return s
}

// SetInvalidator replaces the callback run after every accepted write.
// Pass nil to remove it.
func (s *Style) SetInvalidator(fn func()) {
	s.invalidate = fn
}

func (s *Style) changed() {
	if s.invalidate != nil {
		s.invalidate()
	}
}

// StrokeWidth returns the border width.
func (s *Style) StrokeWidth() float64 { return s.strokeWidth }

// SetStrokeWidth sets the border width. The value is not checked against
// the corner radius or the bounds.
func (s *Style) SetStrokeWidth(w float64) {
	s.strokeWidth = w
	s.changed()
}

// CornerRadius returns the body corner radius.
func (s *Style) CornerRadius() float64 { return s.cornerRadius }

// SetCornerRadius sets the body corner radius.
func (s *Style) SetCornerRadius(r float64) {
	s.cornerRadius = r
	s.changed()
}

// BorderColor returns the stroke color.
func (s *Style) BorderColor() RGBA { return s.borderColor }

// SetBorderColor sets the stroke color.
func (s *Style) SetBorderColor(c RGBA) {
	s.borderColor = c
	s.changed()
}

// FillColor returns the interior color.
func (s *Style) FillColor() RGBA { return s.fillColor }

// SetFillColor sets the interior color.
func (s *Style) SetFillColor(c RGBA) {
	s.fillColor = c
	s.changed()
}

// TriangleSize returns the pointer size as fractions of the bounds.
func (s *Style) TriangleSize() Size { return s.triangleSize }

// SetTriangleSize sets the pointer size. Both components must lie in
// [0, 1]; otherwise the write is ignored and false is returned.
// The stored vertical position is not re-clamped.
func (s *Style) SetTriangleSize(size Size) bool {
	if !unit(size.Width) || !unit(size.Height) {
		Logger().Debug("bubble: triangle size rejected",
			"width", size.Width, "height", size.Height)
		return false
	}
	s.triangleSize = size
	s.changed()
	return true
}

// TriangleYPosition returns the pointer apex position as a fraction of
// the bounds height.
func (s *Style) TriangleYPosition() float64 { return s.triangleY }

// SetTriangleYPosition sets the pointer apex position. Values outside
// [0, 1] are ignored and false is returned. Accepted values are clamped to
// [h, 1-h], h being the pointer height fraction, so the pointer stays
// between the top and bottom edges. When h > 0.5 the result is h.
func (s *Style) SetTriangleYPosition(y float64) bool {
	if !unit(y) {
		Logger().Debug("bubble: triangle position rejected", "y", y)
		return false
	}
	h := s.triangleSize.Height
	adjusted := max(min(y, 1-h), h)
	s.triangleY = min(max(adjusted, 0), 1)
	s.changed()
	return true
}

// unit reports whether v lies in [0, 1]. NaN is rejected.
func unit(v float64) bool {
	return v >= 0 && v <= 1
}
