package bubble

import (
	"errors"
	"fmt"
	"io"
)

// ErrNotBegun is returned by backends used before Begin.
var ErrNotBegun = errors.New("bubble: backend used before Begin")

// Backend is a Surface that produces an encoded picture.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using RegisterBackend
//  2. Allocate its target in Begin and finalize it in End
//  3. Return ErrNotBegun from FillStroke, End and WriteTo before Begin
//
// Example registration:
//
//	func init() {
//	    bubble.RegisterBackend("svg", func() bubble.Backend {
//	        return NewBackend()
//	    })
//	}
type Backend interface {
	Surface

	// Begin prepares a target of the given pixel size.
	Begin(width, height int) error

	// End finalizes the output. WriteTo may be called afterwards.
	End() error

	// WriteTo writes the encoded output.
	io.WriterTo
}

// Render draws one bubble filling the whole width×height target of b and
// finalizes it.
func Render(b Backend, width, height int, s *Style) error {
	if err := b.Begin(width, height); err != nil {
		return fmt.Errorf("bubble: begin: %w", err)
	}
	rect := NewRect(0, 0, float64(width), float64(height))
	if err := Draw(b, rect, s); err != nil {
		return fmt.Errorf("bubble: draw: %w", err)
	}
	if err := b.End(); err != nil {
		return fmt.Errorf("bubble: end: %w", err)
	}
	return nil
}
