// Package styleconfig loads bubble styles from YAML files.
//
// A style file looks like:
//
//	stroke_width: 2
//	corner_radius: 10
//	border_color: black
//	fill_color: "#d3d3d3"
//	triangle:
//	  width: 0.1
//	  height: 0.2
//	  y: 0.6
//
// Every field is optional; absent fields leave the style untouched.
// Colors are hex strings or SVG color keywords.
package styleconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/bubble"
)

// ErrOutOfRange reports a triangle fraction outside [0, 1].
var ErrOutOfRange = errors.New("styleconfig: value out of range")

// File is the decoded form of a style file.
type File struct {
	StrokeWidth  *float64  `yaml:"stroke_width,omitempty"`
	CornerRadius *float64  `yaml:"corner_radius,omitempty"`
	BorderColor  string    `yaml:"border_color,omitempty"`
	FillColor    string    `yaml:"fill_color,omitempty"`
	Triangle     *Triangle `yaml:"triangle,omitempty"`
}

// Triangle holds the pointer fields. Width and Height are fractions of the
// bounds; Y is the apex position as a fraction of the height.
type Triangle struct {
	Width  *float64 `yaml:"width,omitempty"`
	Height *float64 `yaml:"height,omitempty"`
	Y      *float64 `yaml:"y,omitempty"`
}

// Decode parses a style file.
func Decode(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("styleconfig: parse: %w", err)
	}
	return &f, nil
}

// Load reads and parses the style file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("styleconfig: read %s: %w", path, err)
	}
	f, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Apply writes the fields present in f into s through its setters, so the
// style's invalidator runs for each one. Colors and triangle values are
// validated before anything is written; on error s is unchanged.
func (f *File) Apply(s *bubble.Style) error {
	var border, fill *bubble.RGBA
	if f.BorderColor != "" {
		c, err := ParseColor(f.BorderColor)
		if err != nil {
			return err
		}
		border = &c
	}
	if f.FillColor != "" {
		c, err := ParseColor(f.FillColor)
		if err != nil {
			return err
		}
		fill = &c
	}

	size := s.TriangleSize()
	var y *float64
	if t := f.Triangle; t != nil {
		if t.Width != nil {
			size.Width = *t.Width
		}
		if t.Height != nil {
			size.Height = *t.Height
		}
		if err := checkFraction("triangle.width", size.Width); err != nil {
			return err
		}
		if err := checkFraction("triangle.height", size.Height); err != nil {
			return err
		}
		if t.Y != nil {
			if err := checkFraction("triangle.y", *t.Y); err != nil {
				return err
			}
			y = t.Y
		}
	}

	if f.StrokeWidth != nil {
		s.SetStrokeWidth(*f.StrokeWidth)
	}
	if f.CornerRadius != nil {
		s.SetCornerRadius(*f.CornerRadius)
	}
	if border != nil {
		s.SetBorderColor(*border)
	}
	if fill != nil {
		s.SetFillColor(*fill)
	}
	if f.Triangle != nil && size != s.TriangleSize() {
		s.SetTriangleSize(size)
	}
	if y != nil {
		s.SetTriangleYPosition(*y)
	}
	bubble.Logger().Debug("styleconfig: applied",
		"stroke_width", s.StrokeWidth(), "corner_radius", s.CornerRadius())
	return nil
}

// ParseColor accepts "#rgb", "#rgba", "#rrggbb", "#rrggbbaa" or an SVG
// color keyword such as "lightgray".
func ParseColor(v string) (bubble.RGBA, error) {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "#") {
		if c, ok := bubble.Hex(v); ok {
			return c, nil
		}
		return bubble.RGBA{}, fmt.Errorf("styleconfig: bad hex color %q", v)
	}
	if c, ok := colornames.Map[strings.ToLower(v)]; ok {
		return bubble.FromColor(c), nil
	}
	return bubble.RGBA{}, fmt.Errorf("styleconfig: unknown color %q", v)
}

func checkFraction(field string, v float64) error {
	if v >= 0 && v <= 1 {
		return nil
	}
	return fmt.Errorf("%w: %s = %v, want [0, 1]", ErrOutOfRange, field, v)
}
