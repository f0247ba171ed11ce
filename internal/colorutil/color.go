// Package colorutil provides the counter color palette and the small amount
// of color math the app needs: hex normalization, luminance-based contrast,
// and HSL lightness adjustment for the custom color path.
package colorutil

import (
	"errors"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Presets is the selectable palette, in display order. The first entry is the
// default for new counters.
var Presets = []string{
	"#007AFF",
	"#34C759",
	"#FF9500",
	"#FF3B30",
	"#5856D6",
	"#AF52DE",
	"#FF2D55",
	"#5AC8FA",
	"#4CD964",
	"#FFCC00",
	"#8E8E93",
	"#000000",
}

var ErrInvalidHex = errors.New("invalid hex color")

// Normalize validates a "#RRGGBB" string and returns it uppercased with a
// leading '#'. Three-digit shorthand is expanded.
func Normalize(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidHex
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) == 4 {
		s = "#" + strings.Repeat(string(s[1]), 2) + strings.Repeat(string(s[2]), 2) + strings.Repeat(string(s[3]), 2)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", ErrInvalidHex
	}
	return strings.ToUpper(c.Hex()), nil
}

// Contrast returns black or white, whichever reads better on the given
// background. Mirrors the perceived-luminance weighting of the color picker.
func Contrast(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#000"
	}
	luminance := 0.299*c.R + 0.587*c.G + 0.114*c.B
	if luminance > 0.5 {
		return "#000"
	}
	return "#FFF"
}

// Lighten raises the HSL lightness of hex by delta (0..1), clamped to 1.
func Lighten(hex string, delta float64) (string, error) {
	return adjust(hex, delta)
}

// Darken lowers the HSL lightness of hex by delta (0..1), clamped to 0.
func Darken(hex string, delta float64) (string, error) {
	return adjust(hex, -delta)
}

func adjust(hex string, delta float64) (string, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", ErrInvalidHex
	}
	h, s, l := c.Hsl()
	l += delta
	if l > 1 {
		l = 1
	}
	if l < 0 {
		l = 0
	}
	return strings.ToUpper(colorful.Hsl(h, s, l).Clamped().Hex()), nil
}
