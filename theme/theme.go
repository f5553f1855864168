// Package theme picks the colors keys light up with: a hue wheel over a
// tuning's pitch classes, or an explicit palette loaded from a .gpl file.
package theme

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/tangybbq/dlb-lumatone/lumatone"
)

// Theme resolves pitch classes to key colors.
type Theme struct {
	// Palette, when non-nil, overrides the generated colors per degree.
	Palette *Palette
}

func New(palette *Palette) *Theme {
	return &Theme{Palette: palette}
}

// Saturation/value levels for generated colors. Naturals are bright;
// accidentals sit back so the diatonic skeleton reads at a glance.
const (
	naturalSat = 0.65
	naturalVal = 0.95
	accidSat   = 0.45
	accidVal   = 0.55
)

// KeyColor returns the color for a scale degree in a tuning with the
// given octave size. Degree 0 (the reference pitch class) is always the
// first palette entry or the 0-hue color, so every C lights the same.
func (t *Theme) KeyColor(degree, steps int, accidental bool) lumatone.RGB8 {
	if t != nil && t.Palette != nil {
		c := t.Palette.Index(degree)
		return lumatone.RGB8{R: c[0], G: c[1], B: c[2]}
	}

	hue := 360.0 * float64(degree) / float64(steps)
	sat, val := naturalSat, naturalVal
	if accidental {
		sat, val = accidSat, accidVal
	}
	return toRGB8(colorful.Hsv(hue, sat, val))
}

// Lighten blends a color toward white, used for diagram fills so labels
// stay readable on top.
func Lighten(c lumatone.RGB8, amount float64) lumatone.RGB8 {
	base := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return toRGB8(base.BlendRgb(white, amount))
}

func toRGB8(c colorful.Color) lumatone.RGB8 {
	r, g, b := c.Clamped().RGB255()
	return lumatone.RGB8{R: r, G: g, B: b}
}
