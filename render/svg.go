// Package render draws a keyboard assignment table as an SVG diagram:
// one hexagon per physical key, colored and labeled from the mapping.
package render

import (
	"fmt"
	"io"
	"math"
	"os"

	svg "github.com/ajstarks/svgo/float"

	"github.com/tangybbq/dlb-lumatone/lumatone"
	"github.com/tangybbq/dlb-lumatone/theme"
)

// spacing is the center-to-center distance between adjacent keys.
const spacing = 10.0

// tilt approximates the Lumatone's grid rotation. The hardware's nominal
// angle is 8.948 degrees but the drawn grid matches the photographed
// keyboard better at twice that.
var tilt = 16.0 / 360.0 * (2 * math.Pi)

// WriteSVG renders the keyboard to w. Unassigned keys are drawn as empty
// white hexes so the full board outline is visible.
func WriteSVG(w io.Writer, kb *lumatone.Keyboard) {
	canvas := svg.New(w)
	canvas.Startview(36*spacing, 22*spacing, -2*spacing, -2*spacing, 38*spacing, 24*spacing)
	canvas.Style("text/css", ".key { font: 3px serif; text-anchor: middle; dominant-baseline: middle; }")

	for _, k := range lumatone.Keys() {
		x, y := lumatone.Position(k)
		cx, cy := coord(x, y)
		info := kb.Get(k)
		color := lumatone.White()
		label := ""
		if info != nil {
			color = theme.Lighten(info.Color, 0.5)
			label = info.Label
		}
		hexPath(canvas, cx, cy, color)
		if label != "" {
			canvas.Text(cx, cy, label, `class="key"`)
		}
	}

	canvas.End()
}

// WriteSVGFile renders the keyboard to a file at path.
func WriteSVGFile(path string, kb *lumatone.Keyboard) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	WriteSVG(f, kb)
	return f.Close()
}

// hexPath draws one pointy-top hexagon centered at (cx, cy), rotated by
// the grid tilt.
func hexPath(canvas *svg.SVG, cx, cy float64, color lumatone.RGB8) {
	// spacing is the distance between edges; corners sit further out.
	corner := spacing / (math.Sqrt(3) / 2)
	xs := make([]float64, 6)
	ys := make([]float64, 6)
	for i := 0; i < 6; i++ {
		angle := 2*math.Pi/6*float64(i) + tilt
		xs[i] = cx + corner/2*math.Sin(angle)
		ys[i] = cy + corner/2*math.Cos(angle)
	}
	style := fmt.Sprintf("fill:#%s;stroke:black;stroke-width:0.3", color.Hex())
	canvas.Polygon(xs, ys, style)
}

// coord maps an offset-grid cell to SVG space: odd rows shift east half a
// key, rows pack at the hex row height, and the whole grid rotates by the
// tilt (negated, since SVG y points down).
func coord(x, y int) (float64, float64) {
	fx := float64(x)*spacing + float64(y%2)*(spacing/2)
	fy := float64(y) * spacing * math.Sqrt(3) / 2

	sin, cos := math.Sincos(-tilt)
	return fx*cos - fy*sin, fx*sin + fy*cos
}
