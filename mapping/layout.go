// Package mapping computes isomorphic key assignments: it places a
// tuning's scale-step lattice onto the physical board through a pair of
// interval generators and a fill region.
package mapping

import (
	"github.com/tangybbq/dlb-lumatone/hex"
	"github.com/tangybbq/dlb-lumatone/tuning"
)

// Axis names the three hex axes a layout assigns intervals to.
type Axis int

const (
	AxisRight Axis = iota
	AxisUpRight
	AxisUpLeft
)

// Layout holds the two interval generators that define an isomorphic
// keyboard: the scale-step delta for one key east and one key northeast.
// The northwest delta is implied by the geometry (northwest = northeast
// minus east) and is derived, never stored.
//
// Nothing checks that a generator pair is musically sensible. Degenerate
// pairs (zero determinant against the lattice) produce aliased mappings
// where distinct keys share pitches; that is the caller's choice to make.
type Layout struct {
	Name string
	// Right is the step delta for one key east.
	Right int
	// UpRight is the step delta for one key northeast.
	UpRight int
}

// UpLeft returns the derived step delta for one key northwest.
func (l Layout) UpLeft() int {
	return l.UpRight - l.Right
}

// StepDelta returns the step delta for one key along the given axis.
func (l Layout) StepDelta(a Axis) int {
	switch a {
	case AxisRight:
		return l.Right
	case AxisUpRight:
		return l.UpRight
	default:
		return l.UpLeft()
	}
}

// Offset converts the lattice displacement from origin to c into a net
// scale-step offset. A unit move east contributes Right and a unit move
// northeast contributes UpRight; the map is linear in the displacement.
func (l Layout) Offset(c, origin hex.Axial) int {
	d := c.Sub(origin)
	// Decompose d into a east moves and b northeast moves:
	// dq = a + b, dr = -b.
	b := -d.R
	a := d.Q + d.R
	return a*l.Right + b*l.UpRight
}

// WickiHayden builds the Wicki-Hayden layout for a tuning: whole tones
// run east so an octave spans six keys horizontally, and fourths run up
// the northeast diagonal.
func WickiHayden(t tuning.Tuning) Layout {
	return Layout{
		Name:    "wicki-hayden",
		Right:   t.Steps(tuning.MajorSecond),
		UpRight: t.Steps(tuning.PerfectFourth),
	}
}

// HarmonicTable builds the Harmonic Table layout: fifths up the
// northeast diagonal and major thirds up the northwest one, so a major
// triad sits on three mutually adjacent keys. The east delta falls out
// as fifth minus third (a minor third).
func HarmonicTable(t tuning.Tuning) Layout {
	fifth := t.Steps(tuning.PerfectFifth)
	third := t.Steps(tuning.MajorThird)
	return Layout{
		Name:    "harmonic-table",
		Right:   fifth - third,
		UpRight: fifth,
	}
}

// LayoutByName looks up a layout constructor by its config name.
func LayoutByName(name string, t tuning.Tuning) (Layout, error) {
	switch name {
	case "wicki-hayden":
		return WickiHayden(t), nil
	case "harmonic-table":
		return HarmonicTable(t), nil
	}
	return Layout{}, errUnknownLayout(name)
}
