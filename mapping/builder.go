package mapping

import (
	"fmt"

	"github.com/tangybbq/dlb-lumatone/lumatone"
	"github.com/tangybbq/dlb-lumatone/tuning"
)

// ColorFunc chooses a key color from a pitch class. degree is the
// canonical pitch class, steps the tuning's octave size, accidental
// whether the canonical name carries one.
type ColorFunc func(degree, steps int, accidental bool) lumatone.RGB8

// Builder composes a tuning, a layout and a fill into a complete key
// assignment table. Each key is independent of every other: the walk
// order never affects the result, and the same inputs always produce an
// identical table.
type Builder struct {
	Tuning tuning.Tuning
	Layout Layout
	Fill   FillInfo

	// Colors is optional; without it every assigned key is white.
	Colors ColorFunc
	// FlatNames selects flat spellings in tunings that distinguish them.
	FlatNames bool
}

// Build produces the assignment table. The only failure is a fill whose
// bounds exclude the anchor; out-of-range pitches are not errors, the
// affected keys are simply left unassigned.
func (b Builder) Build() (*lumatone.Keyboard, error) {
	if b.Tuning.Octave <= 0 {
		return nil, fmt.Errorf("tuning %q has no octave size", b.Tuning.Name)
	}
	if err := b.Fill.Validate(); err != nil {
		return nil, err
	}

	kb := lumatone.NewKeyboard()
	for _, k := range lumatone.Keys() {
		coord := lumatone.ToAxial(k)
		anchor, ok := b.Fill.Site(coord)
		if !ok {
			continue
		}
		// The anchor carries scale step 0, so the offset is already the
		// absolute step.
		step := b.Layout.Offset(coord, anchor)
		note, ok := b.Tuning.NoteFor(step)
		if !ok {
			continue
		}
		info := &lumatone.KeyInfo{
			Channel: note.Channel,
			Note:    note.Note,
			Label:   b.Tuning.NameFor(step, !b.FlatNames),
			Color:   lumatone.White(),
		}
		if b.Colors != nil {
			info.Color = b.Colors(b.Tuning.DegreeOf(step), b.Tuning.Octave, b.Tuning.IsAccidental(step))
		}
		kb.Set(k, info)
	}
	return kb, nil
}
