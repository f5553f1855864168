// Package midiout writes an audio preview of a mapping as a standard
// MIDI file: a quarter-note walk west to east along one board row, so a
// generated layout can be heard before it is flashed to the hardware.
package midiout

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/tangybbq/dlb-lumatone/lumatone"
)

const (
	previewBPM   = 120
	quarterTicks = 480
	velocity     = 80
)

// WritePreview writes the preview SMF for one row of the keyboard.
// Unassigned keys in the row are skipped. Returns an error if the row
// holds no assigned keys at all, since an empty preview means the fill
// and the chosen row don't intersect.
func WritePreview(path string, kb *lumatone.Keyboard, row int) error {
	if row < 0 || row >= lumatone.NumRows {
		return fmt.Errorf("midi preview: row %d out of range", row)
	}

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(fmt.Sprintf("row %d", row)))
	tr.Add(0, smf.MetaTempo(previewBPM))

	span := lumatone.Rows()[row]
	notes := 0
	for x := span.X0; x < span.X0+span.Len; x++ {
		k, ok := lumatone.KeyAt(x, row)
		if !ok {
			continue
		}
		info := kb.Get(k)
		if info == nil {
			continue
		}
		// KeyInfo channels are 1-16; gomidi wants 0-15.
		ch := info.Channel - 1
		tr.Add(0, midi.NoteOn(ch, info.Note, velocity))
		tr.Add(quarterTicks, midi.NoteOff(ch, info.Note))
		notes++
	}
	if notes == 0 {
		return fmt.Errorf("midi preview: no assigned keys in row %d", row)
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(quarterTicks)
	if err := s.Add(tr); err != nil {
		return fmt.Errorf("midi preview: %w", err)
	}
	if err := s.WriteFile(path); err != nil {
		return fmt.Errorf("midi preview: %w", err)
	}
	return nil
}
