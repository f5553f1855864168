// Package tuning defines the tuning systems a board can be mapped in.
//
// A tuning assigns MIDI numbers and display names to an unbounded sequence
// of scale steps. Step 0 is always middle C; positive steps go up in
// pitch. Three equal divisions of the octave are built in: 12, 19 and 31.
package tuning

import (
	"fmt"
	"strconv"
)

// MidiNote is a concrete output pitch. Channels run 1-16 and note numbers
// 0-127. Tunings with more than 128 pitches spread octaves across
// channels, so the channel is part of the pitch identity.
type MidiNote struct {
	Channel uint8
	Note    uint8
}

// Interval names the melodic intervals layouts are built from.
type Interval int

const (
	MinorSecond Interval = iota
	MajorSecond
	MinorThird
	MajorThird
	PerfectFourth
	PerfectFifth
)

// Tuning is one equal division of the octave: a step count plus the data
// tables needed to name and number every step. The zero value is not
// usable; use the EDO12/EDO19/EDO31 variables or ByName.
type Tuning struct {
	// Name identifies the tuning in configs and output metadata.
	Name string
	// Octave is the number of scale steps per octave.
	Octave int

	intervals  [6]int
	sharpNames []string
	flatNames  []string

	// channelOctaves selects the channel-per-octave MIDI scheme: the note
	// number holds the pitch class and the channel holds the octave.
	// Without it, middle C is note 60 on channel 1 and steps offset the
	// note number directly.
	channelOctaves bool
}

// middleCChannel is the channel carrying the middle-C octave in the
// channel-per-octave scheme, leaving seven octaves below and eight above.
const middleCChannel = 8

// Steps returns the size of an interval in scale steps.
func (t Tuning) Steps(iv Interval) int {
	return t.intervals[iv]
}

// NoteFor resolves a scale step to a MIDI note. The second return is
// false when the step has no representable pitch, which callers treat as
// an unassigned key rather than an error.
func (t Tuning) NoteFor(step int) (MidiNote, bool) {
	if t.channelOctaves {
		ch := middleCChannel + floorDiv(step, t.Octave)
		if ch < 1 || ch > 16 {
			return MidiNote{}, false
		}
		return MidiNote{Channel: uint8(ch), Note: uint8(posMod(step, t.Octave))}, true
	}
	n := 60 + step
	if n < 0 || n > 127 {
		return MidiNote{}, false
	}
	return MidiNote{Channel: 1, Note: uint8(n)}, true
}

// NameFor returns the display name for a scale step, total over all
// integers. The octave suffix counts from middle C as C4, so step 0 is
// "C4" in every tuning. The sharp hint picks between enharmonic
// spellings where the tuning has them.
func (t Tuning) NameFor(step int, sharp bool) string {
	pc := posMod(step, t.Octave)
	oct := 4 + floorDiv(step, t.Octave)
	names := t.flatNames
	if sharp {
		names = t.sharpNames
	}
	return names[pc] + strconv.Itoa(oct)
}

// DegreeOf returns the canonical pitch class of a step, in [0, Octave).
func (t Tuning) DegreeOf(step int) int {
	return posMod(step, t.Octave)
}

// IsAccidental reports whether a step's canonical name carries an
// accidental (anything other than a bare letter).
func (t Tuning) IsAccidental(step int) bool {
	name := t.sharpNames[t.DegreeOf(step)]
	return len([]rune(name)) > 1
}

// ByName looks up a built-in tuning by its config name.
func ByName(name string) (Tuning, error) {
	switch name {
	case "edo12", "12edo":
		return EDO12, nil
	case "edo19", "19edo":
		return EDO19, nil
	case "edo31", "31edo":
		return EDO31, nil
	}
	return Tuning{}, fmt.Errorf("unknown tuning %q", name)
}

// EDO12 is standard 12-tone equal temperament. Middle C is note 60 on
// channel 1; no channel-octave trickery is needed.
var EDO12 = Tuning{
	Name:      "edo12",
	Octave:    12,
	intervals: [6]int{1, 2, 3, 4, 5, 7},
	sharpNames: []string{
		"C", "C♯", "D", "D♯", "E", "F", "F♯", "G", "G♯", "A", "A♯", "B",
	},
	flatNames: []string{
		"C", "D♭", "D", "E♭", "E", "F", "G♭", "G", "A♭", "A", "B♭", "B",
	},
}

// EDO19 names every step distinctly: sharps and flats are different
// pitches, so one table serves both spellings.
var edo19Names = []string{
	"C", "C♯", "D♭", "D", "D♯", "E♭", "E", "E♯", "F", "F♯",
	"G♭", "G", "G♯", "A♭", "A", "A♯", "B♭", "B", "B♯",
}

// EDO19 is 19-tone equal temperament. 19 steps per octave does not fit in
// 128 note numbers, so octaves are spread across MIDI channels.
var EDO19 = Tuning{
	Name:           "edo19",
	Octave:         19,
	intervals:      [6]int{2, 3, 5, 6, 8, 11},
	sharpNames:     edo19Names,
	flatNames:      edo19Names,
	channelOctaves: true,
}

// edo31Names interleaves single and double accidentals; the chromatic
// semitone is 2 steps and the diatonic semitone 3.
var edo31Names = []string{
	"C", "D𝄫", "C♯", "D♭", "C𝄪", "D", "E𝄫", "D♯", "E♭", "D𝄪",
	"E", "F♭", "E♯", "F", "G𝄫", "F♯", "G♭", "F𝄪", "G", "A𝄫",
	"G♯", "A♭", "G𝄪", "A", "B𝄫", "A♯", "B♭", "A𝄪", "B", "C♭",
	"B♯",
}

// EDO31 is 31-tone equal temperament, channel-per-octave like EDO19.
var EDO31 = Tuning{
	Name:           "edo31",
	Octave:         31,
	intervals:      [6]int{3, 5, 8, 10, 13, 18},
	sharpNames:     edo31Names,
	flatNames:      edo31Names,
	channelOctaves: true,
}

// All lists the built-in tunings.
func All() []Tuning {
	return []Tuning{EDO12, EDO19, EDO31}
}

func posMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}
