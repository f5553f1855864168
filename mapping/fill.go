package mapping

import (
	"fmt"

	"github.com/tangybbq/dlb-lumatone/hex"
	"github.com/tangybbq/dlb-lumatone/lumatone"
)

func errUnknownLayout(name string) error {
	return fmt.Errorf("unknown layout %q", name)
}

// Mode selects how the fill region covers the board.
type Mode int

const (
	// Wide fills one contiguous span of columns around the anchor.
	Wide Mode = iota
	// Split halves the board and fills each half independently around its
	// own copy of the anchor, so the reference pitch appears twice.
	Split
)

func (m Mode) String() string {
	if m == Split {
		return "split"
	}
	return "wide"
}

// ParseMode parses the config spelling of a fill mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "wide":
		return Wide, nil
	case "split":
		return Split, nil
	}
	return Wide, fmt.Errorf("unknown fill mode %q", s)
}

// splitCol is the first column of the right half in split mode.
const splitCol = lumatone.NumCols / 2

// FillInfo places the lattice on the board: the key carrying scale step 0
// and the horizontal extents of the playable region. Left and Right are
// column counts measured from the anchor column; rows within an included
// column are always filled completely.
type FillInfo struct {
	Anchor hex.Axial
	Left   int
	Right  int
	Mode   Mode
}

// Validate rejects fills whose region does not contain the anchor. The
// anchor sits at column offset 0, so the extents simply may not be
// negative.
func (f FillInfo) Validate() error {
	if f.Left < 0 || f.Right < 0 {
		return fmt.Errorf("fill bounds exclude the anchor: left %d, right %d", f.Left, f.Right)
	}
	return nil
}

// Anchors returns the anchor of each independent fill region: one for
// wide mode, one per half for split mode. The right half's anchor is the
// left anchor translated east along its row, so both halves carry scale
// step 0.
func (f FillInfo) Anchors() []hex.Axial {
	if f.Mode == Split {
		return []hex.Axial{f.Anchor, f.Anchor.East(splitCol)}
	}
	return []hex.Axial{f.Anchor}
}

// Site returns the anchor governing a coordinate and whether the
// coordinate is inside the playable region at all.
func (f FillInfo) Site(c hex.Axial) (hex.Axial, bool) {
	col := c.Col()
	switch f.Mode {
	case Split:
		half := 0
		lo, hi := 0, splitCol-1
		if col >= splitCol {
			half = 1
			lo, hi = splitCol, lumatone.NumCols-1
		}
		anchor := f.Anchors()[half]
		ac := anchor.Col()
		if col < ac-f.Left || col > ac+f.Right {
			return hex.Axial{}, false
		}
		if col < lo || col > hi {
			return hex.Axial{}, false
		}
		return anchor, true
	default:
		ac := f.Anchor.Col()
		if col < ac-f.Left || col > ac+f.Right {
			return hex.Axial{}, false
		}
		return f.Anchor, true
	}
}

// InRegion reports whether a coordinate's column is inside the fill.
func (f FillInfo) InRegion(c hex.Axial) bool {
	_, ok := f.Site(c)
	return ok
}
