// Package hex provides the axial coordinate arithmetic for the board's
// hexagonal lattice.
//
// The board uses pointy-top hexes in an odd-r offset arrangement: rows are
// horizontal, and odd-numbered rows sit half a key further east than even
// ones. Axial coordinates make interval math uniform: moving in a given
// hex direction changes (q, r) by the same delta everywhere on the lattice.
package hex

// Axial identifies a cell on the infinite hex lattice relative to an
// arbitrary origin.
type Axial struct {
	Q, R int
}

// Add returns a + b.
func (a Axial) Add(b Axial) Axial {
	return Axial{a.Q + b.Q, a.R + b.R}
}

// Sub returns a - b.
func (a Axial) Sub(b Axial) Axial {
	return Axial{a.Q - b.Q, a.R - b.R}
}

// Col returns the offset-grid column of the cell, the horizontal unit used
// for fill bounds. Cells in the same column stack (almost) vertically on
// the physical board.
func (a Axial) Col() int {
	return a.Q + (a.R-(a.R&1))/2
}

// East returns the cell shifted n columns east along its own row.
func (a Axial) East(n int) Axial {
	return Axial{a.Q + n, a.R}
}

// FromOffset converts an offset-grid coordinate (column x, row y) to axial.
func FromOffset(x, y int) Axial {
	return Axial{x - (y-(y&1))/2, y}
}

// Dir is one of the six hex directions a key has neighbors in.
type Dir int

const (
	East Dir = iota
	NorthEast
	NorthWest
	West
	SouthWest
	SouthEast
)

var dirDeltas = [6]Axial{
	East:      {1, 0},
	NorthEast: {1, -1},
	NorthWest: {0, -1},
	West:      {-1, 0},
	SouthWest: {-1, 1},
	SouthEast: {0, 1},
}

// Delta returns the axial displacement of one step in direction d.
func (d Dir) Delta() Axial {
	return dirDeltas[d]
}

// Opposite returns the reverse direction.
func (d Dir) Opposite() Dir {
	return (d + 3) % 6
}

// Neighbor returns the adjacent cell in direction d.
func (a Axial) Neighbor(d Dir) Axial {
	return a.Add(d.Delta())
}
