// Package lumatone models the Lumatone's fixed key geometry and its
// persisted mapping format.
//
// The keyboard has 280 keys in five groups of 56. Ignoring the physical
// tilt, the whole surface is a hex grid of 19 staggered rows; each group
// repeats the same 11-row footprint, shifted two rows down and six
// columns east of the previous group.
package lumatone

import "github.com/tangybbq/dlb-lumatone/hex"

// KeyIndex addresses a physical key the way the hardware does: a group
// 0-4 and a key 0-55 within it.
type KeyIndex struct {
	Group uint8
	Key   uint8
}

const (
	// NumGroups is the number of key groups (the hardware's "boards").
	NumGroups = 5
	// KeysPerGroup is the number of keys in each group.
	KeysPerGroup = 56
	// NumKeys is the total key count.
	NumKeys = NumGroups * KeysPerGroup
	// NumRows is the number of staggered rows across the whole surface.
	NumRows = 19
	// NumCols is the width of the surface in offset-grid columns.
	NumCols = 30
)

// groupRow describes one row of a group's footprint in the group's own
// coordinates: starting column, key count, and the first key number.
type groupRow struct {
	x0, n, first int
}

// The 11-row footprint of a single group. Key numbering within a group:
//
//	00  01
//	  02  03  04  05  06
//	07  08  09  10  11  12
//	  13  14  15  16  17  18
//	19  20  21  22  23  24
//	  25  26  27  28  29  30
//	31  32  33  34  35  36
//	  37  38  39  40  41  42
//	43  44  45  46  47  48
//	      49  50  51  52  53
//	                54  55
var groupRows = []groupRow{
	{0, 2, 0},
	{0, 5, 2},
	{0, 6, 7},
	{0, 6, 13},
	{0, 6, 19},
	{0, 6, 25},
	{0, 6, 31},
	{0, 6, 37},
	{0, 6, 43},
	{1, 5, 49},
	{4, 2, 54},
}

// Position returns the offset-grid coordinate (column, row) of a key.
func Position(k KeyIndex) (x, y int) {
	for ly, gr := range groupRows {
		if int(k.Key) < gr.first+gr.n {
			i := int(k.Key) - gr.first
			return 6*int(k.Group) + gr.x0 + i, 2*int(k.Group) + ly
		}
	}
	// Key numbers above 55 don't exist; KeyIndex values are produced by
	// Keys() or validated at parse time.
	panic("lumatone: key out of range")
}

// ToAxial returns the axial lattice coordinate of a key.
func ToAxial(k KeyIndex) hex.Axial {
	x, y := Position(k)
	return hex.FromOffset(x, y)
}

// Keys returns every key on the surface, in group then key order.
func Keys() []KeyIndex {
	out := make([]KeyIndex, 0, NumKeys)
	for g := 0; g < NumGroups; g++ {
		for k := 0; k < KeysPerGroup; k++ {
			out = append(out, KeyIndex{Group: uint8(g), Key: uint8(k)})
		}
	}
	return out
}

// RowSpan describes the occupied extent of one surface row.
type RowSpan struct {
	X0, Len int
}

// Rows returns the occupied span of each of the 19 surface rows. Derived
// from the group footprint; see the geometry test for the expected table.
func Rows() [NumRows]RowSpan {
	var spans [NumRows]RowSpan
	for i := range spans {
		spans[i] = RowSpan{X0: NumCols, Len: 0}
	}
	for _, k := range Keys() {
		x, y := Position(k)
		s := &spans[y]
		if x < s.X0 {
			s.X0 = x
		}
		if x >= s.X0+s.Len {
			s.Len = x - s.X0 + 1
		}
	}
	return spans
}

var keyAt = func() map[[2]int]KeyIndex {
	m := make(map[[2]int]KeyIndex, NumKeys)
	for _, k := range Keys() {
		x, y := Position(k)
		m[[2]int{x, y}] = k
	}
	return m
}()

// KeyAt returns the key occupying an offset-grid coordinate, if any.
func KeyAt(x, y int) (KeyIndex, bool) {
	k, ok := keyAt[[2]int{x, y}]
	return k, ok
}
