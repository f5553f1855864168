package lumatone_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tangybbq/dlb-lumatone/hex"
	"github.com/tangybbq/dlb-lumatone/lumatone"
)

// The known row extents of the full surface: start column and length for
// each of the 19 rows.
var wantRows = [lumatone.NumRows]lumatone.RowSpan{
	{X0: 0, Len: 2},
	{X0: 0, Len: 5},
	{X0: 0, Len: 8},
	{X0: 0, Len: 11},
	{X0: 0, Len: 14},
	{X0: 0, Len: 17},
	{X0: 0, Len: 20},
	{X0: 0, Len: 23},
	{X0: 0, Len: 26},
	{X0: 1, Len: 28},
	{X0: 4, Len: 26},
	{X0: 7, Len: 23},
	{X0: 10, Len: 20},
	{X0: 13, Len: 17},
	{X0: 16, Len: 14},
	{X0: 19, Len: 11},
	{X0: 22, Len: 8},
	{X0: 25, Len: 5},
	{X0: 28, Len: 2},
}

func TestRowSpans(t *testing.T) {
	require.Equal(t, wantRows, lumatone.Rows())
}

func TestKeyCount(t *testing.T) {
	keys := lumatone.Keys()
	require.Len(t, keys, lumatone.NumKeys)

	// Every key occupies a distinct grid cell.
	seen := make(map[[2]int]lumatone.KeyIndex)
	for _, k := range keys {
		x, y := lumatone.Position(k)
		prev, dup := seen[[2]int{x, y}]
		require.False(t, dup, "keys %v and %v share (%d,%d)", prev, k, x, y)
		seen[[2]int{x, y}] = k
	}
}

func TestPositionSpotChecks(t *testing.T) {
	cases := []struct {
		k    lumatone.KeyIndex
		x, y int
	}{
		{lumatone.KeyIndex{Group: 0, Key: 0}, 0, 0},
		{lumatone.KeyIndex{Group: 0, Key: 2}, 0, 1},
		{lumatone.KeyIndex{Group: 0, Key: 7}, 0, 2},
		{lumatone.KeyIndex{Group: 0, Key: 12}, 5, 2},
		{lumatone.KeyIndex{Group: 0, Key: 49}, 1, 9},
		{lumatone.KeyIndex{Group: 0, Key: 54}, 4, 10},
		{lumatone.KeyIndex{Group: 1, Key: 0}, 6, 2},
		{lumatone.KeyIndex{Group: 1, Key: 2}, 6, 3},
		{lumatone.KeyIndex{Group: 2, Key: 0}, 12, 4},
		{lumatone.KeyIndex{Group: 4, Key: 55}, 29, 18},
	}
	for _, c := range cases {
		x, y := lumatone.Position(c.k)
		require.Equal(t, c.x, x, "key %v", c.k)
		require.Equal(t, c.y, y, "key %v", c.k)
	}
}

func TestKeyAt(t *testing.T) {
	for _, k := range lumatone.Keys() {
		x, y := lumatone.Position(k)
		got, ok := lumatone.KeyAt(x, y)
		require.True(t, ok)
		require.Equal(t, k, got)
	}
	_, ok := lumatone.KeyAt(2, 0)
	require.False(t, ok)
	_, ok = lumatone.KeyAt(0, 19)
	require.False(t, ok)
}

func TestToAxialMatchesOffset(t *testing.T) {
	for _, k := range lumatone.Keys() {
		x, y := lumatone.Position(k)
		a := lumatone.ToAxial(k)
		require.Equal(t, hex.FromOffset(x, y), a)
		require.Equal(t, x, a.Col())
	}
}

func TestKeyboardAssignments(t *testing.T) {
	kb := lumatone.NewKeyboard()
	require.Equal(t, 0, kb.Assigned())

	k := lumatone.KeyIndex{Group: 2, Key: 30}
	kb.Set(k, &lumatone.KeyInfo{Channel: 1, Note: 60, Label: "C4"})
	require.Equal(t, 1, kb.Assigned())
	require.Equal(t, "C4", kb.Get(k).Label)

	kb.Set(k, nil)
	require.Equal(t, 0, kb.Assigned())

	// Out-of-range lookups are nil, not panics.
	require.Nil(t, kb.Get(lumatone.KeyIndex{Group: 9, Key: 0}))
}

func TestColors(t *testing.T) {
	c := lumatone.RGB8{R: 255, G: 128, B: 0}
	require.Equal(t, "ff8000", c.Hex())

	got, err := lumatone.ParseRGB("ff8000")
	require.NoError(t, err)
	require.Equal(t, c, got)

	_, err = lumatone.ParseRGB("xyz")
	require.Error(t, err)
}
