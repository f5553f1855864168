package widgets_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tangybbq/dlb-lumatone/lumatone"
	"github.com/tangybbq/dlb-lumatone/widgets"
)

func TestRenderBoardShape(t *testing.T) {
	out := widgets.RenderBoard(lumatone.NewKeyboard())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, lumatone.NumRows)

	// Every key renders, assigned or not.
	require.Equal(t, lumatone.NumKeys, strings.Count(out, "·"))
}

func TestRenderBoardAssigned(t *testing.T) {
	kb := lumatone.NewKeyboard()
	kb.Set(lumatone.KeyIndex{Group: 0, Key: 0}, &lumatone.KeyInfo{
		Channel: 1, Note: 60, Color: lumatone.RGB8{R: 255},
	})
	out := widgets.RenderBoard(kb)
	require.Contains(t, out, "⬢")
	require.Equal(t, lumatone.NumKeys-1, strings.Count(out, "·"))
}

func TestRenderLegendItem(t *testing.T) {
	out := widgets.RenderLegendItem(
		&lumatone.KeyInfo{Color: lumatone.White()}, "assigned", "key plays a note")
	require.Contains(t, out, "⬢")
	require.Contains(t, out, "assigned - key plays a note")

	out = widgets.RenderLegendItem(nil, "unassigned", "no pitch")
	require.Contains(t, out, "·")
	require.Contains(t, out, "unassigned - no pitch")
}
