package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tangybbq/dlb-lumatone/hex"
	"github.com/tangybbq/dlb-lumatone/lumatone"
	"github.com/tangybbq/dlb-lumatone/mapping"
	"github.com/tangybbq/dlb-lumatone/render"
	"github.com/tangybbq/dlb-lumatone/tuning"
)

func buildBoard(t *testing.T) *lumatone.Keyboard {
	t.Helper()
	b := mapping.Builder{
		Tuning: tuning.EDO12,
		Layout: mapping.WickiHayden(tuning.EDO12),
		Fill: mapping.FillInfo{
			Anchor: hex.FromOffset(14, 9),
			Left:   14,
			Right:  15,
		},
	}
	kb, err := b.Build()
	require.NoError(t, err)
	return kb
}

func TestWriteSVG(t *testing.T) {
	kb := buildBoard(t)

	var buf bytes.Buffer
	render.WriteSVG(&buf, kb)
	out := buf.String()

	require.True(t, strings.HasPrefix(out, "<?xml"))
	require.Contains(t, out, "<svg")
	require.Contains(t, out, "</svg>")

	// One hexagon per physical key, assigned or not.
	require.Equal(t, lumatone.NumKeys, strings.Count(out, "<polygon"))

	// The anchor's label shows up.
	require.Contains(t, out, ">C4<")
}

func TestWriteSVGEmptyBoard(t *testing.T) {
	var buf bytes.Buffer
	render.WriteSVG(&buf, lumatone.NewKeyboard())
	out := buf.String()

	// All keys drawn, no labels.
	require.Equal(t, lumatone.NumKeys, strings.Count(out, "<polygon"))
	require.NotContains(t, out, "class=\"key\">")
}

func TestWriteSVGDeterministic(t *testing.T) {
	kb := buildBoard(t)
	var a, b bytes.Buffer
	render.WriteSVG(&a, kb)
	render.WriteSVG(&b, kb)
	require.Equal(t, a.String(), b.String())
}
