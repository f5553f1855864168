package theme_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tangybbq/dlb-lumatone/lumatone"
	"github.com/tangybbq/dlb-lumatone/theme"
)

func TestKeyColorDeterministic(t *testing.T) {
	th := theme.New(nil)
	c1 := th.KeyColor(0, 12, false)
	c2 := th.KeyColor(0, 12, false)
	require.Equal(t, c1, c2)

	// Different degrees get different colors.
	require.NotEqual(t, c1, th.KeyColor(7, 12, false))

	// Accidentals are dimmer than naturals of the same degree position.
	nat := th.KeyColor(3, 12, false)
	acc := th.KeyColor(3, 12, true)
	require.NotEqual(t, nat, acc)
}

func TestKeyColorFromPalette(t *testing.T) {
	p := &theme.Palette{
		Name:   "test",
		Colors: []theme.RGB{{10, 20, 30}, {40, 50, 60}},
	}
	th := theme.New(p)
	require.Equal(t, lumatone.RGB8{R: 10, G: 20, B: 30}, th.KeyColor(0, 12, false))
	require.Equal(t, lumatone.RGB8{R: 40, G: 50, B: 60}, th.KeyColor(1, 12, true))
	// Degrees past the palette clamp to the last entry.
	require.Equal(t, lumatone.RGB8{R: 40, G: 50, B: 60}, th.KeyColor(11, 12, false))
}

func TestLighten(t *testing.T) {
	c := lumatone.RGB8{R: 100, G: 50, B: 200}
	lighter := theme.Lighten(c, 0.5)
	require.Greater(t, lighter.R, c.R)
	require.Greater(t, lighter.G, c.G)
	require.Greater(t, lighter.B, c.B)

	require.Equal(t, lumatone.RGB8{R: 255, G: 255, B: 255}, theme.Lighten(c, 1.0))
	require.Equal(t, c, theme.Lighten(c, 0.0))
}

func TestLoadGPL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.gpl")
	gpl := "GIMP Palette\nName: Chromatic\nColumns: 4\n#\n255 0 0 red\n0 255 0 green\n0 0 255 blue\n"
	require.NoError(t, os.WriteFile(path, []byte(gpl), 0o644))

	p, err := theme.LoadGPL(path)
	require.NoError(t, err)
	require.Equal(t, "Chromatic", p.Name)
	require.Len(t, p.Colors, 3)
	require.Equal(t, theme.RGB{255, 0, 0}, p.Index(0))
	require.Equal(t, theme.RGB{0, 0, 255}, p.Index(99))

	_, err = theme.LoadGPL(filepath.Join(dir, "missing.gpl"))
	require.Error(t, err)
}
