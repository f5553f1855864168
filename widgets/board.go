// Package widgets renders board views for the terminal preview.
package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tangybbq/dlb-lumatone/lumatone"
)

// RenderKey renders a single key as a colored hex rune. Unassigned keys
// show as a dim dot so the board outline stays visible.
func RenderKey(info *lumatone.KeyInfo) string {
	if info == nil {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("·")
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(rgbToHex(info.Color)))
	return style.Render("⬢")
}

// RenderBoard renders the full 19-row key surface. Odd rows are indented
// half a cell (one character at two characters per key) to suggest the
// hex stagger.
func RenderBoard(kb *lumatone.Keyboard) string {
	spans := lumatone.Rows()
	var lines []string
	for y := 0; y < lumatone.NumRows; y++ {
		var line strings.Builder
		line.WriteString(strings.Repeat(" ", y%2))
		line.WriteString(strings.Repeat("  ", spans[y].X0))
		for x := spans[y].X0; x < spans[y].X0+spans[y].Len; x++ {
			k, ok := lumatone.KeyAt(x, y)
			if !ok {
				line.WriteString("  ")
				continue
			}
			line.WriteString(RenderKey(kb.Get(k)))
			line.WriteString(" ")
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// RenderLegendItem renders a single legend item: "⬢ name - description".
// A nil info shows the unassigned-key dot.
func RenderLegendItem(info *lumatone.KeyInfo, name, desc string) string {
	return fmt.Sprintf("  %s %s - %s", RenderKey(info), name, desc)
}

func rgbToHex(c lumatone.RGB8) string {
	return "#" + c.Hex()
}
