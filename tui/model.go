// Package tui shows a read-only terminal preview of a generated mapping.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tangybbq/dlb-lumatone/lumatone"
	"github.com/tangybbq/dlb-lumatone/widgets"
)

type Model struct {
	Title    string
	Keyboard *lumatone.Keyboard
	quitting bool
}

func NewModel(title string, kb *lumatone.Keyboard) Model {
	return Model{Title: title, Keyboard: kb}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(headerStyle.Render(fmt.Sprintf("%s  (%d keys assigned)", m.Title, m.Keyboard.Assigned())))
	out.WriteString("\n\n")
	out.WriteString(widgets.RenderBoard(m.Keyboard))
	out.WriteString("\n\n")
	out.WriteString(widgets.RenderLegendItem(
		&lumatone.KeyInfo{Color: lumatone.White()}, "assigned", "key plays a note"))
	out.WriteString("\n")
	out.WriteString(widgets.RenderLegendItem(nil, "unassigned", "outside the fill or pitch range"))
	out.WriteString("\n\n")
	out.WriteString(dimStyle.Render("q:quit"))
	out.WriteString("\n")
	return out.String()
}

// Show runs the preview until the user quits.
func Show(title string, kb *lumatone.Keyboard) error {
	p := tea.NewProgram(NewModel(title, kb))
	_, err := p.Run()
	return err
}
