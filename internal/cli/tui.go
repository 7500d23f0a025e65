package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// RingListModel is the bubbletea model for interactive ring selection.
type RingListModel struct {
	Rings    []string
	Cursor   int
	Selected string
}

// NewRingListModel creates a new ring list model.
func NewRingListModel(names []string) RingListModel {
	return RingListModel{Rings: names}
}

func (m RingListModel) Init() tea.Cmd {
	return nil
}

func (m RingListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Rings)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Rings[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m RingListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Ring"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, name := range m.Rings {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%-12s %s", cursor, name, listDimStyle.Render(describeRing(name)))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rings))))

	return b.String()
}
