package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

// MenuItem is one entry in a Menu. Disabled items render dim and the
// cursor passes over them.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list with a single cursor.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu builds a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, it := range items {
		if !it.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

func (m Menu) Init() tea.Cmd { return nil }

// Update moves the cursor or fires the selected action.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		m.Selected = m.seek(m.Selected, -1)
	case "down", "j":
		m.Selected = m.seek(m.Selected, 1)
	case "enter":
		if m.Selected < 0 || m.Selected >= len(m.Items) {
			return m, nil
		}
		if it := m.Items[m.Selected]; it.Action != nil && !it.Disabled {
			return m, it.Action()
		}
	}
	return m, nil
}

// seek finds the next enabled item in the given direction, staying put at
// the edges.
func (m Menu) seek(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return from
}

var (
	menuCursor   = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	menuItem     = lipgloss.NewStyle().Foreground(theme.Text)
	menuDisabled = lipgloss.NewStyle().Foreground(theme.TextDim)
)

func (m Menu) View() string {
	var b strings.Builder
	for i, it := range m.Items {
		switch {
		case i == m.Selected:
			b.WriteString(menuCursor.Render("  ▸ " + it.Label))
		case it.Disabled:
			b.WriteString(menuDisabled.Render("    " + it.Label))
		default:
			b.WriteString(menuItem.Render("    " + it.Label))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
