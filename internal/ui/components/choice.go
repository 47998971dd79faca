package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

// ChoiceGroup is a horizontal single-select option row, used for the setup
// form's enumerated fields (interview type, difficulty, session length).
type ChoiceGroup struct {
	Label    string
	Options  []string
	Selected int
}

// NewChoiceGroup creates a choice group with the first option selected.
func NewChoiceGroup(label string, options []string) ChoiceGroup {
	return ChoiceGroup{Label: label, Options: options}
}

// Update handles left/right navigation.
func (c ChoiceGroup) Update(msg tea.Msg) (ChoiceGroup, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if c.Selected > 0 {
			c.Selected--
		}
	case "right", "l":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}
	return c, nil
}

// Value returns the selected option.
func (c ChoiceGroup) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

// SetValue selects the option equal to v, when present.
func (c *ChoiceGroup) SetValue(v string) {
	for i, opt := range c.Options {
		if opt == v {
			c.Selected = i
			return
		}
	}
}

// View renders the group, highlighting the row label when focused.
func (c ChoiceGroup) View(focused bool) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if focused {
		labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
	}
	s := labelStyle.Render(c.Label) + "  "

	for i, opt := range c.Options {
		if i == c.Selected {
			s += lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("[" + opt + "]")
		} else {
			s += lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(" " + opt + " ")
		}
		if i < len(c.Options)-1 {
			s += " "
		}
	}
	return s
}
