package setup

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/ui/components"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.generating {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Generating your questions...")
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Set up your interview"))
	b.WriteString("\n\n")

	b.WriteString(s.inputRow("Role", s.role.View(), fieldRole))
	b.WriteString(s.inputRow("Company", s.company.View(), fieldCompany))
	b.WriteString(s.inputRow("Job description", s.jobDesc.View(), fieldJobDesc))
	b.WriteString("\n")

	b.WriteString("  " + s.qType.View(s.focus == fieldType) + "\n")
	b.WriteString("  " + s.diff.View(s.focus == fieldDifficulty) + "\n")
	b.WriteString("  " + s.duration.View(s.focus == fieldDuration) + "\n")
	b.WriteString("  " + s.coding.View(s.focus == fieldCoding) + "\n")
	if s.coding.Value() == "yes" {
		b.WriteString(s.inputRow("Language", s.language.View(), fieldLanguage))
	}
	b.WriteString("\n")
	b.WriteString(s.inputRow("Resume", s.resume.View(), fieldResume))

	start := components.Button{
		Label:  "Start interview (Ctrl+S)",
		Active: strings.TrimSpace(s.role.Value()) != "",
	}
	b.WriteString("\n  " + start.View() + "\n")

	if s.formErr != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("  " + s.formErr))
		b.WriteString("\n")
	}

	return b.String()
}

// inputRow renders a labeled text field, highlighting the label on focus.
func (s *Screen) inputRow(label, view string, field int) string {
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if s.focus == field {
		style = style.Foreground(theme.Primary).Bold(true)
	}
	return "  " + style.Render(label) + "\n  " + view + "\n"
}
