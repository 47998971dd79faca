package login

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

func (s *LoginScreen) View(width, height int) string {
	if s.busy {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Signing in...")
	}

	title := "Sign in to sync your sessions"
	if s.register {
		title = "Create your account"
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	if s.register {
		b.WriteString(s.inputRow("Name", s.name.View(), fieldName))
	}
	b.WriteString(s.inputRow("Email", s.email.View(), fieldEmail))
	b.WriteString(s.inputRow("Password", s.password.View(), fieldPassword))

	if s.formErr != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("  " + s.formErr))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *LoginScreen) inputRow(label, view string, field int) string {
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if s.focus == field {
		style = style.Foreground(theme.Primary).Bold(true)
	}
	return "  " + style.Render(label) + "\n  " + view + "\n"
}
