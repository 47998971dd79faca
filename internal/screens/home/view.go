package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("P R E P D E C K")
	tagline := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Practice interviews. Get honest feedback.")
	sections = append(sections, title, tagline, "")

	if h.stats.Completed > 0 {
		sections = append(sections, h.renderStatsCard(), "")
	}

	sections = append(sections, h.menu.View())

	if h.email != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Signed in as "+h.email))
	} else if h.deps.Client == nil {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Offline mode — sessions stay on this machine"))
	}

	if h.updateStatus != "" {
		sections = append(sections, "", lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(h.updateStatus))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderStatsCard summarizes the local completed-session log.
func (h *HomeScreen) renderStatsCard() string {
	line := fmt.Sprintf("Sessions: %d    Avg score: %.0f    Best grade: %s",
		h.stats.Completed, h.stats.AvgScore, h.stats.BestGrade)
	if h.stats.BestGrade == "" {
		line = fmt.Sprintf("Sessions: %d    Avg completion: %.0f%%",
			h.stats.Completed, h.stats.AvgRate)
	}
	return theme.Card.Render(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
}
