package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

// ProgressBar is a fixed-width horizontal fill, used for the question
// counter in the interview status line.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar builds a bar. Width is the total footprint including the
// label and the percent suffix when shown.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, ShowPercent: showPercent, Width: width}
}

func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	suffix := 0
	if p.ShowPercent {
		suffix = 6
	}
	cells := p.Width - lipgloss.Width(b.String()) - suffix
	if cells < 4 {
		cells = 4
	}

	frac := p.Percent
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(float64(cells) * frac)

	b.WriteString(lipgloss.NewStyle().Background(theme.Secondary).
		Render(strings.Repeat(" ", filled)))
	b.WriteString(lipgloss.NewStyle().Background(theme.Border).
		Render(strings.Repeat(" ", cells-filled)))

	if p.ShowPercent {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(frac*100))))
	}
	return b.String()
}
