package feedbackview

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.retrying {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Generating feedback...")
	}
	if s.result.FeedbackErr != nil {
		return s.renderUnavailable(width)
	}

	lines := strings.Split(s.renderReport(width), "\n")
	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	end := s.scroll + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[s.scroll:end], "\n")
}

func (s *Screen) renderUnavailable(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Success).Bold(true).
		Render("✓ Your session was saved"))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Error).
		Render("Feedback could not be generated: " + s.result.FeedbackErr.Error()))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.TextDim).
		Render("Press R to retry, or Enter to finish without feedback."))
	for _, w := range s.result.Warnings {
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.Accent).Render("⚠ " + w))
	}
	return b.String()
}

func (s *Screen) renderReport(width int) string {
	r := s.result.Report
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	b.WriteString(center.Foreground(theme.Primary).Bold(true).
		Render("Interview complete!"))
	b.WriteString("\n\n")

	for _, w := range s.result.Warnings {
		b.WriteString(center.Foreground(theme.Accent).
			Render("⚠ " + w))
		b.WriteString("\n")
	}
	if len(s.result.Warnings) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(center.Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("%.0f / 100   ·   %s", r.OverallScore, r.OverallGrade)))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).
		Render(fmt.Sprintf("Completion: %.0f%%   Answered: %d/%d",
			r.CompletionRate, r.Metrics.QuestionsAnswered, r.Metrics.TotalQuestions)))
	b.WriteString("\n")
	if r.Metrics.QuestionsWithTranscripts > 0 {
		b.WriteString(center.Foreground(theme.TextDim).
			Render(fmt.Sprintf("Spoken: %d words across %d answers (avg %.0f/answer)",
				r.Metrics.TotalWordsSpoken, r.Metrics.QuestionsWithTranscripts,
				r.Metrics.AvgWordsPerResponse)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	s.renderList(&b, width, "Strengths", r.Strengths, theme.Success)
	s.renderList(&b, width, "Areas to improve", r.Improvements, theme.Accent)
	s.renderList(&b, width, "Recommendations", r.Recommendations, theme.Text)
	s.renderList(&b, width, "Next steps", r.NextSteps, theme.Text)

	if len(r.QuestionFeedbacks) > 0 {
		b.WriteString(s.sectionDivider(width, "Per question"))
		for i, qf := range r.QuestionFeedbacks {
			head := fmt.Sprintf("%d. %s — %.0f/100", i+1, qf.QuestionText, qf.Score)
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
				Render("  " + head))
			b.WriteString("\n")
			if qf.Comment != "" {
				b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
					Render("     " + qf.Comment))
				b.WriteString("\n")
			}
			for _, item := range qf.Strengths {
				b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).
					Render("     + " + item))
				b.WriteString("\n")
			}
			for _, item := range qf.Improvements {
				b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).
					Render("     - " + item))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (s *Screen) renderList(b *strings.Builder, width int, title string, items []string, c lipgloss.Color) {
	if len(items) == 0 {
		return
	}
	b.WriteString(s.sectionDivider(width, title))
	for _, item := range items {
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render("  • " + item))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func (s *Screen) sectionDivider(width int, title string) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(title)) +
		"\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, divider) + "\n\n"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
