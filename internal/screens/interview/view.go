package interview

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/ui/components"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

// urgentThreshold is when the countdown switches to the warning color.
const urgentThreshold = 10

func (s *Screen) View(width, height int) string {
	if s.confirmSkip {
		return s.renderSkipConfirm(width)
	}
	if s.finishing {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Submitting your interview...")
	}

	var b strings.Builder
	b.WriteString(s.renderStatusLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	q := s.state.Current()

	label := string(q.Type)
	if q.Coding {
		label += " · coding"
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + label))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n\n")

	if s.recording || s.editing {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(s.area.View()))
		b.WriteString("\n")
	} else {
		b.WriteString(s.renderAnswerStatus(width))
	}

	if s.captureErr != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Capture failed: " + s.captureErr))
		b.WriteString("\n")
	}

	if s.saveErr != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Could not save your session: "+s.saveErr) + "\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Your answers are untouched — press F to try again."))
		b.WriteString("\n")
	}

	return b.String()
}

// renderStatusLine shows progress and the countdown.
func (s *Screen) renderStatusLine(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", s.state.Index+1, len(s.state.Questions)))

	bar := components.NewProgressBar("", float64(s.state.Index+1)/float64(len(s.state.Questions)), false, 20)

	remaining := s.state.Timer.Remaining()
	timerStr := fmt.Sprintf("%d:%02d", remaining/60, remaining%60)
	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if s.state.TimeUp {
		timerStr = "time's up"
		timerStyle = theme.Urgent
	} else if remaining <= urgentThreshold {
		timerStyle = theme.Urgent
	}
	right := timerStyle.Render(timerStr)

	mid := bar.View()
	gap1 := (width-lipgloss.Width(left)-lipgloss.Width(mid)-lipgloss.Width(right)-4)/2 - 1
	if gap1 < 1 {
		gap1 = 1
	}
	return left + strings.Repeat(" ", gap1) + mid + strings.Repeat(" ", gap1) + right
}

// renderAnswerStatus shows what is currently recorded for this question.
func (s *Screen) renderAnswerStatus(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	a, ok := s.state.Answers[s.state.Current().ID]
	switch {
	case !ok:
		action := "Press R to record your answer"
		if s.state.Current().Coding {
			action = "Press E to open the code editor"
		}
		return center.Foreground(theme.TextDim).Render(action) + "\n"
	case a.Skipped:
		return center.Foreground(theme.TextDim).Render("Skipped") + "\n"
	case a.Code != "":
		lines := strings.Count(a.Code, "\n") + 1
		return center.Render(
			theme.Good.Render("✓ ")+
				lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("Code saved (%d lines) — press E to edit", lines))) + "\n"
	case a.Transcription != nil:
		preview := a.Transcription.Text
		if len(preview) > 60 {
			preview = preview[:60] + "…"
		}
		return center.Render(
			theme.Good.Render("✓ ")+
				lipgloss.NewStyle().Foreground(theme.Text).Render("Recorded: "+preview)) + "\n" +
			center.Foreground(theme.TextDim).Render("Press R to re-record") + "\n"
	default:
		return center.Foreground(theme.TextDim).Render("No answer yet") + "\n"
	}
}

func (s *Screen) renderSkipConfirm(width int) string {
	card := theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Skip this question?") + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("It will count as unanswered in your results.") + "\n\n" +
			theme.Selected.Render("[Y]")+lipgloss.NewStyle().Foreground(theme.Text).Render(" skip   ")+
			theme.Selected.Render("[N]")+lipgloss.NewStyle().Foreground(theme.Text).Render(" keep answering"))

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n" + card)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
