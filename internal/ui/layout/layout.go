// Package layout draws the frame shared by every screen: a header bar, the
// content area, and a footer with key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

// The app refuses to render below this size; interview text becomes
// unreadable when wrapped any narrower.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one "key  description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the whole terminal with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	text := fmt.Sprintf("Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(text)
}

// bar wraps one line of content in the bordered card style both the header
// and the footer use.
func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderHeader draws the top bar: app name on the left, the screen title
// centered, and the account status (signed-in email or "offline") on the
// right.
func RenderHeader(title, status string, width int) string {
	name := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  PrepDeck")
	mid := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	acct := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)

	inner := width - 4
	if inner < 0 {
		inner = 0
	}

	// Center the title against the full bar, then pad the right side with
	// whatever room is left.
	pre := (inner-lipgloss.Width(mid))/2 - lipgloss.Width(name)
	if pre < 1 {
		pre = 1
	}
	post := inner - lipgloss.Width(name) - pre - lipgloss.Width(mid) - lipgloss.Width(acct)
	if post < 1 {
		post = 1
	}

	return bar(name+strings.Repeat(" ", pre)+mid+strings.Repeat(" ", post)+acct, width)
}

// RenderFooter draws the bottom bar from the active screen's key hints.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
	}
	return bar("  "+strings.Join(parts, "   "), width)
}

// RenderFrame stacks header, content, and footer, stretching the content to
// fill the space between them.
func RenderFrame(header, content, footer string, width, height int) string {
	room := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if room < 0 {
		room = 0
	}
	body := lipgloss.NewStyle().Width(width).Height(room).Render(content)
	return header + "\n" + body + "\n" + footer
}
