// Package theme is the single place colors and shared styles are defined.
// Screens compose these rather than calling lipgloss.Color directly.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette. Tuned for dark terminals; the dim slate tones keep chrome quiet
// so question text stands out.
var (
	Primary   = lipgloss.Color("#6366F1") // indigo
	Secondary = lipgloss.Color("#06B6D4") // cyan
	Accent    = lipgloss.Color("#EAB308") // gold
	Success   = lipgloss.Color("#10B981") // emerald
	Error     = lipgloss.Color("#EF4444") // red
	Text      = lipgloss.Color("#F1F5F9")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0F172A")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

// Text styles.
var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body     = lipgloss.NewStyle().Foreground(Text)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
)

// Chrome.
var (
	Header = lipgloss.NewStyle().Background(BgCard).Padding(0, 2)
	Footer = lipgloss.NewStyle().Background(BgCard).Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// Selection and verdict states.
var (
	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Good       = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Bad        = lipgloss.NewStyle().Foreground(Error).Bold(true)

	// Urgent marks the countdown when little time remains.
	Urgent = lipgloss.NewStyle().Foreground(Error).Bold(true)
)

// Component styles.
var (
	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)

	ButtonDisabled = ButtonInactive.Foreground(TextDim)
)
