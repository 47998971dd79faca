// Package welcome plays a short splash animation, then hands off to the
// home screen on the first keypress.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

// The animation reveals in stages: art first, sparkles after sparkleAt,
// banner and tagline after bannerAt. The clock stops at maxAge so the
// sparkle index keeps cycling without the duration growing forever.
const (
	tickEvery = 100 * time.Millisecond
	sparkleAt = 500 * time.Millisecond
	bannerAt  = 1500 * time.Millisecond
	maxAge    = 4500 * time.Millisecond
)

const deskArt = `  ╭───────────╮
  │  ┌─────┐  │
  │  │ ◉ ◉ │  │
  │  │  ▽  │  │
  │  ├─────┤  │
  │  │ Q&A │  │
  │  └─────┘  │
  ╰───────────╯`

var sparkles = [...]string{"★", "✦"}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickEvery, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// WelcomeScreen is the splash. It never transitions on its own; a keypress
// is required so the animation doesn't yank the terminal mid-read.
type WelcomeScreen struct {
	makeHome func() screen.Screen
	age      time.Duration
	ticks    int
	done     bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New builds the splash. makeHome is called once, on hand-off.
func New(makeHome func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{makeHome: makeHome}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return tick() }

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		w.ticks++
		if w.age < maxAge {
			w.age += tickEvery
		}
		return w, tick()
	case tea.KeyPressMsg:
		return w, w.handOff()
	}
	return w, nil
}

// handOff builds the home screen and asks the router to swap it in. Nil
// after the first call so a mashed keyboard can't build two homes.
func (w *WelcomeScreen) handOff() tea.Cmd {
	if w.done {
		return nil
	}
	w.done = true
	home := w.makeHome()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: home} }
}

func (w *WelcomeScreen) View(width, height int) string {
	art := lipgloss.NewStyle().Foreground(theme.Primary).Render(deskArt)
	if w.age >= sparkleAt {
		art = w.sparkled(art)
	}

	pieces := []string{art}
	if w.age >= bannerAt {
		tagline := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("Practice interviews. Get honest feedback.")
		hint := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("press any key to continue")
		pieces = append(pieces, "", RenderBanner(width), "", tagline, "", hint)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(pieces, "\n"))
}

// sparkled decorates alternating rows of the art with the current sparkle
// frame in two accent colors.
func (w *WelcomeScreen) sparkled(art string) string {
	glyph := sparkles[w.ticks%len(sparkles)]
	a := lipgloss.NewStyle().Foreground(theme.Accent).Render(glyph)
	b := lipgloss.NewStyle().Foreground(theme.Secondary).Render(glyph)

	lines := strings.Split(art, "\n")
	for i, row := range []int{0, 3, 6} {
		if row >= len(lines) {
			break
		}
		if i%2 == 0 {
			lines[row] = a + "  " + lines[row] + "  " + b
		} else {
			lines[row] = b + "  " + lines[row] + "  " + a
		}
	}
	return strings.Join(lines, "\n")
}
