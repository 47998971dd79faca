// Package app wires the screen router into the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/screens/home"
	"github.com/prepdeck/prepdeck/internal/screens/welcome"
	"github.com/prepdeck/prepdeck/internal/store"
	"github.com/prepdeck/prepdeck/internal/ui/layout"
)

// Options carries everything the screens need, assembled by the command
// layer.
type Options struct {
	Home  home.Deps
	Creds store.CredentialRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	creds  store.CredentialRepo
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the splash screen.
func newAppModel(opts Options) AppModel {
	splash := welcome.New(func() screen.Screen {
		return home.New(opts.Home)
	})
	return AppModel{
		router: router.New(splash),
		creds:  opts.Creds,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		// Ctrl+C quits from anywhere, even mid-interview.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, m.router.Update(msg)
}

// accountStatus is the right side of the header: the signed-in email, or
// "offline" when the session is local-only.
func (m AppModel) accountStatus() string {
	if m.creds != nil {
		if cred, err := m.creds.Get(context.Background()); err == nil && cred != nil {
			return cred.Email
		}
	}
	return "offline"
}

// hints builds the footer for the active screen: the screen's own hints
// when it provides them, generic navigation otherwise, Ctrl+C always.
func hints(active screen.Screen) []layout.KeyHint {
	hs := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		hs = p.KeyHints()
	}
	return append(hs, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	switch {
	case m.width == 0 || m.height == 0:
		return v
	case layout.IsTooSmall(m.width, m.height):
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.accountStatus(), m.width)
	footer := layout.RenderFooter(hints(active), m.width)

	room := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if room < 0 {
		room = 0
	}
	content := m.router.View(m.width, room)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if _, err := tea.NewProgram(newAppModel(opts)).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
