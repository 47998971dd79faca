// Package screen holds the contract every TUI screen satisfies. It lives
// apart from the router so screens can reference each other's constructors
// without an import cycle through navigation.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/prepdeck/prepdeck/internal/ui/layout"
)

// Screen is one full-content view between the shared header and footer.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders into the given content area; the frame handles
	// header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints with its
// own. Screens with modal states (recording, confirmations) swap hints per
// state.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
