package components

import "github.com/prepdeck/prepdeck/internal/ui/theme"

// Button renders a submit affordance. It carries no key handling — the
// owning form decides when submission happens; Active only controls the
// styling.
type Button struct {
	Label  string
	Active bool
}

func (b Button) View() string {
	text := " " + b.Label + " "
	if b.Active {
		return theme.ButtonActive.Render(text)
	}
	return theme.ButtonInactive.Render(text)
}
