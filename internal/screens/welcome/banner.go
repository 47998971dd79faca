package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██████╗ ███████╗██████╗ ██████╗ ███████╗ ██████╗██╗  ██╗
 ██╔══██╗██╔══██╗██╔════╝██╔══██╗██╔══██╗██╔════╝██╔════╝██║ ██╔╝
 ██████╔╝██████╔╝█████╗  ██████╔╝██║  ██║█████╗  ██║     █████╔╝
 ██╔═══╝ ██╔══██╗██╔══╝  ██╔═══╝ ██║  ██║██╔══╝  ██║     ██╔═██╗
 ██║     ██║  ██║███████╗██║     ██████╔╝███████╗╚██████╗██║  ██╗
 ╚═╝     ╚═╝  ╚═╝╚══════╝╚═╝     ╚═════╝ ╚══════╝ ╚═════╝╚═╝  ╚═╝`

const bannerCompact = "P R E P D E C K"

// RenderBanner returns the PREPDECK banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 70 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 70 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
