package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"marlow-cli/internal/model"
)

// Theme/palette helpers.
//
// The TUI must stay readable on both light and dark terminal backgrounds,
// so chrome colors are lipgloss.AdaptiveColor pairs. Client accent colors
// come from the fixed hex palette and degrade to no color on terminals
// without color support.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted  = ac("240", "243")
	colorChrome = ac("240", "245")

	styleTabActive = lipgloss.NewStyle().Bold(true).Underline(true)
	styleTab       = lipgloss.NewStyle().Foreground(colorMuted)
	styleHeader    = lipgloss.NewStyle().Bold(true)
	styleMuted     = lipgloss.NewStyle().Foreground(colorMuted)
	styleHelp      = lipgloss.NewStyle().Foreground(colorChrome)

	// Phase tags follow the product convention: scripting = red,
	// filming = blue.
	styleScripting = lipgloss.NewStyle().Foreground(ac("124", "203"))
	styleFilming   = lipgloss.NewStyle().Foreground(ac("26", "75"))

	styleToday = lipgloss.NewStyle().Bold(true).Reverse(true)
)

// clientStyle renders text in a client's accent color, if the terminal can.
func clientStyle(hex string) lipgloss.Style {
	if hex == "" {
		hex = model.NeutralColor
	}
	if termenv.ColorProfile() == termenv.Ascii {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

func phaseStyle(p model.Phase) lipgloss.Style {
	if p == model.PhaseFilming {
		return styleFilming
	}
	return styleScripting
}

func phaseTag(p model.Phase) string {
	// Single-letter tag, as on the calendar cards: S / F.
	if p == model.PhaseFilming {
		return styleFilming.Render("F")
	}
	return styleScripting.Render("S")
}
