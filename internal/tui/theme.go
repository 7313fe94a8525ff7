package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds,
// so everything routes through lipgloss.AdaptiveColor.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted        = ac("240", "243")
	colorAccent       = ac("27", "62") // blue
	colorSelectedBg   = ac("#e9e9e9", "#262626")
	colorSelectedFg   = ac("235", "255")
	colorBadgePerson  = ac("29", "35")   // green-ish
	colorBadgeCompany = ac("125", "211") // magenta-ish

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(colorMuted)
	tabActiveStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(colorSelectedFg).
			Background(colorSelectedBg)

	headerStyle = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle  = lipgloss.NewStyle().Foreground(ac("160", "196"))

	detailTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	detailLabelStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

// hasDarkBackground is split out so tests can pin it.
var hasDarkBackground = func() bool {
	return termenv.HasDarkBackground()
}
