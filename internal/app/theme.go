package app

import (
	"charm.land/lipgloss/v2"

	"webdash/internal/config"
)

// styles is the lipgloss palette derived from one theme.
type styles struct {
	base         lipgloss.Style
	text         lipgloss.Style
	primary      lipgloss.Style
	muted        lipgloss.Style
	selected     lipgloss.Style
	button       lipgloss.Style
	buttonActive lipgloss.Style
	dialogTitle  lipgloss.Style
	dialogFrame  lipgloss.Style
	status       lipgloss.Style
}

func newStyles(colors config.ThemeColors) styles {
	text := lipgloss.Color(colors.Text.Hex())
	primary := lipgloss.Color(colors.Primary.Hex())
	background := lipgloss.Color(colors.Background.Hex())
	return styles{
		base:         lipgloss.NewStyle().Foreground(text).Background(background),
		text:         lipgloss.NewStyle().Foreground(text),
		primary:      lipgloss.NewStyle().Foreground(primary),
		muted:        lipgloss.NewStyle().Foreground(text).Faint(true),
		selected:     lipgloss.NewStyle().Foreground(background).Background(primary).Bold(true),
		button:       lipgloss.NewStyle().Foreground(text).Padding(0, 1),
		buttonActive: lipgloss.NewStyle().Foreground(background).Background(primary).Bold(true).Padding(0, 1),
		dialogTitle:  lipgloss.NewStyle().Foreground(primary).Bold(true),
		dialogFrame:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primary).Padding(0, 1),
		status:       lipgloss.NewStyle().Foreground(primary).Italic(true),
	}
}

// themeStyles resolves name against cfg, using the default palette for an
// unknown theme.
func themeStyles(cfg config.Config, name string) styles {
	colors, err := cfg.ThemeColorsFor(name)
	if err != nil {
		colors = config.DefaultThemeColors()
	}
	return newStyles(colors)
}
