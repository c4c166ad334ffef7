// Package ui provides the terminal presentation pieces of namelint: the
// colour theme, TTY detection, the scan activity indicator and the init form.
package ui

import "github.com/charmbracelet/lipgloss"

// Brand colours for dark terminals; light variants are set per style.
const (
	ColorPrimary   = "#DA7756"
	ColorSecondary = "#8B5CF6"
	ColorSuccess   = "#10B981"
	ColorWarning   = "#F59E0B"
	ColorError     = "#EF4444"
	ColorText      = "#E5E7EB"
	ColorMuted     = "#9CA3AF"
	ColorBorder    = "#4B5563"
)

// ThemeConfig configures NewTheme.
type ThemeConfig struct {
	NoColor bool
}

// Palette holds the colours of a Theme.
type Palette struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme carries colour settings shared by every UI component.
type Theme struct {
	NoColor bool
	Colors  Palette
}

// NewTheme creates a Theme.
func NewTheme(cfg ThemeConfig) *Theme {
	return &Theme{
		NoColor: cfg.NoColor,
		Colors: Palette{
			Primary:   ColorPrimary,
			Secondary: ColorSecondary,
			Success:   ColorSuccess,
			Warning:   ColorWarning,
			Error:     ColorError,
			Muted:     ColorMuted,
		},
	}
}

// Styles are the lipgloss styles used by reports and command output.
type Styles struct {
	Title   lipgloss.Style
	File    lipgloss.Style
	Rule    lipgloss.Style
	Message lipgloss.Style
	Hint    lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Card    lipgloss.Style
}

// Styles returns the theme's styles. With NoColor every style renders its
// input unchanged, apart from the card border.
func (t *Theme) Styles() Styles {
	card := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	if t.NoColor {
		plain := lipgloss.NewStyle()
		return Styles{
			Title: plain, File: plain, Rule: plain, Message: plain,
			Hint: plain, Success: plain, Failure: plain, Card: card,
		}
	}

	color := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}
	return Styles{
		Title:   lipgloss.NewStyle().Foreground(color("#C45A3C", t.Colors.Primary)).Bold(true),
		File:    lipgloss.NewStyle().Foreground(color("#C45A3C", t.Colors.Primary)).Underline(true),
		Rule:    lipgloss.NewStyle().Foreground(color("#5B21B6", t.Colors.Secondary)),
		Message: lipgloss.NewStyle().Foreground(color("#111827", ColorText)),
		Hint:    lipgloss.NewStyle().Foreground(color("#6B7280", t.Colors.Muted)).Italic(true),
		Success: lipgloss.NewStyle().Foreground(color("#059669", t.Colors.Success)).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(color("#DC2626", t.Colors.Error)).Bold(true),
		Card:    card.BorderForeground(color("#D1D5DB", ColorBorder)),
	}
}
