package ui

import "github.com/charmbracelet/lipgloss"

// Design centralizes the TUI color palette and common styles.
//
// The palette follows the dossier's terminal look: green phosphor text on
// black with zinc greys for disabled and secondary elements.
type designTheme struct {
	// Core brand/semantic colors
	Primary lipgloss.Color // green-400
	Accent  lipgloss.Color // green-500
	Red     lipgloss.Color
	Yellow  lipgloss.Color

	// Text colors
	Text      lipgloss.Color // white headings
	Secondary lipgloss.Color // zinc-400
	Muted     lipgloss.Color // zinc-500

	// Surfaces
	Bg      lipgloss.Color // black
	Surface lipgloss.Color // zinc-900
	Border  lipgloss.Color // zinc-700

	// Text on accent backgrounds (buttons)
	OnAccent lipgloss.Color

	// Status bar colors
	BarFG lipgloss.AdaptiveColor
	BarBG lipgloss.AdaptiveColor
}

// Dossier defines the global design theme for the TUI.
var Dossier = designTheme{
	Primary: lipgloss.Color("#4ade80"),
	Accent:  lipgloss.Color("#22c55e"),
	Red:     lipgloss.Color("#ef4444"),
	Yellow:  lipgloss.Color("#facc15"),

	Text:      lipgloss.Color("#ffffff"),
	Secondary: lipgloss.Color("#a1a1aa"),
	Muted:     lipgloss.Color("#71717a"),

	Bg:      lipgloss.Color("#000000"),
	Surface: lipgloss.Color("#18181b"),
	Border:  lipgloss.Color("#3f3f46"),

	OnAccent: lipgloss.Color("#000000"),

	BarFG: lipgloss.AdaptiveColor{Light: "#27272a", Dark: "#a1a1aa"},
	BarBG: lipgloss.AdaptiveColor{Light: "#d4d4d8", Dark: "#18181b"},
}

// BorderStyle returns a style with the standard border color.
func BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Dossier.Border)
}

// AccentBold returns a bold style using the primary accent color.
func AccentBold() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(Dossier.Primary)
}

// TextStyle is the default green terminal text.
func TextStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Dossier.Primary)
}

// HeadingStyle renders white, letter-spaced headings.
func HeadingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(Dossier.Text)
}

// MutedStyle is used for disabled entries and hints.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Dossier.Muted)
}

// StatusBarBase returns the base style for the status bar background/foreground.
func StatusBarBase() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Dossier.BarFG).Background(Dossier.BarBG)
}

// Button renders a small accent button label with consistent styling.
func Button(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(Dossier.OnAccent).Background(Dossier.Accent).Padding(0, 2).Render(s)
}

// OutlineButton renders a menu entry. Disabled entries use the zinc border.
func OutlineButton(s string, width int, selected, disabled bool) string {
	st := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(width).
		Align(lipgloss.Center)
	switch {
	case disabled:
		st = st.BorderForeground(Dossier.Border).Foreground(Dossier.Muted)
	case selected:
		st = st.BorderForeground(Dossier.Accent).Foreground(Dossier.OnAccent).Background(Dossier.Accent)
	default:
		st = st.BorderForeground(Dossier.Accent).Foreground(Dossier.Primary)
	}
	return st.Render(s)
}
