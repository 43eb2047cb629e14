package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"dossier/internal/fade"
	"dossier/internal/story"
)

const zoneEnter = "title.enter"

// renderTitle draws the title screen centered in the window: the
// letter-spaced title, the tagline and the Enter button.
func renderTitle(s story.Story, width, height int) string {
	title := HeadingStyle().Render(spaced(s.Title))
	tag := lipgloss.NewStyle().
		Foreground(Dossier.Secondary).
		Width(min(max(width-4, 10), 60)).
		Align(lipgloss.Center).
		Render(s.Tagline)
	btn := zone.Mark(zoneEnter, Button("Enter"))
	block := lipgloss.JoinVertical(lipgloss.Center, title, "", tag, "", btn)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

// renderScene draws snow rows at the given opacity with an optional line of
// text centered on the middle row at its own opacity.
func renderScene(rows []string, snowOpacity float64, text string, textOpacity float64) string {
	snowStyle := lipgloss.NewStyle().Foreground(fade.Blend(Dossier.Text, Dossier.Bg, snowOpacity))
	mid := len(rows) / 2
	out := make([]string, len(rows))
	for i, row := range rows {
		if i != mid || text == "" || textOpacity <= 0 {
			out[i] = snowStyle.Render(row)
			continue
		}
		out[i] = overlayCenter(row, text, snowStyle,
			lipgloss.NewStyle().Foreground(fade.Blend(Dossier.Text, Dossier.Bg, textOpacity)))
	}
	return strings.Join(out, "\n")
}

// overlayCenter replaces the middle cells of a plain row with text.
func overlayCenter(row, text string, bg, fg lipgloss.Style) string {
	width := xansi.StringWidth(row)
	text = clipToWidth(text, width)
	tw := xansi.StringWidth(text)
	start := (width - tw) / 2
	left := xansi.Truncate(row, start, "")
	right := xansi.TruncateLeft(row, start+tw, "")
	return bg.Render(left) + fg.Render(text) + bg.Render(right)
}
