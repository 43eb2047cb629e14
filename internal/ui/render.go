package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// centerLine pads s on the left so it sits in the middle of width cells.
func centerLine(s string, width int) string {
	w := xansi.StringWidth(s)
	if w >= width {
		return clipToWidth(s, width)
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

// centerBlock centers a multi-line block horizontally and vertically in a
// width x height area.
func centerBlock(block string, width, height int) string {
	if width <= 0 {
		width = 80
	}
	lines := strings.Split(block, "\n")
	padTop := 0
	if height > len(lines) {
		padTop = (height - len(lines)) / 2
	}
	var b strings.Builder
	b.WriteString(strings.Repeat("\n", padTop))
	for i, ln := range lines {
		b.WriteString(centerLine(ln, width))
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// clipToWidth trims a string to the given display width (ANSI-safe).
func clipToWidth(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= maxW {
		return s
	}
	return xansi.Truncate(s, maxW, "")
}

// renderCard draws the page card: a rounded green border with the title
// embedded on the top edge and at least minLines rows of content.
func renderCard(inner int, title string, lines []string, minLines int) string {
	if inner < 16 {
		inner = 16
	}
	top := renderTopBorderWithTitle(inner, title, Dossier.Accent)
	rows := make([]string, 0, max(minLines, len(lines)))
	rows = append(rows, lines...)
	for len(rows) < minLines {
		rows = append(rows, "")
	}
	contentStyle := lipgloss.NewStyle().PaddingLeft(2).PaddingRight(2).Width(inner)
	for i, ln := range rows {
		rows[i] = contentStyle.Render(ln)
	}
	card := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Dossier.Accent).
		Foreground(Dossier.Primary).
		BorderTop(false).BorderLeft(true).BorderRight(true).BorderBottom(true).
		Width(inner)
	return top + "\n" + card.Render(strings.Join(rows, "\n"))
}

// renderTopBorderWithTitle composes the top border line with the title embedded.
func renderTopBorderWithTitle(inner int, title string, color lipgloss.Color) string {
	if inner < 1 {
		inner = 1
	}
	border := lipgloss.NewStyle().Foreground(color)
	t := strings.TrimSpace(title)
	if t == "" {
		return border.Render("╭" + strings.Repeat("─", inner) + "╮")
	}
	tStyled := HeadingStyle().Render(strings.ToUpper(t))
	tW := xansi.StringWidth(tStyled)
	// at least one dash before the title
	leftFill := 1
	maxTitleW := max(inner-leftFill-2, 0)
	if tW > maxTitleW {
		tStyled = clipToWidth(tStyled, maxTitleW)
		tW = xansi.StringWidth(tStyled)
	}
	rightFill := max(inner-leftFill-tW-2, 1)
	left := border.Render("╭")
	pre := border.Render(strings.Repeat("─", leftFill) + " ")
	post := border.Render(" " + strings.Repeat("─", rightFill) + "╮")
	return left + pre + tStyled + post
}

// renderStatusBar draws a single-line status bar at the given width
// with left/right-aligned content.
func renderStatusBar(width int, left, right string) string {
	w := width
	if w <= 0 {
		w = 100
	}
	lw := xansi.StringWidth(left)
	rw := xansi.StringWidth(right)
	if lw+rw > w {
		left = clipToWidth(left, max(w-rw-1, 0))
		lw = xansi.StringWidth(left)
	}
	pad := max(w-lw-rw, 0)
	return StatusBarBase().Render(left + strings.Repeat(" ", pad) + right)
}

// spaced adds letter spacing, the terminal stand-in for wide tracking.
func spaced(s string) string {
	r := []rune(s)
	parts := make([]string, len(r))
	for i, c := range r {
		parts[i] = string(c)
	}
	return strings.Join(parts, " ")
}
