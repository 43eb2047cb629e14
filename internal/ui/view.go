package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

func (m model) View() string {
	if m.quitting {
		return ""
	}
	var body string
	switch m.screen {
	case screenTitle:
		body = renderTitle(m.story, m.width, m.bodyHeight())
	case screenTransition, screenFadeOut:
		body = renderScene(m.snow.Render(), m.snowFade.Value, "", 0)
	case screenIntro:
		body = renderScene(m.snow.Render(), m.snowFade.Value, m.introLine(), m.introFade.Opacity())
	case screenBlack:
		body = ""
	case screenMenu:
		body = m.viewMenu()
	case screenPage:
		body = m.viewPage()
	case screenTerminal:
		body = m.viewTerminal()
	}
	out := m.viewHeader() + "\n" + fitHeight(body, m.bodyHeight()) + "\n" + m.viewFooter()
	return zone.Scan(out)
}

func (m model) introLine() string {
	if m.introIndex < 0 || m.introIndex >= len(m.story.Intro) {
		return ""
	}
	return m.story.Intro[m.introIndex]
}

// viewHeader is the top row: a transient notice on the left and the
// volume control on the right.
func (m model) viewHeader() string {
	left := ""
	if m.notice != "" && time.Now().Before(m.noticeUntil) {
		left = " " + m.notice
	}
	icon := IconVolume()
	if m.audio.volume == 0 {
		icon = IconMuted()
	}
	right := fmt.Sprintf("%s %s %s %s %3d%% ",
		icon,
		zone.Mark(zoneVolDown, "-"),
		m.meter.ViewAs(m.audio.volume),
		zone.Mark(zoneVolUp, "+"),
		int(m.audio.volume*100+0.5),
	)
	return renderStatusBar(m.width, left, right)
}

func (m model) viewFooter() string {
	prompting := m.term != nil && m.term.prompt != nil
	return clipToWidth(" "+m.help.ShortHelpView(m.keys.helpFor(m.screen, prompting)), m.width)
}

func (m model) viewMenu() string {
	heading := HeadingStyle().Render(spaced(m.story.Heading))
	block := lipgloss.JoinVertical(lipgloss.Center, heading, "", m.menu.View())
	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, block)
}

func (m model) viewPage() string {
	p, ok := m.currentPage()
	if !ok {
		return ""
	}
	w := m.contentWidth()
	card := renderCard(w-2, p.Title, strings.Split(m.writer.wrapped(w-6), "\n"), 6)
	label := "Next"
	if m.page+1 >= len(m.story.Sections[m.section].Pages) {
		label = "Back to Menu"
	}
	buttons := zone.Mark(zoneNext, Button(label))
	if label == "Next" {
		buttons += "  " + zone.Mark(zoneBack, MutedStyle().Render("menu"))
	}
	block := lipgloss.JoinVertical(lipgloss.Center, card, "", buttons)
	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, block)
}

func (m model) viewTerminal() string {
	title := "System Terminal"
	if p, ok := m.currentPage(); ok && p.Title != "" {
		title = p.Title
	}
	heading := HeadingStyle().Render(IconTerminal() + " " + strings.ToUpper(title))
	block := heading + "\n\n" + m.term.view()
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, lipgloss.NewStyle().Width(m.contentWidth()).Render(block))
}

// fitHeight pads or trims s to exactly n lines.
func fitHeight(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
