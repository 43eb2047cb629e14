package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"dossier/internal/fade"
	"dossier/internal/snow"
	"dossier/internal/story"
	"dossier/internal/terminal"
)

// harmonica angular frequency for intro lines; settles in about two seconds
const introFrequency = 3.0

const (
	zoneNext    = "page.next"
	zoneBack    = "page.back"
	zoneVolUp   = "volume.up"
	zoneVolDown = "volume.down"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case frameMsg:
		if !m.screen.snowing() {
			m.framing = false
			return m, nil
		}
		m.snow.Step()
		return m, frameCmd()
	case fadeInMsg:
		if msg.seq != m.fadeSeq || m.screen != screenTransition {
			return m, nil
		}
		m.snowFade = fade.Linear{Value: m.snowFade.Value, Target: 1, Step: 0.02}
		return m, tea.Batch(fadeCmd(m.fadeSeq, fadeInEvery), introCmd(m.introSeq, introStart, transitionHold))
	case fadeMsg:
		if msg.seq != m.fadeSeq || !m.screen.snowing() {
			return m, nil
		}
		if m.snowFade.Tick() {
			if m.screen == screenFadeOut {
				return m.enterBlack()
			}
			return m, nil
		}
		every := fadeInEvery
		if m.screen == screenFadeOut {
			every = fadeOutEvery
		}
		return m, fadeCmd(m.fadeSeq, every)
	case introMsg:
		if msg.seq != m.introSeq {
			return m, nil
		}
		return m.stepIntro(msg.step)
	case springMsg:
		if msg.seq != m.introSeq || m.screen != screenIntro {
			m.springing = false
			return m, nil
		}
		if m.introFade.Tick() {
			m.springing = false
			return m, nil
		}
		return m, springCmd(m.introSeq)
	case blackDoneMsg:
		if msg.seq != m.fadeSeq || m.screen != screenBlack {
			return m, nil
		}
		return m.enterMenu()
	case audioStartMsg:
		if m.audio.start() {
			m.logger.Debug("music started", "volume", m.audio.volume)
			return m, rampCmd()
		}
		return m, nil
	case rampMsg:
		if m.audio.tick() {
			return m, rampCmd()
		}
		return m, nil
	case typeMsg:
		if m.screen != screenPage || msg.seq != m.writer.seq {
			return m, nil
		}
		if m.writer.step() {
			return m, typeCmd(m.writer.seq, m.writer.delay)
		}
		return m, nil
	case pulseMsg:
		if m.screen != screenTerminal || m.term == nil || msg.seq != m.term.seq {
			return m, nil
		}
		m.term.reroll()
		return m, pulseCmd(msg.seq)
	case storyChangedMsg:
		m.reloadStory()
		return m, waitForChange(m.changes)
	}
	// cursor blink and other input messages
	if m.screen == screenTerminal && m.term != nil {
		var cmd tea.Cmd
		m.term.input, cmd = m.term.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		if m.audio.started {
			m.audio.player.Stop()
		}
		return m, tea.Quit
	}
	// the terminal owns the keyboard while mounted
	if m.screen == screenTerminal && m.term != nil {
		return m.updateTerminal(msg)
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.audio.started {
			m.audio.player.Stop()
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.VolumeUp):
		m.audio.adjust(volumeStep)
		return m, nil
	case key.Matches(msg, m.keys.VolumeDown):
		m.audio.adjust(-volumeStep)
		return m, nil
	}
	switch m.screen {
	case screenTitle:
		if key.Matches(msg, m.keys.Enter) {
			return m.startTransition()
		}
	case screenTransition, screenIntro, screenFadeOut, screenBlack:
		if key.Matches(msg, m.keys.Skip) {
			return m.enterMenu()
		}
	case screenMenu:
		if key.Matches(msg, m.keys.Open) {
			return m.openSelected()
		}
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	case screenPage:
		switch {
		case key.Matches(msg, m.keys.Reveal):
			m.writer.finish()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			return m.nextPage()
		case key.Matches(msg, m.keys.Back):
			return m.enterMenu()
		}
	}
	return m, nil
}

func (m model) updateTerminal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tv := m.term
	switch msg.Type {
	case tea.KeyEnter:
		tv.submit()
		m.syncTerminal()
		if tv.exited {
			return m.enterMenu()
		}
		return m, nil
	case tea.KeyEsc:
		if tv.cancel() {
			return m, nil
		}
		return m.enterMenu()
	}
	return m, tv.update(msg)
}

// syncTerminal carries the dossier unlock out of the terminal session. It
// outlives the session so the menu stays open after exit.
func (m *model) syncTerminal() {
	if m.term == nil || m.dossierUnlocked {
		return
	}
	if m.term.session.State().DossierUnlocked {
		m.dossierUnlocked = true
		m.menu.SetItems(menuItems(m.story, true))
		m.logger.Info("dossier unlocked")
	}
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.screen == screenTerminal && m.term != nil && msg.Button != tea.MouseButtonLeft {
		var cmd tea.Cmd
		m.term.vp, cmd = m.term.vp.Update(msg)
		return m, cmd
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	switch {
	case zone.Get(zoneVolUp).InBounds(msg):
		m.audio.adjust(volumeStep)
		return m, nil
	case zone.Get(zoneVolDown).InBounds(msg):
		m.audio.adjust(-volumeStep)
		return m, nil
	}
	switch m.screen {
	case screenTitle:
		if zone.Get(zoneEnter).InBounds(msg) {
			return m.startTransition()
		}
	case screenMenu:
		for i := range m.menu.Items() {
			if zone.Get(menuZone(i)).InBounds(msg) {
				m.menu.Select(i)
				return m.openSelected()
			}
		}
	case screenPage:
		if zone.Get(zoneNext).InBounds(msg) {
			return m.nextPage()
		}
		if zone.Get(zoneBack).InBounds(msg) {
			return m.enterMenu()
		}
	}
	return m, nil
}

// startTransition leaves the title: snow appears after a pause and fades
// in, then the intro begins.
func (m model) startTransition() (tea.Model, tea.Cmd) {
	m.screen = screenTransition
	m.fadeSeq++
	m.introSeq++
	m.snow = snow.New(m.width, m.bodyHeight(), m.prefs.Snowflakes, m.rng)
	m.snowFade = fade.Linear{Step: 0.02}
	cmds := []tea.Cmd{fadeInCmd(m.fadeSeq)}
	if !m.framing {
		m.framing = true
		cmds = append(cmds, frameCmd())
	}
	return m, tea.Batch(cmds...)
}

func (m model) stepIntro(step introStep) (tea.Model, tea.Cmd) {
	switch step {
	case introStart:
		if m.screen != screenTransition {
			return m, nil
		}
		m.screen = screenIntro
		m.introIndex = 0
		return m, tea.Batch(audioStartCmd(), m.showLine())
	case introShow:
		m.introFade.Target = 1
		return m, m.startSpring()
	case introHide:
		m.introFade.Target = 0
		return m, tea.Batch(m.startSpring(), introCmd(m.introSeq, introNext, introGap))
	case introNext:
		m.introIndex++
		return m, m.showLine()
	case introFinish:
		return m.startFadeOut()
	}
	return m, nil
}

// showLine schedules the current intro line, or the finish when all lines
// have been shown.
func (m *model) showLine() tea.Cmd {
	if m.introIndex >= len(m.story.Intro) {
		return introCmd(m.introSeq, introFinish, introTail)
	}
	m.introFade = fade.NewSpring(springFPS, introFrequency, 1)
	return tea.Batch(
		introCmd(m.introSeq, introShow, introShowDelay),
		introCmd(m.introSeq, introHide, introLineHold),
	)
}

func (m *model) startSpring() tea.Cmd {
	if m.springing {
		return nil
	}
	m.springing = true
	return springCmd(m.introSeq)
}

func (m model) startFadeOut() (tea.Model, tea.Cmd) {
	m.screen = screenFadeOut
	m.fadeSeq++
	m.snowFade = fade.Linear{Value: m.snowFade.Value, Target: 0, Step: 0.05}
	if m.snowFade.Done() {
		return m.enterBlack()
	}
	return m, fadeCmd(m.fadeSeq, fadeOutEvery)
}

func (m model) enterBlack() (tea.Model, tea.Cmd) {
	m.screen = screenBlack
	return m, blackCmd(m.fadeSeq)
}

// enterMenu shows the section list. Pending intro, fade and terminal
// timers are invalidated.
func (m model) enterMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.introSeq++
	m.fadeSeq++
	m.term = nil
	m.menu.SetItems(menuItems(m.story, m.dossierUnlocked))
	if m.audio.start() {
		return m, rampCmd()
	}
	return m, nil
}

func (m model) openSelected() (tea.Model, tea.Cmd) {
	it, ok := selectedSection(m.menu)
	if !ok {
		return m, nil
	}
	if it.locked {
		m.setNotice(fmt.Sprintf("%s is locked.", it.name))
		return m, nil
	}
	sec := m.story.Sections[it.index]
	if len(sec.Pages) == 0 {
		m.setNotice(fmt.Sprintf("%s is empty.", sec.Name))
		return m, nil
	}
	m.section = it.index
	m.page = 0
	return m.showPage()
}

func (m model) currentPage() (story.Page, bool) {
	if m.section >= len(m.story.Sections) {
		return story.Page{}, false
	}
	pages := m.story.Sections[m.section].Pages
	if m.page >= len(pages) {
		return story.Page{}, false
	}
	return pages[m.page], true
}

func (m model) showPage() (tea.Model, tea.Cmd) {
	p, ok := m.currentPage()
	if !ok {
		return m.enterMenu()
	}
	if p.Terminal {
		return m.openTerminal()
	}
	m.screen = screenPage
	m.writer.reset(p.Content, m.prefs.TypeDelay)
	return m, typeCmd(m.writer.seq, m.writer.delay)
}

// nextPage advances within the section, returning to the menu after the
// last page.
func (m model) nextPage() (tea.Model, tea.Cmd) {
	m.page++
	if _, ok := m.currentPage(); !ok {
		return m.enterMenu()
	}
	return m.showPage()
}

func (m model) openTerminal() (tea.Model, tea.Cmd) {
	in, err := terminal.New(m.story.Terminal, terminal.WithRand(m.rng), terminal.WithLogger(m.logger))
	if err != nil {
		m.logger.Error("terminal config invalid", "err", err)
		m.setNotice("terminal unavailable: " + err.Error())
		return m.enterMenu()
	}
	m.termSeq++
	m.term = newTermView(in, m.contentWidth(), m.termHeight(), m.termSeq)
	m.screen = screenTerminal
	return m, tea.Batch(textinput.Blink, pulseCmd(m.termSeq))
}

func (m *model) reloadStory() {
	s, err := story.Load(m.storyPath)
	if err != nil {
		m.logger.Warn("story reload failed", "path", m.storyPath, "err", err)
		m.setNotice("story reload failed")
		return
	}
	m.story = s
	m.menu.SetItems(menuItems(s, m.dossierUnlocked))
	if _, ok := m.currentPage(); !ok && m.screen == screenPage {
		m.screen = screenMenu
	}
	m.logger.Info("story reloaded", "path", m.storyPath)
	m.setNotice("story reloaded")
}

func (m *model) setNotice(s string) {
	m.notice = s
	m.noticeUntil = time.Now().Add(noticeFor)
}

// layout: one header row, one footer row
const chromeRows = 2

func (m *model) resize(w, h int) {
	m.width, m.height = w, h
	m.snow.Resize(w, m.bodyHeight())
	m.menu.SetSize(menuButtonWidth+4, min(max(len(m.menu.Items())*3, 3), max(m.bodyHeight()-2, 3)))
	m.help.Width = w
	if m.term != nil {
		m.term.resize(m.contentWidth(), m.termHeight())
	}
}

func (m model) bodyHeight() int { return max(m.height-chromeRows, 1) }

// contentWidth caps page and terminal width for readability.
func (m model) contentWidth() int { return max(min(m.width-4, 76), 20) }

// termHeight leaves room for the terminal heading.
func (m model) termHeight() int { return max(m.bodyHeight()-2, 5) }
