package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Timings of the opening sequence.
const (
	transitionDelay = 1500 * time.Millisecond
	transitionHold  = 3 * time.Second
	fadeInEvery     = 60 * time.Millisecond
	fadeOutEvery    = 40 * time.Millisecond
	blackHold       = 2 * time.Second

	introShowDelay = 100 * time.Millisecond
	introLineHold  = 3 * time.Second
	introGap       = 800 * time.Millisecond
	introTail      = time.Second

	audioDelay = time.Second
	rampEvery  = 100 * time.Millisecond

	frameEvery  = 50 * time.Millisecond
	springEvery = time.Second / springFPS
	pulseEvery  = 150 * time.Millisecond

	springFPS = 30
)

// Commands

func frameCmd() tea.Cmd {
	return tea.Tick(frameEvery, func(time.Time) tea.Msg { return frameMsg{} })
}

func fadeCmd(seq int, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg { return fadeMsg{seq: seq} })
}

func fadeInCmd(seq int) tea.Cmd {
	return tea.Tick(transitionDelay, func(time.Time) tea.Msg { return fadeInMsg{seq: seq} })
}

func introCmd(seq int, step introStep, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg { return introMsg{seq: seq, step: step} })
}

func springCmd(seq int) tea.Cmd {
	return tea.Tick(springEvery, func(time.Time) tea.Msg { return springMsg{seq: seq} })
}

func blackCmd(seq int) tea.Cmd {
	return tea.Tick(blackHold, func(time.Time) tea.Msg { return blackDoneMsg{seq: seq} })
}

func audioStartCmd() tea.Cmd {
	return tea.Tick(audioDelay, func(time.Time) tea.Msg { return audioStartMsg{} })
}

func rampCmd() tea.Cmd {
	return tea.Tick(rampEvery, func(time.Time) tea.Msg { return rampMsg{} })
}

func typeCmd(seq int, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg { return typeMsg{seq: seq} })
}

func pulseCmd(seq int) tea.Cmd {
	return tea.Tick(pulseEvery, func(time.Time) tea.Msg { return pulseMsg{seq: seq} })
}

// waitForChange blocks on the story watcher. A closed channel ends the loop.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return storyChangedMsg{}
	}
}
