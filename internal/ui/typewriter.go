package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// typewriter reveals text one rune per tick.
type typewriter struct {
	text  []rune
	shown int
	delay time.Duration
	seq   int
}

// reset starts revealing text from the beginning. The sequence number
// invalidates ticks scheduled for the previous text.
func (t *typewriter) reset(text string, delay time.Duration) {
	t.text = []rune(text)
	t.shown = 0
	t.delay = delay
	t.seq++
}

// step reveals one more rune and reports whether more remain.
func (t *typewriter) step() bool {
	if t.shown < len(t.text) {
		t.shown++
	}
	return t.shown < len(t.text)
}

func (t *typewriter) finish() { t.shown = len(t.text) }

func (t typewriter) done() bool { return t.shown >= len(t.text) }

func (t typewriter) visible() string { return string(t.text[:t.shown]) }

// wrapped returns the revealed text soft-wrapped to width.
func (t typewriter) wrapped(width int) string {
	return lipgloss.NewStyle().Width(max(width, 1)).Render(t.visible())
}
