package ui

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dossier/internal/terminal"
)

// termView is the mounted terminal: a fresh session, the scrolled
// transcript and the line editor. It is rebuilt on every mount so the
// interpreter state starts locked each time.
type termView struct {
	session *terminal.Session
	rng     *rand.Rand
	input   textinput.Model
	vp      viewport.Model
	lines   []terminal.Line
	prompt  *terminal.Prompt
	hint    string
	history []string
	histPos int
	exited  bool
	seq     int
	width   int
}

// rows taken below the transcript: prompt message, input, hint
const termChromeRows = 3

func newTermView(in *terminal.Interpreter, width, height, seq int) *termView {
	tv := &termView{rng: in.Rand(), seq: seq}
	tv.session = terminal.NewSession(in, func() { tv.exited = true })

	ti := textinput.New()
	ti.Prompt = terminal.EchoPrefix
	ti.PromptStyle = TextStyle()
	ti.TextStyle = TextStyle()
	ti.Placeholder = "type a command"
	ti.PlaceholderStyle = MutedStyle()
	ti.CompletionStyle = MutedStyle()
	ti.CharLimit = 256
	ti.ShowSuggestions = true
	ti.SetSuggestions(completions(in))
	ti.Focus()
	tv.input = ti

	tv.vp = viewport.New(width, max(height-termChromeRows, 1))
	tv.resize(width, height)
	return tv
}

func (tv *termView) resize(width, height int) {
	tv.width = max(width, 10)
	tv.vp.Width = tv.width
	tv.vp.Height = max(height-termChromeRows, 1)
	tv.input.Width = max(tv.width-lipgloss.Width(tv.input.Prompt)-1, 1)
	tv.refresh()
}

// refresh snapshots the transcript and scrolls to the newest line.
func (tv *termView) refresh() {
	tv.lines = tv.session.Lines()
	tv.vp.SetContent(tv.renderLines())
	tv.vp.GotoBottom()
}

// reroll gives glitch lines fresh noise and reports whether any exist.
func (tv *termView) reroll() bool {
	found := false
	for i, l := range tv.lines {
		if l.Kind == terminal.Glitch {
			tv.lines[i] = l.Reroll(tv.rng)
			found = true
		}
	}
	if found {
		tv.vp.SetContent(tv.renderLines())
	}
	return found
}

func (tv *termView) renderLines() string {
	out := make([]string, 0, len(tv.lines))
	for _, l := range tv.lines {
		out = append(out, lineStyle(l.Kind).Width(tv.width).Render(l.Text))
	}
	return strings.Join(out, "\n")
}

func lineStyle(k terminal.LineKind) lipgloss.Style {
	switch k {
	case terminal.Welcome:
		return AccentBold()
	case terminal.Echo:
		return lipgloss.NewStyle().Foreground(Dossier.Text)
	case terminal.Glitch:
		return lipgloss.NewStyle().Foreground(Dossier.Red)
	}
	return TextStyle()
}

// submit runs the input line, or answers the pending password prompt.
func (tv *termView) submit() {
	raw := tv.input.Value()
	tv.input.SetValue("")
	if tv.prompt != nil {
		tv.session.Answer(raw, true)
		tv.endPrompt()
		tv.refresh()
		return
	}
	if strings.TrimSpace(raw) != "" {
		tv.history = append(tv.history, raw)
	}
	tv.histPos = len(tv.history)
	tv.hint = ""
	if p := tv.session.Begin(raw); p != nil {
		tv.beginPrompt(p)
	} else if tv.unrecognized(raw) {
		if s := didYouMean(raw, tv.session.Interpreter().Commands()); s != "" {
			tv.hint = "did you mean `" + s + "`?"
		}
	}
	tv.refresh()
}

func (tv *termView) unrecognized(raw string) bool {
	cmd := terminal.Normalize(raw)
	if cmd == "" || strings.HasPrefix(cmd, accessLogPrefix) {
		return false
	}
	return !slices.Contains(tv.session.Interpreter().Commands(), cmd)
}

// cancel dismisses the password prompt, which counts as a wrong answer.
func (tv *termView) cancel() bool {
	if tv.prompt == nil {
		return false
	}
	tv.input.SetValue("")
	tv.session.Answer("", false)
	tv.endPrompt()
	tv.refresh()
	return true
}

func (tv *termView) beginPrompt(p *terminal.Prompt) {
	tv.prompt = p
	tv.input.EchoMode = textinput.EchoPassword
	tv.input.EchoCharacter = '•'
	tv.input.ShowSuggestions = false
	tv.input.Placeholder = ""
}

func (tv *termView) endPrompt() {
	tv.prompt = nil
	tv.input.EchoMode = textinput.EchoNormal
	tv.input.ShowSuggestions = true
	tv.input.Placeholder = "type a command"
}

// recall walks the input history; dir is -1 for older, +1 for newer.
func (tv *termView) recall(dir int) {
	if tv.prompt != nil || len(tv.history) == 0 {
		return
	}
	tv.histPos = max(0, min(len(tv.history), tv.histPos+dir))
	if tv.histPos == len(tv.history) {
		tv.input.SetValue("")
		return
	}
	tv.input.SetValue(tv.history[tv.histPos])
	tv.input.CursorEnd()
}

func (tv *termView) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up":
		tv.recall(-1)
		return nil
	case "down":
		tv.recall(1)
		return nil
	case "pgup", "pgdown":
		var cmd tea.Cmd
		tv.vp, cmd = tv.vp.Update(msg)
		return cmd
	}
	var cmd tea.Cmd
	tv.input, cmd = tv.input.Update(msg)
	return cmd
}

func (tv *termView) view() string {
	var b strings.Builder
	b.WriteString(tv.vp.View())
	b.WriteString("\n")
	if tv.prompt != nil {
		b.WriteString(HeadingStyle().Render(clipToWidth(tv.prompt.Message, tv.width)))
	}
	b.WriteString("\n")
	b.WriteString(tv.input.View())
	b.WriteString("\n")
	if tv.hint != "" {
		b.WriteString(MutedStyle().Render(clipToWidth(tv.hint, tv.width)))
	}
	return b.String()
}
