package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Enter      key.Binding
	Skip       key.Binding
	Up         key.Binding
	Down       key.Binding
	Open       key.Binding
	Next       key.Binding
	Reveal     key.Binding
	Back       key.Binding
	Submit     key.Binding
	Complete   key.Binding
	History    key.Binding
	Scroll     key.Binding
	Cancel     key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Enter:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "enter")),
		Skip:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "skip")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Next:       key.NewBinding(key.WithKeys("enter", "right", "n"), key.WithHelp("enter", "next")),
		Reveal:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "reveal")),
		Back:       key.NewBinding(key.WithKeys("esc", "left", "b"), key.WithHelp("esc", "menu")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Complete:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete")),
		History:    key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "history")),
		Scroll:     key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		VolumeUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "volume")),
		VolumeDown: key.NewBinding(key.WithKeys("-", "_")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// helpFor returns the bindings shown in the help bar for a screen.
func (k keyMap) helpFor(s screen, prompting bool) []key.Binding {
	switch s {
	case screenTitle:
		return []key.Binding{k.Enter, k.VolumeUp, k.Quit}
	case screenTransition, screenIntro, screenFadeOut, screenBlack:
		return []key.Binding{k.Skip, k.VolumeUp, k.Quit}
	case screenMenu:
		return []key.Binding{k.Up, k.Down, k.Open, k.VolumeUp, k.Quit}
	case screenPage:
		return []key.Binding{k.Next, k.Reveal, k.Back, k.VolumeUp, k.Quit}
	case screenTerminal:
		if prompting {
			return []key.Binding{k.Submit, k.Cancel}
		}
		return []key.Binding{k.Submit, k.Complete, k.History, k.Scroll, k.Back}
	}
	return nil
}
