package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"dossier/internal/story"
)

const menuButtonWidth = 28

// menuItem is one dossier section in the menu.
type menuItem struct {
	name   string
	index  int
	locked bool
}

func (i menuItem) Title() string {
	if i.locked {
		return fmt.Sprintf("%s (Locked)", i.name)
	}
	return i.name
}
func (i menuItem) Description() string { return "" }
func (i menuItem) FilterValue() string { return i.name }

func menuZone(i int) string { return fmt.Sprintf("menu.item.%d", i) }

// menuDelegate draws each section as an outlined button, three rows tall.
type menuDelegate struct{}

func (menuDelegate) Height() int                             { return 3 }
func (menuDelegate) Spacing() int                            { return 0 }
func (menuDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (menuDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(menuItem)
	if !ok {
		return
	}
	label := it.Title()
	if it.locked {
		label = IconLock() + " " + label
	}
	btn := OutlineButton(label, menuButtonWidth, index == m.Index(), it.locked)
	fmt.Fprint(w, zone.Mark(menuZone(index), centerBlock(btn, m.Width(), 0)))
}

func menuItems(s story.Story, unlocked bool) []list.Item {
	items := make([]list.Item, 0, len(s.Sections))
	for i, sec := range s.Sections {
		items = append(items, menuItem{name: sec.Name, index: i, locked: !sec.Open(unlocked)})
	}
	return items
}

// newMenu constructs the section list with all list chrome hidden; the
// view draws the heading itself.
func newMenu(s story.Story, unlocked bool) list.Model {
	l := list.New(menuItems(s, unlocked), menuDelegate{}, menuButtonWidth+4, 12)
	l.Title = ""
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(false)
	l.Select(0)
	return l
}

// selectedSection returns the highlighted menu entry, or ok=false.
func selectedSection(l list.Model) (menuItem, bool) {
	it, ok := l.SelectedItem().(menuItem)
	return it, ok
}
