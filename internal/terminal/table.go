package terminal

import (
	"fmt"
	"strings"
)

// Signal asks the host to do something beyond appending lines.
type Signal int

const (
	SignalNone Signal = iota
	// SignalClear replaces the transcript with an empty one.
	SignalClear
	// SignalExit closes the terminal view.
	SignalExit
)

func (s Signal) String() string {
	switch s {
	case SignalClear:
		return "clear"
	case SignalExit:
		return "exit"
	}
	return "none"
}

// Gate is a password check guarding an action's outcome.
type Gate struct {
	Prompt  string
	Secret  string
	Granted []string
	Denied  []string
	// Grant mutates the state once the secret matched.
	Grant func(*State)
}

// ActionResult is what an Action hands back to the interpreter.
type ActionResult struct {
	Lines  []string
	Signal Signal
	Gate   *Gate
}

// Response is the value side of the command table: either FixedLines or an
// Action.
type Response interface {
	respond() ActionResult
}

// FixedLines is printed verbatim.
type FixedLines []string

func (f FixedLines) respond() ActionResult {
	return ActionResult{Lines: append([]string(nil), f...)}
}

// Action runs on every dispatch of its command.
type Action func() ActionResult

func (a Action) respond() ActionResult {
	if a == nil {
		return ActionResult{}
	}
	return a()
}

// Command binds a command string to its response.
type Command struct {
	Name     string
	Response Response
}

// Table is the static command vocabulary.
type Table struct {
	cmds  map[string]Response
	order []string
}

// NewTable builds a table. Names are normalized the same way input is, so
// lookups are exact on normalized input.
func NewTable(cmds ...Command) (*Table, error) {
	t := &Table{cmds: make(map[string]Response, len(cmds))}
	for _, c := range cmds {
		if err := t.add(c); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) add(c Command) error {
	name := Normalize(c.Name)
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := t.cmds[name]; ok {
		return fmt.Errorf("command %q: %w", name, ErrDuplicate)
	}
	if c.Response == nil {
		c.Response = FixedLines(nil)
	}
	t.cmds[name] = c.Response
	t.order = append(t.order, name)
	return nil
}

// Lookup finds a response by exact command string.
func (t *Table) Lookup(name string) (Response, bool) {
	r, ok := t.cmds[name]
	return r, ok
}

// Names lists command strings in definition order.
func (t *Table) Names() []string {
	return append([]string(nil), t.order...)
}

// Normalize trims and lower-cases raw input.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
