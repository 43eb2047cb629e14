package terminal

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

var (
	ErrEmptyID   = errors.New("empty log id")
	ErrEmptyName = errors.New("empty command name")
	ErrDuplicate = errors.New("duplicate entry")
)

// LogEntry is one memory log reachable through `access log <id>`.
//
// Text is shown as-is. When Glitch is set the entry is rendered from that
// base phrase through GlitchText and Format (a single %s verb) on every
// access instead.
type LogEntry struct {
	ID     string `yaml:"id" json:"id" jsonschema:"required"`
	Label  string `yaml:"label" json:"label"`
	Text   string `yaml:"text,omitempty" json:"text,omitempty"`
	Glitch string `yaml:"glitch,omitempty" json:"glitch,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	Gated  bool   `yaml:"gated,omitempty" json:"gated,omitempty"`
}

// Registry maps log ids to entries, keeping definition order for listing.
type Registry struct {
	entries map[string]LogEntry
	order   []string
	gate    GateConfig
}

// NewRegistry validates entries and builds a registry. Gated entries are
// unlocked by gate.Secret.
func NewRegistry(entries []LogEntry, gate GateConfig) (*Registry, error) {
	r := &Registry{entries: make(map[string]LogEntry, len(entries)), gate: gate}
	for _, e := range entries {
		e.ID = strings.ToLower(strings.TrimSpace(e.ID))
		if e.ID == "" {
			return nil, ErrEmptyID
		}
		if _, ok := r.entries[e.ID]; ok {
			return nil, fmt.Errorf("log %q: %w", e.ID, ErrDuplicate)
		}
		if e.Label == "" {
			e.Label = e.ID
		}
		if e.Glitch != "" && e.Format == "" {
			e.Format = "%s"
		}
		r.entries[e.ID] = e
		r.order = append(r.order, e.ID)
	}
	return r, nil
}

// Lookup finds an entry by exact id.
func (r *Registry) Lookup(id string) (LogEntry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

// Labels lists entry labels in definition order.
func (r *Registry) Labels() []string {
	out := make([]string, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id].Label)
	}
	return out
}

// IDs lists entry ids in definition order.
func (r *Registry) IDs() []string { return append([]string(nil), r.order...) }

// Gate returns the password gate guarding gated entries.
func (r *Registry) Gate() GateConfig { return r.gate }

// Render produces the display line for e. Glitch entries differ per call.
func (r *Registry) Render(e LogEntry, rng *rand.Rand) Line {
	if e.Glitch != "" {
		return glitchLine(e.Format, e.Glitch, rng)
	}
	return plain(e.Text)
}
