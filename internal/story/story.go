package story

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"dossier/internal/terminal"
)

//go:embed default.yaml
var defaultYAML []byte

// Story is everything the viewer shows: title screen, intro lines, dossier
// sections and the terminal.
type Story struct {
	Title    string          `yaml:"title" json:"title"`
	Tagline  string          `yaml:"tagline" json:"tagline"`
	Heading  string          `yaml:"heading" json:"heading"`
	Intro    []string        `yaml:"intro" json:"intro"`
	Sections []Section       `yaml:"sections" json:"sections"`
	Terminal terminal.Config `yaml:"terminal,omitempty" json:"terminal,omitempty"`
}

// Section is a menu entry. Locked sections open once the dossier is
// unlocked from the terminal.
type Section struct {
	Name   string `yaml:"name" json:"name" jsonschema:"required"`
	Locked bool   `yaml:"locked,omitempty" json:"locked,omitempty"`
	Pages  []Page `yaml:"pages" json:"pages"`
}

// Page is one screen of a section. A Terminal page opens the terminal
// instead of revealing Content.
type Page struct {
	Title    string `yaml:"title" json:"title"`
	Content  string `yaml:"content" json:"content"`
	Terminal bool   `yaml:"terminal,omitempty" json:"terminal,omitempty"`
}

// Default returns the built-in story.
func Default() Story {
	var s Story
	if err := yaml.Unmarshal(defaultYAML, &s); err != nil {
		panic("story: bad embedded default: " + err.Error())
	}
	s.Terminal = terminal.DefaultConfig()
	return s
}

// Load reads a story from path. A missing file yields Default without
// error. On parse errors Default is returned along with the error.
func Load(path string) (Story, error) {
	def := Default()
	if strings.TrimSpace(path) == "" {
		return def, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return def, nil
		}
		return def, err
	}
	var s Story
	if err := yaml.Unmarshal(b, &s); err != nil {
		return def, err
	}
	return s.fill(def), nil
}

// fill takes blank top-level fields from def.
func (s Story) fill(def Story) Story {
	if strings.TrimSpace(s.Title) == "" {
		s.Title = def.Title
	}
	if strings.TrimSpace(s.Tagline) == "" {
		s.Tagline = def.Tagline
	}
	if strings.TrimSpace(s.Heading) == "" {
		s.Heading = def.Heading
	}
	if len(s.Intro) == 0 {
		s.Intro = append([]string(nil), def.Intro...)
	}
	if len(s.Sections) == 0 {
		s.Sections = append([]Section(nil), def.Sections...)
	}
	if reflect.DeepEqual(s.Terminal, terminal.Config{}) {
		s.Terminal = def.Terminal
	}
	return s
}

// Save writes s to path as yaml, creating parent dirs.
func Save(path string, s Story) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Section looks a section up by name, case-insensitively.
func (s Story) Section(name string) (Section, bool) {
	for _, sec := range s.Sections {
		if strings.EqualFold(sec.Name, name) {
			return sec, true
		}
	}
	return Section{}, false
}

// Open reports whether sec can be entered given the dossier lock.
func (sec Section) Open(dossierUnlocked bool) bool {
	return len(sec.Pages) > 0 && (!sec.Locked || dossierUnlocked)
}
