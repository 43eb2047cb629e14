package settings

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Prefs are viewer preferences kept in settings.yaml.
type Prefs struct {
	Volume     float64       `yaml:"volume"`
	TypeDelay  time.Duration `yaml:"type_delay"`
	Snowflakes int           `yaml:"snowflakes"`
	SkipIntro  bool          `yaml:"skip_intro"`
}

// Defaults mirror the original page: 15% volume, 50ms per character and a
// hundred flakes.
func Defaults() Prefs {
	return Prefs{
		Volume:     0.15,
		TypeDelay:  50 * time.Millisecond,
		Snowflakes: 100,
	}
}

const (
	minDelay  = 5 * time.Millisecond
	maxDelay  = 500 * time.Millisecond
	maxFlakes = 400
)

// Clamp keeps every field inside its usable range.
func (p Prefs) Clamp() Prefs {
	switch {
	case p.Volume < 0:
		p.Volume = 0
	case p.Volume > 1:
		p.Volume = 1
	}
	switch {
	case p.TypeDelay < minDelay:
		p.TypeDelay = minDelay
	case p.TypeDelay > maxDelay:
		p.TypeDelay = maxDelay
	}
	switch {
	case p.Snowflakes < 0:
		p.Snowflakes = 0
	case p.Snowflakes > maxFlakes:
		p.Snowflakes = maxFlakes
	}
	return p
}

// Load reads prefs from path. Missing file yields Defaults without error.
// Fields absent from the file keep their default.
func Load(path string) (Prefs, error) {
	p := Defaults()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, err
	}
	if err := yaml.Unmarshal(b, &p); err != nil {
		return Defaults(), err
	}
	return p.Clamp(), nil
}

// Save writes prefs to path, creating parent dirs.
func Save(path string, p Prefs) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(p.Clamp())
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
