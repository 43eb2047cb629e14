package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// AppName names the config directory.
const AppName = "dossier"

// Dir returns the dossier config directory under the user config base.
// On Linux this is $XDG_CONFIG_HOME/dossier, on macOS
// ~/Library/Application Support/dossier and on Windows %AppData%/dossier.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, AppName), nil
}

// File joins name onto Dir.
func File(name string) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// StoryPath is where the story file lives.
func StoryPath() (string, error) { return File("story.yaml") }

// SettingsPath is where preferences are saved.
func SettingsPath() (string, error) { return File("settings.yaml") }

// LogPath is the default TUI log file.
func LogPath() (string, error) { return File("dossier.log") }
