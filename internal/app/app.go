package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"dossier/internal/config"
	"dossier/internal/settings"
	"dossier/internal/story"
	"dossier/internal/system"
	"dossier/internal/ui"
)

// Config carries the root command flags.
type Config struct {
	StoryPath string
	SkipIntro bool
	LogFile   string
}

// Start runs the TUI program and returns any error.
func Start(ctx context.Context, c Config) error {
	// logs go to a file so they never draw over the alt screen
	logPath := c.LogFile
	if logPath == "" {
		logPath, _ = config.LogPath()
	}
	if logPath == "" {
		system.Discard()
	} else {
		restore, err := system.LogToFile(logPath)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer restore()
	}

	storyPath := c.StoryPath
	if storyPath == "" {
		storyPath, _ = config.StoryPath()
	}
	st, err := story.Load(storyPath)
	if err != nil {
		system.Logger.Warn("story load failed, using default", "path", storyPath, "err", err)
	}

	prefs := settings.Defaults()
	if p, err := config.SettingsPath(); err == nil {
		loaded, lerr := settings.Load(p)
		if lerr != nil {
			system.Logger.Warn("settings load failed, using defaults", "path", p, "err", lerr)
		}
		prefs = loaded
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var changes <-chan struct{}
	if storyPath != "" {
		ch, werr := story.Watch(ctx, storyPath)
		if werr != nil {
			system.Logger.Debug("story watch disabled", "path", storyPath, "err", werr)
		} else {
			changes = ch
		}
	}

	// Initialize global bubblezone manager for mouse-aware zones.
	zone.NewGlobal()
	m := ui.New(ui.Options{
		Story:     st,
		StoryPath: storyPath,
		Changes:   changes,
		Prefs:     prefs,
		SkipIntro: c.SkipIntro,
		Logger:    system.Logger,
	})
	system.Logger.Info("starting viewer", "story", storyPath, "skip_intro", c.SkipIntro || prefs.SkipIntro)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return err
	}
	return nil
}
