package settings

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"dossier/internal/config"
)

// Theme is the huh theme shared by the settings form and the terminal
// password prompt.
func Theme() *huh.Theme {
	green := lipgloss.Color("#4ade80")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(18).Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Width(18).Foreground(green).Bold(true)
	theme.Blurred.SelectedOption = theme.Blurred.SelectedOption.Foreground(lipgloss.Color("243"))
	theme.Focused.SelectedOption = lipgloss.NewStyle().Foreground(green)
	theme.Focused.Base = theme.Focused.Base.BorderForeground(green)
	return theme
}

// Run launches an interactive form for settings.yaml and saves the result
// on submit.
func Run() error {
	path, err := config.SettingsPath()
	if err != nil {
		return err
	}
	cur, err := Load(path)
	if err != nil {
		return err
	}

	volume := strconv.Itoa(int(cur.Volume*100 + 0.5))
	delay := cur.TypeDelay.String()
	flakes := cur.Snowflakes
	skip := cur.SkipIntro

	delays := []string{"20ms", "35ms", "50ms", "80ms", "120ms"}
	if !contains(delays, delay) {
		delays = append(delays, delay)
	}
	delayOpts := make([]huh.Option[string], 0, len(delays))
	for _, d := range delays {
		delayOpts = append(delayOpts, huh.NewOption(d, d))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Settings").Description("Viewer preferences saved to settings.yaml"),
			huh.NewInput().
				Title("Volume %").
				Value(&volume).
				Validate(validatePercent),
			huh.NewSelect[string]().
				Title("Typing delay").
				Options(delayOpts...).
				Value(&delay),
			huh.NewSelect[int]().
				Title("Snowflakes").
				Options(
					huh.NewOption("off", 0),
					huh.NewOption("light (50)", 50),
					huh.NewOption("default (100)", 100),
					huh.NewOption("blizzard (250)", 250),
				).
				Value(&flakes),
			huh.NewConfirm().
				Title("Skip intro").
				Value(&skip),
		),
	).WithTheme(Theme()).WithWidth(60)

	if err := form.Run(); err != nil {
		return err // form canceled or failed
	}

	next, err := apply(cur, volume, delay, flakes, skip)
	if err != nil {
		return err
	}
	if err := Save(path, next); err != nil {
		return err
	}
	fmt.Printf("\n✓ saved %s\n\n", path)
	return nil
}

// apply folds raw form values into prefs.
func apply(p Prefs, volume, delay string, flakes int, skip bool) (Prefs, error) {
	if err := validatePercent(volume); err != nil {
		return p, err
	}
	v, _ := strconv.Atoi(strings.TrimSpace(volume))
	d, err := time.ParseDuration(delay)
	if err != nil {
		return p, fmt.Errorf("typing delay: %w", err)
	}
	p.Volume = float64(v) / 100
	p.TypeDelay = d
	p.Snowflakes = flakes
	p.SkipIntro = skip
	return p.Clamp(), nil
}

func validatePercent(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("volume must be a whole number")
	}
	if n < 0 || n > 100 {
		return fmt.Errorf("volume must be between 0 and 100")
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
