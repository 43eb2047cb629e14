package ui

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	clog "github.com/charmbracelet/log"

	"dossier/internal/fade"
	"dossier/internal/settings"
	"dossier/internal/snow"
	"dossier/internal/story"
	"dossier/internal/system"
)

type screen int

const (
	screenTitle screen = iota
	screenTransition
	screenIntro
	screenFadeOut
	screenBlack
	screenMenu
	screenPage
	screenTerminal
)

func (s screen) snowing() bool {
	return s == screenTransition || s == screenIntro || s == screenFadeOut
}

// Options configure the viewer.
type Options struct {
	Story     story.Story
	StoryPath string          // reloaded on Changes
	Changes   <-chan struct{} // story file notifications, may be nil
	Prefs     settings.Prefs
	SkipIntro bool
	Player    Player
	Rand      *rand.Rand
	Logger    *clog.Logger
}

// Model for TUI
type model struct {
	story     story.Story
	storyPath string
	changes   <-chan struct{}
	prefs     settings.Prefs
	rng       *rand.Rand
	logger    *clog.Logger

	screen   screen
	width    int
	height   int
	quitting bool

	// snow background
	snow     *snow.Field
	snowFade fade.Linear
	fadeSeq  int
	framing  bool

	// intro
	introSeq   int
	introIndex int
	introFade  fade.Spring
	springing  bool
	skipIntro  bool

	audio audioState
	meter progress.Model

	// menu and pages
	menu            list.Model
	dossierUnlocked bool
	section         int
	page            int
	writer          typewriter

	term    *termView
	termSeq int

	keys keyMap
	help help.Model

	notice      string
	noticeUntil time.Time
}

const noticeFor = 3 * time.Second

// New builds the viewer model.
func New(opts Options) tea.Model { return newModel(opts) }

func newModel(opts Options) model {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = system.Logger
	}
	prefs := opts.Prefs
	if prefs == (settings.Prefs{}) {
		prefs = settings.Defaults()
	}
	prefs = prefs.Clamp()
	m := model{
		story:     opts.Story,
		storyPath: opts.StoryPath,
		changes:   opts.Changes,
		prefs:     prefs,
		rng:       rng,
		logger:    logger,
		width:     80,
		height:    24,
		skipIntro: opts.SkipIntro || prefs.SkipIntro,
		audio:     newAudio(opts.Player, prefs.Volume),
		keys:      defaultKeys(),
		help:      help.New(),
	}
	if len(m.story.Sections) == 0 {
		m.story = story.Default()
	}
	m.meter = progress.New(
		progress.WithSolidFill(string(Dossier.Accent)),
		progress.WithWidth(12),
		progress.WithoutPercentage(),
	)
	m.menu = newMenu(m.story, false)
	m.snow = snow.New(m.width, m.height, prefs.Snowflakes, rng)
	if m.skipIntro {
		m.screen = screenMenu
		m.audio.start()
	}
	return m
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForChange(m.changes)}
	if m.audio.ramping {
		cmds = append(cmds, rampCmd())
	}
	return tea.Batch(cmds...)
}
