package ui

// Bubble Tea messages

// snow animation frame
type frameMsg struct{}

// snow opacity ramp step
type fadeMsg struct{ seq int }

// transition phase: snow starts fading in
type fadeInMsg struct{ seq int }

// intro sequencing
type introStep int

const (
	introStart introStep = iota
	introShow
	introHide
	introNext
	introFinish
)

type introMsg struct {
	seq  int
	step introStep
}

// intro line opacity spring frame
type springMsg struct{ seq int }

// end of the black screen after the intro
type blackDoneMsg struct{ seq int }

// background music start and volume ramp
type audioStartMsg struct{}
type rampMsg struct{}

// typewriter reveal step
type typeMsg struct{ seq int }

// glitch re-roll pulse in the terminal
type pulseMsg struct{ seq int }

// story file changed on disk
type storyChangedMsg struct{}
