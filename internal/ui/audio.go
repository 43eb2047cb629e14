package ui

import (
	"math"

	"dossier/internal/fade"
)

// Player plays the background track. Volume is in [0,1].
type Player interface {
	Play() error
	SetVolume(v float64)
	Stop()
}

// SilentPlayer tracks volume without producing sound.
type SilentPlayer struct {
	Playing bool
	Volume  float64
}

func (p *SilentPlayer) Play() error         { p.Playing = true; return nil }
func (p *SilentPlayer) SetVolume(v float64) { p.Volume = v }
func (p *SilentPlayer) Stop()               { p.Playing = false }

const (
	volumeStep = 0.05
	rampStep   = 0.01
)

// audioState is the user volume plus the playback ramp toward it.
type audioState struct {
	player  Player
	volume  float64
	ramp    fade.Linear
	started bool
	ramping bool
}

func newAudio(p Player, volume float64) audioState {
	if p == nil {
		p = &SilentPlayer{}
	}
	return audioState{player: p, volume: clampVolume(volume)}
}

// start begins playback at zero and ramps to the user volume.
func (a *audioState) start() bool {
	if a.started {
		return false
	}
	a.started = true
	a.ramp = fade.Linear{Value: 0, Target: a.volume, Step: rampStep}
	a.player.SetVolume(0)
	_ = a.player.Play()
	a.ramping = true
	return true
}

// tick advances the ramp and reports whether it should continue.
func (a *audioState) tick() bool {
	if !a.ramping {
		return false
	}
	done := a.ramp.Tick()
	a.player.SetVolume(a.ramp.Value)
	if done {
		a.ramping = false
	}
	return !done
}

// adjust moves the user volume by delta. A running ramp retargets; otherwise
// the player follows immediately.
func (a *audioState) adjust(delta float64) {
	a.volume = clampVolume(a.volume + delta)
	if a.ramping {
		a.ramp.Target = a.volume
		return
	}
	if a.started {
		a.player.SetVolume(a.volume)
	}
}

// level is the volume currently applied to the player.
func (a audioState) level() float64 {
	if a.ramping {
		return a.ramp.Value
	}
	if !a.started {
		return 0
	}
	return a.volume
}

func clampVolume(v float64) float64 {
	// round to the slider's 0.01 step
	v = math.Round(v*100) / 100
	return math.Max(0, math.Min(1, v))
}
