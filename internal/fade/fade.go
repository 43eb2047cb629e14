// Package fade drives the opacity and volume ramps of the viewer.
package fade

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Linear moves Value toward Target by Step per tick.
type Linear struct {
	Value  float64
	Target float64
	Step   float64
}

// Tick advances one step and reports whether the target is reached.
func (l *Linear) Tick() bool {
	step := math.Abs(l.Step)
	switch {
	case l.Value < l.Target:
		l.Value = math.Min(l.Value+step, l.Target)
	case l.Value > l.Target:
		l.Value = math.Max(l.Value-step, l.Target)
	}
	return l.Done()
}

// Done reports whether Value has reached Target.
func (l Linear) Done() bool { return l.Value == l.Target }

// Spring eases a value toward a target with a damped spring.
type Spring struct {
	spring   harmonica.Spring
	Value    float64
	velocity float64
	Target   float64
}

// NewSpring builds a spring updated fps times per second.
func NewSpring(fps int, frequency, damping float64) Spring {
	return Spring{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Tick advances one frame and reports whether the value settled.
func (s *Spring) Tick() bool {
	s.Value, s.velocity = s.spring.Update(s.Value, s.velocity, s.Target)
	if math.Abs(s.Value-s.Target) < 0.005 && math.Abs(s.velocity) < 0.005 {
		s.Value, s.velocity = s.Target, 0
		return true
	}
	return false
}

// Opacity clamps Value into [0,1].
func (s Spring) Opacity() float64 { return clamp01(s.Value) }

// Blend mixes fg over bg at the given opacity.
func Blend(fg, bg lipgloss.Color, opacity float64) lipgloss.Color {
	f, err := colorful.Hex(string(fg))
	if err != nil {
		return fg
	}
	b, err := colorful.Hex(string(bg))
	if err != nil {
		return fg
	}
	return lipgloss.Color(b.BlendRgb(f, clamp01(opacity)).Clamped().Hex())
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
