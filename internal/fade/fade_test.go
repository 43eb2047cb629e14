package fade

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestLinear_VolumeRamp(t *testing.T) {
	l := Linear{Value: 0, Target: 0.15, Step: 0.01}
	ticks := 0
	for !l.Tick() {
		ticks++
		if ticks > 100 {
			t.Fatalf("ramp never finished")
		}
	}
	if l.Value != 0.15 {
		t.Fatalf("overshot: %v", l.Value)
	}
	if ticks < 13 || ticks > 15 {
		t.Fatalf("unexpected tick count %d", ticks)
	}
}

func TestLinear_FadeOut(t *testing.T) {
	l := Linear{Value: 1, Target: 0, Step: 0.05}
	for i := 0; i < 30 && !l.Done(); i++ {
		l.Tick()
	}
	if l.Value != 0 {
		t.Fatalf("fade out stopped at %v", l.Value)
	}
	// a reached ramp stays put
	if !l.Tick() || l.Value != 0 {
		t.Fatalf("done ramp moved")
	}
}

func TestSpring_Settles(t *testing.T) {
	s := NewSpring(30, 6, 1)
	s.Target = 1
	settled := false
	for i := 0; i < 300; i++ {
		if s.Tick() {
			settled = true
			break
		}
	}
	if !settled || s.Opacity() != 1 {
		t.Fatalf("spring did not settle: %+v", s)
	}
}

func TestBlend(t *testing.T) {
	fg, bg := lipgloss.Color("#ffffff"), lipgloss.Color("#000000")
	if got := Blend(fg, bg, 1); got != "#ffffff" {
		t.Fatalf("full opacity: %s", got)
	}
	if got := Blend(fg, bg, 0); got != "#000000" {
		t.Fatalf("zero opacity: %s", got)
	}
	if got := Blend(fg, bg, 2); got != "#ffffff" {
		t.Fatalf("opacity not clamped: %s", got)
	}
	if got := Blend("252", bg, 0.5); got != "252" {
		t.Fatalf("non-hex fg should pass through: %s", got)
	}
}
