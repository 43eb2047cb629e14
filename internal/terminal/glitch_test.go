package terminal

import (
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestGlitchText_SubstitutionRate(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	// space is outside the substitution range, so every swap is visible
	const n = 20000
	base := strings.Repeat(" ", n)
	out := GlitchText(base, rng)
	if len(out) != n {
		t.Fatalf("length changed: %d != %d", len(out), n)
	}
	changed := 0
	for i := 0; i < n; i++ {
		c := out[i]
		if c == ' ' {
			continue
		}
		if c < glitchFirst || c >= glitchFirst+glitchSpan {
			t.Fatalf("substitution %q outside printable range", c)
		}
		changed++
	}
	rate := float64(changed) / n
	if rate < 0.18 || rate > 0.22 {
		t.Fatalf("substitution rate %.3f, want about %.2f", rate, GlitchRate)
	}
}

func TestGlitchText_PreservesRuneCount(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for _, base := range []string{"", "AM I?", "雪が降る", "Dead Link Sanctuary"} {
		for i := 0; i < 20; i++ {
			got := GlitchText(base, rng)
			if utf8.RuneCountInString(got) != utf8.RuneCountInString(base) {
				t.Fatalf("GlitchText(%q) = %q: rune count changed", base, got)
			}
		}
	}
}

func TestLine_Reroll(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	l := glitchLine(`X: "%s"`, "abcdefghij", rng)
	seen := map[string]bool{l.Text: true}
	for i := 0; i < 30; i++ {
		l = l.Reroll(rng)
		if !strings.HasPrefix(l.Text, `X: "`) || utf8.RuneCountInString(l.Text) != len(`X: "abcdefghij"`) {
			t.Fatalf("reroll broke the line: %q", l.Text)
		}
		seen[l.Text] = true
	}
	if len(seen) < 2 {
		t.Fatalf("reroll never changed the text")
	}
	p := plain("steady")
	if got := p.Reroll(rng); got != p {
		t.Fatalf("plain line rerolled: %+v", got)
	}
}
