package terminal

import (
	"math/rand/v2"
	"strings"
	"time"
)

// GlitchRate is the per-character substitution probability.
const GlitchRate = 0.2

// printable ASCII range used for substitutions: '!' (33) through '~' (126)
const (
	glitchFirst = 33
	glitchSpan  = 94
)

// GlitchText corrupts base one character at a time. Each rune is replaced by
// a random printable ASCII character with probability GlitchRate, so the
// rune count of the result always matches base.
func GlitchText(base string, rng *rand.Rand) string {
	if rng == nil {
		rng = newRand()
	}
	var b strings.Builder
	b.Grow(len(base))
	for _, r := range base {
		if rng.Float64() < GlitchRate {
			b.WriteByte(byte(glitchFirst + rng.IntN(glitchSpan)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func newRand() *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>16|7))
}
