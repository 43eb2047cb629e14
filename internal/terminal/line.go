package terminal

import (
	"fmt"
	"math/rand/v2"
)

// LineKind tells the host how a transcript line should be styled.
type LineKind int

const (
	Plain LineKind = iota
	Echo
	Glitch
	Welcome
)

// EchoPrefix is prepended to the normalized input when it is echoed back.
const EchoPrefix = "> "

// Line is a single transcript entry.
type Line struct {
	Text string
	Kind LineKind

	// glitch lines keep their source so they can be re-rolled at render time
	base   string
	format string
}

func plain(s string) Line { return Line{Text: s, Kind: Plain} }

func plainLines(in []string) []Line {
	out := make([]Line, 0, len(in))
	for _, s := range in {
		out = append(out, plain(s))
	}
	return out
}

func echoLine(cmd string) Line { return Line{Text: EchoPrefix + cmd, Kind: Echo} }

func glitchLine(format, base string, rng *rand.Rand) Line {
	return Line{
		Text:   fmt.Sprintf(format, GlitchText(base, rng)),
		Kind:   Glitch,
		base:   base,
		format: format,
	}
}

// Reroll returns the line with fresh glitch substitutions. Non-glitch lines
// are returned unchanged.
func (l Line) Reroll(rng *rand.Rand) Line {
	if l.Kind != Glitch || rng == nil {
		return l
	}
	return glitchLine(l.format, l.base, rng)
}

// Texts flattens lines to their display strings.
func Texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}
