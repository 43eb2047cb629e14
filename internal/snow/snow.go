// Package snow simulates the falling-snow background in terminal cells.
package snow

import (
	"math/rand/v2"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Flake is one particle. Radius is in [1,3), Speed in [0.5,1.5) and Drift
// in [-0.5,0.5), the same ranges as the browser canvas version.
type Flake struct {
	X, Y   float64
	Radius float64
	Speed  float64
	Drift  float64
}

// Field holds the flakes for a Width x Height cell area.
type Field struct {
	Width, Height int
	Flakes        []Flake
	rng           *rand.Rand
}

// cell rows are roughly twice as tall as pixels-per-frame at the original
// scale, so vertical motion is damped to keep the fall readable.
const (
	fallScale  = 0.35
	driftScale = 0.25
)

// New scatters n flakes over the field.
func New(width, height, n int, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	f := &Field{Width: max(width, 1), Height: max(height, 1), rng: rng}
	f.Flakes = make([]Flake, n)
	for i := range f.Flakes {
		f.Flakes[i] = f.spawn()
	}
	return f
}

func (f *Field) spawn() Flake {
	return Flake{
		X:      f.rng.Float64() * float64(f.Width),
		Y:      f.rng.Float64() * float64(f.Height),
		Radius: f.rng.Float64()*2 + 1,
		Speed:  f.rng.Float64() + 0.5,
		Drift:  f.rng.Float64() - 0.5,
	}
}

// Step advances every flake one frame. Flakes leaving the field respawn on
// the top row with fresh parameters.
func (f *Field) Step() {
	for i := range f.Flakes {
		fl := &f.Flakes[i]
		fl.Y += fl.Speed * fallScale
		fl.X += fl.Drift * driftScale
		if fl.Y >= float64(f.Height) || fl.X < 0 || fl.X >= float64(f.Width) {
			*fl = f.spawn()
			fl.Y = 0
		}
	}
}

// Resize changes the field bounds; flakes outside respawn on the next Step.
func (f *Field) Resize(width, height int) {
	f.Width, f.Height = max(width, 1), max(height, 1)
}

// SetCount grows or shrinks the flake population.
func (f *Field) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	for len(f.Flakes) < n {
		f.Flakes = append(f.Flakes, f.spawn())
	}
	f.Flakes = f.Flakes[:n]
}

// glyph picks a character by flake size.
func glyph(radius float64) rune {
	switch {
	case radius < 1.7:
		return '.'
	case radius < 2.4:
		return '*'
	}
	return '❄'
}

// Render draws the field into Height rows of exactly Width cells. Wide
// glyphs that would overflow the row fall back to '*'.
func (f *Field) Render() []string {
	grid := make([][]rune, f.Height)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", f.Width))
	}
	for _, fl := range f.Flakes {
		x, y := int(fl.X), int(fl.Y)
		if y < 0 || y >= f.Height || x < 0 || x >= f.Width {
			continue
		}
		grid[y][x] = glyph(fl.Radius)
	}
	rows := make([]string, f.Height)
	for y, row := range grid {
		var b strings.Builder
		w := 0
		for x := 0; x < len(row) && w < f.Width; x++ {
			r := row[x]
			rw := runewidth.RuneWidth(r)
			if w+rw > f.Width {
				r, rw = '*', 1
			}
			b.WriteRune(r)
			w += rw
			if rw == 2 {
				// wide glyph covers the next cell
				x++
			}
		}
		if w < f.Width {
			b.WriteString(strings.Repeat(" ", f.Width-w))
		}
		rows[y] = b.String()
	}
	return rows
}
