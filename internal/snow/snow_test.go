package snow

import (
	"math/rand/v2"
	"testing"

	"github.com/mattn/go-runewidth"
)

func newField(w, h, n int) *Field {
	return New(w, h, n, rand.New(rand.NewPCG(9, 9)))
}

func TestNew_FlakeRanges(t *testing.T) {
	f := newField(80, 24, 100)
	if len(f.Flakes) != 100 {
		t.Fatalf("got %d flakes", len(f.Flakes))
	}
	for _, fl := range f.Flakes {
		if fl.Radius < 1 || fl.Radius >= 3 {
			t.Fatalf("radius out of range: %v", fl.Radius)
		}
		if fl.Speed < 0.5 || fl.Speed >= 1.5 {
			t.Fatalf("speed out of range: %v", fl.Speed)
		}
		if fl.Drift < -0.5 || fl.Drift >= 0.5 {
			t.Fatalf("drift out of range: %v", fl.Drift)
		}
		if fl.X < 0 || fl.X >= 80 || fl.Y < 0 || fl.Y >= 24 {
			t.Fatalf("flake outside field: %+v", fl)
		}
	}
}

func TestStep_KeepsFlakesInside(t *testing.T) {
	f := newField(40, 10, 60)
	for i := 0; i < 500; i++ {
		f.Step()
		for _, fl := range f.Flakes {
			if fl.Y < 0 || fl.Y >= float64(f.Height) || fl.X < 0 || fl.X >= float64(f.Width) {
				t.Fatalf("step %d: flake escaped: %+v", i, fl)
			}
		}
	}
}

func TestStep_Falls(t *testing.T) {
	f := newField(40, 1000, 1)
	f.Flakes[0] = Flake{X: 20, Y: 0, Radius: 1, Speed: 1, Drift: 0}
	f.Step()
	if got := f.Flakes[0].Y; got <= 0 {
		t.Fatalf("flake did not fall: y=%v", got)
	}
}

func TestRender_RowWidths(t *testing.T) {
	f := newField(30, 8, 200)
	f.Flakes = append(f.Flakes, Flake{X: 29.5, Y: 0, Radius: 2.9})
	rows := f.Render()
	if len(rows) != 8 {
		t.Fatalf("got %d rows", len(rows))
	}
	for i, r := range rows {
		if w := runewidth.StringWidth(r); w != 30 {
			t.Fatalf("row %d width %d: %q", i, w, r)
		}
	}
}

func TestSetCountAndResize(t *testing.T) {
	f := newField(10, 10, 5)
	f.SetCount(12)
	if len(f.Flakes) != 12 {
		t.Fatalf("grow: %d", len(f.Flakes))
	}
	f.SetCount(3)
	if len(f.Flakes) != 3 {
		t.Fatalf("shrink: %d", len(f.Flakes))
	}
	f.SetCount(-1)
	if len(f.Flakes) != 0 {
		t.Fatalf("negative count: %d", len(f.Flakes))
	}
	f.Resize(0, 0)
	if f.Width != 1 || f.Height != 1 {
		t.Fatalf("resize floor: %dx%d", f.Width, f.Height)
	}
}
