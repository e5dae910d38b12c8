package wavegen

import (
	"math"
	"testing"

	"github.com/san-kum/qwave/internal/qm"
)

func TestBesselLikeFormula(t *testing.T) {
	b := NewBesselLike()
	phase := 1.3
	buf := b.Generate(phase)

	if len(buf) != qm.Resolution {
		t.Fatalf("expected %d samples, got %d", qm.Resolution, len(buf))
	}

	for _, i := range []int{0, 7, 300, 1260} {
		u := float64(i) / float64(qm.Resolution)
		want := math.Sin(9*math.Pi*u+phase) * math.Exp(-6*u) * 200
		if math.Abs(buf[i]-want) > 1e-12 {
			t.Errorf("sample %d: got %g, want %g", i, buf[i], want)
		}
	}
}

func TestBesselLikePhaseAnimates(t *testing.T) {
	b := NewBesselLike()

	prev := b.Generate(0)
	phase := 0.0
	for tick := 0; tick < 5; tick++ {
		phase += qm.DefaultPhaseDelta
		next := b.Generate(phase)

		same := true
		for i := range prev {
			if prev[i] != next[i] {
				same = false
				break
			}
		}
		if same {
			t.Fatalf("tick %d: phase advance did not change the wave", tick)
		}
		prev = next
	}
}

func TestBesselLikeConfinedNearOrigin(t *testing.T) {
	b := NewBesselLike()
	buf := b.Generate(0)

	half := len(buf) / 2
	near := buf[:half].MaxAbs()
	far := buf[half:].MaxAbs()

	if near <= far {
		t.Errorf("expected oscillation confined near origin: near %g, far %g", near, far)
	}
	if tail := buf[len(buf)-100:].MaxAbs(); tail > 1.0 {
		t.Errorf("expected tail under envelope, max %g", tail)
	}
}
