package viz

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/qwave/internal/qm"
)

func TestDrawWaveLightsPixels(t *testing.T) {
	c := NewCanvas(40, 10)
	wave := make(qm.SampleBuffer, 100)
	for i := range wave {
		wave[i] = math.Sin(float64(i) / 10)
	}

	c.DrawWave(wave, 1.0)

	if !strings.ContainsFunc(c.String(), func(r rune) bool { return r > 0x2800 }) {
		t.Error("expected lit braille cells")
	}

	c.Clear()
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("expected empty canvas after clear")
			}
		}
	}
}

func TestDrawWaveSkipsNaN(t *testing.T) {
	c := NewCanvas(20, 5)
	wave := qm.SampleBuffer{0, 0.5, math.NaN(), -0.5, 0}
	c.DrawWave(wave, 1.0) // must not panic or light out-of-range rows
}

func TestDownsample(t *testing.T) {
	wave := make(qm.SampleBuffer, 1261)
	for i := range wave {
		wave[i] = float64(i)
	}

	out := Downsample(wave, 80)
	if len(out) != 80 {
		t.Fatalf("expected 80 points, got %d", len(out))
	}
	if out[0] != 0 || out[79] != 1260 {
		t.Errorf("expected endpoints preserved, got %g and %g", out[0], out[79])
	}

	short := Downsample(qm.SampleBuffer{1, 2, 3}, 80)
	if len(short) != 3 {
		t.Errorf("expected short buffers passed through, got %d", len(short))
	}
}
