package wavegen

import (
	"math"
	"testing"

	"github.com/san-kum/qwave/internal/qm"
)

func TestLinearPotentialFormula(t *testing.T) {
	l := NewLinearPotential()
	buf := l.Generate(LowEnergyShift)

	if len(buf) != qm.Resolution {
		t.Fatalf("expected %d samples, got %d", qm.Resolution, len(buf))
	}

	for _, i := range []int{0, 1, 100, 630, 1260} {
		u := float64(i) / float64(qm.Resolution)
		want := math.Sin(6*u) * math.Exp(-2.5*u) * l.Amplitude
		if math.Abs(buf[i]-want) > 1e-12 {
			t.Errorf("sample %d: got %g, want %g", i, buf[i], want)
		}
	}
}

func TestLinearPotentialEnvelopeDecays(t *testing.T) {
	l := NewLinearPotential()
	buf := l.Generate(HigherEnergyShift)

	quarter := len(buf) / 4
	early := buf[:quarter].MaxAbs()
	late := buf[len(buf)-quarter:].MaxAbs()

	if early <= late {
		t.Errorf("expected decaying envelope: early max %g, late max %g", early, late)
	}
}

func TestLinearPotentialPresetsDiffer(t *testing.T) {
	l := NewLinearPotential()
	low := l.Generate(LowEnergyShift)
	high := l.Generate(HigherEnergyShift)

	same := true
	for i := range low {
		if low[i] != high[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("energy presets produced identical waves")
	}
}
