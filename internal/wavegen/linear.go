package wavegen

import (
	"math"

	"github.com/san-kum/qwave/internal/qm"
)

// Energy-shift presets exposed by the linear-potential scenario.
const (
	LowEnergyShift    = 0.0
	HigherEnergyShift = 1.5
)

// LinearPotential generates a decaying oscillation for a particle in a
// linear potential between charged plates. Illustrative: this is not the
// closed-form eigenfunction, only a curve with the right qualitative shape
// (oscillation compressed against the low-potential side, decaying into the
// classically forbidden region).
type LinearPotential struct {
	Samples   int
	Frequency float64
	Decay     float64
	Amplitude float64
}

func NewLinearPotential() *LinearPotential {
	return &LinearPotential{
		Samples:   qm.Resolution,
		Frequency: 6.0,
		Decay:     2.5,
		Amplitude: qm.Amplitude,
	}
}

func (l *LinearPotential) Generate(energyShift float64) qm.SampleBuffer {
	buf := make(qm.SampleBuffer, l.Samples)
	n := float64(l.Samples)
	for i := range buf {
		u := float64(i) / n
		buf[i] = math.Sin(l.Frequency*u+energyShift) * math.Exp(-l.Decay*u) * l.Amplitude
	}
	return buf
}
