package wavegen

import (
	"math"

	"github.com/san-kum/qwave/internal/qm"
)

// BesselLike generates an oscillation confined near the origin under an
// exponential envelope, animated by an externally advanced phase. Explicitly
// not a solution of Bessel's equation; it only shares the qualitative shape.
// The generator holds no state and performs no timing: the caller owns the
// animation loop and the phase scalar.
type BesselLike struct {
	Samples   int
	Waves     float64
	Decay     float64
	Amplitude float64
}

func NewBesselLike() *BesselLike {
	return &BesselLike{
		Samples:   qm.Resolution,
		Waves:     9.0,
		Decay:     6.0,
		Amplitude: 200.0,
	}
}

func (b *BesselLike) Generate(phase float64) qm.SampleBuffer {
	buf := make(qm.SampleBuffer, b.Samples)
	n := float64(b.Samples)
	k := b.Waves * math.Pi
	for i := range buf {
		u := float64(i) / n
		buf[i] = math.Sin(k*u+phase) * math.Exp(-b.Decay*u) * b.Amplitude
	}
	return buf
}
