package qm

import "math"

const (
	// Resolution is the shared sample count for the full-width generators.
	Resolution = 1261

	// PlateDistance is the natural domain length of the barrier generator.
	PlateDistance = 400

	// Amplitude is the display scale applied by the full-width generators.
	Amplitude = 100.0

	// DefaultPhaseDelta is the per-tick phase advance for the animated
	// oscillator.
	DefaultPhaseDelta = 0.05
)

// SampleBuffer is an ordered sequence of wave-function samples. Index i maps
// linearly to a spatial coordinate via a generator-specific scale.
type SampleBuffer []float64

func (b SampleBuffer) Clone() SampleBuffer {
	c := make(SampleBuffer, len(b))
	copy(c, b)
	return c
}

// IsFinite reports whether every sample is a finite number. Out-of-domain
// asin phase matching is the only documented way a generator can produce NaN.
func (b SampleBuffer) IsFinite() bool {
	for _, v := range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MaxAbs returns the largest absolute sample value, ignoring NaNs.
func (b SampleBuffer) MaxAbs() float64 {
	max := 0.0
	for _, v := range b {
		if a := math.Abs(v); a > max {
			max = a
		}
	}
	return max
}

// State is the dependent-variable vector of a spatial ODE system.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// ODE describes a first-order system y' = f(y, x) with x the spatial
// coordinate (the independent variable).
type ODE interface {
	Derive(s State, x float64) State
	Dim() int
}
