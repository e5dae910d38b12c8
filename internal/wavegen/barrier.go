package wavegen

import (
	"fmt"
	"math"

	"github.com/san-kum/qwave/internal/qm"
)

// Regime selects the barrier scenario: particle energy above or below the
// barrier potential.
type Regime int

const (
	// EGreaterThanU produces an oscillatory wave in all three regions, with
	// a longer wavelength inside the barrier.
	EGreaterThanU Regime = iota

	// ELessThanU produces a tunneling wave: evanescent exponential decay
	// inside the barrier, attenuated oscillation past it.
	ELessThanU
)

func (r Regime) String() string {
	switch r {
	case EGreaterThanU:
		return "E>U"
	case ELessThanU:
		return "E<U"
	default:
		return fmt.Sprintf("Regime(%d)", int(r))
	}
}

// ParseRegime maps a CLI/config token to a Regime.
func ParseRegime(s string) (Regime, error) {
	switch s {
	case "over", "E>U", "e>u":
		return EGreaterThanU, nil
	case "tunnel", "tunneling", "E<U", "e<u":
		return ELessThanU, nil
	default:
		return 0, fmt.Errorf("%w: %q", qm.ErrUnknownRegime, s)
	}
}

// Geometry is the barrier placement: onset X0 and length L, both in sample
// units. Invariant: X0 >= 0, L > 0, X0+L <= plate distance.
type Geometry struct {
	X0 float64
	L  float64
}

// Barrier generates the piecewise continuity-matched wave across the three
// regions around a finite potential barrier. The domain length equals the
// plate distance rather than the shared resolution. Value continuity at both
// region boundaries is solved for, not assumed; amplitudes are fixed at 1.0
// for visual uniformity, so no physical transmission coefficient enters.
type Barrier struct {
	Distance         int
	Geom             Geometry
	VisibleWaves     float64
	FreeAmplitude    float64
	BarrierAmplitude float64
}

func NewBarrier() *Barrier {
	d := float64(qm.PlateDistance)
	return &Barrier{
		Distance:         qm.PlateDistance,
		Geom:             Geometry{X0: 0.35 * d, L: 0.30 * d},
		VisibleWaves:     6.0,
		FreeAmplitude:    1.0,
		BarrierAmplitude: 1.0,
	}
}

func (b *Barrier) Generate(regime Regime) (qm.SampleBuffer, error) {
	switch regime {
	case EGreaterThanU:
		return b.oscillatory(), nil
	case ELessThanU:
		return b.tunneling(), nil
	default:
		return nil, fmt.Errorf("%w: %d", qm.ErrUnknownRegime, int(regime))
	}
}

func (b *Barrier) kFree() float64 {
	return 2 * math.Pi * b.VisibleWaves / float64(b.Distance)
}

// oscillatory is the E>U case: sin waves in all three regions, phase offsets
// solved at each boundary so the sample values match exactly. The asin
// arguments are left unclamped; with unit amplitudes they stay in [-1, 1],
// and any out-of-domain geometry yields NaN samples rather than a panic.
func (b *Barrier) oscillatory() qm.SampleBuffer {
	x0, l := b.Geom.X0, b.Geom.L
	kFree := b.kFree()
	kBarrier := 0.6 * kFree

	psiEntry := b.FreeAmplitude * math.Sin(kFree*x0)
	phiBarrier := math.Asin(psiEntry / b.BarrierAmplitude)

	psiExit := b.BarrierAmplitude * math.Sin(kBarrier*l+phiBarrier)
	phiOut := math.Asin(psiExit / b.FreeAmplitude)

	buf := make(qm.SampleBuffer, b.Distance)
	for i := range buf {
		x := float64(i)
		switch {
		case x < x0:
			buf[i] = b.FreeAmplitude * math.Sin(kFree*x)
		case x < x0+l:
			buf[i] = b.BarrierAmplitude * math.Sin(kBarrier*(x-x0)+phiBarrier)
		default:
			buf[i] = b.FreeAmplitude * math.Sin(kFree*(x-x0-l)+phiOut)
		}
	}
	return buf
}

// tunneling is the E<U case: a superposed incident+reflected wave before the
// barrier, pure exponential decay with alpha = 1/L inside it, and an
// amplitude-matched transmitted wave after. The pi/2 exit phase keeps the
// slope visually smooth; it is not solved from a transmission coefficient.
func (b *Barrier) tunneling() qm.SampleBuffer {
	x0, l := b.Geom.X0, b.Geom.L
	kFree := b.kFree()
	alpha := 1.0 / l

	psi0 := math.Sin(kFree*x0) + 0.5*math.Sin(-kFree*x0)
	psiExit := psi0 * math.Exp(-alpha*l)

	buf := make(qm.SampleBuffer, b.Distance)
	for i := range buf {
		x := float64(i)
		switch {
		case x < x0:
			buf[i] = math.Sin(kFree*x) + 0.5*math.Sin(-kFree*x)
		case x < x0+l:
			buf[i] = psi0 * math.Exp(-alpha*(x-x0))
		default:
			buf[i] = psiExit * math.Sin(kFree*(x-x0-l)+math.Pi/2)
		}
	}
	return buf
}
