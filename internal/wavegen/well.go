package wavegen

import (
	"fmt"
	"math"

	"github.com/san-kum/qwave/internal/qm"
)

// InfiniteWell generates the standing wave of a particle in an infinite
// square well, psi_n(x) = A*sin(n*pi*x/L). Defined for every positive n;
// above the sampling Nyquist limit higher orbitals alias visually, which is
// a known display limitation rather than a defect.
type InfiniteWell struct {
	Samples   int
	Span      float64
	Amplitude float64
}

func NewInfiniteWell() *InfiniteWell {
	return &InfiniteWell{
		Samples:   qm.Resolution,
		Span:      float64(qm.Resolution - 1),
		Amplitude: qm.Amplitude,
	}
}

func (w *InfiniteWell) Generate(n int) (qm.SampleBuffer, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", qm.ErrOrbitalNumber, n)
	}
	buf := make(qm.SampleBuffer, w.Samples)
	k := float64(n) * math.Pi / w.Span
	for i := range buf {
		buf[i] = math.Sin(k*float64(i)) * w.Amplitude
	}
	return buf, nil
}

func (w *InfiniteWell) GetParams() map[string]float64 {
	return map[string]float64{"span": w.Span, "amplitude": w.Amplitude}
}

func (w *InfiniteWell) SetParam(name string, value float64) error {
	switch name {
	case "span":
		w.Span = value
	case "amplitude":
		w.Amplitude = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
