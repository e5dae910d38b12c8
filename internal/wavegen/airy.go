package wavegen

import (
	"fmt"
	"math"

	"github.com/san-kum/qwave/internal/integrators"
	"github.com/san-kum/qwave/internal/qm"
)

// Ai(0) and Ai'(0), the interior boundary condition for the two-pass sweep.
// These reference constants are the only exact values the integration needs.
const (
	AiryAtZero      = 0.3550280539
	AiryPrimeAtZero = -0.2588194038
)

// Default sampling window for the Airy scenario.
const (
	DefaultAiryXMin = -5.0
	DefaultAiryXMax = 5.0
)

// airyODE is y'' = x*y as the coupled first-order system (y, y').
type airyODE struct{}

func (airyODE) Derive(s qm.State, x float64) qm.State {
	return qm.State{s[1], x * s[0]}
}

func (airyODE) Dim() int { return 2 }

// Airy samples the Airy function Ai(x) over a window by integrating the Airy
// equation outward from the grid point nearest x=0: a forward RK4 pass toward
// xMax and a backward pass (negative step) toward xMin. Both passes share the
// same seed, so the result is a single continuous curve with no seam.
type Airy struct {
	Samples   int
	Amplitude float64
	Method    integrators.Method
}

func NewAiry() *Airy {
	return &Airy{
		Samples:   qm.Resolution,
		Amplitude: qm.Amplitude,
		Method:    integrators.NewRK4(),
	}
}

func (a *Airy) Generate(xMin, xMax float64) (qm.SampleBuffer, error) {
	if !(xMin < xMax) {
		return nil, fmt.Errorf("%w: [%g, %g]", qm.ErrDomain, xMin, xMax)
	}

	n := a.Samples
	h := (xMax - xMin) / float64(n-1)
	i0 := a.seamIndex(xMin, h)

	buf := make(qm.SampleBuffer, n)
	ode := airyODE{}
	seed := qm.State{AiryAtZero, AiryPrimeAtZero}

	buf[i0] = seed[0]

	s := seed.Clone()
	for i := i0; i < n-1; i++ {
		s = a.Method.Step(ode, s, xMin+float64(i)*h, h)
		buf[i+1] = s[0]
	}

	s = seed.Clone()
	for i := i0; i > 0; i-- {
		s = a.Method.Step(ode, s, xMin+float64(i)*h, -h)
		buf[i-1] = s[0]
	}

	for i := range buf {
		buf[i] *= a.Amplitude
	}
	return buf, nil
}

// SeamIndex returns the grid index nearest x=0 for a window, clamped into
// the valid range when the window does not contain zero.
func (a *Airy) SeamIndex(xMin, xMax float64) int {
	h := (xMax - xMin) / float64(a.Samples-1)
	return a.seamIndex(xMin, h)
}

func (a *Airy) seamIndex(xMin, h float64) int {
	i0 := int(math.Round(-xMin / h))
	if i0 < 0 {
		i0 = 0
	}
	if i0 > a.Samples-1 {
		i0 = a.Samples - 1
	}
	return i0
}
