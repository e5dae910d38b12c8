package integrators

import "github.com/san-kum/qwave/internal/qm"

// Euler is the forward Euler stepper, first-order accurate.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Step(ode qm.ODE, s qm.State, x, h float64) qm.State {
	ds := ode.Derive(s, x)
	result := make(qm.State, len(s))
	for i := range s {
		result[i] = s[i] + h*ds[i]
	}
	return result
}
