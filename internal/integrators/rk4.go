package integrators

import "github.com/san-kum/qwave/internal/qm"

// Method advances a spatial ODE state from x to x+h.
type Method interface {
	Step(ode qm.ODE, s qm.State, x, h float64) qm.State
	Name() string
}

// RK4 is the classical 4th-order Runge-Kutta stepper.
type RK4 struct {
	k1, k2, k3, k4 qm.State
	scratch        qm.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Name() string { return "rk4" }

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make(qm.State, n)
		r.k2 = make(qm.State, n)
		r.k3 = make(qm.State, n)
		r.k4 = make(qm.State, n)
		r.scratch = make(qm.State, n)
	}
}

func (r *RK4) Step(ode qm.ODE, s qm.State, x, h float64) qm.State {
	n := len(s)
	r.ensureScratch(n)

	copy(r.k1, ode.Derive(s, x))

	for i := 0; i < n; i++ {
		r.scratch[i] = s[i] + h*0.5*r.k1[i]
	}
	copy(r.k2, ode.Derive(r.scratch, x+h*0.5))

	for i := 0; i < n; i++ {
		r.scratch[i] = s[i] + h*0.5*r.k2[i]
	}
	copy(r.k3, ode.Derive(r.scratch, x+h*0.5))

	for i := 0; i < n; i++ {
		r.scratch[i] = s[i] + h*r.k3[i]
	}
	copy(r.k4, ode.Derive(r.scratch, x+h))

	result := make(qm.State, n)
	h6 := h / 6.0
	for i := 0; i < n; i++ {
		result[i] = s[i] + h6*(r.k1[i]+2*r.k2[i]+2*r.k3[i]+r.k4[i])
	}

	return result
}
