// Package qm provides the core value types shared by the wave generators.
//
// The central type is [SampleBuffer], an ordered sequence of real samples
// representing a wave function psi(x) or its probability density |psi(x)|^2.
// Generators always produce a brand-new buffer; callers replace their current
// buffer wholesale, so a buffer is never partially mutated.
//
// [State] and [ODE] support the spatial boundary-value integration used by
// the Airy generator:
//
//	type airyODE struct{}
//	func (airyODE) Derive(s qm.State, x float64) qm.State {
//	    return qm.State{s[1], x * s[0]}
//	}
package qm
