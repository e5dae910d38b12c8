// Package wavegen provides the wave-function generators for the four
// textbook scenarios:
//
//   - [InfiniteWell]: closed-form standing wave for an orbital number
//   - [LinearPotential]: illustrative decaying oscillation for a particle
//     between charged plates
//   - [Airy]: two-pass RK4 integration of y'' = x*y over a sample window
//   - [BesselLike]: animated decaying oscillation driven by an external phase
//   - [Barrier]: piecewise continuity-matched barrier wave in two regimes
//
// All generators are stateless pure functions of their inputs; each call
// produces a brand-new [qm.SampleBuffer]. [Density] derives the unnormalized
// probability density |psi|^2 from any buffer.
//
// LinearPotential and BesselLike trade physical precision for visual
// plausibility: they share the qualitative shape of the exact solutions but
// are not solutions of the corresponding equations.
package wavegen
