// Package integrators provides fixed-step ODE steppers over the spatial
// coordinate. The Airy generator drives [RK4] across its sample grid;
// [Euler] is kept for accuracy comparison via the compare command.
//
// A negative step integrates against increasing x, which is how the
// backward sweep of a two-pass boundary-value integration is expressed.
package integrators
