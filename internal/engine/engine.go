// Package engine owns the current wave state for one visualization session:
// exactly one wave buffer, one density buffer, and the animation phase.
// Every calculate operation builds a brand-new buffer and swaps the
// reference, so readers never observe a partially written wave.
package engine

import (
	"github.com/san-kum/qwave/internal/qm"
	"github.com/san-kum/qwave/internal/wavegen"
)

// Engine is a single-session wave computation engine. It is single-writer:
// the caller drives all mutation, and a full-buffer reference swap is the
// only mutation, so unguarded concurrent reads observe either the old or the
// new wave, never a mix.
type Engine struct {
	well    *wavegen.InfiniteWell
	linear  *wavegen.LinearPotential
	airy    *wavegen.Airy
	osc     *wavegen.BesselLike
	barrier *wavegen.Barrier

	wave    qm.SampleBuffer
	density qm.SampleBuffer
	phase   float64
}

func New() *Engine {
	e := &Engine{
		well:    wavegen.NewInfiniteWell(),
		linear:  wavegen.NewLinearPotential(),
		airy:    wavegen.NewAiry(),
		osc:     wavegen.NewBesselLike(),
		barrier: wavegen.NewBarrier(),
	}
	e.Clear()
	return e
}

// Clear resets both buffers to all-zero at the shared resolution. Invoked
// when a scenario page is (re)entered.
func (e *Engine) Clear() {
	e.wave = make(qm.SampleBuffer, qm.Resolution)
	e.density = make(qm.SampleBuffer, qm.Resolution)
}

// CalculateSingleWave computes the infinite-well standing wave for orbital
// number n and replaces the current wave.
func (e *Engine) CalculateSingleWave(n int) error {
	buf, err := e.well.Generate(n)
	if err != nil {
		return err
	}
	e.wave = buf
	return nil
}

// CalculateLinearPotentialWave computes the illustrative linear-potential
// wave for an energy shift and replaces the current wave.
func (e *Engine) CalculateLinearPotentialWave(energyShift float64) {
	e.wave = e.linear.Generate(energyShift)
}

// CalculateAiryWave integrates the Airy equation over [xMin, xMax] and
// replaces the current wave.
func (e *Engine) CalculateAiryWave(xMin, xMax float64) error {
	buf, err := e.airy.Generate(xMin, xMax)
	if err != nil {
		return err
	}
	e.wave = buf
	return nil
}

// CalculateBesselLikeWave regenerates the animated oscillator at the current
// phase and replaces the current wave.
func (e *Engine) CalculateBesselLikeWave() {
	e.wave = e.osc.Generate(e.phase)
}

// AdvancePhase advances the animation phase by delta. The phase increases
// monotonically; it wraps only through the periodic trig functions and is
// never reset except through a new Engine.
func (e *Engine) AdvancePhase(delta float64) {
	e.phase += delta
}

// GenerateBarrierWaveFunction computes the piecewise barrier wave for a
// regime and replaces the current wave. The resulting buffer has the
// plate-distance length, not the shared resolution.
func (e *Engine) GenerateBarrierWaveFunction(regime wavegen.Regime) error {
	buf, err := e.barrier.Generate(regime)
	if err != nil {
		return err
	}
	e.wave = buf
	return nil
}

// CalculateProbabilityDensity derives |psi|^2 from the current wave and
// replaces the current density buffer.
func (e *Engine) CalculateProbabilityDensity() {
	e.density = wavegen.Density(e.wave)
}

// Wave returns the current wave buffer. Callers must treat it as read-only.
func (e *Engine) Wave() qm.SampleBuffer { return e.wave }

// Density returns the current probability-density buffer. Callers must treat
// it as read-only.
func (e *Engine) Density() qm.SampleBuffer { return e.density }

// Phase returns the current animation phase.
func (e *Engine) Phase() float64 { return e.phase }

// BarrierGeometry returns the fixed barrier placement (x0, L).
func (e *Engine) BarrierGeometry() wavegen.Geometry { return e.barrier.Geom }
