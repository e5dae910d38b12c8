package engine_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/qwave/internal/engine"
	"github.com/san-kum/qwave/internal/qm"
	"github.com/san-kum/qwave/internal/wavegen"
)

var _ = Describe("Engine", func() {
	var e *engine.Engine

	BeforeEach(func() {
		e = engine.New()
	})

	Describe("Clear", func() {
		It("starts with an all-zero wave of the shared resolution", func() {
			Expect(e.Wave()).To(HaveLen(qm.Resolution))
			for _, v := range e.Wave() {
				Expect(v).To(BeZero())
			}
		})

		It("resets a computed wave back to zero", func() {
			Expect(e.CalculateSingleWave(2)).To(Succeed())
			e.Clear()

			Expect(e.Wave()).To(HaveLen(qm.Resolution))
			for _, v := range e.Wave() {
				Expect(v).To(BeZero())
			}
		})
	})

	Describe("CalculateSingleWave", func() {
		It("peaks at the well midpoint for the fundamental mode", func() {
			Expect(e.CalculateSingleWave(1)).To(Succeed())

			mid := e.Wave()[qm.Resolution/2]
			Expect(mid).To(BeNumerically("~", qm.Amplitude, 1e-9))
		})

		It("pins the wave to zero at the well wall", func() {
			Expect(e.CalculateSingleWave(5)).To(Succeed())
			Expect(e.Wave()[0]).To(BeZero())
		})

		It("rejects non-positive orbital numbers and keeps the old wave", func() {
			Expect(e.CalculateSingleWave(3)).To(Succeed())
			before := e.Wave()

			Expect(e.CalculateSingleWave(0)).To(MatchError(qm.ErrOrbitalNumber))
			Expect(e.Wave()).To(Equal(before))
		})
	})

	Describe("CalculateAiryWave", func() {
		It("holds the exact boundary value at the seam", func() {
			Expect(e.CalculateAiryWave(wavegen.DefaultAiryXMin, wavegen.DefaultAiryXMax)).To(Succeed())

			i0 := qm.Resolution / 2
			Expect(e.Wave()[i0]).To(Equal(wavegen.AiryAtZero * qm.Amplitude))
		})

		It("rejects an inverted window", func() {
			Expect(e.CalculateAiryWave(5, -5)).To(MatchError(qm.ErrDomain))
		})
	})

	Describe("animation", func() {
		It("accumulates phase monotonically", func() {
			for i := 0; i < 10; i++ {
				e.AdvancePhase(qm.DefaultPhaseDelta)
			}
			Expect(e.Phase()).To(BeNumerically("~", 0.5, 1e-12))
		})

		It("regenerates a different wave after a phase advance", func() {
			e.CalculateBesselLikeWave()
			before := e.Wave().Clone()

			e.AdvancePhase(qm.DefaultPhaseDelta)
			e.CalculateBesselLikeWave()

			Expect(e.Wave()).NotTo(Equal(before))
		})

		It("replaces the buffer rather than mutating it", func() {
			e.CalculateBesselLikeWave()
			before := e.Wave()
			snapshot := before.Clone()

			e.AdvancePhase(qm.DefaultPhaseDelta)
			e.CalculateBesselLikeWave()

			// The previously handed-out buffer is untouched.
			Expect([]float64(before)).To(Equal([]float64(snapshot)))
		})
	})

	Describe("GenerateBarrierWaveFunction", func() {
		It("produces the plate-distance domain length", func() {
			Expect(e.GenerateBarrierWaveFunction(wavegen.EGreaterThanU)).To(Succeed())
			Expect(e.Wave()).To(HaveLen(qm.PlateDistance))
		})

		It("exposes a geometry inside the plates", func() {
			g := e.BarrierGeometry()
			Expect(g.X0).To(BeNumerically(">=", 0))
			Expect(g.L).To(BeNumerically(">", 0))
			Expect(g.X0 + g.L).To(BeNumerically("<=", float64(qm.PlateDistance)))
		})

		It("rejects an out-of-range regime", func() {
			Expect(e.GenerateBarrierWaveFunction(wavegen.Regime(7))).To(MatchError(qm.ErrUnknownRegime))
		})
	})

	Describe("CalculateProbabilityDensity", func() {
		It("squares the current wave elementwise", func() {
			Expect(e.CalculateSingleWave(2)).To(Succeed())
			e.CalculateProbabilityDensity()

			wave, density := e.Wave(), e.Density()
			Expect(density).To(HaveLen(len(wave)))
			for i := range wave {
				Expect(density[i]).To(Equal(wave[i] * wave[i]))
			}
		})

		It("tracks the wave it was derived from, not later waves", func() {
			Expect(e.CalculateSingleWave(1)).To(Succeed())
			e.CalculateProbabilityDensity()
			peak := e.Density()[qm.Resolution/2]

			Expect(peak).To(BeNumerically("~", qm.Amplitude*qm.Amplitude, 1e-6))

			Expect(e.CalculateSingleWave(2)).To(Succeed())
			// Density not recomputed yet.
			Expect(e.Density()[qm.Resolution/2]).To(Equal(peak))
		})

		It("yields finite, non-negative values for every scenario", func() {
			scenarios := []func(){
				func() { _ = e.CalculateSingleWave(4) },
				func() { e.CalculateLinearPotentialWave(wavegen.HigherEnergyShift) },
				func() { _ = e.CalculateAiryWave(wavegen.DefaultAiryXMin, wavegen.DefaultAiryXMax) },
				func() { e.CalculateBesselLikeWave() },
				func() { _ = e.GenerateBarrierWaveFunction(wavegen.ELessThanU) },
			}
			for _, run := range scenarios {
				run()
				e.CalculateProbabilityDensity()
				for _, v := range e.Density() {
					Expect(math.IsNaN(v)).To(BeFalse())
					Expect(v).To(BeNumerically(">=", 0))
				}
			}
		})
	})
})
