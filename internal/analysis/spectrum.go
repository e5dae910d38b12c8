// Package analysis provides spectral and shape diagnostics for sampled
// waves: a power spectrum via radix-2 FFT and interior node counting.
package analysis

import (
	"math"
	"math/cmplx"

	"github.com/san-kum/qwave/internal/qm"
)

func fft(data []complex128) []complex128 {
	n := len(data)
	if n <= 1 {
		return data
	}

	even := make([]complex128, n/2)
	odd := make([]complex128, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	fe := fft(even)
	fo := fft(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = fe[k] + w*fo[k]
		result[k+n/2] = fe[k] - w*fo[k]
	}
	return result
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// PowerSpectrum returns the magnitude spectrum of a sampled wave. The input
// is zero-padded to the next power of two, so arbitrary buffer lengths
// (including the 1261-sample resolution) are accepted.
func PowerSpectrum(buf qm.SampleBuffer) []float64 {
	padded := make([]complex128, nextPow2(len(buf)))
	for i, v := range buf {
		padded[i] = complex(v, 0)
	}

	spectrum := fft(padded)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantBin returns the index of the strongest non-DC spectral bin.
func DominantBin(ps []float64) int {
	best, bestVal := 0, 0.0
	for i := 1; i < len(ps); i++ {
		if ps[i] > bestVal {
			best, bestVal = i, ps[i]
		}
	}
	return best
}

// CountNodes counts interior zero crossings of a sampled wave, skipping
// exact zeros so a sample sitting on the axis is not counted twice. For the
// infinite-well orbital n this is n-1.
func CountNodes(buf qm.SampleBuffer) int {
	if len(buf) < 3 {
		return 0
	}
	crossings := 0
	prev := 0.0
	for _, v := range buf[1 : len(buf)-1] {
		if prev != 0 && v != 0 && math.Signbit(prev) != math.Signbit(v) {
			crossings++
		}
		if v != 0 {
			prev = v
		}
	}
	return crossings
}
