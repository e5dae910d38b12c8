package wavegen

import "github.com/san-kum/qwave/internal/qm"

// Density returns the unnormalized probability density |psi|^2 for a sampled
// wave: the elementwise square, same length as the source. The integral is
// not constrained to 1; the system illustrates relative probability shape.
// Not idempotent: squaring a squared buffer squares it again.
func Density(src qm.SampleBuffer) qm.SampleBuffer {
	out := make(qm.SampleBuffer, len(src))
	for i, v := range src {
		out[i] = v * v
	}
	return out
}
