package qm

import "errors"

// Domain errors for wave generation.
var (
	// ErrOrbitalNumber indicates a non-positive orbital quantum number.
	ErrOrbitalNumber = errors.New("qm: orbital number must be a positive integer")

	// ErrDomain indicates an empty or inverted spatial interval.
	ErrDomain = errors.New("qm: invalid spatial interval (xMin must be < xMax)")

	// ErrUnknownRegime indicates a barrier regime outside the two known variants.
	ErrUnknownRegime = errors.New("qm: unknown barrier regime")

	// ErrBufferLength indicates a sample buffer whose length does not match
	// the generator's expected resolution.
	ErrBufferLength = errors.New("qm: sample buffer length mismatch")
)
