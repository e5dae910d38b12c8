package wavegen

import (
	"testing"

	"github.com/san-kum/qwave/internal/qm"
)

func TestDensitySquaresElementwise(t *testing.T) {
	src := qm.SampleBuffer{-3, -0.5, 0, 0.5, 2}
	want := qm.SampleBuffer{9, 0.25, 0, 0.25, 4}

	got := Density(src)
	if len(got) != len(src) {
		t.Fatalf("expected length %d, got %d", len(src), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d: got %g, want %g", i, got[i], want[i])
		}
	}
}

func TestDensityNonNegative(t *testing.T) {
	w := NewInfiniteWell()
	buf, err := w.Generate(3)
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range Density(buf) {
		if v < 0 {
			t.Fatalf("negative density %g at index %d", v, i)
		}
	}
}

func TestDensityNotIdempotent(t *testing.T) {
	src := qm.SampleBuffer{2, -2, 0.5}

	once := Density(src)
	twice := Density(once)

	// Squaring twice is not squaring once.
	if twice[0] == once[0] || twice[2] == once[2] {
		t.Error("expected repeated squaring to change values")
	}
	if twice[0] != 16 || twice[1] != 16 || twice[2] != 0.0625 {
		t.Errorf("unexpected double-square values: %v", twice)
	}
}
