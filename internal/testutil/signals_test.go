package testutil

import (
	"math"
	"testing"
)

func TestStep(t *testing.T) {
	RequireSliceNearlyEqual(t, Step(0, 2, 2, 5), []float64{0, 0, 2, 2, 2}, 0)
	RequireSliceNearlyEqual(t, Step(1, 3, 0, 2), []float64{3, 3}, 0)
}

func TestRamp(t *testing.T) {
	RequireSliceNearlyEqual(t, Ramp(1, 0.5, 4), []float64{1, 1.5, 2, 2.5}, 1e-15)
}

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	if math.Abs(s[12]-1) > 1e-12 {
		t.Fatalf("s[12] = %v, want peak 1", s[12])
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	RequireSliceNearlyEqual(t, a, b, 0)
	RequireFinite(t, a)
	for i, v := range a {
		if v < -1 || v >= 1 {
			t.Fatalf("noise[%d] = %v out of range", i, v)
		}
	}
	if c := DeterministicNoise(43, 1.0, 64); c[0] == a[0] && c[1] == a[1] {
		t.Fatal("different seeds produced identical noise")
	}
}
