package polynomial

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func approxRoots(tol float64) cmp.Option {
	return cmp.Comparer(func(a, b complex128) bool { return cmplx.Abs(a-b) <= tol })
}

var s3 = math.Sqrt(3) / 2

func TestClosedForms(t *testing.T) {
	tests := []struct {
		name string
		got  []complex128
		want []complex128
	}{
		{"linear", SolveLinear(2, -3), []complex128{1.5}},
		{"linear degenerate", SolveLinear(0, 1), nil},
		{"quadratic real", SolveQuadratic(1, -3, 2), []complex128{1, 2}},
		{"quadratic complex", SolveQuadratic(1, 0, 1), []complex128{complex(0, -1), complex(0, 1)}},
		{"quadratic falls back", SolveQuadratic(0, 2, -4), []complex128{2}},
		{"cubic three real", SolveCubic(1, -6, 11, -6), []complex128{1, 2, 3}},
		{"cubic one real", SolveCubic(1, 0, 0, -1), []complex128{complex(-0.5, -s3), complex(-0.5, s3), 1}},
		{"cubic triple root", SolveCubic(1, -3, 3, -1), []complex128{1, 1, 1}},
		{"cubic scaled", SolveCubic(-2, 0, 2, 0), []complex128{-1, 0, 1}},
		{"cubic falls back", SolveCubic(0, 1, -3, 2), []complex128{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got, approxRoots(1e-9)); diff != "" {
				t.Fatalf("roots mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSolveQuartic(t *testing.T) {
	got, err := SolveQuartic(1, 0, -5, 0, 4)
	if err != nil {
		t.Fatalf("SolveQuartic() error = %v", err)
	}
	if diff := cmp.Diff([]complex128{-2, -1, 1, 2}, got, approxRoots(1e-9)); diff != "" {
		t.Fatalf("SolveQuartic() mismatch (-want +got):\n%s", diff)
	}

	got, err = SolveQuartic(1, 0, 0, 0, 1)
	if err != nil {
		t.Fatalf("SolveQuartic() error = %v", err)
	}
	h := math.Sqrt2 / 2
	want := []complex128{complex(-h, -h), complex(-h, h), complex(h, -h), complex(h, h)}
	if diff := cmp.Diff(want, got, approxRoots(1e-9)); diff != "" {
		t.Fatalf("SolveQuartic(x^4+1) mismatch (-want +got):\n%s", diff)
	}

	got, err = SolveQuartic(0, 1, -6, 11, -6)
	if err != nil {
		t.Fatalf("SolveQuartic() error = %v", err)
	}
	if diff := cmp.Diff([]complex128{1, 2, 3}, got, approxRoots(1e-9)); diff != "" {
		t.Fatalf("SolveQuartic() fallback mismatch (-want +got):\n%s", diff)
	}
}

func TestRootsAndEigenRootsAgree(t *testing.T) {
	// (x-1)(x-2)(x-3)(x-4)(x-5)
	coeff := []float64{1, -15, 85, -225, 274, -120}
	want := []complex128{1, 2, 3, 4, 5}

	got, err := Roots(coeff)
	if err != nil {
		t.Fatalf("Roots() error = %v", err)
	}
	if diff := cmp.Diff(want, got, approxRoots(1e-7)); diff != "" {
		t.Fatalf("Roots() mismatch (-want +got):\n%s", diff)
	}

	eig, err := EigenRoots(coeff)
	if err != nil {
		t.Fatalf("EigenRoots() error = %v", err)
	}
	if diff := cmp.Diff(want, eig, approxRoots(1e-7)); diff != "" {
		t.Fatalf("EigenRoots() mismatch (-want +got):\n%s", diff)
	}
}

func TestRootsResidual(t *testing.T) {
	coeff := []float64{0, 0, 2, -1, 0.5, 3, -7, 1}
	for name, solve := range map[string]func([]float64) ([]complex128, error){
		"Roots":      Roots,
		"EigenRoots": EigenRoots,
	} {
		roots, err := solve(coeff)
		if err != nil {
			t.Fatalf("%s() error = %v", name, err)
		}
		if len(roots) != 5 {
			t.Fatalf("%s() returned %d roots, want 5", name, len(roots))
		}
		if r := MaxResidual(coeff, roots); r > 1e-8 {
			t.Fatalf("%s() residual = %g", name, r)
		}
		for i := 1; i < len(roots); i++ {
			a, b := roots[i-1], roots[i]
			if real(a) > real(b) || (real(a) == real(b) && imag(a) > imag(b)) {
				t.Fatalf("%s() roots not sorted: %v", name, roots)
			}
		}
	}
}

func TestDegeneratePolynomials(t *testing.T) {
	if _, err := Roots([]float64{0, 0}); !errors.Is(err, ErrZeroPolynomial) {
		t.Fatalf("Roots(zero) error = %v, want ErrZeroPolynomial", err)
	}
	if _, err := EigenRoots(nil); !errors.Is(err, ErrZeroPolynomial) {
		t.Fatalf("EigenRoots(nil) error = %v, want ErrZeroPolynomial", err)
	}
	roots, err := Roots([]float64{0, 4})
	if err != nil || len(roots) != 0 {
		t.Fatalf("Roots(constant) = %v, %v, want no roots", roots, err)
	}
}

func TestEval(t *testing.T) {
	if got := Eval([]float64{2, 0, -3, 5}, 2); got != 15 {
		t.Fatalf("Eval() = %v, want 15", got)
	}
	if got := Eval(nil, 2); got != 0 {
		t.Fatalf("Eval(nil) = %v, want 0", got)
	}
}
