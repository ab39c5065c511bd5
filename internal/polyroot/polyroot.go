// Package polyroot provides the numerical root finder shared by the
// polynomial solvers.
package polyroot

import (
	"cmp"
	"errors"
	"math"
	"math/cmplx"
	"slices"
)

// ErrDegeneratePolynomial is returned when a polynomial has degenerate
// coefficients (leading coefficient zero, convergence failure, etc.).
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// RealTol is the relative tolerance under which an imaginary part is
// considered numerical noise.
const RealTol = 1e-9

// FromReal converts real coefficients to complex ones, keeping their order.
func FromReal(coeff []float64) []complex128 {
	out := make([]complex128, len(coeff))
	for i, c := range coeff {
		out[i] = complex(c, 0)
	}
	return out
}

// TrimLeading drops leading zero coefficients of a polynomial given in
// descending power order.
func TrimLeading(coeff []float64) []float64 {
	for len(coeff) > 0 && coeff[0] == 0 {
		coeff = coeff[1:]
	}
	return coeff
}

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method. Coefficients are in descending
// power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
//nolint:cyclop
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	// Cauchy bound on the root moduli.
	radius := 0.0
	for i := 1; i <= n; i++ {
		radius = math.Max(radius, cmplx.Abs(norm[i]))
	}
	radius = math.Max(radius, 1)

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.4
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = cmplx.Rect(r, angle)
	}

	const (
		maxIter = 800
		tol     = 1e-13
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)
			for j := range n {
				if i != j {
					den *= roots[i] - roots[j]
				}
			}

			if den == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			delta := PolyEval(norm, roots[i]) / den
			roots[i] -= delta
			maxDelta = math.Max(maxDelta, cmplx.Abs(delta)/math.Max(1, cmplx.Abs(roots[i])))
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	maxResidual := 0.0
	for _, r := range roots {
		maxResidual = math.Max(maxResidual, cmplx.Abs(PolyEval(norm, r)))
	}

	if maxResidual < 1e-6 {
		return roots, nil
	}

	return nil, ErrDegeneratePolynomial
}

// PolyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func PolyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}

// SnapReal zeroes imaginary parts below RealTol relative to the root modulus
// and makes near-conjugate pairs exact conjugates. It is meant for roots of
// polynomials with real coefficients. roots is modified in place.
func SnapReal(roots []complex128) []complex128 {
	for i, r := range roots {
		if math.Abs(imag(r)) <= RealTol*math.Max(1, cmplx.Abs(r)) {
			roots[i] = complex(real(r), 0)
		}
	}

	used := make([]bool, len(roots))
	for i, r := range roots {
		if used[i] || imag(r) == 0 {
			continue
		}
		for j := i + 1; j < len(roots); j++ {
			if !used[j] && IsConjugate(r, roots[j], ConjugateTol) {
				re := 0.5 * (real(r) + real(roots[j]))
				im := 0.5 * (imag(r) - imag(roots[j]))
				roots[i], roots[j] = complex(re, im), complex(re, -im)
				used[i], used[j] = true, true
				break
			}
		}
	}

	return roots
}

// Sort orders roots by real part, then by imaginary part.
func Sort(roots []complex128) {
	slices.SortFunc(roots, func(a, b complex128) int {
		if c := cmp.Compare(real(a), real(b)); c != 0 {
			return c
		}
		return cmp.Compare(imag(a), imag(b))
	})
}

// ConjugateTol is the relative tolerance for conjugate pair matching.
const ConjugateTol = 1e-7

// IsConjugate checks whether a and b are complex conjugates within tolerance.
func IsConjugate(a, b complex128, tol float64) bool {
	if math.Abs(real(a)-real(b)) > tol*math.Max(1, math.Abs(real(a))) {
		return false
	}

	if math.Abs(imag(a)+imag(b)) > tol*math.Max(1, math.Abs(imag(a))) {
		return false
	}

	return true
}
