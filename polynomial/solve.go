package polynomial

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/aldebaran/libalmath/internal/polyroot"
)

// ErrZeroPolynomial is returned when every coefficient is zero.
var ErrZeroPolynomial = errors.New("polynomial: all coefficients are zero")

// ErrNoConvergence is returned when the numerical solvers fail.
var ErrNoConvergence = errors.New("polynomial: root finder did not converge")

// SolveLinear returns the root of a·x + b. It returns no root when a is zero.
func SolveLinear(a, b float64) []complex128 {
	if a == 0 {
		return nil
	}
	return []complex128{complex(-b/a, 0)}
}

// SolveQuadratic returns the roots of a·x² + b·x + c.
func SolveQuadratic(a, b, c float64) []complex128 {
	if a == 0 {
		return SolveLinear(b, c)
	}
	var roots []complex128
	delta := b*b - 4*a*c
	if delta >= 0 {
		sq := math.Sqrt(delta)
		roots = []complex128{
			complex(-0.5*(b+sq)/a, 0),
			complex(0.5*(sq-b)/a, 0),
		}
	} else {
		re := -0.5 * b / a
		im := -0.5 * math.Sqrt(-delta) / a
		roots = []complex128{complex(re, im), complex(re, -im)}
	}
	polyroot.Sort(roots)
	return roots
}

// SolveCubic returns the roots of a·x³ + b·x² + c·x + d using Cardano's
// method, or the trigonometric form when all three roots are real and
// distinct.
func SolveCubic(a, b, c, d float64) []complex128 {
	if a == 0 {
		return SolveQuadratic(b, c, d)
	}
	// x = X - b/3a gives X³ + pX + q = 0.
	p := -b*b/(3*a*a) + c/a
	q := 2*b*b*b/(27*a*a*a) - b*c/(3*a*a) + d/a
	delta := 0.25*q*q + p*p*p/27
	shift := -b / (3 * a)

	roots := make([]complex128, 0, 3)
	if delta >= 0 {
		sq := math.Sqrt(delta)
		x0 := math.Cbrt(-0.5*q+sq) + math.Cbrt(-0.5*q-sq)
		roots = append(roots, complex(x0, 0))
		if x0 != 0 {
			roots = append(roots, SolveQuadratic(1, x0, -q/x0)...)
		} else {
			roots = append(roots, SolveQuadratic(1, 0, p)...)
		}
	} else {
		r := 2 * math.Sqrt(-p/3)
		arg := -q / (2 * math.Sqrt(-p*p*p/27))
		t := math.Acos(max(-1, min(1, arg)))
		for k := range 3 {
			roots = append(roots, complex(r*math.Cos((t+2*float64(k)*math.Pi)/3), 0))
		}
	}
	for i := range roots {
		roots[i] += complex(shift, 0)
	}
	polyroot.Sort(roots)
	return roots
}

// SolveQuartic returns the roots of a·x⁴ + b·x³ + c·x² + d·x + e.
func SolveQuartic(a, b, c, d, e float64) ([]complex128, error) {
	if a == 0 {
		return SolveCubic(b, c, d, e), nil
	}
	return numericRoots([]float64{a, b, c, d, e})
}

// Roots returns the roots of the polynomial whose coefficients are given in
// descending power order.
func Roots(coeff []float64) ([]complex128, error) {
	coeff = polyroot.TrimLeading(coeff)
	switch len(coeff) {
	case 0:
		return nil, ErrZeroPolynomial
	case 1:
		return nil, nil
	case 2:
		return SolveLinear(coeff[0], coeff[1]), nil
	case 3:
		return SolveQuadratic(coeff[0], coeff[1], coeff[2]), nil
	case 4:
		return SolveCubic(coeff[0], coeff[1], coeff[2], coeff[3]), nil
	default:
		return numericRoots(coeff)
	}
}

func numericRoots(coeff []float64) ([]complex128, error) {
	roots, err := polyroot.DurandKerner(polyroot.FromReal(coeff))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoConvergence, err)
	}
	roots = polyroot.SnapReal(roots)
	polyroot.Sort(roots)
	return roots, nil
}

// EigenRoots returns the roots of the polynomial, in descending power order,
// as the eigenvalues of its companion matrix.
func EigenRoots(coeff []float64) ([]complex128, error) {
	coeff = polyroot.TrimLeading(coeff)
	if len(coeff) == 0 {
		return nil, ErrZeroPolynomial
	}
	n := len(coeff) - 1
	if n == 0 {
		return nil, nil
	}

	companion := mat.NewDense(n, n, nil)
	for j := range n {
		companion.Set(0, j, -coeff[j+1]/coeff[0])
	}
	for i := 1; i < n; i++ {
		companion.Set(i, i-1, 1)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(companion, mat.EigenNone); !ok {
		return nil, ErrNoConvergence
	}
	roots := polyroot.SnapReal(eig.Values(nil))
	polyroot.Sort(roots)
	return roots, nil
}

// Eval evaluates the polynomial, in descending power order, at x.
func Eval(coeff []float64, x complex128) complex128 {
	if len(coeff) == 0 {
		return 0
	}
	return polyroot.PolyEval(polyroot.FromReal(coeff), x)
}

// MaxResidual returns the largest |p(r)| over roots.
func MaxResidual(coeff []float64, roots []complex128) float64 {
	m := 0.0
	for _, r := range roots {
		m = math.Max(m, cmplx.Abs(Eval(coeff, r)))
	}
	return m
}
