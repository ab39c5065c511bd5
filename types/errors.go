package types

import (
	"errors"
	"fmt"

	"github.com/aldebaran/libalmath/core"
)

// DefaultEpsilon is the tolerance conventionally passed to IsNear.
const DefaultEpsilon = core.DefaultEpsilon

var (
	// ErrDivisionByZero is returned when scaling by 1/0 or normalizing a null value.
	ErrDivisionByZero = errors.New("types: division by zero")
	// ErrInvalidSize is returned when a slice has the wrong number of components.
	ErrInvalidSize = errors.New("types: invalid slice size")
	// ErrInvalidAxis is returned when a rotation axis is not a unit vector.
	ErrInvalidAxis = errors.New("types: rotation axis is not a unit vector")
)

func validateDivisor(op string, v float64) error {
	if v == 0 {
		return fmt.Errorf("%s: %w", op, ErrDivisionByZero)
	}
	return nil
}

func validateSize(typ string, got int, want ...int) error {
	for _, w := range want {
		if got == w {
			return nil
		}
	}
	return fmt.Errorf("%s: %w: got %d, want %v", typ, ErrInvalidSize, got, want)
}

func near(a, b, eps float64) bool {
	d := a - b
	return d <= eps && -d <= eps
}
