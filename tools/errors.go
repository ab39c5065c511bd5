package tools

import "errors"

var (
	// ErrEmptyInput is returned when an aggregate is computed over no values.
	ErrEmptyInput = errors.New("tools: empty input")
	// ErrSizeMismatch is returned when paired slices differ in length.
	ErrSizeMismatch = errors.New("tools: size mismatch")
	// ErrInvalidWeight is returned for a weight that is not strictly positive.
	ErrInvalidWeight = errors.New("tools: weight must be strictly positive")
	// ErrUndefinedMean is returned when angles cancel out and have no mean direction.
	ErrUndefinedMean = errors.New("tools: mean angle is undefined")
	// ErrNullAxis is returned when a direction vector has zero norm.
	ErrNullAxis = errors.New("tools: axis has zero norm")
	// ErrInvalidRatio is returned when an interpolation ratio is outside [0, 1].
	ErrInvalidRatio = errors.New("tools: ratio must be in [0, 1]")
	// ErrInvalidAxes is returned when frame axes are not orthonormal.
	ErrInvalidAxes = errors.New("tools: axes are not orthonormal")
	// ErrNullProjection is returned when a rotation has no component about the requested axis.
	ErrNullProjection = errors.New("tools: rotation has no component about axis")
	// ErrSingularLogDerivative is returned when the derivative of the
	// exponential map cannot be inverted, at rotation angles 2πk with k >= 1.
	ErrSingularLogDerivative = errors.New("tools: singular log derivative")
)
