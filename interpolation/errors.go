package interpolation

import "errors"

var (
	// ErrInvalidVelocity is returned when a velocity limit is not strictly positive.
	ErrInvalidVelocity = errors.New("interpolation: max velocity must be strictly positive")
	// ErrInvalidTimes is returned when knot times are not strictly increasing.
	ErrInvalidTimes = errors.New("interpolation: times must be strictly increasing")
	// ErrTooFewPoints is returned when fewer than two knots are given.
	ErrTooFewPoints = errors.New("interpolation: at least two points are required")
	// ErrSizeMismatch is returned when paired slices differ in length.
	ErrSizeMismatch = errors.New("interpolation: size mismatch")
	// ErrInvalidSampleTime is returned for a sample period that is not strictly positive.
	ErrInvalidSampleTime = errors.New("interpolation: sample time must be strictly positive")
	// ErrInvalidDuration is returned when no sample count can be derived from a duration.
	ErrInvalidDuration = errors.New("interpolation: invalid duration")
	// ErrNonMonotonicCurve is returned when Bezier tangents leave their segment in time.
	ErrNonMonotonicCurve = errors.New("interpolation: bezier curve is not monotonic in time")
)
