// Package types provides the geometric value types of the library: planar
// and spatial positions, velocities, rotations, quaternions, poses and rigid
// transforms.
//
// Every type is a small struct of float64 fields with value semantics.
// Methods never modify their receiver; they return a new value. Operations
// that can divide by zero (Div, Normalize, Inverse of a quaternion) return an
// error wrapping [ErrDivisionByZero] instead of producing Inf or NaN.
//
// Approximate comparisons use an absolute tolerance per component. The
// conventional tolerance is [DefaultEpsilon].
package types
