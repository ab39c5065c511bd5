package types

import "math"

// Rotation2D is a 2x2 rotation matrix, row-major.
type Rotation2D struct {
	R11, R12 float64
	R21, R22 float64
}

// Rotation2DIdentity returns the identity rotation.
func Rotation2DIdentity() Rotation2D { return Rotation2D{R11: 1, R22: 1} }

// Rotation2DFromAngle returns the rotation of theta radians.
func Rotation2DFromAngle(theta float64) Rotation2D {
	s, c := math.Sincos(theta)
	return Rotation2D{R11: c, R12: -s, R21: s, R22: c}
}

// Mul returns the matrix product r·o.
func (r Rotation2D) Mul(o Rotation2D) Rotation2D {
	return Rotation2D{
		R11: r.R11*o.R11 + r.R12*o.R21,
		R12: r.R11*o.R12 + r.R12*o.R22,
		R21: r.R21*o.R11 + r.R22*o.R21,
		R22: r.R21*o.R12 + r.R22*o.R22,
	}
}

// Transpose returns the transpose of r, its inverse when r is a rotation.
func (r Rotation2D) Transpose() Rotation2D {
	return Rotation2D{R11: r.R11, R12: r.R21, R21: r.R12, R22: r.R22}
}

// Determinant returns the determinant of r.
func (r Rotation2D) Determinant() float64 { return r.R11*r.R22 - r.R12*r.R21 }

// Apply rotates p.
func (r Rotation2D) Apply(p Position2D) Position2D {
	return Position2D{X: r.R11*p.X + r.R12*p.Y, Y: r.R21*p.X + r.R22*p.Y}
}

// IsNear reports whether every component of r is within eps of o.
func (r Rotation2D) IsNear(o Rotation2D, eps float64) bool {
	return near(r.R11, o.R11, eps) && near(r.R12, o.R12, eps) &&
		near(r.R21, o.R21, eps) && near(r.R22, o.R22, eps)
}

// ToSlice returns [R11, R12, R21, R22].
func (r Rotation2D) ToSlice() []float64 { return []float64{r.R11, r.R12, r.R21, r.R22} }
