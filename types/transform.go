package types

import (
	"fmt"
	"math"
)

// Transform is a homogeneous rigid transform stored as the upper 3x4 block
// of a 4x4 matrix: rotation R in columns 1-3 and translation in column 4.
// The zero value is not a transform; use TransformIdentity.
type Transform struct {
	R11, R12, R13, R14 float64
	R21, R22, R23, R24 float64
	R31, R32, R33, R34 float64
}

// TransformIdentity returns the identity transform.
func TransformIdentity() Transform { return Transform{R11: 1, R22: 1, R33: 1} }

// TransformFromSlice builds a transform from 12 or 16 row-major values; the
// last row of a 16-value slice is ignored. Other sizes yield the identity
// and an error.
func TransformFromSlice(v []float64) (Transform, error) {
	if err := validateSize("Transform", len(v), 12, 16); err != nil {
		return TransformIdentity(), err
	}
	return Transform{
		R11: v[0], R12: v[1], R13: v[2], R14: v[3],
		R21: v[4], R22: v[5], R23: v[6], R24: v[7],
		R31: v[8], R32: v[9], R33: v[10], R34: v[11],
	}, nil
}

// TransformFromPosition returns a pure translation.
func TransformFromPosition(x, y, z float64) Transform {
	t := TransformIdentity()
	t.R14, t.R24, t.R34 = x, y, z
	return t
}

// TransformFromPose returns the translation (x, y, z) followed by the Euler
// rotation Rz(wz)*Ry(wy)*Rx(wx).
func TransformFromPose(x, y, z, wx, wy, wz float64) Transform {
	t := TransformFrom3DRotation(wx, wy, wz)
	t.R14, t.R24, t.R34 = x, y, z
	return t
}

// TransformFromRotation returns a transform with rotation r and no translation.
func TransformFromRotation(r Rotation) Transform {
	return Transform{
		R11: r.R11, R12: r.R12, R13: r.R13,
		R21: r.R21, R22: r.R22, R23: r.R23,
		R31: r.R31, R32: r.R32, R33: r.R33,
	}
}

// TransformFromRotX returns the transform of angle radians about the X axis.
func TransformFromRotX(angle float64) Transform { return TransformFromRotation(RotationFromRotX(angle)) }

// TransformFromRotY returns the transform of angle radians about the Y axis.
func TransformFromRotY(angle float64) Transform { return TransformFromRotation(RotationFromRotY(angle)) }

// TransformFromRotZ returns the transform of angle radians about the Z axis.
func TransformFromRotZ(angle float64) Transform { return TransformFromRotation(RotationFromRotZ(angle)) }

// TransformFrom3DRotation returns the rotation Rz(wz)*Ry(wy)*Rx(wx).
func TransformFrom3DRotation(wx, wy, wz float64) Transform {
	return TransformFromRotation(RotationFrom3DRotation(wx, wy, wz))
}

// Rotation returns the rotation block.
func (t Transform) Rotation() Rotation {
	return Rotation{
		R11: t.R11, R12: t.R12, R13: t.R13,
		R21: t.R21, R22: t.R22, R23: t.R23,
		R31: t.R31, R32: t.R32, R33: t.R33,
	}
}

// Translation returns the translation column.
func (t Transform) Translation() Position3D { return Position3D{X: t.R14, Y: t.R24, Z: t.R34} }

// Mul returns the composition t*o.
func (t Transform) Mul(o Transform) Transform {
	return Transform{
		R11: t.R11*o.R11 + t.R12*o.R21 + t.R13*o.R31,
		R12: t.R11*o.R12 + t.R12*o.R22 + t.R13*o.R32,
		R13: t.R11*o.R13 + t.R12*o.R23 + t.R13*o.R33,
		R14: t.R11*o.R14 + t.R12*o.R24 + t.R13*o.R34 + t.R14,
		R21: t.R21*o.R11 + t.R22*o.R21 + t.R23*o.R31,
		R22: t.R21*o.R12 + t.R22*o.R22 + t.R23*o.R32,
		R23: t.R21*o.R13 + t.R22*o.R23 + t.R23*o.R33,
		R24: t.R21*o.R14 + t.R22*o.R24 + t.R23*o.R34 + t.R24,
		R31: t.R31*o.R11 + t.R32*o.R21 + t.R33*o.R31,
		R32: t.R31*o.R12 + t.R32*o.R22 + t.R33*o.R32,
		R33: t.R31*o.R13 + t.R32*o.R23 + t.R33*o.R33,
		R34: t.R31*o.R14 + t.R32*o.R24 + t.R33*o.R34 + t.R34,
	}
}

// PreMul returns o*t.
func (t Transform) PreMul(o Transform) Transform { return o.Mul(t) }

// Inverse returns the inverse rigid transform (R^T, -R^T*p). It assumes the
// rotation block is orthonormal.
func (t Transform) Inverse() Transform {
	out := TransformFromRotation(t.Rotation().Transpose())
	out.R14 = -(out.R11*t.R14 + out.R12*t.R24 + out.R13*t.R34)
	out.R24 = -(out.R21*t.R14 + out.R22*t.R24 + out.R23*t.R34)
	out.R34 = -(out.R31*t.R14 + out.R32*t.R24 + out.R33*t.R34)
	return out
}

// Diff returns o expressed in the frame of t: t.Inverse().Mul(o).
func (t Transform) Diff(o Transform) Transform { return t.Inverse().Mul(o) }

// DistanceSquared compares translations only.
func (t Transform) DistanceSquared(o Transform) float64 {
	return t.Translation().DistanceSquared(o.Translation())
}

// Distance compares translations only.
func (t Transform) Distance(o Transform) float64 { return math.Sqrt(t.DistanceSquared(o)) }

// Norm is the norm of the translation.
func (t Transform) Norm() float64 { return t.Translation().Norm() }

// Determinant is the determinant of the rotation block.
func (t Transform) Determinant() float64 { return t.Rotation().Determinant() }

// IsNear reports whether all twelve entries differ by at most eps.
func (t Transform) IsNear(o Transform, eps float64) bool {
	return t.Rotation().IsNear(o.Rotation(), eps) && t.Translation().IsNear(o.Translation(), eps)
}

// IsTransform reports whether the rotation block is orthonormal with
// determinant 1, within eps.
func (t Transform) IsTransform(eps float64) bool { return t.Rotation().IsRotation(eps) }

// ToSlice returns the 16 row-major values of the 4x4 matrix.
func (t Transform) ToSlice() []float64 {
	return []float64{
		t.R11, t.R12, t.R13, t.R14,
		t.R21, t.R22, t.R23, t.R24,
		t.R31, t.R32, t.R33, t.R34,
		0, 0, 0, 1,
	}
}

// DeterminantOf returns the determinant of the rotation block of a 12 or 16
// value row-major transform.
func DeterminantOf(v []float64) (float64, error) {
	if err := validateSize("DeterminantOf", len(v), 12, 16); err != nil {
		return 0, fmt.Errorf("determinant: %w", err)
	}
	t, _ := TransformFromSlice(v)
	return t.Determinant(), nil
}
