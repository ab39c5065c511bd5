package types

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Rotation is a 3x3 rotation matrix, row-major. The zero value is not a
// rotation; use RotationIdentity.
type Rotation struct {
	R11, R12, R13 float64
	R21, R22, R23 float64
	R31, R32, R33 float64
}

// RotationIdentity returns the identity rotation.
func RotationIdentity() Rotation { return Rotation{R11: 1, R22: 1, R33: 1} }

// RotationFromSlice builds a rotation from 9 row-major values.
func RotationFromSlice(v []float64) (Rotation, error) {
	if err := validateSize("Rotation", len(v), 9); err != nil {
		return RotationIdentity(), err
	}
	return Rotation{v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7], v[8]}, nil
}

// RotationFromRotX returns the rotation of angle radians about the X axis.
func RotationFromRotX(angle float64) Rotation {
	s, c := math.Sincos(angle)
	r := RotationIdentity()
	r.R22, r.R23 = c, -s
	r.R32, r.R33 = s, c
	return r
}

// RotationFromRotY returns the rotation of angle radians about the Y axis.
func RotationFromRotY(angle float64) Rotation {
	s, c := math.Sincos(angle)
	r := RotationIdentity()
	r.R11, r.R13 = c, s
	r.R31, r.R33 = -s, c
	return r
}

// RotationFromRotZ returns the rotation of angle radians about the Z axis.
func RotationFromRotZ(angle float64) Rotation {
	s, c := math.Sincos(angle)
	r := RotationIdentity()
	r.R11, r.R12 = c, -s
	r.R21, r.R22 = s, c
	return r
}

// RotationFrom3DRotation returns Rz(wz)*Ry(wy)*Rx(wx).
func RotationFrom3DRotation(wx, wy, wz float64) Rotation {
	return RotationFromRotZ(wz).Mul(RotationFromRotY(wy)).Mul(RotationFromRotX(wx))
}

// RotationFromQuaternion converts the quaternion (w, x, y, z) to a matrix.
// The quaternion is expected to be normalized.
func RotationFromQuaternion(w, x, y, z float64) Rotation {
	t2, t3, t4 := w*x, w*y, w*z
	t5, t6, t7 := -x*x, x*y, x*z
	t8, t9, t10 := -y*y, y*z, -z*z

	return Rotation{
		R11: 2*(t8+t10) + 1, R12: 2 * (t6 - t4), R13: 2 * (t7 + t3),
		R21: 2 * (t6 + t4), R22: 2*(t5+t10) + 1, R23: 2 * (t9 - t2),
		R31: 2 * (t7 - t3), R32: 2 * (t9 + t2), R33: 2*(t5+t8) + 1,
	}
}

// RotationFromAngleDirection returns the rotation of angle radians about the
// unit axis (x, y, z). The squared norm of the axis must be 1 within 1e-5.
func RotationFromAngleDirection(angle, x, y, z float64) (Rotation, error) {
	n := x*x + y*y + z*z
	if n > 1.00001 || n < 0.99999 {
		return RotationIdentity(), fmt.Errorf("RotationFromAngleDirection: %w: squared norm %v", ErrInvalidAxis, n)
	}

	s, c := math.Sincos(angle)
	t := 1 - c

	return Rotation{
		R11: t*x*x + c, R12: t*x*y - s*z, R13: t*x*z + s*y,
		R21: t*x*y + s*z, R22: t*y*y + c, R23: t*y*z - s*x,
		R31: t*x*z - s*y, R32: t*y*z + s*x, R33: t*z*z + c,
	}, nil
}

// Mul returns the matrix product r·o.
func (r Rotation) Mul(o Rotation) Rotation {
	return Rotation{
		R11: r.R11*o.R11 + r.R12*o.R21 + r.R13*o.R31,
		R12: r.R11*o.R12 + r.R12*o.R22 + r.R13*o.R32,
		R13: r.R11*o.R13 + r.R12*o.R23 + r.R13*o.R33,
		R21: r.R21*o.R11 + r.R22*o.R21 + r.R23*o.R31,
		R22: r.R21*o.R12 + r.R22*o.R22 + r.R23*o.R32,
		R23: r.R21*o.R13 + r.R22*o.R23 + r.R23*o.R33,
		R31: r.R31*o.R11 + r.R32*o.R21 + r.R33*o.R31,
		R32: r.R31*o.R12 + r.R32*o.R22 + r.R33*o.R32,
		R33: r.R31*o.R13 + r.R32*o.R23 + r.R33*o.R33,
	}
}

// Transpose returns the transpose of r, its inverse when r is a rotation.
func (r Rotation) Transpose() Rotation {
	return Rotation{
		R11: r.R11, R12: r.R21, R13: r.R31,
		R21: r.R12, R22: r.R22, R23: r.R32,
		R31: r.R13, R32: r.R23, R33: r.R33,
	}
}

// Determinant returns the determinant of r.
func (r Rotation) Determinant() float64 {
	return r.R11*(r.R22*r.R33-r.R23*r.R32) -
		r.R12*(r.R21*r.R33-r.R23*r.R31) +
		r.R13*(r.R21*r.R32-r.R22*r.R31)
}

// Apply returns r*p.
func (r Rotation) Apply(p Position3D) Position3D {
	x, y, z := r.ApplyRotation(p.X, p.Y, p.Z)
	return Position3D{X: x, Y: y, Z: z}
}

// ApplyRotation rotates the vector (x, y, z).
func (r Rotation) ApplyRotation(x, y, z float64) (float64, float64, float64) {
	return x*r.R11 + y*r.R12 + z*r.R13,
		x*r.R21 + y*r.R22 + z*r.R23,
		x*r.R31 + y*r.R32 + z*r.R33
}

// IsNear reports whether all nine entries differ by at most eps.
func (r Rotation) IsNear(o Rotation, eps float64) bool {
	return near(r.R11, o.R11, eps) && near(r.R12, o.R12, eps) && near(r.R13, o.R13, eps) &&
		near(r.R21, o.R21, eps) && near(r.R22, o.R22, eps) && near(r.R23, o.R23, eps) &&
		near(r.R31, o.R31, eps) && near(r.R32, o.R32, eps) && near(r.R33, o.R33, eps)
}

// IsRotation reports whether the columns are orthonormal and the
// determinant is 1, each within eps.
func (r Rotation) IsRotation(eps float64) bool {
	return isOrthonormal(
		[3]float64{r.R11, r.R21, r.R31},
		[3]float64{r.R12, r.R22, r.R32},
		[3]float64{r.R13, r.R23, r.R33},
		r.Determinant(), eps)
}

// Orthonormalize returns the rotation closest to r in the Frobenius norm,
// computed from the singular value decomposition r = U*S*V^T as U*V^T.
func (r Rotation) Orthonormalize() (Rotation, error) {
	m := mat.NewDense(3, 3, r.ToSlice())

	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDFull); !ok {
		return RotationIdentity(), fmt.Errorf("Rotation.Orthonormalize: SVD did not converge")
	}

	var u, v, out mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	out.Mul(&u, v.T())

	if mat.Det(&out) < 0 {
		// Flip the axis of the smallest singular value to stay in SO(3).
		for i := range 3 {
			u.Set(i, 2, -u.At(i, 2))
		}
		out.Mul(&u, v.T())
	}

	res, err := RotationFromSlice(mat.DenseCopyOf(&out).RawMatrix().Data)
	if err != nil {
		return RotationIdentity(), err
	}
	return res, nil
}

// ToSlice returns the entries in row-major order.
func (r Rotation) ToSlice() []float64 {
	return []float64{r.R11, r.R12, r.R13, r.R21, r.R22, r.R23, r.R31, r.R32, r.R33}
}

func isOrthonormal(c1, c2, c3 [3]float64, det, eps float64) bool {
	dot := func(a, b [3]float64) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

	if math.Abs(dot(c1, c2)) > eps || math.Abs(dot(c1, c3)) > eps || math.Abs(dot(c2, c3)) > eps {
		return false
	}
	for _, c := range [][3]float64{c1, c2, c3} {
		if math.Abs(dot(c, c)-1) > eps {
			return false
		}
	}
	return math.Abs(det-1) <= eps
}
