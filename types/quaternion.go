package types

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quaternion is a rotation quaternion W + Xi + Yj + Zk. The zero value is
// not a rotation; use QuaternionIdentity.
type Quaternion struct {
	W, X, Y, Z float64
}

// QuaternionIdentity returns the identity rotation.
func QuaternionIdentity() Quaternion { return Quaternion{W: 1} }

// QuaternionFromSlice builds a quaternion from (w, x, y, z). On a wrong
// size it returns the zero quaternion and an error.
func QuaternionFromSlice(v []float64) (Quaternion, error) {
	if err := validateSize("Quaternion", len(v), 4); err != nil {
		return Quaternion{}, err
	}
	return Quaternion{W: v[0], X: v[1], Y: v[2], Z: v[3]}, nil
}

// QuaternionFromAngleAndAxis returns the unit quaternion rotating by angle
// around axis. The axis does not need to be normalized.
func QuaternionFromAngleAndAxis(angle float64, axis Position3D) (Quaternion, error) {
	s, c := math.Sincos(0.5 * angle)
	return Quaternion{W: c, X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s}.Normalize()
}

func (q Quaternion) number() quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

func quaternionFromNumber(n quat.Number) Quaternion {
	return Quaternion{W: n.Real, X: n.Imag, Y: n.Jmag, Z: n.Kmag}
}

// Mul returns the Hamilton product q*o.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return quaternionFromNumber(quat.Mul(q.number(), o.number()))
}

// Scale multiplies every component of q by k.
func (q Quaternion) Scale(k float64) Quaternion {
	return Quaternion{W: q.W * k, X: q.X * k, Y: q.Y * k, Z: q.Z * k}
}

// Div divides every component by k.
func (q Quaternion) Div(k float64) (Quaternion, error) {
	if err := validateDivisor("Quaternion.Div", k); err != nil {
		return Quaternion{}, err
	}
	return q.Scale(1 / k), nil
}

// Norm returns the Euclidean norm of q.
func (q Quaternion) Norm() float64 { return quat.Abs(q.number()) }

// Normalize returns q scaled to unit norm.
func (q Quaternion) Normalize() (Quaternion, error) {
	n := q.Norm()
	if n == 0 {
		return Quaternion{}, validateDivisor("Quaternion.Normalize", n)
	}
	return q.Scale(1 / n), nil
}

// Conjugate returns W - Xi - Yj - Zk.
func (q Quaternion) Conjugate() Quaternion { return quaternionFromNumber(quat.Conj(q.number())) }

// Inverse returns the multiplicative inverse. For unit quaternions it is the
// conjugate.
func (q Quaternion) Inverse() (Quaternion, error) {
	if q.Norm() == 0 {
		return Quaternion{}, validateDivisor("Quaternion.Inverse", 0)
	}
	return quaternionFromNumber(quat.Inv(q.number())), nil
}

// IsNear reports whether q and o represent the same rotation: either q-o or
// q+o has every component strictly below eps.
func (q Quaternion) IsNear(o Quaternion, eps float64) bool {
	lt := func(a float64) bool { return math.Abs(a) < eps }

	if lt(q.W-o.W) && lt(q.X-o.X) && lt(q.Y-o.Y) && lt(q.Z-o.Z) {
		return true
	}
	return lt(q.W+o.W) && lt(q.X+o.X) && lt(q.Y+o.Y) && lt(q.Z+o.Z)
}

// AngleAndAxis returns the rotation angle in [0, 2pi] and the unit axis of
// q. When the axis is undefined (null rotation) it is (1, 0, 0).
func (q Quaternion) AngleAndAxis() (float64, Position3D) {
	u, err := q.Normalize()
	if err != nil {
		return 0, Position3D{X: 1}
	}

	w := math.Max(-1, math.Min(1, u.W))
	angle := 2 * math.Acos(w)

	sinHalf := math.Sqrt(1 - w*w)
	if math.Abs(sinHalf) < 0.0005 {
		sinHalf = 1
	}

	axis := Position3D{X: u.X / sinHalf, Y: u.Y / sinHalf, Z: u.Z / sinHalf}
	if axis.Norm() < 0.0001 {
		axis = Position3D{X: 1}
	}
	return angle, axis
}

// Rotate applies the rotation of the unit quaternion q to p.
func (q Quaternion) Rotate(p Position3D) Position3D {
	v := quat.Number{Imag: p.X, Jmag: p.Y, Kmag: p.Z}
	r := quat.Mul(quat.Mul(q.number(), v), quat.Conj(q.number()))
	return Position3D{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}

// Rotation returns the rotation matrix of q.
func (q Quaternion) Rotation() Rotation { return RotationFromQuaternion(q.W, q.X, q.Y, q.Z) }

// ToSlice returns [W, X, Y, Z].
func (q Quaternion) ToSlice() []float64 { return []float64{q.W, q.X, q.Y, q.Z} }
