package tools

import (
	"fmt"
	"math"

	"github.com/aldebaran/libalmath/types"
)

const (
	logEpsilon = 1e-3
	expEpsilon = 1e-3
)

// TransformLogarithm returns the twist whose exponential is h.
func TransformLogarithm(h types.Transform) types.Velocity6D {
	k := types.Position3D{X: h.R32 - h.R23, Y: h.R13 - h.R31, Z: h.R21 - h.R12}
	si := 0.5 * k.Norm()
	co := 0.5 * (h.R11 + h.R22 + h.R33 - 1)
	angle := math.Atan2(si, co)

	var w types.Position3D
	var lambda float64
	switch {
	case si < logEpsilon && co < -1+logEpsilon:
		// Half turn: R - Rᵀ vanishes, the axis comes from the symmetric part.
		w = halfTurnAxis(h.Rotation()).Scale(angle)
		lambda = 1 / (math.Pi * math.Pi)
	default:
		coeff := 0.5
		if si > 0 {
			coeff = angle / (2 * si)
		}
		w = k.Scale(coeff)
		switch {
		case angle < logEpsilon:
			lambda = 1.0 / 12
		case angle > math.Pi-logEpsilon:
			lambda = 1 / (math.Pi * math.Pi)
		default:
			lambda = 0.5 * (2*si - angle*(1+co)) / (angle * angle * si)
		}
	}

	t := h.Translation()
	wt := w.Cross(t)
	v := t.Sub(wt.Scale(0.5)).Add(w.Cross(wt).Scale(lambda))
	return types.Velocity6D{XD: v.X, YD: v.Y, ZD: v.Z, WXD: w.X, WYD: w.Y, WZD: w.Z}
}

// halfTurnAxis recovers the unit axis of a rotation by π, for which
// R = 2aaᵀ - I.
func halfTurnAxis(r types.Rotation) types.Position3D {
	d := [3]float64{r.R11, r.R22, r.R33}
	off := [3][3]float64{
		{0, r.R12 + r.R21, r.R13 + r.R31},
		{r.R12 + r.R21, 0, r.R23 + r.R32},
		{r.R13 + r.R31, r.R23 + r.R32, 0},
	}
	m := 0
	for i := 1; i < 3; i++ {
		if d[i] > d[m] {
			m = i
		}
	}
	var a [3]float64
	a[m] = math.Sqrt(math.Max((d[m]+1)/2, 0))
	for i := range 3 {
		if i != m && a[m] > 0 {
			a[i] = off[m][i] / (4 * a[m])
		}
	}
	u, err := types.Position3D{X: a[0], Y: a[1], Z: a[2]}.Normalize()
	if err != nil {
		return types.Position3D{X: 1}
	}
	return u
}

// VelocityExponential integrates the constant twist v over unit time.
func VelocityExponential(v types.Velocity6D) types.Transform {
	w := types.Position3D{X: v.WXD, Y: v.WYD, Z: v.WZD}
	p := types.Position3D{X: v.XD, Y: v.YD, Z: v.ZD}
	t := w.Norm()

	var cc, sc, dsc float64
	if t >= expEpsilon {
		cc = (1 - math.Cos(t)) / (t * t)
		sc = math.Sin(t) / t
		dsc = (t - math.Sin(t)) / (t * t * t)
	} else {
		cc = 0.5
		sc = 1 - t*t/6
		dsc = 1.0 / 6
	}

	h := types.Transform{
		R11: 1 - cc*(w.Z*w.Z+w.Y*w.Y),
		R12: -sc*w.Z + cc*w.X*w.Y,
		R13: sc*w.Y + cc*w.X*w.Z,
		R21: sc*w.Z + cc*w.X*w.Y,
		R22: 1 - cc*(w.X*w.X+w.Z*w.Z),
		R23: -sc*w.X + cc*w.Y*w.Z,
		R31: -sc*w.Y + cc*w.X*w.Z,
		R32: sc*w.X + cc*w.Y*w.Z,
		R33: 1 - cc*(w.X*w.X+w.Y*w.Y),
	}
	tr := p.Scale(sc).Add(w.Cross(p).Scale(cc)).Add(w.Scale(dsc * w.Dot(p)))
	h.R14, h.R24, h.R34 = tr.X, tr.Y, tr.Z
	return h
}

// TransformMean interpolates along the screw motion from h1 (ratio 0) to h2
// (ratio 1).
func TransformMean(h1, h2 types.Transform, ratio float64) (types.Transform, error) {
	if ratio < 0 || ratio > 1 {
		return types.TransformIdentity(), fmt.Errorf("TransformMean: %w: got %g", ErrInvalidRatio, ratio)
	}
	v := TransformLogarithm(h1.Diff(h2))
	return h1.Mul(VelocityExponential(v.Scale(ratio))), nil
}

// ChangeReferenceVelocity6D rotates both halves of v by the rotation of h.
func ChangeReferenceVelocity6D(h types.Transform, v types.Velocity6D) types.Velocity6D {
	r := h.Rotation()
	lin := r.Apply(types.Position3D{X: v.XD, Y: v.YD, Z: v.ZD})
	ang := r.Apply(types.Position3D{X: v.WXD, Y: v.WYD, Z: v.WZD})
	return types.Velocity6D{XD: lin.X, YD: lin.Y, ZD: lin.Z, WXD: ang.X, WYD: ang.Y, WZD: ang.Z}
}

// ChangeReferenceTransposedVelocity6D rotates v by the inverse rotation of h.
func ChangeReferenceTransposedVelocity6D(h types.Transform, v types.Velocity6D) types.Velocity6D {
	return ChangeReferenceVelocity6D(types.TransformFromRotation(h.Rotation().Transpose()), v)
}

// ChangeReferencePosition6D rotates both the position and the rotation
// vector of p by h.
func ChangeReferencePosition6D(h types.Transform, p types.Position6D) types.Position6D {
	return Position6DFromVelocity6D(ChangeReferenceVelocity6D(h, Velocity6DFromScaledPosition6D(1, p)))
}

// ChangeReferenceTransposedPosition6D is ChangeReferencePosition6D with the
// inverse rotation of h.
func ChangeReferenceTransposedPosition6D(h types.Transform, p types.Position6D) types.Position6D {
	return Position6DFromVelocity6D(ChangeReferenceTransposedVelocity6D(h, Velocity6DFromScaledPosition6D(1, p)))
}

// ChangeReferencePosition3D rotates p by h, ignoring its translation.
func ChangeReferencePosition3D(h types.Transform, p types.Position3D) types.Position3D {
	return h.Rotation().Apply(p)
}

// ChangeReferenceTransposedPosition3D rotates p by the inverse rotation of h.
func ChangeReferenceTransposedPosition3D(h types.Transform, p types.Position3D) types.Position3D {
	return h.Rotation().Transpose().Apply(p)
}

// ChangeReferenceTransform left-multiplies in by the rotation of h. The
// translation of h is not applied.
func ChangeReferenceTransform(h, in types.Transform) types.Transform {
	return TransformFromRotation(h.Rotation()).Mul(in)
}

// ChangeReferenceTransposedTransform left-multiplies in by the inverse
// rotation of h.
func ChangeReferenceTransposedTransform(h, in types.Transform) types.Transform {
	return TransformFromRotation(h.Rotation().Transpose()).Mul(in)
}

// TransformFromRotation builds a pure rotation transform.
func TransformFromRotation(r types.Rotation) types.Transform { return types.TransformFromRotation(r) }

// RotationFromTransform extracts the rotation block of t.
func RotationFromTransform(t types.Transform) types.Rotation { return t.Rotation() }

func TransformFromPosition3D(p types.Position3D) types.Transform {
	return types.TransformFromPosition(p.X, p.Y, p.Z)
}

func Position3DFromTransform(t types.Transform) types.Position3D { return t.Translation() }

func Position2DFromTransform(t types.Transform) types.Position2D {
	return types.Position2D{X: t.R14, Y: t.R24}
}

// TransformFromPose2D is the translation (x, y, 0) followed by a yaw of theta.
func TransformFromPose2D(p types.Pose2D) types.Transform {
	return types.TransformFromPosition(p.X, p.Y, 0).Mul(types.TransformFromRotZ(p.Theta))
}

// Pose2DFromTransform keeps the x, y translation and the yaw of t.
func Pose2DFromTransform(t types.Transform) types.Pose2D {
	return types.Pose2D{X: t.R14, Y: t.R24, Theta: math.Atan2(t.R21, t.R11)}
}

func TransformFromRotation3D(r types.Rotation3D) types.Transform {
	return types.TransformFrom3DRotation(r.WX, r.WY, r.WZ)
}

// TransformFromPosition6D builds the transform of p, its rotation being
// Rz(wz)·Ry(wy)·Rx(wx).
func TransformFromPosition6D(p types.Position6D) types.Transform {
	return types.TransformFromPose(p.X, p.Y, p.Z, p.WX, p.WY, p.WZ)
}

// Rotation3DFromRotation extracts roll, pitch and yaw such that
// r = Rz(wz)·Ry(wy)·Rx(wx).
func Rotation3DFromRotation(r types.Rotation) types.Rotation3D {
	wz := math.Atan2(r.R21, r.R11)
	sy, cy := math.Sincos(wz)
	return types.Rotation3D{
		WX: math.Atan2(sy*r.R13-cy*r.R23, cy*r.R22-sy*r.R12),
		WY: math.Atan2(-r.R31, cy*r.R11+sy*r.R21),
		WZ: wz,
	}
}

func Rotation3DFromTransform(t types.Transform) types.Rotation3D {
	return Rotation3DFromRotation(t.Rotation())
}

// Position6DFromTransform is the inverse of TransformFromPosition6D.
func Position6DFromTransform(t types.Transform) types.Position6D {
	r := Rotation3DFromRotation(t.Rotation())
	return types.Position6D{X: t.R14, Y: t.R24, Z: t.R34, WX: r.WX, WY: r.WY, WZ: r.WZ}
}

// Position6DFromTransformDiff approximates the displacement from current to
// target: exact in translation, first order in rotation.
func Position6DFromTransformDiff(current, target types.Transform) types.Position6D {
	var w types.Position3D
	cr, tr := current.Rotation(), target.Rotation()
	cols := func(r types.Rotation) [3]types.Position3D {
		return [3]types.Position3D{
			{X: r.R11, Y: r.R21, Z: r.R31},
			{X: r.R12, Y: r.R22, Z: r.R32},
			{X: r.R13, Y: r.R23, Z: r.R33},
		}
	}
	cc, tc := cols(cr), cols(tr)
	for i := range 3 {
		w = w.Add(cc[i].Cross(tc[i]))
	}
	w = w.Scale(0.5)
	d := target.Translation().Sub(current.Translation())
	return types.Position6D{X: d.X, Y: d.Y, Z: d.Z, WX: w.X, WY: w.Y, WZ: w.Z}
}

// TransformApply2D applies t to the point (p.X, p.Y, 0).
func TransformApply2D(t types.Transform, p types.Position2D) types.Position3D {
	return TransformApply3D(t, types.Position3D{X: p.X, Y: p.Y})
}

// TransformApply3D returns R·p + t.
func TransformApply3D(t types.Transform, p types.Position3D) types.Position3D {
	return t.Rotation().Apply(p).Add(t.Translation())
}

// TransformFromQuaternion converts q to a pure rotation transform. q is
// expected to be a unit quaternion.
func TransformFromQuaternion(q types.Quaternion) types.Transform {
	return types.Transform{
		R11: 1 - 2*(q.Y*q.Y+q.Z*q.Z),
		R12: 2 * (q.X*q.Y - q.Z*q.W),
		R13: 2 * (q.X*q.Z + q.Y*q.W),
		R21: 2 * (q.X*q.Y + q.Z*q.W),
		R22: 1 - 2*(q.X*q.X+q.Z*q.Z),
		R23: 2 * (q.Y*q.Z - q.X*q.W),
		R31: 2 * (q.X*q.Z - q.Y*q.W),
		R32: 2 * (q.Y*q.Z + q.X*q.W),
		R33: 1 - 2*(q.X*q.X+q.Y*q.Y),
	}
}

// QuaternionFromTransform returns the unit quaternion, with non-negative
// scalar part, of the rotation block of t.
func QuaternionFromTransform(t types.Transform) types.Quaternion {
	kx := t.R32 - t.R23
	ky := t.R13 - t.R31
	kz := t.R21 - t.R12

	var kx1, ky1, kz1 float64
	var add bool
	switch {
	case t.R11 >= t.R22 && t.R11 >= t.R33:
		kx1 = t.R11 - t.R22 - t.R33 + 1
		ky1 = t.R21 + t.R12
		kz1 = t.R31 + t.R13
		add = kx >= 0
	case t.R22 >= t.R33:
		kx1 = t.R21 + t.R12
		ky1 = t.R22 - t.R11 - t.R33 + 1
		kz1 = t.R32 + t.R23
		add = ky >= 0
	default:
		kx1 = t.R31 + t.R13
		ky1 = t.R32 + t.R23
		kz1 = t.R33 - t.R11 - t.R22 + 1
		add = kz >= 0
	}
	if add {
		kx, ky, kz = kx+kx1, ky+ky1, kz+kz1
	} else {
		kx, ky, kz = kx-kx1, ky-ky1, kz-kz1
	}

	nm := math.Sqrt(kx*kx + ky*ky + kz*kz)
	if nm == 0 {
		return types.QuaternionIdentity()
	}
	qs := 0.5 * math.Sqrt(math.Max(t.R11+t.R22+t.R33+1, 0))
	s := math.Sqrt(math.Max(1-qs*qs, 0)) / nm
	return types.Quaternion{W: qs, X: s * kx, Y: s * ky, Z: s * kz}
}

// TransformFromDisplacement converts the quaternion of d to a rotation
// block and keeps its translation.
func TransformFromDisplacement(d types.Displacement) types.Transform {
	h := TransformFromQuaternion(d.Q)
	h.R14, h.R24, h.R34 = d.P.X, d.P.Y, d.P.Z
	return h
}

func DisplacementFromTransform(t types.Transform) types.Displacement {
	return types.Displacement{P: t.Translation(), Q: QuaternionFromTransform(t)}
}

// TransformFromRotVec builds a rotation of theta about the single axis
// selected by mask, translated by p. Any mask other than AxisMaskX, AxisMaskY
// or AxisMaskZ yields a pure translation.
func TransformFromRotVec(mask types.AxisMask, theta float64, p types.Position3D) types.Transform {
	var h types.Transform
	switch mask {
	case types.AxisMaskX:
		h = types.TransformFromRotX(theta)
	case types.AxisMaskY:
		h = types.TransformFromRotY(theta)
	case types.AxisMaskZ:
		h = types.TransformFromRotZ(theta)
	default:
		h = types.TransformIdentity()
	}
	h.R14, h.R24, h.R34 = p.X, p.Y, p.Z
	return h
}
