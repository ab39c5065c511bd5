package tools

import (
	"fmt"
	"math"

	"github.com/aldebaran/libalmath/types"
)

const (
	axisUnitTolerance       = 1e-4
	axisOrthogonalTolerance = 1e-3
	orthogonalSpaceMin      = 1e-4
	nullProjection          = 1e-9
)

// RotationFromAxesXYZ returns the rotation whose columns are x, y and z.
func RotationFromAxesXYZ(x, y, z types.Position3D) (types.Rotation, error) {
	if err := validateAxes(x, y, z); err != nil {
		return types.RotationIdentity(), fmt.Errorf("RotationFromAxesXYZ: %w", err)
	}
	return rotationFromColumns(x, y, z), nil
}

// RotationFromAxesXY completes x and y with z = x × y.
func RotationFromAxesXY(x, y types.Position3D) (types.Rotation, error) {
	if err := validateAxes(x, y); err != nil {
		return types.RotationIdentity(), fmt.Errorf("RotationFromAxesXY: %w", err)
	}
	return rotationFromColumns(x, y, x.Cross(y)), nil
}

// RotationFromAxesXZ completes x and z with y = z × x.
func RotationFromAxesXZ(x, z types.Position3D) (types.Rotation, error) {
	if err := validateAxes(x, z); err != nil {
		return types.RotationIdentity(), fmt.Errorf("RotationFromAxesXZ: %w", err)
	}
	return rotationFromColumns(x, z.Cross(x), z), nil
}

// RotationFromAxesYZ completes y and z with x = y × z.
func RotationFromAxesYZ(y, z types.Position3D) (types.Rotation, error) {
	if err := validateAxes(y, z); err != nil {
		return types.RotationIdentity(), fmt.Errorf("RotationFromAxesYZ: %w", err)
	}
	return rotationFromColumns(y.Cross(z), y, z), nil
}

func validateAxes(axes ...types.Position3D) error {
	for i, a := range axes {
		if !a.IsUnitVector(axisUnitTolerance) {
			return fmt.Errorf("%w: axis %d is not a unit vector", ErrInvalidAxes, i)
		}
		for j := i + 1; j < len(axes); j++ {
			if !a.IsOrthogonal(axes[j], axisOrthogonalTolerance) {
				return fmt.Errorf("%w: axes %d and %d are not orthogonal", ErrInvalidAxes, i, j)
			}
		}
	}
	return nil
}

func rotationFromColumns(x, y, z types.Position3D) types.Rotation {
	return types.Rotation{
		R11: x.X, R12: y.X, R13: z.X,
		R21: x.Y, R22: y.Y, R23: z.Y,
		R31: x.Z, R32: y.Z, R33: z.Z,
	}
}

// AxisRotationProjection returns the rotation about axis that is closest to
// r in the Frobenius sense.
func AxisRotationProjection(axis types.Position3D, r types.Rotation) (types.Rotation, error) {
	a, err := axis.Normalize()
	if err != nil {
		return types.RotationIdentity(), fmt.Errorf("AxisRotationProjection: %w", ErrNullAxis)
	}
	q := QuaternionFromTransform(types.TransformFromRotation(r))
	// Twist part of the swing-twist decomposition of q about a.
	d := q.X*a.X + q.Y*a.Y + q.Z*a.Z
	twist := types.Quaternion{W: q.W, X: d * a.X, Y: d * a.Y, Z: d * a.Z}
	n := twist.Norm()
	if n < nullProjection {
		return types.RotationIdentity(), fmt.Errorf("AxisRotationProjection: %w", ErrNullProjection)
	}
	return twist.Scale(1 / n).Rotation(), nil
}

// AxisRotationProjectionTransform projects the rotation block of h about
// axis and keeps its translation.
func AxisRotationProjectionTransform(axis types.Position3D, h types.Transform) (types.Transform, error) {
	r, err := AxisRotationProjection(axis, h.Rotation())
	if err != nil {
		return h, err
	}
	out := types.TransformFromRotation(r)
	out.R14, out.R24, out.R34 = h.R14, h.R24, h.R34
	return out, nil
}

// OrthogonalSpace returns a rotation whose third column is the normalized
// axis and whose first two columns span the plane orthogonal to it.
func OrthogonalSpace(axis types.Position3D) (types.Transform, error) {
	a3, err := axis.Normalize()
	if err != nil {
		return types.TransformIdentity(), fmt.Errorf("OrthogonalSpace: %w", ErrNullAxis)
	}
	var v types.Position3D
	switch {
	case math.Abs(a3.X) > orthogonalSpaceMin:
		v = types.Position3D{X: -a3.Y, Y: a3.X}
	case math.Abs(a3.Y) > orthogonalSpaceMin:
		v = types.Position3D{Y: -a3.Z, Z: a3.Y}
	default:
		v = types.Position3D{X: a3.Z}
	}
	a1, err := v.Normalize()
	if err != nil {
		return types.TransformIdentity(), fmt.Errorf("OrthogonalSpace: %w", ErrNullAxis)
	}
	a2, err := a3.Cross(a1).Normalize()
	if err != nil {
		return types.TransformIdentity(), fmt.Errorf("OrthogonalSpace: %w", ErrNullAxis)
	}
	return types.TransformFromRotation(rotationFromColumns(a1, a2, a3)), nil
}
