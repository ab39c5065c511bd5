package tools

import (
	"fmt"
	"math"

	"github.com/aldebaran/libalmath/core"
	"github.com/aldebaran/libalmath/types"
)

// ClipData clips *v into [lo, hi] and reports whether it was modified.
func ClipData(lo, hi float64, v *float64) bool { return core.ClipData(lo, hi, v) }

// Position6DFromVelocity6D reinterprets a twist as a 6D position.
func Position6DFromVelocity6D(v types.Velocity6D) types.Position6D {
	return types.Position6D{X: v.XD, Y: v.YD, Z: v.ZD, WX: v.WXD, WY: v.WYD, WZ: v.WZD}
}

// Velocity6DFromScaledPosition6D returns k·p as a twist.
func Velocity6DFromScaledPosition6D(k float64, p types.Position6D) types.Velocity6D {
	return types.Velocity6D{
		XD: k * p.X, YD: k * p.Y, ZD: k * p.Z,
		WXD: k * p.WX, WYD: k * p.WY, WZD: k * p.WZ,
	}
}

// Velocity3DFromScaledPosition3D returns k·p as a linear velocity.
func Velocity3DFromScaledPosition3D(k float64, p types.Position3D) types.Velocity3D {
	return types.Velocity3D{XD: k * p.X, YD: k * p.Y, ZD: k * p.Z}
}

func Position2DFromPose2D(p types.Pose2D) types.Position2D {
	return types.Position2D{X: p.X, Y: p.Y}
}

func Pose2DFromPosition2D(p types.Position2D, theta float64) types.Pose2D {
	return types.Pose2D{X: p.X, Y: p.Y, Theta: theta}
}

func Position3DFromPosition6D(p types.Position6D) types.Position3D {
	return types.Position3D{X: p.X, Y: p.Y, Z: p.Z}
}

// Position6DFromPose2D lifts a planar pose into the z = 0 plane.
func Position6DFromPose2D(p types.Pose2D) types.Position6D {
	return types.Position6D{X: p.X, Y: p.Y, WZ: p.Theta}
}

// Pose2DFromPosition6D projects p onto the ground plane, keeping its yaw.
func Pose2DFromPosition6D(p types.Position6D) types.Pose2D {
	return types.Pose2D{X: p.X, Y: p.Y, Theta: p.WZ}
}

func QuaternionFromRotation3D(r types.Rotation3D) types.Quaternion {
	return QuaternionFromTransform(TransformFromRotation3D(r))
}

func Rotation3DFromQuaternion(q types.Quaternion) types.Rotation3D {
	return Rotation3DFromRotation(q.Rotation())
}

// RotationFromAngleDirection returns the rotation of theta about axis. The
// axis does not need to be normalized.
func RotationFromAngleDirection(theta float64, axis types.Position3D) (types.Rotation, error) {
	u, err := axis.Normalize()
	if err != nil {
		return types.RotationIdentity(), fmt.Errorf("RotationFromAngleDirection: %w", ErrNullAxis)
	}
	return types.RotationFromAngleDirection(theta, u.X, u.Y, u.Z)
}

// ChangeReferencePose2D expresses pose in a frame rotated by theta about z.
// The heading is a rotation about the same axis and is left unchanged.
func ChangeReferencePose2D(theta float64, pose types.Pose2D) types.Pose2D {
	c, s := math.Cos(theta), math.Sin(theta)
	return types.Pose2D{
		X:     c*pose.X - s*pose.Y,
		Y:     s*pose.X + c*pose.Y,
		Theta: pose.Theta,
	}
}
