package types

// PositionAndVelocity pairs a scalar position Q with its velocity DQ.
type PositionAndVelocity struct {
	Q, DQ float64
}

// IsNear reports whether both parts of p are within eps of o.
func (p PositionAndVelocity) IsNear(o PositionAndVelocity, eps float64) bool {
	return near(p.Q, o.Q, eps) && near(p.DQ, o.DQ, eps)
}

// TransformAndVelocity6D pairs a transform with a twist.
type TransformAndVelocity6D struct {
	H Transform
	V Velocity6D
}

// IsNear reports whether both parts of t are within eps of o.
func (t TransformAndVelocity6D) IsNear(o TransformAndVelocity6D, eps float64) bool {
	return t.H.IsNear(o.H, eps) && t.V.IsNear(o.V, eps)
}
