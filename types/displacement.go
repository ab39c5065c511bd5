package types

// Displacement is a rigid displacement: a translation P and a rotation Q.
type Displacement struct {
	P Position3D
	Q Quaternion
}

// DisplacementIdentity returns the null displacement.
func DisplacementIdentity() Displacement { return Displacement{Q: QuaternionIdentity()} }

// Mul composes d with o expressed in the frame of d.
func (d Displacement) Mul(o Displacement) Displacement {
	return Displacement{
		P: d.P.Add(d.Q.Rotate(o.P)),
		Q: d.Q.Mul(o.Q),
	}
}

// IsNear reports whether both parts of d are within eps of o.
func (d Displacement) IsNear(o Displacement, eps float64) bool {
	return d.P.IsNear(o.P, eps) && d.Q.IsNear(o.Q, eps)
}
