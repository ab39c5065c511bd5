package types

import "math"

// Position6D is a position with an Euler orientation (roll WX, pitch WY,
// yaw WZ).
type Position6D struct {
	X, Y, Z    float64
	WX, WY, WZ float64
}

// Position6DFromSlice builds a Position6D from six values.
func Position6DFromSlice(v []float64) (Position6D, error) {
	if err := validateSize("Position6D", len(v), 6); err != nil {
		return Position6D{}, err
	}
	return Position6D{v[0], v[1], v[2], v[3], v[4], v[5]}, nil
}

// Add returns the component-wise sum of p and o.
func (p Position6D) Add(o Position6D) Position6D {
	return Position6D{p.X + o.X, p.Y + o.Y, p.Z + o.Z, p.WX + o.WX, p.WY + o.WY, p.WZ + o.WZ}
}

// Sub returns the component-wise difference p - o.
func (p Position6D) Sub(o Position6D) Position6D {
	return Position6D{p.X - o.X, p.Y - o.Y, p.Z - o.Z, p.WX - o.WX, p.WY - o.WY, p.WZ - o.WZ}
}

// Neg returns p with every component negated.
func (p Position6D) Neg() Position6D { return p.Scale(-1) }

// Scale multiplies every component of p by k.
func (p Position6D) Scale(k float64) Position6D {
	return Position6D{p.X * k, p.Y * k, p.Z * k, p.WX * k, p.WY * k, p.WZ * k}
}

// Div divides every component by k.
func (p Position6D) Div(k float64) (Position6D, error) {
	if err := validateDivisor("Position6D.Div", k); err != nil {
		return Position6D{}, err
	}
	return p.Scale(1 / k), nil
}

// IsNear reports whether each of the six components differs by at most eps.
func (p Position6D) IsNear(o Position6D, eps float64) bool {
	return near(p.X, o.X, eps) && near(p.Y, o.Y, eps) && near(p.Z, o.Z, eps) &&
		near(p.WX, o.WX, eps) && near(p.WY, o.WY, eps) && near(p.WZ, o.WZ, eps)
}

// DistanceSquared is the squared translation distance; orientation is ignored.
func (p Position6D) DistanceSquared(o Position6D) float64 {
	dx, dy, dz := p.X-o.X, p.Y-o.Y, p.Z-o.Z
	return dx*dx + dy*dy + dz*dz
}

// Distance is the translation distance; orientation is ignored.
func (p Position6D) Distance(o Position6D) float64 { return math.Sqrt(p.DistanceSquared(o)) }

// Norm is the euclidean norm of all six components.
func (p Position6D) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z + p.WX*p.WX + p.WY*p.WY + p.WZ*p.WZ)
}

// Normalize scales p so that Norm is 1.
func (p Position6D) Normalize() (Position6D, error) {
	n := p.Norm()
	if n == 0 {
		return Position6D{}, validateDivisor("Position6D.Normalize", n)
	}
	return p.Scale(1 / n), nil
}

// ToSlice returns [X, Y, Z, WX, WY, WZ].
func (p Position6D) ToSlice() []float64 { return []float64{p.X, p.Y, p.Z, p.WX, p.WY, p.WZ} }
