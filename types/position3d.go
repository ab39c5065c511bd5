package types

import "math"

// Position3D is a point or vector in space.
type Position3D struct {
	X, Y, Z float64
}

// Position3DFromSlice builds a Position3D from three values.
func Position3DFromSlice(v []float64) (Position3D, error) {
	if err := validateSize("Position3D", len(v), 3); err != nil {
		return Position3D{}, err
	}
	return Position3D{X: v[0], Y: v[1], Z: v[2]}, nil
}

// Add returns the component-wise sum of p and o.
func (p Position3D) Add(o Position3D) Position3D { return Position3D{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }

// Sub returns the component-wise difference p - o.
func (p Position3D) Sub(o Position3D) Position3D { return Position3D{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }

// Neg returns p with every component negated.
func (p Position3D) Neg() Position3D { return Position3D{-p.X, -p.Y, -p.Z} }

// Scale multiplies every component of p by k.
func (p Position3D) Scale(k float64) Position3D { return Position3D{p.X * k, p.Y * k, p.Z * k} }

// Div divides every component by k.
func (p Position3D) Div(k float64) (Position3D, error) {
	if err := validateDivisor("Position3D.Div", k); err != nil {
		return Position3D{}, err
	}
	return p.Scale(1 / k), nil
}

// IsNear reports whether each component differs by at most eps.
func (p Position3D) IsNear(o Position3D, eps float64) bool {
	return near(p.X, o.X, eps) && near(p.Y, o.Y, eps) && near(p.Z, o.Z, eps)
}

// DistanceSquared returns the squared Euclidean distance between p and o.
func (p Position3D) DistanceSquared(o Position3D) float64 { return p.Sub(o).NormSquared() }

// Distance returns the Euclidean distance between p and o.
func (p Position3D) Distance(o Position3D) float64 { return math.Sqrt(p.DistanceSquared(o)) }

// NormSquared returns the squared Euclidean norm of p.
func (p Position3D) NormSquared() float64 { return p.X*p.X + p.Y*p.Y + p.Z*p.Z }

// Norm returns the Euclidean norm of p.
func (p Position3D) Norm() float64 { return math.Sqrt(p.NormSquared()) }

// Normalize returns the unit vector with the direction of p.
func (p Position3D) Normalize() (Position3D, error) {
	n := p.Norm()
	if n == 0 {
		return Position3D{}, validateDivisor("Position3D.Normalize", n)
	}
	return p.Scale(1 / n), nil
}

// Dot returns the dot product of p and o.
func (p Position3D) Dot(o Position3D) float64 { return p.X*o.X + p.Y*o.Y + p.Z*o.Z }

// Cross returns the vector product p x o.
func (p Position3D) Cross(o Position3D) Position3D {
	return Position3D{
		X: p.Y*o.Z - p.Z*o.Y,
		Y: p.Z*o.X - p.X*o.Z,
		Z: p.X*o.Y - p.Y*o.X,
	}
}

// IsUnitVector reports whether the norm of p is 1 within eps.
func (p Position3D) IsUnitVector(eps float64) bool {
	return math.Abs(p.Norm()-1) <= eps
}

// IsOrthogonal reports whether p and o are orthogonal within eps.
func (p Position3D) IsOrthogonal(o Position3D, eps float64) bool {
	return math.Abs(p.Dot(o)) <= eps
}

// ToSlice returns [X, Y, Z].
func (p Position3D) ToSlice() []float64 { return []float64{p.X, p.Y, p.Z} }
