package types

import "math"

// Position2D is a point or vector in the plane.
type Position2D struct {
	X, Y float64
}

// Position2DFromSlice builds a Position2D from two values.
func Position2DFromSlice(v []float64) (Position2D, error) {
	if err := validateSize("Position2D", len(v), 2); err != nil {
		return Position2D{}, err
	}
	return Position2D{X: v[0], Y: v[1]}, nil
}

// Position2DFromPolar returns the point at the given radius and angle.
func Position2DFromPolar(radius, angle float64) Position2D {
	return Position2D{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
}

// Add returns the component-wise sum of p and o.
func (p Position2D) Add(o Position2D) Position2D { return Position2D{p.X + o.X, p.Y + o.Y} }

// Sub returns the component-wise difference p - o.
func (p Position2D) Sub(o Position2D) Position2D { return Position2D{p.X - o.X, p.Y - o.Y} }

// Neg returns p with every component negated.
func (p Position2D) Neg() Position2D { return Position2D{-p.X, -p.Y} }

// Scale multiplies every component of p by k.
func (p Position2D) Scale(k float64) Position2D { return Position2D{p.X * k, p.Y * k} }

// Div divides every component by k.
func (p Position2D) Div(k float64) (Position2D, error) {
	if err := validateDivisor("Position2D.Div", k); err != nil {
		return Position2D{}, err
	}
	return p.Scale(1 / k), nil
}

// IsNear reports whether each component differs by at most eps.
func (p Position2D) IsNear(o Position2D, eps float64) bool {
	return near(p.X, o.X, eps) && near(p.Y, o.Y, eps)
}

// DistanceSquared returns the squared Euclidean distance between p and o.
func (p Position2D) DistanceSquared(o Position2D) float64 {
	dx, dy := p.X-o.X, p.Y-o.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between p and o.
func (p Position2D) Distance(o Position2D) float64 { return math.Sqrt(p.DistanceSquared(o)) }

// NormSquared returns the squared Euclidean norm of p.
func (p Position2D) NormSquared() float64 { return p.X*p.X + p.Y*p.Y }

// Norm returns the Euclidean norm of p.
func (p Position2D) Norm() float64 { return math.Hypot(p.X, p.Y) }

// Normalize returns the unit vector with the direction of p.
func (p Position2D) Normalize() (Position2D, error) {
	n := p.Norm()
	if n == 0 {
		return Position2D{}, validateDivisor("Position2D.Normalize", n)
	}
	return p.Scale(1 / n), nil
}

// Dot returns the dot product of p and o.
func (p Position2D) Dot(o Position2D) float64 { return p.X*o.X + p.Y*o.Y }

// Cross returns the z component of the 3D cross product of p and o.
func (p Position2D) Cross(o Position2D) float64 { return p.X*o.Y - p.Y*o.X }

// Angle returns the polar angle of p in (-pi, pi].
func (p Position2D) Angle() float64 { return math.Atan2(p.Y, p.X) }

// ToSlice returns [X, Y].
func (p Position2D) ToSlice() []float64 { return []float64{p.X, p.Y} }
