package types

import (
	"fmt"
	"math"
)

// Pose2D is a planar position with a heading.
type Pose2D struct {
	X, Y, Theta float64
}

// Pose2DFromSlice builds a pose from (x, y, theta).
func Pose2DFromSlice(v []float64) (Pose2D, error) {
	if err := validateSize("Pose2D", len(v), 3); err != nil {
		return Pose2D{}, err
	}
	return Pose2D{X: v[0], Y: v[1], Theta: v[2]}, nil
}

// Pose2DFromPolar returns the pose at radius and angle, heading along angle.
func Pose2DFromPolar(radius, angle float64) Pose2D {
	return Pose2D{X: radius * math.Cos(angle), Y: radius * math.Sin(angle), Theta: angle}
}

// Add returns the component-wise sum of p and o.
func (p Pose2D) Add(o Pose2D) Pose2D { return Pose2D{p.X + o.X, p.Y + o.Y, p.Theta + o.Theta} }

// Sub returns the component-wise difference p - o.
func (p Pose2D) Sub(o Pose2D) Pose2D { return Pose2D{p.X - o.X, p.Y - o.Y, p.Theta - o.Theta} }

// Neg returns p with every component negated.
func (p Pose2D) Neg() Pose2D { return Pose2D{-p.X, -p.Y, -p.Theta} }

// Scale multiplies every component of p by k.
func (p Pose2D) Scale(k float64) Pose2D { return Pose2D{p.X * k, p.Y * k, p.Theta * k} }

// Div divides every component by k.
func (p Pose2D) Div(k float64) (Pose2D, error) {
	if err := validateDivisor("Pose2D.Div", k); err != nil {
		return Pose2D{}, err
	}
	return p.Scale(1 / k), nil
}

// Mul composes p with o expressed in the frame of p.
func (p Pose2D) Mul(o Pose2D) Pose2D {
	s, c := math.Sincos(p.Theta)
	return Pose2D{
		X:     p.X + c*o.X - s*o.Y,
		Y:     p.Y + s*o.X + c*o.Y,
		Theta: p.Theta + o.Theta,
	}
}

// Inverse returns the pose q such that p.Mul(q) is the identity.
func (p Pose2D) Inverse() Pose2D {
	theta := -p.Theta
	s, c := math.Sincos(theta)
	return Pose2D{
		X:     -(p.X*c - p.Y*s),
		Y:     -(p.Y*c + p.X*s),
		Theta: theta,
	}
}

// Diff returns o expressed in the frame of p: p.Inverse().Mul(o).
func (p Pose2D) Diff(o Pose2D) Pose2D { return p.Inverse().Mul(o) }

// DistanceSquared ignores headings.
func (p Pose2D) DistanceSquared(o Pose2D) float64 {
	dx, dy := p.X-o.X, p.Y-o.Y
	return dx*dx + dy*dy
}

// Distance ignores headings.
func (p Pose2D) Distance(o Pose2D) float64 { return math.Sqrt(p.DistanceSquared(o)) }

// Norm is the norm of the translation part.
func (p Pose2D) Norm() float64 { return math.Hypot(p.X, p.Y) }

// Normalize scales the translation to unit norm and keeps the heading.
// Translations shorter than 1e-4 cannot be normalized.
func (p Pose2D) Normalize() (Pose2D, error) {
	n := p.Norm()
	if n < 1e-4 {
		return Pose2D{}, fmt.Errorf("Pose2D.Normalize: %w: norm %v", ErrDivisionByZero, n)
	}
	return Pose2D{X: p.X / n, Y: p.Y / n, Theta: p.Theta}, nil
}

// Angle returns the polar angle of the translation.
func (p Pose2D) Angle() float64 { return math.Atan2(p.Y, p.X) }

// IsNear reports whether every component of p is within eps of o.
func (p Pose2D) IsNear(o Pose2D, eps float64) bool {
	return near(p.X, o.X, eps) && near(p.Y, o.Y, eps) && near(p.Theta, o.Theta, eps)
}

// ToSlice returns [X, Y, Theta].
func (p Pose2D) ToSlice() []float64 { return []float64{p.X, p.Y, p.Theta} }
