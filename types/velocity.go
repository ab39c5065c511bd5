package types

import "math"

// Velocity3D is a linear velocity.
type Velocity3D struct {
	XD, YD, ZD float64
}

// Add returns the component-wise sum of v and o.
func (v Velocity3D) Add(o Velocity3D) Velocity3D { return Velocity3D{v.XD + o.XD, v.YD + o.YD, v.ZD + o.ZD} }

// Sub returns the component-wise difference v - o.
func (v Velocity3D) Sub(o Velocity3D) Velocity3D { return Velocity3D{v.XD - o.XD, v.YD - o.YD, v.ZD - o.ZD} }

// Neg returns v with every component negated.
func (v Velocity3D) Neg() Velocity3D { return v.Scale(-1) }

// Scale multiplies every component of v by k.
func (v Velocity3D) Scale(k float64) Velocity3D { return Velocity3D{v.XD * k, v.YD * k, v.ZD * k} }

// Div divides every component by k.
func (v Velocity3D) Div(k float64) (Velocity3D, error) {
	if err := validateDivisor("Velocity3D.Div", k); err != nil {
		return Velocity3D{}, err
	}
	return v.Scale(1 / k), nil
}

// IsNear reports whether every component of v is within eps of o.
func (v Velocity3D) IsNear(o Velocity3D, eps float64) bool {
	return near(v.XD, o.XD, eps) && near(v.YD, o.YD, eps) && near(v.ZD, o.ZD, eps)
}

// Norm returns the Euclidean norm of v.
func (v Velocity3D) Norm() float64 { return math.Sqrt(v.XD*v.XD + v.YD*v.YD + v.ZD*v.ZD) }

// Normalize returns v scaled to unit norm. A zero vector is an error.
func (v Velocity3D) Normalize() (Velocity3D, error) {
	n := v.Norm()
	if n == 0 {
		return Velocity3D{}, validateDivisor("Velocity3D.Normalize", n)
	}
	return v.Scale(1 / n), nil
}

// ToSlice returns [XD, YD, ZD].
func (v Velocity3D) ToSlice() []float64 { return []float64{v.XD, v.YD, v.ZD} }

// Velocity6D is a twist: linear velocity followed by angular velocity.
type Velocity6D struct {
	XD, YD, ZD    float64
	WXD, WYD, WZD float64
}

// Velocity6DFromSlice builds a Velocity6D from six values.
func Velocity6DFromSlice(v []float64) (Velocity6D, error) {
	if err := validateSize("Velocity6D", len(v), 6); err != nil {
		return Velocity6D{}, err
	}
	return Velocity6D{v[0], v[1], v[2], v[3], v[4], v[5]}, nil
}

// Add returns the component-wise sum of v and o.
func (v Velocity6D) Add(o Velocity6D) Velocity6D {
	return Velocity6D{v.XD + o.XD, v.YD + o.YD, v.ZD + o.ZD, v.WXD + o.WXD, v.WYD + o.WYD, v.WZD + o.WZD}
}

// Sub returns the component-wise difference v - o.
func (v Velocity6D) Sub(o Velocity6D) Velocity6D { return v.Add(o.Neg()) }

// Neg returns v with every component negated.
func (v Velocity6D) Neg() Velocity6D { return v.Scale(-1) }

// Scale multiplies every component of v by k.
func (v Velocity6D) Scale(k float64) Velocity6D {
	return Velocity6D{v.XD * k, v.YD * k, v.ZD * k, v.WXD * k, v.WYD * k, v.WZD * k}
}

// Div divides every component by k.
func (v Velocity6D) Div(k float64) (Velocity6D, error) {
	if err := validateDivisor("Velocity6D.Div", k); err != nil {
		return Velocity6D{}, err
	}
	return v.Scale(1 / k), nil
}

// IsNear reports whether every component of v is within eps of o.
func (v Velocity6D) IsNear(o Velocity6D, eps float64) bool {
	return near(v.XD, o.XD, eps) && near(v.YD, o.YD, eps) && near(v.ZD, o.ZD, eps) &&
		near(v.WXD, o.WXD, eps) && near(v.WYD, o.WYD, eps) && near(v.WZD, o.WZD, eps)
}

// Norm returns the Euclidean norm of v.
func (v Velocity6D) Norm() float64 {
	return math.Sqrt(v.XD*v.XD + v.YD*v.YD + v.ZD*v.ZD + v.WXD*v.WXD + v.WYD*v.WYD + v.WZD*v.WZD)
}

// Normalize returns v scaled to unit norm. A zero vector is an error.
func (v Velocity6D) Normalize() (Velocity6D, error) {
	n := v.Norm()
	if n == 0 {
		return Velocity6D{}, validateDivisor("Velocity6D.Normalize", n)
	}
	return v.Scale(1 / n), nil
}

// ToSlice returns [XD, YD, ZD, WXD, WYD, WZD].
func (v Velocity6D) ToSlice() []float64 { return []float64{v.XD, v.YD, v.ZD, v.WXD, v.WYD, v.WZD} }
