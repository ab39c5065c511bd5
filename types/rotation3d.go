package types

import "math"

// Rotation3D holds Euler angles: WX about x, WY about y, WZ about z. The
// matching rotation matrix is Rz(WZ)*Ry(WY)*Rx(WX).
type Rotation3D struct {
	WX, WY, WZ float64
}

// Add returns the component-wise sum of r and o.
func (r Rotation3D) Add(o Rotation3D) Rotation3D { return Rotation3D{r.WX + o.WX, r.WY + o.WY, r.WZ + o.WZ} }

// Sub returns the component-wise difference r - o.
func (r Rotation3D) Sub(o Rotation3D) Rotation3D { return Rotation3D{r.WX - o.WX, r.WY - o.WY, r.WZ - o.WZ} }

// Scale multiplies every component of r by k.
func (r Rotation3D) Scale(k float64) Rotation3D { return Rotation3D{r.WX * k, r.WY * k, r.WZ * k} }

// Div divides every angle by k.
func (r Rotation3D) Div(k float64) (Rotation3D, error) {
	if err := validateDivisor("Rotation3D.Div", k); err != nil {
		return Rotation3D{}, err
	}
	return r.Scale(1 / k), nil
}

// IsNear reports whether every component of r is within eps of o.
func (r Rotation3D) IsNear(o Rotation3D, eps float64) bool {
	return near(r.WX, o.WX, eps) && near(r.WY, o.WY, eps) && near(r.WZ, o.WZ, eps)
}

// Norm returns the Euclidean norm of r.
func (r Rotation3D) Norm() float64 { return math.Sqrt(r.WX*r.WX + r.WY*r.WY + r.WZ*r.WZ) }

// ToSlice returns [WX, WY, WZ].
func (r Rotation3D) ToSlice() []float64 { return []float64{r.WX, r.WY, r.WZ} }
