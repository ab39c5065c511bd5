package tools

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/aldebaran/libalmath/types"
)

// expJacobian returns the 12x6 derivative of the translation and rotation
// entries of VelocityExponential(x) with respect to x.
func expJacobian(x types.Velocity6D) (*mat.Dense, types.Transform) {
	f := func(y, in []float64) {
		h := VelocityExponential(types.Velocity6D{
			XD: in[0], YD: in[1], ZD: in[2], WXD: in[3], WYD: in[4], WZD: in[5],
		})
		copy(y, []float64{
			h.R14, h.R24, h.R34,
			h.R11, h.R12, h.R13,
			h.R21, h.R22, h.R23,
			h.R31, h.R32, h.R33,
		})
	}
	jac := mat.NewDense(12, 6, nil)
	fd.Jacobian(jac, f, x.ToSlice(), &fd.JacobianSettings{Formula: fd.Central})
	return jac, VelocityExponential(x)
}

// TwistFromLogRate maps a rate of change dx of the logarithm coordinates x
// to the twist of exp(x), expressed in the frame x is measured from: the
// linear part is the velocity of the origin, the angular part comes from
// Ṙ·Rᵀ.
func TwistFromLogRate(x, dx types.Velocity6D) types.Velocity6D {
	jac, h := expJacobian(x)
	return twistFromJacobian(jac, h, dx.ToSlice())
}

func twistFromJacobian(jac *mat.Dense, h types.Transform, dx []float64) types.Velocity6D {
	var d mat.VecDense
	d.MulVec(jac, mat.NewVecDense(6, dx))

	dr := types.Rotation{
		R11: d.AtVec(3), R12: d.AtVec(4), R13: d.AtVec(5),
		R21: d.AtVec(6), R22: d.AtVec(7), R23: d.AtVec(8),
		R31: d.AtVec(9), R32: d.AtVec(10), R33: d.AtVec(11),
	}
	s := dr.Mul(h.Rotation().Transpose())
	return types.Velocity6D{
		XD:  d.AtVec(0),
		YD:  d.AtVec(1),
		ZD:  d.AtVec(2),
		WXD: 0.5 * (s.R32 - s.R23),
		WYD: 0.5 * (s.R13 - s.R31),
		WZD: 0.5 * (s.R21 - s.R12),
	}
}

// singularAngleTolerance is how close the rotation angle of x may come to a
// nonzero multiple of 2π before LogRateFromTwist gives up.
const singularAngleTolerance = 1e-6

// LogRateFromTwist is the inverse of TwistFromLogRate: it returns the rate
// of the logarithm coordinates that produces the twist v at x. The inverse
// does not exist when the rotation angle of x is 2πk for k >= 1.
func LogRateFromTwist(x, v types.Velocity6D) (types.Velocity6D, error) {
	theta := math.Sqrt(x.WXD*x.WXD + x.WYD*x.WYD + x.WZD*x.WZD)
	if k := math.Round(theta / (2 * math.Pi)); k >= 1 && math.Abs(theta-2*math.Pi*k) < singularAngleTolerance {
		return types.Velocity6D{}, fmt.Errorf("LogRateFromTwist: %w: rotation angle %v", ErrSingularLogDerivative, theta)
	}
	jac, h := expJacobian(x)

	m := mat.NewDense(6, 6, nil)
	for j := range 6 {
		e := make([]float64, 6)
		e[j] = 1
		m.SetCol(j, twistFromJacobian(jac, h, e).ToSlice())
	}

	var out mat.VecDense
	if err := out.SolveVec(m, mat.NewVecDense(6, v.ToSlice())); err != nil {
		return types.Velocity6D{}, fmt.Errorf("LogRateFromTwist: %w: %w", ErrSingularLogDerivative, err)
	}
	return types.Velocity6D{
		XD: out.AtVec(0), YD: out.AtVec(1), ZD: out.AtVec(2),
		WXD: out.AtVec(3), WYD: out.AtVec(4), WZD: out.AtVec(5),
	}, nil
}
