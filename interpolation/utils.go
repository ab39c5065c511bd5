package interpolation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/aldebaran/libalmath/core"
	"github.com/aldebaran/libalmath/tools"
	"github.com/aldebaran/libalmath/types"
)

const (
	minFinalTime = 1e-5
	timeEpsilon  = 1e-5
	// Relative slack when counting samples in a duration.
	stepTolerance = 1e-9

	// Reference Cartesian velocity limits: 0.15 m/s and 2π rad/s.
	maxLinearVelocity  = 0.15
	maxAngularVelocity = 2 * math.Pi
)

// FinalTime rounds t to the nearest multiple of period. A result of zero is
// replaced by one period. A non-positive period leaves t unchanged.
func FinalTime(period, t float64) float64 {
	if period <= 0 {
		return t
	}
	t = period * math.Floor(t/period+0.5)
	if t < minFinalTime {
		t = period
	}
	return t
}

// JointFinalTime returns the shortest duration of a cubic joint move from
// pInit to pFinal, with boundary velocities vInit and vFinal, whose peak
// velocity stays within vMaxAbs. The result is rounded with FinalTime.
func JointFinalTime(pInit, pFinal, vInit, vFinal, vMaxAbs, period float64) (float64, error) {
	if vMaxAbs <= 0 {
		return 0, fmt.Errorf("JointFinalTime: %w", ErrInvalidVelocity)
	}
	vInit = core.Clamp(vInit, -vMaxAbs, vMaxAbs)
	vFinal = core.Clamp(vFinal, -vMaxAbs, vMaxAbs)

	// Sign of the peak velocity of the unit-duration cubic.
	s2 := 3*(pFinal-pInit) - 2*vInit - vFinal
	s3 := 2*(pInit-pFinal) + vInit + vFinal
	tMax := -s2 / (3 * s3)
	sign := vInit + 2*s2*tMax + 3*s3*tMax*tMax
	vMax := vMaxAbs
	if sign < 0 {
		vMax = -vMax
	}

	t := cubicDuration(pFinal-pInit, vInit, vFinal, vMax)
	return FinalTime(period, math.Abs(t)), nil
}

// cubicDuration solves for the duration T of a cubic Hermite segment of
// amplitude d whose extremal velocity equals vMax. With u = d/T the
// condition reads 9u² - 6u(vMax+v0+v1) + tempo = 0.
func cubicDuration(d, v0, v1, vMax float64) float64 {
	if v0 == 0 && v1 == 0 {
		return 3 * d / (2 * vMax)
	}
	sum := vMax + v0 + v1
	tempo := 3*(v0+v1)*vMax + v1*v1 + v0*v1 + v0*v0
	if tempo == 0 {
		if sum == 0 {
			return 3 * d / (2 * vMax)
		}
		return 3 * d / (2 * sum)
	}
	disc := vMax*vMax - (v0+v1)*vMax + v0*v1
	if disc <= 0 {
		return 3 * d / (2 * vMax)
	}
	if vMax > 0 {
		return 3 * d * (sum - math.Sqrt(disc)) / tempo
	}
	return 3 * d * (sum + math.Sqrt(disc)) / tempo
}

// CartesianFinalTime returns the duration needed to move from hInit to
// hFinal when every twist component is limited to scale times the
// reference limits of 0.15 m/s and 2π rad/s.
func CartesianFinalTime(hInit, hFinal types.Transform, scale, period float64) (float64, error) {
	if scale <= 0 {
		return 0, fmt.Errorf("CartesianFinalTime: %w", ErrInvalidVelocity)
	}
	v := tools.ChangeReferenceVelocity6D(hInit, tools.TransformLogarithm(hInit.Diff(hFinal))).ToSlice()

	limits := []float64{
		maxLinearVelocity, maxLinearVelocity, maxLinearVelocity,
		maxAngularVelocity, maxAngularVelocity, maxAngularVelocity,
	}
	floats.Scale(scale, limits)
	for i := range v {
		v[i] = math.Abs(v[i])
	}
	floats.Div(v, limits)
	return FinalTime(period, math.Max(floats.Max(v), 0)), nil
}
