package interpolation

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/aldebaran/libalmath/core"
	"github.com/aldebaran/libalmath/types"
)

// Articular is a clamped cubic spline through joint positions at given
// times, with prescribed velocities at both ends. An Articular must be
// initialized with one of the Init methods before use.
type Articular struct {
	cfg core.Config

	times  []float64
	points []float64
	vInit  float64
	vFinal float64

	// Per-segment polynomial s1 + s2·dt + s3·dt² + s4·dt³.
	s1, s2, s3, s4 []float64

	period   float64
	finished bool
	calls    int
}

// NewArticular returns an uninitialized spline.
func NewArticular(opts ...core.Option) *Articular {
	return &Articular{cfg: core.ApplyOptions(opts...), finished: true}
}

// Init builds a spline through points with zero boundary velocities.
func (a *Articular) Init(times, points []float64, period float64) error {
	return a.InitWithVelocities(times, points, 0, 0, false, period)
}

// InitSegment builds a single cubic segment.
func (a *Articular) InitSegment(tInit, tFinal, pInit, pFinal, vInit, vFinal, period float64) error {
	return a.InitWithVelocities([]float64{tInit, tFinal}, []float64{pInit, pFinal}, vInit, vFinal, false, period)
}

// InitWithVelocities builds the spline through points at times with the
// given boundary velocities. The last time is rounded with FinalTime unless
// rounding would break the ordering. A hot start keeps the call counter.
func (a *Articular) InitWithVelocities(times, points []float64, vInit, vFinal float64, hotStart bool, period float64) error {
	if len(times) < 2 || len(points) < 2 {
		return fmt.Errorf("Articular.Init: %w", ErrTooFewPoints)
	}
	if len(times) != len(points) {
		return fmt.Errorf("Articular.Init: %w: %d times, %d points", ErrSizeMismatch, len(times), len(points))
	}
	for i := range len(times) - 1 {
		if times[i] >= times[i+1] {
			return fmt.Errorf("Articular.Init: %w: t[%d]=%v >= t[%d]=%v", ErrInvalidTimes, i, times[i], i+1, times[i+1])
		}
	}

	a.times = append([]float64(nil), times...)
	a.points = append([]float64(nil), points...)
	a.vInit, a.vFinal = vInit, vFinal
	a.period = period
	a.finished = false
	if !hotStart {
		a.calls = 0
	}

	last := len(a.times) - 1
	if tf := FinalTime(period, a.times[last]); tf > a.times[last-1] {
		a.times[last] = tf
	}

	if last == 1 {
		a.initHermite()
		return nil
	}
	return a.initSpline()
}

func (a *Articular) initHermite() {
	h := a.times[1] - a.times[0]
	ih := 1 / h
	ih2 := ih * ih
	p0, p1 := a.points[0], a.points[1]
	a.s1 = []float64{p0}
	a.s2 = []float64{a.vInit}
	a.s3 = []float64{ih2 * (3*(p1-p0) - h*(2*a.vInit+a.vFinal))}
	a.s4 = []float64{ih2 * (2*ih*(p0-p1) + a.vInit + a.vFinal)}
}

// initSpline solves for the second derivatives m at the knots. The end
// values m[0] and m[n] are eliminated with the clamped boundary conditions,
// leaving a symmetric tridiagonal system in m[1..n-1].
func (a *Articular) initSpline() error {
	n := len(a.times) - 1
	h := make([]float64, n)
	d := make([]float64, n)
	for i := range n {
		h[i] = a.times[i+1] - a.times[i]
		d[i] = (a.points[i+1] - a.points[i]) / h[i]
	}

	k := n - 1
	sys := mat.NewDense(k, k, nil)
	rhs := mat.NewVecDense(k, nil)
	for r := range k {
		sys.Set(r, r, 2*(h[r]+h[r+1]))
		if r > 0 {
			sys.Set(r, r-1, h[r])
		}
		if r < k-1 {
			sys.Set(r, r+1, h[r+1])
		}
		rhs.SetVec(r, 6*(d[r+1]-d[r]))
	}
	sys.Set(0, 0, sys.At(0, 0)-0.5*h[0])
	rhs.SetVec(0, rhs.AtVec(0)-3*(d[0]-a.vInit))
	sys.Set(k-1, k-1, sys.At(k-1, k-1)-0.5*h[n-1])
	rhs.SetVec(k-1, rhs.AtVec(k-1)-3*(a.vFinal-d[n-1]))

	var inner mat.VecDense
	if err := inner.SolveVec(sys, rhs); err != nil {
		return fmt.Errorf("Articular.Init: %w", err)
	}

	m := make([]float64, n+1)
	for i := range k {
		m[i+1] = inner.AtVec(i)
	}
	m[0] = 3*(d[0]-a.vInit)/h[0] - 0.5*m[1]
	m[n] = 3*(a.vFinal-d[n-1])/h[n-1] - 0.5*m[n-1]

	a.s1 = make([]float64, n)
	a.s2 = make([]float64, n)
	a.s3 = make([]float64, n)
	a.s4 = make([]float64, n)
	for i := range n {
		a.s1[i] = a.points[i]
		a.s2[i] = d[i] - h[i]*(2*m[i]+m[i+1])/6
		a.s3[i] = 0.5 * m[i]
		a.s4[i] = (m[i+1] - m[i]) / (6 * h[i])
	}
	return nil
}

// InitWithVelocityLimit builds a single segment whose peak velocity stays
// within vMaxAbs. Boundary velocities are clipped to the limit. When the
// cubic through the requested endpoints is too fast, either the final time
// is pushed back (changeFinalTime) or the final position is pulled in.
func (a *Articular) InitWithVelocityLimit(tInit, tFinal, pInit, pFinal, vInit, vFinal, vMaxAbs float64, changeFinalTime bool, period float64) error {
	if vMaxAbs <= 0 {
		return fmt.Errorf("Articular.InitWithVelocityLimit: %w", ErrInvalidVelocity)
	}
	if tFinal <= tInit {
		return fmt.Errorf("Articular.InitWithVelocityLimit: %w", ErrInvalidTimes)
	}
	vInit = core.Clamp(vInit, -vMaxAbs, vMaxAbs)
	vFinal = core.Clamp(vFinal, -vMaxAbs, vMaxAbs)

	// Cubic in absolute time: s1 + 2·s2·t + 3·s3·t² is its velocity.
	ta, tb := tInit, tFinal
	iba := 1 / (tb - ta)
	iba2 := iba * iba
	s1 := iba2 * (6*ta*tb*iba*(pInit-pFinal) + tb*(tb+2*ta)*vInit + ta*(2*tb+ta)*vFinal)
	s2 := iba2 * (3*(tb+ta)*iba*(pFinal-pInit) - (2*tb+ta)*vInit - (tb+2*ta)*vFinal)
	s3 := iba2 * (2*iba*(pInit-pFinal) + vInit + vFinal)

	tMax := -s2 / (3 * s3)
	if !(tMax > tInit && tMax < tFinal) {
		tMax = tFinal
		if math.Abs(vInit) > math.Abs(vFinal) {
			tMax = tInit
		}
	}
	peak := s1 + 2*s2*tMax + 3*s3*tMax*tMax
	vMax := vMaxAbs
	if peak < 0 {
		vMax = -vMaxAbs
	}

	if math.Abs(peak) > vMaxAbs {
		if changeFinalTime {
			t := tInit + cubicDuration(pFinal-pInit, vInit, vFinal, vMax)
			if t > tFinal {
				a.cfg.Logger.Warn("velocity limit reached, extending final time",
					zap.Float64("peak_velocity", peak), zap.Float64("final_time", t))
				tFinal = t
			}
		} else {
			disc := math.Abs(vMax*vMax - (vFinal+vInit)*vMax + vInit*vFinal)
			root := math.Sqrt(disc)
			if vMax < 0 {
				root = -root
			}
			p := pInit + (tFinal-tInit)*(root+vMax+vFinal+vInit)/3
			a.cfg.Logger.Warn("velocity limit reached, reducing final position",
				zap.Float64("peak_velocity", peak), zap.Float64("final_position", p))
			pFinal = p
		}
	}
	return a.InitWithVelocities([]float64{tInit, tFinal}, []float64{pInit, pFinal}, vInit, vFinal, false, period)
}

// At evaluates position and velocity at time t. Past the last knot it
// returns the final point and final velocity.
func (a *Articular) At(t float64) types.PositionAndVelocity {
	a.calls++
	n := len(a.times) - 1
	if n < 1 {
		return types.PositionAndVelocity{}
	}
	if t >= a.times[n]-timeEpsilon {
		return types.PositionAndVelocity{Q: a.points[n], DQ: a.vFinal}
	}

	i := 0
	for i < n && a.times[i+1] <= t-timeEpsilon {
		i++
	}
	dt := t - a.times[i]
	return types.PositionAndVelocity{
		Q:  ((a.s4[i]*dt+a.s3[i])*dt+a.s2[i])*dt + a.s1[i],
		DQ: (3*a.s4[i]*dt+2*a.s3[i])*dt + a.s2[i],
	}
}

// All samples the spline every step, starting one step after the first
// knot, until IsFinished reports true.
func (a *Articular) All(step float64) ([]types.PositionAndVelocity, error) {
	if step <= 0 {
		return nil, fmt.Errorf("Articular.All: %w", ErrInvalidSampleTime)
	}
	if len(a.times) == 0 {
		return nil, nil
	}
	a.finished = false
	var out []types.PositionAndVelocity
	for k := 1; ; k++ {
		t := a.times[0] + float64(k)*step
		if a.IsFinished(t) {
			break
		}
		out = append(out, a.At(t))
	}
	return out, nil
}

// IsFinished reports whether t lies outside the spline's time range. Once
// true it stays true until the next Init or SetFinished(false).
func (a *Articular) IsFinished(t float64) bool {
	if len(a.times) == 0 {
		return true
	}
	if a.finished || t >= a.times[len(a.times)-1]+timeEpsilon || t <= a.times[0]-timeEpsilon {
		a.finished = true
	}
	return a.finished
}

// SetFinished overrides the finished flag.
func (a *Articular) SetFinished(finished bool) { a.finished = finished }

// NumTimesCalled returns how many times At was called since the last cold Init.
func (a *Articular) NumTimesCalled() int { return a.calls }

// FinalTime returns the time of the last knot after rounding.
func (a *Articular) FinalTime() float64 {
	if len(a.times) == 0 {
		return 0
	}
	return a.times[len(a.times)-1]
}
