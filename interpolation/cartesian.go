package interpolation

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aldebaran/libalmath/core"
	"github.com/aldebaran/libalmath/tools"
	"github.com/aldebaran/libalmath/types"
)

// Cartesian interpolates rigid-body poses with a clamped cubic spline of
// the logarithms of the poses relative to the first one. The trajectory
// passes through every key pose at its key time.
type Cartesian struct {
	cfg core.Config

	times []float64
	h0    types.Transform
	// Spline in the frame of h0: x + b·dt + c·dt² + d·dt³ on each segment.
	x, bs, cs, ds []types.Velocity6D

	finished bool
	calls    int
}

// NewCartesian returns an uninitialized interpolator.
func NewCartesian(opts ...core.Option) *Cartesian {
	return &Cartesian{cfg: core.ApplyOptions(opts...), finished: true}
}

// Init builds the trajectory through poses with zero boundary twists.
func (c *Cartesian) Init(times []float64, poses []types.Transform, period float64) error {
	return c.InitWithVelocities(times, poses, types.Velocity6D{}, types.Velocity6D{}, period)
}

// InitPositions is Init for poses given as Position6D.
func (c *Cartesian) InitPositions(times []float64, poses []types.Position6D, vInit, vFinal types.Velocity6D, period float64) error {
	hs := make([]types.Transform, len(poses))
	for i, p := range poses {
		hs[i] = tools.TransformFromPosition6D(p)
	}
	return c.InitWithVelocities(times, hs, vInit, vFinal, period)
}

// InitWithVelocities builds the trajectory with boundary twists vInit and
// vFinal expressed in the world frame. The last time is rounded with
// FinalTime unless rounding would break the ordering.
func (c *Cartesian) InitWithVelocities(times []float64, poses []types.Transform, vInit, vFinal types.Velocity6D, period float64) error {
	if len(times) < 2 {
		return fmt.Errorf("Cartesian.Init: %w", ErrTooFewPoints)
	}
	if len(times) != len(poses) {
		return fmt.Errorf("Cartesian.Init: %w: %d times, %d poses", ErrSizeMismatch, len(times), len(poses))
	}
	for i := range len(times) - 1 {
		if times[i] >= times[i+1] {
			return fmt.Errorf("Cartesian.Init: %w: t[%d]=%v >= t[%d]=%v", ErrInvalidTimes, i, times[i], i+1, times[i+1])
		}
	}

	n := len(times)
	c.times = append([]float64(nil), times...)
	if tf := FinalTime(period, c.times[n-1]); tf > c.times[n-2] {
		c.times[n-1] = tf
	}
	c.h0 = poses[0]
	c.finished = false
	c.calls = 0

	c.x = make([]types.Velocity6D, n)
	for i, h := range poses {
		c.x[i] = tools.TransformLogarithm(c.h0.Diff(h))
	}

	localInit := tools.ChangeReferenceTransposedVelocity6D(c.h0, vInit)
	localFinal := tools.ChangeReferenceTransposedVelocity6D(c.h0, vFinal)
	dxInit, err := tools.LogRateFromTwist(c.x[0], localInit)
	if err != nil {
		return fmt.Errorf("Cartesian.Init: initial velocity: %w", err)
	}
	dxFinal, err := tools.LogRateFromTwist(c.x[n-1], localFinal)
	if err != nil {
		return fmt.Errorf("Cartesian.Init: final velocity: %w", err)
	}

	c.solve(dxInit, dxFinal)
	c.cfg.Logger.Debug("cartesian spline initialized",
		zap.Int("keys", n), zap.Float64("final_time", c.times[n-1]))
	return nil
}

// solve runs the clamped spline recurrence on the 6D log coordinates.
func (c *Cartesian) solve(dxInit, dxFinal types.Velocity6D) {
	n := len(c.times)
	h := make([]float64, n-1)
	for i := range n - 1 {
		h[i] = c.times[i+1] - c.times[i]
	}
	slope := func(i int) types.Velocity6D {
		return c.x[i+1].Sub(c.x[i]).Scale(1 / h[i])
	}

	alpha := make([]types.Velocity6D, n)
	alpha[0] = slope(0).Sub(dxInit).Scale(3)
	for i := 1; i < n-1; i++ {
		alpha[i] = slope(i).Sub(slope(i - 1)).Scale(3)
	}
	alpha[n-1] = dxFinal.Sub(slope(n - 2)).Scale(3)

	l := make([]float64, n)
	mu := make([]float64, n-1)
	z := make([]types.Velocity6D, n)
	l[0] = 2 * h[0]
	mu[0] = 0.5
	z[0] = alpha[0].Scale(1 / l[0])
	for i := 1; i < n-1; i++ {
		l[i] = 2*(c.times[i+1]-c.times[i-1]) - h[i-1]*mu[i-1]
		mu[i] = h[i] / l[i]
		z[i] = alpha[i].Sub(z[i-1].Scale(h[i-1])).Scale(1 / l[i])
	}
	l[n-1] = h[n-2] * (2 - mu[n-2])
	z[n-1] = alpha[n-1].Sub(z[n-2].Scale(h[n-2])).Scale(1 / l[n-1])

	c.cs = make([]types.Velocity6D, n)
	c.bs = make([]types.Velocity6D, n-1)
	c.ds = make([]types.Velocity6D, n-1)
	c.cs[n-1] = z[n-1]
	for i := n - 2; i >= 0; i-- {
		c.cs[i] = z[i].Sub(c.cs[i+1].Scale(mu[i]))
		c.bs[i] = slope(i).Sub(c.cs[i+1].Add(c.cs[i].Scale(2)).Scale(h[i] / 3))
		c.ds[i] = c.cs[i+1].Sub(c.cs[i]).Scale(1 / (3 * h[i]))
	}
}

// At evaluates the pose and world-frame twist at time t. Times outside the
// key range are clamped to it.
func (c *Cartesian) At(t float64) types.TransformAndVelocity6D {
	c.calls++
	n := len(c.times)
	if n < 2 {
		return types.TransformAndVelocity6D{H: types.TransformIdentity()}
	}
	t = core.Clamp(t, c.times[0], c.times[n-1])
	j := 0
	for j < n && c.times[j] <= t+timeEpsilon {
		j++
	}
	j = min(max(j-1, 0), n-2)

	dt := t - c.times[j]
	dt2 := dt * dt
	x := c.x[j].Add(c.bs[j].Scale(dt)).Add(c.cs[j].Scale(dt2)).Add(c.ds[j].Scale(dt2 * dt))
	dx := c.bs[j].Add(c.cs[j].Scale(2 * dt)).Add(c.ds[j].Scale(3 * dt2))

	return types.TransformAndVelocity6D{
		H: c.h0.Mul(tools.VelocityExponential(x)),
		V: tools.ChangeReferenceVelocity6D(c.h0, tools.TwistFromLogRate(x, dx)),
	}
}

// All samples the trajectory every step, starting one step after the first
// key time, until IsFinished reports true.
func (c *Cartesian) All(step float64) ([]types.TransformAndVelocity6D, error) {
	if step <= 0 {
		return nil, fmt.Errorf("Cartesian.All: %w", ErrInvalidSampleTime)
	}
	if len(c.times) == 0 {
		return nil, nil
	}
	c.finished = false
	var out []types.TransformAndVelocity6D
	for k := 1; ; k++ {
		t := c.times[0] + float64(k)*step
		if c.IsFinished(t) {
			break
		}
		out = append(out, c.At(t))
	}
	return out, nil
}

// IsFinished reports whether t lies outside the key time range. Once true
// it stays true until the next Init or SetFinished(false).
func (c *Cartesian) IsFinished(t float64) bool {
	if len(c.times) == 0 {
		return true
	}
	if c.finished || t >= c.times[len(c.times)-1]+timeEpsilon || t <= c.times[0]-timeEpsilon {
		c.finished = true
	}
	return c.finished
}

// SetFinished overrides the finished flag.
func (c *Cartesian) SetFinished(finished bool) { c.finished = finished }

// NumTimesCalled returns how many times At was called since the last Init.
func (c *Cartesian) NumTimesCalled() int { return c.calls }

// FinalTime returns the last key time after rounding.
func (c *Cartesian) FinalTime() float64 {
	if len(c.times) == 0 {
		return 0
	}
	return c.times[len(c.times)-1]
}
