package interpolation

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/aldebaran/libalmath/core"
	"github.com/aldebaran/libalmath/types"
)

// TangentType selects how a key tangent shapes the curve next to the key.
type TangentType int

const (
	// TangentConstant holds the key value until the next key.
	TangentConstant TangentType = iota
	// TangentLinear joins the keys with a straight line.
	TangentLinear
	// TangentBezier uses the tangent offset as given.
	TangentBezier
	// TangentBezierAuto uses an offset computed by BezierAutoTangents.
	TangentBezierAuto
)

// Tangent is a key tangent. Offset is relative to the key, in
// (time, value) units.
type Tangent struct {
	Type   TangentType
	Offset types.Position2D
}

// Key is a timeline key with its incoming and outgoing tangents.
type Key struct {
	Value       float64
	Left, Right Tangent
}

// BezierLimits bounds the samples of BezierKeys. Min and Max are ignored
// unless Min < Max; MaxChange is ignored unless positive.
type BezierLimits struct {
	Min, Max  float64
	MaxChange float64
}

// bezierIterations bisects the curve parameter well below float64 resolution.
const bezierIterations = 64

type cubicBezier struct {
	p0, p1, p2, p3 types.Position2D
}

func (b cubicBezier) at(s float64) types.Position2D {
	u := 1 - s
	return b.p0.Scale(u * u * u).
		Add(b.p1.Scale(3 * u * u * s)).
		Add(b.p2.Scale(3 * u * s * s)).
		Add(b.p3.Scale(s * s * s))
}

// parameterAt returns s in [0, 1] with at(s).X = x. x(s) is non-decreasing.
func (b cubicBezier) parameterAt(x float64) float64 {
	lo, hi := 0.0, 1.0
	for range bezierIterations {
		mid := (lo + hi) / 2
		if b.at(mid).X < x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// checkMonotonic accepts control points whose tangents stay within the
// segment in time, which keeps x(s) non-decreasing.
func (b cubicBezier) checkMonotonic() error {
	d := b.p3.X - b.p0.X
	r := b.p1.X - b.p0.X
	l := b.p2.X - b.p3.X
	if !(d > 0) || r < 0 || r > d || l > 0 || l < -d {
		return fmt.Errorf("%w: x = %v, %v, %v, %v", ErrNonMonotonicCurve, b.p0.X, b.p1.X, b.p2.X, b.p3.X)
	}
	return nil
}

func (b cubicBezier) samples(sampleTime float64) []float64 {
	d := b.p3.X - b.p0.X
	n := max(1, int(math.Floor(d/sampleTime+0.5)))
	out := make([]float64, n)
	for k := range n {
		x := b.p0.X + math.Min(float64(k+1)*sampleTime, d)
		out[k] = b.at(b.parameterAt(x)).Y
	}
	out[n-1] = b.p3.Y
	return out
}

// Bezier samples the cubic Bezier curve with control points p0..p3, read as
// a function y(x), every sampleTime along x. The sample count is the
// duration p3.X - p0.X divided by sampleTime, rounded to the nearest integer
// and at least one; the first sample is one step after p0 and the last one
// is p3.Y. The tangents must not leave the segment along x:
// p0.X <= p1.X <= p3.X and p0.X <= p2.X <= p3.X.
func Bezier(p0, p1, p2, p3 types.Position2D, sampleTime float64) ([]float64, error) {
	if sampleTime <= 0 {
		return nil, fmt.Errorf("Bezier: %w", ErrInvalidSampleTime)
	}
	b := cubicBezier{p0, p1, p2, p3}
	if err := b.checkMonotonic(); err != nil {
		return nil, fmt.Errorf("Bezier: %w", err)
	}
	return b.samples(sampleTime), nil
}

// BezierKeys samples the segment between two keys lasting duration. The
// curve starts at from.Value and ends at to.Value, shaped by from.Right and
// to.Left; a constant from.Right holds from.Value over the whole segment.
// Samples are then clamped to the limits, the first increment being measured
// from start, the current value of the driven output.
func BezierKeys(duration float64, from, to Key, start float64, limits BezierLimits, sampleTime float64, opts ...core.Option) ([]float64, error) {
	if sampleTime <= 0 {
		return nil, fmt.Errorf("BezierKeys: %w", ErrInvalidSampleTime)
	}
	if !(duration > 0) {
		return nil, fmt.Errorf("BezierKeys: %w: %v", ErrInvalidDuration, duration)
	}
	cfg := core.ApplyOptions(opts...)

	p0 := types.Position2D{Y: from.Value}
	p3 := types.Position2D{X: duration, Y: to.Value}
	b := cubicBezier{p0: p0, p1: p0, p2: p3, p3: p3}
	if from.Right.Type == TangentConstant {
		b.p3.Y = from.Value
		b.p2 = b.p3
	} else {
		if from.Right.Type != TangentLinear {
			b.p1 = p0.Add(from.Right.Offset)
		}
		if to.Left.Type != TangentLinear {
			b.p2 = p3.Add(to.Left.Offset)
		}
	}
	if err := b.checkMonotonic(); err != nil {
		return nil, fmt.Errorf("BezierKeys: %w", err)
	}
	out := b.samples(sampleTime)

	limited := limitSamples(out, start, limits)
	if limited > 0 {
		cfg.Logger.Warn("bezier samples limited",
			zap.Int("samples", limited), zap.Float64("min", limits.Min),
			zap.Float64("max", limits.Max), zap.Float64("max_change", limits.MaxChange))
	}
	return out, nil
}

// limitSamples clamps samples in place and returns how many changed.
func limitSamples(samples []float64, start float64, limits BezierLimits) int {
	changed := 0
	prev := start
	for i, v := range samples {
		orig := v
		if limits.Min < limits.Max {
			v = core.Clamp(v, limits.Min, limits.Max)
		}
		if limits.MaxChange > 0 {
			v = core.Clamp(v, prev-limits.MaxChange, prev+limits.MaxChange)
		}
		if v != orig {
			changed++
		}
		samples[i] = v
		prev = v
	}
	return changed
}

// BezierAutoTangents returns the automatic (left, right) tangents of a key
// reached after dt1 with a value change da1 and left for dt2 with a change
// da2. Extrema get flat tangents; other keys get the mean slope, reduced so
// that neither tangent overshoots the neighbouring key value.
func BezierAutoTangents(dt1, dt2, da1, da2 float64) (left, right types.Position2D) {
	const alpha = 1.0 / 3
	var beta float64
	if da1*da2 > 0 && dt1+dt2 > 0 {
		beta = (da1 + da2) / (dt1 + dt2)
		if h := math.Abs(alpha * dt2 * beta); h > math.Abs(da2) {
			beta *= math.Abs(da2) / h
		}
		if h := math.Abs(alpha * dt1 * beta); h > math.Abs(da1) {
			beta *= math.Abs(da1) / h
		}
	}
	left = types.Position2D{X: -alpha * dt1, Y: -alpha * beta * dt1}
	right = types.Position2D{X: alpha * dt2, Y: alpha * beta * dt2}
	return left, right
}
