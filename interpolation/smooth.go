package interpolation

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/aldebaran/libalmath/core"
)

// quintic holds the minimum-jerk profile
// x(t) = a3·t³ + a4·t⁴ + a5·t⁵ of amplitude d over duration tf.
type quintic struct {
	a3, a4, a5 float64
}

func newQuintic(d, tf float64) quintic {
	tf3 := tf * tf * tf
	tf4 := tf3 * tf
	tf5 := tf4 * tf
	return quintic{a3: 10 * d / tf3, a4: -15 * d / tf4, a5: 6 * d / tf5}
}

func (q quintic) at(t float64) float64 {
	t3 := t * t * t
	return q.a3*t3 + q.a4*t3*t + q.a5*t3*t*t
}

// peakVelocityRatio is the peak velocity of a minimum-jerk move of unit
// amplitude over unit duration.
const peakVelocityRatio = 15.0 / 8.0

// Smooth samples a minimum-jerk move from start to end.
//
// A positive duration is rounded up to a whole number of samples. If the
// peak velocity would exceed maxChange per sample, the amplitude is reduced
// so the move stays within the limit and stops short of end. A non-positive
// duration is read as a fraction of the limit and the duration is derived
// from it. The first sample is one period after start.
func Smooth(duration, start, end, maxChange, sampleTime float64, opts ...core.Option) ([]float64, error) {
	if sampleTime <= 0 {
		return nil, fmt.Errorf("Smooth: %w", ErrInvalidSampleTime)
	}
	cfg := core.ApplyOptions(opts...)
	d := end - start
	vLimit := maxChange / sampleTime

	if duration > 0 {
		duration = clampDuration(cfg.Logger, duration, sampleTime)
		d = limitAmplitude(cfg.Logger, d, duration, vLimit)
	} else {
		if d == 0 {
			return []float64{end}, nil
		}
		if vLimit <= 0 || duration == 0 {
			return nil, fmt.Errorf("Smooth: %w: limit %v, fraction %v", ErrInvalidDuration, vLimit, -duration)
		}
		duration = math.Abs(peakVelocityRatio * d / (-duration * vLimit))
	}
	return smoothSamples(start, d, duration, sampleTime), nil
}

// SmoothSamples samples a minimum-jerk move from start to end in exactly n
// periods. n below one is raised to one.
func SmoothSamples(n int, start, end, sampleTime float64, opts ...core.Option) ([]float64, error) {
	if sampleTime <= 0 {
		return nil, fmt.Errorf("SmoothSamples: %w", ErrInvalidSampleTime)
	}
	cfg := core.ApplyOptions(opts...)
	n = clampSamples(cfg.Logger, n)
	q := newQuintic(end-start, float64(n)*sampleTime)
	out := make([]float64, n)
	for i := range n {
		out[i] = start + q.at(sampleTime*float64(i+1))
	}
	return out, nil
}

// SmoothVector samples a minimum-jerk move for every component of start
// and end over the same duration.
func SmoothVector(duration float64, start, end []float64, sampleTime float64, opts ...core.Option) ([][]float64, error) {
	if len(start) != len(end) {
		return nil, fmt.Errorf("SmoothVector: %w: %d != %d", ErrSizeMismatch, len(start), len(end))
	}
	if sampleTime <= 0 {
		return nil, fmt.Errorf("SmoothVector: %w", ErrInvalidSampleTime)
	}
	cfg := core.ApplyOptions(opts...)
	duration = clampDuration(cfg.Logger, duration, sampleTime)

	d := make([]float64, len(start))
	for i := range d {
		d[i] = end[i] - start[i]
	}
	return smoothRows(start, d, duration, sampleTime), nil
}

// SmoothVectorLimited is SmoothVector with a per-component limit on the
// change per sample. For a non-positive duration the slowest component
// sets the common duration.
func SmoothVectorLimited(duration float64, start, end, maxChange []float64, sampleTime float64, opts ...core.Option) ([][]float64, error) {
	if len(start) != len(end) || len(start) != len(maxChange) {
		return nil, fmt.Errorf("SmoothVectorLimited: %w", ErrSizeMismatch)
	}
	if sampleTime <= 0 {
		return nil, fmt.Errorf("SmoothVectorLimited: %w", ErrInvalidSampleTime)
	}
	cfg := core.ApplyOptions(opts...)

	d := make([]float64, len(start))
	for i := range d {
		d[i] = end[i] - start[i]
	}
	if duration > 0 {
		duration = clampDuration(cfg.Logger, duration, sampleTime)
		for i := range d {
			d[i] = limitAmplitude(cfg.Logger, d[i], duration, maxChange[i]/sampleTime)
		}
	} else {
		fraction := -duration
		duration = 0
		for i := range d {
			if d[i] == 0 {
				continue
			}
			vLimit := maxChange[i] / sampleTime
			if vLimit <= 0 || fraction == 0 {
				return nil, fmt.Errorf("SmoothVectorLimited: %w: index %d", ErrInvalidDuration, i)
			}
			duration = math.Max(duration, math.Abs(peakVelocityRatio*d[i]/(fraction*vLimit)))
		}
	}
	return smoothRows(start, d, duration, sampleTime), nil
}

func limitAmplitude(logger *zap.Logger, d, duration, vLimit float64) float64 {
	peak := peakVelocityRatio * d / duration
	if math.Abs(peak) > vLimit {
		logger.Warn("velocity limit reached",
			zap.Float64("peak_velocity", peak), zap.Float64("limit", vLimit))
		return core.Sign(peak) * vLimit * duration / peakVelocityRatio
	}
	return d
}

func smoothSamples(start, d, duration, sampleTime float64) []float64 {
	n := ceilSteps(duration, sampleTime)
	q := newQuintic(d, float64(n)*sampleTime)
	out := make([]float64, n)
	for i := range n {
		out[i] = start + q.at(sampleTime*float64(i+1))
	}
	return out
}

func smoothRows(start, d []float64, duration, sampleTime float64) [][]float64 {
	n := ceilSteps(duration, sampleTime)
	tf := float64(n) * sampleTime
	profiles := make([]quintic, len(d))
	for i := range d {
		profiles[i] = newQuintic(d[i], tf)
	}
	out := make([][]float64, n)
	for k := range n {
		t := sampleTime * float64(k+1)
		row := make([]float64, len(start))
		for i, q := range profiles {
			row[i] = start[i] + q.at(t)
		}
		out[k] = row
	}
	return out
}
