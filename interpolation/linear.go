package interpolation

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/aldebaran/libalmath/core"
)

// Linear samples a constant-velocity ramp from start towards end.
//
// A positive duration is split into floor(duration/sampleTime) steps and the
// per-step change is limited to maxChange; when the limit applies the ramp
// stops short of end. A non-positive duration is read as a fraction of
// maxChange: each step moves by -duration*maxChange, rounded up to a whole
// number of steps that reaches end exactly. The first sample is one step
// after start and start itself is not included.
func Linear(duration, start, end, maxChange, sampleTime float64, opts ...core.Option) ([]float64, error) {
	if sampleTime <= 0 {
		return nil, fmt.Errorf("Linear: %w", ErrInvalidSampleTime)
	}
	cfg := core.ApplyOptions(opts...)
	d := end - start

	var n int
	var speed float64
	if duration > 0 {
		duration = clampDuration(cfg.Logger, duration, sampleTime)
		n = floorSteps(duration, sampleTime)
		speed = d / float64(n)
		if math.Abs(speed) > maxChange {
			cfg.Logger.Warn("velocity limit reached",
				zap.Float64("speed", speed), zap.Float64("max_change", maxChange))
			speed = core.Sign(speed) * maxChange
		}
	} else {
		if d == 0 {
			return []float64{end}, nil
		}
		step := maxChange * -duration
		if step <= 0 {
			return nil, fmt.Errorf("Linear: %w: step %v", ErrInvalidDuration, step)
		}
		n = ceilSteps(math.Abs(d), step)
		speed = d / float64(n)
	}

	out := make([]float64, n)
	for i := range n {
		out[i] = start + float64(i+1)*speed
	}
	return out, nil
}

// LinearSamples splits the ramp from start to end into n equal steps.
// n below one is raised to one.
func LinearSamples(n int, start, end float64, opts ...core.Option) []float64 {
	cfg := core.ApplyOptions(opts...)
	n = clampSamples(cfg.Logger, n)
	out := make([]float64, n)
	step := (end - start) / float64(n)
	for i := range n {
		out[i] = start + float64(i+1)*step
	}
	return out
}

// LinearSamplesLimited is LinearSamples with the per-step change limited
// to maxChange.
func LinearSamplesLimited(n int, start, end, maxChange float64, opts ...core.Option) []float64 {
	cfg := core.ApplyOptions(opts...)
	n = clampSamples(cfg.Logger, n)
	speed := (end - start) / float64(n)
	if math.Abs(speed) > maxChange {
		cfg.Logger.Warn("velocity limit reached",
			zap.Float64("speed", speed), zap.Float64("max_change", maxChange))
		speed = core.Sign(speed) * maxChange
	}
	out := make([]float64, n)
	for i := range n {
		out[i] = start + float64(i+1)*speed
	}
	return out
}

// LinearVector samples a ramp for every component of start and end over
// the same duration.
func LinearVector(duration float64, start, end []float64, sampleTime float64, opts ...core.Option) ([][]float64, error) {
	if len(start) != len(end) {
		return nil, fmt.Errorf("LinearVector: %w: %d != %d", ErrSizeMismatch, len(start), len(end))
	}
	if sampleTime <= 0 {
		return nil, fmt.Errorf("LinearVector: %w", ErrInvalidSampleTime)
	}
	cfg := core.ApplyOptions(opts...)
	duration = clampDuration(cfg.Logger, duration, sampleTime)
	n := floorSteps(duration, sampleTime)

	diff := make([]float64, len(start))
	floats.SubTo(diff, end, start)
	floats.Scale(1/float64(n), diff)
	return rampRows(start, diff, n), nil
}

// LinearVectorLimited is the per-component counterpart of Linear: each
// component has its own per-step limit and, for a non-positive duration,
// the slowest component sets the common number of steps.
func LinearVectorLimited(duration float64, start, end, maxChange []float64, sampleTime float64, opts ...core.Option) ([][]float64, error) {
	if len(start) != len(end) || len(start) != len(maxChange) {
		return nil, fmt.Errorf("LinearVectorLimited: %w", ErrSizeMismatch)
	}
	if sampleTime <= 0 {
		return nil, fmt.Errorf("LinearVectorLimited: %w", ErrInvalidSampleTime)
	}
	cfg := core.ApplyOptions(opts...)

	diff := make([]float64, len(start))
	floats.SubTo(diff, end, start)

	var n int
	speed := make([]float64, len(start))
	if duration > 0 {
		duration = clampDuration(cfg.Logger, duration, sampleTime)
		n = floorSteps(duration, sampleTime)
		for i := range speed {
			speed[i] = diff[i] / float64(n)
			if math.Abs(speed[i]) > maxChange[i] {
				cfg.Logger.Warn("velocity limit reached",
					zap.Int("index", i), zap.Float64("speed", speed[i]), zap.Float64("max_change", maxChange[i]))
				speed[i] = core.Sign(speed[i]) * maxChange[i]
			}
		}
	} else {
		for i := range diff {
			if diff[i] == 0 {
				continue
			}
			step := maxChange[i] * -duration
			if step <= 0 {
				return nil, fmt.Errorf("LinearVectorLimited: %w: step %v at index %d", ErrInvalidDuration, step, i)
			}
			n = max(n, ceilSteps(math.Abs(diff[i]), step))
		}
		n = max(n, 1)
		copy(speed, diff)
		floats.Scale(1/float64(n), speed)
	}
	return rampRows(start, speed, n), nil
}

func rampRows(start, speed []float64, n int) [][]float64 {
	out := make([][]float64, n)
	for i := range n {
		row := make([]float64, len(start))
		floats.AddScaledTo(row, start, float64(i+1), speed)
		out[i] = row
	}
	return out
}

// floorSteps and ceilSteps absorb the rounding error of duration/sampleTime
// so that exact multiples of the period are not lost.
func floorSteps(duration, sampleTime float64) int {
	return int(math.Floor(duration/sampleTime + stepTolerance))
}

func ceilSteps(duration, sampleTime float64) int {
	return max(1, int(math.Ceil(duration/sampleTime-stepTolerance)))
}

func clampDuration(logger *zap.Logger, duration, sampleTime float64) float64 {
	if duration < sampleTime {
		logger.Warn("duration shorter than one sample, using one sample",
			zap.Float64("duration", duration), zap.Float64("sample_time", sampleTime))
		return sampleTime
	}
	return duration
}

func clampSamples(logger *zap.Logger, n int) int {
	if n < 1 {
		logger.Warn("sample count below one, using one sample", zap.Int("samples", n))
		return 1
	}
	return n
}
