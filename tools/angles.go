package tools

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// minResultant is the smallest mean resultant length for which a mean
// direction is reported.
const minResultant = 1e-6

// Modulo2PI wraps angle into (-π, π].
func Modulo2PI(angle float64) float64 {
	a := math.Mod(angle+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// MeanAngle returns the circular mean of angles in (-π, π].
func MeanAngle(angles []float64) (float64, error) {
	if len(angles) == 0 {
		return 0, fmt.Errorf("MeanAngle: %w", ErrEmptyInput)
	}
	return circularMean(angles, nil)
}

// WeightedMeanAngle returns the circular mean of angles, each weighted by
// the matching entry of weights.
func WeightedMeanAngle(angles, weights []float64) (float64, error) {
	if len(angles) == 0 {
		return 0, fmt.Errorf("WeightedMeanAngle: %w", ErrEmptyInput)
	}
	if len(angles) != len(weights) {
		return 0, fmt.Errorf("WeightedMeanAngle: %w: %d angles, %d weights",
			ErrSizeMismatch, len(angles), len(weights))
	}
	for i, w := range weights {
		if !(w > 0) {
			return 0, fmt.Errorf("WeightedMeanAngle: %w: weights[%d] = %g", ErrInvalidWeight, i, w)
		}
	}
	return circularMean(angles, weights)
}

func circularMean(angles, weights []float64) (float64, error) {
	var s, c, total float64
	for i, a := range angles {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		s += w * math.Sin(a)
		c += w * math.Cos(a)
		total += w
	}
	if math.Hypot(s, c) < minResultant*total {
		return 0, ErrUndefinedMean
	}
	return Modulo2PI(stat.CircularMean(angles, weights)), nil
}
