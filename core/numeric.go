package core

import "math"

// DefaultEpsilon is the tolerance used by approximate comparisons when no
// explicit tolerance is given.
const DefaultEpsilon = 1e-4

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps (absolute).
// A non-positive eps selects DefaultEpsilon.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = DefaultEpsilon
	}

	return math.Abs(a-b) <= eps
}

// ClipData clips *data into [min, max] and reports whether it was changed.
func ClipData(min, max float64, data *float64) bool {
	clipped := Clamp(*data, min, max)
	if clipped == *data {
		return false
	}

	*data = clipped

	return true
}

// ClipSlice clips every element of data into [min, max] in place and
// reports whether any element was changed.
func ClipSlice(min, max float64, data []float64) bool {
	changed := false
	for i := range data {
		if ClipData(min, max, &data[i]) {
			changed = true
		}
	}

	return changed
}

// ClipMatrix clips every element of the rows of data into [min, max].
func ClipMatrix(min, max float64, data [][]float64) bool {
	changed := false
	for _, row := range data {
		if ClipSlice(min, max, row) {
			changed = true
		}
	}

	return changed
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}

	return 1
}
