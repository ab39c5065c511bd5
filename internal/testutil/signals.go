// Package testutil holds deterministic inputs and tolerance assertions
// shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// Step returns length samples equal to before up to index at and after from
// there on.
func Step(before, after float64, at, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		if i < at {
			out[i] = before
		} else {
			out[i] = after
		}
	}
	return out
}

// Ramp returns start + slope·i for i in [0, length).
func Ramp(start, slope float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + slope*float64(i)
	}
	return out
}

// DeterministicSine samples amplitude·sin(2π·freqHz·t) at sampleRate.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise returns uniform noise in [-amplitude, amplitude) from a
// fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}
