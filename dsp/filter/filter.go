package filter

import (
	"errors"
	"fmt"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrNoInputWeights is returned when a filter is configured without feed-forward weights.
	ErrNoInputWeights = errors.New("filter: at least one input weight is required")
	// ErrZeroGain is returned for a DC gain of zero.
	ErrZeroGain = errors.New("filter: dc gain must be non-zero")
	// ErrInvalidSize is returned for an FFT size that is not a power of two
	// or is shorter than the filter.
	ErrInvalidSize = errors.New("filter: invalid response size")
)

// history keeps the most recent values, oldest first, up to its capacity.
type history struct {
	values []float64
	count  int
}

func newHistory(capacity int) history {
	return history{values: make([]float64, capacity)}
}

func (h *history) push(x float64) {
	n := len(h.values)
	if n == 0 {
		return
	}
	copy(h.values, h.values[1:])
	h.values[n-1] = x
	h.count = min(h.count+1, n)
}

func (h *history) full() bool { return h.count == len(h.values) }

func (h *history) clear() {
	clear(h.values)
	h.count = 0
}

// DigitalFilter is a direct-form recursive filter
//
//	y[n] = Σ in[i]·x[n-N+1+i]/g + Σ out[i]·y[n-M+i]
//
// where the weight slices are ordered oldest sample first, N and M are
// their lengths and g is the DC gain. Until both histories are full the
// input is passed through unchanged.
type DigitalFilter struct {
	in, out  []float64
	gain     float64
	inputs   history
	outputs  history
	products []float64
}

// New returns a configured filter.
func New(in, out []float64, dcGain float64) (*DigitalFilter, error) {
	f := &DigitalFilter{}
	if err := f.Configure(in, out, dcGain); err != nil {
		return nil, err
	}
	return f, nil
}

// Configure replaces the weights and gain and clears the histories.
// The weight slices are copied.
func (f *DigitalFilter) Configure(in, out []float64, dcGain float64) error {
	if len(in) == 0 {
		return fmt.Errorf("Configure: %w", ErrNoInputWeights)
	}
	if dcGain == 0 {
		return fmt.Errorf("Configure: %w", ErrZeroGain)
	}
	f.in = append([]float64(nil), in...)
	f.out = append([]float64(nil), out...)
	f.gain = dcGain
	f.inputs = newHistory(len(in))
	f.outputs = newHistory(len(out))
	f.products = make([]float64, max(len(in), len(out)))
	return nil
}

// Reset empties both histories.
func (f *DigitalFilter) Reset() {
	f.inputs.clear()
	f.outputs.clear()
}

// Process filters one sample.
func (f *DigitalFilter) Process(x float64) float64 {
	y := x
	f.inputs.push(x / f.gain)
	if f.inputs.full() && f.outputs.full() {
		y = f.weightedSum(f.inputs.values, f.in) + f.weightedSum(f.outputs.values, f.out)
	}
	f.outputs.push(y)
	return y
}

func (f *DigitalFilter) weightedSum(values, weights []float64) float64 {
	if len(weights) == 0 {
		return 0
	}
	p := f.products[:len(weights)]
	vecmath.MulBlock(p, values, weights)
	var sum float64
	for _, v := range p {
		sum += v
	}
	return sum
}

// ProcessBlock filters buf in place.
func (f *DigitalFilter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.Process(x)
	}
}

// FrequencyResponse returns the transfer function at the n/2+1 frequencies
// k/n of the sample rate, k = 0..n/2. n must be a power of two no shorter
// than either weight slice.
func (f *DigitalFilter) FrequencyResponse(n int) ([]complex128, error) {
	if n < 2 || bits.OnesCount(uint(n)) != 1 || n < len(f.in) || n <= len(f.out) {
		return nil, fmt.Errorf("FrequencyResponse: %w: %d", ErrInvalidSize, n)
	}

	// Numerator b[k] multiplies x[n-k], denominator a[k] multiplies y[n-k].
	num := make([]complex128, n)
	for k := range f.in {
		num[k] = complex(f.in[len(f.in)-1-k]/f.gain, 0)
	}
	den := make([]complex128, n)
	den[0] = 1
	for k := 1; k <= len(f.out); k++ {
		den[k] = complex(-f.out[len(f.out)-k], 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("FrequencyResponse: %w", err)
	}
	numSpec := make([]complex128, n)
	if err := plan.Forward(numSpec, num); err != nil {
		return nil, fmt.Errorf("FrequencyResponse: %w", err)
	}
	denSpec := make([]complex128, n)
	if err := plan.Forward(denSpec, den); err != nil {
		return nil, fmt.Errorf("FrequencyResponse: %w", err)
	}

	out := make([]complex128, n/2+1)
	for k := range out {
		out[k] = numSpec[k] / denSpec[k]
	}
	return out, nil
}

// Magnitude returns |h[k]| for each response bin.
func Magnitude(h []complex128) []float64 {
	re := make([]float64, len(h))
	im := make([]float64, len(h))
	for i, c := range h {
		re[i], im[i] = real(c), imag(c)
	}
	out := make([]float64, len(h))
	vecmath.Magnitude(out, re, im)
	return out
}
