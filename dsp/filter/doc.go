// Package filter provides a direct-form recursive digital filter for
// smoothing sensor and command streams.
//
// A [DigitalFilter] holds feed-forward and feedback weights and a DC gain.
// [DigitalFilter.FrequencyResponse] evaluates the transfer function on an
// FFT grid.
package filter
