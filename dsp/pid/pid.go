// Package pid provides a discrete PID controller with a dead band.
package pid

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNegativeParameter is returned for a negative gain, threshold or offset.
	ErrNegativeParameter = errors.New("pid: parameter must be >= 0")
	// ErrInvalidPeriod is returned for a period that is not strictly positive.
	ErrInvalidPeriod = errors.New("pid: period must be strictly positive")
)

// Controller computes offset + kp·e + kv·de/dt + ki·∫e dt, where e is the
// error with the dead band [-threshold, threshold] removed.
type Controller struct {
	kp, kv, ki float64
	threshold  float64
	offset     float64
	period     float64

	err, prevErr float64
	dErr, iErr   float64
	first        bool
}

// New returns a controller with the given gains, dead band threshold,
// static offset and default period.
func New(kp, kv, ki, threshold, offset, period float64) (*Controller, error) {
	c := &Controller{}
	if err := c.Configure(kp, kv, ki, threshold, offset, period); err != nil {
		return nil, err
	}
	return c, nil
}

// Configure replaces every parameter and resets the controller state.
func (c *Controller) Configure(kp, kv, ki, threshold, offset, period float64) error {
	if err := checkNonNegative("Configure", kp, kv, ki, threshold, offset); err != nil {
		return err
	}
	if period <= 0 {
		return fmt.Errorf("Configure: %w: %v", ErrInvalidPeriod, period)
	}
	c.kp, c.kv, c.ki = kp, kv, ki
	c.threshold = threshold
	c.offset = offset
	c.period = period
	c.Reset()
	return nil
}

// SetGains replaces the gains and keeps the integral and derivative state.
func (c *Controller) SetGains(kp, kv, ki float64) error {
	if err := checkNonNegative("SetGains", kp, kv, ki); err != nil {
		return err
	}
	c.kp, c.kv, c.ki = kp, kv, ki
	return nil
}

// Reset clears the error history.
func (c *Controller) Reset() {
	c.err, c.prevErr = 0, 0
	c.dErr, c.iErr = 0, 0
	c.first = true
}

// Feedback returns the command for the signed error command-sensor. A
// positive period overrides the configured one for this step.
func (c *Controller) Feedback(command, sensor, period float64) float64 {
	dt := c.period
	if period > 0 {
		dt = period
	}
	e := command - sensor
	switch {
	case e > c.threshold:
		e -= c.threshold
	case e < -c.threshold:
		e += c.threshold
	default:
		e = 0
	}
	return c.step(e, dt, false)
}

// FeedbackAbsolute returns the command for a non-negative error magnitude.
// Its derivative term uses the absolute change of the error.
func (c *Controller) FeedbackAbsolute(absErr float64) float64 {
	e := 0.0
	if absErr > c.threshold {
		e = absErr - c.threshold
	}
	return c.step(e, c.period, true)
}

func (c *Controller) step(e, dt float64, absDerivative bool) float64 {
	c.prevErr = c.err
	c.err = e
	if c.first {
		c.dErr = 0
		c.first = false
	} else {
		c.dErr = (c.err - c.prevErr) / dt
		if absDerivative {
			c.dErr = math.Abs(c.dErr)
		}
	}
	c.iErr += c.err * dt
	return c.offset + c.kp*c.err + c.kv*c.dErr + c.ki*c.iErr
}

// Integral returns the accumulated error integral.
func (c *Controller) Integral() float64 { return c.iErr }

func checkNonNegative(op string, values ...float64) error {
	for _, v := range values {
		if v < 0 {
			return fmt.Errorf("%s: %w: %v", op, ErrNegativeParameter, v)
		}
	}
	return nil
}
