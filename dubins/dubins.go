package dubins

import (
	"errors"
	"fmt"
	"math"

	"github.com/aldebaran/libalmath/types"
)

var (
	// ErrTargetTooClose is returned when the target lies within four turning
	// radii of the origin.
	ErrTargetTooClose = errors.New("dubins: target closer than four turning radii")
	// ErrInvalidRadius is returned for a non-positive turning radius.
	ErrInvalidRadius = errors.New("dubins: turning radius must be positive")
	// ErrInvalidStep is returned for a non-positive sampling step.
	ErrInvalidStep = errors.New("dubins: sampling step must be positive")
)

// Kind names the turn directions of a path, e.g. "LR" for left then right.
type Kind string

const (
	LL Kind = "LL"
	LR Kind = "LR"
	RL Kind = "RL"
	RR Kind = "RR"
)

// Curve is the selected path.
type Curve struct {
	Kind Kind
	// Checkpoints are the end of the first arc, the end of the straight
	// segment and the target.
	Checkpoints [3]types.Pose2D
	Radius      float64

	startCenter, endCenter types.Position2D
	startLeft, endLeft     bool
}

type tangent struct {
	from, to         types.Position2D
	fromLeft, toLeft bool
	kind             Kind
}

// Solutions returns the three checkpoints of the path to target whose
// straight segment is the shortest among the four candidates.
func Solutions(target types.Pose2D, radius float64) ([3]types.Pose2D, error) {
	c, err := New(target, radius)
	if err != nil {
		return [3]types.Pose2D{}, err
	}
	return c.Checkpoints, nil
}

// New computes the path to target.
func New(target types.Pose2D, radius float64) (*Curve, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("dubins: radius %g: %w", radius, ErrInvalidRadius)
	}
	if math.Hypot(target.X, target.Y) < 4*radius {
		return nil, fmt.Errorf("dubins: target (%g, %g) with radius %g: %w",
			target.X, target.Y, radius, ErrTargetTooClose)
	}

	startL := types.Position2D{Y: radius}
	startR := types.Position2D{Y: -radius}
	s, co := math.Sincos(target.Theta)
	endL := types.Position2D{X: target.X - s*radius, Y: target.Y + co*radius}
	endR := types.Position2D{X: target.X + s*radius, Y: target.Y - co*radius}

	candidates := [4]tangent{
		computeTangent(startL, endL, 1, radius, true, LL, true, true),
		computeTangent(startL, endR, 1, radius, false, LR, true, false),
		computeTangent(startR, endL, -1, radius, false, RL, false, true),
		computeTangent(startR, endR, -1, radius, true, RR, false, false),
	}
	best := candidates[0]
	bestLen := math.Inf(1)
	for _, c := range candidates {
		if l := c.from.DistanceSquared(c.to); l < bestLen {
			best, bestLen = c, l
		}
	}

	heading := math.Atan2(best.to.Y-best.from.Y, best.to.X-best.from.X)
	first := types.Pose2D{X: best.from.X, Y: best.from.Y, Theta: unwrap(heading, best.fromLeft)}
	second := types.Pose2D{
		X:     best.to.X,
		Y:     best.to.Y,
		Theta: target.Theta - unwrap(target.Theta-heading, best.toLeft),
	}

	c := &Curve{
		Kind:        best.kind,
		Checkpoints: [3]types.Pose2D{first, second, target},
		Radius:      radius,
		startLeft:   best.fromLeft,
		endLeft:     best.toLeft,
	}
	c.startCenter, c.endCenter = startR, endR
	if best.fromLeft {
		c.startCenter = startL
	}
	if best.toLeft {
		c.endCenter = endL
	}
	return c, nil
}

// computeTangent returns the segment tangent to circles c1 and c2. sens is 1
// when leaving a left circle, -1 when leaving a right one; outer selects the
// tangent that does not cross the line between the centres.
func computeTangent(c1, c2 types.Position2D, sens, radius float64, outer bool, kind Kind, fromLeft, toLeft bool) tangent {
	d := c2.Sub(c1)
	rd := radius / d.Norm()
	cosT, sinT := 0.0, 1.0
	if !outer {
		cosT = 2 * rd
		sinT = math.Sqrt(1 - cosT*cosT)
	}
	slope := types.Position2D{
		X: cosT*d.X + sens*sinT*d.Y,
		Y: -sens*sinT*d.X + cosT*d.Y,
	}.Scale(rd)

	to := c2.Sub(slope)
	if outer {
		to = c2.Add(slope)
	}
	return tangent{from: c1.Add(slope), to: to, fromLeft: fromLeft, toLeft: toLeft, kind: kind}
}

// unwrap maps angle into [0, 2π) for a left turn and (-2π, 0] for a right turn.
func unwrap(angle float64, left bool) float64 {
	if left {
		a := math.Mod(angle, 2*math.Pi)
		if a < 0 {
			a += 2 * math.Pi
		}
		return a
	}
	return -unwrap(-angle, true)
}

// Length returns the total path length: both arcs and the straight segment.
func (c *Curve) Length() float64 {
	first, second, target := c.Checkpoints[0], c.Checkpoints[1], c.Checkpoints[2]
	arc1 := math.Abs(first.Theta) * c.Radius
	arc2 := math.Abs(target.Theta-second.Theta) * c.Radius
	return arc1 + first.Distance(second) + arc2
}

// Sample returns points along the path spaced by at most step.
func (c *Curve) Sample(step float64) ([]types.Position2D, error) {
	if !(step > 0) {
		return nil, fmt.Errorf("dubins: step %g: %w", step, ErrInvalidStep)
	}
	first, second, target := c.Checkpoints[0], c.Checkpoints[1], c.Checkpoints[2]

	var out []types.Position2D
	out = c.appendArc(out, c.startCenter, c.startLeft, 0, first.Theta, step)
	p0 := types.Position2D{X: first.X, Y: first.Y}
	p1 := types.Position2D{X: second.X, Y: second.Y}
	n := max(1, int(math.Ceil(p0.Distance(p1)/step)))
	for i := 1; i <= n; i++ {
		out = append(out, p0.Add(p1.Sub(p0).Scale(float64(i)/float64(n))))
	}
	out = c.appendArc(out, c.endCenter, c.endLeft, second.Theta, target.Theta, step)
	return out, nil
}

func (c *Curve) appendArc(out []types.Position2D, center types.Position2D, left bool, from, to, step float64) []types.Position2D {
	n := max(1, int(math.Ceil(math.Abs(to-from)*c.Radius/step)))
	sign := 1.0
	if !left {
		sign = -1
	}
	first := 1
	if len(out) == 0 {
		first = 0
	}
	for i := first; i <= n; i++ {
		h := from + (to-from)*float64(i)/float64(n)
		s, co := math.Sincos(h)
		out = append(out, center.Add(types.Position2D{X: sign * s, Y: -sign * co}.Scale(c.Radius)))
	}
	return out
}
