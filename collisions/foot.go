package collisions

import (
	"math"

	"github.com/aldebaran/libalmath/types"
)

const (
	// intersectionTolerance is the smallest cross product of two segment
	// directions for which the segments are not considered parallel.
	intersectionTolerance = 1e-5
	// footDichotomySteps bounds the bisection on the foot rotation.
	footDichotomySteps = 5
	// ellipseMargin is how far outside the unit ellipse a step must be
	// before it is clipped.
	ellipseMargin = 1.00001
)

// SegmentIntersection returns the single point shared by segments [a1, a2]
// and [b1, b2]. Parallel, collinear and degenerate segments report false.
func SegmentIntersection(a1, a2, b1, b2 types.Position2D) (types.Position2D, bool) {
	ga := a2.Sub(a1)
	gb := b2.Sub(b1)
	den := gb.X*ga.Y - ga.X*gb.Y
	if math.Abs(den) < intersectionTolerance {
		return types.Position2D{}, false
	}
	rb := (ga.Y*(a1.X-b1.X) + ga.X*(b1.Y-a1.Y)) / den
	if rb < 0 || rb > 1 {
		return types.Position2D{}, false
	}
	var ra float64
	switch {
	case math.Abs(ga.X) >= intersectionTolerance:
		ra = (b1.X - a1.X + rb*gb.X) / ga.X
	case math.Abs(ga.Y) >= intersectionTolerance:
		ra = (b1.Y - a1.Y + rb*gb.Y) / ga.Y
	default:
		return types.Position2D{}, false
	}
	if ra < 0 || ra > 1 {
		return types.Position2D{}, false
	}
	return a1.Add(ga.Scale(ra)), true
}

// insideBox reports whether p lies strictly to the right of every edge of
// the clockwise polygon box.
func insideBox(box []types.Position2D, p types.Position2D) bool {
	for i, a := range box {
		b := box[(i+1)%len(box)]
		if side(a, b, p, 0) >= 0 {
			return false
		}
	}
	return true
}

// BoxesCollide reports whether two clockwise polygons overlap: an edge of one
// crosses an edge of the other, or one contains the first vertex of the other.
func BoxesCollide(a, b []types.Position2D) bool {
	for i := range a {
		for j := range b {
			if _, ok := SegmentIntersection(a[i], a[(i+1)%len(a)], b[j], b[(j+1)%len(b)]); ok {
				return true
			}
		}
	}
	if len(a) > 0 && insideBox(b, a[0]) {
		return true
	}
	return len(b) > 0 && insideBox(a, b[0])
}

// MoveBox applies the planar displacement move to every vertex of box.
func MoveBox(box []types.Position2D, move types.Pose2D) []types.Position2D {
	s, c := math.Sincos(move.Theta)
	out := make([]types.Position2D, len(box))
	for i, p := range box {
		out[i] = types.Position2D{
			X: move.X + c*p.X - s*p.Y,
			Y: move.Y + s*p.X + c*p.Y,
		}
	}
	return out
}

// AvoidFootCollision checks the step move of the swing foot against the
// support foot. Bounding boxes are clockwise polygons in the frame of the
// support foot; the right foot swings when leftSupport is true. When the
// moved swing box collides, the rotation of move is reduced by bisection
// towards zero and the collision-free move is returned with true.
func AvoidFootCollision(left, right []types.Position2D, leftSupport bool, move types.Pose2D) (types.Pose2D, bool) {
	fixed, moving := right, left
	if leftSupport {
		fixed, moving = left, right
	}
	if !BoxesCollide(fixed, MoveBox(moving, move)) {
		return move, false
	}

	lo, hi := 0.0, move.Theta
	best := 0.0
	for range footDichotomySteps {
		mid := (lo + hi) / 2
		move.Theta = mid
		if BoxesCollide(fixed, MoveBox(moving, move)) {
			hi = mid
		} else {
			best = mid
			lo = mid
		}
	}
	move.Theta = best
	return move, true
}

// ClipFootWithEllipse projects the translation of move onto the ellipse of
// semi-axes |maxX| and |maxY| when it lies outside. The rotation is kept.
func ClipFootWithEllipse(maxX, maxY float64, move types.Pose2D) (types.Pose2D, bool) {
	a, b := math.Abs(maxX), math.Abs(maxY)
	if move.X*move.X/(a*a)+move.Y*move.Y/(b*b) < ellipseMargin {
		return move, false
	}
	s, c := math.Sincos(math.Atan2(move.Y, move.X))
	t := a * b / math.Sqrt(b*b*c*c+a*a*s*s)
	move.X, move.Y = t*c, t*s
	return move, true
}
