package collisions

import (
	"cmp"
	"math"
	"slices"

	"github.com/aldebaran/libalmath/core"
	"github.com/aldebaran/libalmath/types"
)

const (
	// DuplicateEpsilon is the default distance under which two input points
	// are merged. It equals core.DefaultEpsilon.
	DuplicateEpsilon = core.DefaultEpsilon
	// IsLeftEpsilon is the default tolerance of IsLeft and the cross product
	// tolerance of the hull side test.
	IsLeftEpsilon = 1e-6
)

// alignedSin is the sine of the largest angle, 0.01 degree, for which three
// points are considered aligned.
var alignedSin = math.Sin(0.01 * math.Pi / 180)

// ConvexHull returns the convex hull of points as a closed counter-clockwise
// polygon starting at the lowest-x (then lowest-y) point: the first vertex is
// repeated at the end. Near-duplicate points and points lying between two
// aligned neighbours are discarded first; when fewer than three points remain
// they are returned unchanged. core.WithEpsilon sets the merge distance.
func ConvexHull(points []types.Position2D, opts ...core.Option) []types.Position2D {
	eps := core.ApplyOptions(opts...).Epsilon
	pts := removeAligned(removeDuplicates(points, eps), eps)
	if len(pts) < 3 {
		return pts
	}
	slices.SortFunc(pts, func(a, b types.Position2D) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})

	hull := []types.Position2D{pts[0]}
	cur := pts[0]
	for range pts {
		next, ok := nextHullVertex(cur, pts)
		if !ok {
			break
		}
		hull = append(hull, next)
		if next == pts[0] {
			break
		}
		cur = next
	}
	return hull
}

// nextHullVertex finds the point b such that no point of pts lies strictly to
// the right of the line cur→b.
func nextHullVertex(cur types.Position2D, pts []types.Position2D) (types.Position2D, bool) {
	for _, cand := range pts {
		if cand == cur {
			continue
		}
		ok := true
		for _, p := range pts {
			if side(cur, cand, p, IsLeftEpsilon) < 0 {
				ok = false
				break
			}
		}
		if ok {
			return cand, true
		}
	}
	return types.Position2D{}, false
}

// side is the unnormalized orientation test: 1 if c is left of a→b, -1 if
// right, 0 within eps.
func side(a, b, c types.Position2D, eps float64) int {
	cross := b.Sub(a).Cross(c.Sub(a))
	switch {
	case cross > eps:
		return 1
	case cross < -eps:
		return -1
	default:
		return 0
	}
}

// IsLeft reports on which side of the line a→b the point c lies, comparing
// the sine of the angle between the normalized directions with eps: 1 for
// left, -1 for right and 0 when the points are aligned or coincident.
func IsLeft(a, b, c types.Position2D, eps float64) int {
	d1, err := b.Sub(a).Normalize()
	if err != nil {
		return 0
	}
	d2, err := c.Sub(a).Normalize()
	if err != nil {
		return 0
	}
	s := d1.Cross(d2)
	switch {
	case s > eps:
		return 1
	case s < -eps:
		return -1
	default:
		return 0
	}
}

// removeDuplicates keeps the last of every group of points within eps of
// each other, preserving input order.
func removeDuplicates(points []types.Position2D, eps float64) []types.Position2D {
	out := make([]types.Position2D, 0, len(points))
	for i, p := range points {
		dup := false
		for _, q := range points[i+1:] {
			if p.IsNear(q, eps) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// removeAligned drops every point lying between two other aligned points.
func removeAligned(points []types.Position2D, eps float64) []types.Position2D {
	n := len(points)
	between := make([]bool, n)
	for j := range n {
		for i := 0; i < n && !between[j]; i++ {
			if i == j {
				continue
			}
			for k := i + 1; k < n; k++ {
				if k != j && isBetween(points[i], points[j], points[k], eps) {
					between[j] = true
					break
				}
			}
		}
	}
	out := make([]types.Position2D, 0, n)
	for i, p := range points {
		if !between[i] {
			out = append(out, p)
		}
	}
	return out
}

// isBetween reports whether a, b and c are distinct within eps, aligned, and
// b lies on the segment [a, c].
func isBetween(a, b, c types.Position2D, eps float64) bool {
	if a.IsNear(b, eps) || a.IsNear(c, eps) || b.IsNear(c, eps) {
		return false
	}
	d1, err := b.Sub(a).Normalize()
	if err != nil {
		return false
	}
	d2, err := a.Sub(c).Normalize()
	if err != nil {
		return false
	}
	if math.Abs(d1.Cross(d2)) > alignedSin {
		return false
	}
	ac := a.Distance(c)
	return a.Distance(b) <= ac && b.Distance(c) <= ac
}

// SimplifyConvexHull removes from a closed polygon the vertices whose turning
// angle has a sine smaller than sin(minAngle). The result is closed again.
func SimplifyConvexHull(hull []types.Position2D, minAngle float64) []types.Position2D {
	if len(hull) < 4 {
		return slices.Clone(hull)
	}
	open := hull[:len(hull)-1]
	n := len(open)
	limit := math.Sin(minAngle)
	out := make([]types.Position2D, 0, len(hull))
	for j, p := range open {
		prev := open[(j+n-1)%n]
		next := open[(j+1)%n]
		d1, err1 := p.Sub(prev).Normalize()
		d2, err2 := next.Sub(p).Normalize()
		if err1 == nil && err2 == nil && math.Abs(d1.Cross(d2)) < limit {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return out
	}
	return append(out, out[0])
}
