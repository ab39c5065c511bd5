package collisions

import "github.com/aldebaran/libalmath/types"

// ClosestPointOnSegment3D returns the point of segment [a, b] closest to c.
func ClosestPointOnSegment3D(a, b, c types.Position3D) types.Position3D {
	ab := b.Sub(a)
	t := c.Sub(a).Dot(ab)
	if t <= 0 {
		return a
	}
	l := ab.Dot(ab)
	if l <= t {
		return b
	}
	return a.Add(ab.Scale(t / l))
}

// DistancePointToSegment3D returns the distance from c to segment [a, b].
func DistancePointToSegment3D(a, b, c types.Position3D) float64 {
	return c.Distance(ClosestPointOnSegment3D(a, b, c))
}

// DistanceBetweenSegments3D returns the smallest distance between segments
// [a, b] and [c, d].
func DistanceBetweenSegments3D(a, b, c, d types.Position3D) float64 {
	u := b.Sub(a)
	v := d.Sub(c)
	w := a.Sub(c)
	uu := u.Dot(u)
	uv := u.Dot(v)
	vv := v.Dot(v)
	uw := u.Dot(w)
	vw := v.Dot(w)
	den := uu*vv - uv*uv

	// s parametrizes [a, b] and t parametrizes [c, d], both as num/den.
	sN, sD := 0.0, den
	tN, tD := 0.0, den
	if den <= parallelEpsilon*uu*vv {
		sN, sD = 0, 1
		tN, tD = vw, vv
	} else {
		sN = uv*vw - vv*uw
		tN = uu*vw - uv*uw
		switch {
		case sN < 0:
			sN = 0
			tN, tD = vw, vv
		case sN > sD:
			sN = sD
			tN, tD = vw+uv, vv
		}
	}

	switch {
	case tN < 0:
		tN = 0
		switch {
		case -uw < 0:
			sN = 0
		case -uw > uu:
			sN = sD
		default:
			sN, sD = -uw, uu
		}
	case tN > tD:
		tN = tD
		switch {
		case -uw+uv < 0:
			sN = 0
		case -uw+uv > uu:
			sN = sD
		default:
			sN, sD = -uw+uv, uu
		}
	}

	var s, t float64
	if sN != 0 {
		s = sN / sD
	}
	if tN != 0 {
		t = tN / tD
	}
	return w.Add(u.Scale(s)).Sub(v.Scale(t)).Norm()
}

const parallelEpsilon = 1e-12
