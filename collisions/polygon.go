package collisions

import "github.com/aldebaran/libalmath/types"

// rayOffset is the far end of the test ray, relative to the tested point.
var rayOffset = types.Position2D{X: 10, Y: 9}

// IsInsidePolygon reports whether p lies inside polygon using ray casting.
// The polygon may be given open or closed; it is closed implicitly. An empty
// polygon contains nothing.
func IsInsidePolygon(p types.Position2D, polygon []types.Position2D) bool {
	if len(polygon) == 0 {
		return false
	}
	far := p.Add(rayOffset)
	count := 0
	for i := range polygon {
		a := polygon[i]
		b := polygon[(i+1)%len(polygon)]
		if SegmentsIntersect(a, b, p, far) {
			count++
		}
	}
	return count%2 == 1
}

// SegmentsIntersect reports whether segments [a, b] and [c, d] share a point.
// Collinear overlapping segments count as intersecting.
func SegmentsIntersect(a, b, c, d types.Position2D) bool {
	denom := (d.Y-c.Y)*(b.X-a.X) - (b.Y-a.Y)*(d.X-c.X)
	numA := (a.Y-c.Y)*(d.X-c.X) - (d.Y-c.Y)*(a.X-c.X)
	numB := (a.Y-c.Y)*(b.X-a.X) - (b.Y-a.Y)*(a.X-c.X)
	if denom == 0 {
		return numA == 0 && numB == 0
	}
	ua := numA / denom
	ub := numB / denom
	return ua >= 0 && ua <= 1 && ub >= 0 && ub <= 1
}
