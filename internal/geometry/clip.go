package geometry

import "math"

// clipEps is the distance a point may sit outside a clip edge and
// still count as inside. Intersection points computed during clipping
// land a few ulps off the edge; admitting that slack keeps a second
// clip from re-cutting an already clipped ring.
const clipEps = 1e-7

// FitIntoParent clips polygon against the convex hull of the parent
// boundary using Sutherland-Hodgman and guarantees that every returned
// point lies inside the parent's closure. Returns ErrEmptyIntersection
// when the two shapes do not overlap; the caller treats that as a
// per-line repair failure, not a fatal condition.
//
// Clipping against the hull rather than the raw boundary keeps the
// algorithm exact for non-convex region outlines at the cost of
// slightly over-admitting concave pockets.
func FitIntoParent(polygon, parent []Point) ([]Point, error) {
	if len(polygon) < 3 || len(parent) < 3 {
		return nil, ErrDegenerate
	}
	clip := ConvexHull(parent)
	if len(clip) < 3 {
		return nil, ErrDegenerate
	}
	// Sutherland-Hodgman assumes a consistent winding for the inside
	// test; normalize the hull to positive signed area.
	if SignedArea(clip) < 0 {
		reverse(clip)
	}
	out := append([]Point(nil), polygon...)
	for i := range clip {
		a := clip[i]
		b := clip[(i+1)%len(clip)]
		out = clipAgainstEdge(out, a, b)
		if len(out) == 0 {
			return nil, ErrEmptyIntersection
		}
	}
	out = RemoveRepeatedPoints(out, 1e-9)
	if len(out) < 3 {
		return nil, ErrEmptyIntersection
	}
	return out, nil
}

// clipAgainstEdge keeps the part of subject on the inner side of the
// directed edge ab, inserting intersection points where the subject
// crosses the edge.
func clipAgainstEdge(subject []Point, a, b Point) []Point {
	// cross scales with the edge length, so the tolerance has to as
	// well to stay a distance bound.
	margin := -clipEps * math.Hypot(b.X-a.X, b.Y-a.Y)
	var out []Point
	n := len(subject)
	for i := range n {
		cur := subject[i]
		prev := subject[(i+n-1)%n]
		curIn := cross(a, b, cur) >= margin
		prevIn := cross(a, b, prev) >= margin
		switch {
		case curIn && prevIn:
			out = append(out, cur)
		case curIn && !prevIn:
			out = append(out, lineIntersection(prev, cur, a, b), cur)
		case !curIn && prevIn:
			out = append(out, lineIntersection(prev, cur, a, b))
		}
	}
	return out
}

// lineIntersection returns the intersection of line pq with the
// infinite line through ab. Callers only invoke it when pq straddles
// ab, so the denominator cannot vanish in practice.
func lineIntersection(p, q, a, b Point) Point {
	d1 := cross(a, b, p)
	d2 := cross(a, b, q)
	if d1 == d2 {
		return p
	}
	t := d1 / (d1 - d2)
	return Point{X: p.X + t*(q.X-p.X), Y: p.Y + t*(q.Y-p.Y)}
}

func reverse(pts []Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
