package geometry

// Overlaps reports whether two rings share any area. It checks mutual
// point containment and edge crossings, which is sufficient for the
// line polygons handled here.
func Overlaps(a, b []Point) bool {
	if len(a) < 3 || len(b) < 3 {
		return false
	}
	aMin, aMax := BoundingBox(a)
	bMin, bMax := BoundingBox(b)
	if aMax.X < bMin.X || bMax.X < aMin.X || aMax.Y < bMin.Y || bMax.Y < aMin.Y {
		return false
	}
	for _, p := range a {
		if ContainsPoint(b, p) {
			return true
		}
	}
	for _, p := range b {
		if ContainsPoint(a, p) {
			return true
		}
	}
	for i := range a {
		for j := range b {
			if segmentsIntersect(a[i], a[(i+1)%len(a)], b[j], b[(j+1)%len(b)]) {
				return true
			}
		}
	}
	return false
}

// SplitOverlappingRings resolves the overlap between the polygon of a
// line and the polygon of its predecessor by cutting both at the
// horizontal line y = cutY: upper keeps everything above the cut,
// lower keeps everything below. Callers derive cutY from the vertical
// midpoint between the two baselines. Rings that do not overlap are
// returned unchanged, as is a ring whose cut would leave a degenerate
// remainder.
func SplitOverlappingRings(upper, lower []Point, cutY float64) (upperOut, lowerOut []Point) {
	if !Overlaps(upper, lower) {
		return upper, lower
	}
	u := clipHalfPlaneY(upper, cutY, true)
	l := clipHalfPlaneY(lower, cutY, false)
	if len(u) < 3 {
		u = upper
	}
	if len(l) < 3 {
		l = lower
	}
	return u, l
}

// clipHalfPlaneY keeps the part of ring with y <= cutY (above true) or
// y >= cutY (above false).
func clipHalfPlaneY(ring []Point, cutY float64, above bool) []Point {
	inside := func(p Point) bool {
		if above {
			return p.Y <= cutY
		}
		return p.Y >= cutY
	}
	var out []Point
	n := len(ring)
	for i := range n {
		cur := ring[i]
		prev := ring[(i+n-1)%n]
		switch {
		case inside(cur) && inside(prev):
			out = append(out, cur)
		case inside(cur) != inside(prev):
			out = append(out, intersectAtY(prev, cur, cutY))
			if inside(cur) {
				out = append(out, cur)
			}
		}
	}
	return RemoveRepeatedPoints(out, 1e-9)
}

// intersectAtY returns the point where segment pq crosses y = cutY.
func intersectAtY(p, q Point, cutY float64) Point {
	if p.Y == q.Y {
		return Point{X: q.X, Y: cutY}
	}
	t := (cutY - p.Y) / (q.Y - p.Y)
	return Point{X: p.X + t*(q.X-p.X), Y: cutY}
}
