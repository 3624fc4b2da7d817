package geometry

import (
	"math"
	"slices"
)

// IsSimpleRing reports whether ring is a valid simple closed ring: at
// least three distinct vertices and no two non-adjacent edges crossing.
func IsSimpleRing(ring []Point) bool {
	ring = RemoveRepeatedPoints(ring, 1e-9)
	n := len(ring)
	if n < 3 || countDistinct(ring) < 3 {
		return false
	}
	for i := range n {
		a1 := ring[i]
		a2 := ring[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// Skip adjacent edges; they share an endpoint.
			if (j+1)%n == i || (i+1)%n == j {
				continue
			}
			b1 := ring[j]
			b2 := ring[(j+1)%n]
			if segmentsIntersect(a1, a2, b1, b2) {
				return false
			}
		}
	}
	return true
}

// SignedArea returns the signed area of ring; positive for clockwise
// rings in image coordinates (y down).
func SignedArea(ring []Point) float64 {
	var area float64
	n := len(ring)
	for i := range n {
		a := ring[i]
		b := ring[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

// ConvexHull computes the convex hull of pts with the monotone chain
// algorithm. The hull is returned without duplicating the first point
// at the end. Used as the repair fallback for broken line polygons.
func ConvexHull(pts []Point) []Point {
	p := append([]Point(nil), pts...)
	slices.SortFunc(p, func(a, b Point) int {
		if a.X != b.X {
			if a.X < b.X {
				return -1
			}
			return 1
		}
		if a.Y != b.Y {
			if a.Y < b.Y {
				return -1
			}
			return 1
		}
		return 0
	})
	p = slices.Compact(p)
	if len(p) <= 2 {
		return p
	}
	hull := make([]Point, 0, 2*len(p))
	// Lower chain.
	for _, pt := range p {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], pt) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, pt)
	}
	// Upper chain.
	lower := len(hull) + 1
	for i := len(p) - 2; i >= 0; i-- {
		pt := p[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], pt) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, pt)
	}
	return hull[:len(hull)-1]
}

// ContainsPoint reports whether p lies inside or on the boundary of
// ring, using the even-odd ray casting rule with a small tolerance for
// boundary points.
func ContainsPoint(ring []Point, p Point) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	for i := range n {
		if distanceToSegment(p, ring[i], ring[(i+1)%n]) < 1e-9 {
			return true
		}
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

func cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func distanceToSegment(p, a, b Point) float64 {
	vx, vy := b.X-a.X, b.Y-a.Y
	if vx == 0 && vy == 0 {
		return p.Distance(a)
	}
	t := ((p.X-a.X)*vx + (p.Y-a.Y)*vy) / (vx*vx + vy*vy)
	t = math.Max(0, math.Min(1, t))
	return p.Distance(Point{X: a.X + t*vx, Y: a.Y + t*vy})
}

// segmentsIntersect reports whether segments a1a2 and b1b2 properly
// intersect or overlap collinearly.
func segmentsIntersect(a1, a2, b1, b2 Point) bool {
	d1 := cross(b1, b2, a1)
	d2 := cross(b1, b2, a2)
	d3 := cross(a1, a2, b1)
	d4 := cross(a1, a2, b2)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	switch {
	case d1 == 0 && onSegment(b1, b2, a1):
		return true
	case d2 == 0 && onSegment(b1, b2, a2):
		return true
	case d3 == 0 && onSegment(a1, a2, b1):
		return true
	case d4 == 0 && onSegment(a1, a2, b2):
		return true
	}
	return false
}

func onSegment(a, b, p Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}
