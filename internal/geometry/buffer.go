package geometry

import "math"

// BufferPolyline offsets an open polyline (typically a baseline)
// outward by distance pixels and returns the enclosing ring.
//
// With rectangular set, the result is the axis-aligned bounding box of
// the polyline expanded by distance in the directions dir permits.
// Otherwise the ring follows the polyline: one side shifted up, one
// side shifted down, with the end caps extended horizontally when dir
// allows growth along x. Polylines with steep or leftward-running
// segments, and any self-intersecting band, fall back to the convex
// hull of the per-vertex expansion corners, so the result always
// encloses the polyline expanded by distance along the permitted
// axes.
func BufferPolyline(pts []Point, distance float64, dir Direction, rectangular bool) ([]Point, error) {
	if countDistinct(pts) < 2 {
		return nil, ErrDegenerate
	}
	if !dir.Valid() {
		return nil, errInvalidDirection(dir)
	}
	dx, dy := axisOffsets(distance, dir)
	if rectangular {
		return expandedBox(pts, dx, dy), nil
	}
	// Vertical-only growth of a flat polyline would collapse to a line,
	// so a zero dy degrades to the rectangular form.
	if dy == 0 {
		return expandedBox(pts, dx, dy), nil
	}
	// The band shifts vertices vertically, which only stays within
	// distance of chains that run rightward at least as fast as they
	// rise when horizontal growth is requested.
	if dx > 0 && !bandable(pts) {
		return cornerHull(pts, dx, dy)
	}
	top := make([]Point, len(pts))
	bottom := make([]Point, len(pts))
	for i, p := range pts {
		top[i] = Point{X: p.X, Y: p.Y - dy}
		bottom[i] = Point{X: p.X, Y: p.Y + dy}
	}
	// End caps keep the offset end vertices in place and extend flat
	// copies outward, so the full vertical expansion survives at the
	// ends of sloped polylines.
	if dx > 0 {
		top = extendFlat(top, dx)
		bottom = extendFlat(bottom, dx)
	}
	ring := make([]Point, 0, 2*len(pts))
	ring = append(ring, top...)
	for i := len(bottom) - 1; i >= 0; i-- {
		ring = append(ring, bottom[i])
	}
	ring = RemoveRepeatedPoints(ring, 1e-9)
	if !IsSimpleRing(ring) {
		return cornerHull(pts, dx, dy)
	}
	if len(ring) < 3 {
		return nil, ErrDegenerate
	}
	return ring, nil
}

// extendFlat surrounds a chain with horizontal copies of its end
// vertices shifted outward by dx.
func extendFlat(chain []Point, dx float64) []Point {
	out := make([]Point, 0, len(chain)+2)
	out = append(out, Point{X: chain[0].X - dx, Y: chain[0].Y})
	out = append(out, chain...)
	out = append(out, Point{X: chain[len(chain)-1].X + dx, Y: chain[len(chain)-1].Y})
	return out
}

// bandable reports whether every segment of pts runs rightward at
// least as fast as it rises. A vertically shifted band only stays
// within the buffer distance of such chains.
func bandable(pts []Point) bool {
	for i := 1; i < len(pts); i++ {
		if pts[i].X-pts[i-1].X < math.Abs(pts[i].Y-pts[i-1].Y) {
			return false
		}
	}
	return true
}

// cornerHull returns the convex hull of every vertex of pts expanded
// to the four corners of its dx by dy box. The hull encloses any
// convex combination of the input shifted by up to dx and dy along
// the axes.
func cornerHull(pts []Point, dx, dy float64) ([]Point, error) {
	corners := make([]Point, 0, 4*len(pts))
	for _, p := range pts {
		corners = append(corners,
			Point{X: p.X - dx, Y: p.Y - dy},
			Point{X: p.X + dx, Y: p.Y - dy},
			Point{X: p.X + dx, Y: p.Y + dy},
			Point{X: p.X - dx, Y: p.Y + dy},
		)
	}
	ring := ConvexHull(corners)
	if len(ring) < 3 {
		return nil, ErrDegenerate
	}
	return ring, nil
}

// ExpandRing grows a closed ring by distance pixels away from its
// centroid along the axes dir permits. With rectangular set, the
// expanded bounding box is returned instead. Falls back to the convex
// hull when the expansion self-intersects.
func ExpandRing(ring []Point, distance float64, dir Direction, rectangular bool) ([]Point, error) {
	if countDistinct(ring) < 2 {
		return nil, ErrDegenerate
	}
	if !dir.Valid() {
		return nil, errInvalidDirection(dir)
	}
	dx, dy := axisOffsets(distance, dir)
	if rectangular {
		return expandedBox(ring, dx, dy), nil
	}
	c := Centroid(ring)
	out := make([]Point, len(ring))
	for i, p := range ring {
		out[i] = Point{X: p.X + dx*sign(p.X-c.X), Y: p.Y + dy*sign(p.Y-c.Y)}
	}
	out = RemoveRepeatedPoints(out, 1e-9)
	if !IsSimpleRing(out) {
		out = ConvexHull(out)
	}
	if len(out) < 3 {
		return nil, ErrDegenerate
	}
	return out, nil
}

// expandedBox returns the bounding box of pts grown by dx and dy, as a
// 4-vertex ring starting at the top-left corner.
func expandedBox(pts []Point, dx, dy float64) []Point {
	minPt, maxPt := BoundingBox(pts)
	return []Point{
		{X: minPt.X - dx, Y: minPt.Y - dy},
		{X: maxPt.X + dx, Y: minPt.Y - dy},
		{X: maxPt.X + dx, Y: maxPt.Y + dy},
		{X: minPt.X - dx, Y: maxPt.Y + dy},
	}
}

func axisOffsets(distance float64, dir Direction) (dx, dy float64) {
	switch dir {
	case DirectionX:
		return distance, 0
	case DirectionY:
		return 0, distance
	default:
		return distance, distance
	}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
