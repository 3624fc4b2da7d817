// Package geometry provides the 2D primitives used to repair and derive
// PAGE-XML line and region polygons. Coordinates follow the image
// convention: x grows to the right, y grows downwards.
package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerate is returned when an operation needs at least two
// distinct input points and the input does not provide them.
var ErrDegenerate = errors.New("geometry: degenerate input")

// ErrEmptyIntersection is returned by FitIntoParent when the polygon
// and the parent boundary do not overlap at all.
var ErrEmptyIntersection = errors.New("geometry: empty intersection")

// Point is a 2D point in pixel coordinates.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Direction restricts which axes a buffer operation may grow into.
type Direction string

const (
	DirectionAll Direction = "all"
	DirectionX   Direction = "x"
	DirectionY   Direction = "y"
)

// Valid reports whether d names a known buffer direction.
func (d Direction) Valid() bool {
	switch d {
	case DirectionAll, DirectionX, DirectionY:
		return true
	}
	return false
}

func errInvalidDirection(d Direction) error {
	return fmt.Errorf("geometry: invalid buffer direction %q", string(d))
}

// Translate shifts every point by (dx, dy) and returns the result as a
// new slice; the input is left untouched.
func Translate(pts []Point, dx, dy float64) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}

// BoundingBox returns the min and max corners of the axis-aligned
// bounding box of pts. Calling it with no points yields two zero points.
func BoundingBox(pts []Point) (minPt, maxPt Point) {
	if len(pts) == 0 {
		return Point{}, Point{}
	}
	minPt = pts[0]
	maxPt = pts[0]
	for _, p := range pts[1:] {
		minPt.X = math.Min(minPt.X, p.X)
		minPt.Y = math.Min(minPt.Y, p.Y)
		maxPt.X = math.Max(maxPt.X, p.X)
		maxPt.Y = math.Max(maxPt.Y, p.Y)
	}
	return minPt, maxPt
}

// Centroid returns the average of pts.
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	n := float64(len(pts))
	return Point{X: cx / n, Y: cy / n}
}

// RemoveRepeatedPoints collapses consecutive points closer than
// tolerance into a single point. The closing duplicate of a ring (last
// point within tolerance of the first) is dropped as well, so rings
// stay implicitly closed.
func RemoveRepeatedPoints(pts []Point, tolerance float64) []Point {
	if len(pts) == 0 {
		return nil
	}
	out := make([]Point, 0, len(pts))
	out = append(out, pts[0])
	for _, p := range pts[1:] {
		if p.Distance(out[len(out)-1]) >= tolerance {
			out = append(out, p)
		}
	}
	if len(out) > 1 && out[len(out)-1].Distance(out[0]) < tolerance {
		out = out[:len(out)-1]
	}
	return out
}

// PolylineLength returns the total length of the polyline pts.
func PolylineLength(pts []Point) float64 {
	var total float64
	for i := 1; i < len(pts); i++ {
		total += pts[i].Distance(pts[i-1])
	}
	return total
}

// ExtendPolyline extrapolates both endpoints of a polyline by amount
// pixels along their end-segment directions. Inputs with fewer than two
// distinct points return ErrDegenerate.
func ExtendPolyline(pts []Point, amount float64) ([]Point, error) {
	if countDistinct(pts) < 2 {
		return nil, ErrDegenerate
	}
	out := append([]Point(nil), pts...)
	first, second := out[0], nextDistinct(out, 0)
	last, prev := out[len(out)-1], prevDistinct(out, len(out)-1)
	out[0] = extrapolate(second, first, amount)
	out[len(out)-1] = extrapolate(prev, last, amount)
	return out, nil
}

// extrapolate moves "to" further away from "from" by amount pixels.
func extrapolate(from, to Point, amount float64) Point {
	d := from.Distance(to)
	if d == 0 {
		return to
	}
	return Point{
		X: to.X + (to.X-from.X)/d*amount,
		Y: to.Y + (to.Y-from.Y)/d*amount,
	}
}

func nextDistinct(pts []Point, i int) Point {
	for _, p := range pts[i+1:] {
		if p != pts[i] {
			return p
		}
	}
	return pts[i]
}

func prevDistinct(pts []Point, i int) Point {
	for j := i - 1; j >= 0; j-- {
		if pts[j] != pts[i] {
			return pts[j]
		}
	}
	return pts[i]
}

func countDistinct(pts []Point) int {
	seen := make(map[Point]struct{}, len(pts))
	for _, p := range pts {
		seen[p] = struct{}{}
	}
	return len(seen)
}
