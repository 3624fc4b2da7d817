package model

import (
	"errors"
	"fmt"

	"github.com/pagemend/pagemend/internal/geometry"
	"github.com/pagemend/pagemend/internal/pagexml"
)

// ErrNoBaseline is returned by operations that need a baseline when
// the line does not carry one.
var ErrNoBaseline = errors.New("line has no baseline")

// ErrNoPolygon is returned by operations that need a line polygon when
// the line does not carry one.
var ErrNoPolygon = errors.New("line has no polygon")

// Line is the unit of geometric work: one text line with a baseline
// polyline and an optional boundary polygon. It mutates the underlying
// PAGE-XML element in place; every operation parses the current point
// strings and writes the transformed result straight back.
type Line struct {
	el     *pagexml.TextLine
	region *Region
}

// ID returns the line's identifier.
func (l *Line) ID() string { return l.el.ID }

// Element exposes the underlying PAGE-XML element.
func (l *Line) Element() *pagexml.TextLine { return l.el }

// Region returns the region the line belongs to.
func (l *Line) Region() *Region { return l.region }

// Baseline returns the parsed baseline polyline, or ErrNoBaseline.
func (l *Line) Baseline() ([]geometry.Point, error) {
	if l.el.Baseline == nil {
		return nil, ErrNoBaseline
	}
	pts, err := pagexml.ParsePoints(l.el.Baseline.Points)
	if err != nil {
		return nil, fmt.Errorf("line %s baseline: %w", l.el.ID, err)
	}
	return pts, nil
}

// Polygon returns the parsed boundary polygon, or ErrNoPolygon.
func (l *Line) Polygon() ([]geometry.Point, error) {
	if l.el.Coords == nil || l.el.Coords.Points == "" {
		return nil, ErrNoPolygon
	}
	pts, err := pagexml.ParsePoints(l.el.Coords.Points)
	if err != nil {
		return nil, fmt.Errorf("line %s polygon: %w", l.el.ID, err)
	}
	return pts, nil
}

// SetBaseline writes pts back as the line's baseline.
func (l *Line) SetBaseline(pts []geometry.Point) {
	if l.el.Baseline == nil {
		l.el.Baseline = &pagexml.Baseline{}
	}
	l.el.Baseline.Points = pagexml.FormatPoints(pts)
}

// SetPolygon writes pts back as the line's boundary polygon.
func (l *Line) SetPolygon(pts []geometry.Point) {
	if l.el.Coords == nil {
		l.el.Coords = &pagexml.Coords{}
	}
	l.el.Coords.Points = pagexml.FormatPoints(pts)
}

// Text returns the line-level transcription, empty when absent.
func (l *Line) Text() string {
	if l.el.TextEquiv == nil {
		return ""
	}
	return l.el.TextEquiv.Unicode
}

// SetText replaces the line-level transcription.
func (l *Line) SetText(text string) {
	if l.el.TextEquiv == nil {
		l.el.TextEquiv = &pagexml.TextEquiv{}
	}
	l.el.TextEquiv.Unicode = text
}

// RemoveRepeatedPoints collapses consecutive polygon points closer
// than tolerance. Lines without a polygon are left alone.
func (l *Line) RemoveRepeatedPoints(tolerance float64) error {
	ring, err := l.Polygon()
	if errors.Is(err, ErrNoPolygon) {
		return nil
	}
	if err != nil {
		return err
	}
	l.SetPolygon(geometry.RemoveRepeatedPoints(ring, tolerance))
	return nil
}

// ValidatePolygon reports whether the current polygon is a valid
// simple ring. A missing polygon counts as valid; there is nothing to
// repair.
func (l *Line) ValidatePolygon() bool {
	ring, err := l.Polygon()
	if errors.Is(err, ErrNoPolygon) {
		return true
	}
	if err != nil {
		return false
	}
	return geometry.IsSimpleRing(ring)
}

// ConvexHull replaces the polygon with its convex hull, the standard
// repair for self-intersecting line outlines.
func (l *Line) ConvexHull() error {
	ring, err := l.Polygon()
	if err != nil {
		return err
	}
	hull := geometry.ConvexHull(ring)
	if len(hull) < 3 {
		return fmt.Errorf("line %s: %w", l.el.ID, geometry.ErrDegenerate)
	}
	l.SetPolygon(hull)
	return nil
}

// ValidateBaseline checks the baseline has at least two points and a
// nonzero length.
func (l *Line) ValidateBaseline() error {
	pts, err := l.Baseline()
	if err != nil {
		return err
	}
	if len(pts) < 2 || geometry.PolylineLength(pts) == 0 {
		return fmt.Errorf("line %s: baseline %w", l.el.ID, geometry.ErrDegenerate)
	}
	return nil
}

// Buffer grows the line outline by distance pixels. When the line has
// a polygon it is expanded; otherwise the baseline is buffered into a
// new polygon. direction restricts the growth axes, rectangle selects
// an axis-aligned box result.
func (l *Line) Buffer(distance float64, direction geometry.Direction, rectangle bool) error {
	if ring, err := l.Polygon(); err == nil {
		out, err := geometry.ExpandRing(ring, distance, direction, rectangle)
		if err != nil {
			return fmt.Errorf("line %s: %w", l.el.ID, err)
		}
		l.SetPolygon(out)
		return nil
	}
	baseline, err := l.Baseline()
	if err != nil {
		return err
	}
	out, err := geometry.BufferPolyline(baseline, distance, direction, rectangle)
	if err != nil {
		return fmt.Errorf("line %s: %w", l.el.ID, err)
	}
	l.SetPolygon(out)
	return nil
}

// FitIntoParent clips the polygon to the owning region's boundary
// (falling back to the page boundary when the region has none).
func (l *Line) FitIntoParent() error {
	ring, err := l.Polygon()
	if err != nil {
		return err
	}
	boundary, err := l.region.Boundary()
	if err != nil {
		return err
	}
	clipped, err := geometry.FitIntoParent(ring, boundary)
	if err != nil {
		return fmt.Errorf("line %s: %w", l.el.ID, err)
	}
	l.SetPolygon(clipped)
	return nil
}

// ComputePseudoPolygon derives the polygon purely from the baseline by
// buffering it. Callers must have sorted the region's lines into
// reading order first: the downstream overlap correction assumes list
// adjacency reflects physical adjacency.
func (l *Line) ComputePseudoPolygon(buffersize float64) error {
	baseline, err := l.Baseline()
	if err != nil {
		return err
	}
	ring, err := geometry.BufferPolyline(baseline, buffersize, geometry.DirectionAll, false)
	if err != nil {
		return fmt.Errorf("line %s: %w", l.el.ID, err)
	}
	l.SetPolygon(ring)
	return nil
}

// TranslateBaseline shifts only the baseline vertically.
func (l *Line) TranslateBaseline(yoff float64) error {
	baseline, err := l.Baseline()
	if err != nil {
		return err
	}
	l.SetBaseline(geometry.Translate(baseline, 0, yoff))
	return nil
}

// Translate shifts baseline and polygon by (xoff, yoff). Missing parts
// are skipped.
func (l *Line) Translate(xoff, yoff float64) error {
	if baseline, err := l.Baseline(); err == nil {
		l.SetBaseline(geometry.Translate(baseline, xoff, yoff))
	} else if !errors.Is(err, ErrNoBaseline) {
		return err
	}
	if ring, err := l.Polygon(); err == nil {
		l.SetPolygon(geometry.Translate(ring, xoff, yoff))
	} else if !errors.Is(err, ErrNoPolygon) {
		return err
	}
	return nil
}

// baselineExtension is how far ExtendBaseline extrapolates each
// endpoint, in pixels.
const baselineExtension = 5.0

// ExtendBaseline extrapolates the baseline endpoints slightly so that
// a subsequent buffering covers ascenders and descenders at the line
// edges.
func (l *Line) ExtendBaseline() error {
	baseline, err := l.Baseline()
	if err != nil {
		return err
	}
	extended, err := geometry.ExtendPolyline(baseline, baselineExtension)
	if err != nil {
		return fmt.Errorf("line %s: %w", l.el.ID, err)
	}
	l.SetBaseline(extended)
	return nil
}

// SplitOverlapWith resolves polygon overlap between this line and its
// predecessor in reading order. The dividing cut sits at the vertical
// midpoint between the two baselines; without baselines it falls back
// to the midpoint of the bounding-box overlap.
func (l *Line) SplitOverlapWith(predecessor *Line) error {
	ring, err := l.Polygon()
	if err != nil {
		return err
	}
	predRing, err := predecessor.Polygon()
	if err != nil {
		return err
	}
	cutY, ok := l.cutBetween(predecessor)
	if !ok {
		// Midpoint of the overlap band: predecessor bottom to this
		// line's top.
		_, predMax := geometry.BoundingBox(predRing)
		curMin, _ := geometry.BoundingBox(ring)
		cutY = (curMin.Y + predMax.Y) / 2
	}
	predOut, curOut := geometry.SplitOverlappingRings(predRing, ring, cutY)
	predecessor.SetPolygon(predOut)
	l.SetPolygon(curOut)
	return nil
}

// cutBetween returns the vertical midpoint between this line's
// baseline and the predecessor's.
func (l *Line) cutBetween(predecessor *Line) (float64, bool) {
	cur, err := l.Baseline()
	if err != nil || len(cur) == 0 {
		return 0, false
	}
	pred, err := predecessor.Baseline()
	if err != nil || len(pred) == 0 {
		return 0, false
	}
	return (geometry.Centroid(pred).Y + geometry.Centroid(cur).Y) / 2, true
}

// PlacePolygonOverBaseline shifts the polygon vertically so that its
// vertical center sits on the baseline. Used before translating lines
// so that baseline and polygon move as one unit.
func (l *Line) PlacePolygonOverBaseline() error {
	ring, err := l.Polygon()
	if err != nil {
		return err
	}
	baseline, err := l.Baseline()
	if err != nil {
		return err
	}
	minPt, maxPt := geometry.BoundingBox(ring)
	center := (minPt.Y + maxPt.Y) / 2
	dy := geometry.Centroid(baseline).Y - center
	l.SetPolygon(geometry.Translate(ring, 0, dy))
	return nil
}
