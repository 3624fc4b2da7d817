package model

import (
	"slices"
	"strings"

	"github.com/pagemend/pagemend/internal/geometry"
	"github.com/pagemend/pagemend/internal/pagexml"
)

// CountLevel selects the granularity of element counting.
type CountLevel string

const (
	CountTextLines CountLevel = "textlines"
	CountWords     CountLevel = "words"
	CountGlyphs    CountLevel = "glyphs"
)

// rowTolerance is the baseline-Y proximity within which two lines are
// considered part of the same visual row when sorting.
const rowTolerance = 10.0

// Region wraps a TextRegion or a TableCell: an ordered collection of
// lines whose list order is the current reading order.
type Region struct {
	el    *pagexml.Region
	page  *Page
	Lines []*Line
}

func newRegion(el *pagexml.Region, page *Page) *Region {
	r := &Region{el: el, page: page}
	for _, tl := range el.TextLines {
		r.Lines = append(r.Lines, &Line{el: tl, region: r})
	}
	return r
}

// ID returns the region's identifier.
func (r *Region) ID() string { return r.el.ID }

// Element exposes the underlying PAGE-XML element.
func (r *Region) Element() *pagexml.Region { return r.el }

// Boundary returns the region's boundary polygon, falling back to the
// page boundary when the region carries no usable Coords.
func (r *Region) Boundary() ([]geometry.Point, error) {
	if r.el.Coords != nil && r.el.Coords.Points != "" {
		ring, err := pagexml.ParsePoints(r.el.Coords.Points)
		if err == nil && len(ring) >= 3 {
			return ring, nil
		}
	}
	return r.page.Boundary(), nil
}

// sortKey is the (row, x) position a line sorts by.
type sortKey struct {
	y float64
	x float64
}

// lineSortKey positions a line by its baseline, falling back to the
// polygon when the baseline is missing.
func (r *Region) lineSortKey(l *Line) sortKey {
	if pts, err := l.Baseline(); err == nil && len(pts) > 0 {
		minPt, _ := geometry.BoundingBox(pts)
		return sortKey{y: geometry.Centroid(pts).Y, x: minPt.X}
	}
	if ring, err := l.Polygon(); err == nil && len(ring) > 0 {
		minPt, maxPt := geometry.BoundingBox(ring)
		return sortKey{y: (minPt.Y + maxPt.Y) / 2, x: minPt.X}
	}
	return sortKey{}
}

// SortLines reorders the lines into reading order: rows are grouped by
// baseline-Y proximity within rowTolerance, ordered top to bottom, and
// each row runs left to right. The grouping is deterministic, so
// re-sorting an already sorted region changes nothing.
func (r *Region) SortLines() {
	keys := make(map[*Line]sortKey, len(r.Lines))
	for _, l := range r.Lines {
		keys[l] = r.lineSortKey(l)
	}
	// Top to bottom first; stable so equal-Y lines keep their order.
	slices.SortStableFunc(r.Lines, func(a, b *Line) int {
		switch ka, kb := keys[a], keys[b]; {
		case ka.y < kb.y:
			return -1
		case ka.y > kb.y:
			return 1
		}
		return 0
	})
	// Cluster into rows: a line opens a new row when its baseline sits
	// more than rowTolerance below the previous line's.
	var out []*Line
	for start := 0; start < len(r.Lines); {
		end := start + 1
		for end < len(r.Lines) && keys[r.Lines[end]].y-keys[r.Lines[end-1]].y <= rowTolerance {
			end++
		}
		row := append([]*Line(nil), r.Lines[start:end]...)
		slices.SortStableFunc(row, func(a, b *Line) int {
			switch ka, kb := keys[a], keys[b]; {
			case ka.x < kb.x:
				return -1
			case ka.x > kb.x:
				return 1
			}
			return 0
		})
		out = append(out, row...)
		start = end
	}
	r.Lines = out
	r.syncLineElements()
}

// MergeSplitLines merges consecutive lines that were split apart by
// segmentation: when the horizontal gap between the end of one
// baseline and the start of the next is at most gapX and their
// vertical offset is at most gapY, the two lines become one. Merging
// is transitive within the pass, so a merged line can absorb the next
// candidate too. Call SortLines first; the predicate only inspects
// adjacent list entries.
//
// The merged polygon is the convex hull of both source polygons; when
// either side has none, it is recomputed from the joined baseline.
func (r *Region) MergeSplitLines(gapX, gapY float64) {
	if len(r.Lines) < 2 {
		return
	}
	merged := []*Line{r.Lines[0]}
	for _, next := range r.Lines[1:] {
		cur := merged[len(merged)-1]
		if !mergeable(cur, next, gapX, gapY) {
			merged = append(merged, next)
			continue
		}
		mergeInto(cur, next)
	}
	r.Lines = merged
	r.syncLineElements()
}

// mergeable applies the gap predicate to two adjacent lines. Lines
// without baselines never merge.
func mergeable(cur, next *Line, gapX, gapY float64) bool {
	curPts, err := cur.Baseline()
	if err != nil || len(curPts) == 0 {
		return false
	}
	nextPts, err := next.Baseline()
	if err != nil || len(nextPts) == 0 {
		return false
	}
	end := curPts[len(curPts)-1]
	start := nextPts[0]
	dx := start.X - end.X
	dy := start.Y - end.Y
	if dy < 0 {
		dy = -dy
	}
	return dx >= 0 && dx <= gapX && dy <= gapY
}

// mergeInto folds next into cur: baselines concatenate, texts join
// with a single space, polygons combine.
func mergeInto(cur, next *Line) {
	curPts, _ := cur.Baseline()
	nextPts, _ := next.Baseline()
	joined := append(append([]geometry.Point{}, curPts...), nextPts...)
	cur.SetBaseline(joined)

	curRing, curErr := cur.Polygon()
	nextRing, nextErr := next.Polygon()
	if curErr == nil && nextErr == nil {
		hull := geometry.ConvexHull(append(append([]geometry.Point{}, curRing...), nextRing...))
		cur.SetPolygon(hull)
	} else {
		// At least one side has no polygon: recompute from the joined
		// baseline. A degenerate baseline leaves the polygon as-is.
		_ = cur.ComputePseudoPolygon(defaultPseudoBuffer)
	}

	curText := strings.TrimSpace(cur.Text())
	nextText := strings.TrimSpace(next.Text())
	switch {
	case curText == "":
		if nextText != "" {
			cur.SetText(nextText)
		}
	case nextText != "":
		cur.SetText(curText + " " + nextText)
	}
	// The consumed line's words move along with the text.
	cur.el.Words = append(cur.el.Words, next.el.Words...)
}

// defaultPseudoBuffer matches the pseudo-polygon driver default.
const defaultPseudoBuffer = 16.0

// syncLineElements rewrites the XML element list to match r.Lines.
func (r *Region) syncLineElements() {
	els := make([]*pagexml.TextLine, len(r.Lines))
	for i, l := range r.Lines {
		els[i] = l.el
	}
	r.el.TextLines = els
}

// Count returns the number of child elements at the requested
// granularity, recursing through words and glyphs.
func (r *Region) Count(level CountLevel) int {
	switch level {
	case CountTextLines:
		return len(r.Lines)
	case CountWords:
		n := 0
		for _, l := range r.Lines {
			n += len(l.el.Words)
		}
		return n
	case CountGlyphs:
		n := 0
		for _, l := range r.Lines {
			for _, w := range l.el.Words {
				n += len(w.Glyphs)
			}
		}
		return n
	}
	return 0
}
