package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemend/pagemend/internal/geometry"
)

func TestLine_RemoveRepeatedPoints(t *testing.T) {
	doc := testDoc(1000, 1000, textRegion("r1", "0,0 1000,0 1000,1000 0,1000",
		textLine("r1l1", "10,50 400,50", "10,10 10,10 400,10 400,60 10,60 10,10", "")))
	page := NewPage("test.xml", doc)
	line := page.TextRegions[0].Lines[0]

	require.NoError(t, line.RemoveRepeatedPoints(1))
	ring, err := line.Polygon()
	require.NoError(t, err)
	assert.Equal(t, []geometry.Point{{X: 10, Y: 10}, {X: 400, Y: 10}, {X: 400, Y: 60}, {X: 10, Y: 60}}, ring)
}

func TestLine_ValidateAndRepairPolygon(t *testing.T) {
	// Bowtie polygon: invalid, repaired by its convex hull.
	doc := testDoc(1000, 1000, textRegion("r1", "",
		textLine("r1l1", "0,50 100,50", "0,0 100,100 100,0 0,100", "")))
	page := NewPage("test.xml", doc)
	line := page.TextRegions[0].Lines[0]

	assert.False(t, line.ValidatePolygon())
	require.NoError(t, line.ConvexHull())
	assert.True(t, line.ValidatePolygon())
}

func TestLine_ValidatePolygon_MissingIsValid(t *testing.T) {
	doc := testDoc(1000, 1000, textRegion("r1", "", textLine("r1l1", "0,50 100,50", "", "")))
	page := NewPage("test.xml", doc)
	assert.True(t, page.TextRegions[0].Lines[0].ValidatePolygon())
}

func TestLine_ValidateBaseline(t *testing.T) {
	tests := []struct {
		name     string
		baseline string
		wantErr  bool
	}{
		{"valid", "10,50 400,50", false},
		{"single point", "10,50", true},
		{"zero length", "10,50 10,50", true},
		{"missing", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testDoc(1000, 1000, textRegion("r1", "", textLine("r1l1", tt.baseline, "", "")))
			page := NewPage("test.xml", doc)
			err := page.TextRegions[0].Lines[0].ValidateBaseline()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLine_Buffer_FromBaseline(t *testing.T) {
	doc := testDoc(1000, 1000, textRegion("r1", "0,0 1000,0 1000,1000 0,1000",
		textLine("r1l1", "100,50 300,50", "", "")))
	page := NewPage("test.xml", doc)
	line := page.TextRegions[0].Lines[0]

	require.NoError(t, line.Buffer(16, geometry.DirectionAll, true))
	ring, err := line.Polygon()
	require.NoError(t, err)
	assert.Equal(t, []geometry.Point{{X: 84, Y: 34}, {X: 316, Y: 34}, {X: 316, Y: 66}, {X: 84, Y: 66}}, ring)
}

func TestLine_FitIntoParent(t *testing.T) {
	doc := testDoc(1000, 1000, textRegion("r1", "0,0 200,0 200,100 0,100",
		textLine("r1l1", "100,50 300,50", "150,40 350,40 350,60 150,60", "")))
	page := NewPage("test.xml", doc)
	line := page.TextRegions[0].Lines[0]

	require.NoError(t, line.FitIntoParent())
	ring, err := line.Polygon()
	require.NoError(t, err)
	boundary, err := page.TextRegions[0].Boundary()
	require.NoError(t, err)
	for _, p := range ring {
		assert.True(t, geometry.ContainsPoint(boundary, p), "point %v outside region", p)
	}
}

func TestLine_FitIntoParent_PageBoundaryFallback(t *testing.T) {
	// Region without Coords: the page outline clips instead.
	doc := testDoc(200, 100, textRegion("r1", "",
		textLine("r1l1", "", "150,40 350,40 350,60 150,60", "")))
	page := NewPage("test.xml", doc)
	line := page.TextRegions[0].Lines[0]

	require.NoError(t, line.FitIntoParent())
	ring, err := line.Polygon()
	require.NoError(t, err)
	_, maxPt := geometry.BoundingBox(ring)
	assert.LessOrEqual(t, maxPt.X, 200.0)
}

func TestLine_ComputePseudoPolygon(t *testing.T) {
	doc := testDoc(1000, 1000, textRegion("r1", "",
		textLine("r1l1", "100,50 300,52", "", "")))
	page := NewPage("test.xml", doc)
	line := page.TextRegions[0].Lines[0]

	require.NoError(t, line.ComputePseudoPolygon(16))
	ring, err := line.Polygon()
	require.NoError(t, err)
	assert.True(t, geometry.IsSimpleRing(ring))
	assert.True(t, geometry.ContainsPoint(ring, geometry.Point{X: 200, Y: 51}))
}

func TestLine_Translate(t *testing.T) {
	doc := testDoc(1000, 1000, textRegion("r1", "",
		textLine("r1l1", "100,50 300,50", "100,40 300,40 300,60 100,60", "")))
	page := NewPage("test.xml", doc)
	line := page.TextRegions[0].Lines[0]

	require.NoError(t, line.Translate(10, -5))
	baseline, err := line.Baseline()
	require.NoError(t, err)
	assert.Equal(t, geometry.Point{X: 110, Y: 45}, baseline[0])
	ring, err := line.Polygon()
	require.NoError(t, err)
	assert.Equal(t, geometry.Point{X: 110, Y: 35}, ring[0])
}

func TestLine_ExtendBaseline(t *testing.T) {
	doc := testDoc(1000, 1000, textRegion("r1", "",
		textLine("r1l1", "100,50 300,50", "", "")))
	page := NewPage("test.xml", doc)
	line := page.TextRegions[0].Lines[0]

	require.NoError(t, line.ExtendBaseline())
	baseline, err := line.Baseline()
	require.NoError(t, err)
	assert.Equal(t, geometry.Point{X: 95, Y: 50}, baseline[0])
	assert.Equal(t, geometry.Point{X: 305, Y: 50}, baseline[1])
}

func TestLine_SplitOverlapWith(t *testing.T) {
	doc := testDoc(1000, 1000, textRegion("r1", "",
		textLine("r1l1", "0,40 100,40", "0,10 100,10 100,70 0,70", ""),
		textLine("r1l2", "0,80 100,80", "0,50 100,50 100,110 0,110", "")))
	page := NewPage("test.xml", doc)
	first := page.TextRegions[0].Lines[0]
	second := page.TextRegions[0].Lines[1]

	require.NoError(t, second.SplitOverlapWith(first))

	// Cut at the midpoint between baselines: y=60.
	firstRing, err := first.Polygon()
	require.NoError(t, err)
	_, firstMax := geometry.BoundingBox(firstRing)
	assert.InDelta(t, 60, firstMax.Y, 1e-9)

	secondRing, err := second.Polygon()
	require.NoError(t, err)
	secondMin, _ := geometry.BoundingBox(secondRing)
	assert.InDelta(t, 60, secondMin.Y, 1e-9)
}

func TestLine_PlacePolygonOverBaseline(t *testing.T) {
	doc := testDoc(1000, 1000, textRegion("r1", "",
		textLine("r1l1", "100,100 300,100", "100,10 300,10 300,50 100,50", "")))
	page := NewPage("test.xml", doc)
	line := page.TextRegions[0].Lines[0]

	require.NoError(t, line.PlacePolygonOverBaseline())
	ring, err := line.Polygon()
	require.NoError(t, err)
	minPt, maxPt := geometry.BoundingBox(ring)
	assert.InDelta(t, 100, (minPt.Y+maxPt.Y)/2, 1e-9)
}

func TestLine_TextAccessors(t *testing.T) {
	doc := testDoc(1000, 1000, textRegion("r1", "", textLine("r1l1", "", "", "hello")))
	page := NewPage("test.xml", doc)
	line := page.TextRegions[0].Lines[0]

	assert.Equal(t, "hello", line.Text())
	line.SetText("world")
	assert.Equal(t, "world", line.Text())
}
