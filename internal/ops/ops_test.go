package ops

import (
	"bytes"
	"encoding/xml"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemend/pagemend/internal/geometry"
	"github.com/pagemend/pagemend/internal/model"
	"github.com/pagemend/pagemend/internal/pagexml"
)

func buildPage(t *testing.T, regions ...*pagexml.Region) *model.Page {
	t.Helper()
	doc := &pagexml.PcGts{
		Xmlns: pagexml.Namespace + "2019-07-15",
		Page: pagexml.Page{
			ImageFilename: "test.png",
			ImageWidth:    1000,
			ImageHeight:   1000,
			Regions:       regions,
		},
	}
	return model.NewPage("test.xml", doc)
}

func region(id string, lines ...*pagexml.TextLine) *pagexml.Region {
	return &pagexml.Region{
		XMLName:   xml.Name{Local: pagexml.ElemTextRegion},
		ID:        id,
		Coords:    &pagexml.Coords{Points: "0,0 1000,0 1000,1000 0,1000"},
		TextLines: lines,
	}
}

func line(id, baseline, coords string) *pagexml.TextLine {
	l := &pagexml.TextLine{ID: id}
	if baseline != "" {
		l.Baseline = &pagexml.Baseline{Points: baseline}
	}
	if coords != "" {
		l.Coords = &pagexml.Coords{Points: coords}
	}
	return l
}

func polygonBox(t *testing.T, l *model.Line) (geometry.Point, geometry.Point) {
	t.Helper()
	ring, err := l.Polygon()
	require.NoError(t, err)
	minPt, maxPt := geometry.BoundingBox(ring)
	return minPt, maxPt
}

func TestRepair_FixesSelfIntersection(t *testing.T) {
	// A bowtie outline with a duplicated point.
	page := buildPage(t, region("r1",
		line("l1", "0,0 40,0", "0,0 40,40 40,40 40,0 0,40")))

	require.NoError(t, Repair{}.Apply(page))

	l := page.TextRegions[0].Lines[0]
	assert.True(t, l.ValidatePolygon())
	ring, err := l.Polygon()
	require.NoError(t, err)
	assert.True(t, geometry.ContainsPoint(ring, geometry.Point{X: 20, Y: 20}))
}

func TestRepair_LeavesValidLinesAlone(t *testing.T) {
	const coords = "0,0 40,0 40,40 0,40"
	page := buildPage(t, region("r1", line("l1", "0,20 40,20", coords)))

	require.NoError(t, Repair{}.Apply(page))
	assert.Equal(t, coords, page.TextRegions[0].Lines[0].Element().Coords.Points)
}

func TestExtendLines_BuffersBaselineOnlyLine(t *testing.T) {
	page := buildPage(t, region("r1", line("l1", "100,50 300,50", "")))

	op := ExtendLines{Distance: 16, Direction: geometry.DirectionAll, Rectify: true}
	require.NoError(t, op.Apply(page))

	minPt, maxPt := polygonBox(t, page.TextRegions[0].Lines[0])
	assert.Equal(t, geometry.Point{X: 84, Y: 34}, minPt)
	assert.Equal(t, geometry.Point{X: 316, Y: 66}, maxPt)
}

func TestExtendLines_ClipsToRegion(t *testing.T) {
	r := region("r1", line("l1", "100,50 300,50", ""))
	r.Coords = &pagexml.Coords{Points: "90,0 310,0 310,1000 90,1000"}
	page := buildPage(t, r)

	op := ExtendLines{Distance: 16, Direction: geometry.DirectionAll}
	require.NoError(t, op.Apply(page))

	minPt, maxPt := polygonBox(t, page.TextRegions[0].Lines[0])
	assert.GreaterOrEqual(t, minPt.X, 90.0)
	assert.LessOrEqual(t, maxPt.X, 310.0)
}

func TestExtendLines_CutOverlaps(t *testing.T) {
	page := buildPage(t, region("r1",
		line("l1", "100,40 300,40", ""),
		line("l2", "100,80 300,80", "")))

	op := ExtendLines{Distance: 30, Direction: geometry.DirectionAll, CutOverlaps: true}
	require.NoError(t, op.Apply(page))

	lines := page.TextRegions[0].Lines
	_, firstMax := polygonBox(t, lines[0])
	secondMin, _ := polygonBox(t, lines[1])
	// The cut sits at the baseline midpoint.
	assert.InDelta(t, 60.0, firstMax.Y, 0.6)
	assert.InDelta(t, 60.0, secondMin.Y, 0.6)
}

func TestExtendLines_InvalidDirection(t *testing.T) {
	page := buildPage(t, region("r1", line("l1", "100,50 300,50", "")))
	op := ExtendLines{Distance: 16, Direction: geometry.Direction("diagonal")}
	assert.Error(t, op.Apply(page))
}

func TestPseudoPolygon(t *testing.T) {
	page := buildPage(t, region("r1", line("l1", "100,50 300,50", "")))

	op := PseudoPolygon{BufferSize: DefaultBufferSize, YOffset: DefaultYOffset}
	require.NoError(t, op.Apply(page))

	l := page.TextRegions[0].Lines[0]
	// Baseline endpoints extended by 5 and shifted down by 10.
	baseline, err := l.Baseline()
	require.NoError(t, err)
	assert.Equal(t, geometry.Point{X: 95, Y: 60}, baseline[0])
	assert.Equal(t, geometry.Point{X: 305, Y: 60}, baseline[len(baseline)-1])

	minPt, maxPt := polygonBox(t, l)
	assert.InDelta(t, 34.0, minPt.Y, 0.5)
	assert.InDelta(t, 66.0, maxPt.Y, 0.5)
	assert.InDelta(t, 79.0, minPt.X, 0.5)
	assert.InDelta(t, 321.0, maxPt.X, 0.5)
}

func TestPseudoPolygon_SplitsAdjacentOverlap(t *testing.T) {
	page := buildPage(t, region("r1",
		line("l1", "100,40 300,40", ""),
		line("l2", "100,60 300,60", "")))

	op := PseudoPolygon{BufferSize: DefaultBufferSize, YOffset: DefaultYOffset}
	require.NoError(t, op.Apply(page))

	lines := page.TextRegions[0].Lines
	_, firstMax := polygonBox(t, lines[0])
	secondMin, _ := polygonBox(t, lines[1])
	assert.LessOrEqual(t, firstMax.Y, secondMin.Y+0.6)
}

func TestSortAndMerge(t *testing.T) {
	page := buildPage(t, region("r1",
		func() *pagexml.TextLine {
			l := line("l2", "320,102 600,102", "")
			l.TextEquiv = &pagexml.TextEquiv{Unicode: "ple"}
			return l
		}(),
		func() *pagexml.TextLine {
			l := line("l1", "0,100 300,100", "")
			l.TextEquiv = &pagexml.TextEquiv{Unicode: "exam"}
			return l
		}()))

	op := SortAndMerge{GapX: DefaultGapX, GapY: DefaultGapY}
	require.NoError(t, op.Apply(page))

	lines := page.TextRegions[0].Lines
	require.Len(t, lines, 1)
	assert.Equal(t, "exam ple", lines[0].Text())
}

func TestReassignIDs(t *testing.T) {
	page := buildPage(t, region("zeta", line("x", "0,100 100,100", "")))

	require.NoError(t, ReassignIDs{Mode: model.OrderAuto}.Apply(page))

	assert.Equal(t, "r1", page.TextRegions[0].ID())
	assert.Equal(t, "r1l1", page.TextRegions[0].Lines[0].ID())
}

func TestDeleteText(t *testing.T) {
	l := line("l1", "0,100 100,100", "")
	l.TextEquiv = &pagexml.TextEquiv{Unicode: "text"}
	page := buildPage(t, region("r1", l))

	require.NoError(t, DeleteText{Level: model.LevelLine}.Apply(page))
	assert.Nil(t, l.TextEquiv)

	assert.Error(t, DeleteText{Level: model.TextLevel("nope")}.Apply(page))
}

func TestTranslateLines(t *testing.T) {
	page := buildPage(t, region("r1",
		line("l1", "100,50 300,50", "100,30 300,30 300,70 100,70")))

	require.NoError(t, TranslateLines{XOffset: 10, YOffset: 20}.Apply(page))

	l := page.TextRegions[0].Lines[0]
	baseline, err := l.Baseline()
	require.NoError(t, err)
	assert.Equal(t, geometry.Point{X: 110, Y: 70}, baseline[0])

	minPt, maxPt := polygonBox(t, l)
	assert.Equal(t, 110.0, minPt.X)
	assert.Equal(t, 310.0, maxPt.X)
	// Polygon rides along, still centered on the baseline.
	assert.InDelta(t, 70.0, (minPt.Y+maxPt.Y)/2, 0.01)
}

func TestLineFailureLogsRegionAndLine(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(prev)

	page := buildPage(t, region("r7", line("l1", "not a point list", "")))
	op := ExtendLines{Distance: 16, Direction: geometry.DirectionAll}
	require.NoError(t, op.Apply(page))

	out := buf.String()
	assert.Contains(t, out, "region=r7")
	assert.Contains(t, out, "line=l1")
}

func TestOperationNames(t *testing.T) {
	ops := []Operation{
		Repair{}, ExtendLines{}, PseudoPolygon{}, SortAndMerge{},
		ReassignIDs{}, DeleteText{}, TranslateLines{},
	}
	seen := map[string]bool{}
	for _, op := range ops {
		name := op.Name()
		assert.NotEmpty(t, name)
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}
}
