package model

import (
	"encoding/xml"

	"github.com/pagemend/pagemend/internal/geometry"
	"github.com/pagemend/pagemend/internal/pagexml"
)

// Test fixtures: builders for in-memory PAGE documents.

func testDoc(width, height int, regions ...*pagexml.Region) *pagexml.PcGts {
	return &pagexml.PcGts{
		Xmlns: pagexml.Namespace + "2019-07-15",
		Page: pagexml.Page{
			ImageFilename: "test.png",
			ImageWidth:    width,
			ImageHeight:   height,
			Regions:       regions,
		},
	}
}

func textRegion(id, coords string, lines ...*pagexml.TextLine) *pagexml.Region {
	r := &pagexml.Region{
		XMLName:   xml.Name{Local: pagexml.ElemTextRegion},
		ID:        id,
		TextLines: lines,
	}
	if coords != "" {
		r.Coords = &pagexml.Coords{Points: coords}
	}
	return r
}

func tableRegion(id, coords string, cells ...*pagexml.Region) *pagexml.Region {
	r := &pagexml.Region{
		XMLName: xml.Name{Local: pagexml.ElemTableRegion},
		ID:      id,
		Cells:   cells,
	}
	if coords != "" {
		r.Coords = &pagexml.Coords{Points: coords}
	}
	return r
}

func tableCell(id, coords string, lines ...*pagexml.TextLine) *pagexml.Region {
	c := textRegion(id, coords, lines...)
	c.XMLName = xml.Name{Local: pagexml.ElemTableCell}
	return c
}

func textLine(id, baseline, coords, text string) *pagexml.TextLine {
	l := &pagexml.TextLine{ID: id}
	if baseline != "" {
		l.Baseline = &pagexml.Baseline{Points: baseline}
	}
	if coords != "" {
		l.Coords = &pagexml.Coords{Points: coords}
	}
	if text != "" {
		l.TextEquiv = &pagexml.TextEquiv{Unicode: text}
	}
	return l
}

func readingOrder(ids ...string) *pagexml.ReadingOrder {
	group := &pagexml.OrderedGroup{ID: "g1"}
	for i, id := range ids {
		group.Refs = append(group.Refs, &pagexml.RegionRefIndexed{Index: i, RegionRef: id})
	}
	return &pagexml.ReadingOrder{Groups: []*pagexml.OrderedGroup{group}}
}

func baselineOf(l *Line) []geometry.Point {
	pts, err := l.Baseline()
	if err != nil {
		return nil
	}
	return pts
}
