package model

import (
	"fmt"

	"github.com/pagemend/pagemend/internal/geometry"
	"github.com/pagemend/pagemend/internal/pagexml"
)

// ReadingOrderMode selects how region reading order is resolved.
type ReadingOrderMode string

const (
	// OrderAuto prefers the explicit reading order and falls back to
	// document order when none is present.
	OrderAuto ReadingOrderMode = "auto"
	// OrderReadingOrder uses only the explicit ReadingOrder element.
	OrderReadingOrder ReadingOrderMode = "reading_order"
	// OrderDocument uses the storage order of the regions.
	OrderDocument ReadingOrderMode = "document"
)

// Valid reports whether m names a known reading-order mode.
func (m ReadingOrderMode) Valid() bool {
	switch m {
	case OrderAuto, OrderReadingOrder, OrderDocument:
		return true
	}
	return false
}

// Page is the root of the document model: a parsed PAGE-XML file with
// its text regions and table regions. Page dimensions are fixed at
// load time.
type Page struct {
	Path         string
	doc          *pagexml.PcGts
	TextRegions  []*Region
	TableRegions []*TableRegion
}

// TableRegion owns table cells; each cell behaves like a text region.
type TableRegion struct {
	el    *pagexml.Region
	page  *Page
	Cells []*Region
}

// ID returns the table region's identifier.
func (t *TableRegion) ID() string { return t.el.ID }

// Lines returns a flattened view of all lines across the cells.
func (t *TableRegion) Lines() []*Line {
	var lines []*Line
	for _, c := range t.Cells {
		lines = append(lines, c.Lines...)
	}
	return lines
}

// Load parses the PAGE-XML file at path into a Page.
func Load(path string) (*Page, error) {
	doc, err := pagexml.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return NewPage(path, doc), nil
}

// NewPage builds the model over an already parsed document.
func NewPage(path string, doc *pagexml.PcGts) *Page {
	p := &Page{Path: path, doc: doc}
	for _, region := range doc.Page.Regions {
		switch {
		case region.IsTextRegion():
			p.TextRegions = append(p.TextRegions, newRegion(region, p))
		case region.IsTableRegion():
			tr := &TableRegion{el: region, page: p}
			for _, cell := range region.Cells {
				tr.Cells = append(tr.Cells, newRegion(cell, p))
			}
			p.TableRegions = append(p.TableRegions, tr)
		}
	}
	return p
}

// Document exposes the underlying PAGE-XML document.
func (p *Page) Document() *pagexml.PcGts { return p.doc }

// Save writes the page back to path.
func (p *Page) Save(path string) error {
	return pagexml.WriteFile(path, p.doc)
}

// Size returns the page pixel dimensions.
func (p *Page) Size() (width, height int) {
	return p.doc.Page.ImageWidth, p.doc.Page.ImageHeight
}

// Boundary returns the page outline as a 4-point ring, the clip region
// of last resort for boundary fitting.
func (p *Page) Boundary() []geometry.Point {
	w, h := p.Size()
	return []geometry.Point{
		{X: 0, Y: 0},
		{X: float64(w), Y: 0},
		{X: float64(w), Y: float64(h)},
		{X: 0, Y: float64(h)},
	}
}

// Regions iterates all line-bearing regions: text regions first in
// document order, then table cells.
func (p *Page) Regions() []*Region {
	out := make([]*Region, 0, len(p.TextRegions))
	out = append(out, p.TextRegions...)
	for _, tr := range p.TableRegions {
		out = append(out, tr.Cells...)
	}
	return out
}

// Count returns the number of elements at the requested granularity
// across the whole page.
func (p *Page) Count(level CountLevel) int {
	n := 0
	for _, r := range p.Regions() {
		n += r.Count(level)
	}
	return n
}

// ReadingOrderIDs resolves the region visitation order. In
// reading_order mode the explicit ReadingOrder references are used
// (sorted by their index attribute); document mode walks regions in
// storage order; auto prefers the former and falls back to the latter
// when no references exist.
func (p *Page) ReadingOrderIDs(mode ReadingOrderMode) ([]string, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("invalid reading order mode %q", string(mode))
	}
	var ids []string
	if mode == OrderAuto || mode == OrderReadingOrder {
		ids = p.explicitReadingOrder()
	}
	if mode == OrderDocument || (len(ids) == 0 && mode == OrderAuto) {
		for _, region := range p.doc.Page.Regions {
			if (region.IsTextRegion() || region.IsTableRegion()) && region.ID != "" {
				ids = append(ids, region.ID)
			}
		}
	}
	return ids, nil
}

func (p *Page) explicitReadingOrder() []string {
	ro := p.doc.Page.ReadingOrder
	if ro == nil {
		return nil
	}
	var ids []string
	for _, group := range ro.Groups {
		refs := append([]*pagexml.RegionRefIndexed(nil), group.Refs...)
		for i := 1; i < len(refs); i++ {
			for j := i; j > 0 && refs[j-1].Index > refs[j].Index; j-- {
				refs[j-1], refs[j] = refs[j], refs[j-1]
			}
		}
		for _, ref := range refs {
			ids = append(ids, ref.RegionRef)
		}
	}
	return ids
}

// regionByID finds a region element (text or table) by identifier.
func (p *Page) regionByID(id string) *pagexml.Region {
	for _, region := range p.doc.Page.Regions {
		if region.ID == id && (region.IsTextRegion() || region.IsTableRegion()) {
			return region
		}
	}
	return nil
}

// validRegionID reports whether the identifier "r<n>" is free to use
// for a region: either unused anywhere in the hierarchy, or already
// naming a region (which is about to be renumbered anyway).
func (p *Page) validRegionID(n int) bool {
	id := fmt.Sprintf("r%d", n)
	for _, region := range p.doc.Page.Regions {
		if region.ID == id {
			return region.IsTextRegion() || region.IsTableRegion()
		}
		if regionChildHasID(region, id) {
			return false
		}
	}
	return true
}

func regionChildHasID(region *pagexml.Region, id string) bool {
	for _, cell := range region.Cells {
		if cell.ID == id || regionChildHasID(cell, id) {
			return true
		}
	}
	for _, line := range region.TextLines {
		if line.ID == id {
			return true
		}
		for _, word := range line.Words {
			if word.ID == id {
				return true
			}
			for _, glyph := range word.Glyphs {
				if glyph.ID == id {
					return true
				}
			}
		}
	}
	return false
}
