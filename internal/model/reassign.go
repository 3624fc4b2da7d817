package model

import (
	"fmt"

	"github.com/pagemend/pagemend/internal/pagexml"
)

// ReassignIDs renumbers every region and its children with sequential
// identifiers, walking regions in the resolved reading order. Regions
// become r1, r2, ... (skipping numbers that would collide with an
// identifier already reserved by a non-region element); children are
// numbered per parent under the parent's new namespace: table cells
// get a "c" segment, lines "l", words "w" and glyphs "g" — so the
// second word of the first line of region r3 becomes r3l1w2. Reading
// order references are rewritten through the id mapping, which is
// returned for the caller's reporting and discarded afterwards.
func (p *Page) ReassignIDs(mode ReadingOrderMode) (map[string]string, error) {
	order, err := p.ReadingOrderIDs(mode)
	if err != nil {
		return nil, err
	}
	// Regions referenced by the resolved order come first; regions the
	// order does not mention follow in document order.
	seen := make(map[string]bool, len(order))
	var regions []*pagexml.Region
	for _, id := range order {
		if region := p.regionByID(id); region != nil && !seen[id] {
			regions = append(regions, region)
			seen[id] = true
		}
	}
	for _, region := range p.doc.Page.Regions {
		if (region.IsTextRegion() || region.IsTableRegion()) && !seen[region.ID] {
			regions = append(regions, region)
			seen[region.ID] = true
		}
	}

	mapping := make(map[string]string, len(regions))
	next := 1
	for _, region := range regions {
		for !p.validRegionID(next) {
			next++
		}
		oldID := region.ID
		newID := fmt.Sprintf("r%d", next)
		region.ID = newID
		if oldID != "" {
			mapping[oldID] = newID
		}
		reassignChildren(region, newID)
		next++
	}

	p.rewriteReadingOrder(mapping)
	return mapping, nil
}

// reassignChildren renumbers a region's nested elements under the
// parent's new identifier, restarting each child counter per parent.
func reassignChildren(region *pagexml.Region, parentID string) {
	for i, cell := range region.Cells {
		cellID := fmt.Sprintf("%sc%d", parentID, i+1)
		cell.ID = cellID
		reassignLines(cell.TextLines, cellID)
	}
	reassignLines(region.TextLines, parentID)
}

func reassignLines(lines []*pagexml.TextLine, parentID string) {
	for i, line := range lines {
		lineID := fmt.Sprintf("%sl%d", parentID, i+1)
		line.ID = lineID
		for j, word := range line.Words {
			wordID := fmt.Sprintf("%sw%d", lineID, j+1)
			word.ID = wordID
			for k, glyph := range word.Glyphs {
				glyph.ID = fmt.Sprintf("%sg%d", wordID, k+1)
			}
		}
	}
}

// rewriteReadingOrder updates every region reference through the id
// mapping so no dangling old identifier remains.
func (p *Page) rewriteReadingOrder(mapping map[string]string) {
	ro := p.doc.Page.ReadingOrder
	if ro == nil {
		return
	}
	for _, group := range ro.Groups {
		for _, ref := range group.Refs {
			if newID, ok := mapping[ref.RegionRef]; ok {
				ref.RegionRef = newID
			}
		}
	}
}
