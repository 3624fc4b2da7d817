package ops

import (
	"github.com/pagemend/pagemend/internal/model"
)

// SortAndMerge sorts each region's lines into reading order and then
// merges fragments that segmentation split apart on the same visual
// row.
type SortAndMerge struct {
	// GapX is the largest horizontal gap, end of one baseline to start
	// of the next, across which two lines still merge.
	GapX float64
	// GapY is the largest vertical baseline offset for a merge.
	GapY float64
}

func (SortAndMerge) Name() string { return "sort-and-merge" }

func (s SortAndMerge) Apply(page *model.Page) error {
	for _, region := range page.Regions() {
		region.SortLines()
		region.MergeSplitLines(s.GapX, s.GapY)
	}
	return nil
}
