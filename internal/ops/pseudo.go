package ops

import (
	"github.com/pagemend/pagemend/internal/model"
)

// PseudoPolygon rebuilds every line polygon from its baseline. Lines
// are sorted into reading order first; the baselines are extended
// slightly, buffered into polygons, shifted down so the baseline sits
// where a baseline belongs, clipped into the region, and finally
// adjacent overlaps are split.
type PseudoPolygon struct {
	// BufferSize is the buffering distance around the baseline.
	BufferSize float64
	// YOffset shifts each baseline down after buffering.
	YOffset float64
}

func (PseudoPolygon) Name() string { return "pseudo-polygon" }

func (p PseudoPolygon) Apply(page *model.Page) error {
	for _, region := range page.Regions() {
		region.SortLines()
	}
	forEachLine(p.Name(), page, func(line *model.Line) error {
		if err := line.ExtendBaseline(); err != nil {
			return err
		}
		if err := line.ComputePseudoPolygon(p.BufferSize); err != nil {
			return err
		}
		if err := line.TranslateBaseline(p.YOffset); err != nil {
			return err
		}
		return line.FitIntoParent()
	})
	cutOverlaps(p.Name(), page)
	return nil
}
