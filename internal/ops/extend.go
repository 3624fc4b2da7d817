package ops

import (
	"fmt"

	"github.com/pagemend/pagemend/internal/geometry"
	"github.com/pagemend/pagemend/internal/model"
)

// ExtendLines grows every line polygon outward by Distance pixels and
// clips the result back into the owning region. Lines without a
// polygon are buffered from their baseline instead.
type ExtendLines struct {
	// Distance is the growth in pixels.
	Distance float64
	// Direction restricts growth to one axis; DirectionAll grows both.
	Direction geometry.Direction
	// Rectify replaces each result with its axis-aligned bounding box.
	Rectify bool
	// CutOverlaps splits polygon overlap between vertically adjacent
	// lines after growing.
	CutOverlaps bool
}

func (ExtendLines) Name() string { return "extend-lines" }

func (e ExtendLines) Apply(page *model.Page) error {
	if !e.Direction.Valid() {
		return fmt.Errorf("extend-lines: invalid direction %q", string(e.Direction))
	}
	forEachLine(e.Name(), page, func(line *model.Line) error {
		if err := line.Buffer(e.Distance, e.Direction, e.Rectify); err != nil {
			return err
		}
		return line.FitIntoParent()
	})
	if e.CutOverlaps {
		cutOverlaps(e.Name(), page)
	}
	return nil
}

// cutOverlaps walks each region's lines in list order and splits the
// polygon overlap of every adjacent pair.
func cutOverlaps(op string, page *model.Page) {
	for _, region := range page.Regions() {
		for i := 1; i < len(region.Lines); i++ {
			prev, cur := region.Lines[i-1], region.Lines[i]
			if !polygonsOverlap(prev, cur) {
				continue
			}
			if err := cur.SplitOverlapWith(prev); err != nil {
				logLineError(op, page, cur, err)
			}
		}
	}
}

func polygonsOverlap(a, b *model.Line) bool {
	ringA, err := a.Polygon()
	if err != nil {
		return false
	}
	ringB, err := b.Polygon()
	if err != nil {
		return false
	}
	return geometry.Overlaps(ringA, ringB)
}
