package ops

import (
	"errors"

	"github.com/pagemend/pagemend/internal/model"
)

// TranslateLines shifts every line by a fixed offset, keeping baseline
// and polygon together. Before moving, each polygon is re-centered
// over its baseline so lines whose coordinates drifted apart move as
// one unit; afterwards the polygons are clipped back into their
// region.
type TranslateLines struct {
	XOffset float64
	YOffset float64
}

func (TranslateLines) Name() string { return "translate-lines" }

func (t TranslateLines) Apply(page *model.Page) error {
	forEachLine(t.Name(), page, func(line *model.Line) error {
		if err := line.PlacePolygonOverBaseline(); err != nil && !skippable(err) {
			return err
		}
		if err := line.Translate(t.XOffset, t.YOffset); err != nil {
			return err
		}
		if err := line.FitIntoParent(); err != nil && !errors.Is(err, model.ErrNoPolygon) {
			return err
		}
		return nil
	})
	return nil
}
