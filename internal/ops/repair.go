package ops

import (
	"log/slog"

	"github.com/pagemend/pagemend/internal/model"
)

// repairTolerance is the spacing below which consecutive polygon
// points collapse into one during repair.
const repairTolerance = 1.0

// Repair normalizes line geometry: duplicate polygon points are
// removed, self-intersecting outlines are replaced with their convex
// hull, and degenerate baselines are reported.
type Repair struct{}

func (Repair) Name() string { return "repair" }

func (r Repair) Apply(page *model.Page) error {
	forEachLine(r.Name(), page, func(line *model.Line) error {
		if err := line.RemoveRepeatedPoints(repairTolerance); err != nil {
			return err
		}
		if !line.ValidatePolygon() {
			slog.Info("repairing self-intersecting polygon",
				"file", page.Path, "line", line.ID())
			if err := line.ConvexHull(); err != nil {
				return err
			}
		}
		if err := line.ValidateBaseline(); err != nil && !skippable(err) {
			slog.Warn("degenerate baseline", "file", page.Path, "line", line.ID(), "error", err)
		}
		return nil
	})
	return nil
}
