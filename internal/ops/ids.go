package ops

import (
	"log/slog"

	"github.com/pagemend/pagemend/internal/model"
)

// ReassignIDs renumbers every region, line, word and glyph with
// sequential hierarchical identifiers following the page's reading
// order.
type ReassignIDs struct {
	// Mode resolves the region order the numbering follows.
	Mode model.ReadingOrderMode
}

func (ReassignIDs) Name() string { return "reassign-ids" }

func (r ReassignIDs) Apply(page *model.Page) error {
	mapping, err := page.ReassignIDs(r.Mode)
	if err != nil {
		return err
	}
	slog.Debug("reassigned region ids", "file", page.Path, "regions", len(mapping))
	return nil
}
