// Package ops implements the page-level operations behind the CLI
// verbs. Each operation walks a parsed page model and mutates it in
// place; geometry failures on individual lines are logged and skipped
// so one malformed line never aborts a whole page.
package ops

import (
	"errors"
	"log/slog"

	"github.com/pagemend/pagemend/internal/model"
)

// Defaults shared between the operations and their CLI flags.
const (
	DefaultDistance   = 16.0
	DefaultBufferSize = 16.0
	DefaultGapX       = 64.0
	DefaultGapY       = 10.0
	DefaultYOffset    = 10.0
)

// Operation transforms a page in place.
type Operation interface {
	// Name identifies the operation in logs and batch reports.
	Name() string
	// Apply runs the operation over the page.
	Apply(page *model.Page) error
}

// skippable reports whether a per-line failure is an expected gap in
// the input (no baseline, no polygon) rather than broken geometry.
func skippable(err error) bool {
	return errors.Is(err, model.ErrNoBaseline) || errors.Is(err, model.ErrNoPolygon)
}

// logLineError records a per-line failure and signals the caller to
// continue with the next line.
func logLineError(op string, page *model.Page, line *model.Line, err error) {
	var regionID string
	if r := line.Region(); r != nil {
		regionID = r.ID()
	}
	if skippable(err) {
		slog.Debug("skipping line",
			"op", op, "file", page.Path, "region", regionID, "line", line.ID(), "reason", err)
		return
	}
	slog.Warn("line operation failed",
		"op", op, "file", page.Path, "region", regionID, "line", line.ID(), "error", err)
}

// forEachLine applies fn to every line of every region, logging and
// skipping failures. Empty regions are noted at info level.
func forEachLine(op string, page *model.Page, fn func(*model.Line) error) {
	for _, region := range page.Regions() {
		if len(region.Lines) == 0 {
			slog.Info("region has no lines", "op", op, "file", page.Path, "region", region.ID())
			continue
		}
		for _, line := range region.Lines {
			if err := fn(line); err != nil {
				logLineError(op, page, line, err)
			}
		}
	}
}
