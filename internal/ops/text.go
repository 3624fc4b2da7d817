package ops

import (
	"github.com/pagemend/pagemend/internal/model"
)

// DeleteText removes transcription content at one granularity while
// leaving all geometry untouched.
type DeleteText struct {
	Level model.TextLevel
}

func (DeleteText) Name() string { return "delete-text" }

func (d DeleteText) Apply(page *model.Page) error {
	return page.DeleteTextLevel(d.Level)
}
