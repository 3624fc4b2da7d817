// Package batch runs a page operation over many PAGE-XML files:
// discovery of the input set, per-file processing with isolated
// failures, output placement and report formatting.
package batch

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pagemend/pagemend/internal/model"
	"github.com/pagemend/pagemend/internal/ops"
)

// Run applies op to every file in paths. A file that fails to parse,
// transform or serialize is recorded as failed and the batch moves on;
// Run itself only errors when the input set is empty or the
// configuration is unusable.
func Run(paths []string, op ops.Operation, config *Config) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	files, err := DiscoverFiles(paths)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result := &Result{Operation: op.Name()}
	for _, file := range files {
		fr := processFile(file, op, config)
		if fr.Error != "" {
			slog.Warn("file failed", "op", op.Name(), "file", file, "error", fr.Error)
			result.Failed++
		} else {
			result.Processed++
		}
		result.Files = append(result.Files, fr)
	}
	result.Duration = time.Since(start)
	return result, nil
}

// processFile loads, transforms and saves a single file.
func processFile(path string, op ops.Operation, config *Config) FileResult {
	fr := FileResult{Input: path}
	page, err := model.Load(path)
	if err != nil {
		fr.Error = err.Error()
		return fr
	}
	if err := op.Apply(page); err != nil {
		fr.Error = err.Error()
		return fr
	}
	fr.Lines = page.Count(model.CountTextLines)

	out := config.OutputPath(path)
	fr.Output = out
	if config.DryRun {
		slog.Info("dry run, not writing", "file", path, "output", out)
		return fr
	}
	if err := page.Save(out); err != nil {
		fr.Error = err.Error()
	}
	return fr
}

// FileResult records the outcome for one input file.
type FileResult struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	Lines  int    `json:"lines" yaml:"lines"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Result aggregates a batch run.
type Result struct {
	Operation string        `json:"operation" yaml:"operation"`
	Files     []FileResult  `json:"files" yaml:"files"`
	Processed int           `json:"processed" yaml:"processed"`
	Failed    int           `json:"failed" yaml:"failed"`
	Duration  time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// Err returns a summary error when every file in the batch failed.
func (r *Result) Err() error {
	if len(r.Files) > 0 && r.Failed == len(r.Files) {
		return errors.New("all files failed")
	}
	return nil
}

// Summary is a one-line human description of the run.
func (r *Result) Summary() string {
	return fmt.Sprintf("%s: %d processed, %d failed in %v",
		r.Operation, r.Processed, r.Failed, r.Duration.Round(time.Millisecond))
}
