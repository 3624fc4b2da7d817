package batch

import (
	"fmt"
	"path/filepath"
)

// DefaultModifiedSubdir is where transformed files land when neither
// an output directory nor in-place overwriting is requested: a
// subdirectory next to each input file.
const DefaultModifiedSubdir = "PagemendOutput"

// Config controls output placement for a batch run.
type Config struct {
	// OutputDir collects all outputs in one directory. Empty means
	// per-input placement.
	OutputDir string
	// ModifiedSubdir names the sibling subdirectory used when
	// OutputDir is empty and Overwrite is off.
	ModifiedSubdir string
	// Overwrite writes each file back over its input.
	Overwrite bool
	// DryRun runs the transformation but writes nothing.
	DryRun bool
}

// DefaultConfig returns the stock placement configuration.
func DefaultConfig() *Config {
	return &Config{ModifiedSubdir: DefaultModifiedSubdir}
}

// Validate rejects contradictory placement settings.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil batch config")
	}
	if c.Overwrite && c.OutputDir != "" {
		return fmt.Errorf("overwrite and output directory are mutually exclusive")
	}
	if !c.Overwrite && c.OutputDir == "" && c.ModifiedSubdir == "" {
		return fmt.Errorf("no output placement configured")
	}
	return nil
}

// OutputPath resolves where the transformed version of input is
// written.
func (c *Config) OutputPath(input string) string {
	switch {
	case c.Overwrite:
		return input
	case c.OutputDir != "":
		return filepath.Join(c.OutputDir, filepath.Base(input))
	default:
		return filepath.Join(filepath.Dir(input), c.ModifiedSubdir, filepath.Base(input))
	}
}
