package config

import (
	"fmt"

	"github.com/pagemend/pagemend/internal/ops"
)

// Config represents the complete configuration of the application. It
// supports loading from configuration files, environment variables and
// command-line flags.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Output placement
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`

	// Geometry operation tuning
	Geometry GeometryConfig `mapstructure:"geometry" yaml:"geometry" json:"geometry"`

	// Workspace registry
	Workspace WorkspaceConfig `mapstructure:"workspace" yaml:"workspace" json:"workspace"`
}

// OutputConfig controls where transformed files and reports go.
type OutputConfig struct {
	// Dir collects all outputs in one directory; empty keeps outputs
	// next to their inputs.
	Dir string `mapstructure:"dir" yaml:"dir" json:"dir"`
	// ModifiedSubdir names the per-input output subdirectory.
	ModifiedSubdir string `mapstructure:"modified_subdir" yaml:"modified_subdir" json:"modified_subdir"`
	// Overwrite writes files back in place.
	Overwrite bool `mapstructure:"overwrite" yaml:"overwrite" json:"overwrite"`
	// Format selects the report format: text, json or yaml.
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// GeometryConfig carries the tunable distances of the line operations,
// all in pixels.
type GeometryConfig struct {
	Distance   float64 `mapstructure:"distance" yaml:"distance" json:"distance"`
	BufferSize float64 `mapstructure:"buffer_size" yaml:"buffer_size" json:"buffer_size"`
	GapX       float64 `mapstructure:"gap_x" yaml:"gap_x" json:"gap_x"`
	GapY       float64 `mapstructure:"gap_y" yaml:"gap_y" json:"gap_y"`
	YOffset    float64 `mapstructure:"y_offset" yaml:"y_offset" json:"y_offset"`
}

// WorkspaceConfig locates the workspace registry.
type WorkspaceConfig struct {
	// RegistryPath overrides the default registry file location.
	RegistryPath string `mapstructure:"registry_path" yaml:"registry_path" json:"registry_path"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Output: OutputConfig{
			ModifiedSubdir: "PagemendOutput",
			Format:         "text",
		},
		Geometry: GeometryConfig{
			Distance:   ops.DefaultDistance,
			BufferSize: ops.DefaultBufferSize,
			GapX:       ops.DefaultGapX,
			GapY:       ops.DefaultGapY,
			YOffset:    ops.DefaultYOffset,
		},
	}
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid output format %q", c.Output.Format)
	}
	if c.Output.Overwrite && c.Output.Dir != "" {
		return fmt.Errorf("output.overwrite and output.dir are mutually exclusive")
	}
	if c.Geometry.Distance < 0 || c.Geometry.BufferSize < 0 {
		return fmt.Errorf("geometry distances must not be negative")
	}
	if c.Geometry.GapX < 0 || c.Geometry.GapY < 0 {
		return fmt.Errorf("geometry gaps must not be negative")
	}
	return nil
}
