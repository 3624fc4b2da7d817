package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "text", c.Output.Format)
	assert.Equal(t, "PagemendOutput", c.Output.ModifiedSubdir)
	assert.Equal(t, 16.0, c.Geometry.Distance)
	assert.Equal(t, 64.0, c.Geometry.GapX)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }},
		{"overwrite plus dir", func(c *Config) { c.Output.Overwrite = true; c.Output.Dir = "out" }},
		{"negative distance", func(c *Config) { c.Geometry.Distance = -1 }},
		{"negative gap", func(c *Config) { c.Geometry.GapY = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func newTestLoader() *Loader {
	return &Loader{v: viper.New()}
}

func TestLoader_Defaults(t *testing.T) {
	c, err := newTestLoader().LoadWithFile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Geometry, c.Geometry)
}

func TestLoader_LoadWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pagemend.yaml")
	content := "log_level: debug\ngeometry:\n  distance: 24\noutput:\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c, err := newTestLoader().LoadWithFile(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 24.0, c.Geometry.Distance)
	assert.Equal(t, "json", c.Output.Format)
	// Unset keys keep their defaults.
	assert.Equal(t, 16.0, c.Geometry.BufferSize)
}

func TestLoader_LoadWithFile_Missing(t *testing.T) {
	_, err := newTestLoader().LoadWithFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoader_InvalidValuesRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pagemend.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0o600))

	_, err := newTestLoader().LoadWithFile(path)
	assert.Error(t, err)
}

func TestLoader_Environment(t *testing.T) {
	t.Setenv("PAGEMEND_OUTPUT_FORMAT", "yaml")
	c, err := newTestLoader().LoadWithFile("")
	require.NoError(t, err)
	assert.Equal(t, "yaml", c.Output.Format)
}
