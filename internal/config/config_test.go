package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"reseq/internal/config"
	"reseq/internal/errors"
	"reseq/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary YAML config file
func createTestYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reseq.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const (
	validYAML = `
numbering:
  prefix: "Chapter"
  start: 0
  padding: 3
listing:
  order: mtime
  include: "*.{mp4,mkv}"
appearance:
  theme: dark
watch:
  enabled: true
  debounce_ms: 500
rename:
  dry_run: true
`
	partialYAML = `
numbering:
  prefix: "Track"
`
	invalidSyntaxYAML = `
numbering:
  prefix: "Track
  start: one
`
	unknownKeyYAML = `
numbering:
  suffix: "x"
`
)

func TestDefaults(t *testing.T) {
	cfg := config.New()
	assert.Equal(t, "Episode", cfg.Numbering.Prefix)
	assert.Equal(t, 1, cfg.Numbering.Start)
	assert.Equal(t, 2, cfg.Numbering.Padding)
	assert.Equal(t, types.OrderName, cfg.Listing.Order)
	assert.Equal(t, config.ThemeSystem, cfg.Appearance.Theme)
	assert.False(t, cfg.Watch.Enabled)
	assert.Equal(t, 250*time.Millisecond, cfg.Debounce())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("load valid config", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(createTestYAML(t, validYAML))
		require.NoError(t, err)

		assert.Equal(t, "Chapter", cfg.Numbering.Prefix)
		assert.Equal(t, 0, cfg.Numbering.Start)
		assert.Equal(t, 3, cfg.Numbering.Padding)
		assert.Equal(t, types.OrderModified, cfg.Listing.Order)
		assert.Equal(t, "*.{mp4,mkv}", cfg.Listing.Include)
		assert.Equal(t, config.ThemeDark, cfg.Appearance.Theme)
		assert.True(t, cfg.Watch.Enabled)
		assert.Equal(t, 500*time.Millisecond, cfg.Debounce())
		assert.True(t, cfg.Rename.DryRun)
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(createTestYAML(t, partialYAML))
		require.NoError(t, err)

		assert.Equal(t, "Track", cfg.Numbering.Prefix)
		assert.Equal(t, 1, cfg.Numbering.Start)
		assert.Equal(t, 2, cfg.Numbering.Padding)
		assert.Equal(t, types.OrderName, cfg.Listing.Order)
	})

	t.Run("empty file gives defaults", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(createTestYAML(t, ""))
		require.NoError(t, err)
		assert.Equal(t, config.New(), cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsFileNotFound(err))
	})

	t.Run("invalid syntax", func(t *testing.T) {
		_, err := config.LoadConfigFile(createTestYAML(t, invalidSyntaxYAML))
		require.Error(t, err)
		assert.True(t, errors.IsInvalidConfig(err))
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := config.LoadConfigFile(createTestYAML(t, unknownKeyYAML))
		require.Error(t, err)
		assert.True(t, errors.IsInvalidConfig(err))
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.Config)
		param  string
	}{
		{"negative start", func(c *config.Config) { c.Numbering.Start = -1 }, "numbering.start"},
		{"zero padding", func(c *config.Config) { c.Numbering.Padding = 0 }, "numbering.padding"},
		{"bad order", func(c *config.Config) { c.Listing.Order = "size" }, "listing.order"},
		{"bad glob", func(c *config.Config) { c.Listing.Include = "[a-" }, "listing.include"},
		{"bad theme", func(c *config.Config) { c.Appearance.Theme = "sepia" }, "appearance.theme"},
		{"negative debounce", func(c *config.Config) { c.Watch.DebounceMS = -5 }, "watch.debounce_ms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)

			var configErr *errors.ConfigError
			require.True(t, errors.As(err, &configErr))
			assert.Equal(t, tt.param, configErr.Param())
		})
	}

	var nilCfg *config.Config
	assert.Error(t, nilCfg.Validate())
}

func TestParseTheme(t *testing.T) {
	theme, err := config.ParseTheme(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, config.ThemeDark, theme)

	_, err = config.ParseTheme("neon")
	assert.Error(t, err)

	assert.Equal(t, []string{"light", "dark", "system"}, config.ListThemes())
}

func TestGetPalette(t *testing.T) {
	assert.Equal(t, config.GetPalette(config.ThemeSystem), config.GetPalette("unknown"))
	assert.NotEqual(t, config.GetPalette(config.ThemeLight), config.GetPalette(config.ThemeDark))
	assert.NotEmpty(t, config.GetPalette(config.ThemeDark).Primary)
}
