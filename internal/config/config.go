package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"reseq/internal/errors"
	"reseq/pkg/types"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Theme names accepted by appearance.theme
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// Config holds the starting state of a rename session.
// It is only ever read; reseq never writes it back.
type Config struct {
	Numbering struct {
		Prefix  string `yaml:"prefix"`  // Text before the counter
		Start   int    `yaml:"start"`   // First counter value
		Padding int    `yaml:"padding"` // Minimum counter digits
	} `yaml:"numbering"`
	Listing struct {
		Order   types.OrderMode `yaml:"order"`   // name, mtime or natural
		Include string          `yaml:"include"` // Optional basename glob
	} `yaml:"listing"`
	Appearance struct {
		Theme string `yaml:"theme"` // system, light or dark
	} `yaml:"appearance"`
	Watch struct {
		Enabled    bool `yaml:"enabled"`     // Rebuild the preview on folder changes
		DebounceMS int  `yaml:"debounce_ms"` // Quiet period before a rebuild
	} `yaml:"watch"`
	Rename struct {
		DryRun bool `yaml:"dry_run"` // Validate without renaming
	} `yaml:"rename"`
}

// New returns the default configuration
func New() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Numbering.Prefix = "Episode"
	cfg.Numbering.Start = 1
	cfg.Numbering.Padding = 2
	cfg.Listing.Order = types.OrderName
	cfg.Appearance.Theme = ThemeSystem
	cfg.Watch.Enabled = false
	cfg.Watch.DebounceMS = 250
	cfg.Rename.DryRun = false
	return cfg
}

// LoadConfigFile reads the YAML file at path over the defaults.
// Keys the file leaves out keep their default values; unknown keys are rejected.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewFileError("config file not found", path, errors.FileNotFound, err)
		}
		return nil, errors.NewFileError("error reading config file", path, errors.FileAccessDenied, err)
	}
	return Parse(data)
}

// Parse decodes YAML config data over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := defaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.NewConfigError("error parsing config file", "", errors.InvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every setting and reports the first bad one
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrInvalidConfig
	}

	if c.Numbering.Start < 0 {
		return invalid("numbering.start", "must be >= 0, got %d", c.Numbering.Start)
	}
	if c.Numbering.Padding < 1 {
		return invalid("numbering.padding", "must be >= 1, got %d", c.Numbering.Padding)
	}
	if _, err := types.ParseOrderMode(string(c.Listing.Order)); err != nil {
		return errors.NewConfigError("invalid value", "listing.order", errors.InvalidConfig, err)
	}
	if c.Listing.Include != "" {
		if _, err := glob.Compile(c.Listing.Include); err != nil {
			return errors.NewConfigError("invalid value", "listing.include", errors.InvalidConfig, err)
		}
	}
	switch c.Appearance.Theme {
	case ThemeSystem, ThemeLight, ThemeDark:
	default:
		return invalid("appearance.theme", "unknown theme %q (want system, light or dark)", c.Appearance.Theme)
	}
	if c.Watch.DebounceMS < 0 {
		return invalid("watch.debounce_ms", "must be >= 0, got %d", c.Watch.DebounceMS)
	}
	return nil
}

func invalid(param, format string, args ...interface{}) error {
	return errors.NewConfigError("invalid value", param, errors.InvalidConfig, fmt.Errorf(format, args...))
}

// Debounce returns the watch quiet period as a duration
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Watch.DebounceMS) * time.Millisecond
}

// ParseTheme normalises a theme name, accepting any letter case
func ParseTheme(s string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case ThemeSystem, ThemeLight, ThemeDark:
		return name, nil
	}
	return "", invalid("appearance.theme", "unknown theme %q (want system, light or dark)", s)
}

// ListThemes returns the theme names in display order
func ListThemes() []string {
	return []string{ThemeLight, ThemeDark, ThemeSystem}
}

// Palette holds terminal colors for one theme
type Palette struct {
	Primary  string
	Success  string
	Warning  string
	Error    string
	Muted    string
	Emphasis string
	Border   string
}

// GetPalette returns the terminal palette for a theme name.
// Unknown names get the system palette.
func GetPalette(name string) Palette {
	palettes := map[string]Palette{
		ThemeSystem: {
			Primary:  "213", // Purple
			Success:  "114", // Green
			Warning:  "220", // Yellow
			Error:    "196", // Red
			Muted:    "245", // Grey
			Emphasis: "212", // Light Pink
			Border:   "213", // Purple
		},
		ThemeDark: {
			Primary:  "105",
			Success:  "78",
			Warning:  "214",
			Error:    "160",
			Muted:    "241",
			Emphasis: "147",
			Border:   "105",
		},
		ThemeLight: {
			Primary:  "55",
			Success:  "28",
			Warning:  "130",
			Error:    "124",
			Muted:    "244",
			Emphasis: "90",
			Border:   "55",
		},
	}

	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes[ThemeSystem]
}
