package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "GLINT_"

// Config holds the toolkit's tunable input settings. Zero values are not
// meaningful; start from Default and layer file and environment overrides
// on top.
type Config struct {
	// DoubleClickTime is the maximum delay between clicks that still
	// counts as a multi-click sequence.
	DoubleClickTime time.Duration `toml:"double_click_time"`

	// DoubleClickDistance is the maximum pointer travel between clicks,
	// in cells.
	DoubleClickDistance int `toml:"double_click_distance"`

	// KeyRepeatDelay is how long a key must stay down before it starts
	// repeating.
	KeyRepeatDelay time.Duration `toml:"key_repeat_delay"`

	// KeyRepeatInterval is the delay between repeats once repeating.
	KeyRepeatInterval time.Duration `toml:"key_repeat_interval"`

	// ScrollLines is how many lines one wheel tick scrolls.
	ScrollLines int `toml:"scroll_lines"`

	// MouseEnabled controls whether the terminal adapter reports pointer
	// events at all.
	MouseEnabled bool `toml:"mouse_enabled"`

	// KeymapPaths lists directories searched for keymap files, in
	// ascending priority order.
	KeymapPaths []string `toml:"keymap_paths"`

	// InitScript is an optional Lua script run at startup.
	InitScript string `toml:"init_script"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DoubleClickTime:     500 * time.Millisecond,
		DoubleClickDistance: 3,
		KeyRepeatDelay:      400 * time.Millisecond,
		KeyRepeatInterval:   40 * time.Millisecond,
		ScrollLines:         3,
		MouseEnabled:        true,
	}
}

// LoadFile reads a TOML config file over the defaults. A missing file is
// not an error; the defaults are returned unchanged.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays GLINT_* environment variables onto the config.
// Unset variables leave their field alone; malformed values are an error.
func (c *Config) ApplyEnv() error {
	if err := envDuration("DOUBLE_CLICK_TIME", &c.DoubleClickTime); err != nil {
		return err
	}
	if err := envInt("DOUBLE_CLICK_DISTANCE", &c.DoubleClickDistance); err != nil {
		return err
	}
	if err := envDuration("KEY_REPEAT_DELAY", &c.KeyRepeatDelay); err != nil {
		return err
	}
	if err := envDuration("KEY_REPEAT_INTERVAL", &c.KeyRepeatInterval); err != nil {
		return err
	}
	if err := envInt("SCROLL_LINES", &c.ScrollLines); err != nil {
		return err
	}
	if err := envBool("MOUSE_ENABLED", &c.MouseEnabled); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvPrefix + "INIT_SCRIPT"); ok {
		c.InitScript = v
	}
	return nil
}

// Validate checks the settings for values the routers cannot work with.
func (c *Config) Validate() error {
	if c.DoubleClickTime <= 0 {
		return fmt.Errorf("%w: double_click_time must be positive", ErrInvalidConfig)
	}
	if c.DoubleClickDistance < 0 {
		return fmt.Errorf("%w: double_click_distance must not be negative", ErrInvalidConfig)
	}
	if c.KeyRepeatDelay <= 0 || c.KeyRepeatInterval <= 0 {
		return fmt.Errorf("%w: key repeat timings must be positive", ErrInvalidConfig)
	}
	if c.ScrollLines <= 0 {
		return fmt.Errorf("%w: scroll_lines must be positive", ErrInvalidConfig)
	}
	return nil
}

func envDuration(name string, dst *time.Duration) error {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
	}
	*dst = d
	return nil
}

func envInt(name string, dst *int) error {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
	}
	*dst = n
	return nil
}

func envBool(name string, dst *bool) error {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
	}
	*dst = b
	return nil
}
