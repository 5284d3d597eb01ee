package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadFileMissingUsesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	def := Default()
	if cfg.ScrollLines != def.ScrollLines || cfg.DoubleClickTime != def.DoubleClickTime || !cfg.MouseEnabled {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glint.toml")
	src := `
double_click_time = "250ms"
scroll_lines = 5
mouse_enabled = false
keymap_paths = ["/etc/glint/keymaps"]
init_script = "~/.config/glint/init.lua"
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.DoubleClickTime != 250*time.Millisecond {
		t.Errorf("DoubleClickTime = %v, want 250ms", cfg.DoubleClickTime)
	}
	if cfg.ScrollLines != 5 {
		t.Errorf("ScrollLines = %d, want 5", cfg.ScrollLines)
	}
	if cfg.MouseEnabled {
		t.Error("MouseEnabled should be false")
	}
	if len(cfg.KeymapPaths) != 1 || cfg.KeymapPaths[0] != "/etc/glint/keymaps" {
		t.Errorf("KeymapPaths = %v", cfg.KeymapPaths)
	}
	if cfg.InitScript == "" {
		t.Error("InitScript not loaded")
	}
	// Untouched fields keep their defaults.
	if cfg.KeyRepeatDelay != Default().KeyRepeatDelay {
		t.Errorf("KeyRepeatDelay = %v, want default", cfg.KeyRepeatDelay)
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("scroll_lines = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GLINT_DOUBLE_CLICK_TIME", "1s")
	t.Setenv("GLINT_SCROLL_LINES", "10")
	t.Setenv("GLINT_MOUSE_ENABLED", "false")
	t.Setenv("GLINT_INIT_SCRIPT", "/tmp/init.lua")

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.DoubleClickTime != time.Second {
		t.Errorf("DoubleClickTime = %v, want 1s", cfg.DoubleClickTime)
	}
	if cfg.ScrollLines != 10 {
		t.Errorf("ScrollLines = %d, want 10", cfg.ScrollLines)
	}
	if cfg.MouseEnabled {
		t.Error("MouseEnabled should be false")
	}
	if cfg.InitScript != "/tmp/init.lua" {
		t.Errorf("InitScript = %q", cfg.InitScript)
	}
}

func TestApplyEnvMalformed(t *testing.T) {
	t.Setenv("GLINT_SCROLL_LINES", "lots")

	cfg := Default()
	if err := cfg.ApplyEnv(); err == nil {
		t.Error("expected error for non-numeric scroll lines")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero double click time", func(c *Config) { c.DoubleClickTime = 0 }},
		{"negative click distance", func(c *Config) { c.DoubleClickDistance = -1 }},
		{"zero repeat delay", func(c *Config) { c.KeyRepeatDelay = 0 }},
		{"zero repeat interval", func(c *Config) { c.KeyRepeatInterval = 0 }},
		{"zero scroll lines", func(c *Config) { c.ScrollLines = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
