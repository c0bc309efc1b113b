// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestConfig_Default(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TWEETGEN_HOME", home)

	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Storage.Path != filepath.Join(home, "local.db") {
		t.Errorf("Storage.Path = %q", cfg.Storage.Path)
	}
	if cfg.Media.DropDir != filepath.Join(home, "drop") {
		t.Errorf("Media.DropDir = %q", cfg.Media.DropDir)
	}
	if cfg.Export.SettleDelay() != 0 {
		t.Errorf("SettleDelay = %v, want 0", cfg.Export.SettleDelay())
	}
	if cfg.Export.Timeout() != time.Minute {
		t.Errorf("Timeout = %v, want 1m", cfg.Export.Timeout())
	}
	if cfg.Media.Debounce() != 300*time.Millisecond {
		t.Errorf("Debounce = %v", cfg.Media.Debounce())
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"negative dpr", func(c *Config) { c.Export.DevicePixelRatio = -1 }, "export.device_pixel_ratio"},
		{"zero quality", func(c *Config) { c.Export.Quality = 0 }, "export.quality"},
		{"quality above one", func(c *Config) { c.Export.Quality = 1.5 }, "export.quality"},
		{"settle too long", func(c *Config) { c.Export.SettleDelayMs = 60000 }, "export.settle_delay_ms"},
		{"negative timeout", func(c *Config) { c.Export.TimeoutSecs = -1 }, "export.timeout_secs"},
		{"tiny viewport", func(c *Config) { c.Export.ViewportWidth = 100 }, "export.viewport_width"},
		{"no max bytes", func(c *Config) { c.Media.MaxBytes = 0 }, "media.max_bytes"},
		{"zero rate", func(c *Config) { c.Media.RatePerSec = 0 }, "media.rate_per_sec"},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"narrow breakpoint", func(c *Config) { c.UI.WideBreakpoint = 10 }, "ui.wide_breakpoint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			var verrs ValidateErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("Validate() = %v, want ValidateErrors", err)
			}
			found := false
			for _, v := range verrs {
				if v.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error on %s, got %v", tt.field, verrs)
			}
		})
	}
}

func TestConfig_GetSet(t *testing.T) {
	cfg := Default()

	if err := cfg.Set("export.quality", "0.8"); err != nil {
		t.Fatalf("Set quality: %v", err)
	}
	if err := cfg.Set("export.open_after_export", "yes"); err != nil {
		t.Fatalf("Set open_after_export: %v", err)
	}
	if err := cfg.Set("log.max_size_mb", "25"); err != nil {
		t.Fatalf("Set max_size_mb: %v", err)
	}
	if err := cfg.Set("ui.wide_breakpoint", 140); err != nil {
		t.Fatalf("Set wide_breakpoint: %v", err)
	}

	if v, _ := cfg.Get("export.quality"); v != 0.8 {
		t.Errorf("export.quality = %v", v)
	}
	if !cfg.Export.OpenAfterExport {
		t.Error("open_after_export not set")
	}
	if cfg.Log.MaxSizeMB != 25 {
		t.Errorf("MaxSizeMB = %d", cfg.Log.MaxSizeMB)
	}
	if cfg.UI.WideBreakpoint != 140 {
		t.Errorf("WideBreakpoint = %d", cfg.UI.WideBreakpoint)
	}

	if _, err := cfg.Get("export.nope"); err == nil {
		t.Error("expected error for unknown key")
	}
	if err := cfg.Set("export", "x"); err == nil {
		t.Error("expected error when setting a section")
	}
	if err := cfg.Set("media.max_bytes", "lots"); err == nil {
		t.Error("expected error for non-numeric integer")
	}
}

func TestGetAllKeys_Resolvable(t *testing.T) {
	cfg := Default()
	for _, key := range GetAllKeys() {
		if _, err := cfg.Get(key); err != nil {
			t.Errorf("Get(%q): %v", key, err)
		}
	}
}

func TestLoadFromPath_TOML(t *testing.T) {
	t.Setenv("TWEETGEN_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[export]
output_dir = "/tmp/out"
device_pixel_ratio = 2.5

[log]
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.Export.OutputDir != "/tmp/out" || cfg.Export.DevicePixelRatio != 2.5 {
		t.Errorf("export = %+v", cfg.Export)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	// Untouched sections keep defaults
	if cfg.Export.Quality != 0.95 || cfg.Media.RatePerSec != 2 {
		t.Errorf("defaults lost: quality=%v rate=%v", cfg.Export.Quality, cfg.Media.RatePerSec)
	}
}

func TestLoadFromPath_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"ui": {"compact_mode": true}}`), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if !cfg.UI.CompactMode {
		t.Error("CompactMode not loaded")
	}
}

func TestLoadFromPath_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[export]\nquality = 7.5\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromPath(path); err == nil || !strings.Contains(err.Error(), "export.quality") {
		t.Errorf("LoadFromPath() = %v, want export.quality error", err)
	}
}

func TestLoad_FromConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TWEETGEN_HOME", home)
	if err := os.WriteFile(filepath.Join(home, "config.toml"), []byte("[ui]\nwide_breakpoint = 150\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.WideBreakpoint != 150 {
		t.Errorf("WideBreakpoint = %d, want 150", cfg.UI.WideBreakpoint)
	}
}

func TestLoad_BrokenFileFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TWEETGEN_HOME", home)
	if err := os.WriteFile(filepath.Join(home, "config.toml"), []byte("not = [valid"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err == nil {
		t.Error("expected load error to be reported")
	}
	if cfg == nil || cfg.Export.Quality != 0.95 {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("TWEETGEN_OUTPUT_DIR", "/srv/exports")
	t.Setenv("TWEETGEN_CHROME_PATH", "/opt/chrome")
	t.Setenv("TWEETGEN_DPR", "3")
	t.Setenv("TWEETGEN_LOG_LEVEL", "warn")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Export.OutputDir != "/srv/exports" {
		t.Errorf("OutputDir = %q", cfg.Export.OutputDir)
	}
	if cfg.Export.ChromePath != "/opt/chrome" {
		t.Errorf("ChromePath = %q", cfg.Export.ChromePath)
	}
	if cfg.Export.DevicePixelRatio != 3 {
		t.Errorf("DevicePixelRatio = %v", cfg.Export.DevicePixelRatio)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestSaveTOML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg := Default()
	cfg.Export.OutputDir = "/data/out"
	cfg.UI.CompactMode = true

	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML: %v", err)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0600 {
			t.Errorf("permissions = %o, want 600", info.Mode().Perm())
		}
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if loaded.Export.OutputDir != "/data/out" || !loaded.UI.CompactMode {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestConfig_String(t *testing.T) {
	out := Default().String()
	if !strings.Contains(out, "[export]") || !strings.Contains(out, "quality = 0.95") {
		t.Errorf("String() = %s", out)
	}
}
