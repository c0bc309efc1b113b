// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for tweetgen.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - $TWEETGEN_HOME/config.toml (default ~/.tweetgen/config.toml)
//   - $TWEETGEN_HOME/config.json
//   - Built-in defaults
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/tweetgen/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete tweetgen configuration.
type Config struct {
	// General settings
	Version string `toml:"version" json:"version"`

	// Export pipeline configuration
	Export ExportConfig `toml:"export" json:"export"`

	// Media intake configuration
	Media MediaConfig `toml:"media" json:"media"`

	// Log file configuration
	Log LogConfig `toml:"log" json:"log"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Local storage configuration
	Storage StorageConfig `toml:"storage" json:"storage"`
}

// ExportConfig controls how cards are rasterized and where files go.
type ExportConfig struct {
	// OutputDir is where exported JPEGs are written
	OutputDir string `toml:"output_dir" json:"output_dir"`
	// DevicePixelRatio of the display; the capture scale is clamped to [2, 3]
	DevicePixelRatio float64 `toml:"device_pixel_ratio" json:"device_pixel_ratio"`
	// Quality is the JPEG quality in (0, 1]
	Quality float64 `toml:"quality" json:"quality"`
	// OpenAfterExport opens the saved file in the default viewer
	OpenAfterExport bool `toml:"open_after_export" json:"open_after_export"`
	// ChromePath overrides Chrome/Chromium discovery
	ChromePath string `toml:"chrome_path" json:"chrome_path"`
	// SettleDelayMs is an extra wait before capture (0 = render acknowledgment only)
	SettleDelayMs int `toml:"settle_delay_ms" json:"settle_delay_ms"`
	// TimeoutSecs bounds one export (0 = no limit)
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
	// ViewportWidth is the headless browser window width in CSS pixels
	ViewportWidth int `toml:"viewport_width" json:"viewport_width"`
}

// MediaConfig controls file intake.
type MediaConfig struct {
	// DropDir is the drop folder watched for profile/ and media/ files
	DropDir string `toml:"drop_dir" json:"drop_dir"`
	// MaxBytes caps the size of an ingested file
	MaxBytes int64 `toml:"max_bytes" json:"max_bytes"`
	// Watch enables the drop folder watcher in the TUI
	Watch bool `toml:"watch" json:"watch"`
	// DebounceMs is how long a dropped file must be quiet before ingestion
	DebounceMs int `toml:"debounce_ms" json:"debounce_ms"`
	// RatePerSec bounds drop folder ingestion
	RatePerSec float64 `toml:"rate_per_sec" json:"rate_per_sec"`
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	Path       string `toml:"path" json:"path"`
	Level      string `toml:"level" json:"level"`
	MaxSizeMB  int    `toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `toml:"max_backups" json:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days" json:"max_age_days"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	// CompactMode hides the help line and spacing
	CompactMode bool `toml:"compact_mode" json:"compact_mode"`
	// WideBreakpoint is the terminal width at which the editor and preview
	// sit side by side (the "desktop" layout)
	WideBreakpoint int `toml:"wide_breakpoint" json:"wide_breakpoint"`
}

// StorageConfig locates the local key/value database.
type StorageConfig struct {
	Path string `toml:"path" json:"path"`
}

// SettleDelay returns the settle delay as a duration.
func (e ExportConfig) SettleDelay() time.Duration {
	return time.Duration(e.SettleDelayMs) * time.Millisecond
}

// Timeout returns the export timeout as a duration.
func (e ExportConfig) Timeout() time.Duration {
	return time.Duration(e.TimeoutSecs) * time.Second
}

// Debounce returns the drop folder debounce as a duration.
func (m MediaConfig) Debounce() time.Duration {
	return time.Duration(m.DebounceMs) * time.Millisecond
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	dir, err := ConfigDir()
	if err != nil {
		dir = ".tweetgen"
	}

	return &Config{
		Version: "1.0.0",

		Export: ExportConfig{
			OutputDir:        defaultOutputDir(),
			DevicePixelRatio: 1,
			Quality:          0.95,
			OpenAfterExport:  false,
			SettleDelayMs:    0,
			TimeoutSecs:      60,
			ViewportWidth:    800,
		},

		Media: MediaConfig{
			DropDir:    filepath.Join(dir, "drop"),
			MaxBytes:   64 << 20, // 64MB
			Watch:      true,
			DebounceMs: 300,
			RatePerSec: 2,
		},

		Log: LogConfig{
			Path:       filepath.Join(dir, "logs", "tweetgen.log"),
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},

		UI: UIConfig{
			CompactMode:    false,
			WideBreakpoint: 110,
		},

		Storage: StorageConfig{
			Path: filepath.Join(dir, "local.db"),
		},
	}
}

func defaultOutputDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the tweetgen configuration directory path.
// TWEETGEN_HOME overrides the default ~/.tweetgen.
func ConfigDir() (string, error) {
	if dir := os.Getenv("TWEETGEN_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".tweetgen"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()
	var loadErr error

	// Try TOML first
	if tomlPath, err := ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				loadErr = fmt.Errorf("failed to load TOML config: %w", err)
			} else {
				return finish(cfg)
			}
		}
	}

	// Try JSON as fallback
	if jsonPath, err := ConfigPathJSON(); err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				loadErr = fmt.Errorf("failed to load JSON config: %w", err)
			} else {
				return finish(cfg)
			}
		}
	}

	if loadErr != nil {
		cfg = Default()
	}
	cfg, err := finish(cfg)
	if err != nil {
		return nil, err
	}

	// Return defaults (with any load error for informational purposes)
	return cfg, loadErr
}

func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadJSON loads configuration from a JSON file.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		// Default to TOML
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	return finish(cfg)
}

// fillDefaults fills in any missing string values with defaults.
func fillDefaults(cfg *Config) error {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}
	if cfg.Export.OutputDir == "" {
		cfg.Export.OutputDir = defaults.Export.OutputDir
	}
	if cfg.Media.DropDir == "" {
		cfg.Media.DropDir = defaults.Media.DropDir
	}
	if cfg.Log.Path == "" {
		cfg.Log.Path = defaults.Log.Path
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = defaults.Storage.Path
	}

	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# tweetgen configuration file")
	fmt.Fprintln(&buf, "# Generated by tweetgen - edit with care")
	fmt.Fprintln(&buf, "")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON saves the configuration to a JSON file with 0600 permissions.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	// ==========================================================================
	// Export Settings Validation
	// ==========================================================================

	if c.Export.DevicePixelRatio < 0 {
		errs = append(errs, ValidationError{
			Field:   "export.device_pixel_ratio",
			Message: "cannot be negative",
		})
	}
	if c.Export.Quality <= 0 || c.Export.Quality > 1 {
		errs = append(errs, ValidationError{
			Field:   "export.quality",
			Message: fmt.Sprintf("must be in (0, 1], got %v", c.Export.Quality),
		})
	}
	if c.Export.SettleDelayMs < 0 || c.Export.SettleDelayMs > 10000 {
		errs = append(errs, ValidationError{
			Field:   "export.settle_delay_ms",
			Message: "must be between 0 and 10000",
		})
	}
	if c.Export.TimeoutSecs < 0 {
		errs = append(errs, ValidationError{
			Field:   "export.timeout_secs",
			Message: "cannot be negative (use 0 to disable)",
		})
	}
	if c.Export.ViewportWidth < 320 || c.Export.ViewportWidth > 4096 {
		errs = append(errs, ValidationError{
			Field:   "export.viewport_width",
			Message: "must be between 320 and 4096",
		})
	}

	// ==========================================================================
	// Media Settings Validation
	// ==========================================================================

	if c.Media.MaxBytes <= 0 {
		errs = append(errs, ValidationError{
			Field:   "media.max_bytes",
			Message: "must be positive",
		})
	}
	if c.Media.DebounceMs < 0 {
		errs = append(errs, ValidationError{
			Field:   "media.debounce_ms",
			Message: "cannot be negative",
		})
	}
	if c.Media.RatePerSec <= 0 {
		errs = append(errs, ValidationError{
			Field:   "media.rate_per_sec",
			Message: "must be positive",
		})
	}

	// ==========================================================================
	// Log Settings Validation
	// ==========================================================================

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		errs = append(errs, ValidationError{
			Field:   "log",
			Message: "rotation limits cannot be negative",
		})
	}

	// ==========================================================================
	// UI Settings Validation
	// ==========================================================================

	if c.UI.WideBreakpoint < 40 {
		errs = append(errs, ValidationError{
			Field:   "ui.wide_breakpoint",
			Message: "must be at least 40 columns",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults sets default values for any missing or zero-value configuration fields.
func (c *Config) SetDefaults() {
	defaults := Default()

	if err := fillDefaults(c); err != nil {
		return
	}

	if c.Export.DevicePixelRatio == 0 {
		c.Export.DevicePixelRatio = defaults.Export.DevicePixelRatio
	}
	if c.Export.Quality == 0 {
		c.Export.Quality = defaults.Export.Quality
	}
	if c.Export.ViewportWidth == 0 {
		c.Export.ViewportWidth = defaults.Export.ViewportWidth
	}
	if c.Media.MaxBytes == 0 {
		c.Media.MaxBytes = defaults.Media.MaxBytes
	}
	if c.Media.RatePerSec == 0 {
		c.Media.RatePerSec = defaults.Media.RatePerSec
	}
	if c.UI.WideBreakpoint == 0 {
		c.UI.WideBreakpoint = defaults.UI.WideBreakpoint
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - TWEETGEN_HOME: relocates the config directory (read by ConfigDir)
//   - TWEETGEN_OUTPUT_DIR: overrides export.output_dir
//   - TWEETGEN_CHROME_PATH: overrides export.chrome_path
//   - TWEETGEN_DPR: overrides export.device_pixel_ratio
//   - TWEETGEN_LOG_LEVEL: overrides log.level
func (c *Config) ApplyEnvOverrides() {
	if dir := os.Getenv("TWEETGEN_OUTPUT_DIR"); dir != "" {
		c.Export.OutputDir = dir
	}

	if chrome := os.Getenv("TWEETGEN_CHROME_PATH"); chrome != "" {
		c.Export.ChromePath = chrome
	}

	if dpr := os.Getenv("TWEETGEN_DPR"); dpr != "" {
		if v, err := strconv.ParseFloat(dpr, 64); err == nil {
			c.Export.DevicePixelRatio = v
		}
	}

	if level := os.Getenv("TWEETGEN_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "export.quality").
func (c *Config) Get(key string) (interface{}, error) {
	if key == "" {
		return nil, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})

		if !field.IsValid() {
			return nil, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			return field.Interface(), nil
		}

		if field.Kind() == reflect.Struct {
			v = field
		} else {
			return nil, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
	}

	return nil, fmt.Errorf("invalid key: %s", key)
}

// Set sets a configuration value using dot notation (e.g., "export.quality").
func (c *Config) Set(key string, value interface{}) error {
	if key == "" {
		return errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})

		if !field.IsValid() {
			return fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			if !field.CanSet() {
				return fmt.Errorf("cannot set field: %s", key)
			}
			if field.Kind() == reflect.Struct {
				return fmt.Errorf("field '%s' is a section, not a value", key)
			}
			return setFieldValue(field, value)
		}

		if field.Kind() == reflect.Struct {
			v = field
		} else {
			return fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
	}

	return fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}

	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Float64:
			floatVal, err := strconv.ParseFloat(strVal, 64)
			if err != nil {
				return fmt.Errorf("invalid float value: %v", err)
			}
			field.SetFloat(floatVal)
			return nil
		case reflect.Bool:
			boolVal := strVal == "1" || strings.ToLower(strVal) == "true" || strings.ToLower(strVal) == "yes"
			field.SetBool(boolVal)
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"export.output_dir",
		"export.device_pixel_ratio",
		"export.quality",
		"export.open_after_export",
		"export.chrome_path",
		"export.settle_delay_ms",
		"export.timeout_secs",
		"export.viewport_width",
		"media.drop_dir",
		"media.max_bytes",
		"media.watch",
		"media.debounce_ms",
		"media.rate_per_sec",
		"log.path",
		"log.level",
		"log.max_size_mb",
		"log.max_backups",
		"log.max_age_days",
		"ui.compact_mode",
		"ui.wide_breakpoint",
		"storage.path",
	}
}

// Clone creates a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String returns the configuration as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("<config: %v>", err)
	}
	return buf.String()
}
