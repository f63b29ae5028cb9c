// Package config loads the spritestitch configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/spritestitch/config.toml
// (falling back to ~/.config). Every key is optional; anything not set
// keeps its default, and command-line flags override both.
//
//	padding = 2
//	max_width = 4096
//	recursive = false
//	extensions = ["png"]
//	stitched_dir = "stitched"
//	unstitched_dir = "unstitched"
//	compression = "default"
//
//	[cache]
//	enabled = true
//	ttl = "720h"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/spritestitch/pkg/cache"
	"github.com/matzehuels/spritestitch/pkg/codec"
	"github.com/matzehuels/spritestitch/pkg/stitch"
)

const appName = "spritestitch"

// Config is the contents of config.toml.
type Config struct {
	Padding       int               `toml:"padding"`
	MaxWidth      int               `toml:"max_width"`
	Recursive     bool              `toml:"recursive"`
	Extensions    []string          `toml:"extensions"`
	StitchedDir   string            `toml:"stitched_dir"`
	UnstitchedDir string            `toml:"unstitched_dir"`
	Compression   codec.Compression `toml:"compression"`
	Cache         CacheConfig       `toml:"cache"`
}

// CacheConfig controls the pack layout cache.
type CacheConfig struct {
	Enabled bool     `toml:"enabled"`
	TTL     Duration `toml:"ttl"`
}

// Duration is a time.Duration written as a string such as "720h".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Padding:       stitch.DefaultPadding,
		MaxWidth:      stitch.DefaultMaxWidth,
		Extensions:    []string{"png"},
		StitchedDir:   stitch.DefaultStitchedDir,
		UnstitchedDir: stitch.DefaultUnstitchedDir,
		Compression:   codec.CompressionDefault,
		Cache: CacheConfig{
			Enabled: true,
			TTL:     Duration{cache.TTLPack},
		},
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Dir returns the spritestitch configuration directory.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// DefaultPath returns the default configuration file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the configuration file at path. An empty path means
// [DefaultPath]. If the file doesn't exist, the defaults are returned.
// Unknown keys are rejected so typos don't go unnoticed.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, ValidationError{Field: undecoded[0].String(), Message: "unknown key"}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that all config values are valid.
func (c *Config) Validate() error {
	if c.Padding < 0 {
		return ValidationError{Field: "padding", Message: "must not be negative"}
	}
	if c.MaxWidth <= 0 {
		return ValidationError{Field: "max_width", Message: "must be positive"}
	}
	if c.MaxWidth <= c.Padding {
		return ValidationError{Field: "max_width", Message: "must be larger than padding"}
	}
	for _, ext := range c.Extensions {
		e := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if !codec.Supported("x." + e) {
			return ValidationError{Field: "extensions", Message: fmt.Sprintf("unsupported image format %q", ext)}
		}
	}
	if c.StitchedDir == "" {
		return ValidationError{Field: "stitched_dir", Message: "required field is empty"}
	}
	if c.UnstitchedDir == "" {
		return ValidationError{Field: "unstitched_dir", Message: "required field is empty"}
	}
	if _, err := c.Compression.Level(); err != nil {
		return ValidationError{Field: "compression", Message: "must be default, none, speed or best"}
	}
	if c.Cache.TTL.Duration < 0 {
		return ValidationError{Field: "cache.ttl", Message: "must not be negative"}
	}
	return nil
}
