// ============================================================================
// tzgrid - Terminal time zone grid
// ============================================================================
//
// Package:     config
// Description: Default zone list and display settings from the config dir
// Author:      dpb1
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"

	"github.com/dpb1/tzgrid/pkg/core/tzerror"
)

const (
	// LegacyFileName is the INI file holding `zones` in its default section
	LegacyFileName = "tzgrid.cfg"
	// FileName is the optional TOML settings file
	FileName = "tzgrid.toml"

	EnvConfigDir    = "TZGRID_CONFIG_DIR"
	EnvSnapUserData = "SNAP_USER_DATA"
)

// Clock values accepted by the `clock` setting
const (
	Clock24     = "24"
	Clock12     = "12"
	ClockMinute = "hhmm"
)

// Color values accepted by the `color` setting
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings read from the config directory
type Config struct {
	Zones     ZoneList `toml:"zones"`
	Width     int      `toml:"width"`
	Clock     string   `toml:"clock"`
	GeoData   string   `toml:"geodata"`
	Color     string   `toml:"color"`
	LogLevel  string   `toml:"log_level"`
	LogFormat string   `toml:"log_format"`

	// Sources lists the files that contributed to this config
	Sources []string `toml:"-"`
}

// ZoneList accepts either a TOML array or a comma separated string
type ZoneList []string

// UnmarshalTOML implements toml.Unmarshaler
func (z *ZoneList) UnmarshalTOML(data interface{}) error {
	switch v := data.(type) {
	case string:
		*z = SplitZones(v)
	case []interface{}:
		zones := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("zones: expected strings, got %T", item)
			}
			if s = strings.TrimSpace(s); s != "" {
				zones = append(zones, s)
			}
		}
		*z = zones
	default:
		return fmt.Errorf("zones: expected string or array, got %T", data)
	}
	return nil
}

// SplitZones splits a comma separated zone list, dropping empty entries
func SplitZones(s string) []string {
	var zones []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			zones = append(zones, part)
		}
	}
	return zones
}

// BaseDir returns the config directory: $TZGRID_CONFIG_DIR, then
// $SNAP_USER_DATA, then <user config dir>/tzgrid.
func BaseDir() string {
	return baseDir(os.Getenv, os.UserConfigDir)
}

func baseDir(getenv func(string) string, userConfigDir func() (string, error)) string {
	if dir := getenv(EnvConfigDir); dir != "" {
		return expandHome(dir)
	}
	if dir := getenv(EnvSnapUserData); dir != "" {
		return expandHome(dir)
	}
	if dir, err := userConfigDir(); err == nil {
		return filepath.Join(dir, "tzgrid")
	}
	return expandHome("~/.config/tzgrid")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Load reads tzgrid.cfg and tzgrid.toml from dir. Missing files are not
// an error. The returned config is never nil; a non-nil error carries
// tzerror.CodeConfigRead and means some file could not be used.
func Load(dir string) (*Config, error) {
	cfg := &Config{}
	var errs []error

	if err := cfg.loadLegacy(filepath.Join(dir, LegacyFileName)); err != nil {
		errs = append(errs, err)
	}
	if err := cfg.loadTOML(filepath.Join(dir, FileName)); err != nil {
		errs = append(errs, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return cfg, tzerror.Wrap(errors.Join(errs...), "reading configuration").
			WithCode(tzerror.CodeConfigRead).
			WithDetail("dir", dir)
	}
	return cfg, nil
}

func (c *Config) loadLegacy(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	c.Sources = append(c.Sources, path)

	if key, err := f.Section(ini.DefaultSection).GetKey("zones"); err == nil {
		c.Zones = SplitZones(key.String())
	}
	return nil
}

func (c *Config) loadTOML(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	var settings Config
	if _, err := toml.DecodeFile(path, &settings); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	c.Sources = append(c.Sources, path)
	c.merge(&settings)
	return nil
}

// merge copies every field that is set in other
func (c *Config) merge(other *Config) {
	if len(other.Zones) > 0 {
		c.Zones = other.Zones
	}
	if other.Width != 0 {
		c.Width = other.Width
	}
	if other.Clock != "" {
		c.Clock = other.Clock
	}
	if other.GeoData != "" {
		c.GeoData = os.ExpandEnv(expandHome(other.GeoData))
	}
	if other.Color != "" {
		c.Color = other.Color
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.LogFormat != "" {
		c.LogFormat = other.LogFormat
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Clock == "" {
		c.Clock = Clock24
	}
	if c.Color == "" {
		c.Color = ColorAuto
	}
}

// Validate checks enumerated settings. Invalid values are reset to their
// defaults so the config stays usable.
func (c *Config) Validate() error {
	var errs []error

	switch c.Clock {
	case Clock24, Clock12, ClockMinute:
	default:
		errs = append(errs, fmt.Errorf("invalid clock %q (want %s, %s or %s)", c.Clock, Clock24, Clock12, ClockMinute))
		c.Clock = Clock24
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("invalid color %q (want %s, %s or %s)", c.Color, ColorAuto, ColorAlways, ColorNever))
		c.Color = ColorAuto
	}

	if c.Width < 0 {
		errs = append(errs, fmt.Errorf("invalid width %d", c.Width))
		c.Width = 0
	}

	return errors.Join(errs...)
}
