// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the spincube configuration, read from TOML.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/spincube/base/errors"
	"cogentcore.org/spincube/base/logx"
	"cogentcore.org/spincube/math32"
	"cogentcore.org/spincube/render"
	"cogentcore.org/spincube/ui"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// DefaultTOML is the default configuration file, embedded in the binary.
//
//go:embed spincube.toml
var DefaultTOML []byte

// FileName is the name under which a configuration file is served.
const FileName = "spincube.toml"

// Config is the spincube configuration.
type Config struct {

	// Width and Height are the drawing surface size in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Background is the clear color, either a hex string such as
	// "#1a1a1a" or comma separated components in [0, 1] such as
	// "0.1, 0.1, 0.1" with an optional fourth alpha component.
	Background string `toml:"background"`

	// Step is the rotation per frame in radians.
	Step float32 `toml:"step"`

	// LogEvery is the number of frames between progress log messages.
	LogEvery int `toml:"log_every"`

	// MountRetries is the number of delayed checks for the canvas
	// being attached to the document.
	MountRetries int `toml:"mount_retries"`

	// MountBackoffMS is the first delay between mount checks, in milliseconds.
	MountBackoffMS int `toml:"mount_backoff_ms"`

	// LogLevel is the minimum level of log messages shown.
	LogLevel string `toml:"log_level"`
}

// Default returns the default configuration in [DefaultTOML].
func Default() *Config {
	c := &Config{}
	errors.Must(toml.Unmarshal(DefaultTOML, c))
	return c
}

// Parse returns the configuration in the given TOML data, with fields not
// present in data taken from [Default]. The result is validated.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate returns an error joining every invalid field.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: size %dx%d must be positive", c.Width, c.Height))
	}
	if _, err := c.BackgroundRGBA(); err != nil {
		errs = append(errs, fmt.Errorf("config: background %q: %w", c.Background, err))
	}
	if !math32.IsFinite(c.Step) {
		errs = append(errs, fmt.Errorf("config: step %v must be finite", c.Step))
	}
	if c.LogEvery < 0 {
		errs = append(errs, fmt.Errorf("config: log_every %d must not be negative", c.LogEvery))
	}
	if c.MountRetries < 0 {
		errs = append(errs, fmt.Errorf("config: mount_retries %d must not be negative", c.MountRetries))
	}
	if c.MountBackoffMS <= 0 {
		errs = append(errs, fmt.Errorf("config: mount_backoff_ms %d must be positive", c.MountBackoffMS))
	}
	if _, err := logx.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("config: log_level: %w", err))
	}
	return errors.Join(errs...)
}

// Level returns the parsed [Config.LogLevel], or [slog.LevelInfo]
// if it is invalid.
func (c *Config) Level() slog.Level {
	l, err := logx.ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// BackgroundRGBA returns the background color as RGBA components in [0, 1].
func (c *Config) BackgroundRGBA() ([4]float32, error) {
	s := strings.TrimSpace(c.Background)
	if strings.HasPrefix(s, "#") {
		col, err := colorful.Hex(s)
		if err != nil {
			return [4]float32{}, err
		}
		return [4]float32{float32(col.R), float32(col.G), float32(col.B), 1}, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return [4]float32{}, fmt.Errorf("want a hex color or 3 or 4 components, got %d", len(parts))
	}
	rgba := [4]float32{3: 1}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return [4]float32{}, err
		}
		rgba[i] = float32(v)
	}
	col := colorful.Color{R: float64(rgba[0]), G: float64(rgba[1]), B: float64(rgba[2])}
	if !col.IsValid() || rgba[3] < 0 || rgba[3] > 1 {
		return [4]float32{}, fmt.Errorf("components %v must be in [0, 1]", rgba)
	}
	return rgba, nil
}

// RenderOptions returns the [render.Options] for this configuration.
func (c *Config) RenderOptions() (render.Options, error) {
	bg, err := c.BackgroundRGBA()
	if err != nil {
		return render.Options{}, err
	}
	return render.Options{
		Width:      c.Width,
		Height:     c.Height,
		Background: bg,
		Step:       c.Step,
		LogEvery:   c.LogEvery,
	}, nil
}

// MountOptions returns the [ui.MountOptions] for this configuration.
func (c *Config) MountOptions() ui.MountOptions {
	return ui.MountOptions{
		Retries: c.MountRetries,
		Backoff: time.Duration(c.MountBackoffMS) * time.Millisecond,
	}
}
