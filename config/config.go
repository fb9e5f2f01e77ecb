// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for the triangle demo.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"

	"cogentcore.org/triangle/logx"
	"github.com/pelletier/go-toml/v2"
)

//go:embed default.toml
var defaultTOML []byte

// Config is the main config struct
// that contains all of the configuration
// options for the demo
type Config struct {

	// the window to open
	Window Window

	// the OpenGL context requested for the window
	GL GL

	// the number of screen updates to wait for before swapping buffers
	SwapInterval int

	// the RGB color the framebuffer is cleared to each frame
	Background [3]float32

	// the minimum level of log messages that are printed (debug, info, warn, error)
	LogLevel string
}

type Window struct {

	// the width of the window in screen coordinates
	Width int

	// the height of the window in screen coordinates
	Height int

	// the window title
	Title string
}

type GL struct {

	// the major version of the OpenGL context
	Major int

	// the minor version of the OpenGL context
	Minor int

	// whether to request a core profile context
	Core bool

	// whether to request a forward-compatible context, required on macOS
	ForwardCompatible bool
}

// Default returns the built-in configuration.
func Default() (*Config, error) {
	return Parse(defaultTOML)
}

// Parse decodes the given TOML document into a new [Config]
// and validates it. Unknown keys are an error.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return nil, fmt.Errorf("config: unknown fields:\n%s", serr.String())
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error describing every invalid setting in cfg.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height))
	}
	// the shaders are GLSL 330
	if cfg.GL.Major < 3 || (cfg.GL.Major == 3 && cfg.GL.Minor < 3) {
		errs = append(errs, fmt.Errorf("OpenGL version must be at least 3.3, got %d.%d", cfg.GL.Major, cfg.GL.Minor))
	}
	if cfg.SwapInterval < 0 {
		errs = append(errs, fmt.Errorf("swap interval must not be negative, got %d", cfg.SwapInterval))
	}
	for i, c := range cfg.Background {
		if c < 0 || c > 1 {
			errs = append(errs, fmt.Errorf("background channel %d must be in [0, 1], got %g", i, c))
		}
	}
	if _, err := logx.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Level returns the parsed [Config.LogLevel], falling back
// to [slog.LevelInfo] if it is invalid.
func (cfg *Config) Level() slog.Level {
	l, err := logx.ParseLevel(cfg.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}
