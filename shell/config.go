// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/LawrenceBuckingham/azul/base/logx"
)

// RendererPreference selects how windows obtain their renderer.
type RendererPreference string

const (
	// RendererAuto tries hardware acceleration and falls back to the
	// software rasterizer per window when context setup fails.
	RendererAuto RendererPreference = "auto"

	// RendererHardware requires hardware acceleration; context setup
	// failure is surfaced as an error instead of degrading.
	RendererHardware RendererPreference = "hardware"

	// RendererSoftware never creates a graphics context.
	RendererSoftware RendererPreference = "software"
)

// Config is the immutable per-run configuration of the runtime.
type Config struct {
	Renderer RendererPreference `toml:"renderer"`

	// Verbose and VeryVerbose raise the log level; Quiet lowers it.
	Verbose     bool `toml:"verbose"`
	VeryVerbose bool `toml:"very-verbose"`
	Quiet       bool `toml:"quiet"`

	// SystemFonts loads the platform font index into the shared font
	// cache at startup.
	SystemFonts bool `toml:"system-fonts"`
}

// DefaultConfig returns the configuration used when no file overrides
// it.
func DefaultConfig() Config {
	return Config{
		Renderer:    RendererAuto,
		SystemFonts: true,
	}
}

// Validate checks enum-valued fields.
func (c *Config) Validate() error {
	switch c.Renderer {
	case RendererAuto, RendererHardware, RendererSoftware:
		return nil
	case "":
		c.Renderer = RendererAuto
		return nil
	default:
		return fmt.Errorf("shell: unknown renderer preference %q", c.Renderer)
	}
}

// ApplyLogging sets the process log level from the verbosity flags.
func (c *Config) ApplyLogging() {
	logx.UserLevel = logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
	logx.SetDefaultLogger()
}

// OpenConfig reads a TOML configuration file, layering it over the
// defaults.
func OpenConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(filename)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("shell: parsing config %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SaveConfig writes the configuration as TOML.
func SaveConfig(filename string, cfg Config) error {
	b, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("shell: encoding config: %w", err)
	}
	return os.WriteFile(filename, b, 0o666)
}
