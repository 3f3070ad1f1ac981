// SPDX-License-Identifier: MIT

// Package config loads shortpath settings from defaults, an optional YAML
// file, an optional .env file and SHORTPATH_* environment variables, in that
// order of increasing precedence. Command-line flags are applied on top by
// the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a setting with an unusable value.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config aggregates shortpath configuration values.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Engine  EngineConfig  `yaml:"engine"`
	Render  RenderConfig  `yaml:"render"`
	Archive ArchiveConfig `yaml:"archive"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `yaml:"level"`  // trace|debug|info|warn|error
	Format        string `yaml:"format"` // text|json
	IncludeCaller bool   `yaml:"include_caller"`
}

// EngineConfig selects how distances are computed.
type EngineConfig struct {
	Strategy string `yaml:"strategy"` // linear|heap
	Workers  int    `yaml:"workers"`  // ≤ 0 means GOMAXPROCS
}

// RenderConfig sizes the SVG canvas.
type RenderConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ArchiveConfig points at the SQLite run archive. An empty DSN disables it.
type ArchiveConfig struct {
	DSN string `yaml:"dsn"`
}

const (
	defaultLoggingLevel  = "warn"
	defaultLoggingFormat = "text"
	defaultStrategy      = "linear"
	defaultCanvasWidth   = 800
	defaultCanvasHeight  = 600

	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "SHORTPATH_"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: defaultLoggingLevel, Format: defaultLoggingFormat},
		Engine:  EngineConfig{Strategy: defaultStrategy},
		Render:  RenderConfig{Width: defaultCanvasWidth, Height: defaultCanvasHeight},
	}
}

// Load builds a Config. yamlPath and envPath are optional; a missing envPath
// file is ignored, a missing yamlPath file is an error. Variables already in
// the process environment win over the .env file.
func Load(yamlPath, envPath string) (Config, error) {
	cfg := Default()

	if yamlPath != "" {
		data, err := os.ReadFile(yamlPath)
		if err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
		if err := decodeYAML(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("error parsing %s: %w", yamlPath, err)
		}
	}

	dotenv := map[string]string{}
	if envPath != "" {
		m, err := godotenv.Read(envPath)
		switch {
		case err == nil:
			dotenv = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("error loading %s: %w", envPath, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := dotenv[key]

		return v, ok && v != ""
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// decodeYAML overlays data onto cfg, rejecting unknown keys.
func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		cfg.Logging.Level = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_FORMAT"); ok {
		cfg.Logging.Format = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_INCLUDE_CALLER"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sLOG_INCLUDE_CALLER value %q: %w", EnvPrefix, v, ErrInvalidConfig)
		}
		cfg.Logging.IncludeCaller = b
	}
	if v, ok := lookup(EnvPrefix + "STRATEGY"); ok {
		cfg.Engine.Strategy = v
	}
	if v, ok := lookup(EnvPrefix + "WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sWORKERS value %q: %w", EnvPrefix, v, ErrInvalidConfig)
		}
		cfg.Engine.Workers = n
	}
	if v, ok := lookup(EnvPrefix + "ARCHIVE"); ok {
		cfg.Archive.DSN = v
	}
	for key, dst := range map[string]*float64{
		"CANVAS_WIDTH":  &cfg.Render.Width,
		"CANVAS_HEIGHT": &cfg.Render.Height,
	} {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s%s value %q: %w", EnvPrefix, key, v, ErrInvalidConfig)
		}
		*dst = f
	}

	return nil
}

// Validate checks enumerations and ranges.
func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q (want text or json)", ErrInvalidConfig, c.Logging.Format)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("%w: canvas %gx%g", ErrInvalidConfig, c.Render.Width, c.Render.Height)
	}

	return nil
}
