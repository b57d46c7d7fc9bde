// SPDX-License-Identifier: MIT

// Package config loads the cratefit TOML configuration: numeric tolerances
// for floating matrices, the default container and the log level.
//
//	[matrix]
//	rounding_unit = 1e-5
//	epsilon = 1e-4
//
//	[container]
//	depth = 5
//	width = 5
//	height = 5
//
//	[log]
//	level = "info"
//
// Missing keys keep their Default values; unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/cratefit/matrix"
)

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the decoded configuration file.
type Config struct {
	Matrix    Matrix    `toml:"matrix"`
	Container Container `toml:"container"`
	Log       Log       `toml:"log"`
}

// Matrix holds the floating matrix policy.
type Matrix struct {
	RoundingUnit float64 `toml:"rounding_unit"`
	Epsilon      float64 `toml:"epsilon"`
}

// Container holds the default container extents.
type Container struct {
	Depth  int `toml:"depth"`
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Log holds logger settings.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Matrix: Matrix{
			RoundingUnit: matrix.DefaultRoundingUnit,
			Epsilon:      matrix.DefaultEpsilon,
		},
		Container: Container{Depth: 5, Width: 5, Height: 5},
		Log:       Log{Level: "info"},
	}
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes data over Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every value against its domain.
// Errors: ErrInvalidConfig naming the offending key.
func (c Config) Validate() error {
	u := c.Matrix.RoundingUnit
	if math.IsNaN(u) || math.IsInf(u, 0) || u <= 0 {
		return fmt.Errorf("%w: matrix.rounding_unit = %g, want > 0", ErrInvalidConfig, u)
	}
	e := c.Matrix.Epsilon
	if math.IsNaN(e) || math.IsInf(e, 0) || e < 0 {
		return fmt.Errorf("%w: matrix.epsilon = %g, want >= 0", ErrInvalidConfig, e)
	}
	if c.Container.Depth <= 0 || c.Container.Width <= 0 || c.Container.Height <= 0 {
		return fmt.Errorf("%w: container %dx%dx%d, want positive extents", ErrInvalidConfig,
			c.Container.Depth, c.Container.Width, c.Container.Height)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}

	return nil
}

// MatrixOptions converts the matrix section into matrix options.
// Call only on a validated Config; invalid values panic in the option constructors.
func (c Config) MatrixOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithRoundingUnit(c.Matrix.RoundingUnit),
		matrix.WithEpsilon(c.Matrix.Epsilon),
	}
}

// LogLevel returns the parsed log level, InfoLevel when unparsable.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}

	return lvl
}
