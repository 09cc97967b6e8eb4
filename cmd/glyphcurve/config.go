package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"honnef.co/go/glyphcurve"
)

// Config holds the settings that can be loaded from a TOML file. Command
// line flags are applied on top with [Config.Apply].
type Config struct {
	Tolerance  glyphcurve.Tolerance `toml:"tolerance"`
	Iterations int                  `toml:"iterations"`
	Continuity string               `toml:"continuity"`
}

func DefaultConfig() Config {
	return Config{
		Tolerance:  glyphcurve.DefaultTolerance(),
		Iterations: 1000,
		Continuity: "G1",
	}
}

// LoadConfig reads a TOML file on top of the defaults. Unknown keys are
// an error. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Overrides are the settings given as command line flags. Zero values keep
// the configured setting.
type Overrides struct {
	Iterations    int
	Continuity    string
	SmallDistance float64
}

// Apply returns cfg with the non-zero overrides set.
func (cfg Config) Apply(o Overrides) (Config, error) {
	if o.Iterations != 0 {
		cfg.Iterations = o.Iterations
	}
	if o.Continuity != "" {
		cfg.Continuity = o.Continuity
	}
	if o.SmallDistance != 0 {
		cfg.Tolerance.SmallDistance = o.SmallDistance
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// configure loads the file at path, if any, and applies the overrides.
func configure(path string, o Overrides) (Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return Config{}, err
	}
	return cfg.Apply(o)
}

func (cfg Config) validate() error {
	if cfg.Iterations < 1 {
		return fmt.Errorf("iterations must be positive, got %d", cfg.Iterations)
	}
	if !(cfg.Tolerance.SmallDistance >= 0) {
		return fmt.Errorf("small distance must not be negative, got %g", cfg.Tolerance.SmallDistance)
	}
	_, err := cfg.Order()
	return err
}

// Order parses the configured continuity order.
func (cfg Config) Order() (glyphcurve.Continuity, error) {
	switch strings.ToUpper(cfg.Continuity) {
	case "G0":
		return glyphcurve.G0, nil
	case "G1":
		return glyphcurve.G1, nil
	case "G2":
		return glyphcurve.G2, nil
	default:
		return 0, fmt.Errorf("%w: %q", glyphcurve.ErrInvalidContinuity, cfg.Continuity)
	}
}
