// Package config loads solver run settings from YAML or TOML files.
//
// A file only needs the keys it wants to change; everything else keeps the
// value from Default. Unknown keys are rejected so typos do not silently
// fall back to defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridsssp/lattice"
	"github.com/katalvlaran/gridsssp/sssp"
)

// Sentinel errors for configuration handling.
var (
	// ErrUnknownFormat indicates a file extension with no known decoder.
	ErrUnknownFormat = errors.New("config: unknown file format")
	// ErrUnknownKey indicates a key the Config struct does not define.
	ErrUnknownKey = errors.New("config: unknown key")
	// ErrInvalid indicates a value that fails validation.
	ErrInvalid = errors.New("config: invalid value")
)

// Config holds the settings of one solver run.
type Config struct {
	// Mode is "2d" or "3d" (also "0"/"1" as on the command line).
	Mode string `yaml:"mode" toml:"mode"`
	// Algorithm is any name sssp.ParseAlgorithm accepts.
	Algorithm string `yaml:"algorithm" toml:"algorithm"`
	// Workers is the Bellman-Ford worker count; 0 uses every CPU.
	Workers int `yaml:"workers" toml:"workers"`
	// MaxPasses caps Bellman-Ford passes; 0 means V−1.
	MaxPasses       int    `yaml:"max_passes" toml:"max_passes"`
	LegacySelfLoops bool   `yaml:"legacy_self_loops" toml:"legacy_self_loops"`
	CycleCheck      bool   `yaml:"cycle_check" toml:"cycle_check"`
	WeightCheck     bool   `yaml:"weight_check" toml:"weight_check"`
	LogLevel        string `yaml:"log_level" toml:"log_level"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Mode:       lattice.Mode2D.String(),
		Algorithm:  sssp.AlgoDijkstra.String(),
		CycleCheck: true,
		LogLevel:   "info",
	}
}

// Load reads path and decodes it on top of Default. The decoder is chosen
// by extension: .yaml and .yml use YAML, .toml uses TOML. The result is
// validated before it is returned.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Decode parses data in the given format (".yaml", ".yml", ".toml" or the
// same without the dot) on top of Default and validates the result.
func Decode(data []byte, format string) (Config, error) {
	cfg := Default()
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			if strings.Contains(err.Error(), "not found in type") {
				return Config{}, fmt.Errorf("%w: %v", ErrUnknownKey, err)
			}
			return Config{}, fmt.Errorf("config: yaml: %w", err)
		}
	case "toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("%w: %v", ErrUnknownKey, undecoded)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field and reports the first bad one wrapped in
// ErrInvalid.
func (c Config) Validate() error {
	if _, err := c.LatticeMode(); err != nil {
		return fmt.Errorf("%w: mode: %w", ErrInvalid, err)
	}
	if _, err := c.Algo(); err != nil {
		return fmt.Errorf("%w: algorithm: %w", ErrInvalid, err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers=%d must be ≥ 0", ErrInvalid, c.Workers)
	}
	if c.MaxPasses < 0 {
		return fmt.Errorf("%w: max_passes=%d must be ≥ 0", ErrInvalid, c.MaxPasses)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}

	return nil
}

// LatticeMode parses Mode.
func (c Config) LatticeMode() (lattice.Mode, error) { return lattice.ParseMode(c.Mode) }

// Algo parses Algorithm.
func (c Config) Algo() (sssp.Algorithm, error) { return sssp.ParseAlgorithm(c.Algorithm) }

// Level parses LogLevel ("debug", "info", "warn", "error", optionally with
// an offset such as "info+2"). An empty value is info.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, err
	}

	return l, nil
}

// SolveOptions translates the solver settings into sssp options.
// Mode, Algorithm and LogLevel are not included; the caller passes the
// space, the algorithm and a logger itself.
func (c Config) SolveOptions() []sssp.Option {
	var opts []sssp.Option
	if c.Workers > 0 {
		opts = append(opts, sssp.WithWorkers(c.Workers))
	}
	if c.MaxPasses > 0 {
		opts = append(opts, sssp.WithMaxPasses(c.MaxPasses))
	}
	if c.LegacySelfLoops {
		opts = append(opts, sssp.WithLegacySelfLoops())
	}
	if !c.CycleCheck {
		opts = append(opts, sssp.WithoutCycleCheck())
	}
	if c.WeightCheck {
		opts = append(opts, sssp.WithWeightCheck())
	}

	return opts
}
