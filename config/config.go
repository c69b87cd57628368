// Package config loads the YAML settings shared by the table loader, the
// model catalog and the filtercalc command.
//
// A minimal file:
//
//	tables: /data/srim/Tables
//	range_scale: 1000
//	low_energy_floor: 0.005
//	cache_ttl: 10m
//
// Keys that are absent keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cwbudde/algo-srim/catalog"
	"github.com/cwbudde/algo-srim/stopping"
	"github.com/cwbudde/algo-srim/stopping/table"
	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for configuration values that cannot be used.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the file configuration.
type Config struct {
	Tables         string  `yaml:"tables"`
	HeaderLines    int     `yaml:"header_lines"`
	EnergyScale    float64 `yaml:"energy_scale"`
	RangeScale     float64 `yaml:"range_scale"`
	LowEnergyFloor float64 `yaml:"low_energy_floor"`
	CacheTTL       string  `yaml:"cache_ttl"`
}

// Default returns the settings for SRIM tables in ./Tables.
func Default() Config {
	return Config{
		Tables:         "Tables",
		HeaderLines:    table.DefaultHeaderLines,
		EnergyScale:    table.DefaultEnergyScale,
		RangeScale:     stopping.DefaultRangeScale,
		LowEnergyFloor: stopping.DefaultLowEnergyFloor,
		CacheTTL:       "10m",
	}
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(d []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(d, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(d)
}

// Validate reports the first unusable value.
func (cfg Config) Validate() error {
	switch {
	case cfg.Tables == "":
		return fmt.Errorf("%w: tables directory is empty", ErrInvalidConfig)
	case cfg.HeaderLines < 0:
		return fmt.Errorf("%w: header_lines must not be negative", ErrInvalidConfig)
	case cfg.EnergyScale <= 0:
		return fmt.Errorf("%w: energy_scale must be positive", ErrInvalidConfig)
	case cfg.RangeScale <= 0:
		return fmt.Errorf("%w: range_scale must be positive", ErrInvalidConfig)
	case cfg.LowEnergyFloor < 0:
		return fmt.Errorf("%w: low_energy_floor must not be negative", ErrInvalidConfig)
	}

	if _, err := cfg.TTL(); err != nil {
		return err
	}

	return nil
}

// TTL returns the catalog cache expiry. An empty value means no expiry.
func (cfg Config) TTL() (time.Duration, error) {
	if cfg.CacheTTL == "" {
		return 0, nil
	}

	d, err := cast.ToDurationE(cfg.CacheTTL)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: cache_ttl %q", ErrInvalidConfig, cfg.CacheTTL)
	}

	return d, nil
}

// ReadOptions returns the table parsing options.
func (cfg Config) ReadOptions() []table.ReadOption {
	return []table.ReadOption{
		table.WithHeaderLines(cfg.HeaderLines),
		table.WithEnergyScale(cfg.EnergyScale),
	}
}

// ModelOptions returns the model options, logging to logger.
func (cfg Config) ModelOptions(logger l.Wrapper) []stopping.Option {
	return []stopping.Option{
		stopping.WithRangeScale(cfg.RangeScale),
		stopping.WithLowEnergyFloor(cfg.LowEnergyFloor),
		stopping.WithLogger(logger),
	}
}

// CatalogOptions returns the catalog options, logging to logger.
func (cfg Config) CatalogOptions(logger l.Wrapper) ([]catalog.Option, error) {
	ttl, err := cfg.TTL()
	if err != nil {
		return nil, err
	}

	return []catalog.Option{
		catalog.WithTTL(ttl),
		catalog.WithLogger(logger),
		catalog.WithModelOptions(cfg.ModelOptions(logger)...),
	}, nil
}
