package stopping

import "github.com/sgostarter/i/l"

// Defaults for the model constants.
const (
	// DefaultRangeScale converts the integral of 1/(dE/dx) from millimeters
	// to micrometers, for tables with energy in MeV and stopping power in
	// MeV/mm. Tables in other units need a matching WithRangeScale.
	DefaultRangeScale = 1e3

	// DefaultLowEnergyFloor is the output energy (MeV) below which spectrum
	// bins are suppressed. SRIM tables carry no data below about 5 keV.
	DefaultLowEnergyFloor = 0.005
)

// suppressedWidth stands in for the output width of bins below the low
// energy floor, driving their density towards zero.
const suppressedWidth = 1e9

// RangedOutEvent describes the particles stopped inside a filter during one
// query.
type RangedOutEvent struct {
	Ion       string
	Material  string
	Thickness float64   // µm
	Energies  []float64 // incoming energies (MeV) that ranged out
}

// Config holds model settings.
type Config struct {
	RangeScale     float64
	LowEnergyFloor float64
	Logger         l.Wrapper
	OnRangedOut    func(RangedOutEvent)
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings for SRIM tables.
func DefaultConfig() Config {
	return Config{
		RangeScale:     DefaultRangeScale,
		LowEnergyFloor: DefaultLowEnergyFloor,
	}
}

// WithRangeScale sets the factor applied to the integrated range. Non-positive
// values are ignored.
func WithRangeScale(scale float64) Option {
	return func(cfg *Config) {
		if scale > 0 {
			cfg.RangeScale = scale
		}
	}
}

// WithLowEnergyFloor sets the spectrum suppression threshold in MeV. Negative
// values are ignored.
func WithLowEnergyFloor(floor float64) Option {
	return func(cfg *Config) {
		if floor >= 0 {
			cfg.LowEnergyFloor = floor
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger l.Wrapper) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// WithRangedOutHook registers fn to be called synchronously whenever a query
// stops at least one particle. fn must not block.
func WithRangedOutHook(fn func(RangedOutEvent)) Option {
	return func(cfg *Config) {
		cfg.OnRangedOut = fn
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.Logger == nil {
		cfg.Logger = l.NewNopLoggerWrapper()
	}

	return cfg
}
