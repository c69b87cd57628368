package table

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"
)

// Defaults for the SRIM text layout.
const (
	DefaultHeaderLines = 4
	DefaultEnergyScale = 1e-3 // keV -> MeV
)

// ReadConfig controls how SRIM text is interpreted.
type ReadConfig struct {
	HeaderLines int
	EnergyScale float64
}

// ReadOption mutates a ReadConfig.
type ReadOption func(*ReadConfig)

// DefaultReadConfig returns the layout written by the SRIM stopping tables:
// four header lines and energies in keV.
func DefaultReadConfig() ReadConfig {
	return ReadConfig{
		HeaderLines: DefaultHeaderLines,
		EnergyScale: DefaultEnergyScale,
	}
}

// WithHeaderLines sets how many leading lines are skipped.
func WithHeaderLines(n int) ReadOption {
	return func(cfg *ReadConfig) {
		if n >= 0 {
			cfg.HeaderLines = n
		}
	}
}

// WithEnergyScale sets the factor that converts the energy column to MeV.
func WithEnergyScale(scale float64) ReadOption {
	return func(cfg *ReadConfig) {
		if scale > 0 {
			cfg.EnergyScale = scale
		}
	}
}

// ApplyReadOptions applies zero or more options to the default config.
func ApplyReadOptions(opts ...ReadOption) ReadConfig {
	cfg := DefaultReadConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Read parses SRIM stopping-power text.
//
// After the header, every non-blank line holds at least three whitespace
// separated numbers: energy, electronic stopping power and nuclear stopping
// power. Extra columns are ignored. The resulting table is validated.
func Read(r io.Reader, opts ...ReadOption) (Table, error) {
	cfg := ApplyReadOptions(opts...)

	var (
		energy []float64
		net    []float64
	)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo <= cfg.HeaderLines {
			continue
		}

		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		if len(fields) < 3 {
			return Table{}, fmt.Errorf("%w: line %d: want 3 columns, got %d", ErrParse, lineNo, len(fields))
		}

		var vals [3]float64
		for i := range vals {
			v, err := cast.ToFloat64E(fields[i])
			if err != nil {
				return Table{}, fmt.Errorf("%w: line %d column %d: %v", ErrParse, lineNo, i+1, err)
			}
			vals[i] = v
		}

		energy = append(energy, vals[0]*cfg.EnergyScale)
		net = append(net, vals[1]+vals[2])
	}

	if err := sc.Err(); err != nil {
		return Table{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	t := Table{Energy: energy, StoppingPower: net}
	if err := t.Validate(); err != nil {
		return Table{}, err
	}

	return t, nil
}
