package table

import "math"

// MinSamples is the smallest table that defines a range-energy relation.
const MinSamples = 2

// Table is an ordered set of (energy, net stopping power) samples.
//
// Energy is in MeV and strictly increasing. StoppingPower is the sum of the
// electronic and nuclear stopping power at the same index and is positive
// everywhere. A Table returned by this package is already validated; treat it
// as immutable.
type Table struct {
	Energy        []float64
	StoppingPower []float64
}

// New copies energy and stoppingPower into a validated Table.
func New(energy, stoppingPower []float64) (Table, error) {
	t := Table{
		Energy:        append([]float64(nil), energy...),
		StoppingPower: append([]float64(nil), stoppingPower...),
	}

	if err := t.Validate(); err != nil {
		return Table{}, err
	}

	return t, nil
}

// FromComponents builds a Table from separate electronic and nuclear
// stopping-power columns.
func FromComponents(energy, electronic, nuclear []float64) (Table, error) {
	if len(electronic) != len(energy) || len(nuclear) != len(energy) {
		return Table{}, malformed(-1, "column lengths differ (energy=%d, electronic=%d, nuclear=%d)",
			len(energy), len(electronic), len(nuclear))
	}

	net := make([]float64, len(energy))
	for i := range net {
		net[i] = electronic[i] + nuclear[i]
	}

	return New(energy, net)
}

// Len returns the number of samples.
func (t Table) Len() int {
	return len(t.Energy)
}

// Validate reports the first problem that makes t unusable for a
// range-energy integration, or nil.
func (t Table) Validate() error {
	if len(t.Energy) != len(t.StoppingPower) {
		return malformed(-1, "energy and stopping-power lengths differ (%d vs %d)",
			len(t.Energy), len(t.StoppingPower))
	}

	if len(t.Energy) < MinSamples {
		return malformed(-1, "need at least %d samples, got %d", MinSamples, len(t.Energy))
	}

	for i, e := range t.Energy {
		s := t.StoppingPower[i]
		if math.IsNaN(e) || math.IsInf(e, 0) || math.IsNaN(s) || math.IsInf(s, 0) {
			return malformed(i, "non-finite value (energy=%v, stopping power=%v)", e, s)
		}

		if s <= 0 {
			return malformed(i, "stopping power must be positive, got %v", s)
		}

		if i > 0 && e <= t.Energy[i-1] {
			return malformed(i, "energy %v does not increase (previous %v)", e, t.Energy[i-1])
		}
	}

	return nil
}
