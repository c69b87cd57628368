package stopping

import (
	"math"

	"github.com/cwbudde/algo-srim/stopping/integrate"
	"github.com/cwbudde/algo-srim/stopping/interp"
	"github.com/cwbudde/algo-srim/stopping/table"
	"github.com/cwbudde/algo-vecmath"
	"github.com/sgostarter/i/l"
)

// IsUndefined reports whether v is the undefined marker returned for
// out-of-domain and ranged-out queries.
func IsUndefined(v float64) bool {
	return math.IsNaN(v)
}

// Model is the range-energy relation of one ion in one material.
type Model struct {
	ion      string
	material string
	cfg      Config
	logger   l.Wrapper

	energy []float64 // MeV, ascending
	rng    []float64 // µm, aligned with energy

	rangeOf  *interp.Table
	energyOf *interp.Table
}

// New builds the model for ion in material from t.
//
// The table is validated again here; a malformed table fails with a
// [*table.MalformedTableError] and no model is returned.
func New(ion, material string, t table.Table, opts ...Option) (*Model, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	cfg := ApplyOptions(opts...)

	energy := append([]float64(nil), t.Energy...)
	inv := make([]float64, len(energy))
	for i, s := range t.StoppingPower {
		inv[i] = 1 / s
	}

	rng := integrate.CumTrapz(energy, inv)
	vecmath.ScaleBlock(rng, rng, cfg.RangeScale)

	rangeOf, err := interp.NewTable(energy, rng)
	if err != nil {
		return nil, &table.MalformedTableError{Index: -1, Reason: err.Error()}
	}

	// Strict growth can only be lost to rounding for extreme stopping powers.
	energyOf, err := interp.NewTable(rng, energy)
	if err != nil {
		return nil, &table.MalformedTableError{Index: -1, Reason: "range is not strictly increasing in energy"}
	}

	return &Model{
		ion:      ion,
		material: material,
		cfg:      cfg,
		logger: cfg.Logger.WithFields(
			l.StringField(l.ClsKey, "stoppingModel"),
			l.StringField("ion", ion),
			l.StringField("material", material),
		),
		energy:   energy,
		rng:      rng,
		rangeOf:  rangeOf,
		energyOf: energyOf,
	}, nil
}

// Ion returns the ion name the model was built for.
func (m *Model) Ion() string { return m.ion }

// Material returns the filter material name.
func (m *Model) Material() string { return m.material }

// Energies returns a copy of the tabulated energies (MeV).
func (m *Model) Energies() []float64 {
	return append([]float64(nil), m.energy...)
}

// Ranges returns a copy of the range (µm) at each tabulated energy.
func (m *Model) Ranges() []float64 {
	return append([]float64(nil), m.rng...)
}

// MinEnergy returns the lowest tabulated energy.
func (m *Model) MinEnergy() float64 { return m.energy[0] }

// MaxEnergy returns the highest tabulated energy.
func (m *Model) MaxEnergy() float64 { return m.energy[len(m.energy)-1] }

// MaxRange returns the range at MaxEnergy.
func (m *Model) MaxRange() float64 { return m.rng[len(m.rng)-1] }

// LowEnergyFloor returns the spectrum suppression threshold in MeV.
func (m *Model) LowEnergyFloor() float64 { return m.cfg.LowEnergyFloor }

// Range returns the range (µm) of a particle with energy e (MeV).
func (m *Model) Range(e float64) float64 {
	return m.rangeOf.At(e)
}

// RangeAll applies Range to every element of es.
func (m *Model) RangeAll(es []float64) []float64 {
	return m.rangeOf.AtAll(es)
}

// Energy returns the energy (MeV) of a particle whose range is r (µm).
func (m *Model) Energy(r float64) float64 {
	return m.energyOf.At(r)
}

// EnergyAll applies Energy to every element of rs.
func (m *Model) EnergyAll(rs []float64) []float64 {
	return m.energyOf.AtAll(rs)
}

// eOut is EOut without reporting. rangedOut is true when the particle stops
// inside the filter.
func (m *Model) eOut(eIn, thickness float64) (e float64, rangedOut bool) {
	r := m.rangeOf.At(eIn)
	if IsUndefined(r) {
		return math.NaN(), false
	}

	if thickness >= r {
		return math.NaN(), true
	}

	return m.energyOf.At(r - thickness), false
}

// EOut returns the energy (MeV) after crossing thickness µm of material with
// incoming energy eIn. The result is undefined when the particle ranges out
// (thickness >= Range(eIn)) or when eIn is outside the table.
func (m *Model) EOut(eIn, thickness float64) float64 {
	e, rangedOut := m.eOut(eIn, thickness)
	if rangedOut {
		m.reportRangedOut(thickness, []float64{eIn})
	}

	return e
}

// EOutAll applies EOut to every element of eIn. Ranged-out elements are
// reported together in a single event.
func (m *Model) EOutAll(eIn []float64, thickness float64) []float64 {
	out := make([]float64, len(eIn))

	var stopped []float64
	for i, e := range eIn {
		var rangedOut bool
		out[i], rangedOut = m.eOut(e, thickness)
		if rangedOut {
			stopped = append(stopped, e)
		}
	}

	if len(stopped) > 0 {
		m.reportRangedOut(thickness, stopped)
	}

	return out
}

// EIn returns the energy (MeV) a particle had before crossing thickness µm
// of material, given its outgoing energy eOut.
func (m *Model) EIn(eOut, thickness float64) float64 {
	return m.energyOf.At(thickness + m.rangeOf.At(eOut))
}

// EInAll applies EIn to every element of eOut.
func (m *Model) EInAll(eOut []float64, thickness float64) []float64 {
	out := make([]float64, len(eOut))
	for i, e := range eOut {
		out[i] = m.EIn(e, thickness)
	}

	return out
}

// Thickness returns the thickness (µm) that takes a particle from eIn down
// to eOut. The inputs are not checked: a negative result means eOut > eIn.
func (m *Model) Thickness(eIn, eOut float64) float64 {
	return m.rangeOf.At(eIn) - m.rangeOf.At(eOut)
}

// ThicknessAll applies Thickness pairwise. Panics if the slices differ in
// length.
func (m *Model) ThicknessAll(eIn, eOut []float64) []float64 {
	if len(eIn) != len(eOut) {
		panic("stopping: eIn and eOut must have the same length")
	}

	out := make([]float64, len(eIn))
	for i := range out {
		out[i] = m.Thickness(eIn[i], eOut[i])
	}

	return out
}

func (m *Model) reportRangedOut(thickness float64, energies []float64) {
	m.logger.WithFields(
		l.Float64Field("thickness", thickness),
		l.IntField("count", len(energies)),
		l.Float64Field("maxEnergy", maxOf(energies)),
	).Debug("particles ranged out")

	if m.cfg.OnRangedOut != nil {
		m.cfg.OnRangedOut(RangedOutEvent{
			Ion:       m.ion,
			Material:  m.material,
			Thickness: thickness,
			Energies:  energies,
		})
	}
}

func maxOf(v []float64) float64 {
	mx := v[0]
	for _, x := range v[1:] {
		if x > mx {
			mx = x
		}
	}

	return mx
}
