package stopping

import (
	"github.com/cwbudde/algo-srim/spectrum"
	"github.com/cwbudde/algo-vecmath"
)

// EOutSpectrum carries the spectrum in across thickness µm of material and
// returns the spectrum that leaves the filter.
//
// The edges of every input bin are mapped through EOut. Edges that range out
// or fall outside the table map to 0. Output bins below the first edge above
// the low energy floor are suppressed: their width is replaced by a very
// large value, so their density goes to (almost) zero. Every other bin keeps
// its yield: the output density is the input density times
// inputWidth/outputWidth. Bins whose mapped width is not positive carry no
// yield.
func (m *Model) EOutSpectrum(in spectrum.Spectrum, thickness float64) (spectrum.Spectrum, error) {
	if err := in.Validate(); err != nil {
		return spectrum.Spectrum{}, err
	}

	edgesIn := in.Edges()
	edgesOut := m.EOutAll(edgesIn, thickness)
	for i, e := range edgesOut {
		if IsUndefined(e) {
			edgesOut[i] = 0
		}
	}

	first := len(edgesOut)
	for i, e := range edgesOut {
		if e > m.cfg.LowEnergyFloor {
			first = i
			break
		}
	}

	widthOut := spectrum.Widths(edgesOut)
	for i := 0; i < first && i < len(widthOut); i++ {
		widthOut[i] = suppressedWidth
	}

	yield := jacobian(in.Yield, spectrum.Widths(edgesIn), widthOut)

	return spectrum.Spectrum{
		Energy: spectrum.CentersFromEdges(edgesOut),
		Yield:  yield,
	}, nil
}

// EInSpectrum is the inverse of EOutSpectrum: given the spectrum out measured
// behind thickness µm of material, it returns the spectrum that entered the
// filter. Bins whose edges map outside the table are undefined in energy and
// carry no yield.
func (m *Model) EInSpectrum(out spectrum.Spectrum, thickness float64) (spectrum.Spectrum, error) {
	if err := out.Validate(); err != nil {
		return spectrum.Spectrum{}, err
	}

	edgesOut := out.Edges()
	edgesIn := m.EInAll(edgesOut, thickness)

	yield := jacobian(out.Yield, spectrum.Widths(edgesOut), spectrum.Widths(edgesIn))

	return spectrum.Spectrum{
		Energy: spectrum.CentersFromEdges(edgesIn),
		Yield:  yield,
	}, nil
}

// jacobian returns density*from/to per bin, the density that keeps
// density*width constant when a bin of width from becomes width to. Bins with
// a non-positive or undefined target width get zero.
func jacobian(density, from, to []float64) []float64 {
	ratio := make([]float64, len(from))
	for i := range ratio {
		if to[i] > 0 {
			ratio[i] = from[i] / to[i]
		}
	}

	out := make([]float64, len(density))
	vecmath.MulBlock(out, density, ratio)

	return out
}
