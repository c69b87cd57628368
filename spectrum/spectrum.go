package spectrum

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// MinPoints is the smallest spectrum that defines at least one bin.
const MinPoints = 2

// ErrInvalidSpectrum is returned for spectra that cannot be remapped.
var ErrInvalidSpectrum = errors.New("spectrum: invalid spectrum")

// Spectrum is a histogram of yield density. Energy holds the bin centers
// (MeV, ascending) and Yield the yield per MeV in each bin.
type Spectrum struct {
	Energy []float64
	Yield  []float64
}

// New copies energy and yield into a validated Spectrum.
func New(energy, yield []float64) (Spectrum, error) {
	s := Spectrum{
		Energy: append([]float64(nil), energy...),
		Yield:  append([]float64(nil), yield...),
	}

	if err := s.Validate(); err != nil {
		return Spectrum{}, err
	}

	return s, nil
}

// Len returns the number of bins.
func (s Spectrum) Len() int {
	return len(s.Energy)
}

// Validate checks that s can be remapped: equal lengths, at least MinPoints
// bins and finite, strictly ascending bin centers.
func (s Spectrum) Validate() error {
	if err := s.checkShape(); err != nil {
		return err
	}

	for i, e := range s.Energy {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return fmt.Errorf("%w: energy %d is not finite", ErrInvalidSpectrum, i)
		}
		if i > 0 && e <= s.Energy[i-1] {
			return fmt.Errorf("%w: energy %d (%g) does not exceed energy %d (%g)",
				ErrInvalidSpectrum, i, e, i-1, s.Energy[i-1])
		}
	}

	return nil
}

func (s Spectrum) checkShape() error {
	if len(s.Energy) != len(s.Yield) {
		return fmt.Errorf("%w: %d energies but %d yields", ErrInvalidSpectrum, len(s.Energy), len(s.Yield))
	}

	if len(s.Energy) < MinPoints {
		return fmt.Errorf("%w: need at least %d points, got %d", ErrInvalidSpectrum, MinPoints, len(s.Energy))
	}

	return nil
}

// Edges returns the bin edges of s.
func (s Spectrum) Edges() []float64 {
	return EdgesFromCenters(s.Energy)
}

// Counts returns the yield in each bin: density times bin width.
// Bins with an undefined (NaN) density or width count as zero, so remapped
// spectra with undefined bins can be counted. Returns nil when the lengths
// differ or there are fewer than MinPoints bins.
func Counts(s Spectrum) []float64 {
	if s.checkShape() != nil {
		return nil
	}

	w := Widths(s.Edges())

	out := make([]float64, len(w))
	vecmath.MulBlock(out, s.Yield, w)

	for i, c := range out {
		if math.IsNaN(c) {
			out[i] = 0
		}
	}

	return out
}

// TotalYield returns the number of particles represented by s.
func TotalYield(s Spectrum) float64 {
	var total float64
	for _, c := range Counts(s) {
		total += c
	}

	return total
}
