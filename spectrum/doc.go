// Package spectrum represents energy spectra as histograms of yield density
// and provides the bin-grid geometry used to remap them.
//
// A [Spectrum] stores bin centers and the yield per unit energy in each bin.
// Bin edges are not stored; [EdgesFromCenters] derives them from the local
// spacing of the centers (a centered finite difference, one-sided at the
// ends), and [CentersFromEdges] goes the other way. The pair is an exact
// round trip on uniform grids and an approximate one on smoothly varying
// grids.
//
// # Usage
//
//	s, err := spectrum.New(energies, yields)
//	if err != nil {
//		return err
//	}
//	total := spectrum.TotalYield(s)
package spectrum
