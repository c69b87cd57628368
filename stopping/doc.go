// Package stopping computes the energy lost by ions crossing thin material
// filters, using a tabulated stopping power to derive a range-energy
// relation.
//
// A [Model] is built once per (ion, material) pair from a validated
// [table.Table]. Construction integrates 1/(dE/dx) over energy with the
// cumulative trapezoid rule and scales the result to micrometers, giving an
// ascending range(E) table; because range is strictly increasing in energy
// the same samples also give energy(range). All queries interpolate these two
// tables linearly and never extrapolate.
//
// # Undefined values
//
// Queries outside the tabulated domain, and particles that range out (the
// filter is at least as thick as the particle's range), yield NaN. This is
// data, not an error: test for it with [IsUndefined]. In the ...All variants
// every element is computed independently, so one undefined element never
// affects its neighbours. Ranging out is also reported through the model's
// logger at debug level and through an optional [RangedOutEvent] hook.
//
// # Call shapes
//
// Every query has a scalar form ([Model.EOut]) and a slice form
// ([Model.EOutAll]). The slice form always returns a new slice of the same
// length as its input.
//
// # Spectra
//
// [Model.EOutSpectrum] and [Model.EInSpectrum] carry a yield-density
// histogram across the filter. Each input bin is mapped edge by edge, and the
// density is rescaled by the ratio of bin widths so that the yield in each
// bin is conserved.
//
// A Model is immutable after [New] and safe for concurrent use.
package stopping
