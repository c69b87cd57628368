// Package interp provides piecewise-linear interpolation over monotonic
// lookup tables.
//
// A [Table] never extrapolates: a query outside [x0, xN] (or NaN) yields NaN,
// which callers treat as "undefined". Lookups use a binary search, so a
// query costs O(log n) and allocates nothing.
//
// Because [NewTable] only requires strictly increasing abscissae, the same
// samples can be read in either direction: NewTable(x, y) for y(x) and
// NewTable(y, x) for the inverse whenever y is strictly increasing too.
package interp
