// Package integrate provides the cumulative quadrature used to turn a
// stopping-power table into a range-energy table.
package integrate
