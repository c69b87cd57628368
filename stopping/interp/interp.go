package interp

import (
	"errors"
	"math"
	"sort"
)

// Errors returned by NewTable.
var (
	ErrLengthMismatch = errors.New("interp: x and y must have the same length")
	ErrTooShort       = errors.New("interp: need at least 2 points")
	ErrNotIncreasing  = errors.New("interp: x must be strictly increasing")
)

// Linear2 interpolates between x0 and x1 at frac in [0,1].
func Linear2(frac, x0, x1 float64) float64 {
	return x0 + frac*(x1-x0)
}

// Table is a piecewise-linear y(x). It is immutable and safe for concurrent
// use.
type Table struct {
	xs []float64
	ys []float64
}

// NewTable creates a table over the given samples. The slices are retained,
// not copied; the caller must not modify them afterwards.
func NewTable(xs, ys []float64) (*Table, error) {
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}

	if len(xs) < 2 {
		return nil, ErrTooShort
	}

	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return nil, ErrNotIncreasing
		}
	}

	return &Table{xs: xs, ys: ys}, nil
}

// Domain returns the closed interval on which At is defined.
func (t *Table) Domain() (lo, hi float64) {
	return t.xs[0], t.xs[len(t.xs)-1]
}

// Contains reports whether x lies inside the table domain.
func (t *Table) Contains(x float64) bool {
	lo, hi := t.Domain()
	return x >= lo && x <= hi
}

// At returns y(x), or NaN when x is outside the domain or NaN.
func (t *Table) At(x float64) float64 {
	if !t.Contains(x) {
		return math.NaN()
	}

	i := sort.SearchFloat64s(t.xs, x)
	if i == 0 {
		return t.ys[0]
	}

	x0, x1 := t.xs[i-1], t.xs[i]
	return Linear2((x-x0)/(x1-x0), t.ys[i-1], t.ys[i])
}

// AtAll evaluates At for every element of xs into a new slice.
func (t *Table) AtAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = t.At(x)
	}

	return out
}
