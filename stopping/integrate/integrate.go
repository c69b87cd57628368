package integrate

// CumTrapz returns the cumulative trapezoidal integral of y over x.
//
// The result has the same length as x and starts at exactly 0, so out[i] is
// the integral from x[0] to x[i]. x does not need to be uniformly spaced.
// Panics if x and y differ in length.
func CumTrapz(x, y []float64) []float64 {
	if len(x) != len(y) {
		panic("integrate: x and y must have the same length")
	}

	if len(x) == 0 {
		return nil
	}

	out := make([]float64, len(x))

	var acc float64
	for i := 1; i < len(x); i++ {
		acc += 0.5 * (x[i] - x[i-1]) * (y[i] + y[i-1])
		out[i] = acc
	}

	return out
}
