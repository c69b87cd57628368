package testutil

import "math"

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}

	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi

	return out
}

// Logspace returns n logarithmically spaced values from lo to hi inclusive.
// lo and hi must be positive.
func Logspace(lo, hi float64, n int) []float64 {
	out := Linspace(math.Log(lo), math.Log(hi), n)
	for i, v := range out {
		out[i] = math.Exp(v)
	}
	out[0] = lo
	out[n-1] = hi

	return out
}

// Constant returns n copies of v.
func Constant(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// BraggStopping returns a positive, light-ion-like stopping-power curve for
// the given energies (MeV): it rises at low energy, peaks near peak and falls
// off as 1/E above it.
func BraggStopping(energy []float64, peak, height float64) []float64 {
	out := make([]float64, len(energy))
	for i, e := range energy {
		x := e / peak
		out[i] = height * 2 * math.Sqrt(x) / (1 + x*math.Sqrt(x))
	}

	return out
}

// Gaussian returns amplitude*exp(-(x-mu)^2/(2 sigma^2)) for every x.
func Gaussian(x []float64, amplitude, mu, sigma float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		d := (v - mu) / sigma
		out[i] = amplitude * math.Exp(-0.5*d*d)
	}

	return out
}
