package spectrum

import "math"

// gradient estimates the local spacing of x: one-sided differences at the
// ends and centered differences inside. An interior point next to a NaN
// falls back to the one-sided difference toward its defined neighbour, so a
// NaN only spreads to the points that are NaN themselves or have no defined
// neighbour. x must hold at least 2 values.
func gradient(x []float64) []float64 {
	n := len(x)
	dx := make([]float64, n)
	dx[0] = x[1] - x[0]
	dx[n-1] = x[n-1] - x[n-2]

	for i := 1; i < n-1; i++ {
		switch {
		case math.IsNaN(x[i-1]):
			dx[i] = x[i+1] - x[i]
		case math.IsNaN(x[i+1]):
			dx[i] = x[i] - x[i-1]
		default:
			dx[i] = (x[i+1] - x[i-1]) / 2
		}
	}

	return dx
}

// EdgesFromCenters returns the len(centers)+1 bin edges around centers.
//
// Edge i+1 sits half a local spacing above center i; the first edge sits half
// the first spacing below center 0. Returns nil for fewer than 2 centers.
func EdgesFromCenters(centers []float64) []float64 {
	if len(centers) < 2 {
		return nil
	}

	dx := gradient(centers)
	edges := make([]float64, len(centers)+1)
	edges[0] = centers[0] - dx[0]/2

	for i, c := range centers {
		edges[i+1] = c + dx[i]/2
	}

	return edges
}

// CentersFromEdges returns the len(edges)-1 bin centers between edges, each
// half the local edge spacing above its lower edge. A bin with an undefined
// (NaN) edge has an undefined center. Returns nil for fewer than 2 edges.
func CentersFromEdges(edges []float64) []float64 {
	if len(edges) < 2 {
		return nil
	}

	dx := gradient(edges)
	centers := make([]float64, len(edges)-1)

	for i := range centers {
		if math.IsNaN(edges[i+1]) {
			centers[i] = math.NaN()
			continue
		}
		centers[i] = edges[i] + dx[i]/2
	}

	return centers
}

// Widths returns the differences between consecutive edges.
func Widths(edges []float64) []float64 {
	if len(edges) < 2 {
		return nil
	}

	w := make([]float64, len(edges)-1)
	for i := range w {
		w[i] = edges[i+1] - edges[i]
	}

	return w
}
