package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-srim/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestEdgesFromCenters_Uniform(t *testing.T) {
	edges := EdgesFromCenters([]float64{1, 2, 3})
	testutil.RequireSliceNearlyEqual(t, edges, []float64{0.5, 1.5, 2.5, 3.5}, 0)

	centers := CentersFromEdges(edges)
	testutil.RequireSliceNearlyEqual(t, centers, []float64{1, 2, 3}, 0)
}

func TestEdgesFromCenters_RoundTripUniformGrids(t *testing.T) {
	for _, n := range []int{2, 3, 10, 257} {
		centers := make([]float64, n)
		for i := range centers {
			centers[i] = 0.25 + 0.125*float64(i)
		}

		got := CentersFromEdges(EdgesFromCenters(centers))
		testutil.RequireSliceNearlyEqual(t, got, centers, 1e-12)
	}
}

func TestEdgesFromCenters_NonUniform(t *testing.T) {
	// spacing doubles every bin; each interior edge is offset by half the
	// centered difference
	centers := []float64{1, 2, 4, 8}
	edges := EdgesFromCenters(centers)
	testutil.RequireSliceNearlyEqual(t, edges, []float64{0.5, 1.5, 2.75, 5.5, 10}, 1e-12)

	for i := 1; i < len(edges); i++ {
		assert.Greater(t, edges[i], edges[i-1])
	}

	// approximate inverse only
	back := CentersFromEdges(edges)
	assert.Len(t, back, len(centers))
	for i, c := range centers {
		assert.InDelta(t, c, back[i], 0.5*c)
	}
}

func TestGridHelpers_Short(t *testing.T) {
	assert.Nil(t, EdgesFromCenters(nil))
	assert.Nil(t, EdgesFromCenters([]float64{1}))
	assert.Nil(t, CentersFromEdges([]float64{1}))
	assert.Nil(t, Widths([]float64{1}))

	testutil.RequireSliceNearlyEqual(t, CentersFromEdges([]float64{0, 2}), []float64{1}, 0)
}

func TestWidths(t *testing.T) {
	testutil.RequireSliceNearlyEqual(t, Widths([]float64{0, 1, 3, 6}), []float64{1, 2, 3}, 0)
}

func TestCentersFromEdges_UndefinedEdges(t *testing.T) {
	nan := math.NaN()

	got := CentersFromEdges([]float64{nan, 1, 2, 3, nan})
	assert.True(t, math.IsNaN(got[0]))
	testutil.RequireSliceNearlyEqual(t, got[1:3], []float64{1.5, 2.5}, 1e-12)

	// the top bin has no defined upper edge; its center is undefined
	assert.True(t, math.IsNaN(got[3]))
}
