package spectrum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validates(t *testing.T) {
	_, err := New([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrInvalidSpectrum)

	_, err = New([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, ErrInvalidSpectrum)

	_, err = New([]float64{2, 1}, []float64{1, 1})
	assert.ErrorIs(t, err, ErrInvalidSpectrum)

	_, err = New([]float64{1, 1}, []float64{1, 1})
	assert.ErrorIs(t, err, ErrInvalidSpectrum)

	_, err = New([]float64{1, math.NaN(), 3}, []float64{1, 1, 1})
	assert.ErrorIs(t, err, ErrInvalidSpectrum)

	_, err = New([]float64{1, math.Inf(1)}, []float64{1, 1})
	assert.ErrorIs(t, err, ErrInvalidSpectrum)

	e := []float64{1, 2}
	s, err := New(e, []float64{3, 4})
	require.NoError(t, err)
	e[0] = 9
	assert.Equal(t, []float64{1, 2}, s.Energy)
	assert.Equal(t, 2, s.Len())
}

func TestTotalYield(t *testing.T) {
	s := Spectrum{
		Energy: []float64{1, 2, 3, 4},
		Yield:  []float64{10, 10, 10, 10},
	}
	assert.InDelta(t, 40.0, TotalYield(s), 1e-12)

	s.Yield[2] = math.NaN()
	assert.InDelta(t, 30.0, TotalYield(s), 1e-12)

	counts := Counts(s)
	assert.Equal(t, []float64{10, 10, 0, 10}, counts)
}

func TestCounts_Invalid(t *testing.T) {
	assert.Nil(t, Counts(Spectrum{Energy: []float64{1, 2}, Yield: []float64{1}}))
	assert.Equal(t, 0.0, TotalYield(Spectrum{}))
}

func TestCounts_UndefinedBins(t *testing.T) {
	// remapped spectra may carry undefined or collapsed bins
	s := Spectrum{
		Energy: []float64{0, 0, 1, 2},
		Yield:  []float64{0, 0, 4, math.NaN()},
	}
	assert.Error(t, s.Validate())
	assert.Len(t, Counts(s), 4)
	assert.Equal(t, 0.0, Counts(s)[3])
}
