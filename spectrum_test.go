package ambient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpectrum_MismatchedLengths(t *testing.T) {
	_, err := NewSpectrum([]float64{1, 2, 3}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrMismatchedLengths)
}

func TestSpectrum_IsImmutable(t *testing.T) {
	freqs := []float64{0, 100, 200}
	dB := []float64{10, 20, 30}
	s, err := NewSpectrum(freqs, dB)
	require.NoError(t, err)

	freqs[1] = 999
	dB[1] = 999
	got := s.Frequencies()
	got[2] = -1
	s.Intensities()[0] = -1

	assert.Equal(t, []float64{0, 100, 200}, s.Frequencies())
	assert.Equal(t, []float64{10, 20, 30}, s.Intensities())
}

func TestSpectrum_Accessors(t *testing.T) {
	var empty Spectrum
	assert.True(t, empty.IsEmpty())
	assert.Zero(t, empty.Len())

	s, err := NewSpectrum([]float64{0, 100}, []float64{10, 30})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	f, d := s.At(1)
	assert.InDelta(t, 100.0, f, 0)
	assert.InDelta(t, 30.0, d, 0)
}

func TestSpectrum_IntensitiesAt(t *testing.T) {
	s, err := NewSpectrum([]float64{100, 200}, []float64{10, 30})
	require.NoError(t, err)

	got := s.IntensitiesAt([]float64{50, 100, 150, 200, 400})
	assert.InDeltaSlice(t, []float64{10, 10, 20, 30, 30}, got, 1e-12)
}

func TestSpectrum_ValidateAxis(t *testing.T) {
	var empty Spectrum
	assert.ErrorIs(t, empty.validateAxis(), ErrEmptySpectrum)

	neg, _ := NewSpectrum([]float64{-1, 2}, []float64{0, 0})
	assert.ErrorIs(t, neg.validateAxis(), ErrInvalidFrequencies)

	unsorted, _ := NewSpectrum([]float64{0, 2, 2}, []float64{0, 0, 0})
	assert.ErrorIs(t, unsorted.validateAxis(), ErrInvalidFrequencies)
}
