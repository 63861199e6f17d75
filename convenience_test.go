package ambient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-ambient-noise/internal/testutil"
)

func TestGenerateBackgroundNoise(t *testing.T) {
	out, err := GenerateBackgroundNoise(SeaState1, RainModerate, ShippingLevel2, 4800, Rate48k)
	require.NoError(t, err)
	assert.Len(t, out, 4800)
	testutil.AssertNotAllZero(t, out)

	_, err = GenerateBackgroundNoise(SeaState1, RainNone, ShippingNone, 10, 0)
	assert.ErrorIs(t, err, ErrInvalidSampleRate)
}

func TestGenerateBackgroundSpectrum(t *testing.T) {
	got, err := GenerateBackgroundSpectrum(SeaState6, RainVeryHeavy, ShippingLevel7, Rate96k)
	require.NoError(t, err)

	want, err := NewCombiner(DefaultRepository(), DefaultFillDB).Combine(Rate96k, SeaState6, RainVeryHeavy, ShippingLevel7)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.LessOrEqual(t, got.Frequencies()[got.Len()-1], 48000.0)
}

func TestNormalizePeak(t *testing.T) {
	in := []float64{0.5, -2, 1}
	got := NormalizePeak(in, 1)
	assert.InDeltaSlice(t, []float64{0.25, -1, 0.5}, got, 1e-12)
	assert.Equal(t, []float64{0.5, -2, 1}, in, "input untouched")

	assert.InDelta(t, 0.9, floats.Max(NormalizePeak([]float64{3, 1}, 0.9)), 1e-12)
	assert.Equal(t, []float64{0, 0}, NormalizePeak([]float64{0, 0}, 1))
	assert.Empty(t, NormalizePeak(nil, 1))
}
