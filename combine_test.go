package ambient

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineSpectra_ThreeIdenticalTemplates(t *testing.T) {
	template := mustSpectrum(t, []float64{100, 1000, 10000}, []float64{40, 50, 30})

	got, err := CombineSpectra(48000, DefaultFillDB, template, template, template)
	require.NoError(t, err)

	gain := 20 * math.Log10(3)
	assert.InDelta(t, 9.54, gain, 0.005)
	assert.Equal(t, template.Frequencies(), got.Frequencies())
	assert.InDeltaSlice(t, []float64{40 + gain, 50 + gain, 30 + gain}, got.Intensities(), 1e-9)
}

func TestCombineSpectra_UnionGridAndFill(t *testing.T) {
	low := mustSpectrum(t, []float64{100, 200}, []float64{20, 20})
	high := mustSpectrum(t, []float64{200, 300, 400}, []float64{20, 40, 20})

	silent, err := CombineSpectra(48000, math.Inf(-1), low, high)
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 200, 300, 400}, silent.Frequencies())
	sum200 := 20 * math.Log10(2*math.Pow(10, 1))
	assert.InDeltaSlice(t, []float64{20, sum200, 40, 20}, silent.Intensities(), 1e-9)

	filled, err := CombineSpectra(48000, 0, low, high)
	require.NoError(t, err)
	plusOne := func(db float64) float64 { return 20 * math.Log10(math.Pow(10, db/20)+1) }
	assert.InDeltaSlice(t, []float64{plusOne(20), sum200, plusOne(40), plusOne(20)}, filled.Intensities(), 1e-9)
}

func TestCombineSpectra_NyquistTruncation(t *testing.T) {
	template := mustSpectrum(t, []float64{100, 400, 500, 600}, []float64{1, 2, 3, 4})

	got, err := CombineSpectra(1000, DefaultFillDB, template)
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 400, 500}, got.Frequencies())
	assert.InDeltaSlice(t, []float64{1, 2, 3}, got.Intensities(), 1e-9)

	above := mustSpectrum(t, []float64{600, 800}, []float64{1, 2})
	got, err = CombineSpectra(1000, DefaultFillDB, above)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestCombineSpectra_Errors(t *testing.T) {
	template := mustSpectrum(t, []float64{100, 200}, []float64{1, 2})

	_, err := CombineSpectra(0, 0, template)
	assert.ErrorIs(t, err, ErrInvalidSampleRate)

	_, err = CombineSpectra(48000, math.NaN(), template)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = CombineSpectra(48000, 0, template, Spectrum{})
	assert.ErrorIs(t, err, ErrEmptySpectrum)

	got, err := CombineSpectra(48000, 0)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestCombiner_Combine(t *testing.T) {
	repo := DefaultRepository()
	combined, err := NewCombiner(repo, DefaultFillDB).Combine(48000, SeaState0, RainNone, ShippingNone)
	require.NoError(t, err)

	freqs := combined.Frequencies()
	assert.True(t, slices.IsSorted(freqs))
	assert.LessOrEqual(t, freqs[len(freqs)-1], 24000.0)
	assert.Contains(t, freqs, 100.0, "rain grid joins the union")
	assert.Contains(t, freqs, 10.0)

	// Absent rain and shipping each add a unit amplitude.
	i := slices.Index(freqs, 1000.0)
	require.GreaterOrEqual(t, i, 0)
	want := 20 * math.Log10(math.Pow(10, 44.5/20)+2)
	assert.InDelta(t, want, combined.Intensities()[i], 1e-9)
}

func TestCombiner_SilentFill(t *testing.T) {
	repo := DefaultRepository()
	combined, err := NewCombiner(repo, math.Inf(-1)).Combine(48000, SeaState3, RainNone, ShippingNone)
	require.NoError(t, err)

	// Zero-dB absent templates still add a unit amplitude inside their own range.
	i := slices.Index(combined.Frequencies(), 20000.0)
	require.GreaterOrEqual(t, i, 0)
	want := 20 * math.Log10(math.Pow(10, 42.4/20)+1)
	assert.InDelta(t, want, combined.Intensities()[i], 1e-9)
}

func TestCombiner_UnknownLevel(t *testing.T) {
	_, err := NewCombiner(DefaultRepository(), 0).Combine(48000, Sea(9), RainNone, ShippingNone)
	assert.ErrorIs(t, err, ErrUnknownLevel)
}
