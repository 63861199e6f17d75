package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-ambient-noise/internal/testutil"
)

const (
	testTaps101  = 101
	testTaps1025 = 1025

	designSymmetryTolerance = 1e-12
	relativeGainTolerance   = 0.02
)

func validParams() FrequencySamplingParams {
	return FrequencySamplingParams{
		NumTaps:     testTaps101,
		Frequencies: []float64{0, 0.5, 1},
		Gains:       []float64{1, 2, 0.5},
	}
}

// TestFrequencySamplingParams_Validate tests parameter validation.
func TestFrequencySamplingParams_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *FrequencySamplingParams)
	}{
		{"too_few_taps", func(p *FrequencySamplingParams) { p.NumTaps = 1 }},
		{"too_many_taps", func(p *FrequencySamplingParams) { p.NumTaps = maxFilterTaps + 2 }},
		{"even_taps", func(p *FrequencySamplingParams) { p.NumTaps = 100 }},
		{"length_mismatch", func(p *FrequencySamplingParams) { p.Gains = p.Gains[:2] }},
		{"single_point", func(p *FrequencySamplingParams) {
			p.Frequencies, p.Gains = []float64{0}, []float64{1}
		}},
		{"not_starting_at_dc", func(p *FrequencySamplingParams) { p.Frequencies[0] = 0.1 }},
		{"not_ending_at_nyquist", func(p *FrequencySamplingParams) { p.Frequencies[2] = 0.9 }},
		{"not_increasing", func(p *FrequencySamplingParams) {
			p.Frequencies = []float64{0, 0.5, 0.5, 1}
			p.Gains = []float64{1, 1, 1, 1}
		}},
		{"grid_too_coarse", func(p *FrequencySamplingParams) { p.GridPoints = 50 }},
	}

	base := validParams()
	require.NoError(t, base.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			err := p.Validate()
			assert.ErrorIs(t, err, ErrInvalidDesign)
		})
	}
}

// TestDesignFrequencySampling_Symmetry verifies the Type I structure.
func TestDesignFrequencySampling_Symmetry(t *testing.T) {
	for _, window := range []WindowType{WindowHamming, WindowKaiser, WindowRectangular} {
		t.Run(window.String(), func(t *testing.T) {
			p := validParams()
			p.Window = window
			p.KaiserBeta = testBeta5

			coeffs, err := DesignFrequencySampling(p)
			require.NoError(t, err)

			assert.Len(t, coeffs, testTaps101)
			testutil.AssertOddLength(t, coeffs)
			testutil.AssertSymmetric(t, coeffs, designSymmetryTolerance)
			testutil.AssertNoNaNOrInf(t, coeffs)
		})
	}
}

// TestDesignFrequencySampling_FlatIsImpulse checks that unity gain gives a centered unit impulse.
func TestDesignFrequencySampling_FlatIsImpulse(t *testing.T) {
	coeffs, err := DesignFrequencySampling(FrequencySamplingParams{
		NumTaps:     testTaps101,
		Frequencies: []float64{0, 1},
		Gains:       []float64{1, 1},
	})
	require.NoError(t, err)

	center := testTaps101 / 2
	for i, c := range coeffs {
		want := 0.0
		if i == center {
			want = 1.0
		}
		assert.InDelta(t, want, c, 1e-9, "tap %d", i)
	}
}

// TestDesignFrequencySampling_TracksControlPoints verifies the magnitude
// response follows the piecewise-linear target away from the kinks.
func TestDesignFrequencySampling_TracksControlPoints(t *testing.T) {
	p := validParams()
	p.NumTaps = testTaps1025

	coeffs, err := DesignFrequencySampling(p)
	require.NoError(t, err)

	probe := []float64{0.1, 0.25, 0.5, 0.75, 0.9}
	want := []float64{1.2, 1.5, 2.0, 1.25, 0.8}
	got := MagnitudeAt(coeffs, probe)

	for i := range probe {
		testutil.AssertRelativeError(t, want[i], got[i], relativeGainTolerance,
			"gain at %.2f", probe[i])
	}
}

// TestDesignFrequencySampling_NonzeroAtNyquist is the reason for Type I.
func TestDesignFrequencySampling_NonzeroAtNyquist(t *testing.T) {
	coeffs, err := DesignFrequencySampling(FrequencySamplingParams{
		NumTaps:     testTaps1025,
		Frequencies: []float64{0, 1},
		Gains:       []float64{0.5, 3},
	})
	require.NoError(t, err)

	mags := MagnitudeAt(coeffs, []float64{0, 1})
	assert.Greater(t, mags[0], 0.4)
	assert.Greater(t, mags[1], 2.5)
}

// BenchmarkDesignFrequencySampling benchmarks filter design at the default synthesis length.
func BenchmarkDesignFrequencySampling(b *testing.B) {
	p := validParams()
	p.NumTaps = testTaps1025

	b.ResetTimer()
	for b.Loop() {
		_, _ = DesignFrequencySampling(p)
	}
}
