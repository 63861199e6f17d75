package ambient

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// Common sample rates for convenience functions.
const (
	// Rate48k is the usual recorder rate for hydrophone audio.
	Rate48k = 48000

	// Rate96k covers the full rain band up to 48 kHz.
	Rate96k = 96000

	// Rate192k covers the whole tabulated range of the sea-state curves.
	Rate192k = 192000
)

// GenerateBackgroundNoise returns n samples at fs of sea, rain and shipping
// noise with the default configuration and a random seed.
func GenerateBackgroundNoise(sea Sea, rain Rain, shipping Shipping, n int, fs float64) ([]float64, error) {
	cfg := DefaultConfig()
	cfg.Seed = rand.Uint64()
	c, err := NewComposer(DefaultRepository(), cfg)
	if err != nil {
		return nil, err
	}
	return c.ComposeBackgroundNoise(sea, rain, shipping, n, fs)
}

// GenerateBackgroundSpectrum returns the reference spectrum of a scenario at
// fs with the default fill level.
func GenerateBackgroundSpectrum(sea Sea, rain Rain, shipping Shipping, fs float64) (Spectrum, error) {
	return NewCombiner(DefaultRepository(), DefaultFillDB).Combine(fs, sea, rain, shipping)
}

// NormalizePeak returns a copy of samples scaled so the largest magnitude
// equals peak. An all-zero input is returned unscaled.
func NormalizePeak(samples []float64, peak float64) []float64 {
	out := make([]float64, len(samples))
	copy(out, samples)
	if len(out) == 0 {
		return out
	}
	maxAbs := math.Max(floats.Max(out), -floats.Min(out))
	if maxAbs == 0 {
		return out
	}
	floats.Scale(peak/maxAbs, out)
	return out
}
