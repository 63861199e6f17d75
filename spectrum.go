package ambient

import (
	"fmt"
	"slices"

	"github.com/tphakala/go-ambient-noise/internal/mathutil"
)

// Spectrum is an immutable intensity curve: frequencies (Hz, or normalized
// so that 1 is Nyquist) paired with intensities in dB re 1 µPa @ 1 m per Hz.
// The zero value is an empty spectrum.
type Spectrum struct {
	freqs []float64
	dB    []float64
}

// NewSpectrum copies freqs and intensities into a Spectrum.
func NewSpectrum(freqs, intensities []float64) (Spectrum, error) {
	if len(freqs) != len(intensities) {
		return Spectrum{}, fmt.Errorf("%w: %d frequencies, %d intensities",
			ErrMismatchedLengths, len(freqs), len(intensities))
	}
	return Spectrum{freqs: slices.Clone(freqs), dB: slices.Clone(intensities)}, nil
}

// newSpectrumOwned wraps slices the caller no longer touches.
func newSpectrumOwned(freqs, intensities []float64) Spectrum {
	return Spectrum{freqs: freqs, dB: intensities}
}

// Len returns the number of points.
func (s Spectrum) Len() int {
	return len(s.freqs)
}

// IsEmpty reports whether the spectrum has no points.
func (s Spectrum) IsEmpty() bool {
	return len(s.freqs) == 0
}

// Frequencies returns a copy of the frequency axis.
func (s Spectrum) Frequencies() []float64 {
	return slices.Clone(s.freqs)
}

// Intensities returns a copy of the intensities in dB.
func (s Spectrum) Intensities() []float64 {
	return slices.Clone(s.dB)
}

// At returns the i-th point.
func (s Spectrum) At(i int) (freq, intensity float64) {
	return s.freqs[i], s.dB[i]
}

// IntensitiesAt linearly interpolates the intensity curve at each of freqs,
// holding the end values outside the curve's range. The spectrum must be
// strictly increasing in frequency.
func (s Spectrum) IntensitiesAt(freqs []float64) []float64 {
	return mathutil.InterpolateClamped(nil, freqs, s.freqs, s.dB)
}

// validateAxis checks the frequency axis is non-negative and strictly increasing.
func (s Spectrum) validateAxis() error {
	if s.IsEmpty() {
		return ErrEmptySpectrum
	}
	if s.freqs[0] < 0 {
		return fmt.Errorf("%w: negative frequency %g", ErrInvalidFrequencies, s.freqs[0])
	}
	if !mathutil.IsStrictlyIncreasing(s.freqs) {
		return fmt.Errorf("%w: frequencies must be strictly increasing", ErrInvalidFrequencies)
	}
	return nil
}
