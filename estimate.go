package ambient

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tphakala/go-ambient-noise/internal/mathutil"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

const minWindowSize = 2

// EstimateSpectrum estimates the intensity spectrum of signal by averaging
// the orthonormal FFT magnitudes of rectangular windows of windowSize
// samples, advanced by windowSize·(1-overlap). Every window lying fully
// inside the signal is used. The result covers bins 0 to windowSize/2-1
// with frequencies k·fs/windowSize.
func EstimateSpectrum(signal []float64, windowSize int, overlap, fs float64) (Spectrum, error) {
	if !(overlap >= 0 && overlap < 1) {
		return Spectrum{}, fmt.Errorf("%w: %g not in [0, 1)", ErrInvalidOverlap, overlap)
	}
	if windowSize < minWindowSize {
		return Spectrum{}, fmt.Errorf("%w: %d samples (minimum %d)", ErrInvalidWindowSize, windowSize, minWindowSize)
	}
	if !(fs > 0) {
		return Spectrum{}, fmt.Errorf("%w: %g Hz", ErrInvalidSampleRate, fs)
	}

	hop := int(float64(windowSize) * (1 - overlap))
	if hop == 0 {
		return Spectrum{}, fmt.Errorf("%w: %g leaves no hop for a %d-sample window", ErrInvalidOverlap, overlap, windowSize)
	}
	if len(signal) < windowSize {
		return Spectrum{}, fmt.Errorf("%w: %d samples, window %d", ErrSignalTooShort, len(signal), windowSize)
	}

	bins := windowSize / 2
	fft := fourier.NewFFT(windowSize)
	coeffs := make([]complex128, windowSize/2+1)
	magnitude := make([]float64, bins)
	acc := make([]float64, bins)

	var windows int
	for start := 0; start+windowSize <= len(signal); start += hop {
		coeffs = fft.Coefficients(coeffs, signal[start:start+windowSize])
		for k := range magnitude {
			magnitude[k] = cmplx.Abs(coeffs[k])
		}
		floats.Add(acc, magnitude)
		windows++
	}

	// Orthonormal scaling and the mean over windows in one step.
	floats.Scale(1/(float64(windows)*math.Sqrt(float64(windowSize))), acc)

	freqs := make([]float64, bins)
	for k := range freqs {
		freqs[k] = float64(k) * fs / float64(windowSize)
	}
	return newSpectrumOwned(freqs, mathutil.AmplitudesToDB(acc, acc)), nil
}
