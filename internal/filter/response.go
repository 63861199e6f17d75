package filter

import (
	"math"
)

const (
	sincPiMultiplier = math.Pi

	defaultResponsePoints = 512
)

// FilterResponse holds the frequency response of a filter.
type FilterResponse struct {
	// Frequencies at which response was calculated (normalized, 0 to 0.5)
	Frequencies []float64

	// Magnitude response at each frequency (linear scale)
	Magnitude []float64

	// Phase response at each frequency (radians)
	Phase []float64
}

// ComputeFrequencyResponse calculates the frequency response of a FIR filter.
//
// Uses the discrete-time Fourier transform (DTFT) to evaluate the filter's
// frequency response at the specified number of points.
//
// Parameters:
//
//	coeffs: Filter coefficients
//	numPoints: Number of frequency points to evaluate (default: 512)
func ComputeFrequencyResponse(coeffs []float64, numPoints int) FilterResponse {
	if numPoints <= 0 {
		numPoints = defaultResponsePoints
	}

	response := FilterResponse{
		Frequencies: make([]float64, numPoints),
		Magnitude:   make([]float64, numPoints),
		Phase:       make([]float64, numPoints),
	}

	for k := range numPoints {
		// Normalized frequency (0 to 0.5)
		freq := float64(k) / float64(windowNormalizationFactor*numPoints)
		response.Frequencies[k] = freq

		realPart, imagPart := dtft(coeffs, windowNormalizationFactor*sincPiMultiplier*freq)
		response.Magnitude[k] = math.Sqrt(realPart*realPart + imagPart*imagPart)
		response.Phase[k] = math.Atan2(imagPart, realPart)
	}

	return response
}

// MagnitudeAt evaluates |H| at each frequency in freqs, normalized so that
// 1 is Nyquist (the same axis the control points use).
func MagnitudeAt(coeffs, freqs []float64) []float64 {
	mags := make([]float64, len(freqs))
	for i, f := range freqs {
		re, im := dtft(coeffs, sincPiMultiplier*f)
		mags[i] = math.Hypot(re, im)
	}
	return mags
}

// dtft computes H(e^jω) = Σ h[n]·e^(-jωn) split into real and imaginary parts.
func dtft(coeffs []float64, omega float64) (realPart, imagPart float64) {
	for n, h := range coeffs {
		angle := omega * float64(n)
		realPart += h * math.Cos(angle)
		imagPart -= h * math.Sin(angle)
	}
	return realPart, imagPart
}

// MagnitudeDB converts linear magnitude to decibels, floored at -200 dB.
func MagnitudeDB(magnitude float64) float64 {
	const (
		minMagnitude = 1e-10 // Avoid log(0)
		dbMultiplier = 20.0  // 20*log10 for magnitude
	)

	if magnitude < minMagnitude {
		magnitude = minMagnitude
	}
	return dbMultiplier * math.Log10(magnitude)
}
