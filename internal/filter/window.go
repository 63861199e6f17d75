// Package filter provides FIR design functions for spectral shaping of noise.
package filter

import (
	"fmt"
	"math"

	"github.com/tphakala/go-ambient-noise/internal/mathutil"
)

const (
	// Window normalization
	windowNormalizationFactor = 2.0

	// Hamming window coefficients: w[n] = a0 - a1·cos(2πn/(N-1))
	hammingA0 = 0.54
	hammingA1 = 0.46

	singleTapValue = 1.0
)

// WindowType selects the taper applied to a frequency-sampled impulse response.
type WindowType int

const (
	// WindowHamming is the symmetric Hamming window (the classic firwin2 default).
	WindowHamming WindowType = iota

	// WindowKaiser is the symmetric Kaiser window; β controls sidelobe level.
	WindowKaiser

	// WindowRectangular applies no taper.
	WindowRectangular
)

// String returns the window name.
func (w WindowType) String() string {
	switch w {
	case WindowHamming:
		return "hamming"
	case WindowKaiser:
		return "kaiser"
	case WindowRectangular:
		return "rectangular"
	default:
		return fmt.Sprintf("WindowType(%d)", int(w))
	}
}

// ParseWindowType maps a window name to its WindowType.
func ParseWindowType(name string) (WindowType, error) {
	switch name {
	case "hamming", "":
		return WindowHamming, nil
	case "kaiser":
		return WindowKaiser, nil
	case "rectangular", "boxcar":
		return WindowRectangular, nil
	default:
		return 0, fmt.Errorf("unknown window type %q", name)
	}
}

// NewWindow generates a symmetric window of the given type and length.
// beta is only used by WindowKaiser.
func NewWindow(t WindowType, length int, beta float64) ([]float64, error) {
	switch t {
	case WindowHamming:
		return HammingWindow(length), nil
	case WindowKaiser:
		if beta < 0 {
			return nil, fmt.Errorf("invalid kaiser beta: %f (must be >= 0)", beta)
		}
		return KaiserWindow(length, beta), nil
	case WindowRectangular:
		w := make([]float64, max(length, 0))
		for i := range w {
			w[i] = singleTapValue
		}
		return w, nil
	default:
		return nil, fmt.Errorf("unsupported window type %v", t)
	}
}

// HammingWindow generates a symmetric Hamming window of the specified length.
//
// The window is symmetric: w[i] = w[length-1-i], with endpoints 0.08 and
// a peak of 1.0 at the center of odd-length windows.
func HammingWindow(length int) []float64 {
	if length < 1 {
		return []float64{}
	}

	window := make([]float64, length)
	if length == 1 {
		window[0] = singleTapValue
		return window
	}

	denom := float64(length - 1)
	for n := range length {
		window[n] = hammingA0 - hammingA1*math.Cos(windowNormalizationFactor*math.Pi*float64(n)/denom)
	}
	return window
}

// KaiserWindow generates a Kaiser window of the specified length and β parameter.
//
// The Kaiser window provides excellent control over the trade-off between
// main lobe width and sidelobe level in frequency domain.
//
// Parameters:
//
//	length: Number of samples in the window (should be odd for symmetric FIR)
//	beta: Kaiser β parameter (controls sidelobe attenuation)
//	      Typically 0-15, where higher values = more attenuation but wider main lobe
//
// The window is symmetric: w[i] = w[length-1-i], with a peak of 1.0.
func KaiserWindow(length int, beta float64) []float64 {
	if length < 1 {
		return []float64{}
	}

	window := make([]float64, length)

	if length == 1 {
		window[0] = singleTapValue
		return window
	}

	// w[n] = I₀(β * sqrt(1 - ((n - α)/α)²)) / I₀(β)
	// where α = (N-1)/2 and N is the window length
	alpha := float64(length-1) / windowNormalizationFactor
	i0Beta := mathutil.BesselI0(beta)

	for n := range length {
		x := (float64(n) - alpha) / alpha
		arg := beta * math.Sqrt(math.Max(0, 1.0-x*x))
		window[n] = mathutil.BesselI0(arg) / i0Beta
	}

	return window
}
