package filter

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tphakala/go-ambient-noise/internal/mathutil"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

const (
	// Filter design constants
	minFilterTaps = 3
	maxFilterTaps = 65535

	// Frequency axis endpoints of the normalized control points (1 = Nyquist).
	normalizedDC      = 0.0
	normalizedNyquist = 1.0
)

// ErrInvalidDesign reports parameters the frequency-sampling designer cannot honor.
var ErrInvalidDesign = errors.New("invalid filter design")

// FrequencySamplingParams holds parameters for frequency-sampling FIR design.
type FrequencySamplingParams struct {
	// NumTaps is the filter length. It must be odd: a Type I (symmetric,
	// odd-length) filter is the only linear-phase FIR that can have
	// nonzero gain at both DC and Nyquist.
	NumTaps int

	// Frequencies are the control-point frequencies, normalized so that
	// 0 is DC and 1 is Nyquist. Strictly increasing, from 0 to 1.
	Frequencies []float64

	// Gains are the linear magnitudes at each control point.
	Gains []float64

	// GridPoints is the size of the dense frequency grid the control points
	// are interpolated onto. Zero selects 1 + 2^ceil(log2(NumTaps)).
	GridPoints int

	// Window is the taper applied to the impulse response.
	Window WindowType

	// KaiserBeta is the β parameter for WindowKaiser.
	KaiserBeta float64
}

// Validate checks if the design parameters are valid.
func (p *FrequencySamplingParams) Validate() error {
	if p.NumTaps < minFilterTaps {
		return fmt.Errorf("%w: filter too short: %d taps (minimum %d)", ErrInvalidDesign, p.NumTaps, minFilterTaps)
	}

	if p.NumTaps > maxFilterTaps {
		return fmt.Errorf("%w: filter too long: %d taps (maximum %d)", ErrInvalidDesign, p.NumTaps, maxFilterTaps)
	}

	if p.NumTaps%2 == 0 {
		return fmt.Errorf("%w: %d taps is even; a Type I filter needs an odd length", ErrInvalidDesign, p.NumTaps)
	}

	if len(p.Frequencies) != len(p.Gains) {
		return fmt.Errorf("%w: %d frequencies but %d gains", ErrInvalidDesign, len(p.Frequencies), len(p.Gains))
	}

	n := len(p.Frequencies)
	if n < 2 {
		return fmt.Errorf("%w: need at least 2 control points, got %d", ErrInvalidDesign, n)
	}

	if p.Frequencies[0] != normalizedDC || p.Frequencies[n-1] != normalizedNyquist {
		return fmt.Errorf("%w: control points must span [0, 1], got [%g, %g]",
			ErrInvalidDesign, p.Frequencies[0], p.Frequencies[n-1])
	}

	if !mathutil.IsStrictlyIncreasing(p.Frequencies) {
		return fmt.Errorf("%w: control-point frequencies must be strictly increasing", ErrInvalidDesign)
	}

	if p.GridPoints != 0 && p.GridPoints <= p.NumTaps/2 {
		return fmt.Errorf("%w: grid of %d points is too coarse for %d taps", ErrInvalidDesign, p.GridPoints, p.NumTaps)
	}

	return nil
}

// gridPoints returns the dense grid size, applying the default when unset.
func (p *FrequencySamplingParams) gridPoints() int {
	if p.GridPoints > 0 {
		return p.GridPoints
	}
	return 1 + mathutil.NextPowerOfTwo(p.NumTaps)
}

// DesignFrequencySampling designs a linear-phase FIR filter whose magnitude
// response passes through the given control points.
//
// The method:
//  1. Linearly interpolate the gains onto a dense grid over [0, Nyquist]
//  2. Apply the linear-phase term e^(-jω(N-1)/2) so the impulse is centered
//  3. Inverse real FFT of the grid back to an impulse response
//  4. Truncate to NumTaps and apply the window
//
// The result is symmetric: h[i] = h[NumTaps-1-i].
func DesignFrequencySampling(params FrequencySamplingParams) ([]float64, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	window, err := NewWindow(params.Window, params.NumTaps, params.KaiserBeta)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDesign, err)
	}

	nfreqs := params.gridPoints()
	grid := floats.Span(make([]float64, nfreqs), normalizedDC, normalizedNyquist)
	gains := mathutil.InterpolateClamped(nil, grid, params.Frequencies, params.Gains)

	// Linear phase shift centers the impulse at (N-1)/2.
	delay := float64(params.NumTaps-1) / windowNormalizationFactor
	spectrum := make([]complex128, nfreqs)
	for k, x := range grid {
		spectrum[k] = complex(gains[k], 0) * cmplx.Exp(complex(0, -delay*math.Pi*x))
	}

	// Hermitian grid of nfreqs bins describes a real sequence of 2(nfreqs-1).
	nfft := 2 * (nfreqs - 1)
	fft := fourier.NewFFT(nfft)
	impulse := fft.Sequence(nil, spectrum)

	coeffs := make([]float64, params.NumTaps)
	scale := 1.0 / float64(nfft) // gonum's inverse transform is unnormalized
	for i := range coeffs {
		coeffs[i] = impulse[i] * scale * window[i]
	}

	return coeffs, nil
}
