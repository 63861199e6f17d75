package engine

import "github.com/tphakala/simd/f64"

// FIRFilter applies a fixed causal FIR kernel with zero initial state:
//
//	y[n] = sum_k coeffs[k] * x[n-k]
//
// The kernel is transformed once at construction. A FIRFilter holds scratch
// buffers, so give each goroutine its own.
type FIRFilter struct {
	reversed []float64
	conv     *FFTConvolver
}

// NewFIRFilter prepares coeffs for repeated filtering. It returns nil for an
// empty kernel.
func NewFIRFilter(coeffs []float64) *FIRFilter {
	taps := len(coeffs)
	if taps == 0 {
		return nil
	}

	// Valid correlation against the reversed kernel is causal convolution.
	reversed := make([]float64, taps)
	for i, c := range coeffs {
		reversed[taps-1-i] = c
	}

	f := &FIRFilter{reversed: reversed}
	if taps >= minKernelForFFT {
		f.conv = NewFFTConvolver(reversed)
	}
	return f
}

// Taps reports the kernel length.
func (f *FIRFilter) Taps() int {
	return len(f.reversed)
}

// Apply filters x and returns len(x) fresh output samples.
func (f *FIRFilter) Apply(x []float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}

	// Prefix taps-1 zeros so the first output only sees x[0].
	history := len(f.reversed) - 1
	padded := make([]float64, history+len(x))
	copy(padded[history:], x)

	if f.conv != nil {
		f.conv.Convolve(out, padded)
	} else {
		f64.ConvolveValid(out, padded, f.reversed)
	}
	return out
}

// ApplyFIR filters x with coeffs in one shot.
func ApplyFIR(coeffs, x []float64) []float64 {
	f := NewFIRFilter(coeffs)
	if f == nil {
		return make([]float64, len(x))
	}
	return f.Apply(x)
}
