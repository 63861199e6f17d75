package engine

import (
	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	// Kernels shorter than this are convolved directly with SIMD dot products.
	// The crossover with gonum's FFT sits around 400-500 taps.
	minKernelForFFT = 400

	// Smallest FFT block used by the overlap-save convolver.
	defaultFFTBlockSize = 512

	// A real FFT of size N has N/2 + 1 unique complex coefficients.
	fftHermitianDivisor = 2
)

// FFTConvolver computes valid cross-correlation of a signal against a fixed
// kernel using overlap-save FFT blocks:
//
//	dst[i] = sum_k signal[i+k] * kernel[k]
//
// This matches f64.ConvolveValid, so the two paths are interchangeable.
// A convolver holds scratch buffers and is not safe for concurrent use.
type FFTConvolver struct {
	fft       *fourier.FFT
	fftSize   int
	blockSize int // valid outputs per block = fftSize - kernelLen + 1

	kernelFFT []complex128
	kernelLen int
	scale     float64 // gonum's inverse transform is unnormalized

	signalBlock []float64
	signalFFT   []complex128
	productFFT  []complex128
	ifftResult  []float64
}

// NewFFTConvolver transforms kernel once for reuse across calls.
// It returns nil for an empty kernel.
func NewFFTConvolver(kernel []float64) *FFTConvolver {
	kernelLen := len(kernel)
	if kernelLen == 0 {
		return nil
	}

	fftSize := defaultFFTBlockSize
	for fftSize < 2*kernelLen {
		fftSize *= 2
	}
	fft := fourier.NewFFT(fftSize)

	// Circular convolution with the reversed kernel yields the correlation form.
	kernelPadded := make([]float64, fftSize)
	for i := range kernelLen {
		kernelPadded[i] = kernel[kernelLen-1-i]
	}
	fftLen := fftSize/fftHermitianDivisor + 1

	return &FFTConvolver{
		fft:         fft,
		fftSize:     fftSize,
		blockSize:   fftSize - kernelLen + 1,
		kernelFFT:   fft.Coefficients(nil, kernelPadded),
		kernelLen:   kernelLen,
		scale:       1.0 / float64(fftSize),
		signalBlock: make([]float64, fftSize),
		signalFFT:   make([]complex128, fftLen),
		productFFT:  make([]complex128, fftLen),
		ifftResult:  make([]float64, fftSize),
	}
}

// KernelLen reports the number of taps the convolver was built with.
func (c *FFTConvolver) KernelLen() int {
	return c.kernelLen
}

// Convolve writes len(signal)-KernelLen()+1 valid outputs into dst.
// It is a no-op when the signal is shorter than the kernel or dst is too short.
func (c *FFTConvolver) Convolve(dst, signal []float64) {
	signalLen := len(signal)
	outputLen := signalLen - c.kernelLen + 1
	if outputLen <= 0 || len(dst) < outputLen {
		return
	}

	overlap := c.kernelLen - 1
	for outIdx := 0; outIdx < outputLen; {
		clear(c.signalBlock)
		copyLen := min(c.fftSize, signalLen-outIdx)
		copy(c.signalBlock, signal[outIdx:outIdx+copyLen])

		c.signalFFT = c.fft.Coefficients(c.signalFFT, c.signalBlock)
		c128.Mul(c.productFFT, c.signalFFT, c.kernelFFT)
		c.ifftResult = c.fft.Sequence(c.ifftResult, c.productFFT)
		f64.Scale(c.ifftResult, c.ifftResult, c.scale)

		// The first kernelLen-1 samples of each block carry circular wrap.
		valid := min(c.blockSize, outputLen-outIdx)
		copy(dst[outIdx:outIdx+valid], c.ifftResult[overlap:overlap+valid])
		outIdx += valid
	}
}

// ConvolveValidFFT picks FFT or direct SIMD convolution by kernel length.
func ConvolveValidFFT(dst, signal, kernel []float64) {
	if len(kernel) < minKernelForFFT {
		f64.ConvolveValid(dst, signal, kernel)
		return
	}
	if conv := NewFFTConvolver(kernel); conv != nil {
		conv.Convolve(dst, signal)
	}
}
