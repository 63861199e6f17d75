package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naiveCorrelateValid(signal, kernel []float64) []float64 {
	n := len(signal) - len(kernel) + 1
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		var sum float64
		for k, h := range kernel {
			sum += signal[i+k] * h
		}
		out[i] = sum
	}
	return out
}

func randomSlice(rng *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.Float64()*2 - 1
	}
	return s
}

func TestNewFFTConvolver_EmptyKernel(t *testing.T) {
	assert.Nil(t, NewFFTConvolver(nil))
}

func TestFFTConvolver_MatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	tests := []struct {
		name      string
		kernelLen int
		signalLen int
	}{
		{"single_block", 31, 400},
		{"multi_block", 129, 5000},
		{"long_kernel", 1025, 12000},
		{"signal_equals_kernel", 64, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kernel := randomSlice(rng, tt.kernelLen)
			signal := randomSlice(rng, tt.signalLen)

			want := naiveCorrelateValid(signal, kernel)
			conv := NewFFTConvolver(kernel)
			require.NotNil(t, conv)
			assert.Equal(t, tt.kernelLen, conv.KernelLen())

			got := make([]float64, len(want))
			conv.Convolve(got, signal)
			assert.InDeltaSlice(t, want, got, 1e-9)
		})
	}
}

func TestFFTConvolver_ShortSignalIsNoop(t *testing.T) {
	conv := NewFFTConvolver([]float64{1, 2, 3, 4})
	dst := []float64{7, 7}
	conv.Convolve(dst, []float64{1, 2})
	assert.Equal(t, []float64{7, 7}, dst)
}

func TestConvolveValidFFT_PathsAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	signal := randomSlice(rng, 6000)

	for _, taps := range []int{minKernelForFFT - 1, minKernelForFFT, 2 * minKernelForFFT} {
		kernel := randomSlice(rng, taps)
		want := naiveCorrelateValid(signal, kernel)
		got := make([]float64, len(want))
		ConvolveValidFFT(got, signal, kernel)
		assert.InDeltaSlice(t, want, got, 1e-9, "taps=%d", taps)
	}
}

func BenchmarkFFTConvolver_1025Taps(b *testing.B) {
	rng := rand.New(rand.NewPCG(5, 6))
	kernel := randomSlice(rng, 1025)
	signal := randomSlice(rng, 48000)
	conv := NewFFTConvolver(kernel)
	dst := make([]float64, len(signal)-len(kernel)+1)

	b.ResetTimer()
	for b.Loop() {
		conv.Convolve(dst, signal)
	}
}
