// Package engine runs designed FIR kernels over sample buffers.
//
// Long kernels go through an overlap-save FFT convolver built on
// gonum's real FFT; short kernels use SIMD direct convolution.
package engine
