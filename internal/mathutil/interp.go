package mathutil

import (
	"gonum.org/v1/gonum/interp"
)

// Interpolate evaluates the piecewise-linear curve through (xs, ys) at every
// point of xq and stores the result in dst. Points outside [xs[0], xs[len-1]]
// take the value left or right respectively. xs must be strictly increasing.
//
// A single-point curve is defined only at that point; an empty curve yields
// the fill values everywhere.
func Interpolate(dst, xq, xs, ys []float64, left, right float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(xq))
	}

	switch len(xs) {
	case 0:
		for i := range xq {
			dst[i] = left
		}
		return dst
	case 1:
		for i, x := range xq {
			switch {
			case x < xs[0]:
				dst[i] = left
			case x > xs[0]:
				dst[i] = right
			default:
				dst[i] = ys[0]
			}
		}
		return dst
	}

	var pl interp.PiecewiseLinear
	_ = pl.Fit(xs, ys) // panics rather than erroring on bad input

	lo, hi := xs[0], xs[len(xs)-1]
	for i, x := range xq {
		switch {
		case x < lo:
			dst[i] = left
		case x > hi:
			dst[i] = right
		default:
			dst[i] = pl.Predict(x)
		}
	}
	return dst
}

// InterpolateClamped is Interpolate with the end values of ys used as fill,
// matching the behaviour of an unbounded linear interpolator.
func InterpolateClamped(dst, xq, xs, ys []float64) []float64 {
	if len(ys) == 0 {
		return Interpolate(dst, xq, xs, ys, 0, 0)
	}
	return Interpolate(dst, xq, xs, ys, ys[0], ys[len(ys)-1])
}

// LinearAt returns the ordinate at x of the straight line through
// (x0, y0) and (x1, y1). It extrapolates when x lies outside [x0, x1].
func LinearAt(x, x0, y0, x1, y1 float64) float64 {
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

// NextPowerOfTwo returns the smallest power of two that is >= n (1 for n <= 1).
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// IsStrictlyIncreasing reports whether every element of s is greater than its predecessor.
func IsStrictlyIncreasing(s []float64) bool {
	for i := 1; i < len(s); i++ {
		if !(s[i] > s[i-1]) {
			return false
		}
	}
	return true
}
