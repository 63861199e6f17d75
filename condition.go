package ambient

import (
	"fmt"

	"github.com/tphakala/go-ambient-noise/internal/mathutil"
)

// noneAbove is returned by firstAbove when no frequency exceeds the limit.
const noneAbove = -1

// ConditionToNyquist reshapes a template in Hz so that it spans exactly
// [0, fs/2], then normalizes the axis so that 1 is Nyquist.
//
// Points above Nyquist are dropped and replaced by one point at fs/2,
// interpolated from its neighbours. A template ending below Nyquist is
// extended to fs/2 along the slope of its last two points, and one lying
// entirely above Nyquist collapses to a single point extrapolated back
// along the slope of its first two. A template not starting at 0 Hz gets a
// flat point prepended at DC.
func ConditionToNyquist(s Spectrum, fs float64) (Spectrum, error) {
	if !(fs > 0) {
		return Spectrum{}, fmt.Errorf("%w: %g Hz", ErrInvalidSampleRate, fs)
	}
	if err := s.validateAxis(); err != nil {
		return Spectrum{}, err
	}

	nyquist := fs / nyquistDivisor
	f, d := s.freqs, s.dB
	last := len(f) - 1

	var freqs, dB []float64
	switch idx := firstAbove(f, nyquist); {
	case idx == noneAbove:
		freqs, dB = append(freqs, f...), append(dB, d...)
		if f[last] != nyquist {
			freqs = append(freqs, nyquist)
			dB = append(dB, slopeAt(nyquist, f, d, last-1, last))
		}
	case idx == 0:
		freqs = []float64{nyquist}
		dB = []float64{slopeAt(nyquist, f, d, 0, 1)}
	case f[idx-1] == nyquist:
		freqs, dB = append(freqs, f[:idx]...), append(dB, d[:idx]...)
	default:
		freqs, dB = append(freqs, f[:idx]...), append(dB, d[:idx]...)
		freqs = append(freqs, nyquist)
		dB = append(dB, mathutil.LinearAt(nyquist, f[idx-1], d[idx-1], f[idx], d[idx]))
	}

	if freqs[0] != 0 {
		freqs = append([]float64{0}, freqs...)
		dB = append([]float64{dB[0]}, dB...)
	}

	for i := range freqs {
		freqs[i] /= nyquist
	}

	return newSpectrumOwned(freqs, dB), nil
}

// firstAbove returns the index of the first frequency above limit, or noneAbove.
func firstAbove(freqs []float64, limit float64) int {
	for i, f := range freqs {
		if f > limit {
			return i
		}
	}
	return noneAbove
}

// slopeAt evaluates the line through points i and j at x. With a single
// point the line is flat.
func slopeAt(x float64, f, d []float64, i, j int) float64 {
	if i < 0 || j >= len(f) || i == j {
		return d[max(i, 0)]
	}
	return mathutil.LinearAt(x, f[i], d[i], f[j], d[j])
}
