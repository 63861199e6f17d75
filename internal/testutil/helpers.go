// Package testutil provides reusable test helper functions for the noise synthesis tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// halfDivisor is used for finding center indices in symmetric arrays.
const halfDivisor = 2

// AssertSymmetric verifies that a slice is symmetric (s[i] == s[n-1-i]).
func AssertSymmetric(t *testing.T, s []float64, tolerance float64) bool {
	t.Helper()
	n := len(s)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		if !assert.InDelta(t, s[i], s[j], tolerance,
			"slice not symmetric at i=%d: s[%d]=%f != s[%d]=%f", i, i, s[i], j, s[j]) {
			return false
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertStrictlyIncreasing verifies that every element is greater than its predecessor.
func AssertStrictlyIncreasing(t *testing.T, s []float64) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if !(s[i] > s[i-1]) {
			return assert.Fail(t, "not strictly increasing",
				"s[%d]=%f <= s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertCenterIsMax verifies that the center element is the maximum value.
func AssertCenterIsMax(t *testing.T, s []float64) bool {
	t.Helper()
	if len(s) == 0 {
		return assert.Fail(t, "empty slice")
	}
	centerIdx := len(s) / halfDivisor
	centerValue := s[centerIdx]
	for i, v := range s {
		if v > centerValue {
			return assert.Fail(t, "center is not max",
				"s[%d]=%f > center s[%d]=%f", i, v, centerIdx, centerValue)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertOddLength verifies that a slice has an odd length.
func AssertOddLength(t *testing.T, s []float64) bool {
	t.Helper()
	return assert.Equal(t, 1, len(s)%halfDivisor, "slice length %d is not odd", len(s))
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}

// AssertAllZero verifies that every element is exactly zero.
func AssertAllZero(t *testing.T, s []float64) bool {
	t.Helper()
	for i, v := range s {
		if v != 0 {
			return assert.Fail(t, "non-zero sample", "s[%d]=%g", i, v)
		}
	}
	return true
}

// AssertNotAllZero verifies that at least one element is non-zero.
func AssertNotAllZero(t *testing.T, s []float64) bool {
	t.Helper()
	for _, v := range s {
		if v != 0 {
			return true
		}
	}
	return assert.Fail(t, "all samples are zero", "len=%d", len(s))
}

// AssertTracksCurve verifies that got (dB) stays within toleranceDB of want (dB)
// at every index where keep returns true. It reports the worst deviation.
func AssertTracksCurve(t *testing.T, freqs, want, got []float64, toleranceDB float64, keep func(f float64) bool) bool {
	t.Helper()
	if !assert.Len(t, want, len(freqs)) || !assert.Len(t, got, len(freqs)) {
		return false
	}

	worst, worstIdx, checked := 0.0, -1, 0
	for i, f := range freqs {
		if !keep(f) {
			continue
		}
		checked++
		if d := math.Abs(got[i] - want[i]); d > worst || math.IsNaN(d) {
			worst, worstIdx = d, i
		}
	}
	if !assert.Positive(t, checked, "no bins selected") {
		return false
	}
	if worst > toleranceDB || math.IsNaN(worst) {
		return assert.Fail(t, "curve deviates",
			"worst deviation %.2f dB at %.1f Hz (want %.2f, got %.2f), tolerance %.2f dB",
			worst, freqs[worstIdx], want[worstIdx], got[worstIdx], toleranceDB)
	}
	return true
}
