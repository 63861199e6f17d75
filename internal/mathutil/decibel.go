package mathutil

import "math"

// DBToAmplitude converts an amplitude level in decibels to a linear
// amplitude: 10^(dB/20). -Inf maps to exactly zero.
func DBToAmplitude(db float64) float64 {
	return math.Pow(dbBase, db/dbAmplitudeFactor)
}

// AmplitudeToDB converts a linear amplitude to decibels: 20·log10(a).
// Zero maps to -Inf; there is no floor.
func AmplitudeToDB(amplitude float64) float64 {
	return dbAmplitudeFactor * math.Log10(amplitude)
}

// DBToAmplitudes converts every element of db into dst and returns dst.
// If dst is nil a new slice is allocated.
func DBToAmplitudes(dst, db []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(db))
	}
	for i, v := range db {
		dst[i] = DBToAmplitude(v)
	}
	return dst
}

// AmplitudesToDB converts every element of amplitudes into dst and returns dst.
// If dst is nil a new slice is allocated.
func AmplitudesToDB(dst, amplitudes []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(amplitudes))
	}
	for i, v := range amplitudes {
		dst[i] = AmplitudeToDB(v)
	}
	return dst
}
