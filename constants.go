package ambient

// Synthesis defaults.
const (
	// DefaultFilterOrder is the number of taps of the shaping filter. It is
	// odd so the filter is Type I and may pass energy at DC and Nyquist.
	DefaultFilterOrder = 1025

	// DefaultNoiseStdDev is the standard deviation of the white Gaussian
	// excitation. The averaged periodogram sees E|X| = sqrt(pi)/2·σ, and
	// 1.13 brings that to unity so estimates land on the template level.
	DefaultNoiseStdDev = 1.13

	// DefaultSampleRate is the sample rate used by the convenience helpers.
	DefaultSampleRate = 48000.0

	// DefaultFillDB is the level a template contributes outside its own
	// frequency range when spectra are combined.
	DefaultFillDB = 0.0

	// DefaultKaiserBeta is used when the Kaiser window is selected without a β.
	DefaultKaiserBeta = 8.6
)

// Estimation defaults.
const (
	DefaultWindowSize = 1024
	DefaultOverlap    = 0.5
)

// Filter length limits.
const (
	minFilterOrder = 3
	maxFilterOrder = 65535
)

const (
	nyquistDivisor = 2.0
	orderParity    = 2
)
