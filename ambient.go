package ambient

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-ambient-noise/internal/filter"
)

// Common errors returned by the package.
var (
	// ErrMismatchedLengths indicates frequency and intensity slices differ in length.
	ErrMismatchedLengths = errors.New("frequencies and intensities must have the same length")

	// ErrInvalidOverlap indicates an overlap fraction outside [0, 1), or one
	// that leaves the estimator with a zero hop.
	ErrInvalidOverlap = errors.New("invalid window overlap")

	// ErrMalformedTemplateSource indicates a template table could not be loaded.
	ErrMalformedTemplateSource = errors.New("malformed template source")

	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidSampleRate indicates a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("invalid sample rate")

	// ErrInvalidSampleCount indicates a negative number of samples.
	ErrInvalidSampleCount = errors.New("invalid sample count")

	// ErrInvalidWindowSize indicates an estimator window shorter than two samples.
	ErrInvalidWindowSize = errors.New("invalid window size")

	// ErrSignalTooShort indicates the signal does not hold a single full window.
	ErrSignalTooShort = errors.New("signal shorter than one analysis window")

	// ErrUnknownLevel indicates a category or level with no template.
	ErrUnknownLevel = errors.New("unknown noise level")

	// ErrEmptySpectrum indicates a spectrum with no points where one is required.
	ErrEmptySpectrum = errors.New("empty spectrum")

	// ErrInvalidFrequencies indicates a frequency axis that is negative or not
	// strictly increasing.
	ErrInvalidFrequencies = errors.New("invalid frequency axis")
)

// WindowType selects the taper applied to the shaping filter.
type WindowType = filter.WindowType

// Supported shaping-filter windows.
const (
	WindowHamming     = filter.WindowHamming
	WindowKaiser      = filter.WindowKaiser
	WindowRectangular = filter.WindowRectangular
)

// ParseWindowType maps a window name ("hamming", "kaiser", "rectangular") to its WindowType.
func ParseWindowType(name string) (WindowType, error) {
	w, err := filter.ParseWindowType(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return w, nil
}

// Config holds synthesis configuration.
type Config struct {
	// FilterOrder is the number of taps of the shaping FIR filter.
	// It must be odd.
	FilterOrder int

	// NoiseStdDev is the standard deviation of the white excitation.
	NoiseStdDev float64

	// Window is the taper applied to the designed impulse response.
	Window WindowType

	// KaiserBeta is the Kaiser window β. Only used with WindowKaiser.
	KaiserBeta float64

	// Seed keys the per-category random streams. Equal seeds give
	// equal realizations.
	Seed uint64

	// EnableParallel synthesizes the categories of a composition concurrently.
	// Results are identical either way.
	EnableParallel bool

	// FillDB is the level a template contributes outside its frequency range
	// when spectra are combined. Use math.Inf(-1) for silence.
	FillDB float64
}

// DefaultConfig returns the configuration used by the convenience helpers.
func DefaultConfig() Config {
	return Config{
		FilterOrder:    DefaultFilterOrder,
		NoiseStdDev:    DefaultNoiseStdDev,
		Window:         WindowHamming,
		KaiserBeta:     DefaultKaiserBeta,
		EnableParallel: true,
		FillDB:         DefaultFillDB,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.FilterOrder < minFilterOrder || c.FilterOrder > maxFilterOrder {
		return fmt.Errorf("%w: filter order must be %d-%d, got %d",
			ErrInvalidConfig, minFilterOrder, maxFilterOrder, c.FilterOrder)
	}

	if c.FilterOrder%orderParity == 0 {
		return fmt.Errorf("%w: filter order must be odd, got %d", ErrInvalidConfig, c.FilterOrder)
	}

	if !(c.NoiseStdDev > 0) || math.IsInf(c.NoiseStdDev, 0) {
		return fmt.Errorf("%w: noise standard deviation must be positive and finite", ErrInvalidConfig)
	}

	switch c.Window {
	case WindowHamming, WindowRectangular:
	case WindowKaiser:
		if c.KaiserBeta < 0 || math.IsNaN(c.KaiserBeta) || math.IsInf(c.KaiserBeta, 0) {
			return fmt.Errorf("%w: kaiser beta must be non-negative", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown window %v", ErrInvalidConfig, c.Window)
	}

	if math.IsNaN(c.FillDB) || math.IsInf(c.FillDB, 1) {
		return fmt.Errorf("%w: fill level must be finite or -Inf", ErrInvalidConfig)
	}

	return nil
}
