package ambient

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/tphakala/go-ambient-noise/internal/engine"
	"github.com/tphakala/go-ambient-noise/internal/filter"
	"github.com/tphakala/go-ambient-noise/internal/mathutil"
	"gonum.org/v1/gonum/stat/distuv"
)

// Synthesizer colors white Gaussian noise with a FIR filter designed from a
// conditioned template.
type Synthesizer struct {
	cfg Config
}

// NewSynthesizer validates cfg and returns a Synthesizer.
func NewSynthesizer(cfg Config) (*Synthesizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Synthesizer{cfg: cfg}, nil
}

// Design returns the shaping filter for a conditioned template: a
// symmetric, odd-length impulse response whose magnitude response passes
// through the template's linear amplitudes.
func (s *Synthesizer) Design(conditioned Spectrum) ([]float64, error) {
	if conditioned.IsEmpty() {
		return nil, ErrEmptySpectrum
	}

	coeffs, err := filter.DesignFrequencySampling(filter.FrequencySamplingParams{
		NumTaps:     s.cfg.FilterOrder,
		Frequencies: conditioned.freqs,
		Gains:       mathutil.DBToAmplitudes(nil, conditioned.dB),
		Window:      s.cfg.Window,
		KaiserBeta:  s.cfg.KaiserBeta,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFrequencies, err)
	}
	return coeffs, nil
}

// Synthesize returns n samples of noise shaped by conditioned, drawing the
// excitation from src. The filter's start-up transient is generated and
// discarded, so every returned sample is in steady state.
func (s *Synthesizer) Synthesize(conditioned Spectrum, n int, src rand.Source) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleCount, n)
	}

	coeffs, err := s.Design(conditioned)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []float64{}, nil
	}

	taps := len(coeffs)
	excitation := distuv.Normal{Mu: 0, Sigma: s.cfg.NoiseStdDev, Src: src}
	noise := make([]float64, n+taps)
	for i := range noise {
		noise[i] = excitation.Rand()
	}

	shaped := engine.ApplyFIR(coeffs, noise)
	out := make([]float64, n)
	copy(out, shaped[taps:])
	return out, nil
}

// SynthesizeNoise shapes n samples of noise at sample rate fs to follow the
// curve (freqs in Hz, intensities in dB) using the default configuration.
func SynthesizeNoise(freqs, intensities []float64, n int, fs float64, seed uint64) ([]float64, error) {
	template, err := NewSpectrum(freqs, intensities)
	if err != nil {
		return nil, err
	}
	conditioned, err := ConditionToNyquist(template, fs)
	if err != nil {
		return nil, err
	}
	synth, err := NewSynthesizer(DefaultConfig())
	if err != nil {
		return nil, err
	}
	return synth.Synthesize(conditioned, n, newStream(seed, 0))
}

// newStream returns a ChaCha8 generator keyed by (seed, key).
func newStream(seed, key uint64) *rand.ChaCha8 {
	var material [32]byte
	binary.LittleEndian.PutUint64(material[0:], seed)
	binary.LittleEndian.PutUint64(material[8:], key)
	return rand.NewChaCha8(material)
}
