package ambient

import (
	"fmt"
	"math"
	"slices"

	"github.com/tphakala/go-ambient-noise/internal/mathutil"
	"gonum.org/v1/gonum/floats"
)

// Combiner builds the reference spectrum of a sea/rain/shipping scenario.
type Combiner struct {
	provider TemplateProvider
	fillDB   float64
}

// NewCombiner returns a Combiner reading templates from provider. fillDB is
// the level each template contributes outside its own frequency range.
func NewCombiner(provider TemplateProvider, fillDB float64) *Combiner {
	return &Combiner{provider: provider, fillDB: fillDB}
}

// Combine returns the reference spectrum of the scenario up to fs/2.
// Absent categories take part as zero-dB templates over their own grid.
func (c *Combiner) Combine(fs float64, sea Sea, rain Rain, shipping Shipping) (Spectrum, error) {
	sources := []Source{rain, sea, shipping}
	templates := make([]Spectrum, 0, len(sources))
	for _, src := range sources {
		t, err := c.provider.Lookup(src.Category(), src.Level())
		if err != nil {
			return Spectrum{}, err
		}
		templates = append(templates, t)
	}
	return CombineSpectra(fs, c.fillDB, templates...)
}

// CombineSpectra sums the templates as linear amplitudes on the union of
// their frequency grids, truncated to fs/2, and returns the result in dB.
// Each template is interpolated linearly in dB; outside its own range it
// contributes fillDB. Use math.Inf(-1) as fillDB for no contribution.
func CombineSpectra(fs, fillDB float64, spectra ...Spectrum) (Spectrum, error) {
	if !(fs > 0) {
		return Spectrum{}, fmt.Errorf("%w: %g Hz", ErrInvalidSampleRate, fs)
	}
	if math.IsNaN(fillDB) {
		return Spectrum{}, fmt.Errorf("%w: fill level is NaN", ErrInvalidConfig)
	}
	for _, s := range spectra {
		if err := s.validateAxis(); err != nil {
			return Spectrum{}, err
		}
	}

	grid := unionGrid(spectra)
	if idx := firstAbove(grid, fs/nyquistDivisor); idx != noneAbove {
		grid = grid[:idx]
	}
	if len(grid) == 0 {
		return Spectrum{}, nil
	}

	sum := make([]float64, len(grid))
	level := make([]float64, len(grid))
	for _, s := range spectra {
		mathutil.Interpolate(level, grid, s.freqs, s.dB, fillDB, fillDB)
		floats.Add(sum, mathutil.DBToAmplitudes(level, level))
	}

	return newSpectrumOwned(grid, mathutil.AmplitudesToDB(sum, sum)), nil
}

// unionGrid returns the sorted distinct frequencies of all spectra.
func unionGrid(spectra []Spectrum) []float64 {
	var n int
	for _, s := range spectra {
		n += s.Len()
	}
	grid := make([]float64, 0, n)
	for _, s := range spectra {
		grid = append(grid, s.freqs...)
	}
	slices.Sort(grid)
	return slices.Compact(grid)
}
