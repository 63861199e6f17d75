// Command analyze-filter designs the shaping filter of every noise template
// and prints how closely its magnitude response meets the template at each
// control point.
//
// Usage:
//
//	analyze-filter [--fs 48000] [--taps 1025] [--window hamming] [--category sea]
package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/pflag"

	ambient "github.com/tphakala/go-ambient-noise"
	"github.com/tphakala/go-ambient-noise/internal/filter"
	"github.com/tphakala/go-ambient-noise/internal/mathutil"
)

const (
	defaultSampleRate = 48000.0
	defaultCategory   = "all"

	// Display limits
	maxPointsToShow = 12
	responsePoints  = 1024
)

func main() {
	fs := pflag.Float64("fs", defaultSampleRate, "sample rate in Hz")
	taps := pflag.Int("taps", ambient.DefaultFilterOrder, "filter length (odd)")
	window := pflag.String("window", ambient.WindowHamming.String(), "window: hamming, kaiser, rectangular")
	beta := pflag.Float64("kaiser-beta", ambient.DefaultKaiserBeta, "kaiser window beta")
	attenuation := pflag.Float64("attenuation", 0, "derive the kaiser beta from a sidelobe attenuation in dB")
	category := pflag.String("category", defaultCategory, "sea, rain, shipping or all")
	verbose := pflag.BoolP("verbose", "v", false, "print every control point")
	pflag.Parse()

	if *attenuation > 0 {
		*beta = mathutil.KaiserBeta(*attenuation)
	}
	if err := run(*fs, *taps, *window, *beta, *category, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(fs float64, taps int, window string, beta float64, category string, verbose bool) error {
	w, err := ambient.ParseWindowType(window)
	if err != nil {
		return err
	}
	cfg := ambient.DefaultConfig()
	cfg.FilterOrder = taps
	cfg.Window = w
	cfg.KaiserBeta = beta

	synth, err := ambient.NewSynthesizer(cfg)
	if err != nil {
		return err
	}
	repo := ambient.DefaultRepository()

	fmt.Println("=== Analyzing Shaping Filters ===")
	fmt.Printf("  Sample rate: %.0f Hz\n", fs)
	fmt.Printf("  Taps: %d\n", taps)
	fmt.Printf("  Window: %v\n", w)
	if w == ambient.WindowKaiser {
		fmt.Printf("  Kaiser beta: %.3f (%.1f dB sidelobe attenuation)\n", beta, mathutil.KaiserAttenuation(beta))
	}
	fmt.Println()

	for _, cat := range ambient.Categories {
		if category != defaultCategory && !strings.EqualFold(category, cat.String()) {
			continue
		}
		first := 0
		if cat.HasAbsentLevel() {
			first = 1
		}
		for level := first; level < repo.Levels(cat); level++ {
			template, err := repo.Lookup(cat, level)
			if err != nil {
				return err
			}
			if err := analyze(synth, template, fs, fmt.Sprintf("%v level %d", cat, level), verbose); err != nil {
				return err
			}
		}
	}
	return nil
}

// analyze designs one filter and compares its response to the conditioned
// template at the control points.
func analyze(synth *ambient.Synthesizer, template ambient.Spectrum, fs float64, name string, verbose bool) error {
	conditioned, err := ambient.ConditionToNyquist(template, fs)
	if err != nil {
		return err
	}
	coeffs, err := synth.Design(conditioned)
	if err != nil {
		return err
	}

	freqs := conditioned.Frequencies()
	want := conditioned.Intensities()
	got := filter.MagnitudeAt(coeffs, freqs)
	for i := range got {
		got[i] = filter.MagnitudeDB(got[i])
	}

	var worst, sum float64
	worstIdx := 0
	for i := range freqs {
		d := math.Abs(got[i] - want[i])
		sum += d
		if d > worst {
			worst, worstIdx = d, i
		}
	}

	fmt.Printf("=== %s ===\n", name)
	fmt.Printf("  Control points: %d\n", len(freqs))
	fmt.Printf("  Mean error: %.3f dB\n", sum/float64(len(freqs)))
	fmt.Printf("  Worst error: %.3f dB at %.1f Hz\n", worst, freqs[worstIdx]*fs/2)

	resp := filter.ComputeFrequencyResponse(coeffs, responsePoints)
	peak := 0
	for k, m := range resp.Magnitude {
		if m > resp.Magnitude[peak] {
			peak = k
		}
	}
	// Response frequencies run from 0 to 0.5 cycles per sample.
	fmt.Printf("  Peak gain: %.2f dB at %.1f Hz\n", filter.MagnitudeDB(resp.Magnitude[peak]), resp.Frequencies[peak]*fs)

	if verbose {
		shown := min(len(freqs), maxPointsToShow)
		for i := range shown {
			fmt.Printf("    %9.1f Hz: target %7.2f dB, filter %7.2f dB\n",
				freqs[i]*fs/2, want[i], got[i])
		}
		if len(freqs) > shown {
			fmt.Printf("    ... (%d more points)\n", len(freqs)-shown)
		}
	}
	fmt.Println()
	return nil
}
