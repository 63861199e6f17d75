package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	ambient "github.com/tphakala/go-ambient-noise"
)

var (
	errToleranceExceeded = errors.New("estimated spectrum deviates from reference")
	errEmptyBand         = errors.New("no estimator bins inside the comparison band")
)

// comparison summarizes how an estimate deviates from a reference in a band.
type comparison struct {
	Bins       int
	MaxAbsDB   float64
	MeanAbsDB  float64
	WorstFreq  float64
	WorstEstDB float64
	WorstRefDB float64
}

// compareSpectra evaluates ref at the estimate's bins in [lo, hi] and
// reports the absolute dB deviations.
func compareSpectra(est, ref ambient.Spectrum, lo, hi float64) (comparison, error) {
	freqs := est.Frequencies()
	levels := est.Intensities()
	want := ref.IntensitiesAt(freqs)

	var c comparison
	var total float64
	for i, f := range freqs {
		if f < lo || f > hi {
			continue
		}
		d := math.Abs(levels[i] - want[i])
		total += d
		c.Bins++
		if d > c.MaxAbsDB || c.Bins == 1 {
			c.MaxAbsDB = d
			c.WorstFreq = f
			c.WorstEstDB = levels[i]
			c.WorstRefDB = want[i]
		}
	}
	if c.Bins == 0 {
		return comparison{}, fmt.Errorf("%w: [%g, %g] Hz", errEmptyBand, lo, hi)
	}
	c.MeanAbsDB = total / float64(c.Bins)
	return c, nil
}

func (a *app) validateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Synthesize a scenario, estimate its spectrum and compare it to the reference",
		Args:  cobra.NoArgs,
		RunE:  a.runValidate,
	}
	addScenarioFlags(cmd)
	addLengthFlags(cmd)
	addEstimatorFlags(cmd)
	cmd.Flags().Float64("band-low", defaultBandLow, "lowest compared frequency in Hz")
	cmd.Flags().Float64("band-high", defaultBandHigh, "highest compared frequency in Hz")
	cmd.Flags().Float64("tolerance", defaultToleranceDB, "maximum allowed deviation in dB")
	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, _ []string) error {
	sc, err := scenarioFromFlags(cmd)
	if err != nil {
		return err
	}
	fs := a.cfg.SampleRate
	n, err := samplesFromFlags(cmd, fs)
	if err != nil {
		return err
	}
	windowSize, _ := cmd.Flags().GetInt("window-size")
	overlap, _ := cmd.Flags().GetFloat64("overlap")
	lo, _ := cmd.Flags().GetFloat64("band-low")
	hi, _ := cmd.Flags().GetFloat64("band-high")
	tolerance, _ := cmd.Flags().GetFloat64("tolerance")

	composer, err := a.composer()
	if err != nil {
		return err
	}

	start := a.clock.Now()
	noise, err := composer.ComposeContext(cmd.Context(), n, fs, sc.sea, sc.rain, sc.shipping)
	if err != nil {
		return err
	}
	elapsed := a.clock.Since(start)

	est, err := ambient.EstimateSpectrum(noise, windowSize, overlap, fs)
	if err != nil {
		return err
	}
	ref, err := a.combiner().Combine(fs, sc.sea, sc.rain, sc.shipping)
	if err != nil {
		return err
	}
	if ref.IsEmpty() {
		return fmt.Errorf("%w: no reference below %g Hz", ambient.ErrEmptySpectrum, fs/2)
	}

	report, err := compareSpectra(est, ref, lo, hi)
	if err != nil {
		return err
	}

	a.logger.Info("Validation finished",
		zap.Stringer("scenario", sc),
		zap.Uint64("seed", a.cfg.Seed),
		zap.Duration("elapsed", elapsed),
		zap.Float64("realtime_factor", realtimeFactor(n, fs, elapsed)))

	_, _ = fmt.Fprintf(cmd.OutOrStdout(),
		"bins=%d max_abs_db=%.2f mean_abs_db=%.2f worst_hz=%.1f (est %.2f dB, ref %.2f dB)\n",
		report.Bins, report.MaxAbsDB, report.MeanAbsDB, report.WorstFreq, report.WorstEstDB, report.WorstRefDB)

	if report.MaxAbsDB > tolerance {
		return fmt.Errorf("%w: %.2f dB at %.1f Hz exceeds %.2f dB",
			errToleranceExceeded, report.MaxAbsDB, report.WorstFreq, tolerance)
	}
	return nil
}
