package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	ambient "github.com/tphakala/go-ambient-noise"
)

var errNoOutput = errors.New("output path is required")

func (a *app) generateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Synthesize a noise realization and write it as a mono WAV file",
		Args:  cobra.NoArgs,
		RunE:  a.runGenerate,
	}
	addScenarioFlags(cmd)
	addLengthFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "output WAV path")
	cmd.Flags().Int("bit-depth", defaultBitDepth, "PCM bit depth: 16, 24 or 32")
	cmd.Flags().Float64("peak", defaultPeak, "peak level after normalization (0-1]")
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, _ []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		return errNoOutput
	}
	bitDepth, _ := cmd.Flags().GetInt("bit-depth")
	if err := validateBitDepth(bitDepth); err != nil {
		return err
	}
	peak, _ := cmd.Flags().GetFloat64("peak")
	if !(peak > 0 && peak <= 1) {
		return fmt.Errorf("peak must be in (0, 1], got %g", peak)
	}

	sc, err := scenarioFromFlags(cmd)
	if err != nil {
		return err
	}
	fs := a.cfg.SampleRate
	n, err := samplesFromFlags(cmd, fs)
	if err != nil {
		return err
	}
	composer, err := a.composer()
	if err != nil {
		return err
	}

	a.logger.Info("Generating background noise",
		zap.Stringer("scenario", sc),
		zap.Int("samples", n),
		zap.Float64("sample_rate", fs),
		zap.Uint64("seed", a.cfg.Seed))

	start := a.clock.Now()
	noise, err := composer.ComposeContext(cmd.Context(), n, fs, sc.sea, sc.rain, sc.shipping)
	if err != nil {
		return err
	}
	elapsed := a.clock.Since(start)

	if err := writeWAV(output, ambient.NormalizePeak(noise, peak), int(fs), bitDepth); err != nil {
		return err
	}

	a.logger.Info("Wrote realization",
		zap.String("output", output),
		zap.Duration("elapsed", elapsed),
		zap.Float64("realtime_factor", realtimeFactor(n, fs, elapsed)))
	return nil
}
