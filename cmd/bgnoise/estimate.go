package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	ambient "github.com/tphakala/go-ambient-noise"
)

func (a *app) estimateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate <input.wav>",
		Short: "Estimate the spectrum of a WAV recording and print it as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readWAV(args[0])
			if err != nil {
				return err
			}
			windowSize, _ := cmd.Flags().GetInt("window-size")
			overlap, _ := cmd.Flags().GetFloat64("overlap")

			est, err := ambient.EstimateSpectrum(in.samples, windowSize, overlap, float64(in.sampleRate))
			if err != nil {
				return err
			}
			a.logger.Info("Estimated spectrum",
				zap.String("input", args[0]),
				zap.Int("samples", len(in.samples)),
				zap.Int("channels", in.channels),
				zap.Int("sample_rate", in.sampleRate),
				zap.Int("bins", est.Len()))

			output, _ := cmd.Flags().GetString("output")
			return emitSpectrum(output, cmd.OutOrStdout(), est)
		},
	}
	addEstimatorFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "output CSV path (default stdout)")
	return cmd
}

func addEstimatorFlags(cmd *cobra.Command) {
	cmd.Flags().Int("window-size", defaultWindowSize, "estimator window length in samples")
	cmd.Flags().Float64("overlap", defaultOverlap, "fractional overlap of consecutive windows [0, 1)")
}
