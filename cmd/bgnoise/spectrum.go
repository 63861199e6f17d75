package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) spectrumCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spectrum",
		Short: "Print the combined reference spectrum of a scenario as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := scenarioFromFlags(cmd)
			if err != nil {
				return err
			}
			ref, err := a.combiner().Combine(a.cfg.SampleRate, sc.sea, sc.rain, sc.shipping)
			if err != nil {
				return err
			}
			a.logger.Debug("Combined reference spectrum",
				zap.Stringer("scenario", sc),
				zap.Int("points", ref.Len()))

			output, _ := cmd.Flags().GetString("output")
			return emitSpectrum(output, cmd.OutOrStdout(), ref)
		},
	}
	addScenarioFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "output CSV path (default stdout)")
	return cmd
}
