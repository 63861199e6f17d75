package main

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	ambient "github.com/tphakala/go-ambient-noise"
)

// scenario is one sea/rain/shipping combination.
type scenario struct {
	sea      ambient.Sea
	rain     ambient.Rain
	shipping ambient.Shipping
}

func (s scenario) String() string {
	return fmt.Sprintf("%v, %v, %v", s.sea, s.rain, s.shipping)
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().String("sea", "0", "sea state 0-6")
	cmd.Flags().String("rain", "none", "rain: none, light, moderate, heavy, very_heavy")
	cmd.Flags().String("shipping", "none", "shipping: none or level 1-7")
}

func scenarioFromFlags(cmd *cobra.Command) (scenario, error) {
	seaFlag, _ := cmd.Flags().GetString("sea")
	rainFlag, _ := cmd.Flags().GetString("rain")
	shippingFlag, _ := cmd.Flags().GetString("shipping")

	sea, err := ambient.ParseSea(seaFlag)
	if err != nil {
		return scenario{}, err
	}
	rain, err := ambient.ParseRain(rainFlag)
	if err != nil {
		return scenario{}, err
	}
	shipping, err := ambient.ParseShipping(shippingFlag)
	if err != nil {
		return scenario{}, err
	}
	return scenario{sea: sea, rain: rain, shipping: shipping}, nil
}

func addLengthFlags(cmd *cobra.Command) {
	cmd.Flags().String("duration", defaultDuration, "length of the realization")
	cmd.Flags().Int("samples", 0, "number of samples (overrides --duration)")
}

// samplesFromFlags resolves --samples or --duration at sample rate fs.
func samplesFromFlags(cmd *cobra.Command, fs float64) (int, error) {
	if samples, _ := cmd.Flags().GetInt("samples"); samples != 0 {
		if samples < 0 {
			return 0, fmt.Errorf("%w: %d", ambient.ErrInvalidSampleCount, samples)
		}
		return samples, nil
	}

	durationFlag, _ := cmd.Flags().GetString("duration")
	d, err := time.ParseDuration(durationFlag)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", durationFlag, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: negative duration %v", ambient.ErrInvalidSampleCount, d)
	}
	return int(math.Round(d.Seconds() * fs)), nil
}

// realtimeFactor is audio length over processing time, or 0 when no time passed.
func realtimeFactor(samples int, fs float64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(samples) / fs / elapsed.Seconds()
}
