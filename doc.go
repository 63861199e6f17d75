// Package ambient synthesizes underwater ambient noise in pure Go.
//
// Noise is shaped to follow empirical spectral curves for sea state, rain
// intensity and shipping density (Hodges, Underwater Acoustics, ch. 7).
// Intensities are in dB re 1 µPa @ 1 m per Hz and synthesized samples are
// in µPa.
//
// # How it works
//
// Each category template is conditioned to cover exactly [0, fs/2], turned
// into a Type I linear-phase FIR filter by frequency sampling, and used to
// color white Gaussian noise. Independent categories are summed sample by
// sample. An averaged periodogram estimator is provided to check that a
// realization follows its reference spectrum.
//
// # Quick Start
//
// For one-shot generation with default settings:
//
//	noise, err := ambient.GenerateBackgroundNoise(ambient.SeaState2, ambient.RainLight, ambient.ShippingNone, 48000, 48000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For reproducible output, build a Composer with a seed:
//
//	cfg := ambient.DefaultConfig()
//	cfg.Seed = 42
//	c, err := ambient.NewComposer(ambient.DefaultRepository(), cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	noise, err := c.ComposeBackgroundNoise(ambient.SeaState2, ambient.RainLight, ambient.ShippingNone, 480000, 48000)
//
// The matching reference spectrum and an estimate of the realization:
//
//	ref, err := ambient.GenerateBackgroundSpectrum(ambient.SeaState2, ambient.RainLight, ambient.ShippingNone, 48000)
//	est, err := ambient.EstimateSpectrum(noise, 4096, 0.5, 48000)
//
// # Templates
//
// Templates are embedded CSV tables, one frequency column and one column per
// level. [DefaultRepository] parses them once per process; [LoadRepository]
// accepts any fs.FS laid out the same way.
//
// # Thread Safety
//
// Loaded repositories, Composers, Combiners and Synthesizers are read-only
// after construction and safe for concurrent use.
package ambient
