package ambient

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Composer sums independently synthesized category noises into one
// realization. It is safe for concurrent use.
type Composer struct {
	provider TemplateProvider
	synth    *Synthesizer
	cfg      Config
}

// NewComposer validates cfg and returns a Composer reading templates from provider.
func NewComposer(provider TemplateProvider, cfg Config) (*Composer, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: template provider is nil", ErrInvalidConfig)
	}
	synth, err := NewSynthesizer(cfg)
	if err != nil {
		return nil, err
	}
	return &Composer{provider: provider, synth: synth, cfg: cfg}, nil
}

// Config returns the composer's configuration.
func (c *Composer) Config() Config {
	return c.cfg
}

// ComposeBackgroundNoise returns n samples at fs of sea, rain and shipping
// noise summed together. Absent rain or shipping adds exact zeros.
func (c *Composer) ComposeBackgroundNoise(sea Sea, rain Rain, shipping Shipping, n int, fs float64) ([]float64, error) {
	return c.ComposeContext(context.Background(), n, fs, sea, rain, shipping)
}

// ComposeSources returns n samples at fs of every source summed together.
// With no sources the result is n zeros.
func (c *Composer) ComposeSources(n int, fs float64, sources ...Source) ([]float64, error) {
	return c.ComposeContext(context.Background(), n, fs, sources...)
}

// ComposeContext is ComposeSources with cancellation, checked before each
// source is synthesized.
//
// Every source draws from its own ChaCha8 stream keyed by the configured
// seed, its category and how many earlier sources share that category.
// Contributions are summed in argument order, so the result does not depend
// on EnableParallel.
func (c *Composer) ComposeContext(ctx context.Context, n int, fs float64, sources ...Source) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleCount, n)
	}
	if !(fs > 0) {
		return nil, fmt.Errorf("%w: %g Hz", ErrInvalidSampleRate, fs)
	}

	keys := streamKeys(sources)
	parts := make([][]float64, len(sources))
	render := func(ctx context.Context, i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		part, err := c.render(sources[i], n, fs, keys[i])
		if err != nil {
			return fmt.Errorf("%v: %w", sources[i], err)
		}
		parts[i] = part
		return nil
	}

	if c.cfg.EnableParallel && len(sources) > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i := range sources {
			g.Go(func() error { return render(gctx, i) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range sources {
			if err := render(ctx, i); err != nil {
				return nil, err
			}
		}
	}

	out := make([]float64, n)
	for _, part := range parts {
		if part != nil {
			floats.Add(out, part)
		}
	}
	return out, nil
}

// render synthesizes one source, or returns nil for an absent one.
func (c *Composer) render(src Source, n int, fs float64, key uint64) ([]float64, error) {
	contribution, err := resolve(c.provider, src)
	if err != nil {
		return nil, err
	}
	template, ok := contribution.Template()
	if !ok {
		return nil, nil
	}

	conditioned, err := ConditionToNyquist(template, fs)
	if err != nil {
		return nil, err
	}
	return c.synth.Synthesize(conditioned, n, newStream(c.cfg.Seed, key))
}

// streamKeys assigns each source a stream key from its category and its
// occurrence among sources of the same category.
func streamKeys(sources []Source) []uint64 {
	const categoryShift = 32
	seen := make(map[Category]uint64, len(Categories))
	keys := make([]uint64, len(sources))
	for i, src := range sources {
		cat := src.Category()
		keys[i] = (uint64(cat)+1)<<categoryShift | seen[cat]
		seen[cat]++
	}
	return keys
}
