package ambient

import (
	"fmt"
	"testing"
)

func BenchmarkComposeSequential(b *testing.B) {
	benchmarkCompose(b, false)
}

func BenchmarkComposeParallel(b *testing.B) {
	benchmarkCompose(b, true)
}

func benchmarkCompose(b *testing.B, parallel bool) {
	cfg := DefaultConfig()
	cfg.EnableParallel = parallel
	c, err := NewComposer(DefaultRepository(), cfg)
	if err != nil {
		b.Fatal(err)
	}

	const n = 48000
	b.SetBytes(n * 8)
	b.ResetTimer()
	for b.Loop() {
		if _, err := c.ComposeBackgroundNoise(SeaState3, RainHeavy, ShippingLevel4, n, Rate48k); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkComposeDuration(b *testing.B) {
	c, err := NewComposer(DefaultRepository(), DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}

	for _, seconds := range []int{1, 10} {
		b.Run(fmt.Sprintf("%ds", seconds), func(b *testing.B) {
			n := seconds * Rate48k
			for b.Loop() {
				if _, err := c.ComposeBackgroundNoise(SeaState0, RainLight, ShippingLevel1, n, Rate48k); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEstimateSpectrum(b *testing.B) {
	noise, err := SynthesizeNoise([]float64{100, 1000, 10000}, []float64{60, 50, 40}, 480000, Rate48k, 1)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for b.Loop() {
		if _, err := EstimateSpectrum(noise, 4096, 0.5, Rate48k); err != nil {
			b.Fatal(err)
		}
	}
}
