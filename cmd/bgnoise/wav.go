package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

var errUnsupportedBitDepth = errors.New("unsupported bit depth")

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

func validateBitDepth(bitDepth int) error {
	switch bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
		return nil
	default:
		return fmt.Errorf("%w: %d (use 16, 24 or 32)", errUnsupportedBitDepth, bitDepth)
	}
}

// quantize converts samples in [-1, 1] to integer PCM, clipping overshoot.
func quantize(samples []float64, bitDepth int) []int {
	maxVal := getMaxValue(bitDepth)
	out := make([]int, len(samples))
	for i, s := range samples {
		v := math.Round(s * maxVal)
		out[i] = int(max(-maxVal, min(maxVal, v)))
	}
	return out
}

// writeWAV writes mono samples in [-1, 1] as integer PCM.
func writeWAV(path string, samples []float64, sampleRate, bitDepth int) error {
	if err := validateBitDepth(bitDepth); err != nil {
		return err
	}

	outputFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	encoder := wav.NewEncoder(outputFile, sampleRate, bitDepth, monoChannels, pcmFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: monoChannels, SampleRate: sampleRate},
		Data:           quantize(samples, bitDepth),
		SourceBitDepth: bitDepth,
	}

	if err := encoder.Write(buf); err != nil {
		_ = outputFile.Close()
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := encoder.Close(); err != nil {
		_ = outputFile.Close()
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return outputFile.Close()
}

// wavInput is a decoded WAV file mixed down to mono.
type wavInput struct {
	samples    []float64
	sampleRate int
	channels   int
	bitDepth   int
}

// readWAV decodes a PCM WAV file, scales samples to [-1, 1] and averages
// channels into one.
func readWAV(path string) (*wavInput, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = inputFile.Close() }()

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode WAV: %w", err)
	}

	channels := int(decoder.NumChans)
	bitDepth := int(decoder.BitDepth)
	if channels < 1 {
		return nil, fmt.Errorf("invalid WAV file: %s has no channels", path)
	}
	if err := validateBitDepth(bitDepth); err != nil {
		return nil, err
	}

	return &wavInput{
		samples:    mixDown(buf.Data, channels, 1/getMaxValue(bitDepth)),
		sampleRate: int(decoder.SampleRate),
		channels:   channels,
		bitDepth:   bitDepth,
	}, nil
}

// mixDown averages interleaved channels and scales the result.
func mixDown(data []int, channels int, scale float64) []float64 {
	frames := len(data) / channels
	out := make([]float64, frames)
	norm := scale / float64(channels)
	for i := range frames {
		var sum int
		for ch := range channels {
			sum += data[i*channels+ch]
		}
		out[i] = float64(sum) * norm
	}
	return out
}
