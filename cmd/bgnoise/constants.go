package main

// Sample format constants
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	pcmFormat    = 1 // WAV audio format tag for integer PCM
	monoChannels = 1
)

// CLI defaults
const (
	defaultSampleRate  = 48000.0
	defaultDuration    = "10s"
	defaultBitDepth    = bitsPerSample16
	defaultPeak        = 0.9
	defaultWindowSize  = 4096
	defaultOverlap     = 0.5
	defaultBandLow     = 100.0
	defaultBandHigh    = 10000.0
	defaultToleranceDB = 3.0
	defaultLogLevel    = "info"
	defaultLogFormat   = "console"
	defaultLogMaxSize  = 10 // megabytes
	defaultLogBackups  = 3
	defaultLogMaxAge   = 28 // days

	envPrefix      = "BGNOISE"
	configBaseName = "bgnoise"
	serviceName    = "bgnoise"
)

// CSV output precision
const (
	frequencyDecimals = 3
	levelDecimals     = 4
)
