package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	ambient "github.com/tphakala/go-ambient-noise"
)

// appConfig is the merged flag, environment and file configuration.
type appConfig struct {
	SampleRate  float64      `mapstructure:"sample_rate"`
	Seed        uint64       `mapstructure:"seed"`
	FilterOrder int          `mapstructure:"filter_order"`
	Window      string       `mapstructure:"window"`
	KaiserBeta  float64      `mapstructure:"kaiser_beta"`
	Parallel    bool         `mapstructure:"parallel"`
	FillDB      float64      `mapstructure:"fill_db"`
	Log         loggerConfig `mapstructure:"log"`

	// seedSet records whether Seed was given explicitly.
	seedSet bool
}

// loggerConfig selects log verbosity, format and the optional rotated file.
type loggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// persistentFlags maps config keys to the global flags that set them.
var persistentFlags = map[string]string{
	"sample_rate":  "fs",
	"seed":         "seed",
	"filter_order": "taps",
	"window":       "window",
	"kaiser_beta":  "kaiser-beta",
	"parallel":     "parallel",
	"fill_db":      "fill-db",
	"log.level":    "log-level",
	"log.format":   "log-format",
	"log.file":     "log-file",
}

func registerPersistentFlags(flags *pflag.FlagSet) {
	def := ambient.DefaultConfig()
	flags.StringP("config", "c", "", "config file (default is ./bgnoise.yaml)")
	flags.Float64("fs", defaultSampleRate, "sample rate in Hz")
	flags.Uint64("seed", 0, "random seed (random when unset)")
	flags.Int("taps", def.FilterOrder, "shaping filter length (odd)")
	flags.String("window", def.Window.String(), "shaping filter window: hamming, kaiser, rectangular")
	flags.Float64("kaiser-beta", def.KaiserBeta, "kaiser window beta")
	flags.Bool("parallel", def.EnableParallel, "synthesize categories concurrently")
	flags.Float64("fill-db", def.FillDB, "level of a template outside its range when combining (-inf for none)")
	flags.String("log-level", defaultLogLevel, "log level: debug, info, warn, error")
	flags.String("log-format", defaultLogFormat, "log format: console, json")
	flags.String("log-file", "", "also write JSON logs to this rotated file")
}

// newViper builds a viper instance bound to flags, the environment and an
// optional config file.
func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("log.max_size", defaultLogMaxSize)
	v.SetDefault("log.max_backups", defaultLogBackups)
	v.SetDefault("log.max_age", defaultLogMaxAge)

	for key, name := range persistentFlags {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfgFile, _ := flags.GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(configBaseName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return v, nil
}

// loadConfig decodes the merged configuration.
func loadConfig(v *viper.Viper) (appConfig, error) {
	var cfg appConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return appConfig{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.seedSet = v.IsSet("seed")

	if !(cfg.SampleRate > 0) || math.IsInf(cfg.SampleRate, 0) {
		return appConfig{}, fmt.Errorf("%w: sample rate %g", ambient.ErrInvalidSampleRate, cfg.SampleRate)
	}
	return cfg, nil
}

// libraryConfig converts the CLI settings into a synthesis configuration.
func (c appConfig) libraryConfig() (ambient.Config, error) {
	window, err := ambient.ParseWindowType(c.Window)
	if err != nil {
		return ambient.Config{}, err
	}

	cfg := ambient.DefaultConfig()
	cfg.FilterOrder = c.FilterOrder
	cfg.Window = window
	cfg.KaiserBeta = c.KaiserBeta
	cfg.Seed = c.Seed
	cfg.EnableParallel = c.Parallel
	cfg.FillDB = c.FillDB

	if err := cfg.Validate(); err != nil {
		return ambient.Config{}, err
	}
	return cfg, nil
}
