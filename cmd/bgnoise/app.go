package main

import (
	"io"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	ambient "github.com/tphakala/go-ambient-noise"
)

// app carries the dependencies shared by every subcommand.
type app struct {
	stdout io.Writer
	stderr io.Writer
	clock  clockwork.Clock
	repo   ambient.TemplateProvider

	v      *viper.Viper
	cfg    appConfig
	logger *zap.Logger
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		clock:  clockwork.NewRealClock(),
		repo:   ambient.DefaultRepository(),
		logger: zap.NewNop(),
	}
}

func (a *app) execute(args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	defer func() { _ = a.logger.Sync() }()
	return root.Execute()
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "bgnoise",
		Short:         "Synthesize and analyze underwater ambient noise.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	registerPersistentFlags(root.PersistentFlags())
	root.AddCommand(
		a.generateCommand(),
		a.spectrumCommand(),
		a.estimateCommand(),
		a.validateCommand(),
	)
	return root
}

// initialize loads configuration and sets up logging before any subcommand runs.
func (a *app) initialize(cmd *cobra.Command) error {
	v, err := newViper(cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	if !cfg.seedSet {
		cfg.Seed = rand.Uint64()
	}

	a.v = v
	a.cfg = cfg
	a.logger = newLogger(cfg.Log, zapcore.Lock(zapcore.AddSync(a.stderr))).
		With(zap.String("run_id", uuid.NewString()))
	a.logger.Debug("Configuration loaded",
		zap.String("config_file", v.ConfigFileUsed()),
		zap.Float64("sample_rate", cfg.SampleRate),
		zap.Uint64("seed", cfg.Seed),
		zap.Int("filter_order", cfg.FilterOrder),
		zap.String("window", cfg.Window))
	return nil
}

// composer builds a Composer from the loaded configuration.
func (a *app) composer() (*ambient.Composer, error) {
	cfg, err := a.cfg.libraryConfig()
	if err != nil {
		return nil, err
	}
	return ambient.NewComposer(a.repo, cfg)
}

// combiner builds a Combiner with the configured fill level.
func (a *app) combiner() *ambient.Combiner {
	return ambient.NewCombiner(a.repo, a.cfg.FillDB)
}
