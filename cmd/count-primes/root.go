package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	primes "github.com/cefqrn/count-primes"
)

func newRootCmd() *cobra.Command {
	var cfgFile string
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "count-primes",
		Short: "Count the primes in a range of 32-bit unsigned integers",
		Long: `count-primes tests every integer in the closed range
[lower_bound, upper_bound] with a deterministic Miller-Rabin primality
test and prints the number of primes found as a decimal integer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cfgFile)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.Uint32("lower-bound", defaultConfig().LowerBound, "first candidate of the scanned range (inclusive)")
	flags.Uint32("upper-bound", defaultConfig().UpperBound, "last candidate of the scanned range (inclusive)")
	flags.Int("workers", defaultConfig().Workers, "number of concurrent workers (0 = one per CPU)")
	flags.String("log-level", defaultConfig().LogLevel, "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file")

	// cobra flags use dashes, config keys use underscores.
	must(v.BindPFlag("lower_bound", flags.Lookup("lower-bound")))
	must(v.BindPFlag("upper_bound", flags.Lookup("upper-bound")))
	must(v.BindPFlag("workers", flags.Lookup("workers")))
	must(v.BindPFlag("log_level", flags.Lookup("log-level")))

	cmd.AddCommand(newConfigCmd())

	return cmd
}

func run(cmd *cobra.Command, cfg Config) error {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger.SetLevel(level)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.WithFields(logrus.Fields{
		"lower_bound": cfg.LowerBound,
		"upper_bound": cfg.UpperBound,
		"workers":     cfg.Workers,
	}).Info("counting primes")

	start := time.Now()
	count, err := primes.CountParallel(ctx, cfg.LowerBound, cfg.UpperBound, cfg.Workers)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"count":   count,
		"elapsed": time.Since(start),
	}).Info("done")

	// The count itself is the program's only output on stdout.
	_, err = fmt.Fprintln(cmd.OutOrStdout(), count)
	return err
}

// newConfigCmd prints the default configuration as YAML, ready to be
// saved and passed back with --config.
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := yaml.Marshal(defaultConfig())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
