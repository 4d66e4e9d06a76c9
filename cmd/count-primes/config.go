package main

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the scan settings of the counter. The bounds describe
// the closed range [LowerBound, UpperBound]; the original fixed scan
// over the first hundred million integers is the default.
type Config struct {
	LowerBound uint32 `mapstructure:"lower_bound" yaml:"lower_bound"`
	UpperBound uint32 `mapstructure:"upper_bound" yaml:"upper_bound"`
	// Workers is the number of range chunks tested concurrently.
	// Zero means one per CPU.
	Workers  int    `mapstructure:"workers" yaml:"workers"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		LowerBound: 0,
		UpperBound: 99999999,
		Workers:    0,
		LogLevel:   "info",
	}
}

// loadConfig resolves the configuration from flags, environment
// variables (COUNT_PRIMES_*) and an optional YAML file, in that order
// of precedence.
func loadConfig(v *viper.Viper, cfgFile string) (Config, error) {
	def := defaultConfig()
	v.SetDefault("lower_bound", def.LowerBound)
	v.SetDefault("upper_bound", def.UpperBound)
	v.SetDefault("workers", def.Workers)
	v.SetDefault("log_level", def.LogLevel)

	v.SetEnvPrefix("COUNT_PRIMES")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Workers < 0 {
		return Config{}, fmt.Errorf("invalid workers %d: must be >= 0", cfg.Workers)
	}
	return cfg, nil
}
