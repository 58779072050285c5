// Package config loads sortkit CLI settings from defaults, an optional YAML
// file, SORTKIT_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// SORTKIT_LOG_LEVEL for log.level.
const EnvPrefix = "SORTKIT"

// Config is the complete sortkit configuration.
type Config struct {
	Log   LogConfig   `mapstructure:"log" yaml:"log"`
	Sort  SortConfig  `mapstructure:"sort" yaml:"sort"`
	Bench BenchConfig `mapstructure:"bench" yaml:"bench"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"` // json or console
}

// SortConfig holds defaults for the sort and search commands.
type SortConfig struct {
	Parallel  bool   `mapstructure:"parallel" yaml:"parallel"`
	Workers   int    `mapstructure:"workers" yaml:"workers"`
	Separator string `mapstructure:"separator" yaml:"separator"`
}

// BenchConfig holds defaults for the bench command.
type BenchConfig struct {
	Sizes    []int    `mapstructure:"sizes" yaml:"sizes"`
	Patterns []string `mapstructure:"patterns" yaml:"patterns"`
	Rounds   int      `mapstructure:"rounds" yaml:"rounds"`
	Seed     int64    `mapstructure:"seed" yaml:"seed"`
	Format   string   `mapstructure:"format" yaml:"format"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Sort: SortConfig{
			Parallel:  false,
			Workers:   0,
			Separator: "\t",
		},
		Bench: BenchConfig{
			Sizes:    []int{1000, 10000, 100000},
			Patterns: []string{"random", "sorted", "reversed", "sawtooth", "fewunique", "strings"},
			Rounds:   5,
			Seed:     1,
			Format:   "text",
		},
	}
}

// setDefaults registers every key with viper so that AutomaticEnv can find
// env overrides for keys that are absent from the config file.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("sort.parallel", d.Sort.Parallel)
	v.SetDefault("sort.workers", d.Sort.Workers)
	v.SetDefault("sort.separator", d.Sort.Separator)
	v.SetDefault("bench.sizes", d.Bench.Sizes)
	v.SetDefault("bench.patterns", d.Bench.Patterns)
	v.SetDefault("bench.rounds", d.Bench.Rounds)
	v.SetDefault("bench.seed", d.Bench.Seed)
	v.SetDefault("bench.format", d.Bench.Format)
}

// Load reads configuration into v and returns the decoded result. When
// configFile is empty, sortkit.yaml is looked up in the working directory
// and in $HOME/.config/sortkit; a missing file is not an error. Flags bound
// to v before the call take precedence over everything else.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("sortkit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "sortkit"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var (
	logFormats   = []string{"json", "console"}
	benchFormats = []string{"text", "json", "yaml"}
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if !slices.Contains(logFormats, c.Log.Format) {
		return &ConfigError{Field: "log.format", Message: fmt.Sprintf("must be one of %v", logFormats)}
	}
	if c.Sort.Workers < 0 {
		return &ConfigError{Field: "sort.workers", Message: "must not be negative"}
	}
	if c.Sort.Separator == "" {
		return &ConfigError{Field: "sort.separator", Message: "must not be empty"}
	}
	if len(c.Bench.Sizes) == 0 {
		return &ConfigError{Field: "bench.sizes", Message: "must list at least one size"}
	}
	for _, n := range c.Bench.Sizes {
		if n < 0 {
			return &ConfigError{Field: "bench.sizes", Message: fmt.Sprintf("negative size %d", n)}
		}
	}
	if c.Bench.Rounds <= 0 {
		return &ConfigError{Field: "bench.rounds", Message: "must be positive"}
	}
	if !slices.Contains(benchFormats, c.Bench.Format) {
		return &ConfigError{Field: "bench.format", Message: fmt.Sprintf("must be one of %v", benchFormats)}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
