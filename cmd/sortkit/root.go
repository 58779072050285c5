package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortkit/arrays/contrib/workerpool"
	"github.com/ajroetker/go-sortkit/internal/config"
	"github.com/ajroetker/go-sortkit/internal/logging"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

var (
	configFile string

	v      = viper.New()
	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "sortkit",
	Short: "Stable sorting and binary search for line data",
	Long: `sortkit sorts line-oriented input with a stable merge/radix engine.

Input may be plain text, gzip or zstd; compression is detected automatically.
Settings come from flags, SORTKIT_* environment variables and an optional
sortkit.yaml, in that order of precedence.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(v, configFile)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Log)
		if err != nil {
			return err
		}
		logger.Debug("configuration loaded", zap.String("file", v.ConfigFileUsed()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.SetVersionTemplate("sortkit version {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (default: ./sortkit.yaml or ~/.config/sortkit/sortkit.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "console", "log format: console or json")
	mustBind("log.level", pf.Lookup("log-level"))
	mustBind("log.format", pf.Lookup("log-format"))

	pf.Bool("parallel", false, "sort on a worker pool")
	pf.Int("workers", 0, "worker pool size (default: GOMAXPROCS)")
	pf.String("separator", "\t", "field separator for --key-field")
	mustBind("sort.parallel", pf.Lookup("parallel"))
	mustBind("sort.workers", pf.Lookup("workers"))
	mustBind("sort.separator", pf.Lookup("separator"))

	rootCmd.AddCommand(sortCmd, searchCmd, benchCmd)
}

// newPool returns a worker pool when parallel sorting is configured, or nil.
// The caller closes a non-nil pool.
func newPool() *workerpool.Pool {
	if !cfg.Sort.Parallel {
		return nil
	}
	pool := workerpool.New(cfg.Sort.Workers)
	logger.Debug("worker pool started", zap.Int("workers", pool.NumWorkers()))
	return pool
}

// mustBind binds a flag to a config key; a flag overrides the key only when
// it is set on the command line.
func mustBind(key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind %s: %v", key, err))
	}
}
