package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortkit/internal/bench"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the engine against the standard library",
	Long: `Time the sortkit engine (and the parallel front end with --parallel)
against slices.SortStableFunc on generated inputs, and print a report.`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	f := benchCmd.Flags()
	f.IntSlice("sizes", nil, "input sizes (default from config)")
	f.StringSlice("patterns", nil, "input patterns: random, sorted, reversed, sawtooth, fewunique, strings")
	f.Int("rounds", 0, "timed rounds per measurement")
	f.Int64("seed", 0, "random seed")
	f.String("format", "", "report format: text, json or yaml")
	mustBind("bench.sizes", f.Lookup("sizes"))
	mustBind("bench.patterns", f.Lookup("patterns"))
	mustBind("bench.rounds", f.Lookup("rounds"))
	mustBind("bench.seed", f.Lookup("seed"))
	mustBind("bench.format", f.Lookup("format"))
}

func runBench(cmd *cobra.Command, args []string) error {
	patterns := make([]bench.Pattern, 0, len(cfg.Bench.Patterns))
	for _, s := range cfg.Bench.Patterns {
		p, err := bench.ParsePattern(s)
		if err != nil {
			return err
		}
		patterns = append(patterns, p)
	}

	opts := bench.Options{
		Sizes:    cfg.Bench.Sizes,
		Patterns: patterns,
		Rounds:   cfg.Bench.Rounds,
		Seed:     cfg.Bench.Seed,
	}
	if pool := newPool(); pool != nil {
		defer pool.Close()
		opts.Pool = pool
	}

	logger.Info("benchmark started",
		zap.Ints("sizes", opts.Sizes),
		zap.Int("patterns", len(patterns)),
		zap.Int("rounds", opts.Rounds))

	rep, err := bench.Run(cmd.Context(), opts, logger)
	if err != nil {
		return err
	}
	return rep.Write(cmd.OutOrStdout(), cfg.Bench.Format)
}
