package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortkit/internal/linesort"
)

// keyFlags are shared by sort and search.
type keyFlags struct {
	numeric bool
	reverse bool
	field   int
	rng     string
}

func (k *keyFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolVarP(&k.numeric, "numeric", "n", false, "compare keys as numbers")
	f.BoolVarP(&k.reverse, "reverse", "r", false, "reverse the order (equal keys keep input order)")
	f.IntVarP(&k.field, "key-field", "k", 0, "1-based field to use as key (0: whole line)")
	f.StringVar(&k.rng, "range", "", "only consider lines [start:end) (0-based)")
}

func (k *keyFlags) options() (linesort.Options, error) {
	start, end, err := linesort.ParseRange(k.rng)
	if err != nil {
		return linesort.Options{}, err
	}
	if k.field < 0 {
		return linesort.Options{}, fmt.Errorf("--key-field must not be negative")
	}
	return linesort.Options{
		Numeric:   k.numeric,
		Reverse:   k.reverse,
		Field:     k.field,
		Separator: cfg.Sort.Separator,
		Start:     start,
		End:       end,
	}, nil
}

var (
	sortKeys   keyFlags
	sortCheck  bool
	sortOutput string
)

var sortCmd = &cobra.Command{
	Use:   "sort [file]",
	Short: "Sort lines stably",
	Long: `Sort the lines of file (or stdin) and write them to stdout.

Lines with equal keys keep their input order. Without --numeric or
--reverse, string keys are radix sorted.

Examples:
  sortkit sort names.txt
  sortkit sort -n -k 2 --separator , scores.csv.gz
  sortkit sort --range 10:20 data.txt
  sortkit sort --check data.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSort,
}

func init() {
	sortKeys.register(sortCmd)
	sortCmd.Flags().BoolVarP(&sortCheck, "check", "c", false, "only check whether input is sorted (exit 1 if not)")
	sortCmd.Flags().StringVarP(&sortOutput, "output", "o", "", "write output to file instead of stdout")
}

func runSort(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	}

	opts, err := sortKeys.options()
	if err != nil {
		return err
	}

	data, comp, err := readInput(cmd, path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	logger.Debug("input read",
		zap.String("path", path),
		zap.Int("lines", len(data)),
		zap.Stringer("compression", comp))

	if sortCheck {
		sorted, first, err := linesort.Check(data, opts)
		if err != nil {
			return err
		}
		if !sorted {
			logger.Info("input is not sorted", zap.Int("line", first+1))
			return &exitError{code: 1}
		}
		return nil
	}

	if pool := newPool(); pool != nil {
		defer pool.Close()
		opts.Pool = pool
	}

	start := time.Now()
	if err := linesort.Sort(data, opts); err != nil {
		return err
	}
	logger.Debug("sorted",
		zap.Int("lines", len(data)),
		zap.Bool("parallel", opts.Pool != nil),
		zap.Duration("elapsed", time.Since(start)))

	return writeOutput(cmd, sortOutput, data)
}
