package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortkit/arrays"
	"github.com/ajroetker/go-sortkit/internal/linesort"
)

var searchKeys keyFlags

var searchCmd = &cobra.Command{
	Use:   "search <value> [file]",
	Short: "Binary search sorted lines",
	Long: `Binary search the lines of file (or stdin), which must already be sorted
with the same key options, for a line whose key equals value.

Prints the 0-based index of a match, or -(insertion point)-1 when there is
none; the exit status is 1 in that case.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSearch,
}

func init() {
	searchKeys.register(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 2 {
		path = args[1]
	}

	opts, err := searchKeys.options()
	if err != nil {
		return err
	}
	data, _, err := readInput(cmd, path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	r, err := linesort.Search(data, args[0], opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), r)

	idx, found := arrays.InsertionPoint(r)
	logger.Debug("search done", zap.String("value", args[0]), zap.Int("index", idx), zap.Bool("found", found))
	if !found {
		return &exitError{code: 1}
	}
	return nil
}
