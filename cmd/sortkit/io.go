package main

import (
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sortkit/internal/lines"
)

// readInput reads the lines of path, or of the command's stdin when path is
// empty or "-".
func readInput(cmd *cobra.Command, path string) ([]string, lines.Compression, error) {
	if path != "" && path != "-" {
		return lines.ReadFile(path)
	}
	rc, c, err := lines.NewReader(cmd.InOrStdin())
	if err != nil {
		return nil, lines.None, err
	}
	defer rc.Close()

	out, err := lines.ReadAll(rc)
	return out, c, err
}

// writeOutput writes data to path, or to the command's stdout when path is
// empty or "-".
func writeOutput(cmd *cobra.Command, path string, data []string) error {
	if path != "" && path != "-" {
		return lines.WriteFile(path, data)
	}
	return lines.Write(cmd.OutOrStdout(), data)
}
