// Command sortkit sorts, checks and searches line-oriented data with the
// go-sortkit engine, and benchmarks the engine against the standard library.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		logger.Error("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "sortkit:", err)
		os.Exit(2)
	}
}

// exitError ends the process with a specific status and no message, e.g.
// "input not sorted" for sort --check.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }
