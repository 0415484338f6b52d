// Package main provides the twsort CLI for sorting utility classes.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/multierr"

	"github.com/yacobolo/twsort/internal/runner"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// A failed check has already been reported.
		if !isOnlyCheckFailure(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func isOnlyCheckFailure(err error) bool {
	return errors.Is(err, runner.ErrCheckFailed) && len(multierr.Errors(err)) == 1
}
