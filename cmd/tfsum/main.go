package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tfsum/internal/cli"
	apperrors "tfsum/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.ExecuteContext(ctx); err != nil {
		if ctx.Err() == context.Canceled {
			fmt.Fprintln(os.Stderr, "\nOperation cancelled by user")
			os.Exit(130)
		}
		apperrors.ExitWithError(err, 1)
	}
}
