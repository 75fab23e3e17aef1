package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kedare/logsy"
	"github.com/kedare/logsy/internal/cli"
)

func main() {
	// Send pterm diagnostics to stderr so stdout carries only log output.
	cli.InitPterm()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.ExecuteContext(ctx)

	// Flush table footers of any session that outlived its scope.
	logsy.Shutdown()

	if err != nil {
		os.Exit(1)
	}
}
