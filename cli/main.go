package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum-optimism/predeploy-docs/internal/cli"
	"github.com/ethereum-optimism/predeploy-docs/internal/cli/render"
	"github.com/ethereum-optimism/predeploy-docs/internal/config"
)

// Set by goreleaser / -ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)

	// Cancelling kills running subprocesses; the repository is restored before Execute returns
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, render.FormatError(err.Error()))
		stop()
		os.Exit(1)
	}
}
