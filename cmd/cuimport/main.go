// Package main is the entry point for the cuimport CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cuimport/internal/backend/clickup"
	"cuimport/internal/cli"
	"cuimport/internal/commands"
	"cuimport/internal/config"
	"cuimport/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Dry-run swaps the real backend for the no-network one
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		if cfg.DryRun {
			return clickup.NewDryRun(), nil
		}
		return clickup.New(ctx, cfg)
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
