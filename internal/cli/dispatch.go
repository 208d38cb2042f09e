// Package cli handles command-line parsing and dispatch.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"cuimport/internal/commands"
	"cuimport/internal/config"
	"cuimport/internal/exitcode"
	"cuimport/internal/service"
)

// ServiceFactory creates a Service from config.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

// NewDispatcher creates a new dispatcher with the given registry and service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> print usage
	if len(args) == 0 {
		return d.dispatchName(ctx, "help", nil, out, errOut)
	}

	cmdName := args[0]

	// Flags require a command first
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatchName(ctx, cmdName, args[1:], out, errOut)
}

func (d *Dispatcher) dispatchName(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var quiet bool
	var verbose bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&verbose, "verbose", false, "")
	fs.BoolVar(&verbose, "v", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return flagError(err, errOut)
	}

	// A positional starting with - means a flag the FlagSet didn't know
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	// Config: file and env first, then command flags on top
	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Verbose = verbose
	cmd.ApplyConfig(cfg)

	var svc service.Service
	if cmd.NeedsService() {
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(errOut, "error: configuration: %s\n", err)
			return exitcode.UserError
		}
		svc, err = d.factory(ctx, cfg)
		if err != nil {
			var cfgErr *config.Error
			if errors.As(err, &cfgErr) {
				fmt.Fprintf(errOut, "error: configuration: %s\n", err)
				return exitcode.UserError
			}
			fmt.Fprintf(errOut, "error: backend error: %s\n", err)
			return exitcode.BackendError
		}
	}

	return cmd.Run(ctx, cfg, svc, positionalArgs, out, errOut)
}

// flagError turns flag-package parse errors into consistent messages.
func flagError(err error, errOut io.Writer) int {
	errStr := err.Error()

	if rest, ok := strings.CutPrefix(errStr, "flag needs an argument: "); ok {
		fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", rest)
		return exitcode.UserError
	}
	if rest, ok := strings.CutPrefix(errStr, "flag provided but not defined: "); ok {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", rest)
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "error: %s\n", errStr)
	return exitcode.UserError
}
