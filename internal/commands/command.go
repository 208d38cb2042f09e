// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"cuimport/internal/config"
	"cuimport/internal/service"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsService returns true if the command requires a backend
	// service. Commands like help and version return false.
	NeedsService() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// ApplyConfig copies parsed flag values that are configuration
	// (token, list, dry-run) into cfg. Called after flag parsing and
	// before the service is constructed.
	ApplyConfig(cfg *config.Config)

	// Run executes the command.
	// cfg is always provided; svc is nil if NeedsService() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int
}
