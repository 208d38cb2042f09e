package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"cuimport/internal/config"
	"cuimport/internal/exitcode"
	"cuimport/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string                { return "help" }
func (c *HelpCmd) Aliases() []string           { return nil }
func (c *HelpCmd) Synopsis() string            { return "Print usage" }
func (c *HelpCmd) Usage() string               { return "cuimport help" }
func (c *HelpCmd) NeedsService() bool          { return false }
func (c *HelpCmd) RegisterFlags(*flag.FlagSet) {}
func (c *HelpCmd) ApplyConfig(*config.Config)  {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  cuimport import [common flags] -file <tasks.csv> [-list <list-id>] [-token <api-token>] [-dry-run] [-output <results.csv>]
  cuimport verify [common flags] [-list <list-id>] [-token <api-token>]
  cuimport help
  cuimport version

The API token and list ID may also come from the CLICKUP_API_TOKEN and
CLICKUP_LIST_ID environment variables, or from config.toml in the
config directory (keys: api_token, list_id, base_url).

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --verbose        Print debug logs to stderr
`
