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
	Register(&VerifyCmd{})
}

// VerifyCmd implements the verify command: pre-flight credential and
// list checks without importing anything.
type VerifyCmd struct {
	listID string
	token  string
}

func (c *VerifyCmd) Name() string      { return "verify" }
func (c *VerifyCmd) Aliases() []string { return nil }
func (c *VerifyCmd) Synopsis() string  { return "Verify API token and list ID" }
func (c *VerifyCmd) Usage() string {
	return "cuimport verify [-list <list-id>] [-token <api-token>]"
}
func (c *VerifyCmd) NeedsService() bool { return true }

func (c *VerifyCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listID, "list", "", "")
	fs.StringVar(&c.listID, "l", "", "")
	fs.StringVar(&c.token, "token", "", "")
}

func (c *VerifyCmd) ApplyConfig(cfg *config.Config) {
	if c.token != "" {
		cfg.APIToken = c.token
	}
	if c.listID != "" {
		cfg.ListID = c.listID
	}
}

func (c *VerifyCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	user, err := svc.CurrentUser(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", verifyMessage(err, cfg.ListID))
		return exitFor(err)
	}
	list, err := svc.GetList(ctx, cfg.ListID)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", verifyMessage(err, cfg.ListID))
		return exitFor(err)
	}

	fmt.Fprintf(out, "Token OK (user: %s)\n", user.Username)
	fmt.Fprintf(out, "List OK (name: %s)\n", list.Name)
	return exitcode.Success
}
