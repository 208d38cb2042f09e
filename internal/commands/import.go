package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"cuimport/internal/config"
	"cuimport/internal/exitcode"
	"cuimport/internal/importer"
	"cuimport/internal/logging"
	"cuimport/internal/output"
	"cuimport/internal/service"
)

func init() {
	Register(&ImportCmd{})
}

// ImportCmd implements the import command: CSV in, tasks out.
type ImportCmd struct {
	file    string
	listID  string
	token   string
	dryRun  bool
	outPath string
}

// SetFile sets the CSV path (for testing).
func (c *ImportCmd) SetFile(path string) { c.file = path }

// SetOutput sets the ledger output path (for testing).
func (c *ImportCmd) SetOutput(path string) { c.outPath = path }

func (c *ImportCmd) Name() string      { return "import" }
func (c *ImportCmd) Aliases() []string { return nil }
func (c *ImportCmd) Synopsis() string  { return "Import tasks from a CSV file" }
func (c *ImportCmd) Usage() string {
	return "cuimport import -file <tasks.csv> [-list <list-id>] [-token <api-token>] [-dry-run] [-output <results.csv>]"
}
func (c *ImportCmd) NeedsService() bool { return true }

func (c *ImportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.file, "file", "", "")
	fs.StringVar(&c.file, "f", "", "")
	fs.StringVar(&c.listID, "list", "", "")
	fs.StringVar(&c.listID, "l", "", "")
	fs.StringVar(&c.token, "token", "", "")
	fs.BoolVar(&c.dryRun, "dry-run", false, "")
	fs.StringVar(&c.outPath, "output", "", "")
	fs.StringVar(&c.outPath, "o", "", "")
}

func (c *ImportCmd) ApplyConfig(cfg *config.Config) {
	if c.token != "" {
		cfg.APIToken = c.token
	}
	if c.listID != "" {
		cfg.ListID = c.listID
	}
	if c.dryRun {
		cfg.DryRun = true
	}
}

func (c *ImportCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if c.file == "" {
		fmt.Fprintln(errOut, "error: -file required")
		return exitcode.UserError
	}

	log := logging.New(errOut, cfg.Verbose, cfg.Quiet)
	runID := uuid.NewString()
	log.Debug("starting import", "run_id", runID, "file", c.file, "list", cfg.ListID, "dry_run", cfg.DryRun)

	// Pre-flight verification is skipped entirely in dry-run mode.
	if !cfg.DryRun {
		list, code := verifyAccess(ctx, svc, cfg.ListID, errOut)
		if code != exitcode.Success {
			return code
		}
		log.Info("API token and list ID verified", "list_name", list.Name)
	}

	if cfg.DryRun {
		log.Info("starting DRY RUN import", "file", c.file, "list", cfg.ListID)
	} else {
		log.Info("starting import", "file", c.file, "list", cfg.ListID)
	}

	imp := importer.New(svc, cfg.ListID, log)
	led, err := imp.RunFile(ctx, c.file)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitFor(err)
	}

	// A ledger-write failure is logged but does not change the outcome.
	if c.outPath != "" {
		if err := led.WriteFile(c.outPath); err != nil {
			log.Error("failed to write results file", "path", c.outPath, "error", err)
		} else {
			log.Info("results written", "path", c.outPath)
		}
	}

	if !cfg.Quiet {
		if led.Len() > 0 {
			output.ResultsTable(out, led, styled(out))
		}
		output.Summary(out, cfg.DryRun, led)
	}
	return exitcode.Success
}

// verifyAccess performs the pre-flight identity and list lookups.
// On failure it prints the error and returns the exit code.
func verifyAccess(ctx context.Context, svc service.Service, listID string, errOut io.Writer) (service.TaskList, int) {
	if _, err := svc.CurrentUser(ctx); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", verifyMessage(err, listID))
		return service.TaskList{}, exitFor(err)
	}
	list, err := svc.GetList(ctx, listID)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", verifyMessage(err, listID))
		return service.TaskList{}, exitFor(err)
	}
	return list, exitcode.Success
}

// verifyMessage maps verification failures to actionable messages.
func verifyMessage(err error, listID string) string {
	var authErr *service.AuthError
	var notFound *service.NotFoundError
	switch {
	case errors.As(err, &authErr):
		return "invalid API token, check your token and try again"
	case errors.As(err, &notFound):
		return fmt.Sprintf("list %s not found, check your list ID and try again", listID)
	default:
		return err.Error()
	}
}

// exitFor maps the error taxonomy to exit codes.
func exitFor(err error) int {
	var authErr *service.AuthError
	var notFound *service.NotFoundError
	var apiErr *service.APIError
	var cfgErr *config.Error
	var csvErr *importer.CSVError
	switch {
	case errors.As(err, &authErr):
		return exitcode.AuthError
	case errors.As(err, &cfgErr), errors.As(err, &csvErr):
		return exitcode.UserError
	case errors.As(err, &notFound), errors.As(err, &apiErr):
		return exitcode.BackendError
	default:
		return exitcode.BackendError
	}
}

// styled reports whether table output should use the terminal style.
func styled(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && output.IsTerminal(f)
}
