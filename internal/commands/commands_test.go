package commands_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cuimport/internal/backend/clickup"
	"cuimport/internal/commands"
	"cuimport/internal/config"
	"cuimport/internal/exitcode"
	"cuimport/internal/service"
	"cuimport/internal/testutil"
)

// runCommand is a helper to run a command with the given service.
func runCommand(t *testing.T, cmd commands.Command, svc service.Service, cfg *config.Config, args []string) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	code = cmd.Run(context.Background(), cfg, svc, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

// writeCSV writes a temp CSV file and returns its path.
func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func importConfig() *config.Config {
	return &config.Config{APIToken: "tok", ListID: "901", Quiet: true}
}

func TestImportCommand_Success(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddList("901", "Sprint Backlog")

	cmd := &commands.ImportCmd{}
	cmd.SetFile(writeCSV(t, "name,priority\nFirst,urgent\nSecond,low\n"))

	cfg := importConfig()
	cfg.Quiet = false
	stdout, _, code := runCommand(t, cmd, svc, cfg, nil)

	if code != exitcode.Success {
		t.Fatalf("exit code = %d, want %d", code, exitcode.Success)
	}
	if !strings.Contains(stdout, "Import completed. Successfully created 2 tasks, 0 failed.") {
		t.Errorf("stdout = %q, missing summary", stdout)
	}
	if len(svc.CreateCalls()) != 2 {
		t.Errorf("CreateTask called %d times, want 2", len(svc.CreateCalls()))
	}
}

func TestImportCommand_DryRun(t *testing.T) {
	cmd := &commands.ImportCmd{}
	cmd.SetFile(writeCSV(t, "name,description\nOne,x\n,skipped\nTwo,y\n"))

	cfg := importConfig()
	cfg.DryRun = true
	cfg.Quiet = false
	stdout, _, code := runCommand(t, cmd, clickup.NewDryRun(), cfg, nil)

	if code != exitcode.Success {
		t.Fatalf("exit code = %d, want %d", code, exitcode.Success)
	}
	// Two valid rows, one silently skipped; zero network calls by construction
	if !strings.Contains(stdout, "Dry run completed. Would have created 2 tasks, 0 would have failed.") {
		t.Errorf("stdout = %q, missing dry-run summary", stdout)
	}
}

func TestImportCommand_FileFlagRequired(t *testing.T) {
	cmd := &commands.ImportCmd{}
	_, stderr, code := runCommand(t, cmd, testutil.NewFakeService(), importConfig(), nil)

	if code != exitcode.UserError {
		t.Errorf("exit code = %d, want %d", code, exitcode.UserError)
	}
	if stderr != "error: -file required\n" {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestImportCommand_AuthErrorIsFatal(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.CurrentUserErr = &service.AuthError{Message: "invalid API token"}

	cmd := &commands.ImportCmd{}
	cmd.SetFile(writeCSV(t, "name\nOne\n"))

	_, stderr, code := runCommand(t, cmd, svc, importConfig(), nil)

	if code != exitcode.AuthError {
		t.Errorf("exit code = %d, want %d", code, exitcode.AuthError)
	}
	if !strings.Contains(stderr, "invalid API token") {
		t.Errorf("stderr = %q", stderr)
	}
	if len(svc.CreateCalls()) != 0 {
		t.Error("no task should be created after failed verification")
	}
}

func TestImportCommand_ListNotFoundIsFatal(t *testing.T) {
	svc := testutil.NewFakeService() // no lists registered

	cmd := &commands.ImportCmd{}
	cmd.SetFile(writeCSV(t, "name\nOne\n"))

	_, stderr, code := runCommand(t, cmd, svc, importConfig(), nil)

	if code != exitcode.BackendError {
		t.Errorf("exit code = %d, want %d", code, exitcode.BackendError)
	}
	if !strings.Contains(stderr, "list 901 not found") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestImportCommand_MissingNameColumn(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddList("901", "Sprint Backlog")

	cmd := &commands.ImportCmd{}
	cmd.SetFile(writeCSV(t, "title\nOops\n"))

	_, stderr, code := runCommand(t, cmd, svc, importConfig(), nil)

	if code != exitcode.UserError {
		t.Errorf("exit code = %d, want %d", code, exitcode.UserError)
	}
	if !strings.Contains(stderr, "must contain") {
		t.Errorf("stderr = %q", stderr)
	}
	if len(svc.CreateCalls()) != 0 {
		t.Error("no task should be created when the header is invalid")
	}
}

func TestImportCommand_WritesLedgerFile(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddList("901", "Sprint Backlog")
	svc.FailTaskNames["Broken"] = &service.APIError{StatusCode: 500, Message: "boom"}

	outPath := filepath.Join(t.TempDir(), "results.csv")
	cmd := &commands.ImportCmd{}
	cmd.SetFile(writeCSV(t, "name\nGood\nBroken\n"))
	cmd.SetOutput(outPath)

	_, _, code := runCommand(t, cmd, svc, importConfig(), nil)
	if code != exitcode.Success {
		t.Fatalf("exit code = %d, want %d (per-row failures keep exit 0)", code, exitcode.Success)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("open results: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read results: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("got %d rows including header, want 3", len(records))
	}
	if records[1][0] != "Good" || records[1][1] != "SUCCESS" {
		t.Errorf("success row = %v", records[1])
	}
	if records[2][0] != "Broken" || records[2][1] != "FAILED" || records[2][4] == "" {
		t.Errorf("failure row = %v", records[2])
	}
}

func TestImportCommand_LedgerWriteFailureIsNonFatal(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddList("901", "Sprint Backlog")

	cmd := &commands.ImportCmd{}
	cmd.SetFile(writeCSV(t, "name\nOne\n"))
	cmd.SetOutput("/nonexistent-dir/results.csv")

	_, _, code := runCommand(t, cmd, svc, importConfig(), nil)
	if code != exitcode.Success {
		t.Errorf("exit code = %d, want %d", code, exitcode.Success)
	}
}

func TestVerifyCommand_Success(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddList("901", "Sprint Backlog")

	cmd := &commands.VerifyCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, importConfig(), nil)

	if code != exitcode.Success {
		t.Fatalf("exit code = %d, want %d", code, exitcode.Success)
	}
	if stderr != "" {
		t.Errorf("stderr = %q", stderr)
	}
	expected := "Token OK (user: fake-user)\nList OK (name: Sprint Backlog)\n"
	if stdout != expected {
		t.Errorf("stdout = %q, want %q", stdout, expected)
	}
}

func TestVerifyCommand_BadToken(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.CurrentUserErr = &service.AuthError{Message: "invalid API token"}

	cmd := &commands.VerifyCmd{}
	_, stderr, code := runCommand(t, cmd, svc, importConfig(), nil)

	if code != exitcode.AuthError {
		t.Errorf("exit code = %d, want %d", code, exitcode.AuthError)
	}
	if !strings.Contains(stderr, "invalid API token") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}
	stdout, stderr, code := runCommand(t, cmd, nil, &config.Config{}, nil)

	if code != exitcode.Success {
		t.Errorf("exit code = %d, want %d", code, exitcode.Success)
	}
	if stderr != "" {
		t.Errorf("stderr = %q", stderr)
	}
	if stdout != "cuimport "+commands.Version+"\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}
	stdout, stderr, code := runCommand(t, cmd, nil, &config.Config{}, nil)

	if code != exitcode.Success {
		t.Errorf("exit code = %d, want %d", code, exitcode.Success)
	}
	if stderr != "" {
		t.Errorf("stderr = %q", stderr)
	}
	testutil.Golden(t, "help", []byte(stdout))
}
