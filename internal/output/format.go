// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"cuimport/internal/ledger"
)

// Summary prints the aggregate outcome line for one run.
func Summary(w io.Writer, dryRun bool, led *ledger.Ledger) {
	if dryRun {
		fmt.Fprintf(w, "Dry run completed. Would have created %d tasks, %d would have failed.\n",
			led.SuccessCount(), led.FailureCount())
		return
	}
	fmt.Fprintf(w, "Import completed. Successfully created %d tasks, %d failed.\n",
		led.SuccessCount(), led.FailureCount())
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
