// Package ledger records per-row outcomes for one import run.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Status marks a ledger entry as a success or failure.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
)

// Header is the column layout of the serialized ledger.
var Header = []string{"task_name", "status", "task_id", "task_url", "error"}

// Entry is one per-row outcome. TaskID and TaskURL are set for
// successes; Row and Err for failures.
type Entry struct {
	TaskName string
	Status   Status
	TaskID   string
	TaskURL  string
	Row      int
	Err      string
}

// Ledger is the append-only record of outcomes, in processing order.
type Ledger struct {
	entries []Entry
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// AddSuccess appends a success entry.
func (l *Ledger) AddSuccess(taskName, taskID, taskURL string) {
	l.entries = append(l.entries, Entry{
		TaskName: taskName,
		Status:   StatusSuccess,
		TaskID:   taskID,
		TaskURL:  taskURL,
	})
}

// AddFailure appends a failure entry for the given 1-indexed source row.
func (l *Ledger) AddFailure(taskName string, row int, errMsg string) {
	l.entries = append(l.entries, Entry{
		TaskName: taskName,
		Status:   StatusFailed,
		Row:      row,
		Err:      errMsg,
	})
}

// Entries returns a copy of all entries in processing order.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *Ledger) Len() int { return len(l.entries) }

// SuccessCount returns the number of success entries.
func (l *Ledger) SuccessCount() int { return l.count(StatusSuccess) }

// FailureCount returns the number of failure entries.
func (l *Ledger) FailureCount() int { return l.count(StatusFailed) }

func (l *Ledger) count(s Status) int {
	n := 0
	for _, e := range l.entries {
		if e.Status == s {
			n++
		}
	}
	return n
}

// WriteCSV serializes the ledger: header row, then all SUCCESS entries,
// then all FAILED entries. Fields not applicable to a variant are
// empty strings.
func (l *Ledger) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, status := range []Status{StatusSuccess, StatusFailed} {
		for _, e := range l.entries {
			if e.Status != status {
				continue
			}
			if err := cw.Write([]string{e.TaskName, string(e.Status), e.TaskID, e.TaskURL, e.Err}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile serializes the ledger to path.
func (l *Ledger) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := l.WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
