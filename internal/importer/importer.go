// Package importer drives one import run: it reads the CSV, maps each
// row to a task payload, creates tasks through the service, and
// accumulates the results ledger.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"cuimport/internal/ledger"
	"cuimport/internal/mapper"
	"cuimport/internal/service"
)

// RequiredColumn must be present in the CSV header.
const RequiredColumn = "name"

// CSVError is a fatal input-file problem: unreadable file, malformed
// CSV, or a header missing the required column.
type CSVError struct {
	Message string
	Err     error
}

func (e *CSVError) Error() string { return e.Message }

func (e *CSVError) Unwrap() error { return e.Err }

// Importer processes one CSV file sequentially against a list.
type Importer struct {
	svc    service.Service
	listID string
	log    *slog.Logger
}

// New creates an importer targeting listID.
func New(svc service.Service, listID string, log *slog.Logger) *Importer {
	return &Importer{svc: svc, listID: listID, log: log}
}

// RunFile opens path and runs the import.
func (imp *Importer) RunFile(ctx context.Context, path string) (*ledger.Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &CSVError{Message: fmt.Sprintf("cannot open CSV file %s: %v", path, err), Err: err}
	}
	defer f.Close()
	return imp.Run(ctx, f)
}

// Run processes all rows from r in order, 1-indexed. Rows without a
// task name are skipped and produce no ledger entry; every other row
// produces exactly one entry. Per-row creation failures are recorded
// and never abort the batch.
func (imp *Importer) Run(ctx context.Context, r io.Reader) (*ledger.Ledger, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, &CSVError{Message: fmt.Sprintf("cannot read CSV header: %v", err), Err: err}
	}
	if !slices.Contains(header, RequiredColumn) {
		return nil, &CSVError{Message: fmt.Sprintf("CSV must contain a %q column for task names", RequiredColumn)}
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &CSVError{Message: fmt.Sprintf("cannot read CSV rows: %v", err), Err: err}
	}
	total := len(records)
	imp.log.Info("found tasks in CSV file", "count", total)

	led := ledger.New()
	for i, record := range records {
		rowNum := i + 1
		row := rowMap(header, record)

		payload, warnings := mapper.Map(header, row)
		for _, w := range warnings {
			imp.log.Warn(w, "row", rowNum)
		}
		if payload == nil {
			imp.log.Warn("skipping row, no task name provided", "row", rowNum)
			continue
		}

		imp.log.Info("creating task", "row", rowNum, "total", total, "name", payload.Name)
		created, err := imp.svc.CreateTask(ctx, imp.listID, *payload)
		if err != nil {
			imp.log.Error("failed to create task", "row", rowNum, "name", payload.Name, "error", err)
			led.AddFailure(payload.Name, rowNum, err.Error())
			continue
		}
		imp.log.Debug("created task", "id", created.ID, "url", created.URL)
		led.AddSuccess(payload.Name, created.ID, created.URL)
	}

	return led, nil
}

// rowMap zips one record with the header. Short records leave trailing
// columns absent; extra fields beyond the header are ignored.
func rowMap(header, record []string) map[string]string {
	row := make(map[string]string, len(header))
	for i, col := range header {
		if i < len(record) {
			row[col] = record[i]
		}
	}
	return row
}
