package ledger

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"
)

func TestLedger_Counts(t *testing.T) {
	l := New()
	l.AddSuccess("a", "id-a", "url-a")
	l.AddFailure("b", 2, "boom")
	l.AddSuccess("c", "id-c", "url-c")

	if l.Len() != 3 {
		t.Errorf("Len = %d, want 3", l.Len())
	}
	if l.SuccessCount() != 2 {
		t.Errorf("SuccessCount = %d, want 2", l.SuccessCount())
	}
	if l.FailureCount() != 1 {
		t.Errorf("FailureCount = %d, want 1", l.FailureCount())
	}
}

func TestLedger_WriteCSV(t *testing.T) {
	l := New()
	l.AddFailure("broken", 1, "API request failed")
	l.AddSuccess("ok task", "abc123", "https://app.clickup.com/t/abc123")

	var buf bytes.Buffer
	if err := l.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	want := [][]string{
		{"task_name", "status", "task_id", "task_url", "error"},
		// SUCCESS rows come before FAILED rows regardless of insertion order
		{"ok task", "SUCCESS", "abc123", "https://app.clickup.com/t/abc123", ""},
		{"broken", "FAILED", "", "", "API request failed"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("ledger CSV = %v, want %v", records, want)
	}
}

func TestLedger_RoundTripCounts(t *testing.T) {
	l := New()
	for i := 0; i < 3; i++ {
		l.AddSuccess("s", "id", "url")
	}
	for i := 0; i < 2; i++ {
		l.AddFailure("f", i+4, "err")
	}

	var buf bytes.Buffer
	if err := l.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	var success, failed int
	for _, rec := range records[1:] {
		switch rec[1] {
		case "SUCCESS":
			success++
		case "FAILED":
			failed++
		default:
			t.Errorf("unexpected status %q", rec[1])
		}
	}
	if success != 3 || failed != 2 {
		t.Errorf("got %d SUCCESS, %d FAILED; want 3 and 2", success, failed)
	}
	if len(records) != 6 {
		t.Errorf("got %d rows including header, want 6", len(records))
	}
}

func TestLedger_WriteFile(t *testing.T) {
	l := New()
	l.AddSuccess("a", "id-a", "url-a")

	path := t.TempDir() + "/results.csv"
	if err := l.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := l.WriteFile("/nonexistent-dir/results.csv"); err == nil {
		t.Error("expected error writing to missing directory")
	}
}
