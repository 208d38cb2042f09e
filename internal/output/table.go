package output

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"cuimport/internal/ledger"
)

// ResultsTable renders the ledger as a table, one row per entry in
// processing order. styled selects the rounded box style for
// terminals; plain output uses the ASCII default.
func ResultsTable(w io.Writer, led *ledger.Ledger, styled bool) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	if styled {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	tw.AppendHeader(table.Row{"row", "task", "status", "id", "detail"})
	for _, e := range led.Entries() {
		row := ""
		if e.Row > 0 {
			row = strconv.Itoa(e.Row)
		}
		detail := e.TaskURL
		if e.Status == ledger.StatusFailed {
			detail = e.Err
		}
		tw.AppendRow(table.Row{row, e.TaskName, string(e.Status), e.TaskID, detail})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	tw.Render()
}
