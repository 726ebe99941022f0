// Package sheettest builds in-memory xlsx workbooks for tests.
package sheettest

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

// Sheet describes one worksheet; Rows[0] lands in row 1. Nil values leave the cell unset.
type Sheet struct {
	Name string
	Rows [][]any
}

// Build returns the xlsx bytes of a workbook holding sheets in order.
func Build(t testing.TB, sheets ...Sheet) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.Name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			t.Fatalf("create sheet %q: %v", s.Name, err)
		}

		for r, row := range s.Rows {
			for c, v := range row {
				if v == nil {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					t.Fatalf("cell name: %v", err)
				}
				if err := f.SetCellValue(s.Name, cell, v); err != nil {
					t.Fatalf("set %s!%s: %v", s.Name, cell, err)
				}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

// TaskHeader is a data-entry header row using the first accepted spellings.
var TaskHeader = []any{
	"Site ID", "District", "Site Name", "Discipline", "Task Name",
	"Planned Start", "Planned Finish", "Planned Duration (Days)",
	"Actual Start", "Actual Finish", "Progress (%)", "Variance (Days)",
	"Delay Flag", "Last Updated", "Remarks",
}

// ComplianceSheet returns a compliance tab with one data row.
func ComplianceSheet(staff, cesmps, ohs any) Sheet {
	return Sheet{
		Name: "Compliance",
		Rows: [][]any{
			{"Staff RFB", "CESMPS Submitted", "OHS Measures"},
			{staff, cesmps, ohs},
		},
	}
}

// IPCSheet returns an IPC tab with the six statuses in B2:G2.
func IPCSheet(statuses ...any) Sheet {
	row := append([]any{"Status"}, statuses...)
	return Sheet{
		Name: "IPC",
		Rows: [][]any{
			{nil, "IPC 1", "IPC 2", "IPC 3", "IPC 4", "IPC 5", "IPC 6"},
			row,
		},
	}
}
