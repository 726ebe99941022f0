package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
)

func ipcSheet(row int, startCol int, values ...models.Cell) *models.SheetData {
	cells := map[int]models.Cell{}
	for i, v := range values {
		if v.Present() {
			cells[startCol+i] = v
		}
	}
	return &models.SheetData{
		Name: "IPC",
		Rows: []models.CellRow{
			{R: 1, C: map[int]models.Cell{1: models.StringCell("Certificate")}},
			{R: row, C: cells},
		},
	}
}

func TestExtractIPCExample(t *testing.T) {
	sheet := ipcSheet(2, 2,
		models.StringCell("released"),
		models.StringCell("In Process"),
		models.StringCell(" submitted "),
		models.StringCell("NOT SUBMITTED"),
		models.Cell{},
		models.StringCell("released"),
	)

	got := ExtractIPC(sheet, models.IPCRange{Row: 2, Col: 2})
	want := []models.IPCRecord{
		{Certificate: "IPC 1", Status: models.IPCReleased},
		{Certificate: "IPC 2", Status: models.IPCInProcess},
		{Certificate: "IPC 3", Status: models.IPCSubmitted},
		{Certificate: "IPC 4", Status: models.IPCNotSubmitted},
		{Certificate: "IPC 5", Status: models.IPCUnknown},
		{Certificate: "IPC 6", Status: models.IPCReleased},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtractIPC mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractIPCIgnoresHeaders(t *testing.T) {
	// Values outside the configured row and columns are not read.
	sheet := ipcSheet(3, 1,
		models.StringCell("released"), models.StringCell("released"),
		models.StringCell("released"), models.StringCell("released"),
		models.StringCell("released"), models.StringCell("released"),
		models.StringCell("released"),
	)

	got := ExtractIPC(sheet, models.IPCRange{Row: 3, Col: 2})
	if len(got) != models.IPCCount {
		t.Fatalf("Expected %d records, got %d", models.IPCCount, len(got))
	}
	for _, r := range got {
		if r.Status != models.IPCReleased {
			t.Errorf("%s: expected Released, got %s", r.Certificate, r.Status)
		}
	}

	blank := ExtractIPC(sheet, models.IPCRange{Row: 9, Col: 2})
	if len(blank) != models.IPCCount {
		t.Fatalf("Expected %d records for a blank row, got %d", models.IPCCount, len(blank))
	}
	for _, r := range blank {
		if r.Status != models.IPCUnknown {
			t.Errorf("%s: expected Unknown, got %s", r.Certificate, r.Status)
		}
	}
}

func TestExtractIPCMissingSheet(t *testing.T) {
	if got := ExtractIPC(nil, models.IPCRange{Row: 2, Col: 2}); len(got) != 0 {
		t.Errorf("Expected no records for a missing sheet, got %v", got)
	}
}

func TestParseIPCStatus(t *testing.T) {
	tests := []struct {
		input    models.Cell
		expected models.IPCStatus
	}{
		{models.StringCell("Released"), models.IPCReleased},
		{models.StringCell("in process"), models.IPCInProcess},
		{models.StringCell("in-process"), models.IPCUnknown},
		{models.StringCell("Submitted"), models.IPCSubmitted},
		{models.StringCell("not submitted"), models.IPCNotSubmitted},
		{models.NumberCell(1), models.IPCUnknown},
		{models.Cell{}, models.IPCUnknown},
	}

	for _, tt := range tests {
		if got := ParseIPCStatus(tt.input); got != tt.expected {
			t.Errorf("ParseIPCStatus(%+v) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestParseIPCRange(t *testing.T) {
	tests := []struct {
		input    string
		expected models.IPCRange
		wantErr  bool
	}{
		{"B2:G2", models.IPCRange{Row: 2, Col: 2}, false},
		{"$C$10:$H$10", models.IPCRange{Row: 10, Col: 3}, false},
		{" A1:F1 ", models.IPCRange{Row: 1, Col: 1}, false},
		{"B2:G3", models.IPCRange{}, true},
		{"B2:F2", models.IPCRange{}, true},
		{"B2", models.IPCRange{}, true},
		{"B2:ZZZZ2", models.IPCRange{}, true},
		{"", models.IPCRange{}, true},
	}

	for _, tt := range tests {
		got, err := ParseIPCRange(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidRange) {
				t.Errorf("ParseIPCRange(%q): expected ErrInvalidRange, got %v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseIPCRange(%q): unexpected error %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseIPCRange(%q) = %+v, expected %+v", tt.input, got, tt.expected)
		}
	}
}
