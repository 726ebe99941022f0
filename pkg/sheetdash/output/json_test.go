package output

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
)

func TestToJSON(t *testing.T) {
	progress := 45.0
	start := models.NewDate(2024, time.February, 1)
	snap := models.EmptySnapshot("snap-1", time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC))
	snap.Tasks = append(snap.Tasks, models.TaskRecord{
		PackageID:    "PKG-01",
		SiteID:       "S-1",
		PlannedStart: &start,
		ProgressPct:  &progress,
		Remarks:      "<ok> & done",
	})
	snap.ComplianceByPackage["PKG-01"] = models.UnknownCompliance()

	data, err := ToJSON(snap, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	s := string(data)

	for _, want := range []string{
		`"id":"snap-1"`,
		`"plannedStart":"2024-02-01"`,
		`"progressPct":45`,
		`"remarks":"<ok> & done"`,
		`"complianceByPackage":{"PKG-01":{"staffRfb":"Unknown"`,
		`"ipc":[]`,
		`"fetchedAt":"2024-03-01T12:00:00Z"`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("Expected %s in %s", want, s)
		}
	}
	if strings.Contains(s, "actualStart") {
		t.Errorf("Expected absent dates to be omitted: %s", s)
	}
	if strings.HasSuffix(s, "\n") {
		t.Error("Expected no trailing newline")
	}

	var back map[string]any
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
}

func TestWorkbookToJSONPretty(t *testing.T) {
	wb := &models.WorkbookData{
		BookName: "PKG-01",
		Sheets: []models.SheetData{{
			Name: "Data_Entry",
			Rows: []models.CellRow{{R: 1, C: map[int]models.Cell{1: models.StringCell("Site ID"), 2: models.NumberCell(3)}}},
		}},
	}

	data, err := WorkbookToJSON(wb, true)
	if err != nil {
		t.Fatalf("WorkbookToJSON failed: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, "\n  ") {
		t.Errorf("Expected indented output, got %s", s)
	}
	if !strings.Contains(s, `"1": "Site ID"`) || !strings.Contains(s, `"2": 3`) {
		t.Errorf("Expected typed cells keyed by column, got %s", s)
	}

	sheetData, err := SheetToJSON(&wb.Sheets[0], false)
	if err != nil {
		t.Fatalf("SheetToJSON failed: %v", err)
	}
	if !strings.HasPrefix(string(sheetData), `{"name":"Data_Entry"`) {
		t.Errorf("unexpected sheet JSON %s", sheetData)
	}
}
