package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
)

func complianceSheet(header []string, values ...models.Cell) *models.SheetData {
	headerRow := models.CellRow{R: 1, C: map[int]models.Cell{}}
	for i, h := range header {
		headerRow.C[i+1] = models.StringCell(h)
	}
	dataRow := models.CellRow{R: 2, C: map[int]models.Cell{}}
	for i, v := range values {
		if v.Present() {
			dataRow.C[i+1] = v
		}
	}
	return &models.SheetData{Name: "Compliance", Rows: []models.CellRow{headerRow, dataRow}}
}

func TestExtractComplianceExample(t *testing.T) {
	sheet := complianceSheet(
		[]string{"Staff RFB", "CESMPS Submitted", "OHS Measures"},
		models.StringCell("Yes"), models.StringCell("no"), models.Cell{},
	)

	got := ExtractCompliance(sheet, 0, DefaultComplianceHeaders())
	want := models.ComplianceRecord{
		StaffRFB:        models.Yes,
		CESMPSSubmitted: models.No,
		OHSMeasures:     models.Unknown,
		Status:          models.StatusNonCompliant,
		Issues:          []string{"CESMPS not submitted", "OHS measures status unknown"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtractCompliance mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractComplianceHeaderPriority(t *testing.T) {
	// The first candidate is present but empty, so the second spelling wins.
	sheet := complianceSheet(
		[]string{"Staff RFB", "Staff_RFB", "CESMPS", "OHS_Measures", "OHS Measures"},
		models.StringCell(" "), models.StringCell("YES"), models.StringCell("yes"),
		models.StringCell("No"), models.StringCell("Yes"),
	)

	got := ExtractCompliance(sheet, 0, DefaultComplianceHeaders())
	if got.StaffRFB != models.Yes {
		t.Errorf("StaffRFB = %q, expected Yes from Staff_RFB", got.StaffRFB)
	}
	if got.CESMPSSubmitted != models.Yes {
		t.Errorf("CESMPSSubmitted = %q, expected Yes from CESMPS", got.CESMPSSubmitted)
	}
	// "OHS Measures" is listed before "OHS_Measures" and wins.
	if got.OHSMeasures != models.Yes {
		t.Errorf("OHSMeasures = %q, expected Yes from OHS Measures", got.OHSMeasures)
	}
	if got.Status != models.StatusCompliant || len(got.Issues) != 0 {
		t.Errorf("Expected Compliant with no issues, got %+v", got)
	}
}

func TestExtractComplianceHeadersAreExact(t *testing.T) {
	sheet := complianceSheet(
		[]string{"staff rfb", "CESMPS Submitted ", "OHS  Measures"},
		models.StringCell("Yes"), models.StringCell("Yes"), models.StringCell("Yes"),
	)

	got := ExtractCompliance(sheet, 0, DefaultComplianceHeaders())
	if diff := cmp.Diff(models.UnknownCompliance(), got); diff != "" {
		t.Errorf("Expected unmatched headers to degrade to Unknown (-want +got):\n%s", diff)
	}
}

func TestExtractComplianceDegraded(t *testing.T) {
	headers := DefaultComplianceHeaders()
	tests := []struct {
		name  string
		sheet *models.SheetData
		row   int
	}{
		{"missing sheet", nil, 0},
		{"missing row", complianceSheet([]string{"Staff RFB"}, models.StringCell("Yes")), 3},
		{"negative row", complianceSheet([]string{"Staff RFB"}, models.StringCell("Yes")), -1},
		{"all unknown", complianceSheet(
			[]string{"Staff RFB", "CESMPS Submitted", "OHS Measures"},
			models.StringCell("tbd"), models.Cell{}, models.NumberCell(1),
		), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCompliance(tt.sheet, tt.row, headers)
			if diff := cmp.Diff(models.UnknownCompliance(), got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComplianceInvariant(t *testing.T) {
	values := []models.YesNo{models.Yes, models.No, models.Unknown}
	for _, a := range values {
		for _, b := range values {
			for _, c := range values {
				rec := Compliance(a, b, c)

				nonYes := 0
				for _, v := range []models.YesNo{a, b, c} {
					if v != models.Yes {
						nonYes++
					}
				}

				switch {
				case a == models.Unknown && b == models.Unknown && c == models.Unknown:
					if rec.Status != models.StatusUnknown {
						t.Errorf("(%s,%s,%s): expected Unknown, got %s", a, b, c, rec.Status)
					}
				case nonYes == 0:
					if rec.Status != models.StatusCompliant || len(rec.Issues) != 0 {
						t.Errorf("(%s,%s,%s): expected Compliant, got %+v", a, b, c, rec)
					}
				default:
					if rec.Status != models.StatusNonCompliant {
						t.Errorf("(%s,%s,%s): expected NonCompliant, got %s", a, b, c, rec.Status)
					}
					if len(rec.Issues) != nonYes {
						t.Errorf("(%s,%s,%s): expected %d issues, got %v", a, b, c, nonYes, rec.Issues)
					}
				}
			}
		}
	}
}

func TestComplianceIssueText(t *testing.T) {
	got := Compliance(models.No, models.Unknown, models.No)
	want := []string{"Staff RFB not submitted", "CESMPS status unknown", "OHS measures not in place"}
	if diff := cmp.Diff(want, got.Issues); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
}
