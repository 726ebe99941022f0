package parser

import "github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"

// ExtractCompliance reads the compliance answers from data row `row` (0 = first row under
// the header) of the compliance sheet. A missing sheet or row, or three Unknown answers,
// yields models.UnknownCompliance.
func ExtractCompliance(sheet *models.SheetData, row int, headers ComplianceHeaders) models.ComplianceRecord {
	if sheet == nil || row < 0 {
		return models.UnknownCompliance()
	}
	records := sheet.Records()
	if row >= len(records) {
		return models.UnknownCompliance()
	}
	rec := records[row]

	staff, _ := headers.StaffRFB.Lookup(rec)
	cesmps, _ := headers.CESMPS.Lookup(rec)
	ohs, _ := headers.OHS.Lookup(rec)

	return Compliance(NormalizeYesNo(staff), NormalizeYesNo(cesmps), NormalizeYesNo(ohs))
}

// Compliance derives status and issues from three normalized answers.
func Compliance(staffRFB, cesmps, ohs models.YesNo) models.ComplianceRecord {
	if staffRFB == models.Unknown && cesmps == models.Unknown && ohs == models.Unknown {
		return models.UnknownCompliance()
	}

	rec := models.ComplianceRecord{
		StaffRFB:        staffRFB,
		CESMPSSubmitted: cesmps,
		OHSMeasures:     ohs,
		Status:          models.StatusCompliant,
		Issues:          []string{},
	}

	checks := []struct {
		value   models.YesNo
		missing string
		unknown string
	}{
		{staffRFB, "Staff RFB not submitted", "Staff RFB status unknown"},
		{cesmps, "CESMPS not submitted", "CESMPS status unknown"},
		{ohs, "OHS measures not in place", "OHS measures status unknown"},
	}
	for _, c := range checks {
		switch c.value {
		case models.Yes:
			continue
		case models.No:
			rec.Issues = append(rec.Issues, c.missing)
		default:
			rec.Issues = append(rec.Issues, c.unknown)
		}
		rec.Status = models.StatusNonCompliant
	}

	return rec
}
