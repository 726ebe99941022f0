package models

// YesNo is a normalized three-valued answer.
type YesNo string

const (
	// Yes is an affirmative answer.
	Yes YesNo = "Yes"
	// No is a negative answer.
	No YesNo = "No"
	// Unknown covers blank, missing and unrecognized answers.
	Unknown YesNo = "Unknown"
)

// ComplianceStatus summarizes the three compliance answers of a package.
type ComplianceStatus string

const (
	// StatusCompliant means all three answers are Yes.
	StatusCompliant ComplianceStatus = "Compliant"
	// StatusNonCompliant means at least one answer is not Yes.
	StatusNonCompliant ComplianceStatus = "NonCompliant"
	// StatusUnknown means no compliance data could be read.
	StatusUnknown ComplianceStatus = "Unknown"
)

// ComplianceRecord holds the compliance flags of one package and the derived status.
type ComplianceRecord struct {
	StaffRFB        YesNo            `json:"staffRfb"`
	CESMPSSubmitted YesNo            `json:"cesmpsSubmitted"`
	OHSMeasures     YesNo            `json:"ohsMeasures"`
	Status          ComplianceStatus `json:"status"`
	// Issues lists one message per field that is not Yes, in field order.
	Issues []string `json:"issues"`
}

// UnavailableIssue is the single diagnostic carried by a degraded compliance record.
const UnavailableIssue = "Compliance data unavailable"

// UnknownCompliance returns the degraded record used when no compliance data could be read.
func UnknownCompliance() ComplianceRecord {
	return ComplianceRecord{
		StaffRFB:        Unknown,
		CESMPSSubmitted: Unknown,
		OHSMeasures:     Unknown,
		Status:          StatusUnknown,
		Issues:          []string{UnavailableIssue},
	}
}
