package models

import "fmt"

// IPCStatus is the processing state of an Interim Payment Certificate.
type IPCStatus string

const (
	// IPCNotSubmitted means the contractor has not submitted the certificate.
	IPCNotSubmitted IPCStatus = "Not Submitted"
	// IPCSubmitted means the certificate awaits review.
	IPCSubmitted IPCStatus = "Submitted"
	// IPCInProcess means the certificate is being reviewed.
	IPCInProcess IPCStatus = "In Process"
	// IPCReleased means payment has been released.
	IPCReleased IPCStatus = "Released"
	// IPCUnknown covers blank or unrecognized cells.
	IPCUnknown IPCStatus = "Unknown"
)

// IPCCount is the number of certificate positions tracked per snapshot.
const IPCCount = 6

// IPCRecord is the status of one certificate slot.
type IPCRecord struct {
	Certificate string    `json:"certificate"`
	Status      IPCStatus `json:"status"`
}

// IPCLabel returns the label of the n-th (1-based) certificate slot.
func IPCLabel(n int) string {
	return fmt.Sprintf("IPC %d", n)
}

// IPCRange locates the six certificate cells: one row, six consecutive columns.
type IPCRange struct {
	// Row is the 1-based row index.
	Row int `json:"row"`
	// Col is the 1-based column of the first certificate.
	Col int `json:"col"`
}
