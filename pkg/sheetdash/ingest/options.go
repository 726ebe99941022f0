// Package ingest runs the per-source fetch and extraction pipelines and merges them into a snapshot.
package ingest

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/parser"
)

// Options configures an Aggregator.
type Options struct {
	// Sources are the configured exports, in display order.
	Sources []models.Source
	// Worksheet is the preferred task tab. Empty means models.DefaultWorksheet.
	Worksheet string

	// ComplianceWorksheet is the tab holding the compliance answers.
	ComplianceWorksheet string
	// ComplianceRow is the 0-based data row read for compliance.
	ComplianceRow int
	// ComplianceHeaders overrides the compliance header spellings. Empty lists use the defaults.
	ComplianceHeaders parser.ComplianceHeaders

	// IPCSource is the package id whose workbook is authoritative for IPC.
	// Empty means the first source.
	IPCSource string
	// IPCWorksheet is the tab holding the certificate cells.
	IPCWorksheet string
	// IPCRange locates the six certificate cells.
	IPCRange models.IPCRange

	// TaskHeaders overrides the task header spellings. Empty lists use the defaults.
	TaskHeaders parser.TaskHeaders

	Logger *slog.Logger
	// Now and NewID are replaced in tests.
	Now   func() time.Time
	NewID func() string
}

// Default worksheet names and positions of the package trackers.
const (
	DefaultComplianceWorksheet = "Compliance"
	DefaultIPCWorksheet        = "IPC"
	DefaultIPCRange            = "B2:G2"
)

// DefaultOptions returns options for the given sources with the tracker defaults.
func DefaultOptions(sources []models.Source) Options {
	return Options{
		Sources:             sources,
		Worksheet:           models.DefaultWorksheet,
		ComplianceWorksheet: DefaultComplianceWorksheet,
		IPCWorksheet:        DefaultIPCWorksheet,
		IPCRange:            models.IPCRange{Row: 2, Col: 2},
		ComplianceHeaders:   parser.DefaultComplianceHeaders(),
		TaskHeaders:         parser.DefaultTaskHeaders(),
	}
}

// withDefaults fills unset fields.
func (o Options) withDefaults() Options {
	if o.Worksheet == "" {
		o.Worksheet = models.DefaultWorksheet
	}
	if o.ComplianceWorksheet == "" {
		o.ComplianceWorksheet = DefaultComplianceWorksheet
	}
	if o.IPCWorksheet == "" {
		o.IPCWorksheet = DefaultIPCWorksheet
	}
	if o.IPCRange.Row <= 0 || o.IPCRange.Col <= 0 {
		o.IPCRange = models.IPCRange{Row: 2, Col: 2}
	}
	o.ComplianceHeaders = o.ComplianceHeaders.Merge(parser.DefaultComplianceHeaders())
	o.TaskHeaders = o.TaskHeaders.Merge(parser.DefaultTaskHeaders())
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	return o
}

// ipcSource returns the package id designated for IPC.
func (o Options) ipcSource() string {
	if o.IPCSource != "" {
		return o.IPCSource
	}
	if len(o.Sources) > 0 {
		return o.Sources[0].PackageID
	}
	return ""
}
