package models

// Source is one configured published spreadsheet export for a tracked package.
type Source struct {
	// PackageID is the stable package identifier used as the compliance key.
	PackageID string `json:"packageId" mapstructure:"package_id" validate:"required"`
	// PackageName is the display name of the package.
	PackageName string `json:"packageName" mapstructure:"package_name"`
	// ExportURL is the published-export URL fetched on every refresh.
	ExportURL string `json:"exportUrl" mapstructure:"export_url" validate:"required,url"`
}

// SourceStatus is the outcome of one source during a single aggregation run.
type SourceStatus struct {
	PackageID   string `json:"packageId"`
	PackageName string `json:"packageName"`
	OK          bool   `json:"ok"`
	// Error is the failure message when OK is false.
	Error      string `json:"error,omitempty"`
	TaskCount  int    `json:"taskCount"`
	DurationMS int64  `json:"durationMs"`
}
