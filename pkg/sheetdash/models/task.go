package models

// TaskRecord is one site task row of a package's data-entry sheet.
type TaskRecord struct {
	PackageID   string `json:"packageId"`
	PackageName string `json:"packageName"`
	District    string `json:"district"`
	SiteID      string `json:"siteId"`
	SiteName    string `json:"siteName"`
	Discipline  string `json:"discipline"`
	TaskName    string `json:"taskName"`

	PlannedStart        *Date    `json:"plannedStart,omitempty"`
	PlannedFinish       *Date    `json:"plannedFinish,omitempty"`
	PlannedDurationDays *float64 `json:"plannedDurationDays,omitempty"`
	ActualStart         *Date    `json:"actualStart,omitempty"`
	ActualFinish        *Date    `json:"actualFinish,omitempty"`
	ProgressPct         *float64 `json:"progressPct,omitempty"`
	Variance            *float64 `json:"variance,omitempty"`
	DelayFlag           string   `json:"delayFlag"`
	LastUpdated         *Date    `json:"lastUpdated,omitempty"`
	Remarks             string   `json:"remarks"`

	PhotoFolderURL string `json:"photoFolderUrl"`
	CoverPhotoURL  string `json:"coverPhotoUrl"`
	BeforePhotoURL string `json:"beforePhotoUrl"`
	AfterPhotoURL  string `json:"afterPhotoUrl"`
}
