package parser

import (
	"strings"

	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
)

// MapTask converts one data row into a task. It reports false when the row has no site id;
// every other field is optional and malformed values are left empty.
func MapTask(rec models.Record, src models.Source, h TaskHeaders) (models.TaskRecord, bool) {
	siteID, ok := h.SiteID.Lookup(rec)
	if !ok {
		return models.TaskRecord{}, false
	}

	text := func(c Candidates) string {
		v, _ := c.Lookup(rec)
		return strings.TrimSpace(v.Text())
	}
	number := func(c Candidates) *float64 {
		v, _ := c.Lookup(rec)
		return ParseNumber(v)
	}
	date := func(c Candidates) *models.Date {
		v, _ := c.Lookup(rec)
		return ParseDate(v)
	}

	return models.TaskRecord{
		PackageID:   src.PackageID,
		PackageName: src.PackageName,
		District:    text(h.District),
		SiteID:      strings.TrimSpace(siteID.Text()),
		SiteName:    text(h.SiteName),
		Discipline:  text(h.Discipline),
		TaskName:    text(h.TaskName),

		PlannedStart:        date(h.PlannedStart),
		PlannedFinish:       date(h.PlannedFinish),
		PlannedDurationDays: number(h.PlannedDuration),
		ActualStart:         date(h.ActualStart),
		ActualFinish:        date(h.ActualFinish),
		ProgressPct:         number(h.Progress),
		Variance:            number(h.Variance),
		DelayFlag:           text(h.DelayFlag),
		LastUpdated:         date(h.LastUpdated),
		Remarks:             text(h.Remarks),

		PhotoFolderURL: text(h.PhotoFolder),
		CoverPhotoURL:  text(h.CoverPhoto),
		BeforePhotoURL: text(h.BeforePhoto),
		AfterPhotoURL:  text(h.AfterPhoto),
	}, true
}

// MapTasks maps every data row of sheet, skipping rows without a site id.
func MapTasks(sheet *models.SheetData, src models.Source, h TaskHeaders) []models.TaskRecord {
	var tasks []models.TaskRecord
	for _, rec := range sheet.Records() {
		if task, ok := MapTask(rec, src, h); ok {
			tasks = append(tasks, task)
		}
	}
	return tasks
}
