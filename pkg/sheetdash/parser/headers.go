package parser

import "github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"

// Candidates is an ordered list of accepted header spellings for one logical field.
type Candidates []string

// Lookup returns the first present, non-empty value among the candidate headers.
// Header names match exactly; the first match in list order wins.
func (c Candidates) Lookup(rec models.Record) (models.Cell, bool) {
	for _, name := range c {
		if v, ok := rec[name]; ok && !v.Empty() {
			return v, true
		}
	}
	return models.Cell{}, false
}

// ComplianceHeaders lists the accepted headers of the three compliance fields.
type ComplianceHeaders struct {
	StaffRFB Candidates `mapstructure:"staff_rfb"`
	CESMPS   Candidates `mapstructure:"cesmps"`
	OHS      Candidates `mapstructure:"ohs"`
}

// DefaultComplianceHeaders returns the header spellings used by the package trackers.
func DefaultComplianceHeaders() ComplianceHeaders {
	return ComplianceHeaders{
		StaffRFB: Candidates{"Staff RFB", "Staff_RFB", "Staff RFB Submitted"},
		CESMPS:   Candidates{"CESMPS Submitted", "CESMPS_Submitted", "CESMPS"},
		OHS:      Candidates{"OHS Measures", "OHS_Measures", "OHS Measures In Place"},
	}
}

// Merge returns h with every empty field filled from def.
func (h ComplianceHeaders) Merge(def ComplianceHeaders) ComplianceHeaders {
	h.StaffRFB = orDefault(h.StaffRFB, def.StaffRFB)
	h.CESMPS = orDefault(h.CESMPS, def.CESMPS)
	h.OHS = orDefault(h.OHS, def.OHS)
	return h
}

// TaskHeaders lists the accepted headers of every task field.
type TaskHeaders struct {
	SiteID          Candidates `mapstructure:"site_id"`
	District        Candidates `mapstructure:"district"`
	SiteName        Candidates `mapstructure:"site_name"`
	Discipline      Candidates `mapstructure:"discipline"`
	TaskName        Candidates `mapstructure:"task_name"`
	PlannedStart    Candidates `mapstructure:"planned_start"`
	PlannedFinish   Candidates `mapstructure:"planned_finish"`
	PlannedDuration Candidates `mapstructure:"planned_duration"`
	ActualStart     Candidates `mapstructure:"actual_start"`
	ActualFinish    Candidates `mapstructure:"actual_finish"`
	Progress        Candidates `mapstructure:"progress"`
	Variance        Candidates `mapstructure:"variance"`
	DelayFlag       Candidates `mapstructure:"delay_flag"`
	LastUpdated     Candidates `mapstructure:"last_updated"`
	Remarks         Candidates `mapstructure:"remarks"`
	PhotoFolder     Candidates `mapstructure:"photo_folder"`
	CoverPhoto      Candidates `mapstructure:"cover_photo"`
	BeforePhoto     Candidates `mapstructure:"before_photo"`
	AfterPhoto      Candidates `mapstructure:"after_photo"`
}

// DefaultTaskHeaders returns the two spellings seen across the package trackers.
func DefaultTaskHeaders() TaskHeaders {
	return TaskHeaders{
		SiteID:          Candidates{"Site ID", "Site_ID"},
		District:        Candidates{"District", "District_Name"},
		SiteName:        Candidates{"Site Name", "Site_Name"},
		Discipline:      Candidates{"Discipline", "Work_Discipline"},
		TaskName:        Candidates{"Task Name", "Task_Name"},
		PlannedStart:    Candidates{"Planned Start", "Planned_Start"},
		PlannedFinish:   Candidates{"Planned Finish", "Planned_Finish"},
		PlannedDuration: Candidates{"Planned Duration (Days)", "Planned_Duration_Days"},
		ActualStart:     Candidates{"Actual Start", "Actual_Start"},
		ActualFinish:    Candidates{"Actual Finish", "Actual_Finish"},
		Progress:        Candidates{"Progress (%)", "Progress_Pct"},
		Variance:        Candidates{"Variance (Days)", "Variance"},
		DelayFlag:       Candidates{"Delay Flag", "Delay_Flag"},
		LastUpdated:     Candidates{"Last Updated", "Last_Updated"},
		Remarks:         Candidates{"Remarks", "Comments"},
		PhotoFolder:     Candidates{"Photo Folder", "Photo_Folder_URL"},
		CoverPhoto:      Candidates{"Cover Photo", "Cover_Photo_URL"},
		BeforePhoto:     Candidates{"Before Photo", "Before_Photo_URL"},
		AfterPhoto:      Candidates{"After Photo", "After_Photo_URL"},
	}
}

// Merge returns h with every empty field filled from def.
func (h TaskHeaders) Merge(def TaskHeaders) TaskHeaders {
	h.SiteID = orDefault(h.SiteID, def.SiteID)
	h.District = orDefault(h.District, def.District)
	h.SiteName = orDefault(h.SiteName, def.SiteName)
	h.Discipline = orDefault(h.Discipline, def.Discipline)
	h.TaskName = orDefault(h.TaskName, def.TaskName)
	h.PlannedStart = orDefault(h.PlannedStart, def.PlannedStart)
	h.PlannedFinish = orDefault(h.PlannedFinish, def.PlannedFinish)
	h.PlannedDuration = orDefault(h.PlannedDuration, def.PlannedDuration)
	h.ActualStart = orDefault(h.ActualStart, def.ActualStart)
	h.ActualFinish = orDefault(h.ActualFinish, def.ActualFinish)
	h.Progress = orDefault(h.Progress, def.Progress)
	h.Variance = orDefault(h.Variance, def.Variance)
	h.DelayFlag = orDefault(h.DelayFlag, def.DelayFlag)
	h.LastUpdated = orDefault(h.LastUpdated, def.LastUpdated)
	h.Remarks = orDefault(h.Remarks, def.Remarks)
	h.PhotoFolder = orDefault(h.PhotoFolder, def.PhotoFolder)
	h.CoverPhoto = orDefault(h.CoverPhoto, def.CoverPhoto)
	h.BeforePhoto = orDefault(h.BeforePhoto, def.BeforePhoto)
	h.AfterPhoto = orDefault(h.AfterPhoto, def.AfterPhoto)
	return h
}

func orDefault(c, def Candidates) Candidates {
	if len(c) == 0 {
		return def
	}
	return c
}
