package models

import (
	"maps"
	"slices"
	"time"
)

// Snapshot is the complete result of one aggregation run.
// A Snapshot is never modified after construction; use Clone for a private copy.
type Snapshot struct {
	// ID uniquely identifies the aggregation run.
	ID                  string                      `json:"id"`
	Tasks               []TaskRecord                `json:"tasks"`
	ComplianceByPackage map[string]ComplianceRecord `json:"complianceByPackage"`
	// IPC holds zero or IPCCount records taken from the designated IPC source.
	IPC       []IPCRecord    `json:"ipc"`
	Sources   []SourceStatus `json:"sources"`
	FetchedAt time.Time      `json:"fetchedAt"`
}

// EmptySnapshot returns a snapshot with no data, stamped with the given time.
func EmptySnapshot(id string, at time.Time) *Snapshot {
	return &Snapshot{
		ID:                  id,
		Tasks:               []TaskRecord{},
		ComplianceByPackage: map[string]ComplianceRecord{},
		IPC:                 []IPCRecord{},
		Sources:             []SourceStatus{},
		FetchedAt:           at,
	}
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := *s
	out.Tasks = make([]TaskRecord, len(s.Tasks))
	for i, t := range s.Tasks {
		out.Tasks[i] = t.clone()
	}
	out.ComplianceByPackage = make(map[string]ComplianceRecord, len(s.ComplianceByPackage))
	for id, rec := range s.ComplianceByPackage {
		rec.Issues = slices.Clone(rec.Issues)
		out.ComplianceByPackage[id] = rec
	}
	out.IPC = slices.Clone(s.IPC)
	out.Sources = slices.Clone(s.Sources)
	return &out
}

// PackageIDs returns the compliance keys in sorted order.
func (s *Snapshot) PackageIDs() []string {
	return slices.Sorted(maps.Keys(s.ComplianceByPackage))
}

func (t TaskRecord) clone() TaskRecord {
	t.PlannedStart = cloneDate(t.PlannedStart)
	t.PlannedFinish = cloneDate(t.PlannedFinish)
	t.ActualStart = cloneDate(t.ActualStart)
	t.ActualFinish = cloneDate(t.ActualFinish)
	t.LastUpdated = cloneDate(t.LastUpdated)
	t.PlannedDurationDays = cloneFloat(t.PlannedDurationDays)
	t.ProgressPct = cloneFloat(t.ProgressPct)
	t.Variance = cloneFloat(t.Variance)
	return t
}

func cloneDate(d *Date) *Date {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
