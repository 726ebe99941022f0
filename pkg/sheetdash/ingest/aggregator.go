package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/parser"
	"golang.org/x/sync/errgroup"
)

// WorkbookFetcher retrieves and decodes one source's export.
type WorkbookFetcher interface {
	Fetch(ctx context.Context, src models.Source) (*models.WorkbookData, error)
}

// Aggregator builds snapshots from every configured source.
type Aggregator struct {
	fetcher WorkbookFetcher
	opts    Options
	logger  *slog.Logger
}

// NewAggregator creates an Aggregator.
func NewAggregator(fetcher WorkbookFetcher, opts Options) *Aggregator {
	opts = opts.withDefaults()
	return &Aggregator{
		fetcher: fetcher,
		opts:    opts,
		logger:  opts.Logger.With(slog.String("component", "ingest")),
	}
}

// sourceResult is everything one source contributes to a snapshot.
type sourceResult struct {
	tasks      []models.TaskRecord
	compliance models.ComplianceRecord
	ipc        []models.IPCRecord
	status     models.SourceStatus
}

// Aggregate fetches every source concurrently and merges the results.
// A failing source contributes no tasks and Unknown compliance; it never fails the run.
func (a *Aggregator) Aggregate(ctx context.Context) *models.Snapshot {
	snap := models.EmptySnapshot(a.opts.NewID(), a.opts.Now())
	if len(a.opts.Sources) == 0 {
		a.logger.Warn("no sources configured")
		return snap
	}

	ipcID := a.opts.ipcSource()
	results := make([]sourceResult, len(a.opts.Sources))

	// Errors are captured in sourceResult so one source never cancels the others.
	var g errgroup.Group
	for i, src := range a.opts.Sources {
		g.Go(func() error {
			results[i] = a.runSource(ctx, src, src.PackageID == ipcID)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for i, src := range a.opts.Sources {
		r := results[i]
		snap.Tasks = append(snap.Tasks, r.tasks...)
		snap.ComplianceByPackage[src.PackageID] = r.compliance
		snap.Sources = append(snap.Sources, r.status)
		if src.PackageID == ipcID && r.ipc != nil {
			snap.IPC = r.ipc
		}
		if !r.status.OK {
			failed++
		}
	}
	snap.FetchedAt = a.opts.Now()

	a.logger.Info("aggregation complete",
		"snapshot_id", snap.ID,
		"sources", len(a.opts.Sources),
		"failed", failed,
		"tasks", len(snap.Tasks),
		"ipc", len(snap.IPC),
	)
	return snap
}

// runSource runs fetch, decode and extraction for one source.
func (a *Aggregator) runSource(ctx context.Context, src models.Source, wantIPC bool) (res sourceResult) {
	start := time.Now()
	res = sourceResult{
		compliance: models.UnknownCompliance(),
		status:     models.SourceStatus{PackageID: src.PackageID, PackageName: src.PackageName},
	}
	defer func() {
		if p := recover(); p != nil {
			res = sourceResult{
				compliance: models.UnknownCompliance(),
				status: models.SourceStatus{
					PackageID:   src.PackageID,
					PackageName: src.PackageName,
					Error:       fmt.Sprintf("panic: %v", p),
				},
			}
			a.logger.Error("source pipeline panicked", "package_id", src.PackageID, "panic", p)
		}
		res.status.DurationMS = time.Since(start).Milliseconds()
	}()

	wb, err := a.fetcher.Fetch(ctx, src)
	if err != nil {
		res.status.Error = err.Error()
		a.logger.Warn("source failed", "package_id", src.PackageID, "error", err)
		return res
	}

	sheet := wb.SelectSheet(a.opts.Worksheet)
	if sheet == nil || sheet.Name != a.opts.Worksheet {
		a.logger.Debug("preferred worksheet missing, using first sheet", "package_id", src.PackageID, "worksheet", a.opts.Worksheet)
	}
	res.tasks = parser.MapTasks(sheet, src, a.opts.TaskHeaders)
	res.compliance = parser.ExtractCompliance(wb.Sheet(a.opts.ComplianceWorksheet), a.opts.ComplianceRow, a.opts.ComplianceHeaders)
	if wantIPC {
		res.ipc = parser.ExtractIPC(wb.Sheet(a.opts.IPCWorksheet), a.opts.IPCRange)
	}

	res.status.OK = true
	res.status.TaskCount = len(res.tasks)
	return res
}
