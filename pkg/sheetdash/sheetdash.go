// Package sheetdash wires the spreadsheet ingestion pipeline: fetcher, aggregator and cache.
package sheetdash

import (
	"log/slog"

	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/cache"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/config"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/fetch"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/ingest"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
)

// Dashboard is the assembled pipeline.
type Dashboard struct {
	Fetcher    *fetch.Fetcher
	Aggregator *ingest.Aggregator
	Cache      *cache.Cache
}

// New builds the pipeline from configuration. onRefresh may be nil.
func New(cfg config.Config, logger *slog.Logger, onRefresh func(*models.Snapshot)) (*Dashboard, error) {
	if logger == nil {
		logger = slog.Default()
	}

	ipcRange, err := cfg.IPCRange()
	if err != nil {
		return nil, err
	}

	fetcher := fetch.New(fetch.Options{
		Timeout:      cfg.HTTPTimeout,
		MaxBodyBytes: cfg.MaxBodyBytes,
		Logger:       logger,
	})

	agg := ingest.NewAggregator(fetcher, ingest.Options{
		Sources:             cfg.Sources,
		Worksheet:           cfg.Worksheet,
		ComplianceWorksheet: cfg.Compliance.Worksheet,
		ComplianceRow:       cfg.Compliance.Row,
		ComplianceHeaders:   cfg.Headers.ComplianceHeaders,
		IPCSource:           cfg.IPC.Source,
		IPCWorksheet:        cfg.IPC.Worksheet,
		IPCRange:            ipcRange,
		TaskHeaders:         cfg.Headers.TaskHeaders,
		Logger:              logger,
	})

	c := cache.New(agg, cache.Options{
		TTL:             cfg.CacheTTL,
		RefreshInterval: cfg.RefreshInterval,
		OnRefresh:       onRefresh,
		Logger:          logger,
	})

	return &Dashboard{Fetcher: fetcher, Aggregator: agg, Cache: c}, nil
}
