// Package fetch retrieves published spreadsheet exports over HTTP.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/parser"
)

const (
	// DefaultTimeout bounds one export download.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxBodyBytes caps the size of one export payload.
	DefaultMaxBodyBytes int64 = 32 << 20

	userAgent = "sheetdash-go/1.0"
)

// Options configures the fetcher.
type Options struct {
	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration
	// MaxBodyBytes caps the payload size. Zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64
	// Client overrides the HTTP client; its Timeout is left untouched.
	Client *http.Client
	Logger *slog.Logger
}

// Fetcher downloads and decodes published exports.
type Fetcher struct {
	client  *http.Client
	maxBody int64
	logger  *slog.Logger
}

// New creates a Fetcher.
func New(opts Options) *Fetcher {
	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{client: client, maxBody: maxBody, logger: logger.With(slog.String("component", "fetch"))}
}

// Fetch retrieves src's export and decodes it into a workbook.
// Every failure is returned as a *FetchError.
func (f *Fetcher) Fetch(ctx context.Context, src models.Source) (*models.WorkbookData, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.ExportURL, nil)
	if err != nil {
		return nil, NewFetchError(src.PackageID, StageRequest, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, NewFetchError(src.PackageID, StageRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, &FetchError{
			PackageID:  src.PackageID,
			Stage:      StageStatus,
			StatusCode: resp.StatusCode,
			Err:        errors.New(resp.Status),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return nil, NewFetchError(src.PackageID, StageRead, err)
	}
	if int64(len(body)) > f.maxBody {
		return nil, NewFetchError(src.PackageID, StageRead, fmt.Errorf("payload exceeds %d bytes", f.maxBody))
	}

	format := parser.DetectFormat(resp.Header.Get("Content-Type"), src.ExportURL)
	wb, err := parser.Decode(src.PackageID, format, body)
	if err != nil {
		return nil, NewFetchError(src.PackageID, StageDecode, err)
	}

	f.logger.Debug("export fetched",
		"package_id", src.PackageID,
		"format", string(format),
		"bytes", len(body),
		"sheets", len(wb.Sheets),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return wb, nil
}
