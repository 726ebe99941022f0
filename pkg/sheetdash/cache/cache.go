// Package cache holds the latest dashboard snapshot and refreshes it on demand or on a timer.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultTTL is how long a snapshot is served before a read triggers a refresh.
	DefaultTTL = 5 * time.Minute
	// DefaultRefreshTimeout bounds one aggregation run.
	DefaultRefreshTimeout = 2 * time.Minute

	refreshKey = "snapshot"
)

// ErrClosed is returned by refreshes requested after Close.
var ErrClosed = errors.New("cache: closed")

// Loader produces a fresh snapshot. It must not return nil.
type Loader interface {
	Aggregate(ctx context.Context) *models.Snapshot
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context) *models.Snapshot

// Aggregate calls f.
func (f LoaderFunc) Aggregate(ctx context.Context) *models.Snapshot { return f(ctx) }

// Options configures a Cache.
type Options struct {
	// TTL is the maximum age of a served snapshot. Zero means DefaultTTL.
	TTL time.Duration
	// RefreshInterval enables background refresh when positive.
	RefreshInterval time.Duration
	// RefreshTimeout bounds each aggregation. Zero means DefaultRefreshTimeout.
	RefreshTimeout time.Duration
	// OnRefresh is called with a copy of every snapshot that replaces the current one.
	// It never runs after Close returns.
	OnRefresh func(*models.Snapshot)
	Logger    *slog.Logger
	Now       func() time.Time
}

// entry pairs a snapshot with the time it was stored.
type entry struct {
	snap     *models.Snapshot
	storedAt time.Time
}

// Cache owns the current snapshot. It starts empty and is populated by the first refresh;
// every later refresh replaces the snapshot wholesale.
// At most one aggregation runs at a time; overlapping callers share its result.
// Callers always receive their own copy of the snapshot.
type Cache struct {
	loader Loader
	opts   Options
	logger *slog.Logger

	current atomic.Pointer[entry]
	group   singleflight.Group
	runs    atomic.Int64

	// life is cancelled by Close and aborts any aggregation still running.
	life    context.Context
	stop    context.CancelFunc
	loading sync.WaitGroup

	mu     sync.Mutex
	closed bool
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates an empty Cache.
func New(loader Loader, opts Options) *Cache {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.RefreshTimeout <= 0 {
		opts.RefreshTimeout = DefaultRefreshTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	life, stop := context.WithCancel(context.Background())
	return &Cache{
		loader: loader,
		opts:   opts,
		logger: opts.Logger.With(slog.String("component", "cache")),
		life:   life,
		stop:   stop,
	}
}

// Get returns the current snapshot, refreshing first when the cache is empty or the
// snapshot is older than the TTL.
func (c *Cache) Get(ctx context.Context) (*models.Snapshot, error) {
	if snap := c.fresh(); snap != nil {
		return snap.Clone(), nil
	}
	return c.refresh(ctx, true)
}

// Peek returns the current snapshot without refreshing, or nil when the cache is empty.
func (c *Cache) Peek() *models.Snapshot {
	if e := c.current.Load(); e != nil {
		return e.snap.Clone()
	}
	return nil
}

// Refresh runs an aggregation unless one is already in flight, in which case it waits
// for that one. The aggregation is not cancelled when ctx ends; only the wait is.
// Close cancels it.
func (c *Cache) Refresh(ctx context.Context) (*models.Snapshot, error) {
	return c.refresh(ctx, false)
}

// Runs returns how many aggregations the cache has started.
func (c *Cache) Runs() int64 {
	return c.runs.Load()
}

// fresh returns the stored snapshot when it is younger than the TTL.
func (c *Cache) fresh() *models.Snapshot {
	if e := c.current.Load(); e != nil && c.opts.Now().Sub(e.storedAt) < c.opts.TTL {
		return e.snap
	}
	return nil
}

func (c *Cache) refresh(ctx context.Context, ifStale bool) (*models.Snapshot, error) {
	ch := c.group.DoChan(refreshKey, func() (any, error) {
		// A flight that finished between the caller's TTL check and this one
		// already produced a fresh snapshot.
		if ifStale {
			if snap := c.fresh(); snap != nil {
				return snap, nil
			}
		}
		return c.load(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*models.Snapshot).Clone(), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Cache) load(ctx context.Context) (*models.Snapshot, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}
	c.loading.Add(1)
	c.mu.Unlock()
	defer c.loading.Done()

	c.runs.Add(1)
	ctx, cancel := context.WithTimeout(ctx, c.opts.RefreshTimeout)
	defer cancel()
	defer context.AfterFunc(c.life, cancel)()

	start := time.Now()
	snap := c.loader.Aggregate(ctx)
	if c.life.Err() != nil {
		// Sources were cut off by Close; keep the last complete snapshot.
		return nil, ErrClosed
	}
	if snap == nil {
		snap = models.EmptySnapshot("", c.opts.Now())
	}
	c.current.Store(&entry{snap: snap, storedAt: c.opts.Now()})

	c.logger.Info("snapshot replaced",
		"snapshot_id", snap.ID,
		"tasks", len(snap.Tasks),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	if c.opts.OnRefresh != nil {
		c.opts.OnRefresh(snap.Clone())
	}
	return snap, nil
}

// Start performs an initial refresh and, when RefreshInterval is set, keeps refreshing
// in the background until ctx ends or Close is called. Calling Start twice is a no-op.
func (c *Cache) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.done != nil {
		c.mu.Unlock()
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})
	c.mu.Unlock()

	if _, err := c.Refresh(ctx); err != nil {
		cancel()
		close(c.done)
		return err
	}

	if c.opts.RefreshInterval <= 0 {
		close(c.done)
		return nil
	}

	go func() {
		defer close(c.done)
		ticker := time.NewTicker(c.opts.RefreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := c.Refresh(ctx); err != nil {
					c.logger.Debug("background refresh interrupted", "error", err)
				}
			}
		}
	}()
	return nil
}

// Close stops background refresh, aborts any aggregation in flight and waits for it
// to return. No snapshot is stored and OnRefresh is not called after Close returns.
// The last snapshot stays readable.
func (c *Cache) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	cancel, done := c.cancel, c.done
	c.mu.Unlock()

	c.stop()
	if cancel != nil {
		cancel()
		<-done
	}
	c.loading.Wait()
	return nil
}
