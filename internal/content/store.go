package content

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Prometheus metrics
var (
	reloadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "list_content_reloads_total",
		Help: "Total number of content directory reloads",
	})

	reloadErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "list_content_reload_errors_total",
		Help: "Total number of reloads that failed to read the level list",
	})

	reloadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "list_content_reload_duration_seconds",
		Help:    "Duration of content directory reloads",
		Buckets: prometheus.DefBuckets,
	})

	levelsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "list_levels_loaded",
		Help: "Number of levels loaded in the current snapshot",
	})

	levelLoadErrors = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "list_level_load_errors",
		Help: "Number of level files that failed to load in the current snapshot",
	})
)

// debounceDelay coalesces bursts of file system events (editors and
// sync tools touch several files per save) into one reload.
const debounceDelay = 500 * time.Millisecond

// StoreConfig configures the content store.
type StoreConfig struct {
	// Dir is the content directory holding _list.json and friends.
	Dir string
	// Concurrency caps parallel level file reads.
	Concurrency int
	// ReloadInterval forces a periodic reload even without file events.
	// Zero disables the ticker.
	ReloadInterval time.Duration
	Logger         *zap.Logger
}

// Store owns the current content snapshot and keeps it fresh: a reload
// is triggered by file system events on the content directory (debounced)
// or by the periodic ticker. Readers get whole snapshots and are never
// blocked by a reload in progress.
type Store struct {
	dir         string
	concurrency int
	interval    time.Duration
	validate    *validator.Validate
	logger      *zap.SugaredLogger

	current atomic.Pointer[Snapshot]
}

// NewStore creates a content store for the given directory. Call Load
// before serving and Run to keep the snapshot fresh.
func NewStore(cfg StoreConfig) *Store {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 8
	}

	return &Store{
		dir:         filepath.Clean(cfg.Dir),
		concurrency: cfg.Concurrency,
		interval:    cfg.ReloadInterval,
		validate:    validator.New(),
		logger:      cfg.Logger.Sugar(),
	}
}

// Load performs a full read of the content directory and swaps in the
// resulting snapshot. It fails only when the level list itself is
// unreadable (ErrNoData); individual bad level files are carried in the
// snapshot as error slots.
func (s *Store) Load(ctx context.Context) error {
	start := time.Now()

	snap, err := s.load(ctx)
	reloadDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		reloadErrors.Inc()
		return err
	}
	reloadsTotal.Inc()

	failed := snap.FailedLevels()
	levelsLoaded.Set(float64(len(snap.Levels) - len(failed)))
	levelLoadErrors.Set(float64(len(failed)))

	s.current.Store(snap)
	s.logger.Infow("Content loaded",
		"snapshot", snap.ID,
		"levels", len(snap.Levels),
		"failed", len(failed),
		"packs", len(snap.Packs),
		"changelog", len(snap.Changelog),
		"duration", time.Since(start),
	)
	if len(failed) > 0 {
		s.logger.Warnw("Some levels failed to load", "files", failed)
	}
	return nil
}

// Snapshot returns the current snapshot, or nil before the first
// successful Load.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Run watches the content directory and reloads on change until ctx is
// canceled. A reload that fails keeps the previous snapshot; serving
// stale content beats serving none.
func (s *Store) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(s.dir); err != nil {
		return err
	}
	s.logger.Infow("Watching content directory", "dir", s.dir)

	var ticker *time.Ticker
	var tick <-chan time.Time
	if s.interval > 0 {
		ticker = time.NewTicker(s.interval)
		tick = ticker.C
		defer ticker.Stop()
	}

	debounce := time.NewTimer(0)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	reload := func(reason string) {
		if err := s.Load(ctx); err != nil {
			s.logger.Errorw("Content reload failed, keeping previous snapshot",
				"reason", reason, "error", err)
		}
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			debounce.Reset(debounceDelay)

		case <-debounce.C:
			reload("fs event")

		case <-tick:
			reload("interval")

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warnw("Watcher error", "error", err)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
