package catalog

// store.go keeps the snapshot handlers read from.
//
// Refreshes load a complete new generation from the source, validate it and
// swap it in with a single pointer store. Readers never see a half-loaded
// snapshot, and a failed refresh leaves the previous snapshot in place.

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// ErrNotLoaded is returned before the first successful load.
var ErrNotLoaded = errors.New("datasets not loaded")

// DefaultLoadTimeout bounds a single load when the store is given none.
const DefaultLoadTimeout = 30 * time.Second

// Store holds the current snapshot.
type Store struct {
	source      Source
	loadTimeout time.Duration

	current atomic.Pointer[Snapshot]

	mu sync.Mutex // serializes refreshes

	errMu   sync.Mutex
	lastErr error
}

// NewStore creates a store over source. Nothing is loaded until Refresh.
func NewStore(source Source, loadTimeout time.Duration) *Store {
	if loadTimeout <= 0 {
		loadTimeout = DefaultLoadTimeout
	}
	return &Store{source: source, loadTimeout: loadTimeout}
}

// SourceName identifies where snapshots come from.
func (s *Store) SourceName() string {
	return s.source.Name()
}

// Current returns the active snapshot, or ErrNotLoaded.
func (s *Store) Current() (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap, nil
}

// LastError returns the error of the most recent refresh, nil if it succeeded.
func (s *Store) LastError() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.lastErr
}

// Refresh loads and validates a new snapshot and makes it current.
// On failure the previous snapshot stays current and the error is returned.
func (s *Store) Refresh(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	s.errMu.Lock()
	s.lastErr = err
	s.errMu.Unlock()
	if err != nil {
		return nil, err
	}
	s.current.Store(snap)
	return snap, nil
}

func (s *Store) load(ctx context.Context) (*Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.loadTimeout)
	defer cancel()

	start := time.Now()
	d, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load from %s: %w", s.source.Name(), err)
	}

	warnings, err := Validate(d)
	if err != nil {
		return nil, fmt.Errorf("validate %s: %w", s.source.Name(), err)
	}
	for _, w := range warnings {
		slog.Warn("dataset warning", "source", s.source.Name(), "warning", w)
	}

	snap := NewSnapshot(s.source.Name(), d, warnings)
	slog.Info("datasets loaded",
		"source", snap.Source,
		"version", snap.Version,
		"warnings", len(warnings),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return snap, nil
}

// StartRefresher reloads the datasets every interval until ctx is cancelled.
// Failed refreshes are logged and retried on the next tick.
func (s *Store) StartRefresher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	slog.Info("dataset refresher started", "source", s.source.Name(), "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("dataset refresher stopped")
			return
		case <-ticker.C:
			if _, err := s.Refresh(ctx); err != nil {
				slog.Error("dataset refresh failed", "error", err)
			}
		}
	}
}
