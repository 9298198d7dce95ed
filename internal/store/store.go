package store

import (
	"sync"
	"time"

	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/health"
	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/telemetry"
)

// Store is a thread-safe holder for live-mode state: the latest snapshot, a
// bounded history window of recent snapshots, and the most recent health
// report. The simulation loop writes; the API and WebSocket hub read.
type Store struct {
	mu        sync.RWMutex
	latest    telemetry.Snapshot
	hasLatest bool
	history   []telemetry.Snapshot
	capacity  int
	report    *health.Report
	updatedAt time.Time
	now       func() time.Time // injectable for deterministic tests
}

// New creates a Store keeping at most capacity recent snapshots.
func New(capacity int) *Store {
	if capacity < 1 {
		capacity = 1
	}
	return &Store{
		history:  make([]telemetry.Snapshot, 0, capacity),
		capacity: capacity,
		now:      time.Now,
	}
}

// Put records a new snapshot as the latest reading and appends it to the
// history window, evicting the oldest entry when the window is full.
func (s *Store) Put(snap telemetry.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = snap
	s.hasLatest = true
	s.updatedAt = s.now()
	if len(s.history) >= s.capacity {
		s.history = s.history[1:]
	}
	s.history = append(s.history, snap)
}

// Latest returns the most recent snapshot and whether one exists.
func (s *Store) Latest() (telemetry.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.hasLatest
}

// History returns a copy of the retained window, oldest first.
func (s *Store) History() telemetry.Series {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(telemetry.Series, len(s.history))
	copy(out, s.history)
	return out
}

// Len returns the number of snapshots currently retained.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}

// SetReport replaces the current health report.
func (s *Store) SetReport(rep health.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report = &rep
}

// Report returns the most recent health report and whether one has been set.
func (s *Store) Report() (health.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.report == nil {
		return health.Report{}, false
	}
	return *s.report, true
}

// UpdatedAt returns when the latest snapshot was recorded.
func (s *Store) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}
