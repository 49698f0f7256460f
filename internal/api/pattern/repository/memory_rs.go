package patternRepository

import (
	"context"
	"strings"
	"sync"
	"time"

	"ProjectCaddie/internal/api/pattern"
	"ProjectCaddie/internal/entity"
)

// memoryRepository is the in-process shot store the tests and the REPL run
// against. Real deployments swap in their own Repository.
type memoryRepository struct {
	mu    sync.RWMutex
	shots []entity.Shot
	clock func() time.Time
}

func NewMemoryRepository() Repository {
	return &memoryRepository{clock: time.Now}
}

// NewMemoryRepositoryWithClock pins the clock so retention tests are deterministic.
func NewMemoryRepositoryWithClock(clock func() time.Time) Repository {
	return &memoryRepository{clock: clock}
}

func (r *memoryRepository) RecordShot(_ context.Context, shot entity.Shot) error {
	if strings.TrimSpace(shot.ID) == "" || strings.TrimSpace(shot.Club) == "" || shot.Timestamp.IsZero() {
		return pattern.ErrInvalidShot
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.shots = append(r.shots, shot)
	return nil
}

func (r *memoryRepository) GetRecentShots(_ context.Context, days int) ([]entity.Shot, error) {
	if days <= 0 {
		return nil, pattern.ErrInvalidWindow
	}

	cutoff := r.clock().Add(-time.Duration(days) * 24 * time.Hour)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entity.Shot
	for _, shot := range r.shots {
		if !shot.Timestamp.Before(cutoff) {
			out = append(out, shot)
		}
	}
	return out, nil
}

func (r *memoryRepository) GetShotsWithPressure(_ context.Context) ([]entity.Shot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entity.Shot
	for _, shot := range r.shots {
		if shot.PressureContext.HasPressure() {
			out = append(out, shot)
		}
	}
	return out, nil
}

func (r *memoryRepository) ClearMemory(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shots = nil
	return nil
}

// EnforceRetentionPolicy drops shots older than the retention window and
// reports how many were removed.
func (r *memoryRepository) EnforceRetentionPolicy(_ context.Context) (int, error) {
	cutoff := r.clock().Add(-RetentionWindow)

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.shots[:0]
	removed := 0
	for _, shot := range r.shots {
		if shot.Timestamp.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, shot)
	}
	r.shots = kept
	return removed, nil
}
