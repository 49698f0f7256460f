package patternRepository

import (
	"context"
	"time"

	"ProjectCaddie/internal/entity"
)

// RetentionWindow is how long shots are kept before the retention policy
// deletes them.
const RetentionWindow = 90 * 24 * time.Hour

// Repository is the shot persistence collaborator. The aggregator only ever
// reads snapshots from it; the shot log is the source of truth for patterns.
type Repository interface {
	RecordShot(ctx context.Context, shot entity.Shot) error
	GetRecentShots(ctx context.Context, days int) ([]entity.Shot, error)
	GetShotsWithPressure(ctx context.Context) ([]entity.Shot, error)
	ClearMemory(ctx context.Context) error
	EnforceRetentionPolicy(ctx context.Context) (int, error)
}
