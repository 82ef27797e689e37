package punch

import (
	"context"
	"time"
)

// PunchRepository defines data access for the append-only punch log.
// Aggregators only read it; only ingestion writes.
type PunchRepository interface {
	// Insert appends one punch row
	Insert(ctx context.Context, p Punch) (Punch, error)

	// ListByTimeRange returns punches with from <= timestamp < to,
	// ordered by employee then timestamp
	ListByTimeRange(ctx context.Context, from, to time.Time) ([]Punch, error)
}
