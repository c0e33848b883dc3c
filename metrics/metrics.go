package metrics

import (
	"context"
	"time"
)

// Snapshot represents the current state of the delivery cache.
type Snapshot struct {
	// TrackedDeliveries is the number of delivery ids still inside their TTL
	TrackedDeliveries int64 `json:"tracked_deliveries"`

	// CacheReachable reports whether the last ping succeeded
	CacheReachable bool `json:"cache_reachable"`

	// Timestamp when the snapshot was taken
	Timestamp time.Time `json:"timestamp"`
}

// Collector defines the interface for collecting metrics from the delivery cache.
type Collector interface {
	// Collect gathers a full snapshot
	Collect(ctx context.Context) (Snapshot, error)

	// TrackedDeliveries returns the number of delivery ids currently stored
	TrackedDeliveries(ctx context.Context) (int64, error)
}
