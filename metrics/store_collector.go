package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/marcelsud/jira-relay/delivery"
)

// StoreCollector implements the Collector interface over a delivery store
type StoreCollector struct {
	counter delivery.Counter
	pinger  delivery.Pinger
}

// NewStoreCollector creates a new collector; pinger may be nil
func NewStoreCollector(counter delivery.Counter, pinger delivery.Pinger) *StoreCollector {
	return &StoreCollector{
		counter: counter,
		pinger:  pinger,
	}
}

// Collect gathers a snapshot. An unreachable cache is reported in the
// snapshot rather than as an error.
func (c *StoreCollector) Collect(ctx context.Context) (Snapshot, error) {
	snapshot := Snapshot{Timestamp: time.Now()}

	if c.pinger != nil && c.pinger.Ping(ctx) != nil {
		return snapshot, nil
	}
	snapshot.CacheReachable = true

	tracked, err := c.TrackedDeliveries(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	snapshot.TrackedDeliveries = tracked

	return snapshot, nil
}

// TrackedDeliveries returns the number of delivery ids in the cache
func (c *StoreCollector) TrackedDeliveries(ctx context.Context) (int64, error) {
	count, err := c.counter.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting tracked deliveries: %w", err)
	}
	return count, nil
}
