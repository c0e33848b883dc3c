package delivery

import (
	"context"
	"time"
)

/* Small, focused interfaces over the delivery cache
 * The deduplicator only needs Marker, metrics and health use the rest
 */

// Marker records delivery ids that have been seen
type Marker interface {
	/* MarkIfAbsent stores id with the given TTL only if it is not stored yet
	 * Returns true when this call created the record
	 */
	MarkIfAbsent(ctx context.Context, id string, ttl time.Duration) (bool, error)
}

// Counter reports how many delivery ids are currently tracked
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// Pinger checks that the cache is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

type Store interface {
	Marker
	Counter
	Pinger
	Close(ctx context.Context) error
}
