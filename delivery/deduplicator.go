package delivery

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTTL is how long a delivery id is remembered
const DefaultTTL = 24 * time.Hour

// DegradationRecorder is notified every time deduplication is skipped
// because the cache failed
type DegradationRecorder interface {
	RecordDedupDegraded(ctx context.Context)
}

/* Deduplicator gives best-effort at-most-once processing per delivery id
 * It fails open: when the cache errors the delivery is processed anyway
 */
type Deduplicator struct {
	marker   Marker
	ttl      time.Duration
	logger   zerolog.Logger
	recorder DegradationRecorder
}

// NewDeduplicator creates a deduplicator backed by marker.
// A non-positive ttl falls back to DefaultTTL; recorder may be nil.
func NewDeduplicator(marker Marker, ttl time.Duration, logger zerolog.Logger, recorder DegradationRecorder) *Deduplicator {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Deduplicator{
		marker:   marker,
		ttl:      ttl,
		logger:   logger,
		recorder: recorder,
	}
}

// ShouldProcess decides whether the delivery must run through the pipeline.
// The first call for an id records it and returns Proceed, later calls
// within the TTL return Duplicate. Without an id there is nothing to
// deduplicate on.
func (d *Deduplicator) ShouldProcess(ctx context.Context, deliveryID string) Decision {
	if deliveryID == "" {
		return Proceed
	}

	marked, err := d.marker.MarkIfAbsent(ctx, deliveryID, d.ttl)
	if err != nil {
		d.logger.Error().
			Err(err).
			Str("delivery_id", deliveryID).
			Str("stage", "dedup").
			Msg("delivery cache unavailable, processing without deduplication")
		if d.recorder != nil {
			d.recorder.RecordDedupDegraded(ctx)
		}
		return Proceed
	}

	if !marked {
		d.logger.Warn().
			Str("delivery_id", deliveryID).
			Str("stage", "dedup").
			Msg("duplicate webhook delivery, skipping")
		return Duplicate
	}

	return Proceed
}
