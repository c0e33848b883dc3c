package metrics_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliveryredis "github.com/marcelsud/jira-relay/delivery/redis"
	"github.com/marcelsud/jira-relay/metrics"
	"github.com/marcelsud/jira-relay/webhook"
)

func setupStore(t *testing.T) (*miniredis.Miniredis, *deliveryredis.Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, deliveryredis.NewStoreFromClient(client)
}

func scrape(t *testing.T, exporter *metrics.OTelExporter) string {
	t.Helper()
	rec := httptest.NewRecorder()
	exporter.ServeHTTP().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestStoreCollector(t *testing.T) {
	ctx := context.Background()

	t.Run("counts tracked deliveries", func(t *testing.T) {
		_, store := setupStore(t)
		for _, id := range []string{"a", "b", "c"} {
			_, err := store.MarkIfAbsent(ctx, id, time.Hour)
			require.NoError(t, err)
		}

		collector := metrics.NewStoreCollector(store, store)
		snapshot, err := collector.Collect(ctx)

		require.NoError(t, err)
		assert.True(t, snapshot.CacheReachable)
		assert.Equal(t, int64(3), snapshot.TrackedDeliveries)
		assert.False(t, snapshot.Timestamp.IsZero())
	})

	t.Run("unreachable cache is reported, not returned", func(t *testing.T) {
		mr, store := setupStore(t)
		mr.Close()

		collector := metrics.NewStoreCollector(store, store)
		snapshot, err := collector.Collect(ctx)

		require.NoError(t, err)
		assert.False(t, snapshot.CacheReachable)

		_, err = collector.TrackedDeliveries(ctx)
		assert.Error(t, err)
	})
}

func TestOTelExporter(t *testing.T) {
	ctx := context.Background()

	t.Run("exposes pipeline counters", func(t *testing.T) {
		exporter, err := metrics.NewOTelExporter(nil)
		require.NoError(t, err)
		defer exporter.Shutdown(ctx)

		exporter.RecordOutcome(ctx, webhook.Created)
		exporter.RecordOutcome(ctx, webhook.Created)
		exporter.RecordOutcome(ctx, webhook.Unauthorized)
		exporter.RecordDedupDegraded(ctx)
		exporter.RecordCommentFailure(ctx)

		body := scrape(t, exporter)

		assert.Contains(t, body, "webhook_requests")
		assert.Contains(t, body, `outcome="created"`)
		assert.Contains(t, body, `outcome="unauthorized"`)
		assert.Contains(t, body, "webhook_dedup_degraded")
		assert.Contains(t, body, "webhook_comment_failures")
	})

	t.Run("observes tracked deliveries from the store", func(t *testing.T) {
		_, store := setupStore(t)
		_, err := store.MarkIfAbsent(ctx, "delivery-1", time.Hour)
		require.NoError(t, err)

		exporter, err := metrics.NewOTelExporter(metrics.NewStoreCollector(store, store))
		require.NoError(t, err)
		defer exporter.Shutdown(ctx)

		body := scrape(t, exporter)

		assert.Contains(t, body, "webhook_deliveries_tracked")
	})

	t.Run("separate exporters do not collide", func(t *testing.T) {
		first, err := metrics.NewOTelExporter(nil)
		require.NoError(t, err)
		defer first.Shutdown(ctx)

		second, err := metrics.NewOTelExporter(nil)
		require.NoError(t, err)
		defer second.Shutdown(ctx)
	})
}
