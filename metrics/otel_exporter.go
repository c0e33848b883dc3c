package metrics

import (
	"context"
	"fmt"
	"net/http"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/marcelsud/jira-relay/webhook"
)

const meterName = "jira-relay"

// OTelExporter provides OpenTelemetry metrics export following OTel standards.
// It also records the events the pipeline reports.
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	registry      *promclient.Registry
	collector     Collector

	// OTel meters and instruments
	meter           metric.Meter
	requests        metric.Int64Counter
	dedupDegraded   metric.Int64Counter
	commentFailures metric.Int64Counter
	trackedGauge    metric.Int64ObservableGauge
}

// NewOTelExporter creates a new OpenTelemetry metrics exporter with Prometheus format.
// collector may be nil, in which case the tracked deliveries gauge reports nothing.
func NewOTelExporter(collector Collector) (*OTelExporter, error) {
	registry := promclient.NewRegistry()

	// Create Prometheus exporter
	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	// Create meter provider
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	// Create meter with service info
	meter := meterProvider.Meter(
		meterName,
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		registry:      registry,
		collector:     collector,
		meter:         meter,
	}

	// Register metrics instruments
	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

// registerInstruments creates and registers all OpenTelemetry metric instruments
func (oe *OTelExporter) registerInstruments() error {
	var err error

	oe.requests, err = oe.meter.Int64Counter(
		"webhook.requests",
		metric.WithDescription("Webhook requests by pipeline outcome"),
		metric.WithUnit("{requests}"),
	)
	if err != nil {
		return fmt.Errorf("creating requests counter: %w", err)
	}

	oe.dedupDegraded, err = oe.meter.Int64Counter(
		"webhook.dedup.degraded",
		metric.WithDescription("Requests processed without deduplication because the cache failed"),
		metric.WithUnit("{requests}"),
	)
	if err != nil {
		return fmt.Errorf("creating dedup degraded counter: %w", err)
	}

	oe.commentFailures, err = oe.meter.Int64Counter(
		"webhook.comment.failures",
		metric.WithDescription("Confirmation comments that could not be posted to GitHub"),
		metric.WithUnit("{comments}"),
	)
	if err != nil {
		return fmt.Errorf("creating comment failures counter: %w", err)
	}

	oe.trackedGauge, err = oe.meter.Int64ObservableGauge(
		"webhook.deliveries.tracked",
		metric.WithDescription("Delivery ids currently held in the dedup cache"),
		metric.WithUnit("{deliveries}"),
		metric.WithInt64Callback(oe.observeTrackedDeliveries),
	)
	if err != nil {
		return fmt.Errorf("creating tracked deliveries gauge: %w", err)
	}

	return nil
}

// observeTrackedDeliveries is a callback that reports the cache size
func (oe *OTelExporter) observeTrackedDeliveries(ctx context.Context, observer metric.Int64Observer) error {
	if oe.collector == nil {
		return nil
	}

	tracked, err := oe.collector.TrackedDeliveries(ctx)
	if err != nil {
		return err
	}

	observer.Observe(tracked)
	return nil
}

// RecordOutcome counts one request under its outcome
func (oe *OTelExporter) RecordOutcome(ctx context.Context, outcome webhook.Outcome) {
	oe.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome.String()),
	))
}

// RecordDedupDegraded counts a request that skipped deduplication
func (oe *OTelExporter) RecordDedupDegraded(ctx context.Context) {
	oe.dedupDegraded.Add(ctx, 1)
}

// RecordCommentFailure counts a lost confirmation comment
func (oe *OTelExporter) RecordCommentFailure(ctx context.Context) {
	oe.commentFailures.Add(ctx, 1)
}

// ServeHTTP serves Prometheus-formatted metrics on the given HTTP handler
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return promhttp.HandlerFor(oe.registry, promhttp.HandlerOpts{})
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
