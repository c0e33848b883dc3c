package chi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/jira-relay/metrics"
	"github.com/marcelsud/jira-relay/webhook"
	"github.com/rs/zerolog"
)

const requestTimeout = 30 * time.Second

// WebhookHandlers sets up the relay API routes.
// health and metricsHandler may be nil.
func WebhookHandlers(webhookService webhook.UseCase, health metrics.Collector, metricsHandler http.Handler, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))

		r.Get("/health", getHealth(health).ServeHTTP)
		if metricsHandler != nil {
			r.Method(http.MethodGet, "/metrics", metricsHandler)
		}
	})

	// No deadline here: a cancelled tracker call could still create the
	// ticket after the delivery id was spent. The Jira and GitHub clients
	// carry their own timeouts.
	r.Post("/create_jira", postCreateJira(webhookService, logger).ServeHTTP)

	return r
}
