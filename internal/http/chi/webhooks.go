package chi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/marcelsud/jira-relay/metrics"
	"github.com/marcelsud/jira-relay/webhook"
	"github.com/rs/zerolog"
)

// MaxBodyBytes bounds a webhook payload, matching GitHub's own 25 MB cap
const MaxBodyBytes = 25 << 20

/* HTTP layer DTOs for the relay API
 * Separate from domain entities to avoid leaking internal structure
 */

type ignoredResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type createdResponse struct {
	Status  string `json:"status"`
	JiraKey string `json:"jira_key"`
}

type healthResponse struct {
	Status            string `json:"status"`
	Cache             bool   `json:"cache"`
	TrackedDeliveries int64  `json:"tracked_deliveries"`
}

// postCreateJira handles POST /create_jira
func postCreateJira(webhookService webhook.UseCase, logger zerolog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := logger.With().
			Str("delivery_id", r.Header.Get(webhook.DeliveryHeader)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Logger()

		defer func() {
			if rec := recover(); rec != nil {
				logger.Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("unhandled panic while processing webhook")
				internalError(w)
			}
		}()

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				logger.Warn().Err(err).Str("stage", "read").Msg("rejecting oversized payload")
				http.Error(w, "payload too large", http.StatusRequestEntityTooLarge)
				return
			}
			logger.Warn().Err(err).Str("stage", "read").Msg("failed to read request body")
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		result := webhookService.Process(r.Context(), webhook.NewRequest(body, r.Header))

		switch result.Outcome {
		case webhook.Duplicate:
			writeJSON(w, http.StatusOK, ignoredResponse{Status: "ignored", Reason: "duplicate request"})
		case webhook.Unauthorized:
			http.Error(w, "Invalid Signature", http.StatusForbidden)
		case webhook.Malformed:
			message := "malformed payload"
			if result.Err != nil {
				message = result.Err.Error()
			}
			http.Error(w, message, http.StatusBadRequest)
		case webhook.Ignored:
			writeJSON(w, http.StatusOK, ignoredResponse{Status: "ignored", Reason: "no keyword"})
		case webhook.Created:
			writeJSON(w, http.StatusCreated, createdResponse{Status: "success", JiraKey: result.TicketKey})
		default:
			internalError(w)
		}
	})
}

// getHealth handles GET /health. The cache is optional, so an
// unreachable one is reported without failing the check.
func getHealth(collector metrics.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := healthResponse{Status: "healthy"}
		if collector != nil {
			// an error leaves the zero snapshot: cache reported down
			snapshot, _ := collector.Collect(r.Context())
			response.Cache = snapshot.CacheReachable
			response.TrackedDeliveries = snapshot.TrackedDeliveries
		}
		writeJSON(w, http.StatusOK, response)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func internalError(w http.ResponseWriter) {
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
