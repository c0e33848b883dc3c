package webhook

import (
	"context"
	"errors"

	"github.com/google/go-github/v72/github"
	"github.com/marcelsud/jira-relay/delivery"
	"github.com/marcelsud/jira-relay/ticket"
	"github.com/marcelsud/jira-relay/trigger"
	"github.com/marcelsud/jira-relay/webhook/payload"
	"github.com/marcelsud/jira-relay/webhook/signature"
	"github.com/rs/zerolog"
)

/* Service represents the webhook pipeline
 * Uses pointer semantics as it's an API, not data
 */

// Deduplicator decides whether a delivery was already handled
type Deduplicator interface {
	ShouldProcess(ctx context.Context, deliveryID string) delivery.Decision
}

// Detector finds the trigger in a parsed event
type Detector interface {
	Detect(event *github.IssueCommentEvent) (trigger.Fields, bool, error)
}

// OutcomeRecorder is notified of every pipeline outcome
type OutcomeRecorder interface {
	RecordOutcome(ctx context.Context, outcome Outcome)
}

// UseCase defines the operation the HTTP layer drives
type UseCase interface {
	Process(ctx context.Context, req Request) Result
}

// Result is what the pipeline hands back to the transport
type Result struct {
	Outcome   Outcome
	TicketKey string // set on Created
	Err       error  // set on Malformed and Failed
}

type Service struct {
	secret   []byte
	dedup    Deduplicator
	detector Detector
	tickets  ticket.UseCase
	logger   zerolog.Logger
	recorder OutcomeRecorder
}

// NewService creates a new webhook service with dependency injection.
// recorder may be nil.
func NewService(secret []byte, dedup Deduplicator, detector Detector, tickets ticket.UseCase, logger zerolog.Logger, recorder OutcomeRecorder) *Service {
	return &Service{
		secret:   secret,
		dedup:    dedup,
		detector: detector,
		tickets:  tickets,
		logger:   logger,
		recorder: recorder,
	}
}

// Process runs one webhook request through dedup, signature check,
// trigger detection and ticket creation, strictly in that order. Each
// stage that short-circuits prevents every later stage.
func (s *Service) Process(ctx context.Context, req Request) Result {
	result := s.process(ctx, req)
	if s.recorder != nil {
		s.recorder.RecordOutcome(ctx, result.Outcome)
	}
	return result
}

func (s *Service) process(ctx context.Context, req Request) Result {
	deliveryID := req.DeliveryID()
	logger := s.logger.With().
		Str("delivery_id", deliveryID).
		Str("event", req.Header(EventHeader)).
		Logger()
	ctx = logger.WithContext(ctx)

	logger.Info().Msg("received webhook request from GitHub")

	if s.dedup.ShouldProcess(ctx, deliveryID) == delivery.Duplicate {
		return Result{Outcome: Duplicate}
	}

	if !signature.Verify(s.secret, req.Body, req.Header(signature.Header)) {
		logger.Warn().Str("stage", "signature").Msg("invalid webhook signature")
		return Result{Outcome: Unauthorized}
	}

	event, err := payload.Parse(req.Body)
	if err != nil {
		logger.Warn().Err(err).Str("stage", "parse").Msg("rejecting malformed payload")
		return Result{Outcome: Malformed, Err: err}
	}

	fields, found, err := s.detector.Detect(event)
	if err != nil {
		if errors.Is(err, payload.ErrMalformed) {
			logger.Warn().Err(err).Str("stage", "trigger").Msg("rejecting malformed payload")
			return Result{Outcome: Malformed, Err: err}
		}
		logger.Error().Err(err).Str("stage", "trigger").Msg("failed to process webhook")
		return Result{Outcome: Failed, Err: err}
	}
	if !found {
		logger.Info().Str("stage", "trigger").Msg("no trigger keyword found, skipping")
		return Result{Outcome: Ignored}
	}

	logger.Info().
		Str("stage", "trigger").
		Str("commenter", fields.Commenter).
		Str("issue_url", fields.IssueHTMLURL).
		Msg("trigger keyword found")

	created, err := s.tickets.CreateFromTrigger(ctx, fields)
	if err != nil {
		logger.Error().Err(err).Str("stage", "ticket").Msg("failed to create Jira issue")
		return Result{Outcome: Failed, Err: err}
	}

	logger.Info().
		Str("stage", "ticket").
		Str("jira_key", created.Ticket.Key).
		Bool("comment_posted", created.CommentPosted()).
		Msg("created Jira issue")

	return Result{Outcome: Created, TicketKey: created.Ticket.Key}
}
