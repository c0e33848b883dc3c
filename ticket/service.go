package ticket

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/marcelsud/jira-relay/trigger"
	"github.com/rs/zerolog"
)

const (
	// DefaultIssueType is the issue type name used when none is configured
	DefaultIssueType = "Issue"

	// DefaultDueIn is how far ahead of creation the due date is set
	DefaultDueIn = 7 * 24 * time.Hour

	summaryPrefix = "[GitHub] "
)

// CommentFailureRecorder is notified when a confirmation comment is lost
type CommentFailureRecorder interface {
	RecordCommentFailure(ctx context.Context)
}

// UseCase defines the ticket operations the webhook pipeline needs
type UseCase interface {
	CreateFromTrigger(ctx context.Context, fields trigger.Fields) (Result, error)
}

// Options configures a Service
type Options struct {
	ProjectKey string
	IssueType  string
	ServerURL  string // tracker base URL, browse links are built from it
	DueIn      time.Duration
	Now        func() time.Time
	Recorder   CommentFailureRecorder
}

/* Service represents the ticket orchestration layer
 * Uses pointer semantics as it's an API, not data
 */
type Service struct {
	tracker   Tracker
	commenter Commenter
	opts      Options
	logger    zerolog.Logger
}

// NewService creates a new ticket service with dependency injection
func NewService(tracker Tracker, commenter Commenter, opts Options, logger zerolog.Logger) *Service {
	if opts.IssueType == "" {
		opts.IssueType = DefaultIssueType
	}
	if opts.DueIn <= 0 {
		opts.DueIn = DefaultDueIn
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	opts.ServerURL = strings.TrimRight(opts.ServerURL, "/")

	return &Service{
		tracker:   tracker,
		commenter: commenter,
		opts:      opts,
		logger:    logger,
	}
}

// CreateFromTrigger opens a ticket for the triggering issue and confirms
// it on the issue. Only the ticket creation can fail the call; a lost
// confirmation is reported through Result.CommentErr.
func (s *Service) CreateFromTrigger(ctx context.Context, fields trigger.Fields) (Result, error) {
	req := s.BuildRequest(fields)

	key, err := s.tracker.CreateIssue(ctx, req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: creating ticket for %s: %v", ErrTracker, fields.IssueHTMLURL, err)
	}

	ref := Reference{
		Key:       key,
		BrowseURL: s.BrowseURL(key),
	}
	result := Result{Ticket: ref}

	if err := s.commenter.PostComment(ctx, fields.IssueAPIURL, ConfirmationMessage(ref)); err != nil {
		result.CommentErr = fmt.Errorf("%w: posting confirmation for %s: %v", ErrCommentPost, key, err)
		s.log(ctx).Error().
			Err(result.CommentErr).
			Str("jira_key", key).
			Str("issue_url", fields.IssueAPIURL).
			Str("stage", "comment").
			Msg("ticket created but confirmation comment failed")
		if s.opts.Recorder != nil {
			s.opts.Recorder.RecordCommentFailure(ctx)
		}
	}

	return result, nil
}

// log returns the request-scoped logger carried by ctx, falling back to
// the service logger
func (s *Service) log(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &s.logger
}

// BuildRequest composes the tracker request for fields; the due date is
// taken from the clock at call time
func (s *Service) BuildRequest(fields trigger.Fields) Request {
	return Request{
		ProjectKey:  s.opts.ProjectKey,
		Summary:     Summary(fields),
		Description: Description(fields),
		IssueType:   s.opts.IssueType,
		DueDate:     s.opts.Now().Add(s.opts.DueIn),
	}
}

// BrowseURL returns the human link to a ticket
func (s *Service) BrowseURL(key string) string {
	return fmt.Sprintf("%s/browse/%s", s.opts.ServerURL, key)
}

// Summary returns the ticket title
func Summary(fields trigger.Fields) string {
	return summaryPrefix + fields.IssueTitle
}

// Description returns the ticket body: attribution, issue body, origin
func Description(fields trigger.Fields) string {
	sections := []string{
		fmt.Sprintf("*Ticket created via GitHub comment by %s*", fields.Commenter),
		fmt.Sprintf("*Original Issue Body:*\n%s", fields.IssueBody),
		fmt.Sprintf("*Created from GitHub issue:* %s", fields.IssueHTMLURL),
	}
	return strings.Join(sections, "\n\n")
}

// ConfirmationMessage returns the markdown comment posted back on the issue
func ConfirmationMessage(ref Reference) string {
	return fmt.Sprintf("**Jira Ticket created!**\nkey: [%s](%s)", ref.Key, ref.BrowseURL)
}
