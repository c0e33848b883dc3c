package ticket

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrTracker wraps every failure to create the ticket
	ErrTracker = errors.New("tracker error")

	// ErrCommentPost wraps a failure to post the confirmation comment
	ErrCommentPost = errors.New("comment post error")
)

/* Request is what the tracker needs to open a ticket
 * Built per trigger event and consumed immediately
 */
type Request struct {
	ProjectKey  string
	Summary     string
	Description string
	IssueType   string
	DueDate     time.Time
}

// Reference identifies a created ticket
type Reference struct {
	Key       string
	BrowseURL string
}

/* Result is the two-phase outcome of an orchestration
 * Ticket is the primary result, CommentErr the secondary one
 */
type Result struct {
	Ticket     Reference
	CommentErr error
}

// CommentPosted reports whether the confirmation reached the issue
func (r Result) CommentPosted() bool {
	return r.CommentErr == nil
}

// Tracker creates tickets in the issue tracker
type Tracker interface {
	/* CreateIssue returns the key the tracker assigned
	 */
	CreateIssue(ctx context.Context, req Request) (string, error)
}

// Commenter posts comments on source-forge issues
type Commenter interface {
	/* PostComment posts body under {issueAPIURL}/comments
	 */
	PostComment(ctx context.Context, issueAPIURL, body string) error
}
