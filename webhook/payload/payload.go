package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/go-github/v72/github"
)

// ErrMalformed marks a body that does not have the issue_comment shape
var ErrMalformed = errors.New("malformed payload")

// Parse decodes a GitHub issue_comment webhook body.
// Only the JSON syntax and top-level shape are checked here; the issue
// fields are checked by ValidateIssue once a trigger has been found.
func Parse(data []byte) (*github.IssueCommentEvent, error) {
	var event github.IssueCommentEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("%w: unmarshaling issue_comment: %v", ErrMalformed, err)
	}
	return &event, nil
}

// HasComment reports whether the event carries a comment object
func HasComment(event *github.IssueCommentEvent) bool {
	return event != nil && event.Comment != nil
}

// ValidateIssue checks that every issue field needed to open a ticket
// is present. The issue body is optional: GitHub sends null for issues
// without a description.
func ValidateIssue(event *github.IssueCommentEvent) error {
	if event == nil || event.Issue == nil {
		return fmt.Errorf("%w: issue is required", ErrMalformed)
	}

	issue := event.Issue
	var missing []string
	if issue.Title == nil {
		missing = append(missing, "issue.title")
	}
	if issue.HTMLURL == nil || *issue.HTMLURL == "" {
		missing = append(missing, "issue.html_url")
	}
	if issue.URL == nil || *issue.URL == "" {
		missing = append(missing, "issue.url")
	}
	if issue.GetUser().GetLogin() == "" {
		missing = append(missing, "issue.user.login")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrMalformed, strings.Join(missing, ", "))
	}
	return nil
}
