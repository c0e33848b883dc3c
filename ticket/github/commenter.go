package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v72/github"
	"github.com/marcelsud/jira-relay/ticket"
)

/* GitHub implementation of ticket.Commenter
 * Comments are posted to the API URL carried by the webhook payload,
 * so GitHub Enterprise installations work without extra configuration
 */

const httpTimeout = 30 * time.Second

type Commenter struct {
	client *github.Client
}

// NewCommenter creates a commenter authenticated with a personal access token
func NewCommenter(token string) *Commenter {
	httpClient := &http.Client{Timeout: httpTimeout}

	return &Commenter{
		client: github.NewClient(httpClient).WithAuthToken(token),
	}
}

// PostComment posts body as a new comment on the issue at issueAPIURL
func (c *Commenter) PostComment(ctx context.Context, issueAPIURL, body string) error {
	if issueAPIURL == "" {
		return fmt.Errorf("posting comment: issue API URL is empty")
	}

	url := strings.TrimRight(issueAPIURL, "/") + "/comments"
	req, err := c.client.NewRequest(http.MethodPost, url, &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		return fmt.Errorf("building comment request: %w", err)
	}

	var comment github.IssueComment
	if _, err := c.client.Do(ctx, req, &comment); err != nil {
		return fmt.Errorf("posting comment to %s: %w", url, err)
	}

	return nil
}

var _ ticket.Commenter = (*Commenter)(nil)
