package jira

import (
	"context"
	"fmt"
	"time"

	"github.com/andygrunwald/go-jira"
	"github.com/marcelsud/jira-relay/ticket"
)

/* Jira implementation of ticket.Tracker
 * Basic auth with the account e-mail and an API token
 */

const httpTimeout = 30 * time.Second

type Client struct {
	client *jira.Client
}

// NewClient creates a Jira client for the server at baseURL
func NewClient(baseURL, user, apiToken string) (*Client, error) {
	transport := jira.BasicAuthTransport{
		Username: user,
		Password: apiToken,
	}
	httpClient := transport.Client()
	httpClient.Timeout = httpTimeout

	client, err := jira.NewClient(httpClient, baseURL)
	if err != nil {
		return nil, fmt.Errorf("creating Jira client: %w", err)
	}

	return &Client{
		client: client,
	}, nil
}

// CreateIssue creates the ticket and returns its key
func (c *Client) CreateIssue(ctx context.Context, req ticket.Request) (string, error) {
	issue := &jira.Issue{
		Fields: &jira.IssueFields{
			Project:     jira.Project{Key: req.ProjectKey},
			Summary:     req.Summary,
			Description: req.Description,
			Type:        jira.IssueType{Name: req.IssueType},
			Duedate:     jira.Date(req.DueDate),
		},
	}

	created, resp, err := c.client.Issue.CreateWithContext(ctx, issue)
	if err != nil {
		return "", fmt.Errorf("creating Jira issue in %s: %w", req.ProjectKey, describe(resp, err))
	}
	if created == nil || created.Key == "" {
		return "", fmt.Errorf("creating Jira issue in %s: response has no issue key", req.ProjectKey)
	}

	return created.Key, nil
}

// describe adds the status and the field validation messages Jira
// answered with. The body is left open by go-jira on errors.
func describe(resp *jira.Response, err error) error {
	if resp == nil || resp.Response == nil {
		return err
	}
	defer resp.Body.Close()

	return fmt.Errorf("status=%d: %w", resp.StatusCode, jira.NewJiraError(resp, err))
}

var _ ticket.Tracker = (*Client)(nil)
