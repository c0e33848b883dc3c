package trigger

import (
	"fmt"
	"strings"

	"github.com/google/go-github/v72/github"
	"github.com/marcelsud/jira-relay/webhook/payload"
)

// DefaultKeyword is the comment token that asks for a ticket
const DefaultKeyword = "/jira"

/* Fields are the parts of an issue_comment event a ticket is built from
 * Uses value semantics as it represents data, not behavior
 */
type Fields struct {
	IssueTitle   string
	IssueHTMLURL string // human link, quoted in the ticket
	IssueAPIURL  string // API link, comments are posted under it
	Commenter    string
	IssueBody    string // trigger lines removed
}

// Detector finds the trigger keyword in comment bodies
type Detector struct {
	keyword string
}

// NewDetector creates a detector for keyword; an empty keyword means DefaultKeyword
func NewDetector(keyword string) *Detector {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		keyword = DefaultKeyword
	}
	return &Detector{
		keyword: strings.ToLower(keyword),
	}
}

// Keyword returns the lower-cased trigger keyword
func (d *Detector) Keyword() string {
	return d.keyword
}

// Detect reports whether the event's comment contains the keyword,
// case-insensitively. On a trigger it returns the ticket fields, or an
// error wrapping payload.ErrMalformed when the issue is incomplete.
func (d *Detector) Detect(event *github.IssueCommentEvent) (Fields, bool, error) {
	if !payload.HasComment(event) {
		return Fields{}, false, nil
	}
	if !d.contains(event.GetComment().GetBody()) {
		return Fields{}, false, nil
	}

	if err := payload.ValidateIssue(event); err != nil {
		return Fields{}, true, fmt.Errorf("extracting trigger fields: %w", err)
	}

	issue := event.GetIssue()
	return Fields{
		IssueTitle:   issue.GetTitle(),
		IssueHTMLURL: issue.GetHTMLURL(),
		IssueAPIURL:  issue.GetURL(),
		Commenter:    issue.GetUser().GetLogin(),
		IssueBody:    d.Sanitize(issue.GetBody()),
	}, true, nil
}

// Sanitize drops every line of body that contains the keyword so the
// trigger itself is not copied into the ticket
func (d *Detector) Sanitize(body string) string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	body = strings.TrimSuffix(body, "\n")
	if body == "" {
		return ""
	}

	lines := strings.Split(body, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if d.contains(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func (d *Detector) contains(text string) bool {
	return strings.Contains(strings.ToLower(text), d.keyword)
}
