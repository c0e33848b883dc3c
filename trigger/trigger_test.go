package trigger_test

import (
	"errors"
	"testing"

	"github.com/marcelsud/jira-relay/trigger"
	"github.com/marcelsud/jira-relay/webhook/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const issueJSON = `"issue": {
	"title": "Bug X",
	"html_url": "https://gh/1",
	"url": "https://api.gh/1",
	"body": "desc\n/jira\nmore",
	"user": {"login": "alice"}
}`

func TestDetect(t *testing.T) {
	detector := trigger.NewDetector("")

	t.Run("fires on keyword, case-insensitive", func(t *testing.T) {
		event, err := payload.Parse([]byte(`{"comment": {"body": "please file /JIRA now"}, ` + issueJSON + `}`))
		require.NoError(t, err)

		fields, found, err := detector.Detect(event)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, trigger.Fields{
			IssueTitle:   "Bug X",
			IssueHTMLURL: "https://gh/1",
			IssueAPIURL:  "https://api.gh/1",
			Commenter:    "alice",
			IssueBody:    "desc\nmore",
		}, fields)
	})

	t.Run("no keyword", func(t *testing.T) {
		event, err := payload.Parse([]byte(`{"comment": {"body": "no trigger here"}, ` + issueJSON + `}`))
		require.NoError(t, err)

		_, found, err := detector.Detect(event)

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("no comment object", func(t *testing.T) {
		event, err := payload.Parse([]byte(`{` + issueJSON + `}`))
		require.NoError(t, err)

		_, found, err := detector.Detect(event)

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("comment without body", func(t *testing.T) {
		event, err := payload.Parse([]byte(`{"comment": {}, ` + issueJSON + `}`))
		require.NoError(t, err)

		_, found, err := detector.Detect(event)

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("nil event", func(t *testing.T) {
		_, found, err := detector.Detect(nil)

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("trigger without issue is malformed", func(t *testing.T) {
		event, err := payload.Parse([]byte(`{"comment": {"body": "/jira"}}`))
		require.NoError(t, err)

		_, found, err := detector.Detect(event)

		require.Error(t, err)
		assert.True(t, found)
		assert.True(t, errors.Is(err, payload.ErrMalformed))
	})

	t.Run("trigger on issue without description", func(t *testing.T) {
		event, err := payload.Parse([]byte(`{"comment": {"body": "/jira"}, "issue": {"title": "t", "html_url": "h", "url": "u", "body": null, "user": {"login": "bob"}}}`))
		require.NoError(t, err)

		fields, found, err := detector.Detect(event)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Empty(t, fields.IssueBody)
		assert.Equal(t, "bob", fields.Commenter)
	})

	t.Run("custom keyword", func(t *testing.T) {
		custom := trigger.NewDetector("  /Ticket ")
		event, err := payload.Parse([]byte(`{"comment": {"body": "/ticket"}, ` + issueJSON + `}`))
		require.NoError(t, err)

		fields, found, err := custom.Detect(event)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "/ticket", custom.Keyword())
		assert.Equal(t, "desc\n/jira\nmore", fields.IssueBody)
	})
}

func TestSanitize(t *testing.T) {
	detector := trigger.NewDetector(trigger.DefaultKeyword)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"drops only the trigger line", "line one\nplease /jira this\nline three", "line one\nline three"},
		{"case-insensitive", "a\n/JIRA\nb", "a\nb"},
		{"windows line endings", "a\r\n/jira\r\nb", "a\nb"},
		{"trailing newline", "a\nb\n", "a\nb"},
		{"keeps blank lines", "a\n\nb", "a\n\nb"},
		{"all lines are triggers", "/jira\n/Jira", ""},
		{"empty body", "", ""},
		{"no trigger", "just text", "just text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.Sanitize(tt.body))
		})
	}
}
