package payload

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("success - issue_comment payload", func(t *testing.T) {
		data := []byte(`{
			"action": "created",
			"comment": {"body": "/jira please"},
			"issue": {
				"title": "Bug X",
				"html_url": "https://gh/1",
				"url": "https://api.gh/1",
				"body": "desc",
				"user": {"login": "alice"}
			}
		}`)

		event, err := Parse(data)
		require.NoError(t, err)
		assert.Equal(t, "created", event.GetAction())
		assert.Equal(t, "/jira please", event.GetComment().GetBody())
		assert.Equal(t, "Bug X", event.GetIssue().GetTitle())
		assert.Equal(t, "https://gh/1", event.GetIssue().GetHTMLURL())
		assert.Equal(t, "https://api.gh/1", event.GetIssue().GetURL())
		assert.Equal(t, "alice", event.GetIssue().GetUser().GetLogin())
		assert.True(t, HasComment(event))
	})

	t.Run("success - no comment object", func(t *testing.T) {
		event, err := Parse([]byte(`{"action": "opened", "issue": {"title": "x"}}`))
		require.NoError(t, err)
		assert.False(t, HasComment(event))
	})

	t.Run("error - invalid JSON", func(t *testing.T) {
		_, err := Parse([]byte(`{"comment":`))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformed))
	})

	t.Run("error - empty body", func(t *testing.T) {
		_, err := Parse([]byte{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformed))
	})

	t.Run("error - not an object", func(t *testing.T) {
		_, err := Parse([]byte(`["comment"]`))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformed))
	})

	t.Run("error - wrong field type", func(t *testing.T) {
		_, err := Parse([]byte(`{"comment": {"body": 42}}`))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformed))
	})
}

func TestValidateIssue(t *testing.T) {
	t.Run("success - all fields", func(t *testing.T) {
		event, err := Parse([]byte(`{"issue": {"title": "t", "html_url": "h", "url": "u", "body": "b", "user": {"login": "alice"}}}`))
		require.NoError(t, err)
		assert.NoError(t, ValidateIssue(event))
	})

	t.Run("success - null body", func(t *testing.T) {
		event, err := Parse([]byte(`{"issue": {"title": "t", "html_url": "h", "url": "u", "body": null, "user": {"login": "alice"}}}`))
		require.NoError(t, err)
		assert.NoError(t, ValidateIssue(event))
	})

	t.Run("error - no issue", func(t *testing.T) {
		event, err := Parse([]byte(`{"comment": {"body": "/jira"}}`))
		require.NoError(t, err)

		err = ValidateIssue(event)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformed))
		assert.Contains(t, err.Error(), "issue is required")
	})

	t.Run("error - lists every missing field", func(t *testing.T) {
		event, err := Parse([]byte(`{"issue": {"body": "b"}}`))
		require.NoError(t, err)

		err = ValidateIssue(event)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformed))
		assert.Contains(t, err.Error(), "issue.title")
		assert.Contains(t, err.Error(), "issue.html_url")
		assert.Contains(t, err.Error(), "issue.url")
		assert.Contains(t, err.Error(), "issue.user.login")
	})

	t.Run("error - nil event", func(t *testing.T) {
		assert.True(t, errors.Is(ValidateIssue(nil), ErrMalformed))
	})
}
