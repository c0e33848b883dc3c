package webhook

import "net/http"

const (
	// DeliveryHeader carries GitHub's unique id for one delivery
	DeliveryHeader = "X-GitHub-Delivery"

	// EventHeader carries the GitHub event name (issue_comment, ping, ...)
	EventHeader = "X-GitHub-Event"
)

/* Request represents one received webhook call
 * Uses value semantics as it represents data, not behavior
 */
type Request struct {
	Body    []byte
	Headers map[string]string // canonical header keys
}

// NewRequest builds a Request keeping the first value of every header
func NewRequest(body []byte, header http.Header) Request {
	headers := make(map[string]string, len(header))
	for key, values := range header {
		if len(values) > 0 {
			headers[http.CanonicalHeaderKey(key)] = values[0]
		}
	}
	return Request{
		Body:    body,
		Headers: headers,
	}
}

// Header returns the value of the named header, case-insensitively
func (r Request) Header(name string) string {
	return r.Headers[http.CanonicalHeaderKey(name)]
}

// DeliveryID returns the GitHub delivery id, empty when absent
func (r Request) DeliveryID() string {
	return r.Header(DeliveryHeader)
}
