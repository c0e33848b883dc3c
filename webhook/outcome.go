package webhook

import "fmt"

/* Outcome is where a webhook request left the pipeline
 * Follows the flow: Duplicate | Unauthorized | Malformed | Ignored | Created | Failed
 */
type Outcome int

const (
	Duplicate Outcome = iota + 1
	Unauthorized
	Malformed
	Ignored
	Created
	Failed
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case Duplicate:
		return "duplicate"
	case Unauthorized:
		return "unauthorized"
	case Malformed:
		return "malformed"
	case Ignored:
		return "ignored"
	case Created:
		return "created"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Validate checks if the outcome is valid
func (o Outcome) Validate() error {
	if o < Duplicate || o > Failed {
		return fmt.Errorf("invalid outcome: %d", o)
	}
	return nil
}

// IsSuccess returns true if the request was handled without error
func (o Outcome) IsSuccess() bool {
	return o == Duplicate || o == Ignored || o == Created
}
