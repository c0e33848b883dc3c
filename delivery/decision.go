package delivery

import "fmt"

/* Decision is the verdict of the deduplicator for one webhook delivery
 * Proceed lets the pipeline continue, Duplicate short-circuits it
 */
type Decision int

const (
	Proceed Decision = iota + 1
	Duplicate
)

// String returns the string representation of the decision
func (d Decision) String() string {
	switch d {
	case Proceed:
		return "proceed"
	case Duplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// Validate checks if the decision is valid
func (d Decision) Validate() error {
	if d != Proceed && d != Duplicate {
		return fmt.Errorf("invalid decision: %d", d)
	}
	return nil
}
