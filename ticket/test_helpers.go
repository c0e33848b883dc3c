package ticket

import "github.com/stretchr/testify/mock"

// MatchRequest creates a custom matcher for ticket request arguments in mocks
func MatchRequest(matcher func(Request) bool) interface{} {
	return mock.MatchedBy(matcher)
}
