package mocks

import (
	"fmt"

	"github.com/mcoot/quiplash-go/internal/dependencies/ident"
)

// MockIdent is a mock implementation of the ID generator for testing
// Queued IDs are returned in order; once exhausted it falls back to a
// deterministic counter
type MockIdent struct {
	queued  []string
	counter int
}

// Ensure MockIdent implements Generator
var _ ident.Generator = (*MockIdent)(nil)

// NewMockIdent creates an empty MockIdent
func NewMockIdent() *MockIdent {
	return &MockIdent{}
}

// QueueID queues IDs to be returned by subsequent NewID calls
func (g *MockIdent) QueueID(ids ...string) {
	g.queued = append(g.queued, ids...)
}

// NewID returns the next queued ID, or a generated sequential one
func (g *MockIdent) NewID() string {
	if len(g.queued) > 0 {
		id := g.queued[0]
		g.queued = g.queued[1:]
		return id
	}
	g.counter++
	return fmt.Sprintf("id-%04d", g.counter)
}
