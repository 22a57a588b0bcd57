package mocks

import (
	"fmt"

	"github.com/SK1028846/fantasy-football-pipeline/internal/dependencies/ident"
)

// MockGenerator is a mock implementation of ident.Generator for testing.
// Queued IDs are returned first; after the queue drains it falls back to a
// deterministic sequence.
type MockGenerator struct {
	queue []string
	next  int
}

// Ensure MockGenerator implements Generator
var _ ident.Generator = (*MockGenerator)(nil)

// NewMockGenerator creates an empty MockGenerator
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// QueueID adds IDs to be returned by subsequent NewID calls
func (g *MockGenerator) QueueID(ids ...string) {
	g.queue = append(g.queue, ids...)
}

// NewID returns the next queued ID, or a sequential fallback
func (g *MockGenerator) NewID() string {
	if len(g.queue) > 0 {
		id := g.queue[0]
		g.queue = g.queue[1:]
		return id
	}
	g.next++
	return fmt.Sprintf("%04d", g.next)
}
