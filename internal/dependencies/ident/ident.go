package ident

import "github.com/google/uuid"

// Generator produces unique identifiers and can be mocked for testing.
// Generated IDs must be unique; callers rely on them as tiebreakers when
// ordering records created at the same instant.
type Generator interface {
	NewID() string
}

// UUIDGenerator implements Generator using random UUIDs
type UUIDGenerator struct{}

// New creates a new UUIDGenerator
func New() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a random UUID string
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
