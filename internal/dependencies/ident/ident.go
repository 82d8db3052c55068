package ident

import "github.com/google/uuid"

// Generator provides document ID generation that can be mocked for testing
type Generator interface {
	NewID() string
}

// UUIDGenerator implements Generator using random UUIDs
type UUIDGenerator struct{}

// New creates a new UUIDGenerator
func New() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a new random UUID string
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
