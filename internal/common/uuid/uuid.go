package uuid

import "github.com/google/uuid"

// Generator assigns identifiers to matches on their first save
//
//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/KirkDiggler/tysiac/internal/common/uuid Generator
type Generator interface {
	NewID() string
}

// Random generates version 4 UUIDs
type Random struct{}

func New() *Random {
	return &Random{}
}

// NewID returns a new random UUID string
func (r *Random) NewID() string {
	return uuid.New().String()
}
