package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/flip7/internal/common/uuid UUID

// UUID generates the identifiers of games, scores and players
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface with random (v4) UUIDs
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}
