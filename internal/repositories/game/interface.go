package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/flip7/internal/repositories/game Repository

import (
	"context"
)

// Repository defines the interface for persisting the game collection.
// The whole collection lives in a single slot and is always read and
// written in full.
type Repository interface {
	// SaveGames overwrites the stored collection
	SaveGames(ctx context.Context, input *SaveGamesInput) error

	// LoadGames reads the stored collection
	LoadGames(ctx context.Context) (*LoadGamesOutput, error)
}
