package game

import (
	"context"

	"github.com/KirkDiggler/flip7/internal/models"
)

// Service defines the game store: the in-memory game collection and the
// commands that change it. Commands apply synchronously and queue a save of
// the whole collection; they never wait for that save.
type Service interface {
	// Load replaces the collection with the saved one.
	// Storage problems are logged and leave the collection as it was.
	Load(ctx context.Context)

	// Games returns a copy of every game in creation order
	Games() []models.Game

	// GetGame returns a copy of one game
	GetGame(gameID string) (*models.Game, bool)

	// CreateGame appends a new game to the collection
	CreateGame(input *CreateGameInput) *CreateGameOutput

	// UpdateGame merges fields into a game
	UpdateGame(input *UpdateGameInput) *UpdateGameOutput

	// DeleteGame removes a game
	DeleteGame(input *DeleteGameInput) *DeleteGameOutput

	// AddScore records a player's score for a round and checks whether the game finished
	AddScore(input *AddScoreInput) *AddScoreOutput

	// UpdateScore changes the value of a score and checks whether the game finished
	UpdateScore(input *UpdateScoreInput) *UpdateScoreOutput

	// DeleteScore removes a score. A finished game stays finished.
	DeleteScore(input *DeleteScoreInput) *DeleteScoreOutput

	// SaveRound records every player's score for a round, updating the
	// scores already recorded for it
	SaveRound(input *SaveRoundInput) *SaveRoundOutput

	// DeleteRound removes every score of a round. A finished game stays finished.
	DeleteRound(input *DeleteRoundInput) *DeleteRoundOutput

	// Flush waits until the collection as of this call has been handed to storage
	Flush(ctx context.Context) error

	// Close flushes pending saves and stops saving
	Close(ctx context.Context) error
}
