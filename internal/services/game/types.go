package game

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/flip7/internal/common/clock"
	"github.com/KirkDiggler/flip7/internal/common/uuid"
	"github.com/KirkDiggler/flip7/internal/models"
	gameRepo "github.com/KirkDiggler/flip7/internal/repositories/game"
)

// Config holds configuration for the game service
type Config struct {
	// Repository stores the game collection
	GameRepo gameRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger receives storage failures, slog.Default() when nil
	Logger *slog.Logger
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// Name is the optional label of the game
	Name string

	// Players are the players of the game, in display order
	Players []models.Player

	// InitialScores are scores the game starts with
	InitialScores []models.Score
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	// Game is the created game
	Game *models.Game
}

// GamePatch lists the fields UpdateGame may change. Nil fields are left alone.
type GamePatch struct {
	Name *string

	// FinishedAt and WinnerID only apply to a game that has not finished yet
	FinishedAt *time.Time
	WinnerID   *string
}

// UpdateGameInput contains parameters for updating a game
type UpdateGameInput struct {
	GameID string
	Patch  GamePatch
}

// UpdateGameOutput contains the result of updating a game
type UpdateGameOutput struct {
	// Game is the updated game, nil when no game has the ID
	Game *models.Game
}

// DeleteGameInput contains parameters for deleting a game
type DeleteGameInput struct {
	GameID string
}

// DeleteGameOutput contains the result of deleting a game
type DeleteGameOutput struct {
	// Deleted is false when no game had the ID
	Deleted bool
}

// AddScoreInput contains parameters for adding a score
type AddScoreInput struct {
	GameID   string
	Round    int
	PlayerID string
	Value    int
}

// AddScoreOutput contains the result of adding a score
type AddScoreOutput struct {
	// Score is the new score, nil when no game has the ID
	Score *models.Score

	// Game is the updated game, nil when no game has the ID
	Game *models.Game

	// Finished indicates this score finished the game
	Finished bool
}

// UpdateScoreInput contains parameters for changing a score
type UpdateScoreInput struct {
	GameID  string
	ScoreID string
	Value   int
}

// UpdateScoreOutput contains the result of changing a score
type UpdateScoreOutput struct {
	// Game is the updated game, nil when no game has the ID
	Game *models.Game

	// Updated is false when the game has no score with the ID
	Updated bool

	// Finished indicates this change finished the game
	Finished bool
}

// DeleteScoreInput contains parameters for deleting a score
type DeleteScoreInput struct {
	GameID  string
	ScoreID string
}

// DeleteScoreOutput contains the result of deleting a score
type DeleteScoreOutput struct {
	// Game is the updated game, nil when no game has the ID
	Game *models.Game

	// Deleted is false when the game has no score with the ID
	Deleted bool
}

// SaveRoundInput contains parameters for saving a whole round
type SaveRoundInput struct {
	GameID string
	Round  int

	// Values maps player IDs to their score for the round.
	// Players without a value are left untouched.
	Values map[string]int
}

// SaveRoundOutput contains the result of saving a round
type SaveRoundOutput struct {
	// Game is the updated game, nil when no game has the ID
	Game *models.Game

	// Added are the scores created for players with no score in the round yet
	Added []models.Score

	// Updated are the existing scores that were given a new value
	Updated []models.Score

	// Finished indicates this round finished the game
	Finished bool
}

// DeleteRoundInput contains parameters for deleting a round
type DeleteRoundInput struct {
	GameID string
	Round  int
}

// DeleteRoundOutput contains the result of deleting a round
type DeleteRoundOutput struct {
	// Game is the updated game, nil when no game has the ID
	Game *models.Game

	// Deleted is the number of scores removed
	Deleted int
}
