package game

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/flip7/internal/common/clock"
	"github.com/KirkDiggler/flip7/internal/common/uuid"
	"github.com/KirkDiggler/flip7/internal/models"
	gameRepo "github.com/KirkDiggler/flip7/internal/repositories/game"
)

// service implements the Service interface
type service struct {
	gameRepo      gameRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *slog.Logger
	persister     *persister

	// games is replaced, never modified in place
	mu    sync.RWMutex
	games []models.Game
}

var _ Service = (*service)(nil)

// New creates a new game service with an empty collection
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		gameRepo:      cfg.GameRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger,
		persister:     newPersister(cfg.GameRepo, logger),
		games:         []models.Game{},
	}, nil
}

// Load replaces the collection with the saved one
func (s *service) Load(ctx context.Context) {
	output, err := s.gameRepo.LoadGames(ctx)
	if err != nil {
		s.logger.Error("failed to load games", slog.String("error", err.Error()))
		return
	}

	if output == nil || !output.Found {
		s.logger.Info("no saved games")
		return
	}

	s.mu.Lock()
	s.games = output.Games
	s.mu.Unlock()

	s.logger.Info("games loaded", slog.Int("games", len(output.Games)))
}

// Games returns a copy of every game in creation order
func (s *service) Games() []models.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]models.Game, 0, len(s.games))
	for i := range s.games {
		games = append(games, s.games[i].Clone())
	}
	return games
}

// GetGame returns a copy of one game
func (s *service) GetGame(gameID string) (*models.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.games {
		if s.games[i].ID == gameID {
			return cloneGame(&s.games[i]), true
		}
	}
	return nil, false
}

// CreateGame appends a new game to the collection
func (s *service) CreateGame(input *CreateGameInput) *CreateGameOutput {
	if input == nil {
		return &CreateGameOutput{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	games, game := appendGame(s.games, input, s.uuidGenerator.NewUUID(), s.clock.Now())
	s.commit(games)

	return &CreateGameOutput{
		Game: cloneGame(game),
	}
}

// UpdateGame merges fields into a game
func (s *service) UpdateGame(input *UpdateGameInput) *UpdateGameOutput {
	if input == nil {
		return &UpdateGameOutput{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	games, game := patchGame(s.games, input.GameID, input.Patch, s.clock.Now())
	if game == nil {
		return &UpdateGameOutput{}
	}
	s.commit(games)

	return &UpdateGameOutput{
		Game: cloneGame(game),
	}
}

// DeleteGame removes a game
func (s *service) DeleteGame(input *DeleteGameInput) *DeleteGameOutput {
	if input == nil {
		return &DeleteGameOutput{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	games, deleted := removeGame(s.games, input.GameID)
	if !deleted {
		return &DeleteGameOutput{}
	}
	s.commit(games)

	return &DeleteGameOutput{
		Deleted: true,
	}
}

// AddScore records a player's score for a round
func (s *service) AddScore(input *AddScoreInput) *AddScoreOutput {
	if input == nil {
		return &AddScoreOutput{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	games, game, score, finished := appendScore(s.games, input, s.uuidGenerator.NewUUID(), s.clock.Now())
	if game == nil {
		return &AddScoreOutput{}
	}
	s.commit(games)

	if finished {
		s.logger.Info("game finished",
			slog.String("game_id", game.ID),
			slog.String("winner_id", game.WinnerID))
	}

	added := *score
	return &AddScoreOutput{
		Score:    &added,
		Game:     cloneGame(game),
		Finished: finished,
	}
}

// UpdateScore changes the value of a score
func (s *service) UpdateScore(input *UpdateScoreInput) *UpdateScoreOutput {
	if input == nil {
		return &UpdateScoreOutput{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	games, game, updated, finished := changeScore(s.games, input, s.clock.Now())
	if game == nil {
		return &UpdateScoreOutput{}
	}
	s.commit(games)

	if finished {
		s.logger.Info("game finished",
			slog.String("game_id", game.ID),
			slog.String("winner_id", game.WinnerID))
	}

	return &UpdateScoreOutput{
		Game:     cloneGame(game),
		Updated:  updated,
		Finished: finished,
	}
}

// DeleteScore removes a score
func (s *service) DeleteScore(input *DeleteScoreInput) *DeleteScoreOutput {
	if input == nil {
		return &DeleteScoreOutput{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	games, game, removed := removeScores(s.games, input.GameID, func(score models.Score) bool {
		return score.ID == input.ScoreID
	}, s.clock.Now())
	if game == nil {
		return &DeleteScoreOutput{}
	}
	s.commit(games)

	return &DeleteScoreOutput{
		Game:    cloneGame(game),
		Deleted: removed > 0,
	}
}

// SaveRound records every player's score for a round
func (s *service) SaveRound(input *SaveRoundInput) *SaveRoundOutput {
	if input == nil {
		return &SaveRoundOutput{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	games, output := roundScores(s.games, input, s.uuidGenerator.NewUUID, s.clock.Now())
	if output.Game == nil {
		return &SaveRoundOutput{}
	}
	s.commit(games)

	if output.Finished {
		s.logger.Info("game finished",
			slog.String("game_id", output.Game.ID),
			slog.String("winner_id", output.Game.WinnerID))
	}

	output.Game = cloneGame(output.Game)
	return output
}

// DeleteRound removes every score of a round
func (s *service) DeleteRound(input *DeleteRoundInput) *DeleteRoundOutput {
	if input == nil {
		return &DeleteRoundOutput{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	games, game, removed := removeScores(s.games, input.GameID, func(score models.Score) bool {
		return score.Round == input.Round
	}, s.clock.Now())
	if game == nil {
		return &DeleteRoundOutput{}
	}
	s.commit(games)

	return &DeleteRoundOutput{
		Game:    cloneGame(game),
		Deleted: removed,
	}
}

// Flush waits until the collection as of this call has been handed to storage
func (s *service) Flush(ctx context.Context) error {
	return s.persister.flush(ctx)
}

// Close flushes pending saves and stops saving
func (s *service) Close(ctx context.Context) error {
	return s.persister.close(ctx)
}

// commit installs the next collection and queues it for saving.
// Callers hold s.mu so collections are queued in commit order.
func (s *service) commit(games []models.Game) {
	s.games = games
	s.persister.enqueue(games)
}

func cloneGame(game *models.Game) *models.Game {
	clone := game.Clone()
	return &clone
}
