package game

import (
	"time"

	"github.com/KirkDiggler/flip7/internal/models"
	"github.com/KirkDiggler/flip7/internal/services/scoring"
)

// The functions in this file are the state transitions of the store. Each one
// takes a collection and returns the next one without modifying its input:
// the game being changed is cloned, every other game is shared between the
// two collections. They read no clock and generate no IDs themselves.

// idFunc returns a fresh unique identifier
type idFunc func() string

// withGame applies change to a copy of the game with the given ID.
// It returns the input collection and nil when no game has the ID.
func withGame(games []models.Game, gameID string, change func(game *models.Game)) ([]models.Game, *models.Game) {
	for i := range games {
		if games[i].ID != gameID {
			continue
		}

		updated := games[i].Clone()
		change(&updated)

		next := make([]models.Game, len(games))
		copy(next, games)
		next[i] = updated

		return next, &next[i]
	}

	return games, nil
}

// finishIfWon records the finish of a game that has just reached the winning
// score. A game that already finished is left alone.
func finishIfWon(game *models.Game, now time.Time) bool {
	if game.IsFinished() {
		return false
	}

	status := scoring.CheckGameFinished(game)
	if !status.Finished {
		return false
	}

	finishedAt := now
	game.FinishedAt = &finishedAt
	game.WinnerID = status.WinnerID
	return true
}

// appendGame adds a new game at the end of the collection
func appendGame(games []models.Game, input *CreateGameInput, gameID string, now time.Time) ([]models.Game, *models.Game) {
	game := models.Game{
		ID:        gameID,
		Name:      input.Name,
		Players:   append([]models.Player{}, input.Players...),
		Scores:    append([]models.Score{}, input.InitialScores...),
		CreatedAt: now,
		UpdatedAt: now,
	}

	next := make([]models.Game, len(games), len(games)+1)
	copy(next, games)
	next = append(next, game)

	return next, &next[len(next)-1]
}

// patchGame merges the patch into a game
func patchGame(games []models.Game, gameID string, patch GamePatch, now time.Time) ([]models.Game, *models.Game) {
	return withGame(games, gameID, func(game *models.Game) {
		if patch.Name != nil {
			game.Name = *patch.Name
		}

		if !game.IsFinished() && patch.FinishedAt != nil {
			finishedAt := *patch.FinishedAt
			game.FinishedAt = &finishedAt
			if patch.WinnerID != nil {
				game.WinnerID = *patch.WinnerID
			}
		}

		game.UpdatedAt = now
	})
}

// removeGame drops a game from the collection
func removeGame(games []models.Game, gameID string) ([]models.Game, bool) {
	for i := range games {
		if games[i].ID != gameID {
			continue
		}

		next := make([]models.Game, 0, len(games)-1)
		next = append(next, games[:i]...)
		next = append(next, games[i+1:]...)
		return next, true
	}

	return games, false
}

// appendScore adds a score to a game, then finishes the game if the score won it
func appendScore(games []models.Game, input *AddScoreInput, scoreID string, now time.Time) ([]models.Game, *models.Game, *models.Score, bool) {
	var (
		score    *models.Score
		finished bool
	)

	next, game := withGame(games, input.GameID, func(game *models.Game) {
		game.Scores = append(game.Scores, models.Score{
			ID:        scoreID,
			Round:     input.Round,
			PlayerID:  input.PlayerID,
			Value:     input.Value,
			Timestamp: now,
		})
		game.UpdatedAt = now
		finished = finishIfWon(game, now)
	})

	if game != nil {
		score = &game.Scores[len(game.Scores)-1]
	}

	return next, game, score, finished
}

// changeScore sets the value of a score, then finishes the game if the change won it
func changeScore(games []models.Game, input *UpdateScoreInput, now time.Time) ([]models.Game, *models.Game, bool, bool) {
	var updated, finished bool

	next, game := withGame(games, input.GameID, func(game *models.Game) {
		for i := range game.Scores {
			if game.Scores[i].ID == input.ScoreID {
				game.Scores[i].Value = input.Value
				game.Scores[i].Timestamp = now
				updated = true
			}
		}
		game.UpdatedAt = now
		finished = finishIfWon(game, now)
	})

	return next, game, updated, finished
}

// removeScores drops every score of a game matching the predicate.
// The finish of the game is never undone.
func removeScores(games []models.Game, gameID string, match func(score models.Score) bool, now time.Time) ([]models.Game, *models.Game, int) {
	removed := 0

	next, game := withGame(games, gameID, func(game *models.Game) {
		kept := make([]models.Score, 0, len(game.Scores))
		for _, score := range game.Scores {
			if match(score) {
				removed++
				continue
			}
			kept = append(kept, score)
		}
		game.Scores = kept
		game.UpdatedAt = now
	})

	return next, game, removed
}

// roundScores writes a whole round. Players are visited in ranking order as
// it stood before the round; each one's existing score for the round is
// updated, or a new score is added. The finish check runs after every write.
func roundScores(games []models.Game, input *SaveRoundInput, newID idFunc, now time.Time) ([]models.Game, *SaveRoundOutput) {
	output := &SaveRoundOutput{}

	next, game := withGame(games, input.GameID, func(game *models.Game) {
		for _, player := range scoring.PlayersSortedByScore(game) {
			value, ok := input.Values[player.ID]
			if !ok {
				continue
			}

			existing := -1
			for i := range game.Scores {
				if game.Scores[i].Round == input.Round && game.Scores[i].PlayerID == player.ID {
					existing = i
					break
				}
			}

			if existing >= 0 {
				game.Scores[existing].Value = value
				game.Scores[existing].Timestamp = now
				output.Updated = append(output.Updated, game.Scores[existing])
			} else {
				score := models.Score{
					ID:        newID(),
					Round:     input.Round,
					PlayerID:  player.ID,
					Value:     value,
					Timestamp: now,
				}
				game.Scores = append(game.Scores, score)
				output.Added = append(output.Added, score)
			}

			game.UpdatedAt = now
			if finishIfWon(game, now) {
				output.Finished = true
			}
		}
	})

	output.Game = game
	return next, output
}
