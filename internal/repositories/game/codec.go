package game

import (
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/flip7/internal/models"
)

// encodeGames serializes the collection, writing an empty collection as []
func encodeGames(games []models.Game) ([]byte, error) {
	if games == nil {
		games = []models.Game{}
	}

	data, err := json.Marshal(games)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal games: %w", err)
	}
	return data, nil
}

func decodeGames(data []byte) ([]models.Game, error) {
	var games []models.Game
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedGames, err)
	}

	if games == nil {
		games = []models.Game{}
	}
	return games, nil
}
