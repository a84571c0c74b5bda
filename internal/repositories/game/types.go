package game

import "github.com/KirkDiggler/flip7/internal/models"

type SaveGamesInput struct {
	Games []models.Game
}

type LoadGamesOutput struct {
	// Games is empty when nothing has been stored yet
	Games []models.Game

	// Found is false when the slot has never been written
	Found bool
}
