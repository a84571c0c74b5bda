package models

import (
	"time"
)

// Score records the points a player made in one round
type Score struct {
	// ID is the unique identifier for the score
	ID string `json:"id"`

	// Round is the round number the score belongs to, starting at 1
	Round int `json:"round"`

	// PlayerID is the ID of the player who made the score
	PlayerID string `json:"playerId"`

	// Value is the number of points, which may be negative
	Value int `json:"value"`

	// Timestamp is when the score was recorded or last changed
	Timestamp time.Time `json:"timestamp"`
}
