package models

import (
	"time"
)

// Game represents one scoring session
type Game struct {
	// ID is the unique identifier for the game
	ID string `json:"id"`

	// Name is the optional label given to the game
	Name string `json:"name,omitempty"`

	// Players contains the players of the game in creation order
	Players []Player `json:"players"`

	// Scores contains every recorded score, in insertion order
	Scores []Score `json:"scores"`

	// CreatedAt is when the game was created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the game or one of its scores last changed
	UpdatedAt time.Time `json:"updatedAt"`

	// FinishedAt is when a player first reached the winning score.
	// Once set it is never cleared.
	FinishedAt *time.Time `json:"finishedAt,omitempty"`

	// WinnerID is the ID of the player who led when the game finished
	WinnerID string `json:"winnerId,omitempty"`
}

// IsFinished returns true once the game has recorded a finish
func (g *Game) IsFinished() bool {
	return g.FinishedAt != nil
}

// Player returns the player with the given ID
func (g *Game) Player(id string) (Player, bool) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// Clone returns a deep copy of the game
func (g *Game) Clone() Game {
	clone := *g
	clone.Players = append([]Player{}, g.Players...)
	clone.Scores = append([]Score{}, g.Scores...)
	if g.FinishedAt != nil {
		finishedAt := *g.FinishedAt
		clone.FinishedAt = &finishedAt
	}
	return clone
}
