package models

// Player represents a named participant in a game
type Player struct {
	// ID is the identifier of the player, unique within its game
	ID string `json:"id"`

	// Name is the display name of the player
	Name string `json:"name"`
}
