package models

// Standing represents one player's line in a game recap
type Standing struct {
	// Player is the player this line describes
	Player Player

	// Total is the sum of all the player's scores
	Total int

	// Rounds holds the player's score for rounds 1..MaxRound, with 0 for
	// rounds the player has no score in
	Rounds []int
}

// Leaderboard represents the recap of a game
type Leaderboard struct {
	// GameID is the unique identifier for the game
	GameID string

	// Standings contains every player, highest total first
	Standings []Standing

	// MaxRound is the highest round number recorded
	MaxRound int

	// Winner is the recorded winner, or the current leader if the game has
	// not finished. Nil when the game has no players.
	Winner *Player

	// WinnerScore is the total of Winner
	WinnerScore int
}
