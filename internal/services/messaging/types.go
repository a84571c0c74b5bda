package messaging

import "github.com/KirkDiggler/flip7/internal/common/random"

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Random picks messages, a picker seeded with Seed when nil
	Random random.Picker

	// Seed makes message selection repeatable, the current time when 0
	Seed int64
}

// GetRoundSavedMessageInput contains parameters for a round saved message
type GetRoundSavedMessageInput struct {
	// Round is the round that was saved
	Round int

	// LeaderName is the name of the player leading after the round
	LeaderName string

	// LeaderTotal is the total of the leading player
	LeaderTotal int

	// PointsToWin is how far the leader is from the winning score
	PointsToWin int

	// Tone is the preferred tone for the message (optional)
	Tone MessageTone
}

// GetRoundSavedMessageOutput contains a round saved message
type GetRoundSavedMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetGameFinishedMessageInput contains parameters for a game finished message
type GetGameFinishedMessageInput struct {
	// WinnerName is the name of the winning player
	WinnerName string

	// WinnerScore is the total of the winning player
	WinnerScore int

	// Tone is the preferred tone for the message (optional)
	Tone MessageTone
}

// GetGameFinishedMessageOutput contains a game finished message
type GetGameFinishedMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}
