package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetRoundSavedMessage returns a message for when a round has been recorded
	GetRoundSavedMessage(ctx context.Context, input *GetRoundSavedMessageInput) (*GetRoundSavedMessageOutput, error)

	// GetGameFinishedMessage returns a message announcing the winner of a game
	GetGameFinishedMessage(ctx context.Context, input *GetGameFinishedMessageInput) (*GetGameFinishedMessageOutput, error)
}
