package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/flip7/internal/common/random"
)

// ErrNilInput is returned when a message is requested without input
var ErrNilInput = errors.New("input cannot be nil")

// service implements the Service interface
type service struct {
	// Picks among the messages of a tone
	random random.Picker
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		config = &ServiceConfig{}
	}

	picker := config.Random
	if picker == nil {
		picker = random.New(&random.Config{Seed: config.Seed})
	}

	return &service{
		random: picker,
	}, nil
}

// GetRoundSavedMessage returns a message for when a round has been recorded
func (s *service) GetRoundSavedMessage(ctx context.Context, input *GetRoundSavedMessageInput) (*GetRoundSavedMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	tone := toneOrDefault(input.Tone)

	return &GetRoundSavedMessageOutput{
		Title:   fmt.Sprintf("Round %d saved", input.Round),
		Message: s.pick(roundSavedMessages(tone, input)),
		Tone:    tone,
	}, nil
}

// GetGameFinishedMessage returns a message announcing the winner of a game
func (s *service) GetGameFinishedMessage(ctx context.Context, input *GetGameFinishedMessageInput) (*GetGameFinishedMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	tone := toneOrDefault(input.Tone)

	return &GetGameFinishedMessageOutput{
		Title:   "🎉 Game over!",
		Message: s.pick(gameFinishedMessages(tone, input)),
		Tone:    tone,
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.random.Intn(len(messages))]
}

// toneOrDefault maps an empty or unknown tone to ToneFunny
func toneOrDefault(tone MessageTone) MessageTone {
	switch tone {
	case ToneNeutral, ToneFunny, ToneEncouraging:
		return tone
	default:
		return ToneFunny
	}
}

func roundSavedMessages(tone MessageTone, input *GetRoundSavedMessageInput) []string {
	leader := input.LeaderName
	total := input.LeaderTotal
	left := input.PointsToWin

	switch tone {
	case ToneNeutral:
		return []string{
			fmt.Sprintf("%s leads with %d points.", leader, total),
			fmt.Sprintf("%s leads, %d points from the win.", leader, left),
		}
	case ToneEncouraging:
		return []string{
			fmt.Sprintf("Nice round! %s is out in front with %d, but %d points is a lot of cards.", leader, total, left),
			fmt.Sprintf("Everyone's still in it. %s needs %d more to close it out.", leader, left),
			fmt.Sprintf("Keep flipping! %s sits at %d.", leader, total),
		}
	default:
		return []string{
			fmt.Sprintf("%s is on %d. Somebody flip a freeze card at them.", leader, total),
			fmt.Sprintf("%d points to go for %s. The deck has opinions about that.", left, leader),
			fmt.Sprintf("%s leads with %d. Push your luck, what could go wrong?", leader, total),
			fmt.Sprintf("Another round, another bust for someone. %s is sitting pretty on %d.", leader, total),
		}
	}
}

func gameFinishedMessages(tone MessageTone, input *GetGameFinishedMessageInput) []string {
	winner := input.WinnerName
	score := input.WinnerScore

	switch tone {
	case ToneNeutral:
		return []string{
			fmt.Sprintf("%s wins with %d points.", winner, score),
		}
	case ToneEncouraging:
		return []string{
			fmt.Sprintf("Well played everyone! %s takes it with %d points.", winner, score),
			fmt.Sprintf("What a game! %s crosses the line at %d. Rematch?", winner, score),
		}
	default:
		return []string{
			fmt.Sprintf("🏆 %s wins with %d points. Shuffle up, revenge is a dish best served with a Flip 7.", winner, score),
			fmt.Sprintf("%s hit %d and won't stop talking about it. Congratulations, I guess.", winner, score),
			fmt.Sprintf("All hail %s, ruler of the deck, with %d points!", winner, score),
		}
	}
}
