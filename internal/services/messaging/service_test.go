package messaging

import (
	"context"
	"testing"

	"github.com/KirkDiggler/flip7/internal/common/random/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	service Service
	ctx     context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{Seed: 7})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestGetRoundSavedMessage_DefaultTone() {
	input := &GetRoundSavedMessageInput{
		Round:       3,
		LeaderName:  "Alice",
		LeaderTotal: 120,
		PointsToWin: 80,
	}

	output, err := s.service.GetRoundSavedMessage(s.ctx, input)

	s.Require().NoError(err)
	s.Equal("Round 3 saved", output.Title)
	s.Equal(ToneFunny, output.Tone)
	s.Contains(roundSavedMessages(ToneFunny, input), output.Message)
}

func (s *MessagingServiceTestSuite) TestGetRoundSavedMessage_NeutralTone() {
	input := &GetRoundSavedMessageInput{
		Round:       1,
		LeaderName:  "Bob",
		LeaderTotal: 45,
		PointsToWin: 155,
		Tone:        ToneNeutral,
	}

	output, err := s.service.GetRoundSavedMessage(s.ctx, input)

	s.Require().NoError(err)
	s.Equal(ToneNeutral, output.Tone)
	s.Contains(output.Message, "Bob")
	s.Contains(roundSavedMessages(ToneNeutral, input), output.Message)
}

func (s *MessagingServiceTestSuite) TestGetGameFinishedMessage() {
	for _, tone := range []MessageTone{ToneNeutral, ToneFunny, ToneEncouraging} {
		input := &GetGameFinishedMessageInput{
			WinnerName:  "Carol",
			WinnerScore: 205,
			Tone:        tone,
		}

		output, err := s.service.GetGameFinishedMessage(s.ctx, input)

		s.Require().NoError(err)
		s.Equal(tone, output.Tone)
		s.Contains(output.Message, "Carol")
		s.Contains(output.Message, "205")
	}
}

func (s *MessagingServiceTestSuite) TestSameSeedSameMessages() {
	other, err := NewService(&ServiceConfig{Seed: 7})
	s.Require().NoError(err)

	input := &GetGameFinishedMessageInput{WinnerName: "Dan", WinnerScore: 231}
	for i := 0; i < 5; i++ {
		a, err := s.service.GetGameFinishedMessage(s.ctx, input)
		s.Require().NoError(err)
		b, err := other.GetGameFinishedMessage(s.ctx, input)
		s.Require().NoError(err)
		s.Equal(a.Message, b.Message)
	}
}

func (s *MessagingServiceTestSuite) TestNilInput() {
	_, err := s.service.GetRoundSavedMessage(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.service.GetGameFinishedMessage(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)
}

func (s *MessagingServiceTestSuite) TestPickerChoosesMessage() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	picker := mocks.NewMockPicker(ctrl)
	svc, err := NewService(&ServiceConfig{Random: picker})
	s.Require().NoError(err)

	input := &GetGameFinishedMessageInput{WinnerName: "Eve", WinnerScore: 204, Tone: ToneEncouraging}
	messages := gameFinishedMessages(ToneEncouraging, input)
	picker.EXPECT().Intn(len(messages)).Return(1)

	output, err := svc.GetGameFinishedMessage(s.ctx, input)

	s.Require().NoError(err)
	s.Equal(messages[1], output.Message)
}

func (s *MessagingServiceTestSuite) TestUnknownToneFallsBackToFunny() {
	input := &GetRoundSavedMessageInput{
		Round:       2,
		LeaderName:  "Frank",
		LeaderTotal: 90,
		PointsToWin: 110,
		Tone:        MessageTone("sarcastic"),
	}

	output, err := s.service.GetRoundSavedMessage(s.ctx, input)

	s.Require().NoError(err)
	s.Equal(ToneFunny, output.Tone)
	s.Contains(roundSavedMessages(ToneFunny, input), output.Message)
}
