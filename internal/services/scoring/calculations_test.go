package scoring

import (
	"testing"
	"time"

	"github.com/KirkDiggler/flip7/internal/models"
	"github.com/stretchr/testify/suite"
)

type CalculationsTestSuite struct {
	suite.Suite

	testTime time.Time
	alice    models.Player
	bob      models.Player
	carol    models.Player
}

func TestCalculationsTestSuite(t *testing.T) {
	suite.Run(t, new(CalculationsTestSuite))
}

func (s *CalculationsTestSuite) SetupTest() {
	s.testTime = time.Date(2025, 6, 14, 20, 30, 0, 0, time.UTC)
	s.alice = models.Player{ID: "alice-id", Name: "Alice"}
	s.bob = models.Player{ID: "bob-id", Name: "Bob"}
	s.carol = models.Player{ID: "carol-id", Name: "Carol"}
}

// newGame builds a game whose scores are given as (round, player, value) triples
func (s *CalculationsTestSuite) newGame(players []models.Player, scores ...models.Score) *models.Game {
	for i := range scores {
		if scores[i].ID == "" {
			scores[i].ID = "score-" + string(rune('a'+i))
		}
		scores[i].Timestamp = s.testTime
	}
	return &models.Game{
		ID:        "test-game-id",
		Players:   players,
		Scores:    scores,
		CreatedAt: s.testTime,
		UpdatedAt: s.testTime,
	}
}

func score(round int, playerID string, value int) models.Score {
	return models.Score{Round: round, PlayerID: playerID, Value: value}
}

func (s *CalculationsTestSuite) TestPlayerTotal() {
	game := s.newGame([]models.Player{s.alice, s.bob},
		score(1, s.alice.ID, 30),
		score(1, s.bob.ID, 45),
		score(2, s.alice.ID, -5),
	)

	s.Equal(25, PlayerTotal(game, s.alice.ID))
	s.Equal(45, PlayerTotal(game, s.bob.ID))
}

func (s *CalculationsTestSuite) TestPlayerTotal_NoScores() {
	game := s.newGame([]models.Player{s.alice, s.bob}, score(1, s.alice.ID, 30))

	s.Equal(0, PlayerTotal(game, s.bob.ID))
	s.Equal(0, PlayerTotal(game, "unknown-id"))
}

func (s *CalculationsTestSuite) TestRoundScores() {
	game := s.newGame([]models.Player{s.alice, s.bob},
		score(1, s.alice.ID, 30),
		score(1, s.bob.ID, 45),
		score(2, s.alice.ID, 25),
	)

	s.Equal(map[string]int{s.alice.ID: 30, s.bob.ID: 45}, RoundScores(game, 1))
	s.Equal(map[string]int{s.alice.ID: 25}, RoundScores(game, 2))
	s.Empty(RoundScores(game, 3))
}

func (s *CalculationsTestSuite) TestRoundScores_LaterDuplicateWins() {
	game := s.newGame([]models.Player{s.alice},
		score(1, s.alice.ID, 10),
		score(1, s.alice.ID, 40),
	)

	s.Equal(map[string]int{s.alice.ID: 40}, RoundScores(game, 1))
}

func (s *CalculationsTestSuite) TestMaxRound() {
	s.Equal(0, MaxRound(s.newGame([]models.Player{s.alice})))

	game := s.newGame([]models.Player{s.alice},
		score(1, s.alice.ID, 10),
		score(4, s.alice.ID, 10),
		score(2, s.alice.ID, 10),
	)
	s.Equal(4, MaxRound(game))
	s.Equal(5, NextRound(game))
}

func (s *CalculationsTestSuite) TestRoundTotal() {
	game := s.newGame([]models.Player{s.alice, s.bob},
		score(1, s.alice.ID, 30),
		score(1, s.bob.ID, 45),
		score(2, s.alice.ID, 25),
	)

	s.Equal(75, RoundTotal(game, 1))
	s.Equal(25, RoundTotal(game, 2))
	s.Equal(0, RoundTotal(game, 3))
}

func (s *CalculationsTestSuite) TestPlayersSortedByScore_TiesKeepPlayerOrder() {
	game := s.newGame([]models.Player{s.alice, s.bob, s.carol},
		score(1, s.carol.ID, 5),
		score(1, s.bob.ID, 10),
		score(1, s.alice.ID, 10),
	)

	sorted := PlayersSortedByScore(game)

	s.Equal([]models.Player{s.alice, s.bob, s.carol}, sorted)
}

func (s *CalculationsTestSuite) TestPlayersSortedByScore_Descending() {
	game := s.newGame([]models.Player{s.alice, s.bob, s.carol},
		score(1, s.alice.ID, 5),
		score(1, s.bob.ID, 50),
		score(1, s.carol.ID, 20),
	)

	sorted := PlayersSortedByScore(game)

	s.Equal([]models.Player{s.bob, s.carol, s.alice}, sorted)
	// The game's own player order is left alone
	s.Equal([]models.Player{s.alice, s.bob, s.carol}, game.Players)
}

func (s *CalculationsTestSuite) TestLeader() {
	_, _, ok := Leader(s.newGame(nil))
	s.False(ok)

	game := s.newGame([]models.Player{s.alice, s.bob}, score(1, s.bob.ID, 12))
	leader, total, ok := Leader(game)
	s.True(ok)
	s.Equal(s.bob, leader)
	s.Equal(12, total)
}

func (s *CalculationsTestSuite) TestCheckGameFinished_NoPlayers() {
	s.Equal(FinishStatus{}, CheckGameFinished(s.newGame(nil)))
}

func (s *CalculationsTestSuite) TestCheckGameFinished_Threshold() {
	below := s.newGame([]models.Player{s.alice, s.bob},
		score(1, s.alice.ID, 150),
		score(2, s.alice.ID, 49),
	)
	s.Equal(FinishStatus{}, CheckGameFinished(below))

	exact := s.newGame([]models.Player{s.alice, s.bob},
		score(1, s.alice.ID, 150),
		score(2, s.alice.ID, 50),
	)
	s.Equal(FinishStatus{Finished: true, WinnerID: s.alice.ID}, CheckGameFinished(exact))
}

func (s *CalculationsTestSuite) TestCheckGameFinished_TieGoesToFirstPlayer() {
	game := s.newGame([]models.Player{s.alice, s.bob},
		score(1, s.bob.ID, 210),
		score(1, s.alice.ID, 210),
	)

	s.Equal(FinishStatus{Finished: true, WinnerID: s.alice.ID}, CheckGameFinished(game))
}

func (s *CalculationsTestSuite) TestCheckGameFinished_RecordedFinishIsKept() {
	game := s.newGame([]models.Player{s.alice, s.bob},
		score(1, s.alice.ID, 200),
		score(2, s.bob.ID, 500),
	)
	finishedAt := s.testTime
	game.FinishedAt = &finishedAt
	game.WinnerID = s.alice.ID

	for i := 0; i < 3; i++ {
		s.Equal(FinishStatus{Finished: true, WinnerID: s.alice.ID}, CheckGameFinished(game))
	}
}

func (s *CalculationsTestSuite) TestGameStats_TwoPlayerScenario() {
	game := s.newGame([]models.Player{s.alice, s.bob},
		score(1, s.alice.ID, 30),
		score(1, s.bob.ID, 45),
		score(2, s.alice.ID, 25),
		score(2, s.bob.ID, 10),
	)

	s.Equal(55, PlayerTotal(game, s.alice.ID))
	s.Equal(55, PlayerTotal(game, s.bob.ID))

	stats := GameStats(game)

	s.Equal("test-game-id", stats.GameID)
	s.Equal(2, stats.MaxRound)
	s.Require().Len(stats.Standings, 2)
	s.Equal(s.alice, stats.Standings[0].Player)
	s.Equal(55, stats.Standings[0].Total)
	s.Equal([]int{30, 25}, stats.Standings[0].Rounds)
	s.Equal(s.bob, stats.Standings[1].Player)
	s.Equal([]int{45, 10}, stats.Standings[1].Rounds)

	// Unfinished: the winner is the current leader
	s.Require().NotNil(stats.Winner)
	s.Equal(s.alice, *stats.Winner)
	s.Equal(55, stats.WinnerScore)
}

func (s *CalculationsTestSuite) TestGameStats_MissingRoundsAreZero() {
	game := s.newGame([]models.Player{s.alice, s.bob},
		score(1, s.alice.ID, 30),
		score(3, s.alice.ID, 20),
		score(3, s.bob.ID, 0),
	)

	stats := GameStats(game)

	s.Equal(3, stats.MaxRound)
	s.Equal([]int{30, 0, 20}, stats.Standings[0].Rounds)
	s.Equal([]int{0, 0, 0}, stats.Standings[1].Rounds)
}

func (s *CalculationsTestSuite) TestGameStats_RecordedWinner() {
	game := s.newGame([]models.Player{s.alice, s.bob},
		score(1, s.alice.ID, 205),
		score(2, s.bob.ID, 300),
	)
	finishedAt := s.testTime
	game.FinishedAt = &finishedAt
	game.WinnerID = s.alice.ID

	stats := GameStats(game)

	s.Equal(s.bob, stats.Standings[0].Player)
	s.Require().NotNil(stats.Winner)
	s.Equal(s.alice, *stats.Winner)
	s.Equal(205, stats.WinnerScore)
}

func (s *CalculationsTestSuite) TestGameStats_NoPlayers() {
	stats := GameStats(s.newGame(nil))

	s.Empty(stats.Standings)
	s.Equal(0, stats.MaxRound)
	s.Nil(stats.Winner)
	s.Equal(0, stats.WinnerScore)
}

func (s *CalculationsTestSuite) TestFormatting() {
	s.Equal("42", FormatScore(42))
	s.Equal("-10", FormatScore(-10))
	s.Equal("+25", FormatSignedScore(25))
	s.Equal("+0", FormatSignedScore(0))
	s.Equal("-50", FormatSignedScore(-50))
	s.Equal("14/06/2025 20:30", FormatDate(s.testTime))
}
