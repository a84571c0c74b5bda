package game

import (
	"testing"
	"time"

	"github.com/KirkDiggler/flip7/internal/models"
	"github.com/stretchr/testify/suite"
)

type CollectionTestSuite struct {
	suite.Suite

	testTime time.Time
	games    []models.Game
}

func TestCollectionTestSuite(t *testing.T) {
	suite.Run(t, new(CollectionTestSuite))
}

func (s *CollectionTestSuite) SetupTest() {
	s.testTime = time.Date(2025, 6, 14, 20, 30, 0, 0, time.UTC)
	s.games = []models.Game{
		{
			ID:      "game-1",
			Players: []models.Player{{ID: "p1", Name: "Alice"}},
			Scores: []models.Score{
				{ID: "s1", Round: 1, PlayerID: "p1", Value: 20, Timestamp: s.testTime},
			},
			CreatedAt: s.testTime,
			UpdatedAt: s.testTime,
		},
		{
			ID:        "game-2",
			Players:   []models.Player{{ID: "p2", Name: "Bob"}},
			Scores:    []models.Score{},
			CreatedAt: s.testTime,
			UpdatedAt: s.testTime,
		},
	}
}

func (s *CollectionTestSuite) TestTransitionsLeaveInputAlone() {
	before := make([]models.Game, len(s.games))
	for i := range s.games {
		before[i] = s.games[i].Clone()
	}
	now := s.testTime.Add(time.Minute)

	appendScore(s.games, &AddScoreInput{GameID: "game-1", Round: 2, PlayerID: "p1", Value: 300}, "s2", now)
	changeScore(s.games, &UpdateScoreInput{GameID: "game-1", ScoreID: "s1", Value: 5}, now)
	removeScores(s.games, "game-1", func(models.Score) bool { return true }, now)
	removeGame(s.games, "game-2")
	name := "renamed"
	patchGame(s.games, "game-1", GamePatch{Name: &name}, now)

	s.Equal(before, s.games)
}

func (s *CollectionTestSuite) TestWithGame_SharesOtherGames() {
	next, game := withGame(s.games, "game-1", func(game *models.Game) {
		game.Name = "changed"
	})

	s.Require().NotNil(game)
	s.Equal("changed", next[0].Name)
	s.Same(&s.games[1].Players[0], &next[1].Players[0])
	s.Equal(s.games[1], next[1])
}

func (s *CollectionTestSuite) TestWithGame_Unknown() {
	next, game := withGame(s.games, "unknown", func(game *models.Game) {
		s.Fail("change must not run")
	})

	s.Nil(game)
	s.Equal(s.games, next)
}

func (s *CollectionTestSuite) TestFinishIfWon() {
	game := s.games[0].Clone()
	s.False(finishIfWon(&game, s.testTime))

	game.Scores = append(game.Scores, models.Score{ID: "s2", Round: 2, PlayerID: "p1", Value: 180})
	s.True(finishIfWon(&game, s.testTime))
	s.Equal("p1", game.WinnerID)
	s.Equal(s.testTime, *game.FinishedAt)

	s.False(finishIfWon(&game, s.testTime.Add(time.Hour)))
	s.Equal(s.testTime, *game.FinishedAt)
}

func (s *CollectionTestSuite) TestRoundScores_SkipsPlayersWithoutValue() {
	ids := 0
	newID := func() string {
		ids++
		return "new"
	}

	next, output := roundScores(s.games, &SaveRoundInput{
		GameID: "game-1",
		Round:  1,
		Values: map[string]int{"p1": 40, "someone-else": 10},
	}, newID, s.testTime)

	s.Require().NotNil(output.Game)
	s.Equal(0, ids)
	s.Len(output.Updated, 1)
	s.Empty(output.Added)
	s.Equal(40, next[0].Scores[0].Value)
	s.Equal(20, s.games[0].Scores[0].Value)
}
