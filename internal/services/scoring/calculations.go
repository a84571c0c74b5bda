package scoring

import (
	"sort"

	"github.com/KirkDiggler/flip7/internal/models"
)

// WinningScore is the total at which a game finishes
const WinningScore = 200

// FinishStatus reports whether a game has reached the winning score
type FinishStatus struct {
	// Finished indicates the game is over
	Finished bool

	// WinnerID is the ID of the winning player when Finished is true
	WinnerID string
}

// PlayerTotal returns the sum of every score of the player, 0 if they have none
func PlayerTotal(game *models.Game, playerID string) int {
	total := 0
	for _, score := range game.Scores {
		if score.PlayerID == playerID {
			total += score.Value
		}
	}
	return total
}

// RoundScores maps player IDs to their score in the given round.
// When a player has several scores in the round the later one wins.
func RoundScores(game *models.Game, round int) map[string]int {
	scores := make(map[string]int)
	for _, score := range game.Scores {
		if score.Round == round {
			scores[score.PlayerID] = score.Value
		}
	}
	return scores
}

// MaxRound returns the highest round number recorded, 0 if there are no scores
func MaxRound(game *models.Game) int {
	maxRound := 0
	for _, score := range game.Scores {
		if score.Round > maxRound {
			maxRound = score.Round
		}
	}
	return maxRound
}

// NextRound returns the round a new set of scores should be entered in
func NextRound(game *models.Game) int {
	return MaxRound(game) + 1
}

// RoundTotal returns the sum of all players' scores in the given round
func RoundTotal(game *models.Game, round int) int {
	total := 0
	for _, value := range RoundScores(game, round) {
		total += value
	}
	return total
}

// PlayersSortedByScore returns the players ordered by descending total.
// Players with equal totals keep their order from game.Players, which
// decides ranks and the winner.
func PlayersSortedByScore(game *models.Game) []models.Player {
	totals := totalsByPlayer(game)

	players := make([]models.Player, len(game.Players))
	copy(players, game.Players)

	sort.SliceStable(players, func(i, j int) bool {
		return totals[players[i].ID] > totals[players[j].ID]
	})

	return players
}

// Leader returns the top ranked player and their total
func Leader(game *models.Game) (models.Player, int, bool) {
	sorted := PlayersSortedByScore(game)
	if len(sorted) == 0 {
		return models.Player{}, 0, false
	}
	return sorted[0], PlayerTotal(game, sorted[0].ID), true
}

// CheckGameFinished decides whether the game is over.
// A recorded finish is returned as is and never re-derived from the scores.
func CheckGameFinished(game *models.Game) FinishStatus {
	if game.IsFinished() {
		return FinishStatus{
			Finished: true,
			WinnerID: game.WinnerID,
		}
	}

	leader, total, ok := Leader(game)
	if !ok {
		return FinishStatus{}
	}

	if total >= WinningScore {
		return FinishStatus{
			Finished: true,
			WinnerID: leader.ID,
		}
	}

	return FinishStatus{}
}

// GameStats builds the recap of a game.
// Rounds without a score for a player are reported as 0, the same as a
// round scored 0.
func GameStats(game *models.Game) *models.Leaderboard {
	maxRound := MaxRound(game)
	totals := totalsByPlayer(game)

	byRound := make([]map[string]int, maxRound)
	for i := range byRound {
		byRound[i] = RoundScores(game, i+1)
	}

	sorted := PlayersSortedByScore(game)
	standings := make([]models.Standing, 0, len(sorted))
	for _, player := range sorted {
		rounds := make([]int, maxRound)
		for i := range rounds {
			rounds[i] = byRound[i][player.ID]
		}

		standings = append(standings, models.Standing{
			Player: player,
			Total:  totals[player.ID],
			Rounds: rounds,
		})
	}

	leaderboard := &models.Leaderboard{
		GameID:    game.ID,
		Standings: standings,
		MaxRound:  maxRound,
	}

	var winner *models.Player
	if game.WinnerID != "" {
		if p, ok := game.Player(game.WinnerID); ok {
			winner = &p
		}
	}
	if winner == nil && len(standings) > 0 {
		p := standings[0].Player
		winner = &p
	}

	if winner != nil {
		leaderboard.Winner = winner
		leaderboard.WinnerScore = totals[winner.ID]
	}

	return leaderboard
}

// totalsByPlayer sums every player's scores in a single pass
func totalsByPlayer(game *models.Game) map[string]int {
	totals := make(map[string]int, len(game.Players))
	for _, score := range game.Scores {
		totals[score.PlayerID] += score.Value
	}
	return totals
}
