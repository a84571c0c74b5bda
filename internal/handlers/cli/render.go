package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/flip7/internal/models"
	"github.com/KirkDiggler/flip7/internal/services/scoring"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const untitledGame = "Untitled game"

var medals = []string{"🥇", "🥈", "🥉"}

// medal returns the medal for a 1-based rank, or "n." past the podium
func medal(rank int) string {
	if rank >= 1 && rank <= len(medals) {
		return medals[rank-1]
	}
	return strconv.Itoa(rank) + "."
}

func gameName(game *models.Game) string {
	if game.Name == "" {
		return untitledGame
	}
	return game.Name
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// standings ranks the players of a game, highest total first
func standings(game *models.Game) []StandingView {
	stats := scoring.GameStats(game)

	views := make([]StandingView, 0, len(stats.Standings))
	for i, standing := range stats.Standings {
		views = append(views, StandingView{
			Rank:   i + 1,
			Medal:  medal(i + 1),
			Player: standing.Player,
			Total:  standing.Total,
			Rounds: standing.Rounds,
		})
	}
	return views
}

func summarize(game *models.Game) GameSummary {
	summary := GameSummary{
		ID:        game.ID,
		Name:      gameName(game),
		UpdatedAt: game.UpdatedAt,
		Players:   len(game.Players),
		Finished:  game.IsFinished(),
	}

	if leader, total, ok := scoring.Leader(game); ok {
		summary.Leader = leader.Name
		summary.LeaderTotal = total
	}

	return summary
}

func detail(game *models.Game) GameDetail {
	maxRound := scoring.MaxRound(game)

	roundTotals := make([]int, 0, maxRound)
	for round := 1; round <= maxRound; round++ {
		roundTotals = append(roundTotals, scoring.RoundTotal(game, round))
	}

	return GameDetail{
		Game:        game,
		Standings:   standings(game),
		RoundTotals: roundTotals,
		NextRound:   scoring.NextRound(game),
	}
}

func recap(game *models.Game) Recap {
	stats := scoring.GameStats(game)

	return Recap{
		Game:        game,
		Winner:      stats.Winner,
		WinnerScore: stats.WinnerScore,
		MaxRound:    stats.MaxRound,
		Standings:   standings(game),
	}
}

func (o *Output) title() lipgloss.Style {
	return o.renderer.NewStyle().Bold(true)
}

func (o *Output) muted() lipgloss.Style {
	return o.renderer.NewStyle().Foreground(lipgloss.Color("8"))
}

func (o *Output) highlight() lipgloss.Style {
	return o.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
}

func (o *Output) newTable(headers ...string) *table.Table {
	header := o.renderer.NewStyle().Bold(true).Padding(0, 1)
	cell := o.renderer.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}

func (o *Output) printGameList(list GameList) {
	if len(list.Games) == 0 {
		fmt.Fprintln(o.w, "No games yet. Start one with: flip7 new --player NAME")
		return
	}

	t := o.newTable("ID", "Game", "Updated", "Players", "Leader", "Status")
	for _, game := range list.Games {
		leader := ""
		if game.Leader != "" {
			leader = fmt.Sprintf("🏆 %s: %d pts", game.Leader, game.LeaderTotal)
		}

		status := "in progress"
		if game.Finished {
			status = "finished"
		}

		t.Row(
			shortID(game.ID),
			game.Name,
			scoring.FormatDate(game.UpdatedAt),
			plural(game.Players, "player"),
			leader,
			status,
		)
	}

	fmt.Fprintln(o.w, t.Render())
}

func (o *Output) printGameDetail(d GameDetail) {
	game := d.Game

	fmt.Fprintf(o.w, "%s %s\n", o.title().Render(gameName(game)), o.muted().Render(game.ID))
	fmt.Fprintf(o.w, "Updated %s\n", scoring.FormatDate(game.UpdatedAt))

	if game.IsFinished() {
		if winner, ok := game.Player(game.WinnerID); ok {
			line := fmt.Sprintf("🏆 %s won with %d points", winner.Name, scoring.PlayerTotal(game, winner.ID))
			fmt.Fprintln(o.w, o.highlight().Render(line))
		}
	}
	fmt.Fprintln(o.w)

	if len(d.RoundTotals) == 0 {
		fmt.Fprintln(o.w, "No rounds yet.")
	} else {
		headers := []string{"Round"}
		for _, player := range game.Players {
			headers = append(headers, player.Name)
		}
		headers = append(headers, "Total")

		t := o.newTable(headers...)
		for i, total := range d.RoundTotals {
			round := i + 1
			values := scoring.RoundScores(game, round)

			row := []string{"R" + strconv.Itoa(round)}
			for _, player := range game.Players {
				if value, ok := values[player.ID]; ok {
					row = append(row, scoring.FormatScore(value))
				} else {
					row = append(row, "-")
				}
			}
			row = append(row, scoring.FormatScore(total))
			t.Row(row...)
		}
		fmt.Fprintln(o.w, t.Render())
	}

	fmt.Fprintln(o.w)
	for _, standing := range d.Standings {
		fmt.Fprintf(o.w, "%d. %s  %s\n", standing.Rank, standing.Player.Name, scoring.FormatScore(standing.Total))
	}

	if !game.IsFinished() {
		fmt.Fprintf(o.w, "\nNext round: %d\n", d.NextRound)
	}

	o.printMessageView(d.Message)
}

func (o *Output) printRecap(r Recap) {
	game := r.Game

	fmt.Fprintln(o.w, o.title().Render(gameName(game)))
	if game.FinishedAt != nil {
		fmt.Fprintf(o.w, "Finished %s\n", scoring.FormatDate(*game.FinishedAt))
	} else {
		fmt.Fprintln(o.w, "Still in progress")
	}
	fmt.Fprintln(o.w)

	if r.Winner != nil {
		label := "Leader"
		if game.IsFinished() {
			label = "Winner"
		}
		fmt.Fprintln(o.w, o.highlight().Render(fmt.Sprintf("🏆 %s: %s, %d points", label, r.Winner.Name, r.WinnerScore)))
		fmt.Fprintln(o.w)
	}

	for _, standing := range r.Standings {
		fmt.Fprintf(o.w, "%s %s  %d  %s\n",
			standing.Medal,
			standing.Player.Name,
			standing.Total,
			o.muted().Render(plural(r.MaxRound, "round")))
	}

	if r.MaxRound == 0 {
		return
	}

	headers := []string{"Player"}
	for round := 1; round <= r.MaxRound; round++ {
		headers = append(headers, "R"+strconv.Itoa(round))
	}
	headers = append(headers, "Total")

	t := o.newTable(headers...)
	for _, standing := range r.Standings {
		row := []string{standing.Player.Name}
		for _, value := range standing.Rounds {
			row = append(row, scoring.FormatScore(value))
		}
		row = append(row, scoring.FormatScore(standing.Total))
		t.Row(row...)
	}

	fmt.Fprintln(o.w)
	fmt.Fprintln(o.w, t.Render())
}

func (o *Output) printScoreResult(r ScoreResult) {
	switch {
	case r.Score != nil && r.Player != "":
		fmt.Fprintf(o.w, "Score %s: round %d, %s %s (%s)\n",
			r.Action, r.Score.Round, r.Player, scoring.FormatSignedScore(r.Score.Value), r.Score.ID)
	default:
		fmt.Fprintf(o.w, "Score %s\n", r.Action)
	}

	o.printMessageView(r.Message)
}

func (o *Output) printMessageView(m *MessageView) {
	if m == nil {
		return
	}

	fmt.Fprintln(o.w)
	fmt.Fprintln(o.w, o.title().Render(m.Title))
	fmt.Fprintln(o.w, strings.TrimSpace(m.Message))
}
