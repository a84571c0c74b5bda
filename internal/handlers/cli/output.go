package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/KirkDiggler/flip7/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// Output handles formatting output based on the configured format
type Output struct {
	format   string
	w        io.Writer
	renderer *lipgloss.Renderer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{
		format:   format,
		w:        w,
		renderer: lipgloss.NewRenderer(w),
	}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

// PrintError outputs an error to w
func (o *Output) PrintError(w io.Writer, err error) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		})
		fmt.Fprintln(w, string(data))
		return
	}

	red := color.New(color.FgRed, color.Bold)
	red.Fprint(w, "Error: ")
	fmt.Fprintln(w, err)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameList:
		o.printGameList(v)
	case GameDetail:
		o.printGameDetail(v)
	case Recap:
		o.printRecap(v)
	case ScoreResult:
		o.printScoreResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// GameSummary is one line of the game list
type GameSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Players     int       `json:"players"`
	Leader      string    `json:"leader,omitempty"`
	LeaderTotal int       `json:"leaderTotal"`
	Finished    bool      `json:"finished"`
}

// GameList lists every game
type GameList struct {
	Games []GameSummary `json:"games"`
}

// StandingView is a player's place in a game
type StandingView struct {
	Rank   int           `json:"rank"`
	Medal  string        `json:"medal"`
	Player models.Player `json:"player"`
	Total  int           `json:"total"`
	Rounds []int         `json:"rounds"`
}

// MessageView is a flavour message shown after a change
type MessageView struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// GameDetail is the score sheet of one game
type GameDetail struct {
	Game        *models.Game   `json:"game"`
	Standings   []StandingView `json:"standings"`
	RoundTotals []int          `json:"roundTotals"`
	NextRound   int            `json:"nextRound"`
	Message     *MessageView   `json:"message,omitempty"`
}

// Recap is the final ranking of a game
type Recap struct {
	Game        *models.Game   `json:"game"`
	Winner      *models.Player `json:"winner,omitempty"`
	WinnerScore int            `json:"winnerScore"`
	MaxRound    int            `json:"maxRound"`
	Standings   []StandingView `json:"standings"`
}

// ScoreResult is the outcome of a single score command
type ScoreResult struct {
	GameID   string        `json:"gameId"`
	Score    *models.Score `json:"score,omitempty"`
	Player   string        `json:"player,omitempty"`
	Action   string        `json:"action"`
	Finished bool          `json:"finished"`
	Message  *MessageView  `json:"message,omitempty"`
}
