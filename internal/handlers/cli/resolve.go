package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/flip7/internal/models"
)

var (
	// ErrGameNotFound is returned when no game matches a reference
	ErrGameNotFound = errors.New("game not found")

	// ErrAmbiguousGame is returned when an ID prefix matches several games
	ErrAmbiguousGame = errors.New("game reference matches several games")

	// ErrPlayerNotFound is returned when no player of the game matches a reference
	ErrPlayerNotFound = errors.New("player not found")

	// ErrScoreNotFound is returned when a game has no score with an ID
	ErrScoreNotFound = errors.New("score not found")

	// ErrNoPlayers is returned when a game would be created without players
	ErrNoPlayers = errors.New("at least one player is required")

	// ErrIncompleteRound is returned when a round misses a player's value
	ErrIncompleteRound = errors.New("every player needs a score for the round")
)

// findGame resolves a full game ID or a unique ID prefix
func (h *Handler) findGame(ref string) (*models.Game, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrGameNotFound
	}

	if game, ok := h.service.GetGame(ref); ok {
		return game, nil
	}

	var match *models.Game
	for _, game := range h.service.Games() {
		if !strings.HasPrefix(game.ID, ref) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%w: %s", ErrAmbiguousGame, ref)
		}
		found := game
		match = &found
	}

	if match == nil {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, ref)
	}
	return match, nil
}

// findPlayer resolves a player ID or a player name, ignoring case
func findPlayer(game *models.Game, ref string) (models.Player, error) {
	ref = strings.TrimSpace(ref)

	if player, ok := game.Player(ref); ok {
		return player, nil
	}

	for _, player := range game.Players {
		if strings.EqualFold(player.Name, ref) {
			return player, nil
		}
	}

	return models.Player{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, ref)
}

// findScore returns the score with the given ID
func findScore(game *models.Game, scoreID string) (models.Score, error) {
	for _, score := range game.Scores {
		if score.ID == scoreID {
			return score, nil
		}
	}
	return models.Score{}, fmt.Errorf("%w: %s", ErrScoreNotFound, scoreID)
}

// playerNames trims names and drops the blank ones
func playerNames(names []string) []string {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			kept = append(kept, name)
		}
	}
	return kept
}

// parseRoundValues reads PLAYER=VALUE arguments into a value per player ID.
// Every player of the game must be given exactly one value.
func parseRoundValues(game *models.Game, args []string) (map[string]int, error) {
	values := make(map[string]int, len(args))

	for _, arg := range args {
		i := strings.LastIndex(arg, "=")
		if i <= 0 {
			return nil, fmt.Errorf("invalid round value %q, expected PLAYER=VALUE", arg)
		}

		player, err := findPlayer(game, arg[:i])
		if err != nil {
			return nil, err
		}

		value, err := parseValue(arg[i+1:])
		if err != nil {
			return nil, fmt.Errorf("invalid score for %s: %w", player.Name, err)
		}

		if _, ok := values[player.ID]; ok {
			return nil, fmt.Errorf("%s has more than one score", player.Name)
		}
		values[player.ID] = value
	}

	var missing []string
	for _, player := range game.Players {
		if _, ok := values[player.ID]; !ok {
			missing = append(missing, player.Name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrIncompleteRound, strings.Join(missing, ", "))
	}

	return values, nil
}

func parseValue(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func parseRound(s string) (int, error) {
	round, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid round: %w", err)
	}
	if round < 1 {
		return 0, fmt.Errorf("invalid round: %d", round)
	}
	return round, nil
}
