package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/flip7/internal/models"
	"github.com/KirkDiggler/flip7/internal/services/game"
	"github.com/spf13/cobra"
)

func (h *Handler) newGamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "games",
		Aliases: []string{"ls"},
		Short:   "List every game",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			games := h.service.Games()

			list := GameList{Games: make([]GameSummary, 0, len(games))}
			for i := range games {
				list.Games = append(list.Games, summarize(&games[i]))
			}

			h.out.Print(list)
			return nil
		},
	}
}

func (h *Handler) newNewCmd() *cobra.Command {
	var (
		name    string
		players []string
	)

	cmd := &cobra.Command{
		Use:   "new --player NAME [--player NAME...]",
		Short: "Start a new game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := playerNames(players)
			if len(names) == 0 {
				return ErrNoPlayers
			}

			input := &game.CreateGameInput{
				Name:    strings.TrimSpace(name),
				Players: make([]models.Player, 0, len(names)),
			}
			for _, playerName := range names {
				input.Players = append(input.Players, models.Player{
					ID:   h.uuid.NewUUID(),
					Name: playerName,
				})
			}

			output := h.service.CreateGame(input)
			h.logger.Debug("game created",
				slog.String("game_id", output.Game.ID),
				slog.Int("players", len(names)))

			h.out.Print(detail(output.Game))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the game")
	cmd.Flags().StringArrayVarP(&players, "player", "p", nil, "Player name, repeat for each player")

	return cmd
}

func (h *Handler) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <game>",
		Short: "Show the score sheet of a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := h.findGame(args[0])
			if err != nil {
				return err
			}

			h.out.Print(detail(g))
			return nil
		},
	}
}

func (h *Handler) newRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <game> <name>",
		Short: "Rename a game",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := h.findGame(args[0])
			if err != nil {
				return err
			}

			name := strings.TrimSpace(args[1])
			output := h.service.UpdateGame(&game.UpdateGameInput{
				GameID: g.ID,
				Patch:  game.GamePatch{Name: &name},
			})
			if output.Game == nil {
				return fmt.Errorf("%w: %s", ErrGameNotFound, g.ID)
			}

			h.out.Print(detail(output.Game))
			return nil
		},
	}
}

func (h *Handler) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game>",
		Short: "Delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := h.findGame(args[0])
			if err != nil {
				return err
			}

			output := h.service.DeleteGame(&game.DeleteGameInput{GameID: g.ID})
			if !output.Deleted {
				return fmt.Errorf("%w: %s", ErrGameNotFound, g.ID)
			}

			h.out.PrintMessage(fmt.Sprintf("Deleted %s", gameName(g)))
			return nil
		},
	}
}

func (h *Handler) newRecapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recap <game>",
		Short: "Show the final ranking of a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := h.findGame(args[0])
			if err != nil {
				return err
			}

			h.out.Print(recap(g))
			return nil
		},
	}
}
