package cli

import (
	"fmt"

	"github.com/KirkDiggler/flip7/internal/services/game"
	"github.com/spf13/cobra"
)

func (h *Handler) newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Single score commands",
	}

	cmd.AddCommand(h.newScoreAddCmd())
	cmd.AddCommand(h.newScoreSetCmd())
	cmd.AddCommand(h.newScoreDeleteCmd())

	return cmd
}

func (h *Handler) newScoreAddCmd() *cobra.Command {
	var round int

	cmd := &cobra.Command{
		Use:   "add <game> <player> <value> --round R",
		Short: "Add one player's score for a round",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := h.findGame(args[0])
			if err != nil {
				return err
			}

			player, err := findPlayer(g, args[1])
			if err != nil {
				return err
			}

			value, err := parseValue(args[2])
			if err != nil {
				return fmt.Errorf("invalid score: %w", err)
			}

			if round < 1 {
				return fmt.Errorf("invalid round: %d", round)
			}

			output := h.service.AddScore(&game.AddScoreInput{
				GameID:   g.ID,
				Round:    round,
				PlayerID: player.ID,
				Value:    value,
			})
			if output.Game == nil {
				return fmt.Errorf("%w: %s", ErrGameNotFound, g.ID)
			}

			result := ScoreResult{
				GameID:   output.Game.ID,
				Score:    output.Score,
				Player:   player.Name,
				Action:   "added",
				Finished: output.Finished,
			}
			if output.Finished {
				if result.Message, err = h.finishedMessage(cmd.Context(), output.Game); err != nil {
					return err
				}
			}

			h.out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&round, "round", "r", 0, "Round number")
	_ = cmd.MarkFlagRequired("round")

	return cmd
}

func (h *Handler) newScoreSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <game> <score-id> <value>",
		Short: "Change the value of a score",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := h.findGame(args[0])
			if err != nil {
				return err
			}

			if _, err := findScore(g, args[1]); err != nil {
				return err
			}

			value, err := parseValue(args[2])
			if err != nil {
				return fmt.Errorf("invalid score: %w", err)
			}

			output := h.service.UpdateScore(&game.UpdateScoreInput{
				GameID:  g.ID,
				ScoreID: args[1],
				Value:   value,
			})
			if output.Game == nil || !output.Updated {
				return fmt.Errorf("%w: %s", ErrScoreNotFound, args[1])
			}

			score, err := findScore(output.Game, args[1])
			if err != nil {
				return err
			}

			result := ScoreResult{
				GameID:   output.Game.ID,
				Score:    &score,
				Action:   "updated",
				Finished: output.Finished,
			}
			if player, ok := output.Game.Player(score.PlayerID); ok {
				result.Player = player.Name
			}
			if output.Finished {
				if result.Message, err = h.finishedMessage(cmd.Context(), output.Game); err != nil {
					return err
				}
			}

			h.out.Print(result)
			return nil
		},
	}
}

func (h *Handler) newScoreDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game> <score-id>",
		Short: "Delete a score",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := h.findGame(args[0])
			if err != nil {
				return err
			}

			if _, err := findScore(g, args[1]); err != nil {
				return err
			}

			output := h.service.DeleteScore(&game.DeleteScoreInput{
				GameID:  g.ID,
				ScoreID: args[1],
			})
			if !output.Deleted {
				return fmt.Errorf("%w: %s", ErrScoreNotFound, args[1])
			}

			h.out.Print(ScoreResult{
				GameID: g.ID,
				Action: "deleted",
			})
			return nil
		},
	}
}
