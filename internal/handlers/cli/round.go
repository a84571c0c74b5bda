package cli

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/flip7/internal/models"
	"github.com/KirkDiggler/flip7/internal/services/game"
	"github.com/KirkDiggler/flip7/internal/services/messaging"
	"github.com/KirkDiggler/flip7/internal/services/scoring"
	"github.com/spf13/cobra"
)

func (h *Handler) newRoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Round commands",
	}

	cmd.AddCommand(h.newRoundSaveCmd())
	cmd.AddCommand(h.newRoundDeleteCmd())

	return cmd
}

func (h *Handler) newRoundSaveCmd() *cobra.Command {
	var round int

	cmd := &cobra.Command{
		Use:   "save <game> <player=value>...",
		Short: "Save every player's score for a round",
		Long: `Save every player's score for a round.

Players are given by name or ID. The round defaults to the next one; saving
a round that already has scores replaces them.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := h.findGame(args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("round") {
				if round < 1 {
					return fmt.Errorf("invalid round: %d", round)
				}
			} else {
				round = scoring.NextRound(g)
			}

			values, err := parseRoundValues(g, args[1:])
			if err != nil {
				return err
			}

			output := h.service.SaveRound(&game.SaveRoundInput{
				GameID: g.ID,
				Round:  round,
				Values: values,
			})
			if output.Game == nil {
				return fmt.Errorf("%w: %s", ErrGameNotFound, g.ID)
			}

			message, err := h.roundMessage(cmd.Context(), output.Game, round, output.Finished)
			if err != nil {
				return err
			}

			d := detail(output.Game)
			d.Message = message
			h.out.Print(d)
			return nil
		},
	}

	cmd.Flags().IntVarP(&round, "round", "r", 0, "Round number, the next round by default")

	return cmd
}

func (h *Handler) newRoundDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game> <round>",
		Short: "Delete every score of a round",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := h.findGame(args[0])
			if err != nil {
				return err
			}

			round, err := parseRound(args[1])
			if err != nil {
				return err
			}

			output := h.service.DeleteRound(&game.DeleteRoundInput{
				GameID: g.ID,
				Round:  round,
			})
			if output.Game == nil {
				return fmt.Errorf("%w: %s", ErrGameNotFound, g.ID)
			}

			h.out.Print(detail(output.Game))
			return nil
		},
	}
}

// roundMessage announces the winner when the round finished the game,
// otherwise the leader after the round
func (h *Handler) roundMessage(ctx context.Context, g *models.Game, round int, finished bool) (*MessageView, error) {
	if finished {
		return h.finishedMessage(ctx, g)
	}

	leader, total, ok := scoring.Leader(g)
	if !ok {
		return nil, nil
	}

	pointsToWin := scoring.WinningScore - total
	if pointsToWin < 0 {
		pointsToWin = 0
	}

	output, err := h.messaging.GetRoundSavedMessage(ctx, &messaging.GetRoundSavedMessageInput{
		Round:       round,
		LeaderName:  leader.Name,
		LeaderTotal: total,
		PointsToWin: pointsToWin,
		Tone:        h.tone(),
	})
	if err != nil {
		return nil, err
	}

	return &MessageView{Title: output.Title, Message: output.Message}, nil
}

func (h *Handler) finishedMessage(ctx context.Context, g *models.Game) (*MessageView, error) {
	winner, ok := g.Player(g.WinnerID)
	if !ok {
		return nil, nil
	}

	output, err := h.messaging.GetGameFinishedMessage(ctx, &messaging.GetGameFinishedMessageInput{
		WinnerName:  winner.Name,
		WinnerScore: scoring.PlayerTotal(g, winner.ID),
		Tone:        h.tone(),
	})
	if err != nil {
		return nil, err
	}

	return &MessageView{Title: output.Title, Message: output.Message}, nil
}
