// internal/cli/bench.go
//
// `wordle bench`: play the sequential agent against every goal in the list.
// Records go through the in-memory store; the summary is computed from it.

package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-engine/internal/agent"
	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
	"github.com/robalobadob/wordle/apps/go-engine/internal/store"
)

type benchSummary struct {
	Games      int     `json:"games" yaml:"games"`
	Won        int     `json:"won" yaml:"won"`
	TotalTurns int     `json:"totalTurns" yaml:"total_turns"`
	Average    float64 `json:"averageTurns" yaml:"average_turns"`
	WorstGoal  string  `json:"worstGoal" yaml:"worst_goal"`
	WorstTurns int     `json:"worstTurns" yaml:"worst_turns"`
}

func (a *app) newBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Play the sequential agent against every goal in the list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return err
			}
			list, err := a.loadList()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			st := store.NewMemoryStore()
			ag := agent.NewSequential(list, a.cfg.Opener)
			n := list.Len()
			if limit > 0 && limit < n {
				n = limit
			}
			for i := 0; i < n; i++ {
				g, err := game.New(list, game.WithGoal(list.At(i)), game.WithID(fmt.Sprintf("bench-%05d", i)))
				if err != nil {
					return err
				}
				if _, err := g.Play(ag); err != nil {
					return fmt.Errorf("goal %s: %w", g.Goal(), err)
				}
				if err := st.Save(ctx, g.Snapshot()); err != nil {
					return err
				}
			}

			records, err := st.List(ctx)
			if err != nil {
				return err
			}
			sum := summarize(records)
			log.Info().Int("games", sum.Games).Float64("average", sum.Average).Msg("bench complete")
			return renderSummary(cmd.OutOrStdout(), a.cfg.Format, sum)
		},
	}
	cmd.Flags().Int("limit", 0, "only use the first N words as goals (0: all)")
	cmd.Flags().String("opener", "", "first guess of every session")
	return cmd
}

func summarize(records []game.Record) benchSummary {
	var s benchSummary
	for _, r := range records {
		s.Games++
		if r.Won {
			s.Won++
		}
		turns := len(r.Turns)
		s.TotalTurns += turns
		if turns > s.WorstTurns {
			s.WorstTurns, s.WorstGoal = turns, r.Goal
		}
	}
	if s.Games > 0 {
		s.Average = float64(s.TotalTurns) / float64(s.Games)
	}
	return s
}
