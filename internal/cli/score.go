// internal/cli/score.go
//
// `wordle score <goal> <guess>`: score one guess without a session loop.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
)

type scoreResult struct {
	Goal    string       `json:"goal" yaml:"goal"`
	Guess   string       `json:"guess" yaml:"guess"`
	Pattern game.Pattern `json:"pattern" yaml:"pattern"`
	Int     int          `json:"int" yaml:"int"`
}

func (a *app) newScoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "score <goal> <guess>",
		Short:   "Score a single guess against a goal",
		Example: "  wordle score speed erase   # 10011",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.loadList()
			if err != nil {
				return err
			}
			g, err := game.New(list, game.WithGoal(args[0]))
			if err != nil {
				return err
			}
			guess, err := g.Validate(args[1])
			if err != nil {
				return err
			}
			p := game.Score(g.Goal(), guess)
			return renderScore(cmd.OutOrStdout(), a.cfg.Format, scoreResult{
				Goal: g.Goal(), Guess: guess, Pattern: p, Int: p.Int(),
			})
		},
	}
}
