// internal/cli/play.go
//
// `wordle play`: one session driven by an agent.
// Responsibilities:
//   - Pick the goal from --goal, --daily or --seed.
//   - Run the loop, bounded by --max-turns when set.
//   - Print the history, even when the session stops early.

package cli

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-engine/internal/agent"
	"github.com/robalobadob/wordle/apps/go-engine/internal/daily"
	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
)

// ErrTurnLimit is returned when a session is still unsolved after max-turns guesses.
var ErrTurnLimit = errors.New("turn limit reached")

func (a *app) newPlayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one session with a guessing agent and print its history",
		Example: `  wordle play --goal speed --agent scripted --script crane,erase,speed
  wordle play --daily --format json
  wordle play --seed 7 --opener crane --max-turns 50`,
		Args: cobra.NoArgs,
		RunE: a.runPlay,
	}
	f := cmd.Flags()
	f.String("goal", "", "secret word (default: random from the list)")
	f.Int64("seed", 0, "seed for the random goal (0: time-based)")
	f.Bool("daily", false, "use the word of the day as the goal")
	f.String("daily-salt", "local_dev_salt", "salt for the word of the day")
	f.String("agent", "sequential", "guessing agent: sequential|placeholder|scripted")
	f.String("opener", "", "first guess (sequential) or fixed guess (placeholder)")
	f.StringSlice("script", nil, "guesses replayed by the scripted agent")
	f.Int("max-turns", 0, "give up after this many guesses (0: unbounded)")
	return cmd
}

func (a *app) runPlay(cmd *cobra.Command, _ []string) error {
	cfg := a.cfg
	list, err := a.loadList()
	if err != nil {
		return err
	}

	g, err := game.New(list, a.goalOptions()...)
	if err != nil {
		return err
	}
	ag, err := agent.ByName(cfg.Agent, list, cfg.Opener, cfg.Script)
	if err != nil {
		return err
	}

	log.Info().Str("game", g.ID()).Str("agent", cfg.Agent).Msg("session started")
	playErr := playBounded(g, ag, cfg.MaxTurns)
	rec := g.Snapshot()
	if err := renderRecord(cmd.OutOrStdout(), cfg.Format, rec); err != nil {
		return err
	}
	if playErr != nil {
		return playErr
	}
	log.Info().Str("game", g.ID()).Int("turns", len(rec.Turns)).Msg("session finished")
	return nil
}

// goalOptions turns --goal, --daily and --seed into game options.
func (a *app) goalOptions() []game.Option {
	cfg := a.cfg
	switch {
	case cfg.Daily:
		now := time.Now()
		log.Debug().Str("date", daily.DateKey(now)).Msg("daily goal")
		return []game.Option{game.WithRand(daily.NewPicker(cfg.DailySalt).Rand(now))}
	case cfg.Goal != "":
		return []game.Option{game.WithGoal(cfg.Goal)}
	case cfg.Seed != 0:
		s := uint64(cfg.Seed)
		return []game.Option{game.WithRand(rand.New(rand.NewPCG(s, s)))}
	}
	return nil
}

// playBounded runs the session loop, stopping after maxTurns guesses when maxTurns > 0.
func playBounded(g *game.Game, ag game.Agent, maxTurns int) error {
	if maxTurns <= 0 {
		_, err := g.Play(ag)
		return err
	}
	for !g.Finished() {
		if g.Turns() >= maxTurns {
			return fmt.Errorf("%w after %d guesses", ErrTurnLimit, g.Turns())
		}
		if _, err := g.Submit(g.RequestGuess(ag)); err != nil {
			return err
		}
	}
	return nil
}
