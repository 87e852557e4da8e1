// internal/cli/root.go
//
// Root command, exit codes and shared setup.
// Responsibilities:
//   - Load configuration and configure the global zerolog logger.
//   - Register the play, score, bench and words subcommands.
//   - Map errors to exit codes (0 ok, 1 general, 2 invalid input).

// Package cli implements the cobra commands of the wordle binary.
//
// Every command resolves its settings through the config package in the root
// PersistentPreRunE, so flags, WORDLE_* variables, .env and --config files are
// honored the same way everywhere.
package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-engine/internal/config"
	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

// Exit codes returned by Execute.
const (
	ExitOK           = 0
	ExitGeneralError = 1
	ExitInvalidInput = 2
)

// Version is injected from main.
var Version = "dev"

// app carries the resolved configuration from PersistentPreRunE to the subcommands.
type app struct {
	cfg *config.Config
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	var configFile string

	root := &cobra.Command{
		Use:   "wordle",
		Short: "Score Wordle guesses and play sessions against guessing agents",
		Long: `wordle scores guesses against a secret word with per-letter feedback:
2 = right letter, right place; 1 = in the word elsewhere; 0 = no further copies.

The word list is a JSON array of strings (comments allowed), a single bracketed
line of quoted words, or one word per line. Without --words an embedded list is used.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.New(), configFile, cmd.Flags())
			if err != nil {
				return err
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.TimeOnly}).
				With().Timestamp().Logger()
			zerolog.SetGlobalLevel(cfg.Level())
			a.cfg = cfg
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "YAML config file")
	pf.String("words", "", "word list file (default: embedded list)")
	pf.String("format", "text", "output format: text|json|yaml")
	pf.String("log-level", "info", "log level: debug|info|warn|error")

	root.AddCommand(a.newPlayCommand())
	root.AddCommand(a.newScoreCommand())
	root.AddCommand(a.newBenchCommand())
	root.AddCommand(a.newWordsCommand())
	return root
}

// Execute runs root and maps the outcome to an exit code.
func Execute(root *cobra.Command) int {
	err := root.Execute()
	if err == nil {
		return ExitOK
	}
	log.Error().Err(err).Msg("wordle failed")
	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, game.ErrInvalidGuess), errors.Is(err, game.ErrInvalidGoal):
		return ExitInvalidInput
	default:
		return ExitGeneralError
	}
}

// loadList returns the configured word list, or the embedded one.
func (a *app) loadList() (*words.List, error) {
	if a.cfg.Words == "" {
		return words.Default()
	}
	l, err := words.Load(a.cfg.Words)
	if err != nil {
		return nil, fmt.Errorf("load word list: %w", err)
	}
	log.Info().Str("path", a.cfg.Words).Int("words", l.Len()).Msg("word list loaded")
	return l, nil
}
