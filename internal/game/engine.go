// internal/game/engine.go
//
// Scoring engine and session state for a single game.
// Responsibilities:
//   - Create sessions with a goal that is supplied or drawn from an injected random source.
//   - Validate guesses against the configured word list.
//   - Score guesses with per-letter duplicate accounting.
//   - Track the transition in_progress → finished.
//
// Notes:
//   - A finished session ignores further guesses (Submit and Record are no-ops).
//   - randomID() is a compact hex identifier for correlating sessions.

package game

import (
	crand "crypto/rand"
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

// Game holds the state of one session.
type Game struct {
	id      string
	goal    string
	list    *words.List
	history []Turn
	status  Status
}

// Option configures New.
type Option func(*options)

type options struct {
	goal string
	rng  *rand.Rand
	id   string
}

// WithGoal fixes the goal instead of drawing one from the list.
func WithGoal(goal string) Option {
	return func(o *options) { o.goal = goal }
}

// WithRand sets the source used to draw a goal. Seed it for reproducible games.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithID overrides the generated session identifier.
func WithID(id string) Option {
	return func(o *options) { o.id = id }
}

// New constructs a session over list.
// Without WithGoal the goal is drawn from list with the configured random source,
// or a time-seeded one when none is given.
func New(list *words.List, opts ...Option) (*Game, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	goal := words.Normalize(o.goal)
	if goal == "" {
		r := o.rng
		if r == nil {
			seed := uint64(time.Now().UnixNano())
			r = rand.New(rand.NewPCG(seed, seed>>1))
		}
		goal = list.Random(r)
	} else if !list.Contains(goal) {
		return nil, fmt.Errorf("goal %q: %w", goal, ErrInvalidGoal)
	}

	id := o.id
	if id == "" {
		id = randomID()
	}
	return &Game{
		id:     id,
		goal:   goal,
		list:   list,
		status: StatusInProgress,
	}, nil
}

// ID returns the session identifier.
func (g *Game) ID() string { return g.id }

// Goal returns the secret word.
func (g *Game) Goal() string { return g.goal }

// Status reports the lifecycle state.
func (g *Game) Status() Status { return g.status }

// Finished reports whether the goal has been guessed.
func (g *Game) Finished() bool { return g.status == StatusFinished }

// Turns is the number of recorded guesses.
func (g *Game) Turns() int { return len(g.history) }

// History returns a copy of the recorded turns.
func (g *Game) History() []Turn {
	out := make([]Turn, len(g.history))
	copy(out, g.history)
	return out
}

// Validate checks that guess is a member of the word list.
// The guess is compared verbatim: padded, re-cased or wrong-length strings are not members.
func (g *Game) Validate(guess string) (string, error) {
	if !g.list.Contains(guess) {
		return "", fmt.Errorf("%q: %w", guess, ErrInvalidGuess)
	}
	return guess, nil
}

// Score validates guess and scores it against the goal without recording it.
func (g *Game) Score(guess string) (Pattern, error) {
	w, err := g.Validate(guess)
	if err != nil {
		return Pattern{}, err
	}
	return Score(g.goal, w), nil
}

// IsWon reports whether guess is the goal.
func (g *Game) IsWon(guess string) bool {
	return guess == g.goal
}

// RequestGuess asks agent for the next guess, passing a copy of the history.
func (g *Game) RequestGuess(agent Agent) string {
	return agent.Guess(g.History())
}

// Record appends a scored guess. It finishes the session when guess is the goal,
// and does nothing once the session is finished.
func (g *Game) Record(guess string, p Pattern) {
	if g.Finished() {
		return
	}
	g.history = append(g.history, Turn{Guess: guess, Pattern: p})
	if g.IsWon(guess) {
		g.status = StatusFinished
	}
}

// Submit validates, scores and records guess.
// Invalid guesses leave the history untouched. After the session is finished it
// returns the zero Pattern and no error.
func (g *Game) Submit(guess string) (Pattern, error) {
	if g.Finished() {
		return Pattern{}, nil
	}
	w, err := g.Validate(guess)
	if err != nil {
		return Pattern{}, err
	}
	p := Score(g.goal, w)
	g.Record(w, p)
	log.Debug().Str("game", g.id).Int("turn", len(g.history)).Str("guess", w).Str("pattern", p.String()).Msg("guess scored")
	return p, nil
}

// Play asks agent for guesses until one equals the goal and returns the full history.
// An invalid guess stops the loop with ErrInvalidGuess; nothing is recorded for it.
// Termination depends on the agent eventually producing the goal.
func (g *Game) Play(agent Agent) ([]Turn, error) {
	for !g.Finished() {
		guess := g.RequestGuess(agent)
		if _, err := g.Submit(guess); err != nil {
			return g.History(), err
		}
	}
	return g.History(), nil
}

// Snapshot captures the session as a Record.
func (g *Game) Snapshot() Record {
	return Record{
		ID:    g.id,
		Goal:  g.goal,
		Turns: g.History(),
		Won:   g.Finished(),
	}
}

// Score compares guess against goal and returns one Information per guess position.
//
// For every distinct letter c of the goal:
//   - positions where guess and goal agree on c are Exact;
//   - the remaining occurrences of c in guess, left to right, are Misplaced until
//     count(c, goal) minus the Exact count is used up.
//
// Each position keeps the highest-ranked value it was given. Untouched positions are Absent.
// goal and guess are compared rune by rune and are expected to have the same length.
func Score(goal, guess string) Pattern {
	goalRunes := []rune(goal)
	guessRunes := []rune(guess)
	n := min(len(goalRunes), len(guessRunes))
	infos := make([]Information, len(guessRunes))

	counts := make(map[rune]int, len(goalRunes))
	var letters []rune
	for _, c := range goalRunes {
		if counts[c] == 0 {
			letters = append(letters, c)
		}
		counts[c]++
	}

	for _, c := range letters {
		exact := 0
		for j := 0; j < n; j++ {
			if guessRunes[j] == c && goalRunes[j] == c {
				infos[j] = MaxInformation(infos[j], Exact)
				exact++
			}
		}

		remaining := counts[c] - exact
		for j := 0; j < len(guessRunes) && remaining > 0; j++ {
			if guessRunes[j] != c || (j < n && goalRunes[j] == c) {
				continue
			}
			infos[j] = MaxInformation(infos[j], Misplaced)
			remaining--
		}
	}
	return Pattern{infos: infos}
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = crand.Read(b[:])
	return hex.EncodeToString(b[:])
}
