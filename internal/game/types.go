// internal/game/types.go
//
// Core type definitions for the Wordle scoring engine.
// Defines:
//   - Information: per-letter signal of a scored guess (absent/misplaced/exact).
//   - Turn: one scored guess in a session's history.
//   - Status: session lifecycle (in_progress → finished).
//   - Agent: the collaborator that proposes guesses.
//   - Record: a storable snapshot of a session.

package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGuess is returned when a guess is not a member of the word list.
	ErrInvalidGuess = errors.New("invalid guess")
	// ErrInvalidGoal is returned when a supplied goal is not a member of the word list.
	ErrInvalidGoal = errors.New("invalid goal")
	// ErrParse is returned when a pattern string holds a character other than 0, 1 or 2.
	ErrParse = errors.New("parse error")
)

// Information is the evaluation result for a single letter of a guess.
// Values:
//   - Absent (0):    the letter contributes no further signal.
//   - Misplaced (1): the letter is in the goal, but elsewhere.
//   - Exact (2):     the letter matches the goal at this position.
type Information int

const (
	Absent Information = iota
	Misplaced
	Exact
)

// Rank orders Information values: Exact > Misplaced > Absent.
// Unknown values rank below Absent.
func (i Information) Rank() int {
	switch i {
	case Exact:
		return 2
	case Misplaced:
		return 1
	case Absent:
		return 0
	default:
		return -1
	}
}

// IsValid reports whether i is one of the three defined values.
func (i Information) IsValid() bool { return i.Rank() >= 0 }

// String renders the digit form ("0", "1" or "2").
func (i Information) String() string {
	if !i.IsValid() {
		return fmt.Sprintf("Information(%d)", int(i))
	}
	return string(rune('0' + i.Rank()))
}

// ParseInformation converts a digit rune into an Information value.
func ParseInformation(r rune) (Information, error) {
	switch r {
	case '0':
		return Absent, nil
	case '1':
		return Misplaced, nil
	case '2':
		return Exact, nil
	}
	return Absent, fmt.Errorf("%w: unexpected character %q", ErrParse, r)
}

// MaxInformation returns whichever of a and b ranks higher.
func MaxInformation(a, b Information) Information {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// Turn is one entry of a session history.
type Turn struct {
	Guess   string  `json:"guess" yaml:"guess"`
	Pattern Pattern `json:"pattern" yaml:"pattern"`
}

// Status is the coarse lifecycle state of a session.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusFinished   Status = "finished"
)

func (s Status) String() string { return string(s) }

// Agent proposes the next guess given everything scored so far.
// history is empty on the first call.
type Agent interface {
	Guess(history []Turn) string
}

// AgentFunc adapts a plain function to the Agent interface.
type AgentFunc func(history []Turn) string

func (f AgentFunc) Guess(history []Turn) string { return f(history) }

// Record is a snapshot of a session, suitable for storing and rendering.
type Record struct {
	ID    string `json:"id" yaml:"id"`
	Goal  string `json:"goal" yaml:"goal"`
	Turns []Turn `json:"turns" yaml:"turns"`
	Won   bool   `json:"won" yaml:"won"`
}
