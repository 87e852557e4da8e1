// internal/agent/agent.go
//
// Guess providers for driving sessions.
// Responsibilities:
//   - Placeholder: one fixed word.
//   - Sequential: an opener, then the list in order.
//   - Scripted: a fixed replay.
//   - ByName: build one from configuration.

// Package agent holds the guess providers a session can be played with.
// None of them reason about patterns; they exist to drive sessions.
package agent

import (
	"fmt"

	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

// DefaultPlaceholder is the word Placeholder returns when none is configured.
const DefaultPlaceholder = "words"

// Placeholder ignores the history and always guesses the same word.
// It only finishes a session whose goal is that word.
type Placeholder struct {
	Word string
}

func (p Placeholder) Guess([]game.Turn) string {
	if p.Word == "" {
		return DefaultPlaceholder
	}
	return p.Word
}

// Sequential guesses an optional opener, then every list word in order,
// skipping words already in the history. It reaches any goal within list.Len()+1 turns.
// An empty history starts it over, so one value can play several sessions in turn.
type Sequential struct {
	list   *words.List
	opener string
	next   int
}

// NewSequential returns a Sequential agent over list.
func NewSequential(list *words.List, opener string) *Sequential {
	return &Sequential{list: list, opener: words.Normalize(opener)}
}

func (s *Sequential) Guess(history []game.Turn) string {
	if len(history) == 0 {
		s.next = 0
		if s.opener != "" {
			return s.opener
		}
	}
	tried := make(map[string]struct{}, len(history))
	for _, t := range history {
		tried[t.Guess] = struct{}{}
	}
	for s.next < s.list.Len() {
		w := s.list.At(s.next)
		s.next++
		if _, ok := tried[w]; !ok {
			return w
		}
	}
	// Exhausted: the goal is not in the list, repeat the last word.
	return s.list.At(s.list.Len() - 1)
}

// Scripted replays a fixed sequence, repeating its last word once exhausted.
type Scripted struct {
	Words []string
}

func (s Scripted) Guess(history []game.Turn) string {
	if len(s.Words) == 0 {
		return ""
	}
	if len(history) < len(s.Words) {
		return s.Words[len(history)]
	}
	return s.Words[len(s.Words)-1]
}

// ByName builds an agent from its configuration name.
// opener is the first guess for sequential and the fixed word for placeholder;
// script is the sequence replayed by scripted.
func ByName(name string, list *words.List, opener string, script []string) (game.Agent, error) {
	switch name {
	case "", "sequential":
		return NewSequential(list, opener), nil
	case "placeholder":
		return Placeholder{Word: opener}, nil
	case "scripted":
		if len(script) == 0 {
			return nil, fmt.Errorf("agent: scripted agent needs at least one word")
		}
		return Scripted{Words: script}, nil
	}
	return nil, fmt.Errorf("agent: unknown agent %q", name)
}
