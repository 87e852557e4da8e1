// internal/cli/output.go
//
// Rendering for text, json and yaml output formats.

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
)

// encode writes v as JSON or YAML. It reports false for the text format.
func encode(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	}
	return false, nil
}

func renderRecord(w io.Writer, format string, rec game.Record) error {
	if done, err := encode(w, format, rec); done {
		return err
	}
	for i, t := range rec.Turns {
		if _, err := fmt.Fprintf(w, "%3d  %s  %s  %s\n", i+1, t.Guess, t.Pattern, t.Pattern.Glyphs()); err != nil {
			return err
		}
	}
	if rec.Won {
		_, err := fmt.Fprintf(w, "solved %q in %d guesses\n", rec.Goal, len(rec.Turns))
		return err
	}
	_, err := fmt.Fprintf(w, "not solved after %d guesses (goal %q)\n", len(rec.Turns), rec.Goal)
	return err
}

func renderScore(w io.Writer, format string, r scoreResult) error {
	if done, err := encode(w, format, r); done {
		return err
	}
	_, err := fmt.Fprintf(w, "%s  %s\n", r.Pattern, r.Pattern.Glyphs())
	return err
}

func renderSummary(w io.Writer, format string, s benchSummary) error {
	if done, err := encode(w, format, s); done {
		return err
	}
	_, err := fmt.Fprintf(w, "games: %d  won: %d  average: %.2f  worst: %s (%d)\n",
		s.Games, s.Won, s.Average, s.WorstGoal, s.WorstTurns)
	return err
}

func renderWords(w io.Writer, format string, info wordsInfo) error {
	if done, err := encode(w, format, info); done {
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %d words, length %d\n", info.Source, info.Count, info.WordLen)
	return err
}
