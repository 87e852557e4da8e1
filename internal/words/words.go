// internal/words/words.go
//
// Word list management for the scoring engine.
//
// Responsibilities:
//   - Parse word-list files in any of the accepted formats.
//   - Keep an ordered list plus a set for membership checks.
//   - Supply Random, Contains, WordLen and friends.
//
// File formats (Parse):
//   1. A JSON array of strings. Comments and trailing commas are tolerated.
//   2. A single bracketed line of quoted tokens, e.g. ['crane','slate'].
//      Only the first line is read; each token loses its outer quote characters.
//   3. Anything else: one word per line, blank lines and "#" comments skipped.
//
// Constraints:
//   • Words are trimmed and lowercased; any other non-empty token is kept as written
//     (apostrophes, hyphens and digits included).
//   • Duplicates keep their first position.
//   • A List is read-only once built.

package words

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/jsonc"

	"github.com/robalobadob/wordle/apps/go-engine/assets"
)

// ErrEmptyList is returned when no usable words remain after normalization.
var ErrEmptyList = errors.New("words: list is empty")

var (
	defaultOnce sync.Once
	defaultList *List
	defaultErr  error
)

// List is an ordered, de-duplicated set of valid words.
type List struct {
	words []string
	set   map[string]struct{}
}

// NewList normalizes ws into a List. Only blank entries and repeats are skipped.
func NewList(ws []string) (*List, error) {
	l := &List{set: make(map[string]struct{}, len(ws))}
	blank := 0
	for _, w := range ws {
		w = Normalize(w)
		if w == "" {
			blank++
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	if blank > 0 {
		log.Debug().Int("blank", blank).Msg("words: skipped blank entries")
	}
	if len(l.words) == 0 {
		return nil, ErrEmptyList
	}
	return l, nil
}

// Default returns the embedded fallback list, parsed once.
func Default() (*List, error) {
	defaultOnce.Do(func() {
		data, err := assets.DefaultWords()
		if err != nil {
			defaultErr = fmt.Errorf("words: embedded list: %w", err)
			return
		}
		ws, err := Parse(data)
		if err != nil {
			defaultErr = fmt.Errorf("words: embedded list: %w", err)
			return
		}
		defaultList, defaultErr = NewList(ws)
	})
	return defaultList, defaultErr
}

// Load reads and parses the word-list file at path.
// File errors are wrapped, so errors.Is(err, fs.ErrNotExist) still holds.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	ws, err := Parse(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("words: parse %s: %w", path, err)
	}
	l, err := NewList(ws)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("words", l.Len()).Msg("word list loaded")
	return l, nil
}

// Parse splits raw file contents into word tokens, in file order.
// Tokens are returned as written; NewList does the normalizing.
func Parse(data []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' || trimmed[0] == '/' {
		var out []string
		jsonErr := json.Unmarshal(jsonc.ToJSON(trimmed), &out)
		if jsonErr == nil {
			return out, nil
		}
		if trimmed[0] == '[' {
			return parseBracketed(trimmed)
		}
		return nil, jsonErr
	}
	return parseLines(trimmed), nil
}

// parseBracketed reads the first line as [<q>w<q>,<q>w<q>,...].
func parseBracketed(data []byte) ([]string, error) {
	line, _, _ := bytes.Cut(data, []byte("\n"))
	s := strings.TrimSpace(string(line))
	if len(s) < 2 || s[len(s)-1] != ']' {
		return nil, fmt.Errorf("words: unterminated list %q", truncate(s, 32))
	}
	s = s[1 : len(s)-1]
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []string
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		first, _ := utf8.DecodeRuneInString(tok)
		last, _ := utf8.DecodeLastRuneInString(tok)
		if len(tok) < 2 || first != last || !isQuote(first) {
			return nil, fmt.Errorf("words: malformed token %q", tok)
		}
		out = append(out, tok[1:len(tok)-1])
	}
	return out, nil
}

// parseLines reads one word per line.
func parseLines(data []byte) []string {
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		w := strings.TrimSpace(line)
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Normalize trims and lowercases a list entry or a supplied goal.
// Guesses are never normalized.
func Normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// Contains reports whether w is a member of the list, compared byte for byte.
func (l *List) Contains(w string) bool {
	_, ok := l.set[w]
	return ok
}

// Len returns the number of words.
func (l *List) Len() int { return len(l.words) }

// At returns the i-th word in list order.
func (l *List) At(i int) string { return l.words[i] }

// Words returns a copy of the ordered words.
func (l *List) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// WordLen returns the common length (in letters) of all words, or 0 when lengths differ.
func (l *List) WordLen() int {
	n := utf8.RuneCountInString(l.words[0])
	for _, w := range l.words[1:] {
		if utf8.RuneCountInString(w) != n {
			return 0
		}
	}
	return n
}

// Random picks a word using r.
func (l *List) Random(r *rand.Rand) string {
	return l.words[r.IntN(len(l.words))]
}

func isQuote(r rune) bool {
	return r == '"' || r == '\'' || r == '`'
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
