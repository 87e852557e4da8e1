// internal/daily/daily.go
//
// Deterministic "word of the day" selection.
// Responsibilities:
//   - Derive a per-day PCG seed from HMAC-SHA256(salt, YYYY-MM-DD).
//   - Hand that seeded source to the session, which draws the goal like any seeded game.
//
// Notes:
//   - Days are UTC days, so every player with the same list and salt shares a word.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"
	"time"

	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Picker chooses the goal for a calendar day.
type Picker struct {
	salt []byte
}

// NewPicker returns a Picker keyed by salt.
func NewPicker(salt string) Picker {
	return Picker{salt: []byte(salt)}
}

// Seed returns the PCG seed pair for the day containing t.
func (p Picker) Seed(t time.Time) (uint64, uint64) {
	mac := hmac.New(sha256.New, p.salt)
	mac.Write([]byte(DateKey(t)))
	sum := mac.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8]), binary.BigEndian.Uint64(sum[8:16])
}

// Rand returns a source seeded for the day containing t.
func (p Picker) Rand(t time.Time) *rand.Rand {
	return rand.New(rand.NewPCG(p.Seed(t)))
}

// Goal draws the word of the day from list.
func (p Picker) Goal(list *words.List, t time.Time) string {
	return list.Random(p.Rand(t))
}
