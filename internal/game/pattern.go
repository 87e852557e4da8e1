// internal/game/pattern.go
//
// Per-position feedback for a scored guess.
// Responsibilities:
//   - Hold an immutable sequence of Information values.
//   - Render it as digits (0/1/2), as an integer, or as G/Y/. glyphs.
//   - Round-trip through text so Turns encode cleanly to JSON and YAML.

package game

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Pattern is the ordered Information sequence for one guess.
// It is immutable; the zero value is the empty pattern.
type Pattern struct {
	infos []Information
}

// NewPattern builds a Pattern from infos. The slice is copied.
func NewPattern(infos ...Information) Pattern {
	if len(infos) == 0 {
		return Pattern{}
	}
	cp := make([]Information, len(infos))
	copy(cp, infos)
	return Pattern{infos: cp}
}

// ParsePattern reads a digit string such as "02110".
// Length is not checked; compare Len against the guess if that matters.
func ParsePattern(s string) (Pattern, error) {
	infos := make([]Information, 0, len(s))
	for idx, r := range s {
		info, err := ParseInformation(r)
		if err != nil {
			return Pattern{}, fmt.Errorf("pattern %q at index %d: %w", s, idx, err)
		}
		infos = append(infos, info)
	}
	return Pattern{infos: infos}, nil
}

// Len is the number of positions.
func (p Pattern) Len() int { return len(p.infos) }

// At returns the Information at position i. It panics if i is out of range.
func (p Pattern) At(i int) Information { return p.infos[i] }

// All iterates positions in order.
func (p Pattern) All() iter.Seq2[int, Information] {
	return func(yield func(int, Information) bool) {
		for i, info := range p.infos {
			if !yield(i, info) {
				return
			}
		}
	}
}

// Infos returns a copy of the underlying values.
func (p Pattern) Infos() []Information {
	out := make([]Information, len(p.infos))
	copy(out, p.infos)
	return out
}

// Equal compares position by position.
func (p Pattern) Equal(q Pattern) bool {
	if len(p.infos) != len(q.infos) {
		return false
	}
	for i := range p.infos {
		if p.infos[i] != q.infos[i] {
			return false
		}
	}
	return true
}

// Solved reports whether every position is Exact. The empty pattern is never solved.
func (p Pattern) Solved() bool {
	if len(p.infos) == 0 {
		return false
	}
	for _, info := range p.infos {
		if info != Exact {
			return false
		}
	}
	return true
}

// String is the canonical digit form.
func (p Pattern) String() string {
	var b strings.Builder
	b.Grow(len(p.infos))
	for _, info := range p.infos {
		b.WriteString(info.String())
	}
	return b.String()
}

// Int reads the digit form as a base-10 integer.
// Leading Absent digits are lost, so "012" and "12" collide; use it for display only.
func (p Pattern) Int() int {
	if len(p.infos) == 0 {
		return 0
	}
	n, err := strconv.Atoi(p.String())
	if err != nil {
		return 0
	}
	return n
}

// Glyphs renders G (exact), Y (misplaced) and . (absent) per position.
func (p Pattern) Glyphs() string {
	var b strings.Builder
	b.Grow(len(p.infos))
	for _, info := range p.infos {
		switch info {
		case Exact:
			b.WriteByte('G')
		case Misplaced:
			b.WriteByte('Y')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

// MarshalText emits the digit form, so JSON and YAML see "02110".
func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses the digit form.
func (p *Pattern) UnmarshalText(text []byte) error {
	parsed, err := ParsePattern(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
