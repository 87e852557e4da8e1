package words

import (
	"errors"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse_Formats(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"json array", `["crane","slate","speed"]`, []string{"crane", "slate", "speed"}},
		{"json with comments and trailing comma", "// list\n[\n  \"crane\", // first\n  \"slate\",\n]\n", []string{"crane", "slate"}},
		{"single-quoted legacy line", `['crane','slate','speed']`, []string{"crane", "slate", "speed"}},
		{"legacy line ignores later lines", "['crane','slate']\nignored\n", []string{"crane", "slate"}},
		{"one per line", "crane\n# comment\n\n slate \n", []string{"crane", "slate"}},
		{"empty", "  \n", nil},
		{"empty array", "[]", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{`[crane, slate]`, `['crane'`, `['crane",'slate']`} {
		_, err := Parse([]byte(in))
		assert.Error(t, err, in)
	}
}

func TestNewList_Normalizes(t *testing.T) {
	l, err := NewList([]string{" Crane", "SLATE", "crane", "", "slate"})
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate"}, l.Words())
	assert.True(t, l.Contains("crane"))
	assert.False(t, l.Contains("Crane"))
	assert.False(t, l.Contains(" crane"))
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, "slate", l.At(1))
}

func TestNewList_KeepsNonLetterTokens(t *testing.T) {
	l, err := NewList([]string{"it's", "co-op", "ab1de", "Y'ALL", "crane"})
	require.NoError(t, err)
	assert.Equal(t, []string{"it's", "co-op", "ab1de", "y'all", "crane"}, l.Words())
	for _, w := range []string{"it's", "co-op", "ab1de", "y'all"} {
		assert.True(t, l.Contains(w), w)
	}
	assert.Equal(t, 0, l.WordLen())
}

func TestLoad_KeepsNonLetterTokens(t *testing.T) {
	l, err := Load(writeFile(t, "it's
co-op
12345
"))
	require.NoError(t, err)
	assert.Equal(t, []string{"it's", "co-op", "12345"}, l.Words())
}

func TestNewList_Empty(t *testing.T) {
	_, err := NewList(nil)
	assert.ErrorIs(t, err, ErrEmptyList)

	_, err = NewList([]string{"  ", "", "\t"})
	assert.ErrorIs(t, err, ErrEmptyList)
}

func TestList_WordLen(t *testing.T) {
	l, err := NewList([]string{"crane", "slate"})
	require.NoError(t, err)
	assert.Equal(t, 5, l.WordLen())

	mixed, err := NewList([]string{"crane", "cat"})
	require.NoError(t, err)
	assert.Equal(t, 0, mixed.WordLen())
}

func TestList_RandomIsSeeded(t *testing.T) {
	l, err := Default()
	require.NoError(t, err)

	a := rand.New(rand.NewPCG(1, 2))
	b := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 20; i++ {
		w := l.Random(a)
		assert.Equal(t, w, l.Random(b))
		assert.True(t, l.Contains(w))
	}
}

func TestList_WordsIsACopy(t *testing.T) {
	l, err := NewList([]string{"crane", "slate"})
	require.NoError(t, err)
	ws := l.Words()
	ws[0] = "zzzzz"
	assert.Equal(t, "crane", l.At(0))
}

func TestDefault(t *testing.T) {
	l, err := Default()
	require.NoError(t, err)
	assert.Greater(t, l.Len(), 100)
	assert.Equal(t, 5, l.WordLen())
	for _, w := range []string{"speed", "erase", "abbey", "eerie", "crane", "words"} {
		assert.True(t, l.Contains(w), w)
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `["Speed","erase","abbey"]`)
	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"speed", "erase", "abbey"}, l.Words())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoad_EmptyFile(t *testing.T) {
	_, err := Load(writeFile(t, ""))
	assert.ErrorIs(t, err, ErrEmptyList)
}
