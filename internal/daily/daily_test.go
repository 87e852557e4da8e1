package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

func TestDateKey_UsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	local := time.Date(2024, 3, 2, 5, 0, 0, 0, loc)
	assert.Equal(t, "2024-03-01", DateKey(local))
}

func TestPicker_SeedIsPerDay(t *testing.T) {
	p := NewPicker("salt")
	day := time.Date(2024, 3, 1, 0, 0, 1, 0, time.UTC)
	sameDay := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)

	a1, a2 := p.Seed(day)
	b1, b2 := p.Seed(sameDay)
	assert.Equal(t, a1, b1)
	assert.Equal(t, a2, b2)

	c1, _ := p.Seed(day.AddDate(0, 0, 1))
	assert.NotEqual(t, a1, c1)

	d1, _ := NewPicker("pepper").Seed(day)
	assert.NotEqual(t, a1, d1)
}

func TestPicker_SaltAndDateChangeTheGoal(t *testing.T) {
	list, err := words.Default()
	require.NoError(t, err)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a, b := NewPicker("a"), NewPicker("b")
	bySalt, byDate := false, false
	for d := 0; d < 30; d++ {
		day := start.AddDate(0, 0, d)
		if a.Goal(list, day) != b.Goal(list, day) {
			bySalt = true
		}
		if a.Goal(list, day) != a.Goal(list, day.AddDate(0, 0, 1)) {
			byDate = true
		}
	}
	assert.True(t, bySalt)
	assert.True(t, byDate)
}

func TestPicker_GoalMatchesSeededGame(t *testing.T) {
	list, err := words.Default()
	require.NoError(t, err)

	p := NewPicker("salt")
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	goal := p.Goal(list, day)
	assert.True(t, list.Contains(goal))
	assert.Equal(t, goal, p.Goal(list, day))

	g, err := game.New(list, game.WithRand(p.Rand(day)))
	require.NoError(t, err)
	assert.Equal(t, goal, g.Goal())
}
