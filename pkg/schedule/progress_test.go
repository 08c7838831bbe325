package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProgress(t *testing.T, n, rounds int) *Progress {
	t.Helper()

	config := seeded(99)
	config.Rounds = rounds

	result, err := Generate(players(n), config)
	require.NoError(t, err)

	return &Progress{Schedule: result.Schedule}
}

func TestMarkCurrentGameDone(t *testing.T) {
	progress := newProgress(t, 5, 3)
	at := time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC)

	require.True(t, progress.MarkCurrentGameDone(at))
	assert.Equal(t, 1, progress.Cursor)
	assert.True(t, progress.Schedule[0].Completed)
	require.NotNil(t, progress.Schedule[0].CompletedAt)
	assert.Equal(t, at, *progress.Schedule[0].CompletedAt)

	require.True(t, progress.MarkCurrentGameDone(at.Add(time.Minute)))
	assert.Equal(t, 2, progress.Cursor)

	// The last game cannot be marked done.
	assert.False(t, progress.MarkCurrentGameDone(at.Add(2*time.Minute)))
	assert.Equal(t, 2, progress.Cursor)
	assert.False(t, progress.Schedule[2].Completed)
	assert.Nil(t, progress.Schedule[2].CompletedAt)
}

func TestUndoLastGame(t *testing.T) {
	progress := newProgress(t, 6, 4)

	assert.False(t, progress.UndoLastGame(), "nothing to undo at the start")
	assert.Equal(t, 0, progress.Cursor)

	now := time.Now()
	progress.MarkCurrentGameDone(now)
	progress.MarkCurrentGameDone(now)

	require.True(t, progress.UndoLastGame())
	assert.Equal(t, 1, progress.Cursor)
	assert.False(t, progress.Schedule[1].Completed)
	assert.Nil(t, progress.Schedule[1].CompletedAt)
	assert.True(t, progress.Schedule[0].Completed)
}

func TestCursorRoundTrip(t *testing.T) {
	progress := newProgress(t, 7, 10)
	for i := 0; i < 4; i++ {
		progress.MarkCurrentGameDone(time.Now())
	}

	before := progress.Cursor
	assignment := progress.Schedule[before]

	require.True(t, progress.MarkCurrentGameDone(time.Now()))
	require.True(t, progress.UndoLastGame())

	assert.Equal(t, before, progress.Cursor)
	assert.Equal(t, assignment, progress.Schedule[before])
}

func TestProgressEmptySchedule(t *testing.T) {
	progress := &Progress{}

	assert.False(t, progress.MarkCurrentGameDone(time.Now()))
	assert.False(t, progress.UndoLastGame())

	_, found := progress.Current()
	assert.False(t, found)
}

func TestStatus(t *testing.T) {
	progress := newProgress(t, 4, 5)
	progress.MarkCurrentGameDone(time.Now())
	progress.MarkCurrentGameDone(time.Now())

	expected := []Status{
		StatusCompleted,
		StatusCompleted,
		StatusCurrent,
		StatusUpNext,
		StatusPending,
	}

	for i, status := range expected {
		assert.Equal(t, status, progress.Status(i), "game %d", i)
	}

	progress.UndoLastGame()
	assert.Equal(t, StatusCurrent, progress.Status(1))
	assert.Equal(t, StatusUpNext, progress.Status(2))
	assert.Equal(t, "Up Next", StatusUpNext.String())
}

func TestPlayerStats(t *testing.T) {
	roster := players(5)
	progress := &Progress{Schedule: Schedule{
		{Game: Game{Team1: Team{1, 2}, Team2: Team{3, 4}}},
		{Game: Game{Team1: Team{1, 5}, Team2: Team{2, 3}}},
		{Game: Game{Team1: Team{2, 5}, Team2: Team{3, 4}}},
	}}

	for _, stat := range progress.PlayerStats(roster) {
		assert.Zero(t, stat.Played)
		assert.Zero(t, stat.Rested)
	}

	progress.MarkCurrentGameDone(time.Now())
	progress.MarkCurrentGameDone(time.Now())

	stats := progress.PlayerStats(roster)
	require.Len(t, stats, 5)

	played := []int{2, 2, 2, 1, 1}
	for i, stat := range stats {
		assert.Equal(t, roster[i], stat.Player)
		assert.Equal(t, played[i], stat.Played, "player %d", stat.Player.ID)
		assert.Equal(t, 2-played[i], stat.Rested, "player %d", stat.Player.ID)
	}
}
