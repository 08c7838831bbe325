package cmd

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/doubles/pkg/schedule"
	"laptudirm.com/x/doubles/pkg/store"
)

func init() {
	color.NoColor = true
}

type env struct {
	session string
	config  string
}

func newEnv(t *testing.T) env {
	dir := t.TempDir()
	return env{
		session: filepath.Join(dir, "session.yaml"),
		config:  filepath.Join(dir, "config.yaml"),
	}
}

func (e env) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := Root()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append(args, "--session", e.session, "--config", e.config))

	err := root.Execute()
	return out.String(), err
}

func (e env) load(t *testing.T) *store.State {
	t.Helper()

	state, err := (&store.Store{Path: e.session}).Load()
	require.NoError(t, err)
	return state
}

func TestRoster(t *testing.T) {
	players, err := roster(nil, 5)
	require.NoError(t, err)
	require.Len(t, players, 5)
	assert.Equal(t, schedule.Player{ID: 3, Name: "3"}, players[2])

	players, err = roster([]string{"Ann", "", "Cat", "Dan"}, 0)
	require.NoError(t, err)
	assert.Equal(t, "2", players[1].Name)
	assert.Equal(t, 4, players[3].ID)

	_, err = roster([]string{"Ann", "Ben", "Cat"}, 0)
	assert.Error(t, err)

	_, err = roster(nil, 9)
	assert.Error(t, err)

	_, err = roster([]string{"Ann", "Ben", "Cat", "Dan"}, 5)
	assert.Error(t, err)
}

func TestSessionFlow(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "new", "Ann", "Ben", "Cat", "Dan", "Eve", "--seed", "11", "--rounds", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "Current")
	assert.Contains(t, out, "Games per player")

	state := e.load(t)
	assert.Len(t, state.Schedule, 6)
	assert.Equal(t, int64(11), state.Seed)
	assert.Equal(t, 0, state.Cursor)

	_, err = e.run(t, "new", "--players", "4")
	assert.Error(t, err, "a session is already in progress")

	_, err = e.run(t, "done")
	require.NoError(t, err)
	_, err = e.run(t, "done")
	require.NoError(t, err)

	state = e.load(t)
	assert.Equal(t, 2, state.Cursor)
	assert.True(t, state.Schedule[1].Completed)

	_, err = e.run(t, "undo")
	require.NoError(t, err)

	state = e.load(t)
	assert.Equal(t, 1, state.Cursor)
	assert.False(t, state.Schedule[1].Completed)
	assert.Nil(t, state.Schedule[1].CompletedAt)

	out, err = e.run(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Game #2:")
	assert.Contains(t, out, "Up Next")

	out, err = e.run(t, "stats", "--sort", "name")
	require.NoError(t, err)
	assert.Contains(t, out, "Ann")

	_, err = e.run(t, "stats", "--sort", "height")
	assert.Error(t, err)

	_, err = e.run(t, "reset")
	require.NoError(t, err)

	_, err = e.run(t, "show")
	assert.ErrorIs(t, err, store.ErrNoSession)
}

func TestNewIsReproducible(t *testing.T) {
	first, second := newEnv(t), newEnv(t)

	_, err := first.run(t, "new", "-p", "7", "-s", "3")
	require.NoError(t, err)
	_, err = second.run(t, "new", "-p", "7", "-s", "3")
	require.NoError(t, err)

	assert.Equal(t, first.load(t).Schedule, second.load(t).Schedule)
}

func TestNewForce(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "new", "-p", "4", "-s", "1")
	require.NoError(t, err)
	session := e.load(t).Session

	_, err = e.run(t, "new", "-p", "6", "-s", "1", "--force")
	require.NoError(t, err)

	state := e.load(t)
	assert.NotEqual(t, session, state.Session)
	assert.Len(t, state.Players, 6)
}

func TestDoneAtLastGame(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "new", "-p", "4", "-r", "2", "-s", "1")
	require.NoError(t, err)

	_, err = e.run(t, "done")
	require.NoError(t, err)

	out, err := e.run(t, "done")
	require.NoError(t, err)
	assert.Contains(t, out, "last game")
	assert.Equal(t, 1, e.load(t).Cursor)
}

func TestUndoAtStart(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "new", "-p", "5", "-s", "1")
	require.NoError(t, err)

	out, err := e.run(t, "undo")
	require.NoError(t, err)
	assert.Contains(t, out, "No played games")
}
