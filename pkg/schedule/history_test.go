package schedule

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryApply(t *testing.T) {
	history := NewHistory(players(5))
	history.Apply(Game{Team1: Team{1, 2}, Team2: Team{3, 4}})

	assert.Equal(t, 1, history.Partners(1, 2))
	assert.Equal(t, 1, history.Partners(4, 3))
	assert.Equal(t, 0, history.Partners(1, 3))

	for _, pair := range [][2]int{{1, 3}, {1, 4}, {2, 3}, {2, 4}} {
		assert.Equal(t, 1, history.Opponents(pair[0], pair[1]), "opponents %v", pair)
	}
	assert.Equal(t, 0, history.Opponents(1, 2))

	for id := 1; id <= 4; id++ {
		assert.Equal(t, 1, history.Played(id))
	}
	assert.Equal(t, 0, history.Played(5))

	assert.Equal(t, 1, history.Rounds())
	assert.Equal(t, 1, history.Spread())
}

func TestHistorySpreadAfter(t *testing.T) {
	history := NewHistory(players(5))
	game := Game{Team1: Team{1, 2}, Team2: Team{3, 4}}

	assert.Equal(t, 1, history.SpreadAfter(game))
	history.Apply(game)

	assert.Equal(t, 2, history.SpreadAfter(game))
	assert.Equal(t, 1, history.SpreadAfter(Game{Team1: Team{1, 5}, Team2: Team{2, 3}}))

	// SpreadAfter must not modify the history.
	assert.Equal(t, 1, history.Spread())
	assert.Equal(t, 1, history.Rounds())
}

func TestHistoryInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for n := 4; n <= 8; n++ {
		roster := players(n)
		games := Games(Pairs(roster))
		history := NewHistory(roster)

		for round := 1; round <= 40; round++ {
			history.Apply(games[rng.Intn(len(games))])

			total := 0
			for _, p := range roster {
				total += history.Played(p.ID)
				for _, q := range roster {
					if p.ID == q.ID {
						continue
					}

					require.Equal(t, history.Partners(p.ID, q.ID), history.Partners(q.ID, p.ID))
					require.Equal(t, history.Opponents(p.ID, q.ID), history.Opponents(q.ID, p.ID))
				}
			}

			require.Equal(t, 4*round, total, "players: %d round: %d", n, round)
		}
	}
}

func TestHistoryMaxCounts(t *testing.T) {
	history := NewHistory(players(4))
	history.Apply(Game{Team1: Team{1, 2}, Team2: Team{3, 4}})
	history.Apply(Game{Team1: Team{1, 2}, Team2: Team{3, 4}})
	history.Apply(Game{Team1: Team{1, 3}, Team2: Team{2, 4}})

	assert.Equal(t, 2, history.MaxPartners())
	assert.Equal(t, 3, history.MaxOpponents()) // 1 and 4 in every game

	lo, hi := history.Bounds()
	assert.Equal(t, 3, lo)
	assert.Equal(t, 3, hi)
}
