// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package schedule

// History keeps track of who has partnered and opposed whom, and how many
// games every player has played, over the rounds generated so far. It is
// append-only: games can be applied but never retracted.
//
// The partner and opponent matrices are symmetric at all times, and the
// games played by all players always add up to four times the number of
// rounds applied.
type History struct {
	index map[int]int // player id -> matrix index

	partners  [][]int
	opponents [][]int
	played    []int

	rounds int
}

// NewHistory returns an empty History for the given roster. Player ids are
// assumed to be unique.
func NewHistory(players []Player) *History {
	n := len(players)
	history := &History{
		index:     make(map[int]int, n),
		partners:  make([][]int, n),
		opponents: make([][]int, n),
		played:    make([]int, n),
	}

	for i, player := range players {
		history.index[player.ID] = i
		history.partners[i] = make([]int, n)
		history.opponents[i] = make([]int, n)
	}

	return history
}

// Apply records the given game in the history.
func (history *History) Apply(game Game) {
	history.pair(history.partners, game.Team1.A, game.Team1.B)
	history.pair(history.partners, game.Team2.A, game.Team2.B)

	for _, p := range [2]int{game.Team1.A, game.Team1.B} {
		for _, q := range [2]int{game.Team2.A, game.Team2.B} {
			history.pair(history.opponents, p, q)
		}
	}

	for _, id := range game.Players() {
		history.played[history.index[id]]++
	}

	history.rounds++
}

func (history *History) pair(matrix [][]int, p, q int) {
	i, j := history.index[p], history.index[q]
	matrix[i][j]++
	matrix[j][i]++
}

// Partners returns the number of games in which p and q were on the same team.
func (history *History) Partners(p, q int) int {
	return history.partners[history.index[p]][history.index[q]]
}

// Opponents returns the number of games in which p and q were on opposing teams.
func (history *History) Opponents(p, q int) int {
	return history.opponents[history.index[p]][history.index[q]]
}

// Played returns the number of games the given player has been part of.
func (history *History) Played(id int) int {
	return history.played[history.index[id]]
}

// Rounds returns the number of games applied to the history.
func (history *History) Rounds() int {
	return history.rounds
}

// Spread returns the fairness gap: the difference between the most and
// the least games played by any player.
func (history *History) Spread() int {
	lo, hi := history.bounds(nil)
	return hi - lo
}

// SpreadAfter returns the fairness gap the history would have after the
// given game was applied to it, without applying it.
func (history *History) SpreadAfter(game Game) int {
	lo, hi := history.bounds(&game)
	return hi - lo
}

func (history *History) bounds(game *Game) (lo, hi int) {
	first := true
	for id, i := range history.index {
		played := history.played[i]
		if game != nil && game.Has(id) {
			played++
		}

		if first {
			lo, hi, first = played, played, false
			continue
		}

		lo, hi = min(lo, played), max(hi, played)
	}

	return lo, hi
}

// Bounds returns the least and the most games played by any player.
func (history *History) Bounds() (lo, hi int) {
	return history.bounds(nil)
}

// MaxPartners returns the highest number of times any two players have
// been partners.
func (history *History) MaxPartners() int {
	return maxEntry(history.partners)
}

// MaxOpponents returns the highest number of times any two players have
// been opponents.
func (history *History) MaxOpponents() int {
	return maxEntry(history.opponents)
}

func maxEntry(matrix [][]int) int {
	best := 0
	for _, row := range matrix {
		for _, count := range row {
			best = max(best, count)
		}
	}

	return best
}
