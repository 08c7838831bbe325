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

import (
	"cmp"
	"math/rand"
	"slices"

	"github.com/sirupsen/logrus"
)

// Candidate is a legal game together with its cost in the current round.
type Candidate struct {
	Game Game
	Cost float64

	rank int // position in this round's random permutation
}

// Selector picks the game for each round greedily: the cheapest candidate
// against the current history wins, and ties go to whichever candidate
// comes first in a fresh random permutation of the candidate set.
type Selector struct {
	candidates []Game
	history    *History
	weights    Weights
	rng        *rand.Rand
}

// NewSelector returns a Selector over the given candidate set. Every game
// returned by Next is applied to the history.
func NewSelector(candidates []Game, history *History, weights Weights, rng *rand.Rand) *Selector {
	return &Selector{
		candidates: candidates,
		history:    history,
		weights:    weights,
		rng:        rng,
	}
}

// Rank scores every candidate against the current history and returns them
// cheapest first. It consumes one permutation from the random source.
func (selector *Selector) Rank() []Candidate {
	ranked := make([]Candidate, len(selector.candidates))
	for rank, i := range selector.rng.Perm(len(selector.candidates)) {
		game := selector.candidates[i]
		ranked[rank] = Candidate{
			Game: game,
			Cost: selector.weights.Cost(game, selector.history),
			rank: rank,
		}
	}

	slices.SortStableFunc(ranked, func(a, b Candidate) int {
		return cmp.Or(cmp.Compare(a.Cost, b.Cost), cmp.Compare(a.rank, b.rank))
	})

	return ranked
}

// Next selects the game for the next round and commits it to the history.
func (selector *Selector) Next() Game {
	best := selector.Rank()[0]
	selector.history.Apply(best.Game)

	logrus.WithFields(logrus.Fields{
		"round": selector.history.Rounds(),
		"game":  best.Game,
		"cost":  best.Cost,
	}).Trace("selected game")

	return best.Game
}
