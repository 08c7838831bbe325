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

import "fmt"

// Weights configures how a candidate game is scored. Lower costs are better.
type Weights struct {
	Partner  float64 `yaml:"partner"`  // Per previous partnership of either team.
	Opponent float64 `yaml:"opponent"` // Per previous meeting of a cross pair.
	Fairness float64 `yaml:"fairness"` // Per game already played by a participant.

	// Flat penalty for a game that would leave the fairness gap above one.
	// It should dwarf every other term so that such games are only picked
	// when nothing else is available.
	Imbalance float64 `yaml:"imbalance"`
}

// DefaultWeights returns the reference scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Partner:   10,
		Opponent:  5,
		Fairness:  2,
		Imbalance: 1000,
	}
}

func (weights Weights) Validate() error {
	checks := []struct {
		name   string
		weight float64
	}{
		{"partner", weights.Partner},
		{"opponent", weights.Opponent},
		{"fairness", weights.Fairness},
		{"imbalance", weights.Imbalance},
	}

	for _, check := range checks {
		if check.weight < 0 {
			return fmt.Errorf("weights: negative %s weight %v", check.name, check.weight)
		}
	}

	return nil
}

// Cost scores the given game against the current history. It does not
// modify the history.
func (weights Weights) Cost(game Game, history *History) float64 {
	var cost float64

	// repeated partnerships
	partners := history.Partners(game.Team1.A, game.Team1.B) +
		history.Partners(game.Team2.A, game.Team2.B)
	cost += weights.Partner * float64(partners)

	// repeated head-to-heads
	opponents := 0
	for _, p := range [2]int{game.Team1.A, game.Team1.B} {
		for _, q := range [2]int{game.Team2.A, game.Team2.B} {
			opponents += history.Opponents(p, q)
		}
	}
	cost += weights.Opponent * float64(opponents)

	// games played
	if history.SpreadAfter(game) > 1 {
		cost += weights.Imbalance
	}

	played := 0
	for _, id := range game.Players() {
		played += history.Played(id)
	}
	cost += weights.Fairness * float64(played)

	return cost
}
