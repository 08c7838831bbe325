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

// Pairs lists every possible team that can be formed from the roster, in
// roster order. A roster of n players yields n*(n-1)/2 teams.
func Pairs(players []Player) []Team {
	pairs := make([]Team, 0, len(players)*(len(players)-1)/2)
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			pairs = append(pairs, NewTeam(players[i].ID, players[j].ID))
		}
	}

	return pairs
}

// Games lists every legal game that can be built out of the given pairs.
// Only pair combinations (i, j) with i < j are considered, so each game
// shows up exactly once whatever the labelling of its teams.
func Games(pairs []Team) []Game {
	var games []Game
	for i := 0; i < len(pairs); i++ {
		for j := i + 1; j < len(pairs); j++ {
			if pairs[i].Disjoint(pairs[j]) {
				games = append(games, Game{Team1: pairs[i], Team2: pairs[j]})
			}
		}
	}

	return games
}
