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

// Player is a member of the roster. Only the ID has any meaning to the
// scheduler, the Name is carried along for display.
type Player struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

// Team is an unordered pair of two distinct players, identified by id.
type Team struct {
	A int `yaml:"a"`
	B int `yaml:"b"`
}

// NewTeam returns the canonical Team made up of the given players, with
// the smaller id first.
func NewTeam(p1, p2 int) Team {
	if p2 < p1 {
		p1, p2 = p2, p1
	}

	return Team{A: p1, B: p2}
}

// Has reports whether the given player is a member of the team.
func (team Team) Has(id int) bool {
	return team.A == id || team.B == id
}

// Disjoint reports whether the two teams have no player in common.
func (team Team) Disjoint(other Team) bool {
	return !team.Has(other.A) && !team.Has(other.B)
}

func (team Team) canonical() Team {
	return NewTeam(team.A, team.B)
}

func (team Team) less(other Team) bool {
	if team.A != other.A {
		return team.A < other.A
	}

	return team.B < other.B
}

// Game is a single doubles round: two disjoint teams of two.
type Game struct {
	Team1 Team `yaml:"team1"`
	Team2 Team `yaml:"team2"`
}

// Players returns the four ids involved in the game, Team1 first.
func (game Game) Players() [4]int {
	return [4]int{game.Team1.A, game.Team1.B, game.Team2.A, game.Team2.B}
}

// Has reports whether the given player takes part in the game.
func (game Game) Has(id int) bool {
	return game.Team1.Has(id) || game.Team2.Has(id)
}

// Key returns the label-independent identity of the game: the same Key is
// returned for a game and the game with its teams swapped.
func (game Game) Key() Game {
	t1, t2 := game.Team1.canonical(), game.Team2.canonical()
	if t2.less(t1) {
		t1, t2 = t2, t1
	}

	return Game{Team1: t1, Team2: t2}
}

// Valid reports whether all four players of the game are distinct.
func (game Game) Valid() bool {
	ids := game.Players()
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if ids[i] == ids[j] {
				return false
			}
		}
	}

	return true
}

func (game Game) String() string {
	return fmt.Sprintf("%d&%d vs %d&%d", game.Team1.A, game.Team1.B, game.Team2.A, game.Team2.B)
}
