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

import "time"

// Progress tracks how far a group has got through a schedule. Cursor is
// the index of the current game. Progress is not safe for concurrent use:
// the two mutations must be applied by a single writer, in order.
//
// The generation history is not touched by either mutation, undoing a game
// leaves the partner and opponent statistics of the schedule as they were.
type Progress struct {
	Schedule Schedule
	Cursor   int
}

// MarkCurrentGameDone marks the current game as completed at the given
// time and moves on to the next one. The last game of the schedule cannot
// be marked done. It reports whether anything changed.
func (progress *Progress) MarkCurrentGameDone(at time.Time) bool {
	if progress.Cursor < 0 || progress.Cursor >= len(progress.Schedule)-1 {
		return false
	}

	game := &progress.Schedule[progress.Cursor]
	game.Completed = true
	game.CompletedAt = &at

	progress.Cursor++
	return true
}

// UndoLastGame reverts the most recent MarkCurrentGameDone. It reports
// whether anything changed.
func (progress *Progress) UndoLastGame() bool {
	if progress.Cursor <= 0 || progress.Cursor > len(progress.Schedule) {
		return false
	}

	game := &progress.Schedule[progress.Cursor-1]
	game.Completed = false
	game.CompletedAt = nil

	progress.Cursor--
	return true
}

// Current returns the game at the cursor, if there is one.
func (progress *Progress) Current() (GameAssignment, bool) {
	if progress.Cursor < 0 || progress.Cursor >= len(progress.Schedule) {
		return GameAssignment{}, false
	}

	return progress.Schedule[progress.Cursor], true
}

// Status is the display state of a scheduled game.
type Status int

const (
	StatusPending Status = iota
	StatusUpNext
	StatusCurrent
	StatusCompleted
)

func (status Status) String() string {
	switch status {
	case StatusPending:
		return "Pending"
	case StatusUpNext:
		return "Up Next"
	case StatusCurrent:
		return "Current"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Status returns the display state of the i-th game. Only the completed
// flag is stored, everything else is derived from the cursor.
func (progress *Progress) Status(i int) Status {
	switch {
	case progress.Schedule[i].Completed:
		return StatusCompleted
	case i == progress.Cursor:
		return StatusCurrent
	case i == progress.Cursor+1:
		return StatusUpNext
	default:
		return StatusPending
	}
}

// PlayerStat counts the games a player has played and sat out before
// the current game.
type PlayerStat struct {
	Player Player
	Played int
	Rested int
}

// PlayerStats returns the statistics of every player up to the cursor, in
// roster order.
func (progress *Progress) PlayerStats(players []Player) []PlayerStat {
	stats := make([]PlayerStat, len(players))
	for i, player := range players {
		stats[i].Player = player
		for _, game := range progress.Schedule[:max(0, min(progress.Cursor, len(progress.Schedule)))] {
			if game.Has(player.ID) {
				stats[i].Played++
			}
		}

		stats[i].Rested = progress.Cursor - stats[i].Played
	}

	return stats
}
