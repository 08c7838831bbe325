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

package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"laptudirm.com/x/doubles/pkg/schedule"
)

// TimeFormat is used for the completion time of finished games.
const TimeFormat = "Jan 02 15:04"

var (
	completedColor = color.New(color.FgGreen)
	currentColor   = color.New(color.FgYellow, color.Bold)
	upNextColor    = color.New(color.FgCyan)
	pendingColor   = color.New(color.Faint)
	warningColor   = color.New(color.FgRed)
)

type roster map[int]string

func newRoster(players []schedule.Player) roster {
	names := make(roster, len(players))
	for _, player := range players {
		names[player.ID] = player.Name
	}

	return names
}

func (names roster) team(team schedule.Team) string {
	return fmt.Sprintf("%s & %s", names.name(team.A), names.name(team.B))
}

func (names roster) name(id int) string {
	if name, found := names[id]; found && name != "" {
		return name
	}

	return fmt.Sprint(id)
}

// fit pads or truncates s to exactly width runes.
func fit(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}

	return s + strings.Repeat(" ", width-len(runes))
}

// Current writes the game at the cursor, or a notice if there is none.
func Current(w io.Writer, players []schedule.Player, progress *schedule.Progress) {
	names := newRoster(players)

	game, found := progress.Current()
	if !found {
		fmt.Fprintln(w, "No games scheduled.")
		return
	}

	fmt.Fprintf(w, "Game #%d: %s vs %s",
		progress.Cursor+1, names.team(game.Team1), names.team(game.Team2))
	if game.Completed {
		fmt.Fprint(w, completedColor.Sprint(" (completed)"))
	}
	fmt.Fprintln(w)
}

// Schedule writes the full schedule along with the status of every game.
func Schedule(w io.Writer, players []schedule.Player, progress *schedule.Progress) {
	names := newRoster(players)

	fmt.Fprintln(w, "╔══════════════════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║   #   Team 1                 Team 2                 Status       ║")
	fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════════════╣")
	for i, game := range progress.Schedule {
		fmt.Fprintf(w, "║ %3d.  %s %s %s ║\n",
			i+1,
			fit(names.team(game.Team1), 22),
			fit(names.team(game.Team2), 22),
			status(progress, i),
		)
	}
	fmt.Fprintln(w, "╚══════════════════════════════════════════════════════════════════╝")
}

func status(progress *schedule.Progress, i int) string {
	switch st := progress.Status(i); st {
	case schedule.StatusCompleted:
		label := st.String()
		if at := progress.Schedule[i].CompletedAt; at != nil {
			label = at.In(time.Local).Format(TimeFormat)
		}
		return completedColor.Sprint(fit(label, 12))
	case schedule.StatusCurrent:
		return currentColor.Sprint(fit(st.String(), 12))
	case schedule.StatusUpNext:
		return upNextColor.Sprint(fit(st.String(), 12))
	default:
		return pendingColor.Sprint(fit(st.String(), 12))
	}
}

// Stats writes the number of games played and rested by every player up
// to the current game, in the given order.
func Stats(w io.Writer, stats []schedule.PlayerStat) {
	fmt.Fprintln(w, "╔═════════════════════════════════════════╗")
	fmt.Fprintln(w, "║     Player                Played Rested ║")
	fmt.Fprintln(w, "╠═════════════════════════════════════════╣")
	for i, stat := range stats {
		name := stat.Player.Name
		if name == "" {
			name = fmt.Sprint(stat.Player.ID)
		}

		fmt.Fprintf(w, "║ %2d. %s %6d %6d ║\n", i+1, fit(name, 21), stat.Played, stat.Rested)
	}
	fmt.Fprintln(w, "╚═════════════════════════════════════════╝")
}

// Audit writes the fairness summary of a generated schedule.
func Audit(w io.Writer, players []schedule.Player, audit schedule.Audit) {
	names := newRoster(players)

	fmt.Fprintf(w, "Games per player: %d to %d", audit.Min, audit.Max)
	if audit.Spread > 1 {
		fmt.Fprint(w, warningColor.Sprintf(" (gap of %d)", audit.Spread))
	}
	fmt.Fprintln(w)

	for _, player := range players {
		fmt.Fprintf(w, "  %s: %d\n", names.name(player.ID), audit.Played[player.ID])
	}

	fmt.Fprintf(w, "Most repeated partnership: %d games\n", audit.MaxPartners)
	fmt.Fprintf(w, "Most repeated matchup:     %d games\n", audit.MaxOpponents)
}
